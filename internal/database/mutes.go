package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/mutedesk/internal/models"
)

const muteColumns = `id, player_steamid, player_name, admin_steamid, admin_name, reason, duration, comment, type, created, ends, status`

// ReplaceMutes swaps the cached list for mutes and records refreshedAt, all
// in one transaction.
func (d *Database) ReplaceMutes(ctx context.Context, mutes []models.Mute, refreshedAt time.Time) error {
	err := d.WithTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM mutes"); err != nil {
			return err
		}
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO mutes (`+muteColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return err
		}
		defer stmt.Close()
		for _, m := range mutes {
			var ends *time.Time
			if m.Ends != nil {
				utc := m.Ends.UTC()
				ends = &utc
			}
			if _, err := stmt.ExecContext(ctx,
				m.ID,
				m.PlayerSteamID,
				nullableString(m.PlayerName),
				nullableString(m.AdminSteamID),
				nullableString(m.AdminName),
				m.Reason,
				m.Duration,
				nullableString(m.Comment),
				m.Type,
				nullableTime(m.Created),
				toNullableArg(ends),
				nullableString(string(m.Status)),
			); err != nil {
				return wrapMuteErr("cache", m.ID, err)
			}
		}
		_, err = tx.ExecContext(ctx,
			"INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
			SettingLastRefresh, refreshedAt.UTC().Format(time.RFC3339))
		return err
	})
	return wrapMuteErr("replace", 0, err)
}

// ListMutes returns the cached mutes, newest first.
func (d *Database) ListMutes(ctx context.Context) ([]models.Mute, error) {
	rows, err := d.DB.QueryContext(ctx, `SELECT `+muteColumns+` FROM mutes ORDER BY created DESC, id DESC`)
	if err != nil {
		return nil, wrapMuteErr("list", 0, err)
	}
	defer rows.Close()

	var mutes []models.Mute
	for rows.Next() {
		m, err := scanMute(rows)
		if err != nil {
			return nil, wrapMuteErr("list", 0, err)
		}
		mutes = append(mutes, m)
	}
	return mutes, wrapMuteErr("list", 0, rows.Err())
}

// GetMute returns one cached mute by ID.
func (d *Database) GetMute(ctx context.Context, id int64) (models.Mute, error) {
	row := d.DB.QueryRowContext(ctx, `SELECT `+muteColumns+` FROM mutes WHERE id = ?`, id)
	m, err := scanMute(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Mute{}, wrapMuteErr("get", id, ErrMuteNotFound)
	}
	return m, wrapMuteErr("get", id, err)
}

// LastRefresh reports when the cache was last replaced.
func (d *Database) LastRefresh(ctx context.Context) (time.Time, bool) {
	raw, ok := d.GetSetting(ctx, SettingLastRefresh)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMute(row rowScanner) (models.Mute, error) {
	var (
		m                          models.Mute
		playerName, adminSteamID   sql.NullString
		adminName, comment, status sql.NullString
		created, ends              sql.NullTime
	)
	if err := row.Scan(&m.ID, &m.PlayerSteamID, &playerName, &adminSteamID, &adminName,
		&m.Reason, &m.Duration, &comment, &m.Type, &created, &ends, &status); err != nil {
		return models.Mute{}, err
	}
	m.PlayerName = playerName.String
	m.AdminSteamID = adminSteamID.String
	m.AdminName = adminName.String
	m.Comment = comment.String
	m.Status = models.MuteStatus(status.String)
	if created.Valid {
		m.Created = created.Time
	}
	if ends.Valid {
		t := ends.Time
		m.Ends = &t
	}
	return m, nil
}
