package database

import (
	"context"
	"database/sql"
)

// Setting keys.
const (
	SettingLastRefresh = "mutes_last_refresh"
)

func (d *Database) GetSetting(ctx context.Context, key string) (string, bool) {
	var value sql.NullString
	err := d.DB.QueryRowContext(ctx, "SELECT value FROM settings WHERE key = ?", key).Scan(&value)
	if err != nil {
		return "", false
	}
	return value.String, value.Valid
}

func (d *Database) SetSetting(ctx context.Context, key, value string) error {
	_, err := d.DB.ExecContext(ctx, "INSERT INTO settings (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value", key, value)
	return wrapSettingErr("set", err)
}
