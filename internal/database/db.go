// Package database is the local SQLite cache of the mute list plus a small
// key/value settings table.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type Database struct {
	DB     *sql.DB
	dbFile string
}

// Open opens (creating if needed) the cache at path and applies the schema.
func Open(ctx context.Context, path string) (*Database, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}
	conn, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, err
	}
	conn.SetMaxOpenConns(1)
	if err := conn.PingContext(ctx); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrDatabaseCorrupted, err)
	}
	d := &Database{DB: conn, dbFile: path}
	if err := d.migrate(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// Path returns the file the cache lives in.
func (d *Database) Path() string {
	return d.dbFile
}

func (d *Database) migrate(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS mutes (
			id INTEGER PRIMARY KEY,
			player_steamid TEXT NOT NULL,
			player_name TEXT,
			admin_steamid TEXT,
			admin_name TEXT,
			reason TEXT NOT NULL DEFAULT '',
			duration INTEGER NOT NULL DEFAULT 0,
			comment TEXT,
			type TEXT NOT NULL DEFAULT 'MUTE',
			created DATETIME,
			ends DATETIME,
			status TEXT
		);`,
		`CREATE INDEX IF NOT EXISTS idx_mutes_player ON mutes(player_steamid);`,
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT
		);`,
	}
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// WithTx runs fn in a transaction, rolling back when fn fails.
func (d *Database) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rbErr)
		}
		return err
	}
	return tx.Commit()
}
