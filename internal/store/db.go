// Package store persists the track library, the transition network, and the
// session ledger in a single SQLite database. Snapshots are written as one
// transaction so a crash or interrupt never leaves a half-written store.
package store

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

type DB struct {
	*sqlx.DB
}

func NewSQLiteDB(dsn string) (*DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	// Set pragmas for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}
	if _, err := db.Exec("PRAGMA busy_timeout=30000"); err != nil {
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	// Apply schema
	if _, err := db.Exec(Schema); err != nil {
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &DB{db}, nil
}

func (db *DB) Close() error {
	return db.DB.Close()
}

// Reset drops every table and reapplies the schema, leaving an empty store.
func (db *DB) Reset() error {
	drop := `
		DROP TABLE IF EXISTS transitions;
		DROP TABLE IF EXISTS tracks;
		DROP TABLE IF EXISTS sessions;
	`
	if _, err := db.Exec(drop); err != nil {
		return fmt.Errorf("failed to drop tables: %w", err)
	}
	if _, err := db.Exec(Schema); err != nil {
		return fmt.Errorf("failed to reapply schema: %w", err)
	}
	return nil
}
