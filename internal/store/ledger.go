package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// RecordSessionProcessed marks a session as surveyed. Recording the same
// session twice keeps the original entry: the first survey remains the
// authoritative one.
func (db *DB) RecordSessionProcessed(sessionID string, processedDate time.Time, runID string) error {
	_, err := db.Exec(`
		INSERT INTO sessions (session_id, processed_date, run_id)
		VALUES (?, ?, ?)
		ON CONFLICT(session_id) DO NOTHING
	`, sessionID, processedDate, runID)
	if err != nil {
		return fmt.Errorf("failed to record session %s: %w", sessionID, err)
	}
	return nil
}

// WasSessionProcessed reports whether the session is already in the ledger.
func (db *DB) WasSessionProcessed(sessionID string) (bool, error) {
	var one int
	err := db.Get(&one, "SELECT 1 FROM sessions WHERE session_id = ?", sessionID)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to query session ledger: %w", err)
	}
	return true, nil
}
