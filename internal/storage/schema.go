package storage

import (
	"database/sql"
	"fmt"
)

// pragmas configure every connection opened by Open.
var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = FULL",
	"PRAGMA busy_timeout = 5000",
}

// schemaStatements create the journal schema. Every statement uses
// IF NOT EXISTS so they can run on each open.
var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS life_events (
		id        INTEGER PRIMARY KEY AUTOINCREMENT,
		timestamp TEXT NOT NULL,
		text      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_life_events_timestamp ON life_events(timestamp)`,
}

func applyPragmas(db *sql.DB) error {
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			return fmt.Errorf("execute %q: %w", pragma, err)
		}
	}
	return nil
}

// ensureSchema creates the journal table and its index inside a single
// transaction.
func ensureSchema(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, stmt := range schemaStatements {
		if _, err := tx.Exec(stmt); err != nil {
			return err
		}
	}

	return tx.Commit()
}
