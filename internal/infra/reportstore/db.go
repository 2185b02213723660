// Package reportstore persists computed runs in a SQLite database.
package reportstore

import (
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// pragmas are applied by the driver to every new pooled connection.
var pragmas = []string{
	"foreign_keys(1)",
	"journal_mode(WAL)",
	"busy_timeout(5000)",
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS runs (
		id         TEXT PRIMARY KEY,
		created_at TEXT NOT NULL,
		source     TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs (created_at)`,
	`CREATE TABLE IF NOT EXISTS run_items (
		run_id         TEXT NOT NULL REFERENCES runs (id) ON DELETE CASCADE,
		key            TEXT NOT NULL,
		position       INTEGER NOT NULL,
		title          TEXT NOT NULL DEFAULT '',
		type           TEXT NOT NULL DEFAULT '',
		status         TEXT NOT NULL DEFAULT '',
		category       TEXT NOT NULL DEFAULT '',
		parent         TEXT NOT NULL DEFAULT '',
		fix_version    TEXT NOT NULL DEFAULT '',
		created        TEXT NOT NULL,
		started        TEXT NOT NULL,
		finished       TEXT,
		lead_time      INTEGER,
		cycle_time     INTEGER,
		days_estimated REAL NOT NULL DEFAULT 0,
		warnings       TEXT NOT NULL DEFAULT '[]',
		PRIMARY KEY (run_id, key)
	)`,
	`CREATE TABLE IF NOT EXISTS run_durations (
		run_id   TEXT NOT NULL,
		item_key TEXT NOT NULL,
		kind     TEXT NOT NULL CHECK (kind IN ('category', 'actor')),
		position INTEGER NOT NULL,
		name     TEXT NOT NULL,
		nanos    INTEGER NOT NULL,
		PRIMARY KEY (run_id, item_key, kind, position),
		FOREIGN KEY (run_id, item_key) REFERENCES run_items (run_id, key) ON DELETE CASCADE
	)`,
}

// Open opens the database at path, creating its directory when needed, and
// runs migrations. Foreign keys are enforced on every connection.
func Open(path string) (*sql.DB, error) {
	if path != MemoryPath {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("creating db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dsn(path))
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if path == MemoryPath {
		// Every connection to :memory: is a separate database.
		db.SetMaxOpenConns(1)
	}

	if err := Migrate(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}
	return db, nil
}

// dsn appends the connection pragmas to path.
func dsn(path string) string {
	query := make(url.Values)
	for _, p := range pragmas {
		query.Add("_pragma", p)
	}
	return path + "?" + query.Encode()
}

// Migrate runs all schema migrations. It is safe to run repeatedly.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
