package database

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite" // Embedded SQLite driver
)

const productsSchema = `CREATE TABLE IF NOT EXISTS products (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL,
	category TEXT,
	price REAL NOT NULL DEFAULT 0,
	quantity INTEGER NOT NULL DEFAULT 0,
	description TEXT,
	created_at DATETIME NOT NULL,
	updated_at DATETIME NOT NULL
)`

// OpenSQLite opens (or creates) the embedded store and bootstraps its
// schema. Pass ":memory:" for an in-memory database (used by tests).
func OpenSQLite(dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	// Single connection avoids "database is locked" on concurrent writes.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set busy timeout: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set journal mode: %w", err)
	}

	if _, err := db.Exec(productsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create products table: %w", err)
	}
	return db, nil
}
