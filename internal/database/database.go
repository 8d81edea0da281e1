package database

import (
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite" // SQLite driver
)

// New opens the shared SQLite handle used by every service.
func New(dataSourceName string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite", dataSourceName+"?_pragma=foreign_keys(1)")
	if err != nil {
		return nil, err
	}
	// The store is a single file shared by all requests; one open
	// connection keeps statement ordering serialized by the store itself.
	db.SetMaxOpenConns(1)
	return db, nil
}

// Migrate runs the SQL statements to set up the database schema. It is
// safe to call on every startup.
func Migrate(db *sqlx.DB) error {
	const sqlStmt = `
	CREATE TABLE IF NOT EXISTS users (
		id       INTEGER PRIMARY KEY AUTOINCREMENT,
		name     TEXT NOT NULL,
		email    TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS suppliers (
		id                  INTEGER PRIMARY KEY AUTOINCREMENT,
		name                TEXT NOT NULL,
		registration_number TEXT NOT NULL UNIQUE,
		address             TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS rfps (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		title       TEXT NOT NULL,
		description TEXT,
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS bids (
		id          INTEGER PRIMARY KEY AUTOINCREMENT,
		rfp_id      INTEGER NOT NULL REFERENCES rfps(id),
		supplier_id INTEGER NOT NULL REFERENCES suppliers(id),
		amount      REAL NOT NULL,
		documents   TEXT,
		status      TEXT NOT NULL DEFAULT 'pending',
		created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`
	_, err := db.Exec(sqlStmt)
	return err
}
