package database

import (
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// schema holds the startup DDL. Both tables are keyed by natural keys
// (roll; roll+exam) so every write is an idempotent upsert.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS students (
		roll        TEXT PRIMARY KEY,
		name        TEXT    NOT NULL DEFAULT '',
		section     TEXT    NOT NULL DEFAULT '',
		attendance  INTEGER NOT NULL DEFAULT 0,
		assignments INTEGER NOT NULL DEFAULT 0
	)`,
	`CREATE TABLE IF NOT EXISTS marks (
		roll TEXT NOT NULL REFERENCES students (roll),
		exam TEXT NOT NULL,
		s1 INTEGER NOT NULL DEFAULT 0,
		s2 INTEGER NOT NULL DEFAULT 0,
		s3 INTEGER NOT NULL DEFAULT 0,
		s4 INTEGER NOT NULL DEFAULT 0,
		s5 INTEGER NOT NULL DEFAULT 0,
		s6 INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (roll, exam)
	)`,
}

// Migrate applies the schema. Statements are all IF NOT EXISTS; running it
// repeatedly is safe.
func Migrate(db *sqlx.DB) error {
	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			return errors.Wrap(err, "migrating database")
		}
	}
	return nil
}
