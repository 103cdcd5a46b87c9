package db

import (
	"database/sql"
	"fmt"
)

// SchemaSQL is the complete schema for fresh fitlog installs.
//
// This is the SINGLE SOURCE OF TRUTH for the database schema. All repository
// tests apply it via GetSchemaSQL() so that test databases cannot drift from
// the schema a real install gets.
//
// Exercises reference exactly one user. Users carry no back-reference to
// their exercises; ownership is resolved at query time with a join.
// Exercise dates are stored at day granularity as ISO text (YYYY-MM-DD) so
// inclusive range comparisons stay lexicographic.
const SchemaSQL = `
CREATE TABLE IF NOT EXISTS users (
	id TEXT PRIMARY KEY,
	username TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS exercises (
	id TEXT PRIMARY KEY,
	user_id TEXT NOT NULL,
	description TEXT,
	duration INTEGER,
	date TEXT NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	FOREIGN KEY (user_id) REFERENCES users(id)
);

CREATE INDEX IF NOT EXISTS idx_exercises_user_date ON exercises(user_id, date);
`

// GetSchemaSQL returns the authoritative schema SQL.
func GetSchemaSQL() string {
	return SchemaSQL
}

// InitSchema applies the schema to the given database.
func InitSchema(database *sql.DB) error {
	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
