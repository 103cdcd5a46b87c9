// Package sqlite_test contains integration tests for SQLite repositories.
//
// All test setup functions use db.GetSchemaSQL() so tests run against the
// authoritative schema, preventing drift between test and production. Do
// not hardcode CREATE TABLE statements in test files.
package sqlite_test

import (
	"database/sql"
	"fmt"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/fitlog/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedUser inserts a test user and returns its ID.
func seedUser(t *testing.T, db *sql.DB, id, username string) string {
	t.Helper()
	if id == "" {
		id = "user-001"
	}
	if username == "" {
		username = "test-user"
	}
	_, err := db.Exec("INSERT INTO users (id, username) VALUES (?, ?)", id, username)
	if err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return id
}

// seedExercise inserts a test exercise and returns its ID. The created_at
// column is set explicitly so insertion order is deterministic in tests.
func seedExercise(t *testing.T, db *sql.DB, id, userID, description string, duration int, date string) string {
	t.Helper()
	if id == "" {
		id = fmt.Sprintf("ex-%s-%s", userID, date)
	}
	_, err := db.Exec(
		"INSERT INTO exercises (id, user_id, description, duration, date, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		id, userID, description, duration, date, "2024-01-01 10:00:00",
	)
	if err != nil {
		t.Fatalf("failed to seed exercise: %v", err)
	}
	return id
}
