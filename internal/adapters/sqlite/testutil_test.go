// Package sqlite_test contains integration tests for SQLite repositories.
//
// This file is the single point where the database schema is loaded for
// tests. All test setup functions use db.GetSchemaSQL() so tests run against
// the authoritative schema: if a repository references a column that doesn't
// exist there, tests fail immediately with "no such column".
package sqlite_test

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"

	"github.com/example/cadet-tracker/internal/db"
)

// setupTestDB creates an in-memory database with the authoritative schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	if _, err := testDB.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

// seedCadet inserts a test cadet and returns its ID.
func seedCadet(t *testing.T, database *sql.DB, capID int, firstName, lastName string) int64 {
	t.Helper()
	if firstName == "" {
		firstName = "Test"
	}
	if lastName == "" {
		lastName = "Cadet"
	}
	result, err := database.Exec(
		"INSERT INTO cadets (cap_id, first_name, last_name) VALUES (?, ?, ?)",
		capID, firstName, lastName,
	)
	if err != nil {
		t.Fatalf("failed to seed cadet: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedRank inserts a test rank and returns its ID.
func seedRank(t *testing.T, database *sql.DB, name string, order int) int64 {
	t.Helper()
	result, err := database.Exec(
		"INSERT INTO ranks (rank_name, rank_order) VALUES (?, ?)",
		name, order,
	)
	if err != nil {
		t.Fatalf("failed to seed rank: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedRequirement inserts a test requirement and returns its ID.
func seedRequirement(t *testing.T, database *sql.DB, name, description string) int64 {
	t.Helper()
	result, err := database.Exec(
		"INSERT INTO requirements (requirement_name, description) VALUES (?, ?)",
		name, description,
	)
	if err != nil {
		t.Fatalf("failed to seed requirement: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// seedPosition inserts a test position and returns its ID.
func seedPosition(t *testing.T, database *sql.DB, name string, line bool) int64 {
	t.Helper()
	lineVal := 0
	if line {
		lineVal = 1
	}
	result, err := database.Exec(
		"INSERT INTO positions (position_name, line, level) VALUES (?, ?, 1)",
		name, lineVal,
	)
	if err != nil {
		t.Fatalf("failed to seed position: %v", err)
	}
	id, _ := result.LastInsertId()
	return id
}

// countRows counts rows in a table matching a where clause.
func countRows(t *testing.T, database *sql.DB, query string, args ...any) int {
	t.Helper()
	var count int
	if err := database.QueryRow(query, args...).Scan(&count); err != nil {
		t.Fatalf("failed to count rows: %v", err)
	}
	return count
}
