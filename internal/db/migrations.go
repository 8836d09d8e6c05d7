package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order
var migrations = []Migration{
	{
		Version: 1,
		Name:    "baseline_cadet_tracker_schema",
		Up:      migrationV1,
	},
	{
		Version: 2,
		Name:    "add_inspection_scores_breakdown_table",
		Up:      migrationV2,
	},
}

// RunMigrations executes all pending migrations
func RunMigrations() error {
	db, err := GetDB()
	if err != nil {
		return fmt.Errorf("failed to get database: %w", err)
	}

	// Create schema_version table if it doesn't exist
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	// Get current schema version
	var currentVersion int
	err = db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_version").Scan(&currentVersion)
	if err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	// Run pending migrations
	for _, migration := range migrations {
		if migration.Version <= currentVersion {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction for migration %d: %w", migration.Version, err)
		}

		if err := migration.Up(db); err != nil {
			tx.Rollback()
			return fmt.Errorf("migration %d failed: %w", migration.Version, err)
		}

		_, err = tx.Exec("INSERT INTO schema_version (version) VALUES (?)", migration.Version)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to record migration %d: %w", migration.Version, err)
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("failed to commit migration %d: %w", migration.Version, err)
		}
	}

	return nil
}

// migrationV1 is the baseline: fresh installs already carry the full schema
// from SchemaSQL, and pre-existing databases were created from the same
// CREATE TABLE IF NOT EXISTS statements, so this only records the baseline.
func migrationV1(db *sql.DB) error {
	return nil
}

// migrationV2 adds the per-item inspection breakdown table. Databases
// created before this migration stored only the aggregate row; after it,
// submissions persist the full checklist alongside the header.
func migrationV2(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS inspection_scores (
			score_id INTEGER PRIMARY KEY AUTOINCREMENT,
			inspection_id INTEGER NOT NULL,
			section TEXT NOT NULL,
			item_name TEXT NOT NULL,
			score INTEGER NOT NULL CHECK(score BETWEEN 0 AND 3),
			comment TEXT,
			FOREIGN KEY (inspection_id) REFERENCES inspections(inspection_id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return fmt.Errorf("failed to create inspection_scores: %w", err)
	}
	return nil
}
