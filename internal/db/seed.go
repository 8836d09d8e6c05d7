package db

import (
	"database/sql"
	"fmt"
)

// SeedReferenceData populates the rank catalog on fresh installs. The
// ordering follows the CAP cadet enlisted progression; administrative
// screens can edit it afterwards. Seeding is idempotent: an already-seeded
// catalog is left alone.
func SeedReferenceData(database *sql.DB) error {
	var count int
	if err := database.QueryRow("SELECT COUNT(*) FROM ranks").Scan(&count); err != nil {
		return fmt.Errorf("seed ranks: %w", err)
	}
	if count > 0 {
		return nil
	}

	ranks := []struct {
		name  string
		order int
	}{
		{"Cadet Airman", 1},
		{"Cadet Airman First Class", 2},
		{"Cadet Senior Airman", 3},
		{"Cadet Staff Sergeant", 4},
		{"Cadet Technical Sergeant", 5},
		{"Cadet Master Sergeant", 6},
		{"Cadet Senior Master Sergeant", 7},
		{"Cadet Chief Master Sergeant", 8},
	}
	for _, r := range ranks {
		if _, err := database.Exec(
			"INSERT INTO ranks (rank_name, rank_order) VALUES (?, ?)",
			r.name, r.order,
		); err != nil {
			return fmt.Errorf("seed ranks: %w", err)
		}
	}

	positions := []struct {
		name  string
		line  int
		level int
	}{
		{"Flight Commander", 1, 3},
		{"Flight Sergeant", 1, 2},
		{"Element Leader", 1, 1},
		{"Supply Officer", 0, 2},
		{"Public Affairs", 0, 1},
	}
	for _, p := range positions {
		if _, err := database.Exec(
			"INSERT INTO positions (position_name, line, level) VALUES (?, ?, ?)",
			p.name, p.line, p.level,
		); err != nil {
			return fmt.Errorf("seed positions: %w", err)
		}
	}

	return nil
}
