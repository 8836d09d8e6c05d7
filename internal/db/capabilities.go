package db

import (
	"database/sql"
	"fmt"
)

// Capabilities records what the connected database schema supports. It is
// resolved once when the connection is established instead of probing the
// schema on every write.
type Capabilities struct {
	// ItemBreakdown is true when the inspection_scores table exists and
	// per-item checklist rows can be persisted alongside the inspection
	// header. Legacy databases carry only the aggregate.
	ItemBreakdown bool
}

// ResolveCapabilities inspects the schema and reports what it supports.
func ResolveCapabilities(database *sql.DB) (Capabilities, error) {
	var caps Capabilities

	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'inspection_scores'",
	).Scan(&count)
	if err != nil {
		return caps, fmt.Errorf("failed to resolve schema capabilities: %w", err)
	}
	caps.ItemBreakdown = count > 0

	return caps, nil
}
