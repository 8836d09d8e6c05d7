package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/cadet-tracker/internal/adapters/sqlite"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

func TestPositionRepositoryCreateAndList(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewPositionRepository(database)
	ctx := context.Background()

	id, err := repo.Create(ctx, &secondary.PositionRecord{
		Name:  "Flight Sergeant",
		Line:  true,
		Level: 2,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	positions, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(positions) != 1 {
		t.Fatalf("positions = %d, want 1", len(positions))
	}
	if positions[0].ID != id || !positions[0].Line || positions[0].Level != 2 {
		t.Errorf("position = %+v, want line level-2 Flight Sergeant", positions[0])
	}
}

func TestPositionRepositoryAssignAndListForCadet(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewPositionRepository(database)
	ctx := context.Background()

	cadetID := seedCadet(t, database, 1001, "", "")
	elementLeader := seedPosition(t, database, "Element Leader", true)
	supply := seedPosition(t, database, "Supply Officer", false)

	if err := repo.Assign(ctx, cadetID, elementLeader, "2025-02-01"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}
	if err := repo.Assign(ctx, cadetID, supply, "2026-01-01"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	assignments, err := repo.ForCadet(ctx, cadetID)
	if err != nil {
		t.Fatalf("ForCadet() error = %v", err)
	}
	if len(assignments) != 2 {
		t.Fatalf("assignments = %d, want 2", len(assignments))
	}
	// Newest first.
	if assignments[0].PositionName != "Supply Officer" {
		t.Errorf("first assignment = %q, want Supply Officer", assignments[0].PositionName)
	}
	if assignments[0].EndDate != "" {
		t.Errorf("open assignment EndDate = %q, want empty", assignments[0].EndDate)
	}
}

func TestPositionRepositoryEndAssignment(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewPositionRepository(database)
	ctx := context.Background()

	cadetID := seedCadet(t, database, 1001, "", "")
	posID := seedPosition(t, database, "Element Leader", true)

	if err := repo.Assign(ctx, cadetID, posID, "2025-02-01"); err != nil {
		t.Fatalf("Assign() error = %v", err)
	}

	assignments, err := repo.ForCadet(ctx, cadetID)
	if err != nil {
		t.Fatalf("ForCadet() error = %v", err)
	}
	if err := repo.EndAssignment(ctx, assignments[0].ID, "2026-06-30"); err != nil {
		t.Fatalf("EndAssignment() error = %v", err)
	}

	assignments, err = repo.ForCadet(ctx, cadetID)
	if err != nil {
		t.Fatalf("ForCadet() error = %v", err)
	}
	if assignments[0].EndDate != "2026-06-30" {
		t.Errorf("EndDate = %q, want 2026-06-30", assignments[0].EndDate)
	}
}
