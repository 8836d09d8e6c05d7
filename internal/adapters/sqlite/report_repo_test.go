package sqlite_test

import (
	"context"
	"errors"
	"testing"

	"github.com/example/cadet-tracker/internal/adapters/sqlite"
	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

func TestReportRepositoryCreateAndResolve(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewReportRepository(database)
	ctx := context.Background()

	cadetID := seedCadet(t, database, 1001, "", "")

	id, err := repo.Create(ctx, &secondary.ReportRecord{
		CadetID:      cadetID,
		Type:         "Bad",
		Description:  "Late to formation",
		CreatedBy:    "C/CMSgt Price",
		IncidentDate: "2026-08-20",
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Resolve(ctx, id, "Capt Miller"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	got, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("GetByID() error = %v", err)
	}
	if !got.Resolved || got.ResolvedBy != "Capt Miller" {
		t.Errorf("report = resolved %v by %q, want resolved by Capt Miller", got.Resolved, got.ResolvedBy)
	}
}

func TestReportRepositoryResolveNotFound(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewReportRepository(database)

	err := repo.Resolve(context.Background(), 42, "Capt Miller")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Resolve() error = %v, want not-found", err)
	}
}

func TestReportRepositoryTypeConstraint(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewReportRepository(database)

	cadetID := seedCadet(t, database, 1001, "", "")

	_, err := repo.Create(context.Background(), &secondary.ReportRecord{
		CadetID: cadetID,
		Type:    "Neutral",
	})
	if err == nil {
		t.Errorf("Create() with unknown report type should fail the CHECK constraint")
	}
}

func TestReportRepositoryListFilters(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewReportRepository(database)
	ctx := context.Background()

	first := seedCadet(t, database, 1001, "", "")
	second := seedCadet(t, database, 1002, "Other", "Cadet")

	goodID, err := repo.Create(ctx, &secondary.ReportRecord{CadetID: first, Type: "Good"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, &secondary.ReportRecord{CadetID: second, Type: "Bad"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if err := repo.Resolve(ctx, goodID, "Capt Miller"); err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}

	byCadet, err := repo.List(ctx, secondary.ReportFilters{CadetID: first})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(byCadet) != 1 || byCadet[0].CadetID != first {
		t.Errorf("List(cadet) = %d reports, want 1 for cadet %d", len(byCadet), first)
	}

	unresolved, err := repo.List(ctx, secondary.ReportFilters{Unresolved: true})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(unresolved) != 1 || unresolved[0].Type != "Bad" {
		t.Errorf("List(unresolved) = %d reports, want the open Bad report", len(unresolved))
	}
}
