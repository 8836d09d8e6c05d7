package sqlite_test

import (
	"context"
	"testing"

	"github.com/example/cadet-tracker/internal/adapters/sqlite"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

func TestAuditLogRepositoryCreateAndListRecent(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(database)
	ctx := context.Background()

	entries := []*secondary.AuditRecord{
		{EntityType: "cadet", EntityID: "1", Action: "create"},
		{EntityType: "cadet", EntityID: "1", Action: "update", FieldName: "rank", OldValue: "", NewValue: "2"},
		{EntityType: "inspection", EntityID: "7", Action: "create"},
	}
	for _, e := range entries {
		if err := repo.Create(ctx, e); err != nil {
			t.Fatalf("Create() error = %v", err)
		}
	}

	recent, err := repo.ListRecent(ctx, 2)
	if err != nil {
		t.Fatalf("ListRecent() error = %v", err)
	}
	if len(recent) != 2 {
		t.Fatalf("entries = %d, want 2", len(recent))
	}
	// Newest first.
	if recent[0].EntityType != "inspection" {
		t.Errorf("first entry = %q, want inspection", recent[0].EntityType)
	}
	if recent[1].FieldName != "rank" || recent[1].NewValue != "2" {
		t.Errorf("second entry = %+v, want rank update", recent[1])
	}
}

func TestAuditWriterWritesRows(t *testing.T) {
	database := setupTestDB(t)
	repo := sqlite.NewAuditLogRepository(database)
	writer := sqlite.NewAuditWriter(repo)
	ctx := context.Background()

	if err := writer.LogCreate(ctx, "report", "3"); err != nil {
		t.Fatalf("LogCreate() error = %v", err)
	}
	if err := writer.LogUpdate(ctx, "report", "3", "resolved", "0", "1"); err != nil {
		t.Fatalf("LogUpdate() error = %v", err)
	}
	if err := writer.LogDelete(ctx, "report", "3"); err != nil {
		t.Fatalf("LogDelete() error = %v", err)
	}

	if n := countRows(t, database, "SELECT COUNT(*) FROM audit_log WHERE entity_type = 'report'"); n != 3 {
		t.Errorf("audit rows = %d, want 3", n)
	}
}
