package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// AuditLogRepository implements secondary.AuditLogRepository with SQLite.
type AuditLogRepository struct {
	db *sql.DB
}

// NewAuditLogRepository creates a new SQLite audit log repository.
func NewAuditLogRepository(db *sql.DB) *AuditLogRepository {
	return &AuditLogRepository{db: db}
}

// Create persists a new audit log entry.
func (r *AuditLogRepository) Create(ctx context.Context, entry *secondary.AuditRecord) error {
	var fieldName, oldValue, newValue sql.NullString
	if entry.FieldName != "" {
		fieldName = sql.NullString{String: entry.FieldName, Valid: true}
	}
	if entry.OldValue != "" {
		oldValue = sql.NullString{String: entry.OldValue, Valid: true}
	}
	if entry.NewValue != "" {
		newValue = sql.NullString{String: entry.NewValue, Valid: true}
	}

	_, err := r.db.ExecContext(ctx,
		"INSERT INTO audit_log (entity_type, entity_id, action, field_name, old_value, new_value) VALUES (?, ?, ?, ?, ?, ?)",
		entry.EntityType, entry.EntityID, entry.Action, fieldName, oldValue, newValue,
	)
	if err != nil {
		return apperr.Storage(err, "writing audit entry for %s %s", entry.EntityType, entry.EntityID)
	}
	return nil
}

// ListRecent retrieves the most recent entries, newest first.
func (r *AuditLogRepository) ListRecent(ctx context.Context, limit int) ([]*secondary.AuditRecord, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT log_id, entity_type, entity_id, action, field_name, old_value, new_value, created_at FROM audit_log ORDER BY log_id DESC LIMIT ?",
		limit,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing audit entries")
	}
	defer rows.Close()

	var entries []*secondary.AuditRecord
	for rows.Next() {
		var (
			fieldName sql.NullString
			oldValue  sql.NullString
			newValue  sql.NullString
			createdAt time.Time
		)
		record := &secondary.AuditRecord{}
		if err := rows.Scan(&record.ID, &record.EntityType, &record.EntityID, &record.Action, &fieldName, &oldValue, &newValue, &createdAt); err != nil {
			return nil, apperr.Storage(err, "scanning audit entry")
		}
		record.FieldName = fieldName.String
		record.OldValue = oldValue.String
		record.NewValue = newValue.String
		record.CreatedAt = createdAt.Format(time.RFC3339)
		entries = append(entries, record)
	}
	return entries, nil
}

// Ensure AuditLogRepository implements the interface
var _ secondary.AuditLogRepository = (*AuditLogRepository)(nil)
