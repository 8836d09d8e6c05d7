package sqlite

import (
	"context"

	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// AuditWriter implements secondary.LogWriter over AuditLogRepository.
type AuditWriter struct {
	auditRepo secondary.AuditLogRepository
}

// NewAuditWriter creates a new AuditWriter.
func NewAuditWriter(auditRepo secondary.AuditLogRepository) *AuditWriter {
	return &AuditWriter{auditRepo: auditRepo}
}

// LogCreate logs a create operation for an entity.
func (w *AuditWriter) LogCreate(ctx context.Context, entityType, entityID string) error {
	return w.auditRepo.Create(ctx, &secondary.AuditRecord{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     "create",
	})
}

// LogUpdate logs an update operation for an entity field.
func (w *AuditWriter) LogUpdate(ctx context.Context, entityType, entityID, fieldName, oldValue, newValue string) error {
	return w.auditRepo.Create(ctx, &secondary.AuditRecord{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     "update",
		FieldName:  fieldName,
		OldValue:   oldValue,
		NewValue:   newValue,
	})
}

// LogDelete logs a delete operation for an entity.
func (w *AuditWriter) LogDelete(ctx context.Context, entityType, entityID string) error {
	return w.auditRepo.Create(ctx, &secondary.AuditRecord{
		EntityType: entityType,
		EntityID:   entityID,
		Action:     "delete",
	})
}

// Ensure AuditWriter implements the interface
var _ secondary.LogWriter = (*AuditWriter)(nil)
