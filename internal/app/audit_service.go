package app

import (
	"context"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// AuditServiceImpl implements the AuditService interface.
type AuditServiceImpl struct {
	auditRepo secondary.AuditLogRepository
}

// NewAuditService creates a new AuditService with injected dependencies.
func NewAuditService(auditRepo secondary.AuditLogRepository) *AuditServiceImpl {
	return &AuditServiceImpl{auditRepo: auditRepo}
}

// RecentEntries retrieves the most recent audit entries, newest first.
func (s *AuditServiceImpl) RecentEntries(ctx context.Context, limit int) ([]*primary.AuditEntry, error) {
	records, err := s.auditRepo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]*primary.AuditEntry, len(records))
	for i, r := range records {
		entries[i] = &primary.AuditEntry{
			EntityType: r.EntityType,
			EntityID:   r.EntityID,
			Action:     r.Action,
			FieldName:  r.FieldName,
			OldValue:   r.OldValue,
			NewValue:   r.NewValue,
			CreatedAt:  r.CreatedAt,
		}
	}
	return entries, nil
}

// Ensure AuditServiceImpl implements the interface
var _ primary.AuditService = (*AuditServiceImpl)(nil)
