package primary

import "context"

// AuditService defines the primary port for reading the audit trail.
type AuditService interface {
	// RecentEntries retrieves the most recent audit entries, newest first.
	RecentEntries(ctx context.Context, limit int) ([]*AuditEntry, error)
}

// AuditEntry represents an audit log entry at the port boundary.
type AuditEntry struct {
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
