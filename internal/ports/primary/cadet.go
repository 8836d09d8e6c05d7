// Package primary defines the primary ports (driving adapters) for the
// application. These are the service interfaces the CLI calls into.
package primary

import "context"

// CadetService defines the primary port for cadet record operations.
type CadetService interface {
	// AddCadet creates a new cadet record.
	AddCadet(ctx context.Context, req AddCadetRequest) (*Cadet, error)

	// GetCadetByCAPID retrieves a cadet by external CAP ID.
	GetCadetByCAPID(ctx context.Context, capID int) (*Cadet, error)

	// ListCadets lists all cadets.
	ListCadets(ctx context.Context) ([]*Cadet, error)

	// UpdateCadet updates a cadet's personal fields.
	UpdateCadet(ctx context.Context, req UpdateCadetRequest) error
}

// AddCadetRequest contains parameters for creating a cadet.
type AddCadetRequest struct {
	CAPID       int
	FirstName   string
	LastName    string
	DateOfBirth string // YYYY-MM-DD, optional
	JoinDate    string // YYYY-MM-DD, optional
}

// UpdateCadetRequest contains parameters for updating a cadet.
// Empty fields are left unchanged.
type UpdateCadetRequest struct {
	CAPID       int
	FirstName   string
	LastName    string
	DateOfBirth string
	JoinDate    string
}

// Cadet represents a cadet at the port boundary.
type Cadet struct {
	ID          int64
	CAPID       int
	FirstName   string
	LastName    string
	DateOfBirth string
	JoinDate    string
	CreatedAt   string
}
