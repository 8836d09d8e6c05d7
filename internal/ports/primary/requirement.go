package primary

import "context"

// RequirementService defines the primary port for requirement administration.
type RequirementService interface {
	// CreateRequirement creates a new requirement.
	CreateRequirement(ctx context.Context, req CreateRequirementRequest) (*Requirement, error)

	// UpdateRequirement updates a requirement's name and/or description.
	UpdateRequirement(ctx context.Context, req UpdateRequirementRequest) error

	// ListRequirements lists all requirements.
	ListRequirements(ctx context.Context) ([]*Requirement, error)

	// RequirementsForRank lists the requirements linked to a rank.
	RequirementsForRank(ctx context.Context, rankID int64) ([]*Requirement, error)

	// LinkRequirement binds a requirement to a rank. Duplicate links are
	// rejected with a clear message.
	LinkRequirement(ctx context.Context, rankID, requirementID int64) error

	// UnlinkRequirement removes the binding between a requirement and a rank.
	UnlinkRequirement(ctx context.Context, rankID, requirementID int64) error
}

// CreateRequirementRequest contains parameters for creating a requirement.
type CreateRequirementRequest struct {
	Name        string
	Description string
}

// UpdateRequirementRequest contains parameters for updating a requirement.
// Empty fields are left unchanged.
type UpdateRequirementRequest struct {
	RequirementID int64
	Name          string
	Description   string
}

// Requirement represents a requirement at the port boundary.
type Requirement struct {
	ID          int64
	Name        string
	Description string
}
