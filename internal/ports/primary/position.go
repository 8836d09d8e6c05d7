package primary

import "context"

// PositionService defines the primary port for duty positions.
type PositionService interface {
	// CreatePosition adds a position to the catalog.
	CreatePosition(ctx context.Context, req CreatePositionRequest) (*Position, error)

	// ListPositions lists the position catalog.
	ListPositions(ctx context.Context) ([]*Position, error)

	// AssignPosition assigns a position to a cadet.
	AssignPosition(ctx context.Context, req AssignPositionRequest) error

	// CadetPositions lists a cadet's assignments, newest first.
	CadetPositions(ctx context.Context, capID int) ([]*PositionAssignment, error)

	// EndAssignment closes an open assignment with an end date.
	EndAssignment(ctx context.Context, assignmentID int64, endDate string) error
}

// CreatePositionRequest contains parameters for creating a position.
type CreatePositionRequest struct {
	Name  string
	Line  bool
	Level int
}

// AssignPositionRequest contains parameters for assigning a position.
type AssignPositionRequest struct {
	CAPID      int
	PositionID int64
	StartDate  string // YYYY-MM-DD, defaults to today
}

// Position represents a position catalog entry at the port boundary.
type Position struct {
	ID    int64
	Name  string
	Line  bool
	Level int
}

// PositionAssignment represents a cadet's position assignment.
type PositionAssignment struct {
	ID           int64
	PositionID   int64
	PositionName string
	StartDate    string
	EndDate      string
}
