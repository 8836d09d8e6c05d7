package primary

import "context"

// InspectionService defines the primary port for uniform inspections.
type InspectionService interface {
	// Calculate scores a checklist without persisting anything. Forms call
	// this on every edit; the result is deterministic for the same input.
	Calculate(ctx context.Context, req CalculateRequest) (*InspectionResult, error)

	// SubmitInspection scores a checklist and persists it. An existing
	// inspection for the same cadet and date is updated in place; header
	// and item breakdown commit or roll back together.
	SubmitInspection(ctx context.Context, req SubmitInspectionRequest) (*Inspection, error)

	// FindInspection retrieves the inspection for a cadet and date, or nil
	// when none exists.
	FindInspection(ctx context.Context, capID int, date string) (*Inspection, error)

	// ListInspections lists a cadet's inspections, newest first.
	ListInspections(ctx context.Context, capID int) ([]*Inspection, error)

	// Checklist returns the catalog the engine scores against.
	Checklist(ctx context.Context) *Checklist
}

// ChecklistItem is one scored line of a submitted checklist.
type ChecklistItem struct {
	Section string
	Name    string
	Score   int
	Comment string
}

// CalculateRequest contains a checklist to score.
type CalculateRequest struct {
	Items          []ChecklistItem
	OverallComment string
}

// InspectionResult is the computed aggregate for a checklist.
type InspectionResult struct {
	Total    int
	MaxTotal int
	Rating   string
	Comments string
}

// SubmitInspectionRequest contains parameters for submitting an inspection.
type SubmitInspectionRequest struct {
	CAPID          int
	InspectorCAPID int    // optional, 0 means not recorded
	Date           string // YYYY-MM-DD, defaults to today
	Items          []ChecklistItem
	OverallComment string
}

// Inspection represents a persisted inspection at the port boundary.
type Inspection struct {
	ID             int64
	CadetID        int64
	InspectorCAPID int
	Date           string
	Total          int
	Rating         string
	Comments       string
	Items          []ChecklistItem // empty when the schema has no breakdown
}

// Checklist is the catalog of sections and items an inspection covers.
type Checklist struct {
	Sections []ChecklistSection
}

// ChecklistSection is one block of the checklist.
type ChecklistSection struct {
	Name  string
	Items []string
}
