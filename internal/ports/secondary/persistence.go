// Package secondary defines the secondary ports (driven adapters) for the
// application. These are the interfaces through which the application drives
// the storage layer.
package secondary

import "context"

// CadetRepository defines the secondary port for cadet persistence.
type CadetRepository interface {
	// Create persists a new cadet and returns its ID.
	Create(ctx context.Context, cadet *CadetRecord) (int64, error)

	// GetByID retrieves a cadet by its internal ID.
	GetByID(ctx context.Context, id int64) (*CadetRecord, error)

	// GetByCAPID retrieves a cadet by its external CAP ID.
	GetByCAPID(ctx context.Context, capID int) (*CadetRecord, error)

	// List retrieves all cadets ordered by last name.
	List(ctx context.Context) ([]*CadetRecord, error)

	// Update updates an existing cadet's personal fields.
	Update(ctx context.Context, cadet *CadetRecord) error
}

// CadetRecord represents a cadet as stored in persistence.
type CadetRecord struct {
	ID          int64
	CAPID       int
	FirstName   string
	LastName    string
	DateOfBirth string // YYYY-MM-DD, empty means null
	JoinDate    string // YYYY-MM-DD, empty means null
	CreatedAt   string
	UpdatedAt   string
}

// RankRepository defines the secondary port for the rank catalog and awards.
type RankRepository interface {
	// ListOrdered retrieves the rank catalog ordered by rank_order ascending.
	ListOrdered(ctx context.Context) ([]*RankRecord, error)

	// GetByID retrieves a rank by its ID.
	GetByID(ctx context.Context, id int64) (*RankRecord, error)

	// RanksForCadet retrieves the ranks awarded to a cadet.
	RanksForCadet(ctx context.Context, cadetID int64) ([]*RankRecord, error)

	// SetCadetRank replaces the cadet's rank awards with the given rank
	// inside a single transaction (delete prior rows, then insert).
	SetCadetRank(ctx context.Context, cadetID, rankID int64, awardedOn string) error
}

// RankRecord represents a rank catalog entry as stored in persistence.
type RankRecord struct {
	ID    int64
	Name  string
	Order int
}

// RequirementRepository defines the secondary port for promotion requirements
// and their rank links.
type RequirementRepository interface {
	// Create persists a new requirement and returns its ID.
	Create(ctx context.Context, req *RequirementRecord) (int64, error)

	// GetByID retrieves a requirement by its ID.
	GetByID(ctx context.Context, id int64) (*RequirementRecord, error)

	// Update updates an existing requirement.
	Update(ctx context.Context, req *RequirementRecord) error

	// List retrieves all requirements ordered by ID.
	List(ctx context.Context) ([]*RequirementRecord, error)

	// ForRank retrieves the requirements linked to a rank, ordered by ID.
	ForRank(ctx context.Context, rankID int64) ([]*RequirementRecord, error)

	// Link associates a requirement with a rank.
	Link(ctx context.Context, rankID, requirementID int64) error

	// Unlink removes the association between a requirement and a rank.
	Unlink(ctx context.Context, rankID, requirementID int64) error

	// LinkExists checks whether a rank-requirement link already exists.
	LinkExists(ctx context.Context, rankID, requirementID int64) (bool, error)
}

// RequirementRecord represents a requirement as stored in persistence.
type RequirementRecord struct {
	ID          int64
	Name        string
	Description string
}

// CompletionRepository defines the secondary port for requirement completion
// records. Presence of a record means the requirement is satisfied.
type CompletionRepository interface {
	// CompletedForCadet retrieves the cadet's completion records as a map
	// of requirement ID to completion date.
	CompletedForCadet(ctx context.Context, cadetID int64) (map[int64]string, error)

	// Exists checks whether a completion record exists for the pair.
	Exists(ctx context.Context, cadetID, requirementID int64) (bool, error)

	// Insert records a completion. The uniqueness constraint on the pair
	// guards against duplicates under retry.
	Insert(ctx context.Context, cadetID, requirementID int64, dateCompleted string) error

	// Delete removes the completion record for the pair, if any.
	Delete(ctx context.Context, cadetID, requirementID int64) error
}

// InspectionRepository defines the secondary port for inspection persistence.
type InspectionRepository interface {
	// Find retrieves the inspection for a cadet and date, or nil when none
	// exists.
	Find(ctx context.Context, cadetID int64, date string) (*InspectionRecord, error)

	// GetByID retrieves an inspection by its ID.
	GetByID(ctx context.Context, id int64) (*InspectionRecord, error)

	// Upsert writes the inspection header and its item breakdown
	// atomically. An existing inspection for the same cadet and date is
	// updated in place and its breakdown rows replaced. Returns the
	// inspection ID.
	Upsert(ctx context.Context, insp *InspectionRecord, items []*InspectionItemRecord) (int64, error)

	// ListForCadet retrieves a cadet's inspections, newest first.
	ListForCadet(ctx context.Context, cadetID int64) ([]*InspectionRecord, error)

	// Breakdown retrieves the per-item rows for an inspection. Empty on
	// legacy databases without breakdown support.
	Breakdown(ctx context.Context, inspectionID int64) ([]*InspectionItemRecord, error)

	// SupportsBreakdown reports whether the connected schema can persist
	// per-item rows. Resolved once at startup, never re-probed.
	SupportsBreakdown() bool
}

// InspectionRecord represents an inspection header as stored in persistence.
type InspectionRecord struct {
	ID             int64
	CadetID        int64
	InspectorCAPID int // 0 means null
	Date           string
	Total          int
	Rating         string
	Comments       string
	CreatedAt      string
	UpdatedAt      string
}

// InspectionItemRecord represents one scored checklist line as stored in
// persistence.
type InspectionItemRecord struct {
	Section string
	Item    string
	Score   int
	Comment string
}

// PositionRepository defines the secondary port for duty positions.
type PositionRepository interface {
	// Create persists a new position and returns its ID.
	Create(ctx context.Context, pos *PositionRecord) (int64, error)

	// GetByID retrieves a position by its ID.
	GetByID(ctx context.Context, id int64) (*PositionRecord, error)

	// List retrieves the position catalog ordered by ID.
	List(ctx context.Context) ([]*PositionRecord, error)

	// Assign assigns a position to a cadet from the given start date.
	Assign(ctx context.Context, cadetID, positionID int64, startDate string) error

	// ForCadet retrieves a cadet's assignments, newest first.
	ForCadet(ctx context.Context, cadetID int64) ([]*PositionAssignmentRecord, error)

	// EndAssignment closes an open assignment with an end date.
	EndAssignment(ctx context.Context, assignmentID int64, endDate string) error
}

// PositionRecord represents a position catalog entry.
type PositionRecord struct {
	ID    int64
	Name  string
	Line  bool // line/staff position vs support
	Level int
}

// PositionAssignmentRecord represents a cadet's position assignment.
type PositionAssignmentRecord struct {
	ID           int64
	CadetID      int64
	PositionID   int64
	PositionName string
	StartDate    string
	EndDate      string // empty means open-ended
}

// ReportRepository defines the secondary port for incident reports.
type ReportRepository interface {
	// Create persists a new report and returns its ID.
	Create(ctx context.Context, report *ReportRecord) (int64, error)

	// GetByID retrieves a report by its ID.
	GetByID(ctx context.Context, id int64) (*ReportRecord, error)

	// List retrieves reports matching the filters, newest first.
	List(ctx context.Context, filters ReportFilters) ([]*ReportRecord, error)

	// Resolve marks a report resolved and records who resolved it.
	Resolve(ctx context.Context, id int64, resolvedBy string) error
}

// ReportRecord represents an incident report as stored in persistence.
type ReportRecord struct {
	ID           int64
	CadetID      int64
	Type         string // "Good" or "Bad"
	Description  string
	CreatedBy    string
	IncidentDate string
	Resolved     bool
	ResolvedBy   string
	CreatedAt    string
}

// ReportFilters contains filter options for querying reports.
type ReportFilters struct {
	CadetID    int64 // 0 means all cadets
	Unresolved bool  // only unresolved reports
}

// AuditLogRepository defines the secondary port for audit log rows.
type AuditLogRepository interface {
	// Create persists a new audit log entry.
	Create(ctx context.Context, entry *AuditRecord) error

	// ListRecent retrieves the most recent entries, newest first.
	ListRecent(ctx context.Context, limit int) ([]*AuditRecord, error)
}

// AuditRecord represents an audit log entry as stored in persistence.
type AuditRecord struct {
	ID         int64
	EntityType string
	EntityID   string
	Action     string
	FieldName  string
	OldValue   string
	NewValue   string
	CreatedAt  string
}
