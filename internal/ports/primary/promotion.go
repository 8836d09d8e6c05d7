package primary

import "context"

// PromotionService defines the primary port for promotion evaluation.
type PromotionService interface {
	// PromotionStatus determines the cadet's next promotion target and the
	// completion state of every requirement gating it. NextRank is nil
	// when the cadet holds the top rank or the catalog is empty.
	PromotionStatus(ctx context.Context, capID int) (*PromotionStatus, error)

	// ToggleRequirement marks a requirement complete or incomplete for a
	// cadet. Idempotent in both directions: re-marking a completed
	// requirement or unmarking an incomplete one is a no-op.
	ToggleRequirement(ctx context.Context, req ToggleRequirementRequest) error
}

// ToggleRequirementRequest contains parameters for toggling a requirement.
type ToggleRequirementRequest struct {
	CAPID         int
	RequirementID int64
	Completed     bool
	CompletedOn   string // YYYY-MM-DD, defaults to today when marking complete
}

// PromotionStatus is the per-requirement completion view for a cadet's next
// promotion target.
type PromotionStatus struct {
	CadetID      int64
	CurrentRank  *Rank // nil when the cadet holds no rank yet
	NextRank     *Rank // nil when at top rank or catalog is empty
	Requirements []*RequirementStatus
}

// RequirementStatus is one requirement of the promotion target with the
// cadet's completion state.
type RequirementStatus struct {
	RequirementID int64
	Name          string
	Description   string
	Complete      bool
	CompletedOn   string
}
