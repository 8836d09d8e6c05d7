// Package promotion contains the pure rules for determining a cadet's next
// promotion target and classifying the requirements that gate it. Nothing
// here touches storage; callers supply the rank catalog, the cadet's awarded
// ranks and the completion set.
package promotion

import (
	"sort"

	"github.com/example/cadet-tracker/internal/apperr"
)

// Rank is one entry of the ordered rank catalog. Higher Order is more senior.
type Rank struct {
	ID    int64
	Name  string
	Order int
}

// Requirement is a named criterion gating promotion to a rank.
type Requirement struct {
	ID          int64
	Name        string
	Description string
}

// RequirementStatus is one requirement of the promotion target together with
// the cadet's completion state.
type RequirementStatus struct {
	RequirementID int64
	Name          string
	Description   string
	Complete      bool
	CompletedOn   string
}

// NextRank determines the cadet's promotion target. The current rank is the
// awarded rank with the highest order; the next rank is the catalog entry
// with the smallest order strictly above it. A cadet with no awarded rank
// targets the entry-level rank. A nil result means there is nothing to
// promote to: the catalog is empty or the cadet holds the top rank.
//
// Order values are unique by invariant; a catalog with duplicates is
// corrupted and reported as a data-integrity error rather than silently
// resolved.
func NextRank(awarded []Rank, catalog []Rank) (*Rank, error) {
	ordersSeen := make(map[int]int64, len(catalog))
	for _, r := range catalog {
		if other, dup := ordersSeen[r.Order]; dup {
			return nil, apperr.DataIntegrity("ranks %d and %d share order %d", other, r.ID, r.Order)
		}
		ordersSeen[r.Order] = r.ID
	}

	hasCurrent := false
	currentOrder := 0
	for _, r := range awarded {
		if !hasCurrent || r.Order > currentOrder {
			hasCurrent = true
			currentOrder = r.Order
		}
	}

	var next *Rank
	for i := range catalog {
		r := &catalog[i]
		if hasCurrent && r.Order <= currentOrder {
			continue
		}
		if next == nil || r.Order < next.Order {
			next = r
		}
	}
	if next == nil {
		return nil, nil
	}
	out := *next
	return &out, nil
}

// ClassifyRequirements marks each requirement of the promotion target as
// complete or incomplete based on the cadet's completion records. completed
// maps requirement IDs to the recorded completion date. Results come back in
// ascending requirement ID order for a stable display.
func ClassifyRequirements(requirements []Requirement, completed map[int64]string) []RequirementStatus {
	statuses := make([]RequirementStatus, 0, len(requirements))
	for _, req := range requirements {
		date, done := completed[req.ID]
		statuses = append(statuses, RequirementStatus{
			RequirementID: req.ID,
			Name:          req.Name,
			Description:   req.Description,
			Complete:      done,
			CompletedOn:   date,
		})
	}
	sort.Slice(statuses, func(i, j int) bool {
		return statuses[i].RequirementID < statuses[j].RequirementID
	})
	return statuses
}
