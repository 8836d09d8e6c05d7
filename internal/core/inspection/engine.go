package inspection

import (
	"fmt"
	"strings"

	"github.com/example/cadet-tracker/internal/apperr"
)

// MaxItemScore is the highest score a single checklist line can receive.
const MaxItemScore = 3

// Rating is the qualitative label derived from an inspection total.
type Rating string

const (
	RatingExcellent        Rating = "Excellent"
	RatingMeetsStandard    Rating = "Meets Standard"
	RatingNeedsImprovement Rating = "Needs Improvement"
	RatingUnacceptable     Rating = "Unacceptable"
)

// Item is one scored line of a submitted checklist.
type Item struct {
	Section string
	Name    string
	Score   int
	Comment string
}

// Result is the aggregate outcome of scoring a checklist.
type Result struct {
	Total    int
	Rating   Rating
	Comments string
}

// maxCommentLen caps the combined comment blob at the column width of the
// comments field.
const maxCommentLen = 255

// Engine aggregates submitted checklists against a fixed catalog.
type Engine struct {
	catalog Catalog
}

// NewEngine creates an engine for the given catalog.
func NewEngine(catalog Catalog) *Engine {
	return &Engine{catalog: catalog}
}

// Catalog returns the checklist catalog the engine scores against.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Calculate aggregates a submitted checklist into a total, a rating and a
// combined comment blob. The checklist must cover every catalog item exactly
// once with each score in [0,3]. Calculate is pure: the same input always
// produces the same result.
func (e *Engine) Calculate(items []Item, overallComment string) (Result, error) {
	if len(items) == 0 {
		return Result{}, apperr.Validation("checklist is empty")
	}

	seen := make(map[[2]string]bool, len(items))
	total := 0
	for _, it := range items {
		if it.Score < 0 || it.Score > MaxItemScore {
			return Result{}, apperr.Validation("score %d for %q (%s) is outside 0-%d", it.Score, it.Name, it.Section, MaxItemScore)
		}
		if !e.catalog.contains(it.Section, it.Name) {
			return Result{}, apperr.Validation("item %q (%s) is not on the checklist", it.Name, it.Section)
		}
		key := [2]string{it.Section, it.Name}
		if seen[key] {
			return Result{}, apperr.Validation("item %q (%s) scored more than once", it.Name, it.Section)
		}
		seen[key] = true
		total += it.Score
	}
	if len(seen) != e.catalog.ItemCount() {
		return Result{}, apperr.Validation("checklist covers %d of %d items", len(seen), e.catalog.ItemCount())
	}

	return Result{
		Total:    total,
		Rating:   RatingFor(total),
		Comments: combineComments(items, overallComment),
	}, nil
}

// RatingFor maps a total score to its rating. The breakpoints are fixed at
// the published 20-item scale (60 max points):
//
//	45-60: Excellent
//	30-44: Meets Standard
//	16-29: Needs Improvement
//	 0-15: Unacceptable
//
// They are not rescaled for other catalog sizes; a unit overriding the
// catalog keeps the same boundaries.
func RatingFor(total int) Rating {
	switch {
	case total >= 45:
		return RatingExcellent
	case total >= 30:
		return RatingMeetsStandard
	case total >= 16:
		return RatingNeedsImprovement
	default:
		return RatingUnacceptable
	}
}

// combineComments joins per-item comments as "<section> - <comment>", appends
// "Overall: <comment>" when present, and truncates the result to the stored
// column width.
func combineComments(items []Item, overallComment string) string {
	var parts []string
	for _, it := range items {
		if c := strings.TrimSpace(it.Comment); c != "" {
			parts = append(parts, fmt.Sprintf("%s - %s", it.Section, c))
		}
	}
	if oc := strings.TrimSpace(overallComment); oc != "" {
		parts = append(parts, "Overall: "+oc)
	}
	combined := strings.Join(parts, " | ")
	if len(combined) > maxCommentLen {
		combined = combined[:maxCommentLen]
	}
	return combined
}
