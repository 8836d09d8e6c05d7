package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/core/promotion"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// PromotionServiceImpl implements the PromotionService interface.
type PromotionServiceImpl struct {
	cadetRepo       secondary.CadetRepository
	rankRepo        secondary.RankRepository
	requirementRepo secondary.RequirementRepository
	completionRepo  secondary.CompletionRepository
	logWriter       secondary.LogWriter
}

// NewPromotionService creates a new PromotionService with injected dependencies.
func NewPromotionService(
	cadetRepo secondary.CadetRepository,
	rankRepo secondary.RankRepository,
	requirementRepo secondary.RequirementRepository,
	completionRepo secondary.CompletionRepository,
	logWriter secondary.LogWriter,
) *PromotionServiceImpl {
	return &PromotionServiceImpl{
		cadetRepo:       cadetRepo,
		rankRepo:        rankRepo,
		requirementRepo: requirementRepo,
		completionRepo:  completionRepo,
		logWriter:       logWriter,
	}
}

// PromotionStatus determines the cadet's next promotion target and the
// completion state of every requirement gating it.
func (s *PromotionServiceImpl) PromotionStatus(ctx context.Context, capID int) (*primary.PromotionStatus, error) {
	cadet, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}

	catalogRecords, err := s.rankRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}
	awardedRecords, err := s.rankRepo.RanksForCadet(ctx, cadet.ID)
	if err != nil {
		return nil, err
	}

	catalog := make([]promotion.Rank, len(catalogRecords))
	for i, r := range catalogRecords {
		catalog[i] = promotion.Rank{ID: r.ID, Name: r.Name, Order: r.Order}
	}
	awarded := make([]promotion.Rank, len(awardedRecords))
	for i, r := range awardedRecords {
		awarded[i] = promotion.Rank{ID: r.ID, Name: r.Name, Order: r.Order}
	}

	next, err := promotion.NextRank(awarded, catalog)
	if err != nil {
		return nil, err
	}

	status := &primary.PromotionStatus{CadetID: cadet.ID}
	for _, r := range awarded {
		if status.CurrentRank == nil || r.Order > status.CurrentRank.Order {
			status.CurrentRank = &primary.Rank{ID: r.ID, Name: r.Name, Order: r.Order}
		}
	}
	if next == nil {
		return status, nil
	}
	status.NextRank = &primary.Rank{ID: next.ID, Name: next.Name, Order: next.Order}

	reqRecords, err := s.requirementRepo.ForRank(ctx, next.ID)
	if err != nil {
		return nil, err
	}
	completed, err := s.completionRepo.CompletedForCadet(ctx, cadet.ID)
	if err != nil {
		return nil, err
	}

	requirements := make([]promotion.Requirement, len(reqRecords))
	for i, r := range reqRecords {
		requirements[i] = promotion.Requirement{ID: r.ID, Name: r.Name, Description: r.Description}
	}
	for _, rs := range promotion.ClassifyRequirements(requirements, completed) {
		status.Requirements = append(status.Requirements, &primary.RequirementStatus{
			RequirementID: rs.RequirementID,
			Name:          rs.Name,
			Description:   rs.Description,
			Complete:      rs.Complete,
			CompletedOn:   rs.CompletedOn,
		})
	}
	return status, nil
}

// ToggleRequirement marks a requirement complete or incomplete for a cadet.
// Idempotent in both directions.
func (s *PromotionServiceImpl) ToggleRequirement(ctx context.Context, req primary.ToggleRequirementRequest) error {
	cadet, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return err
	}
	requirement, err := s.requirementRepo.GetByID(ctx, req.RequirementID)
	if err != nil {
		return err
	}

	exists, err := s.completionRepo.Exists(ctx, cadet.ID, requirement.ID)
	if err != nil {
		return err
	}

	if req.Completed {
		if exists {
			return nil
		}
		completedOn, err := normalizeDate("completion date", req.CompletedOn)
		if err != nil {
			return err
		}
		if err := s.completionRepo.Insert(ctx, cadet.ID, requirement.ID, completedOn); err != nil {
			return err
		}
		_ = s.logWriter.LogUpdate(ctx, "cadet", strconv.FormatInt(cadet.ID, 10), "requirement", "", requirement.Name)
		return nil
	}

	if !exists {
		return nil
	}
	if err := s.completionRepo.Delete(ctx, cadet.ID, requirement.ID); err != nil {
		return err
	}
	_ = s.logWriter.LogUpdate(ctx, "cadet", strconv.FormatInt(cadet.ID, 10), "requirement", requirement.Name, "")
	return nil
}

// Ensure PromotionServiceImpl implements the interface
var _ primary.PromotionService = (*PromotionServiceImpl)(nil)
