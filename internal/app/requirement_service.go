package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// RequirementServiceImpl implements the RequirementService interface.
type RequirementServiceImpl struct {
	requirementRepo secondary.RequirementRepository
	rankRepo        secondary.RankRepository
	logWriter       secondary.LogWriter
}

// NewRequirementService creates a new RequirementService with injected dependencies.
func NewRequirementService(requirementRepo secondary.RequirementRepository, rankRepo secondary.RankRepository, logWriter secondary.LogWriter) *RequirementServiceImpl {
	return &RequirementServiceImpl{requirementRepo: requirementRepo, rankRepo: rankRepo, logWriter: logWriter}
}

func recordToRequirement(r *secondary.RequirementRecord) *primary.Requirement {
	return &primary.Requirement{ID: r.ID, Name: r.Name, Description: r.Description}
}

// CreateRequirement creates a new requirement.
func (s *RequirementServiceImpl) CreateRequirement(ctx context.Context, req primary.CreateRequirementRequest) (*primary.Requirement, error) {
	if req.Name == "" {
		return nil, apperr.Validation("requirement name is required")
	}

	id, err := s.requirementRepo.Create(ctx, &secondary.RequirementRecord{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return nil, err
	}

	_ = s.logWriter.LogCreate(ctx, "requirement", strconv.FormatInt(id, 10))

	return &primary.Requirement{ID: id, Name: req.Name, Description: req.Description}, nil
}

// UpdateRequirement updates a requirement's name and/or description.
func (s *RequirementServiceImpl) UpdateRequirement(ctx context.Context, req primary.UpdateRequirementRequest) error {
	if req.Name == "" && req.Description == "" {
		return apperr.Validation("nothing to update")
	}

	existing, err := s.requirementRepo.GetByID(ctx, req.RequirementID)
	if err != nil {
		return err
	}

	err = s.requirementRepo.Update(ctx, &secondary.RequirementRecord{
		ID:          existing.ID,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "requirement", strconv.FormatInt(existing.ID, 10), "definition", "", "")
	return nil
}

// ListRequirements lists all requirements.
func (s *RequirementServiceImpl) ListRequirements(ctx context.Context) ([]*primary.Requirement, error) {
	records, err := s.requirementRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	requirements := make([]*primary.Requirement, len(records))
	for i, r := range records {
		requirements[i] = recordToRequirement(r)
	}
	return requirements, nil
}

// RequirementsForRank lists the requirements linked to a rank.
func (s *RequirementServiceImpl) RequirementsForRank(ctx context.Context, rankID int64) ([]*primary.Requirement, error) {
	if _, err := s.rankRepo.GetByID(ctx, rankID); err != nil {
		return nil, err
	}

	records, err := s.requirementRepo.ForRank(ctx, rankID)
	if err != nil {
		return nil, err
	}

	requirements := make([]*primary.Requirement, len(records))
	for i, r := range records {
		requirements[i] = recordToRequirement(r)
	}
	return requirements, nil
}

// LinkRequirement binds a requirement to a rank.
func (s *RequirementServiceImpl) LinkRequirement(ctx context.Context, rankID, requirementID int64) error {
	rank, err := s.rankRepo.GetByID(ctx, rankID)
	if err != nil {
		return err
	}
	requirement, err := s.requirementRepo.GetByID(ctx, requirementID)
	if err != nil {
		return err
	}

	exists, err := s.requirementRepo.LinkExists(ctx, rankID, requirementID)
	if err != nil {
		return err
	}
	if exists {
		return apperr.Validation("requirement %q is already linked to rank %q", requirement.Name, rank.Name)
	}

	if err := s.requirementRepo.Link(ctx, rankID, requirementID); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "rank", strconv.FormatInt(rankID, 10), "requirements", "", requirement.Name)
	return nil
}

// UnlinkRequirement removes the binding between a requirement and a rank.
func (s *RequirementServiceImpl) UnlinkRequirement(ctx context.Context, rankID, requirementID int64) error {
	requirement, err := s.requirementRepo.GetByID(ctx, requirementID)
	if err != nil {
		return err
	}

	if err := s.requirementRepo.Unlink(ctx, rankID, requirementID); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "rank", strconv.FormatInt(rankID, 10), "requirements", requirement.Name, "")
	return nil
}

// Ensure RequirementServiceImpl implements the interface
var _ primary.RequirementService = (*RequirementServiceImpl)(nil)
