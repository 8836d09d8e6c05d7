package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// PositionServiceImpl implements the PositionService interface.
type PositionServiceImpl struct {
	cadetRepo    secondary.CadetRepository
	positionRepo secondary.PositionRepository
	logWriter    secondary.LogWriter
}

// NewPositionService creates a new PositionService with injected dependencies.
func NewPositionService(cadetRepo secondary.CadetRepository, positionRepo secondary.PositionRepository, logWriter secondary.LogWriter) *PositionServiceImpl {
	return &PositionServiceImpl{cadetRepo: cadetRepo, positionRepo: positionRepo, logWriter: logWriter}
}

// CreatePosition adds a position to the catalog.
func (s *PositionServiceImpl) CreatePosition(ctx context.Context, req primary.CreatePositionRequest) (*primary.Position, error) {
	if req.Name == "" {
		return nil, apperr.Validation("position name is required")
	}

	id, err := s.positionRepo.Create(ctx, &secondary.PositionRecord{
		Name:  req.Name,
		Line:  req.Line,
		Level: req.Level,
	})
	if err != nil {
		return nil, err
	}

	_ = s.logWriter.LogCreate(ctx, "position", strconv.FormatInt(id, 10))

	return &primary.Position{ID: id, Name: req.Name, Line: req.Line, Level: req.Level}, nil
}

// ListPositions lists the position catalog.
func (s *PositionServiceImpl) ListPositions(ctx context.Context) ([]*primary.Position, error) {
	records, err := s.positionRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	positions := make([]*primary.Position, len(records))
	for i, r := range records {
		positions[i] = &primary.Position{ID: r.ID, Name: r.Name, Line: r.Line, Level: r.Level}
	}
	return positions, nil
}

// AssignPosition assigns a position to a cadet.
func (s *PositionServiceImpl) AssignPosition(ctx context.Context, req primary.AssignPositionRequest) error {
	startDate, err := normalizeDate("start date", req.StartDate)
	if err != nil {
		return err
	}

	cadet, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return err
	}

	position, err := s.positionRepo.GetByID(ctx, req.PositionID)
	if err != nil {
		return err
	}

	if err := s.positionRepo.Assign(ctx, cadet.ID, position.ID, startDate); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "cadet", strconv.FormatInt(cadet.ID, 10), "position", "", position.Name)
	return nil
}

// CadetPositions lists a cadet's assignments, newest first.
func (s *PositionServiceImpl) CadetPositions(ctx context.Context, capID int) ([]*primary.PositionAssignment, error) {
	cadet, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}

	records, err := s.positionRepo.ForCadet(ctx, cadet.ID)
	if err != nil {
		return nil, err
	}

	assignments := make([]*primary.PositionAssignment, len(records))
	for i, r := range records {
		assignments[i] = &primary.PositionAssignment{
			ID:           r.ID,
			PositionID:   r.PositionID,
			PositionName: r.PositionName,
			StartDate:    r.StartDate,
			EndDate:      r.EndDate,
		}
	}
	return assignments, nil
}

// EndAssignment closes an open assignment with an end date.
func (s *PositionServiceImpl) EndAssignment(ctx context.Context, assignmentID int64, endDate string) error {
	endDate, err := normalizeDate("end date", endDate)
	if err != nil {
		return err
	}

	if err := s.positionRepo.EndAssignment(ctx, assignmentID, endDate); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "assignment", strconv.FormatInt(assignmentID, 10), "end_date", "", endDate)
	return nil
}

// Ensure PositionServiceImpl implements the interface
var _ primary.PositionService = (*PositionServiceImpl)(nil)
