package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// CadetServiceImpl implements the CadetService interface.
type CadetServiceImpl struct {
	cadetRepo secondary.CadetRepository
	logWriter secondary.LogWriter
}

// NewCadetService creates a new CadetService with injected dependencies.
func NewCadetService(cadetRepo secondary.CadetRepository, logWriter secondary.LogWriter) *CadetServiceImpl {
	return &CadetServiceImpl{cadetRepo: cadetRepo, logWriter: logWriter}
}

// recordToCadet converts a persistence record to a port DTO.
func recordToCadet(r *secondary.CadetRecord) *primary.Cadet {
	return &primary.Cadet{
		ID:          r.ID,
		CAPID:       r.CAPID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		DateOfBirth: r.DateOfBirth,
		JoinDate:    r.JoinDate,
		CreatedAt:   r.CreatedAt,
	}
}

// AddCadet creates a new cadet record.
func (s *CadetServiceImpl) AddCadet(ctx context.Context, req primary.AddCadetRequest) (*primary.Cadet, error) {
	if req.CAPID <= 0 {
		return nil, apperr.Validation("CAP ID must be a positive number")
	}
	if req.FirstName == "" {
		return nil, apperr.Validation("first name is required")
	}
	if req.LastName == "" {
		return nil, apperr.Validation("last name is required")
	}
	if err := validateOptionalDate("date of birth", req.DateOfBirth); err != nil {
		return nil, err
	}
	if err := validateOptionalDate("join date", req.JoinDate); err != nil {
		return nil, err
	}

	id, err := s.cadetRepo.Create(ctx, &secondary.CadetRecord{
		CAPID:       req.CAPID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		JoinDate:    req.JoinDate,
	})
	if err != nil {
		return nil, err
	}

	_ = s.logWriter.LogCreate(ctx, "cadet", strconv.FormatInt(id, 10))

	created, err := s.cadetRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToCadet(created), nil
}

// GetCadetByCAPID retrieves a cadet by external CAP ID.
func (s *CadetServiceImpl) GetCadetByCAPID(ctx context.Context, capID int) (*primary.Cadet, error) {
	record, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}
	return recordToCadet(record), nil
}

// ListCadets lists all cadets.
func (s *CadetServiceImpl) ListCadets(ctx context.Context) ([]*primary.Cadet, error) {
	records, err := s.cadetRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	cadets := make([]*primary.Cadet, len(records))
	for i, r := range records {
		cadets[i] = recordToCadet(r)
	}
	return cadets, nil
}

// UpdateCadet updates a cadet's personal fields.
func (s *CadetServiceImpl) UpdateCadet(ctx context.Context, req primary.UpdateCadetRequest) error {
	if err := validateOptionalDate("date of birth", req.DateOfBirth); err != nil {
		return err
	}
	if err := validateOptionalDate("join date", req.JoinDate); err != nil {
		return err
	}

	existing, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return err
	}

	err = s.cadetRepo.Update(ctx, &secondary.CadetRecord{
		ID:          existing.ID,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		DateOfBirth: req.DateOfBirth,
		JoinDate:    req.JoinDate,
	})
	if err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "cadet", strconv.FormatInt(existing.ID, 10), "personal", "", "")
	return nil
}

// Ensure CadetServiceImpl implements the interface
var _ primary.CadetService = (*CadetServiceImpl)(nil)
