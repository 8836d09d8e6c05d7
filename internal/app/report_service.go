package app

import (
	"context"
	"strconv"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// ReportServiceImpl implements the ReportService interface.
type ReportServiceImpl struct {
	cadetRepo  secondary.CadetRepository
	reportRepo secondary.ReportRepository
	logWriter  secondary.LogWriter
}

// NewReportService creates a new ReportService with injected dependencies.
func NewReportService(cadetRepo secondary.CadetRepository, reportRepo secondary.ReportRepository, logWriter secondary.LogWriter) *ReportServiceImpl {
	return &ReportServiceImpl{cadetRepo: cadetRepo, reportRepo: reportRepo, logWriter: logWriter}
}

func recordToReport(r *secondary.ReportRecord) *primary.Report {
	return &primary.Report{
		ID:           r.ID,
		CadetID:      r.CadetID,
		Type:         r.Type,
		Description:  r.Description,
		CreatedBy:    r.CreatedBy,
		IncidentDate: r.IncidentDate,
		Resolved:     r.Resolved,
		ResolvedBy:   r.ResolvedBy,
		CreatedAt:    r.CreatedAt,
	}
}

// FileReport records a new incident report.
func (s *ReportServiceImpl) FileReport(ctx context.Context, req primary.FileReportRequest) (*primary.Report, error) {
	if req.Type != "Good" && req.Type != "Bad" {
		return nil, apperr.Validation("report type %q must be Good or Bad", req.Type)
	}
	if req.Description == "" {
		return nil, apperr.Validation("report description is required")
	}

	incidentDate, err := normalizeDate("incident date", req.IncidentDate)
	if err != nil {
		return nil, err
	}

	cadet, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return nil, err
	}

	id, err := s.reportRepo.Create(ctx, &secondary.ReportRecord{
		CadetID:      cadet.ID,
		Type:         req.Type,
		Description:  req.Description,
		CreatedBy:    req.CreatedBy,
		IncidentDate: incidentDate,
	})
	if err != nil {
		return nil, err
	}

	_ = s.logWriter.LogCreate(ctx, "report", strconv.FormatInt(id, 10))

	created, err := s.reportRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return recordToReport(created), nil
}

// GetReport retrieves a report by ID.
func (s *ReportServiceImpl) GetReport(ctx context.Context, reportID int64) (*primary.Report, error) {
	record, err := s.reportRepo.GetByID(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return recordToReport(record), nil
}

// ListReports lists reports matching the filters, newest first.
func (s *ReportServiceImpl) ListReports(ctx context.Context, filters primary.ReportFilters) ([]*primary.Report, error) {
	repoFilters := secondary.ReportFilters{Unresolved: filters.Unresolved}
	if filters.CAPID != 0 {
		cadet, err := s.cadetRepo.GetByCAPID(ctx, filters.CAPID)
		if err != nil {
			return nil, err
		}
		repoFilters.CadetID = cadet.ID
	}

	records, err := s.reportRepo.List(ctx, repoFilters)
	if err != nil {
		return nil, err
	}

	reports := make([]*primary.Report, len(records))
	for i, r := range records {
		reports[i] = recordToReport(r)
	}
	return reports, nil
}

// ResolveReport marks a report resolved.
func (s *ReportServiceImpl) ResolveReport(ctx context.Context, reportID int64, resolvedBy string) error {
	if resolvedBy == "" {
		return apperr.Validation("resolver name is required")
	}

	if _, err := s.reportRepo.GetByID(ctx, reportID); err != nil {
		return err
	}

	if err := s.reportRepo.Resolve(ctx, reportID, resolvedBy); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "report", strconv.FormatInt(reportID, 10), "resolved", "false", "true")
	return nil
}

// Ensure ReportServiceImpl implements the interface
var _ primary.ReportService = (*ReportServiceImpl)(nil)
