package app

import (
	"context"
	"errors"
	"testing"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

func newTestReportService() (*ReportServiceImpl, *mockCadetRepository, *mockReportRepository) {
	cadetRepo := newMockCadetRepository()
	reportRepo := newMockReportRepository()
	service := NewReportService(cadetRepo, reportRepo, newMockLogWriter())
	return service, cadetRepo, reportRepo
}

func TestFileReport_Success(t *testing.T) {
	service, cadetRepo, _ := newTestReportService()
	ctx := context.Background()

	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}

	report, err := service.FileReport(ctx, primary.FileReportRequest{
		CAPID:        123456,
		Type:         "Good",
		Description:  "Helped a new cadet with uniform prep",
		CreatedBy:    "Lt Example",
		IncidentDate: "2026-03-01",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if report.ID == 0 {
		t.Error("expected report ID to be set")
	}
	if report.CadetID != 1 {
		t.Errorf("expected cadet ID 1, got %d", report.CadetID)
	}
	if report.Resolved {
		t.Error("expected new report to be unresolved")
	}
}

func TestFileReport_BadType(t *testing.T) {
	service, cadetRepo, _ := newTestReportService()
	ctx := context.Background()

	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}

	_, err := service.FileReport(ctx, primary.FileReportRequest{
		CAPID:       123456,
		Type:        "Neutral",
		Description: "something happened",
	})

	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestFileReport_CadetNotFound(t *testing.T) {
	service, _, reportRepo := newTestReportService()
	ctx := context.Background()

	_, err := service.FileReport(ctx, primary.FileReportRequest{
		CAPID:       999999,
		Type:        "Bad",
		Description: "missed formation",
	})

	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(reportRepo.reports) != 0 {
		t.Error("expected nothing persisted")
	}
}

func TestResolveReport_Success(t *testing.T) {
	service, cadetRepo, reportRepo := newTestReportService()
	ctx := context.Background()

	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}
	report, _ := service.FileReport(ctx, primary.FileReportRequest{
		CAPID:       123456,
		Type:        "Bad",
		Description: "missed formation",
	})

	err := service.ResolveReport(ctx, report.ID, "Capt Example")

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !reportRepo.reports[report.ID].Resolved {
		t.Error("expected report to be resolved")
	}
	if reportRepo.reports[report.ID].ResolvedBy != "Capt Example" {
		t.Errorf("expected resolver 'Capt Example', got '%s'", reportRepo.reports[report.ID].ResolvedBy)
	}
}

func TestResolveReport_MissingResolver(t *testing.T) {
	service, _, _ := newTestReportService()
	ctx := context.Background()

	err := service.ResolveReport(ctx, 1, "")

	if !errors.Is(err, apperr.ErrValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestListReports_UnresolvedFilter(t *testing.T) {
	service, cadetRepo, _ := newTestReportService()
	ctx := context.Background()

	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}
	first, _ := service.FileReport(ctx, primary.FileReportRequest{CAPID: 123456, Type: "Bad", Description: "one"})
	_, _ = service.FileReport(ctx, primary.FileReportRequest{CAPID: 123456, Type: "Good", Description: "two"})
	_ = service.ResolveReport(ctx, first.ID, "Capt Example")

	reports, err := service.ListReports(ctx, primary.ReportFilters{CAPID: 123456, Unresolved: true})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("expected 1 unresolved report, got %d", len(reports))
	}
	if reports[0].Description != "two" {
		t.Errorf("expected the unresolved report, got '%s'", reports[0].Description)
	}
}
