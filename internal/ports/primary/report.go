package primary

import "context"

// ReportService defines the primary port for incident reports.
type ReportService interface {
	// FileReport records a new incident report.
	FileReport(ctx context.Context, req FileReportRequest) (*Report, error)

	// GetReport retrieves a report by ID.
	GetReport(ctx context.Context, reportID int64) (*Report, error)

	// ListReports lists reports matching the filters, newest first.
	ListReports(ctx context.Context, filters ReportFilters) ([]*Report, error)

	// ResolveReport marks a report resolved.
	ResolveReport(ctx context.Context, reportID int64, resolvedBy string) error
}

// FileReportRequest contains parameters for filing a report.
type FileReportRequest struct {
	CAPID        int
	Type         string // "Good" or "Bad"
	Description  string
	CreatedBy    string
	IncidentDate string // YYYY-MM-DD, defaults to today
}

// ReportFilters contains filter options for listing reports.
type ReportFilters struct {
	CAPID      int // 0 means all cadets
	Unresolved bool
}

// Report represents an incident report at the port boundary.
type Report struct {
	ID           int64
	CadetID      int64
	Type         string
	Description  string
	CreatedBy    string
	IncidentDate string
	Resolved     bool
	ResolvedBy   string
	CreatedAt    string
}
