package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// ReportRepository implements secondary.ReportRepository with SQLite.
type ReportRepository struct {
	db *sql.DB
}

// NewReportRepository creates a new SQLite report repository.
func NewReportRepository(db *sql.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

const reportSelectCols = "report_id, cadet_id, report_type, description, created_by, incident_date, resolved, resolved_by, created_at"

// scanReport scans a report row into a ReportRecord.
func scanReport(scanner interface {
	Scan(dest ...any) error
}) (*secondary.ReportRecord, error) {
	var (
		desc         sql.NullString
		createdBy    sql.NullString
		incidentDate sql.NullString
		resolved     int
		resolvedBy   sql.NullString
		createdAt    time.Time
	)

	record := &secondary.ReportRecord{}
	err := scanner.Scan(
		&record.ID, &record.CadetID, &record.Type, &desc, &createdBy,
		&incidentDate, &resolved, &resolvedBy, &createdAt,
	)
	if err != nil {
		return nil, err
	}

	record.Description = desc.String
	record.CreatedBy = createdBy.String
	record.IncidentDate = incidentDate.String
	record.Resolved = resolved == 1
	record.ResolvedBy = resolvedBy.String
	record.CreatedAt = createdAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new report.
func (r *ReportRepository) Create(ctx context.Context, report *secondary.ReportRecord) (int64, error) {
	var desc, createdBy, incidentDate sql.NullString
	if report.Description != "" {
		desc = sql.NullString{String: report.Description, Valid: true}
	}
	if report.CreatedBy != "" {
		createdBy = sql.NullString{String: report.CreatedBy, Valid: true}
	}
	if report.IncidentDate != "" {
		incidentDate = sql.NullString{String: report.IncidentDate, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO reports (cadet_id, report_type, description, created_by, incident_date) VALUES (?, ?, ?, ?, ?)",
		report.CadetID, report.Type, desc, createdBy, incidentDate,
	)
	if err != nil {
		return 0, apperr.Storage(err, "filing report for cadet %d", report.CadetID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperr.Storage(err, "filing report for cadet %d", report.CadetID)
	}
	return id, nil
}

// GetByID retrieves a report by its ID.
func (r *ReportRepository) GetByID(ctx context.Context, id int64) (*secondary.ReportRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+reportSelectCols+" FROM reports WHERE report_id = ?", id,
	)

	record, err := scanReport(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("report %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting report %d", id)
	}
	return record, nil
}

// List retrieves reports matching the filters, newest first.
func (r *ReportRepository) List(ctx context.Context, filters secondary.ReportFilters) ([]*secondary.ReportRecord, error) {
	query := "SELECT " + reportSelectCols + " FROM reports WHERE 1=1"
	args := []any{}

	if filters.CadetID != 0 {
		query += " AND cadet_id = ?"
		args = append(args, filters.CadetID)
	}
	if filters.Unresolved {
		query += " AND resolved = 0"
	}

	query += " ORDER BY created_at DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, apperr.Storage(err, "listing reports")
	}
	defer rows.Close()

	var reports []*secondary.ReportRecord
	for rows.Next() {
		record, err := scanReport(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning report")
		}
		reports = append(reports, record)
	}
	return reports, nil
}

// Resolve marks a report resolved and records who resolved it.
func (r *ReportRepository) Resolve(ctx context.Context, id int64, resolvedBy string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE reports SET resolved = 1, resolved_by = ? WHERE report_id = ?",
		resolvedBy, id,
	)
	if err != nil {
		return apperr.Storage(err, "resolving report %d", id)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("report %d", id)
	}
	return nil
}

// Ensure ReportRepository implements the interface
var _ secondary.ReportRepository = (*ReportRepository)(nil)
