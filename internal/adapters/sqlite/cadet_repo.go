// Package sqlite contains SQLite implementations of repository interfaces.
package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// CadetRepository implements secondary.CadetRepository with SQLite.
type CadetRepository struct {
	db *sql.DB
}

// NewCadetRepository creates a new SQLite cadet repository.
func NewCadetRepository(db *sql.DB) *CadetRepository {
	return &CadetRepository{db: db}
}

const cadetSelectCols = "cadet_id, cap_id, first_name, last_name, date_of_birth, join_date, created_at, updated_at"

// scanCadet scans a cadet row into a CadetRecord.
func scanCadet(scanner interface {
	Scan(dest ...any) error
}) (*secondary.CadetRecord, error) {
	var (
		dob       sql.NullString
		joinDate  sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.CadetRecord{}
	err := scanner.Scan(
		&record.ID, &record.CAPID, &record.FirstName, &record.LastName,
		&dob, &joinDate, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.DateOfBirth = dob.String
	record.JoinDate = joinDate.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Create persists a new cadet.
func (r *CadetRepository) Create(ctx context.Context, cadet *secondary.CadetRecord) (int64, error) {
	var dob, joinDate sql.NullString
	if cadet.DateOfBirth != "" {
		dob = sql.NullString{String: cadet.DateOfBirth, Valid: true}
	}
	if cadet.JoinDate != "" {
		joinDate = sql.NullString{String: cadet.JoinDate, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO cadets (cap_id, first_name, last_name, date_of_birth, join_date) VALUES (?, ?, ?, ?, ?)",
		cadet.CAPID, cadet.FirstName, cadet.LastName, dob, joinDate,
	)
	if err != nil {
		return 0, apperr.Storage(err, "creating cadet with CAP ID %d", cadet.CAPID)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperr.Storage(err, "creating cadet with CAP ID %d", cadet.CAPID)
	}
	return id, nil
}

// GetByID retrieves a cadet by its internal ID.
func (r *CadetRepository) GetByID(ctx context.Context, id int64) (*secondary.CadetRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+cadetSelectCols+" FROM cadets WHERE cadet_id = ?", id,
	)

	record, err := scanCadet(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("cadet %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting cadet %d", id)
	}
	return record, nil
}

// GetByCAPID retrieves a cadet by its external CAP ID.
func (r *CadetRepository) GetByCAPID(ctx context.Context, capID int) (*secondary.CadetRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+cadetSelectCols+" FROM cadets WHERE cap_id = ?", capID,
	)

	record, err := scanCadet(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("cadet with CAP ID %d", capID)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting cadet with CAP ID %d", capID)
	}
	return record, nil
}

// List retrieves all cadets ordered by last name.
func (r *CadetRepository) List(ctx context.Context) ([]*secondary.CadetRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+cadetSelectCols+" FROM cadets ORDER BY last_name ASC, first_name ASC",
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing cadets")
	}
	defer rows.Close()

	var cadets []*secondary.CadetRecord
	for rows.Next() {
		record, err := scanCadet(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning cadet")
		}
		cadets = append(cadets, record)
	}
	return cadets, nil
}

// Update updates a cadet's personal fields. Empty fields are left unchanged.
func (r *CadetRepository) Update(ctx context.Context, cadet *secondary.CadetRecord) error {
	query := "UPDATE cadets SET updated_at = CURRENT_TIMESTAMP"
	args := []any{}

	if cadet.FirstName != "" {
		query += ", first_name = ?"
		args = append(args, cadet.FirstName)
	}
	if cadet.LastName != "" {
		query += ", last_name = ?"
		args = append(args, cadet.LastName)
	}
	if cadet.DateOfBirth != "" {
		query += ", date_of_birth = ?"
		args = append(args, cadet.DateOfBirth)
	}
	if cadet.JoinDate != "" {
		query += ", join_date = ?"
		args = append(args, cadet.JoinDate)
	}

	query += " WHERE cadet_id = ?"
	args = append(args, cadet.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperr.Storage(err, "updating cadet %d", cadet.ID)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("cadet %d", cadet.ID)
	}
	return nil
}

// Ensure CadetRepository implements the interface
var _ secondary.CadetRepository = (*CadetRepository)(nil)
