package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// PositionRepository implements secondary.PositionRepository with SQLite.
type PositionRepository struct {
	db *sql.DB
}

// NewPositionRepository creates a new SQLite position repository.
func NewPositionRepository(db *sql.DB) *PositionRepository {
	return &PositionRepository{db: db}
}

// scanPosition scans a position row into a PositionRecord.
func scanPosition(scanner interface {
	Scan(dest ...any) error
}) (*secondary.PositionRecord, error) {
	var (
		line  int
		level sql.NullInt64
	)
	record := &secondary.PositionRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &line, &level); err != nil {
		return nil, err
	}
	record.Line = line == 1
	record.Level = int(level.Int64)
	return record, nil
}

// Create persists a new position.
func (r *PositionRepository) Create(ctx context.Context, pos *secondary.PositionRecord) (int64, error) {
	line := 0
	if pos.Line {
		line = 1
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO positions (position_name, line, level) VALUES (?, ?, ?)",
		pos.Name, line, pos.Level,
	)
	if err != nil {
		return 0, apperr.Storage(err, "creating position %q", pos.Name)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperr.Storage(err, "creating position %q", pos.Name)
	}
	return id, nil
}

// GetByID retrieves a position by its ID.
func (r *PositionRepository) GetByID(ctx context.Context, id int64) (*secondary.PositionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT position_id, position_name, line, level FROM positions WHERE position_id = ?", id,
	)

	record, err := scanPosition(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("position %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting position %d", id)
	}
	return record, nil
}

// List retrieves the position catalog ordered by ID.
func (r *PositionRepository) List(ctx context.Context) ([]*secondary.PositionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT position_id, position_name, line, level FROM positions ORDER BY position_id ASC",
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing positions")
	}
	defer rows.Close()

	var positions []*secondary.PositionRecord
	for rows.Next() {
		record, err := scanPosition(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning position")
		}
		positions = append(positions, record)
	}
	return positions, nil
}

// Assign assigns a position to a cadet from the given start date.
func (r *PositionRepository) Assign(ctx context.Context, cadetID, positionID int64, startDate string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO cadet_positions (cadet_id, position_id, start_date) VALUES (?, ?, ?)",
		cadetID, positionID, startDate,
	)
	if err != nil {
		return apperr.Storage(err, "assigning position %d to cadet %d", positionID, cadetID)
	}
	return nil
}

// ForCadet retrieves a cadet's assignments, newest first.
func (r *PositionRepository) ForCadet(ctx context.Context, cadetID int64) ([]*secondary.PositionAssignmentRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT cp.assignment_id, cp.cadet_id, cp.position_id, p.position_name, cp.start_date, cp.end_date
		 FROM cadet_positions cp
		 JOIN positions p ON cp.position_id = p.position_id
		 WHERE cp.cadet_id = ?
		 ORDER BY cp.start_date DESC`,
		cadetID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing positions for cadet %d", cadetID)
	}
	defer rows.Close()

	var assignments []*secondary.PositionAssignmentRecord
	for rows.Next() {
		var endDate sql.NullString
		record := &secondary.PositionAssignmentRecord{}
		if err := rows.Scan(&record.ID, &record.CadetID, &record.PositionID, &record.PositionName, &record.StartDate, &endDate); err != nil {
			return nil, apperr.Storage(err, "scanning position assignment")
		}
		record.EndDate = endDate.String
		assignments = append(assignments, record)
	}
	return assignments, nil
}

// EndAssignment closes an open assignment with an end date.
func (r *PositionRepository) EndAssignment(ctx context.Context, assignmentID int64, endDate string) error {
	result, err := r.db.ExecContext(ctx,
		"UPDATE cadet_positions SET end_date = ? WHERE assignment_id = ?",
		endDate, assignmentID,
	)
	if err != nil {
		return apperr.Storage(err, "ending assignment %d", assignmentID)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("assignment %d", assignmentID)
	}
	return nil
}

// Ensure PositionRepository implements the interface
var _ secondary.PositionRepository = (*PositionRepository)(nil)
