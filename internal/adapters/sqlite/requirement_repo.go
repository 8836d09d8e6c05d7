package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// RequirementRepository implements secondary.RequirementRepository with SQLite.
type RequirementRepository struct {
	db *sql.DB
}

// NewRequirementRepository creates a new SQLite requirement repository.
func NewRequirementRepository(db *sql.DB) *RequirementRepository {
	return &RequirementRepository{db: db}
}

// scanRequirement scans a requirement row into a RequirementRecord.
func scanRequirement(scanner interface {
	Scan(dest ...any) error
}) (*secondary.RequirementRecord, error) {
	var desc sql.NullString
	record := &secondary.RequirementRecord{}
	if err := scanner.Scan(&record.ID, &record.Name, &desc); err != nil {
		return nil, err
	}
	record.Description = desc.String
	return record, nil
}

// Create persists a new requirement.
func (r *RequirementRepository) Create(ctx context.Context, req *secondary.RequirementRecord) (int64, error) {
	var desc sql.NullString
	if req.Description != "" {
		desc = sql.NullString{String: req.Description, Valid: true}
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO requirements (requirement_name, description) VALUES (?, ?)",
		req.Name, desc,
	)
	if err != nil {
		return 0, apperr.Storage(err, "creating requirement %q", req.Name)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, apperr.Storage(err, "creating requirement %q", req.Name)
	}
	return id, nil
}

// GetByID retrieves a requirement by its ID.
func (r *RequirementRepository) GetByID(ctx context.Context, id int64) (*secondary.RequirementRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT requirement_id, requirement_name, description FROM requirements WHERE requirement_id = ?", id,
	)

	record, err := scanRequirement(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("requirement %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting requirement %d", id)
	}
	return record, nil
}

// Update updates a requirement. Empty fields are left unchanged.
func (r *RequirementRepository) Update(ctx context.Context, req *secondary.RequirementRecord) error {
	query := "UPDATE requirements SET requirement_id = requirement_id"
	args := []any{}

	if req.Name != "" {
		query += ", requirement_name = ?"
		args = append(args, req.Name)
	}
	if req.Description != "" {
		query += ", description = ?"
		args = append(args, req.Description)
	}

	query += " WHERE requirement_id = ?"
	args = append(args, req.ID)

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return apperr.Storage(err, "updating requirement %d", req.ID)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("requirement %d", req.ID)
	}
	return nil
}

// List retrieves all requirements ordered by ID.
func (r *RequirementRepository) List(ctx context.Context) ([]*secondary.RequirementRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT requirement_id, requirement_name, description FROM requirements ORDER BY requirement_id ASC",
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing requirements")
	}
	defer rows.Close()

	var reqs []*secondary.RequirementRecord
	for rows.Next() {
		record, err := scanRequirement(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning requirement")
		}
		reqs = append(reqs, record)
	}
	return reqs, nil
}

// ForRank retrieves the requirements linked to a rank, ordered by ID.
func (r *RequirementRepository) ForRank(ctx context.Context, rankID int64) ([]*secondary.RequirementRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT req.requirement_id, req.requirement_name, req.description
		 FROM rank_requirements rr
		 JOIN requirements req ON rr.requirement_id = req.requirement_id
		 WHERE rr.rank_id = ?
		 ORDER BY req.requirement_id ASC`,
		rankID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing requirements for rank %d", rankID)
	}
	defer rows.Close()

	var reqs []*secondary.RequirementRecord
	for rows.Next() {
		record, err := scanRequirement(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning rank requirement")
		}
		reqs = append(reqs, record)
	}
	return reqs, nil
}

// Link associates a requirement with a rank.
func (r *RequirementRepository) Link(ctx context.Context, rankID, requirementID int64) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO rank_requirements (rank_id, requirement_id) VALUES (?, ?)",
		rankID, requirementID,
	)
	if err != nil {
		return apperr.Storage(err, "linking requirement %d to rank %d", requirementID, rankID)
	}
	return nil
}

// Unlink removes the association between a requirement and a rank.
func (r *RequirementRepository) Unlink(ctx context.Context, rankID, requirementID int64) error {
	result, err := r.db.ExecContext(ctx,
		"DELETE FROM rank_requirements WHERE rank_id = ? AND requirement_id = ?",
		rankID, requirementID,
	)
	if err != nil {
		return apperr.Storage(err, "unlinking requirement %d from rank %d", requirementID, rankID)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return apperr.NotFound("link between rank %d and requirement %d", rankID, requirementID)
	}
	return nil
}

// LinkExists checks whether a rank-requirement link already exists.
func (r *RequirementRepository) LinkExists(ctx context.Context, rankID, requirementID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM rank_requirements WHERE rank_id = ? AND requirement_id = ?",
		rankID, requirementID,
	).Scan(&count)
	if err != nil {
		return false, apperr.Storage(err, "checking link between rank %d and requirement %d", rankID, requirementID)
	}
	return count > 0, nil
}

// Ensure RequirementRepository implements the interface
var _ secondary.RequirementRepository = (*RequirementRepository)(nil)
