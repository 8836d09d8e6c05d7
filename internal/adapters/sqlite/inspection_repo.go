package sqlite

import (
	"context"
	"database/sql"
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// InspectionRepository implements secondary.InspectionRepository with SQLite.
// Whether per-item breakdown rows are persisted depends on the schema
// capability resolved at construction; legacy databases carry only the
// aggregate header.
type InspectionRepository struct {
	db            *sql.DB
	itemBreakdown bool
}

// NewInspectionRepository creates a new SQLite inspection repository.
// itemBreakdown reports whether the connected schema has the
// inspection_scores table.
func NewInspectionRepository(db *sql.DB, itemBreakdown bool) *InspectionRepository {
	return &InspectionRepository{db: db, itemBreakdown: itemBreakdown}
}

// SupportsBreakdown reports whether per-item rows are persisted.
func (r *InspectionRepository) SupportsBreakdown() bool {
	return r.itemBreakdown
}

const inspectionSelectCols = "inspection_id, cadet_id, inspector_cap_id, inspection_date, total_score, rating, comments, created_at, updated_at"

// scanInspection scans an inspection row into an InspectionRecord.
func scanInspection(scanner interface {
	Scan(dest ...any) error
}) (*secondary.InspectionRecord, error) {
	var (
		inspector sql.NullInt64
		comments  sql.NullString
		createdAt time.Time
		updatedAt time.Time
	)

	record := &secondary.InspectionRecord{}
	err := scanner.Scan(
		&record.ID, &record.CadetID, &inspector, &record.Date,
		&record.Total, &record.Rating, &comments, &createdAt, &updatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.InspectorCAPID = int(inspector.Int64)
	record.Comments = comments.String
	record.CreatedAt = createdAt.Format(time.RFC3339)
	record.UpdatedAt = updatedAt.Format(time.RFC3339)

	return record, nil
}

// Find retrieves the inspection for a cadet and date, or nil when none
// exists.
func (r *InspectionRepository) Find(ctx context.Context, cadetID int64, date string) (*secondary.InspectionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+inspectionSelectCols+" FROM inspections WHERE cadet_id = ? AND inspection_date = ?",
		cadetID, date,
	)

	record, err := scanInspection(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, apperr.Storage(err, "finding inspection for cadet %d on %s", cadetID, date)
	}
	return record, nil
}

// GetByID retrieves an inspection by its ID.
func (r *InspectionRepository) GetByID(ctx context.Context, id int64) (*secondary.InspectionRecord, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+inspectionSelectCols+" FROM inspections WHERE inspection_id = ?", id,
	)

	record, err := scanInspection(row)
	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("inspection %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting inspection %d", id)
	}
	return record, nil
}

// Upsert writes the inspection header and its item breakdown in a single
// transaction. An existing inspection for the same cadet and date is updated
// in place and its breakdown rows replaced; either everything commits or
// nothing does.
func (r *InspectionRepository) Upsert(ctx context.Context, insp *secondary.InspectionRecord, items []*secondary.InspectionItemRecord) (int64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, apperr.Storage(err, "submitting inspection for cadet %d on %s", insp.CadetID, insp.Date)
	}
	defer tx.Rollback()

	var inspector sql.NullInt64
	if insp.InspectorCAPID != 0 {
		inspector = sql.NullInt64{Int64: int64(insp.InspectorCAPID), Valid: true}
	}
	var comments sql.NullString
	if insp.Comments != "" {
		comments = sql.NullString{String: insp.Comments, Valid: true}
	}

	var inspectionID int64
	err = tx.QueryRowContext(ctx,
		"SELECT inspection_id FROM inspections WHERE cadet_id = ? AND inspection_date = ?",
		insp.CadetID, insp.Date,
	).Scan(&inspectionID)

	switch {
	case err == sql.ErrNoRows:
		result, err := tx.ExecContext(ctx,
			"INSERT INTO inspections (cadet_id, inspector_cap_id, inspection_date, total_score, rating, comments) VALUES (?, ?, ?, ?, ?, ?)",
			insp.CadetID, inspector, insp.Date, insp.Total, insp.Rating, comments,
		)
		if err != nil {
			return 0, apperr.Storage(err, "inserting inspection for cadet %d on %s", insp.CadetID, insp.Date)
		}
		inspectionID, err = result.LastInsertId()
		if err != nil {
			return 0, apperr.Storage(err, "inserting inspection for cadet %d on %s", insp.CadetID, insp.Date)
		}
	case err != nil:
		return 0, apperr.Storage(err, "finding inspection for cadet %d on %s", insp.CadetID, insp.Date)
	default:
		if _, err := tx.ExecContext(ctx,
			"UPDATE inspections SET inspector_cap_id = ?, total_score = ?, rating = ?, comments = ?, updated_at = CURRENT_TIMESTAMP WHERE inspection_id = ?",
			inspector, insp.Total, insp.Rating, comments, inspectionID,
		); err != nil {
			return 0, apperr.Storage(err, "updating inspection %d", inspectionID)
		}
	}

	if r.itemBreakdown {
		if _, err := tx.ExecContext(ctx,
			"DELETE FROM inspection_scores WHERE inspection_id = ?", inspectionID,
		); err != nil {
			return 0, apperr.Storage(err, "replacing breakdown for inspection %d", inspectionID)
		}
		for _, item := range items {
			var comment sql.NullString
			if item.Comment != "" {
				comment = sql.NullString{String: item.Comment, Valid: true}
			}
			if _, err := tx.ExecContext(ctx,
				"INSERT INTO inspection_scores (inspection_id, section, item_name, score, comment) VALUES (?, ?, ?, ?, ?)",
				inspectionID, item.Section, item.Item, item.Score, comment,
			); err != nil {
				return 0, apperr.Storage(err, "writing breakdown for inspection %d", inspectionID)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, apperr.Storage(err, "submitting inspection for cadet %d on %s", insp.CadetID, insp.Date)
	}
	return inspectionID, nil
}

// ListForCadet retrieves a cadet's inspections, newest first.
func (r *InspectionRepository) ListForCadet(ctx context.Context, cadetID int64) ([]*secondary.InspectionRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+inspectionSelectCols+" FROM inspections WHERE cadet_id = ? ORDER BY inspection_date DESC",
		cadetID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing inspections for cadet %d", cadetID)
	}
	defer rows.Close()

	var inspections []*secondary.InspectionRecord
	for rows.Next() {
		record, err := scanInspection(rows)
		if err != nil {
			return nil, apperr.Storage(err, "scanning inspection")
		}
		inspections = append(inspections, record)
	}
	return inspections, nil
}

// Breakdown retrieves the per-item rows for an inspection. Always empty on
// schemas without breakdown support.
func (r *InspectionRepository) Breakdown(ctx context.Context, inspectionID int64) ([]*secondary.InspectionItemRecord, error) {
	if !r.itemBreakdown {
		return nil, nil
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT section, item_name, score, comment FROM inspection_scores WHERE inspection_id = ? ORDER BY score_id ASC",
		inspectionID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "reading breakdown for inspection %d", inspectionID)
	}
	defer rows.Close()

	var items []*secondary.InspectionItemRecord
	for rows.Next() {
		var comment sql.NullString
		item := &secondary.InspectionItemRecord{}
		if err := rows.Scan(&item.Section, &item.Item, &item.Score, &comment); err != nil {
			return nil, apperr.Storage(err, "scanning breakdown row")
		}
		item.Comment = comment.String
		items = append(items, item)
	}
	return items, nil
}

// Ensure InspectionRepository implements the interface
var _ secondary.InspectionRepository = (*InspectionRepository)(nil)
