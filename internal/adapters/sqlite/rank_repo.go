package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// RankRepository implements secondary.RankRepository with SQLite.
type RankRepository struct {
	db *sql.DB
}

// NewRankRepository creates a new SQLite rank repository.
func NewRankRepository(db *sql.DB) *RankRepository {
	return &RankRepository{db: db}
}

// ListOrdered retrieves the rank catalog ordered by rank_order ascending.
func (r *RankRepository) ListOrdered(ctx context.Context) ([]*secondary.RankRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT rank_id, rank_name, rank_order FROM ranks ORDER BY rank_order ASC",
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing ranks")
	}
	defer rows.Close()

	var ranks []*secondary.RankRecord
	for rows.Next() {
		record := &secondary.RankRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Order); err != nil {
			return nil, apperr.Storage(err, "scanning rank")
		}
		ranks = append(ranks, record)
	}
	return ranks, nil
}

// GetByID retrieves a rank by its ID.
func (r *RankRepository) GetByID(ctx context.Context, id int64) (*secondary.RankRecord, error) {
	record := &secondary.RankRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT rank_id, rank_name, rank_order FROM ranks WHERE rank_id = ?", id,
	).Scan(&record.ID, &record.Name, &record.Order)

	if err == sql.ErrNoRows {
		return nil, apperr.NotFound("rank %d", id)
	}
	if err != nil {
		return nil, apperr.Storage(err, "getting rank %d", id)
	}
	return record, nil
}

// RanksForCadet retrieves the ranks awarded to a cadet.
func (r *RankRepository) RanksForCadet(ctx context.Context, cadetID int64) ([]*secondary.RankRecord, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT r.rank_id, r.rank_name, r.rank_order
		 FROM cadet_ranks cr
		 JOIN ranks r ON cr.rank_id = r.rank_id
		 WHERE cr.cadet_id = ?
		 ORDER BY r.rank_order ASC`,
		cadetID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing ranks for cadet %d", cadetID)
	}
	defer rows.Close()

	var ranks []*secondary.RankRecord
	for rows.Next() {
		record := &secondary.RankRecord{}
		if err := rows.Scan(&record.ID, &record.Name, &record.Order); err != nil {
			return nil, apperr.Storage(err, "scanning cadet rank")
		}
		ranks = append(ranks, record)
	}
	return ranks, nil
}

// SetCadetRank replaces the cadet's rank awards with the given rank. The
// delete and insert run in one transaction so a failure cannot leave the
// cadet with no rank or two current ranks.
func (r *RankRepository) SetCadetRank(ctx context.Context, cadetID, rankID int64, awardedOn string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperr.Storage(err, "awarding rank %d to cadet %d", rankID, cadetID)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM cadet_ranks WHERE cadet_id = ?", cadetID,
	); err != nil {
		return apperr.Storage(err, "clearing prior ranks for cadet %d", cadetID)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO cadet_ranks (cadet_id, rank_id, awarded_on) VALUES (?, ?, ?)",
		cadetID, rankID, awardedOn,
	); err != nil {
		return apperr.Storage(err, "awarding rank %d to cadet %d", rankID, cadetID)
	}

	if err := tx.Commit(); err != nil {
		return apperr.Storage(err, "awarding rank %d to cadet %d", rankID, cadetID)
	}
	return nil
}

// Ensure RankRepository implements the interface
var _ secondary.RankRepository = (*RankRepository)(nil)
