package sqlite

import (
	"context"
	"database/sql"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// CompletionRepository implements secondary.CompletionRepository with SQLite.
type CompletionRepository struct {
	db *sql.DB
}

// NewCompletionRepository creates a new SQLite completion repository.
func NewCompletionRepository(db *sql.DB) *CompletionRepository {
	return &CompletionRepository{db: db}
}

// CompletedForCadet retrieves the cadet's completion records as a map of
// requirement ID to completion date.
func (r *CompletionRepository) CompletedForCadet(ctx context.Context, cadetID int64) (map[int64]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT requirement_id, date_completed FROM requirement_completions WHERE cadet_id = ?",
		cadetID,
	)
	if err != nil {
		return nil, apperr.Storage(err, "listing completions for cadet %d", cadetID)
	}
	defer rows.Close()

	completed := make(map[int64]string)
	for rows.Next() {
		var requirementID int64
		var date string
		if err := rows.Scan(&requirementID, &date); err != nil {
			return nil, apperr.Storage(err, "scanning completion")
		}
		completed[requirementID] = date
	}
	return completed, nil
}

// Exists checks whether a completion record exists for the pair.
func (r *CompletionRepository) Exists(ctx context.Context, cadetID, requirementID int64) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM requirement_completions WHERE cadet_id = ? AND requirement_id = ?",
		cadetID, requirementID,
	).Scan(&count)
	if err != nil {
		return false, apperr.Storage(err, "checking completion for cadet %d requirement %d", cadetID, requirementID)
	}
	return count > 0, nil
}

// Insert records a completion. The UNIQUE(cadet_id, requirement_id)
// constraint prevents duplicate rows under retry.
func (r *CompletionRepository) Insert(ctx context.Context, cadetID, requirementID int64, dateCompleted string) error {
	_, err := r.db.ExecContext(ctx,
		"INSERT INTO requirement_completions (cadet_id, requirement_id, date_completed) VALUES (?, ?, ?)",
		cadetID, requirementID, dateCompleted,
	)
	if err != nil {
		return apperr.Storage(err, "recording completion for cadet %d requirement %d", cadetID, requirementID)
	}
	return nil
}

// Delete removes the completion record for the pair, if any. Deleting a
// record that does not exist is not an error.
func (r *CompletionRepository) Delete(ctx context.Context, cadetID, requirementID int64) error {
	_, err := r.db.ExecContext(ctx,
		"DELETE FROM requirement_completions WHERE cadet_id = ? AND requirement_id = ?",
		cadetID, requirementID,
	)
	if err != nil {
		return apperr.Storage(err, "removing completion for cadet %d requirement %d", cadetID, requirementID)
	}
	return nil
}

// Ensure CompletionRepository implements the interface
var _ secondary.CompletionRepository = (*CompletionRepository)(nil)
