package primary

import "context"

// RankService defines the primary port for the rank catalog and awards.
type RankService interface {
	// ListRanks lists the rank catalog ordered by seniority.
	ListRanks(ctx context.Context) ([]*Rank, error)

	// CadetRanks retrieves the ranks awarded to a cadet, identified by CAP ID.
	CadetRanks(ctx context.Context, capID int) ([]*Rank, error)

	// AwardRank sets a cadet's rank with replace semantics: prior awards
	// are cleared and the new one recorded in a single transaction.
	AwardRank(ctx context.Context, req AwardRankRequest) error
}

// AwardRankRequest contains parameters for awarding a rank.
type AwardRankRequest struct {
	CAPID     int
	RankID    int64
	AwardedOn string // YYYY-MM-DD, defaults to today
}

// Rank represents a rank catalog entry at the port boundary.
type Rank struct {
	ID    int64
	Name  string
	Order int
}
