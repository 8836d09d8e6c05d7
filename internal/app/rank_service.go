package app

import (
	"context"
	"fmt"
	"strconv"

	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

// RankServiceImpl implements the RankService interface.
type RankServiceImpl struct {
	cadetRepo secondary.CadetRepository
	rankRepo  secondary.RankRepository
	logWriter secondary.LogWriter
}

// NewRankService creates a new RankService with injected dependencies.
func NewRankService(cadetRepo secondary.CadetRepository, rankRepo secondary.RankRepository, logWriter secondary.LogWriter) *RankServiceImpl {
	return &RankServiceImpl{cadetRepo: cadetRepo, rankRepo: rankRepo, logWriter: logWriter}
}

func recordToRank(r *secondary.RankRecord) *primary.Rank {
	return &primary.Rank{ID: r.ID, Name: r.Name, Order: r.Order}
}

// ListRanks lists the rank catalog ordered by seniority.
func (s *RankServiceImpl) ListRanks(ctx context.Context) ([]*primary.Rank, error) {
	records, err := s.rankRepo.ListOrdered(ctx)
	if err != nil {
		return nil, err
	}

	ranks := make([]*primary.Rank, len(records))
	for i, r := range records {
		ranks[i] = recordToRank(r)
	}
	return ranks, nil
}

// CadetRanks retrieves the ranks awarded to a cadet, identified by CAP ID.
func (s *RankServiceImpl) CadetRanks(ctx context.Context, capID int) ([]*primary.Rank, error) {
	cadet, err := s.cadetRepo.GetByCAPID(ctx, capID)
	if err != nil {
		return nil, err
	}

	records, err := s.rankRepo.RanksForCadet(ctx, cadet.ID)
	if err != nil {
		return nil, err
	}

	ranks := make([]*primary.Rank, len(records))
	for i, r := range records {
		ranks[i] = recordToRank(r)
	}
	return ranks, nil
}

// AwardRank sets a cadet's rank with replace semantics: prior awards are
// cleared and the new one recorded in a single transaction.
func (s *RankServiceImpl) AwardRank(ctx context.Context, req primary.AwardRankRequest) error {
	awardedOn, err := normalizeDate("award date", req.AwardedOn)
	if err != nil {
		return err
	}

	cadet, err := s.cadetRepo.GetByCAPID(ctx, req.CAPID)
	if err != nil {
		return err
	}

	rank, err := s.rankRepo.GetByID(ctx, req.RankID)
	if err != nil {
		return err
	}

	if err := s.rankRepo.SetCadetRank(ctx, cadet.ID, rank.ID, awardedOn); err != nil {
		return err
	}

	_ = s.logWriter.LogUpdate(ctx, "cadet", strconv.FormatInt(cadet.ID, 10), "rank", "", fmt.Sprintf("%s (%s)", rank.Name, awardedOn))
	return nil
}

// Ensure RankServiceImpl implements the interface
var _ primary.RankService = (*RankServiceImpl)(nil)
