package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/example/cadet-tracker/internal/apperr"
	"github.com/example/cadet-tracker/internal/ports/primary"
	"github.com/example/cadet-tracker/internal/ports/secondary"
)

func newTestRankService() (*RankServiceImpl, *mockCadetRepository, *mockRankRepository) {
	cadetRepo := newMockCadetRepository()
	rankRepo := newMockRankRepository()
	service := NewRankService(cadetRepo, rankRepo, newMockLogWriter())
	return service, cadetRepo, rankRepo
}

func seedRankCatalog(rankRepo *mockRankRepository) {
	rankRepo.catalog = []*secondary.RankRecord{
		{ID: 1, Name: "Cadet Airman", Order: 1},
		{ID: 2, Name: "Cadet Senior Airman", Order: 3},
		{ID: 3, Name: "Cadet Airman First Class", Order: 2},
	}
}

func TestListRanks_OrderedBySeniority(t *testing.T) {
	service, _, rankRepo := newTestRankService()
	ctx := context.Background()

	seedRankCatalog(rankRepo)

	ranks, err := service.ListRanks(ctx)

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(ranks) != 3 {
		t.Fatalf("expected 3 ranks, got %d", len(ranks))
	}
	for i := 1; i < len(ranks); i++ {
		if ranks[i].Order < ranks[i-1].Order {
			t.Errorf("ranks out of order at %d: %d before %d", i, ranks[i-1].Order, ranks[i].Order)
		}
	}
}

func TestAwardRank_ReplacesPriorAward(t *testing.T) {
	service, cadetRepo, rankRepo := newTestRankService()
	ctx := context.Background()

	seedRankCatalog(rankRepo)
	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}
	rankRepo.awarded[1] = []int64{1}

	err := service.AwardRank(ctx, primary.AwardRankRequest{
		CAPID:     123456,
		RankID:    3,
		AwardedOn: "2026-03-01",
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rankRepo.awarded[1]) != 1 || rankRepo.awarded[1][0] != 3 {
		t.Errorf("expected sole awarded rank 3, got %v", rankRepo.awarded[1])
	}
	if rankRepo.awardedOn[1] != "2026-03-01" {
		t.Errorf("expected award date 2026-03-01, got %s", rankRepo.awardedOn[1])
	}
}

func TestAwardRank_DefaultsToToday(t *testing.T) {
	service, cadetRepo, rankRepo := newTestRankService()
	ctx := context.Background()

	seedRankCatalog(rankRepo)
	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}

	err := service.AwardRank(ctx, primary.AwardRankRequest{CAPID: 123456, RankID: 1})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	today := time.Now().Format("2006-01-02")
	if rankRepo.awardedOn[1] != today {
		t.Errorf("expected award date %s, got %s", today, rankRepo.awardedOn[1])
	}
}

func TestAwardRank_CadetNotFound(t *testing.T) {
	service, _, rankRepo := newTestRankService()
	ctx := context.Background()

	seedRankCatalog(rankRepo)

	err := service.AwardRank(ctx, primary.AwardRankRequest{CAPID: 999999, RankID: 1})

	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestAwardRank_RankNotFound(t *testing.T) {
	service, cadetRepo, rankRepo := newTestRankService()
	ctx := context.Background()

	seedRankCatalog(rankRepo)
	cadetRepo.cadets[1] = &secondary.CadetRecord{ID: 1, CAPID: 123456}

	err := service.AwardRank(ctx, primary.AwardRankRequest{CAPID: 123456, RankID: 99})

	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected not-found error, got %v", err)
	}
	if len(rankRepo.awarded[1]) != 0 {
		t.Error("expected no award to be written")
	}
}
