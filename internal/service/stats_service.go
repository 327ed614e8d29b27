package service

import (
	"context"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/repository"
)

const defaultTopSellersLimit = 10

// StatsService is the read-only reporting surface over completed orders.
type StatsService struct {
	repo repository.StatsRepository
}

func NewStatsService(repo repository.StatsRepository) *StatsService {
	return &StatsService{repo: repo}
}

func (s *StatsService) TopSellers(ctx context.Context, limit int64) ([]repository.TopSeller, error) {
	if limit <= 0 {
		limit = defaultTopSellersLimit
	}
	return s.repo.TopSellers(ctx, limit)
}

func (s *StatsService) BestRegion(ctx context.Context) (*repository.RegionSales, error) {
	return s.repo.BestRegion(ctx)
}

func (s *StatsService) DailyRevenue(ctx context.Context, dateStart, dateEnd string) ([]repository.DailyRevenue, error) {
	if dateStart == "" || dateEnd == "" {
		return nil, ErrInvalidDateRange
	}
	start, err := time.Parse("2006-01-02", dateStart)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", dateEnd)
	if err != nil {
		return nil, ErrInvalidDateRange
	}
	return s.repo.DailyRevenue(ctx, start, end)
}
