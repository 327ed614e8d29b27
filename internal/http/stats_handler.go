package http

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/ckrskrrr/JellyDog/internal/repository"
)

type StatsService interface {
	TopSellers(ctx context.Context, limit int64) ([]repository.TopSeller, error)
	BestRegion(ctx context.Context) (*repository.RegionSales, error)
	DailyRevenue(ctx context.Context, dateStart, dateEnd string) ([]repository.DailyRevenue, error)
}

type StatsHandler struct {
	stats   StatsService
	timeout time.Duration
}

func NewStatsHandler(stats StatsService, timeout time.Duration) *StatsHandler {
	return &StatsHandler{stats: stats, timeout: timeout}
}

func (h *StatsHandler) TopSellers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	// a malformed or non-positive limit falls back to the default
	limit, _ := strconv.ParseInt(r.URL.Query().Get("limit"), 10, 64)

	sellers, err := h.stats.TopSellers(ctx, limit)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, sellers)
}

func (h *StatsHandler) BestRegion(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	region, err := h.stats.BestRegion(ctx)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, region)
}

func (h *StatsHandler) DailyRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	q := r.URL.Query()
	days, err := h.stats.DailyRevenue(ctx, q.Get("date_start"), q.Get("date_end"))
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, days)
}
