// Package stats computes daily volume totals and their extrema.
package stats

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

type feedRepo interface {
	ListAll(ctx context.Context) ([]domain.Feed, error)
}

// Stats is the volume summary shown on the dashboard.
type Stats struct {
	HighestVolume         DailyTotal
	LowestVolume          DailyTotal
	HighestVolumeLastWeek DailyTotal
	LowestVolumeLastWeek  DailyTotal
}

// Empty returns the all-zero statistics dated today.
func Empty(today string) Stats {
	zero := DailyTotal{Date: today}
	return Stats{
		HighestVolume:         zero,
		LowestVolume:          zero,
		HighestVolumeLastWeek: zero,
		LowestVolumeLastWeek:  zero,
	}
}

// Service provides volume statistics.
type Service struct {
	feeds      feedRepo
	windowDays int
	log        *slog.Logger
}

// NewService creates a new stats service.
func NewService(log *slog.Logger, feeds feedRepo, cfg config.FeedsConfig) *Service {
	return &Service{
		feeds:      feeds,
		windowDays: cfg.StatsWindowDays,
		log:        log.With("service", "stats"),
	}
}

// Stats reads every record and returns overall and trailing-window extrema.
// On a store failure it returns Empty(today) together with the error.
func (s *Service) Stats(ctx context.Context, now time.Time, loc *time.Location) (Stats, error) {
	today := domain.DateKey(now, loc)

	records, err := s.feeds.ListAll(ctx)
	if err != nil {
		return Empty(today), fmt.Errorf("list feeds: %w", err)
	}

	totals := DailyTotals(records, loc)
	windowStart := domain.DateKey(domain.DayStart(now, loc).AddDate(0, 0, -(s.windowDays-1)), loc)

	all := FindExtrema(totals, today)
	recent := FindExtremaSince(totals, windowStart, today)

	s.log.DebugContext(ctx, "stats computed",
		slog.Int("records", len(records)),
		slog.Int("days", len(totals)),
		slog.String("window_start", windowStart),
	)

	return Stats{
		HighestVolume:         all.Max,
		LowestVolume:          all.Min,
		HighestVolumeLastWeek: recent.Max,
		LowestVolumeLastWeek:  recent.Min,
	}, nil
}
