// Package predict estimates the time of the next feed from recent history.
package predict

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
)

type feedRepo interface {
	ListInRange(ctx context.Context, start, end time.Time) ([]domain.Feed, error)
}

// Service provides next-feed predictions.
type Service struct {
	feeds        feedRepo
	historyDays  int
	historyLimit int
	log          *slog.Logger
}

// NewService creates a new prediction service.
func NewService(log *slog.Logger, feeds feedRepo, cfg config.FeedsConfig) *Service {
	return &Service{
		feeds:        feeds,
		historyDays:  cfg.PredictionHistoryDays,
		historyLimit: cfg.PredictionHistoryLimit,
		log:          log.With("service", "predict"),
	}
}

// NextFeed predicts the next feed for the local day of now in loc. History
// covers the last historyDays calendar days, today included.
func (s *Service) NextFeed(ctx context.Context, now time.Time, loc *time.Location) (Prediction, error) {
	today := domain.DayWindowFor(now, loc)
	historyStart := domain.DayStart(today.Start.AddDate(0, 0, -(s.historyDays - 1)), loc)

	history, err := s.feeds.ListInRange(ctx, historyStart, today.End)
	if err != nil {
		return Prediction{}, fmt.Errorf("list feed history: %w", err)
	}

	todayCount := 0
	for _, f := range history {
		if today.Contains(f.FeedTime) {
			todayCount++
		}
	}

	p := Predict(Input{
		Now:        now,
		Location:   loc,
		TodayCount: todayCount,
		History:    history,
	}, Options{HistoryLimit: s.historyLimit})

	metrics.RecordPrediction(p.NextFeedIn != nil)
	s.log.DebugContext(ctx, "next feed predicted",
		slog.Int("feed_number", p.FeedNumber),
		slog.Int("history_records", len(history)),
		slog.Bool("available", p.NextFeedIn != nil),
	)

	return p, nil
}
