package feed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
)

// ListDay returns the feeds of the local calendar day containing date,
// oldest first.
func (s *Service) ListDay(ctx context.Context, date time.Time, loc *time.Location) ([]domain.Feed, error) {
	w := domain.DayWindowFor(date, loc)

	feeds, err := s.feeds.ListInRange(ctx, w.Start, w.End)
	if err != nil {
		return nil, fmt.Errorf("list feeds for %s: %w", domain.DateKey(date, loc), err)
	}
	return feeds, nil
}

// GetFeed returns one feed. Returns domain.ErrNotFound if it does not exist.
func (s *Service) GetFeed(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	if id == uuid.Nil {
		return nil, domain.NewValidationError("id", "required")
	}

	f, err := s.feeds.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get feed: %w", err)
	}
	return f, nil
}

// CreateFeed logs a new feed. Solid foods are normalized before storage.
func (s *Service) CreateFeed(ctx context.Context, input CreateFeedInput) (*domain.Feed, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.feeds.Create(ctx, &domain.Feed{
		ID:         uuid.New(),
		FeedTime:   normalizeTime(input.FeedTime),
		Amount:     input.Amount,
		WetDiaper:  input.WetDiaper,
		Pooped:     input.Pooped,
		SolidFoods: domain.NormalizeFoods(input.SolidFoods),
	})
	if err != nil {
		return nil, fmt.Errorf("create feed: %w", err)
	}

	metrics.RecordFeedCommand("create")
	s.log.InfoContext(ctx, "feed created",
		slog.String("feed_id", created.ID.String()),
		slog.Time("feed_time", created.FeedTime),
		slog.Int("amount", created.Amount),
	)

	return created, nil
}

// UpdateFeed overwrites a feed. Returns domain.ErrNotFound if it does not exist.
func (s *Service) UpdateFeed(ctx context.Context, input UpdateFeedInput) (*domain.Feed, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.feeds.Update(ctx, &domain.Feed{
		ID:         input.ID,
		FeedTime:   normalizeTime(input.FeedTime),
		Amount:     input.Amount,
		WetDiaper:  input.WetDiaper,
		Pooped:     input.Pooped,
		SolidFoods: domain.NormalizeFoods(input.SolidFoods),
	})
	if err != nil {
		return nil, fmt.Errorf("update feed: %w", err)
	}

	metrics.RecordFeedCommand("update")
	s.log.InfoContext(ctx, "feed updated", slog.String("feed_id", updated.ID.String()))

	return updated, nil
}

// DeleteFeed removes a feed. Returns domain.ErrNotFound if it does not exist.
func (s *Service) DeleteFeed(ctx context.Context, input DeleteFeedInput) error {
	if err := input.Validate(); err != nil {
		return err
	}

	if err := s.feeds.Delete(ctx, input.ID); err != nil {
		return fmt.Errorf("delete feed: %w", err)
	}

	metrics.RecordFeedCommand("delete")
	s.log.InfoContext(ctx, "feed deleted", slog.String("feed_id", input.ID.String()))

	return nil
}

func normalizeTime(t time.Time) time.Time {
	return t.UTC().Truncate(domain.FeedTimePrecision)
}
