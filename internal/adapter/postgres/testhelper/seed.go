package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

// ResetFeeds empties the feeds table. Integration tests that read whole-table
// aggregates call it first and must not run in parallel with each other.
func ResetFeeds(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()
	if _, err := pool.Exec(context.Background(), `TRUNCATE feeds`); err != nil {
		t.Fatalf("testhelper: ResetFeeds: %v", err)
	}
}

// SeedFeed inserts a feed row. Zero ID and FeedTime are filled in; SolidFoods
// is stored as given, so callers can seed legacy unnormalized data.
func SeedFeed(t *testing.T, pool *pgxpool.Pool, f domain.Feed) domain.Feed {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	if f.FeedTime.IsZero() {
		f.FeedTime = now
	}
	f.FeedTime = f.FeedTime.UTC().Truncate(domain.FeedTimePrecision)
	if f.SolidFoods == nil {
		f.SolidFoods = []string{}
	}
	f.CreatedAt = now
	f.UpdatedAt = now

	_, err := pool.Exec(context.Background(),
		`INSERT INTO feeds (id, feed_time, amount, wet_diaper, pooped, solid_foods, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		f.ID, f.FeedTime, f.Amount, f.WetDiaper, f.Pooped, f.SolidFoods, f.CreatedAt, f.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedFeed insert: %v", err)
	}

	return f
}
