// Package feed implements feed logging: create, edit, delete, day listing
// and the time since the last poop.
package feed

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

type feedRepo interface {
	ListInRange(ctx context.Context, start, end time.Time) ([]domain.Feed, error)
	LastPooped(ctx context.Context) (*domain.Feed, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	Create(ctx context.Context, f *domain.Feed) (*domain.Feed, error)
	Update(ctx context.Context, f *domain.Feed) (*domain.Feed, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// Service provides feed management operations.
type Service struct {
	feeds feedRepo
	log   *slog.Logger
}

// NewService creates a new feed service.
func NewService(log *slog.Logger, feeds feedRepo) *Service {
	return &Service{
		feeds: feeds,
		log:   log.With("service", "feed"),
	}
}
