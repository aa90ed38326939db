// Package solidfood maintains the catalog of solid foods seen across feeds
// and rewrites food names in historical records.
package solidfood

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/config"
	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

type feedRepo interface {
	ListAll(ctx context.Context) ([]domain.Feed, error)
	ListWithSolidFoods(ctx context.Context) ([]domain.Feed, error)
	ListContainingFood(ctx context.Context, name string) ([]domain.Feed, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Feed, error)
	UpdateSolidFoods(ctx context.Context, id uuid.UUID, foods []string) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides solid-food catalog operations.
type Service struct {
	feeds       feedRepo
	tx          txManager
	concurrency int
	log         *slog.Logger
}

// NewService creates a new solid-food service.
func NewService(log *slog.Logger, feeds feedRepo, tx txManager, cfg config.FeedsConfig) *Service {
	concurrency := cfg.RenameConcurrency
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Service{
		feeds:       feeds,
		tx:          tx,
		concurrency: concurrency,
		log:         log.With("service", "solidfood"),
	}
}
