package solidfood

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

var (
	_ feedRepo  = &memRepo{}
	_ txManager = passthroughTx{}
)

// memRepo is an in-memory feed store. IDs listed in failUpdate make
// UpdateSolidFoods fail.
type memRepo struct {
	mu         sync.Mutex
	feeds      map[uuid.UUID]domain.Feed
	failUpdate map[uuid.UUID]bool
	updates    int
}

func newMemRepo(feeds ...domain.Feed) *memRepo {
	r := &memRepo{feeds: make(map[uuid.UUID]domain.Feed), failUpdate: make(map[uuid.UUID]bool)}
	for _, f := range feeds {
		if f.ID == uuid.Nil {
			f.ID = uuid.New()
		}
		r.feeds[f.ID] = f
	}
	return r
}

func (r *memRepo) sorted(keep func(domain.Feed) bool) []domain.Feed {
	var out []domain.Feed
	for _, f := range r.feeds {
		if keep(f) {
			f.SolidFoods = append([]string(nil), f.SolidFoods...)
			out = append(out, f)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].FeedTime.Before(out[j].FeedTime) })
	return out
}

func (r *memRepo) ListAll(ctx context.Context) ([]domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(domain.Feed) bool { return true }), nil
}

func (r *memRepo) ListWithSolidFoods(ctx context.Context) ([]domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.sorted(func(f domain.Feed) bool { return len(f.SolidFoods) > 0 })
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}

func (r *memRepo) ListContainingFood(ctx context.Context, name string) ([]domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(f domain.Feed) bool { return f.HasFood(name) }), nil
}

func (r *memRepo) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.Feed, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.feeds[id]
	if !ok {
		return nil, fmt.Errorf("feed %s: %w", id, domain.ErrNotFound)
	}
	f.SolidFoods = append([]string(nil), f.SolidFoods...)
	return &f, nil
}

func (r *memRepo) UpdateSolidFoods(ctx context.Context, id uuid.UUID, foods []string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failUpdate[id] {
		return errors.New("connection reset")
	}
	f, ok := r.feeds[id]
	if !ok {
		return fmt.Errorf("feed %s: %w", id, domain.ErrNotFound)
	}
	f.SolidFoods = foods
	r.feeds[id] = f
	r.updates++
	return nil
}

func (r *memRepo) get(id uuid.UUID) domain.Feed {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.feeds[id]
}

type passthroughTx struct{}

func (passthroughTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
