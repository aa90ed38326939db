package solidfood

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
	"github.com/heartmarshall/babyfeed-backend/internal/metrics"
)

// RenameInput holds the parameters for a bulk food rename.
type RenameInput struct {
	OldFood string
	NewFood string
}

// Validate checks all fields and collects all errors.
func (i RenameInput) Validate() error {
	var errs []domain.FieldError
	if strings.TrimSpace(i.OldFood) == "" {
		errs = append(errs, domain.FieldError{Field: "oldFood", Message: "required"})
	}
	if strings.TrimSpace(i.NewFood) == "" {
		errs = append(errs, domain.FieldError{Field: "newFood", Message: "required"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// RewriteResult counts the outcome of a bulk rewrite.
type RewriteResult struct {
	Matched int // records selected for rewriting
	Updated int // records whose foods changed
	Failed  int
}

// Rename replaces oldFood with newFood (both case-insensitive, stored
// normalized) in every record containing it. Each record is rewritten in its
// own transaction, so the operation is not atomic as a whole; it is safe to
// repeat. When some records fail, the result is returned together with a
// *domain.PartialFailureError.
func (s *Service) Rename(ctx context.Context, input RenameInput) (RewriteResult, error) {
	if err := input.Validate(); err != nil {
		return RewriteResult{}, err
	}

	oldName := domain.NormalizeText(input.OldFood)
	newName := domain.NormalizeText(input.NewFood)

	candidates, err := s.feeds.ListContainingFood(ctx, oldName)
	if err != nil {
		return RewriteResult{}, fmt.Errorf("list feeds containing %q: %w", oldName, err)
	}

	res, err := s.rewriteAll(ctx, ids(candidates), func(f *domain.Feed) ([]string, bool) {
		return f.ReplaceFood(oldName, newName)
	})

	metrics.RecordFoodRewrite("rename", res.Updated, res.Failed)
	s.log.InfoContext(ctx, "solid food renamed",
		slog.String("old_food", oldName),
		slog.String("new_food", newName),
		slog.Int("matched", res.Matched),
		slog.Int("updated", res.Updated),
		slog.Int("failed", res.Failed),
	)

	return res, err
}

// NormalizeAll rewrites every record's foods to their normalized form,
// touching only records that change.
func (s *Service) NormalizeAll(ctx context.Context) (RewriteResult, error) {
	records, err := s.feeds.ListAll(ctx)
	if err != nil {
		return RewriteResult{}, fmt.Errorf("list feeds: %w", err)
	}

	var dirty []domain.Feed
	for _, r := range records {
		if _, changed := normalizedFoods(&r); changed {
			dirty = append(dirty, r)
		}
	}

	res, err := s.rewriteAll(ctx, ids(dirty), normalizedFoods)

	metrics.RecordFoodRewrite("normalize", res.Updated, res.Failed)
	s.log.InfoContext(ctx, "solid foods normalized",
		slog.Int("scanned", len(records)),
		slog.Int("updated", res.Updated),
		slog.Int("failed", res.Failed),
	)

	return res, err
}

// rewriteAll applies rewrite to each feed under a row lock, at most
// s.concurrency at a time. Feeds deleted in the meantime are skipped.
func (s *Service) rewriteAll(ctx context.Context, feedIDs []uuid.UUID, rewrite func(*domain.Feed) ([]string, bool)) (RewriteResult, error) {
	res := RewriteResult{Matched: len(feedIDs)}

	var (
		mu   sync.Mutex
		errs []error
	)

	var g errgroup.Group
	g.SetLimit(s.concurrency)

	for _, id := range feedIDs {
		g.Go(func() error {
			updated, err := s.rewriteOne(ctx, id, rewrite)

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err != nil:
				res.Failed++
				errs = append(errs, fmt.Errorf("feed %s: %w", id, err))
			case updated:
				res.Updated++
			}
			return nil
		})
	}
	_ = g.Wait()

	if res.Failed > 0 {
		return res, &domain.PartialFailureError{
			Succeeded: res.Matched - res.Failed,
			Failed:    res.Failed,
			Cause:     errors.Join(errs...),
		}
	}
	return res, nil
}

func (s *Service) rewriteOne(ctx context.Context, id uuid.UUID, rewrite func(*domain.Feed) ([]string, bool)) (bool, error) {
	var updated bool

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		f, err := s.feeds.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		foods, changed := rewrite(f)
		if !changed {
			return nil
		}
		if err := s.feeds.UpdateSolidFoods(ctx, id, foods); err != nil {
			return err
		}
		updated = true
		return nil
	})
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return updated, err
}

func normalizedFoods(f *domain.Feed) ([]string, bool) {
	foods := domain.NormalizeFoods(f.SolidFoods)
	if len(foods) != len(f.SolidFoods) {
		return foods, true
	}
	for i := range foods {
		if foods[i] != f.SolidFoods[i] {
			return foods, true
		}
	}
	return foods, false
}

func ids(feeds []domain.Feed) []uuid.UUID {
	out := make([]uuid.UUID, len(feeds))
	for i, f := range feeds {
		out[i] = f.ID
	}
	return out
}
