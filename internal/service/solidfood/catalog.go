package solidfood

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

// FoodSighting is one catalog entry: a normalized food name and the latest
// feed it appeared in.
type FoodSighting struct {
	Food     string
	LastSeen time.Time
}

// Catalog deduplicates the foods of records by normalized name, keeping the
// latest FeedTime of each. Entries are ordered by LastSeen descending; equal
// times keep the order in which the foods first appeared.
func Catalog(records []domain.Feed) []FoodSighting {
	index := make(map[string]int)
	var out []FoodSighting

	for _, r := range records {
		for _, food := range r.SolidFoods {
			name := domain.NormalizeText(food)
			if name == "" {
				continue
			}
			i, ok := index[name]
			if !ok {
				index[name] = len(out)
				out = append(out, FoodSighting{Food: name, LastSeen: r.FeedTime})
				continue
			}
			if r.FeedTime.After(out[i].LastSeen) {
				out[i].LastSeen = r.FeedTime
			}
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].LastSeen.After(out[j].LastSeen) })
	if out == nil {
		out = []FoodSighting{}
	}
	return out
}

// Catalog returns the catalog of every food recorded so far.
func (s *Service) Catalog(ctx context.Context) ([]FoodSighting, error) {
	records, err := s.feeds.ListWithSolidFoods(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feeds with solid foods: %w", err)
	}
	return Catalog(records), nil
}
