package feed

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

const MsgNoPoop = "No poop records found"

// LastPoop reports how long ago the most recent poop was logged.
// FeedTime is nil when no feed was ever flagged.
type LastPoop struct {
	Days     int
	Hours    int
	Message  string
	FeedTime *time.Time
}

// LastPoop returns the elapsed time since the latest pooped feed, split into
// whole 24h days and remaining whole hours.
func (s *Service) LastPoop(ctx context.Context, now time.Time) (LastPoop, error) {
	last, err := s.feeds.LastPooped(ctx)
	if errors.Is(err, domain.ErrNotFound) {
		return LastPoop{Message: MsgNoPoop}, nil
	}
	if err != nil {
		return LastPoop{}, fmt.Errorf("get last pooped feed: %w", err)
	}

	elapsed := now.Sub(last.FeedTime)
	if elapsed < 0 {
		elapsed = 0
	}
	totalHours := int(elapsed / time.Hour)
	days, hours := totalHours/24, totalHours%24

	feedTime := last.FeedTime
	return LastPoop{
		Days:     days,
		Hours:    hours,
		Message:  fmt.Sprintf("Last pooped %d days and %d hours ago", days, hours),
		FeedTime: &feedTime,
	}, nil
}
