package predict

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

const (
	MsgNoData = "No feed data available"

	DefaultHistoryLimit = 5
)

// Input is a snapshot of the store for one prediction.
type Input struct {
	Now        time.Time
	Location   *time.Location
	TodayCount int           // feeds already logged today
	History    []domain.Feed // trailing window, today included
}

// Options tunes the prediction output.
type Options struct {
	HistoryLimit int // date groups reported in Prediction.History
}

// Countdown is a non-negative duration split into whole hours and minutes.
type Countdown struct {
	Hours   int
	Minutes int
}

// HistoryEntry compares one past day's Nth feed with the averaged time.
type HistoryEntry struct {
	Date          time.Time // local midnight
	ActualTime    time.Time
	PredictedTime time.Time
}

// Prediction is the outcome of Predict. NextFeedIn is nil when there is not
// enough history; that is a normal result, not an error.
type Prediction struct {
	FeedNumber      int
	NextFeedIn      *Countdown
	Message         string
	PredictedAt     time.Time
	AverageFeedTime time.Time
	AverageMinutes  int
	History         []HistoryEntry
}

type dayGroup struct {
	start time.Time
	feeds []domain.Feed
}

// Predict estimates when the next feed of the day is due by averaging the
// time of day of the same ordinal feed across the history window.
func Predict(in Input, opts Options) Prediction {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}
	if opts.HistoryLimit <= 0 {
		opts.HistoryLimit = DefaultHistoryLimit
	}

	p := Prediction{FeedNumber: in.TodayCount + 1}
	if len(in.History) == 0 {
		p.Message = MsgNoData
		return p
	}

	groups := groupByDay(in.History, loc)
	idx := p.FeedNumber - 1

	var sum float64
	var n int
	for _, g := range groups {
		if len(g.feeds) > idx {
			sum += minutesSinceMidnight(g.feeds[idx].FeedTime, g.start)
			n++
		}
	}
	if n == 0 {
		p.Message = fmt.Sprintf("No historical data available for feed #%d", p.FeedNumber)
		return p
	}

	// round half up, once, on the real-valued mean
	p.AverageMinutes = int(math.Floor(sum/float64(n) + 0.5))
	offset := time.Duration(p.AverageMinutes) * time.Minute

	todayStart := domain.DayStart(in.Now, loc)
	p.AverageFeedTime = todayStart.Add(offset)
	p.PredictedAt = p.AverageFeedTime
	if p.PredictedAt.Before(in.Now) {
		p.PredictedAt = p.PredictedAt.AddDate(0, 0, 1)
	}

	until := p.PredictedAt.Sub(in.Now)
	p.NextFeedIn = &Countdown{
		Hours:   int(until / time.Hour),
		Minutes: int(until % time.Hour / time.Minute),
	}
	p.Message = fmt.Sprintf("Feed #%d is predicted in %d hours and %d minutes",
		p.FeedNumber, p.NextFeedIn.Hours, p.NextFeedIn.Minutes)

	// most recent groups first; groups without an Nth feed still use a slot
	for i := len(groups) - 1; i >= 0 && len(groups)-i <= opts.HistoryLimit; i-- {
		g := groups[i]
		if len(g.feeds) <= idx {
			continue
		}
		p.History = append(p.History, HistoryEntry{
			Date:          g.start,
			ActualTime:    g.feeds[idx].FeedTime,
			PredictedTime: g.start.Add(offset),
		})
	}

	return p
}

// groupByDay buckets feeds by local calendar date, oldest day first, each
// bucket sorted by FeedTime.
func groupByDay(feeds []domain.Feed, loc *time.Location) []dayGroup {
	byKey := make(map[string]*dayGroup)
	for _, f := range feeds {
		key := domain.DateKey(f.FeedTime, loc)
		g, ok := byKey[key]
		if !ok {
			g = &dayGroup{start: domain.DayStart(f.FeedTime, loc)}
			byKey[key] = g
		}
		g.feeds = append(g.feeds, f)
	}

	groups := make([]dayGroup, 0, len(byKey))
	for _, g := range byKey {
		sort.SliceStable(g.feeds, func(i, j int) bool {
			return g.feeds[i].FeedTime.Before(g.feeds[j].FeedTime)
		})
		groups = append(groups, *g)
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].start.Before(groups[j].start) })
	return groups
}

func minutesSinceMidnight(t, dayStart time.Time) float64 {
	return t.Sub(dayStart).Minutes()
}
