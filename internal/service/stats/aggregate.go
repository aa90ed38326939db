package stats

import (
	"sort"
	"time"

	"github.com/heartmarshall/babyfeed-backend/internal/domain"
)

// DailyTotal is the summed feed volume of one local calendar date.
type DailyTotal struct {
	Date  string // domain.DateLayout
	Total int
}

// Extrema holds the highest and lowest volume days of a grouping.
type Extrema struct {
	Max DailyTotal
	Min DailyTotal
}

// DailyTotals groups records by the calendar date of their FeedTime in loc
// and sums the amounts. The result has one entry per date, oldest first.
func DailyTotals(records []domain.Feed, loc *time.Location) []DailyTotal {
	byDate := make(map[string]int)
	for _, r := range records {
		byDate[domain.DateKey(r.FeedTime, loc)] += r.Amount
	}

	totals := make([]DailyTotal, 0, len(byDate))
	for date, total := range byDate {
		totals = append(totals, DailyTotal{Date: date, Total: total})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Date < totals[j].Date })
	return totals
}

// FindExtrema returns the max and min day of totals. The first entry wins a
// tie, so on date-ascending input the earliest date wins. Empty input yields
// a zero total dated today in both fields.
func FindExtrema(totals []DailyTotal, today string) Extrema {
	if len(totals) == 0 {
		return sentinel(today)
	}

	ex := Extrema{Max: totals[0], Min: totals[0]}
	for _, t := range totals[1:] {
		if t.Total > ex.Max.Total {
			ex.Max = t
		}
		if t.Total < ex.Min.Total {
			ex.Min = t
		}
	}
	return ex
}

// FindExtremaSince is FindExtrema restricted to dates >= windowStart.
// Dates compare lexically, which is chronological for domain.DateLayout.
func FindExtremaSince(totals []DailyTotal, windowStart, today string) Extrema {
	var inWindow []DailyTotal
	for _, t := range totals {
		if t.Date >= windowStart {
			inWindow = append(inWindow, t)
		}
	}
	return FindExtrema(inWindow, today)
}

func sentinel(today string) Extrema {
	zero := DailyTotal{Date: today}
	return Extrema{Max: zero, Min: zero}
}
