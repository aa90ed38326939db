package domain

import (
	"fmt"
	"strings"
	"time"
)

// MaxOffsetMinutes bounds client-reported UTC offsets (UTC-14:00 .. UTC+14:00).
const MaxOffsetMinutes = 840

// DateLayout is the calendar-date key used for grouping and query parameters.
const DateLayout = "2006-01-02"

// DayWindow is the inclusive instant range of one local calendar day.
type DayWindow struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t lies in [Start, End].
func (w DayWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}

// DayStart returns local midnight of t's calendar date in loc.
func DayStart(t time.Time, loc *time.Location) time.Time {
	local := t.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// DayWindowFor returns the local day containing ref. End is one millisecond
// before the next local midnight, so DST days keep their true length.
func DayWindowFor(ref time.Time, loc *time.Location) DayWindow {
	start := DayStart(ref, loc)
	// AddDate handles DST correctly, Add(24h) does not
	next := DayStart(start.AddDate(0, 0, 1), loc)
	return DayWindow{Start: start, End: next.Add(-FeedTimePrecision)}
}

// DateKey formats t's calendar date in loc.
func DateKey(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(DateLayout)
}

// ZoneFromOffset converts a client offset to a fixed zone. Offsets follow the
// browser convention: minutes behind UTC, so UTC+8 is -480.
func ZoneFromOffset(offsetMinutes int) (*time.Location, error) {
	if offsetMinutes < -MaxOffsetMinutes || offsetMinutes > MaxOffsetMinutes {
		return nil, NewValidationError("offset", fmt.Sprintf("must be within [-%d, %d] minutes", MaxOffsetMinutes, MaxOffsetMinutes))
	}
	if offsetMinutes == 0 {
		return time.UTC, nil
	}
	east := -offsetMinutes
	sign := '+'
	if east < 0 {
		sign = '-'
		east = -east
	}
	name := fmt.Sprintf("UTC%c%02d:%02d", sign, east/60, east%60)
	return time.FixedZone(name, -offsetMinutes*60), nil
}

// LoadZone parses an IANA zone name.
func LoadZone(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(strings.TrimSpace(name))
	if err != nil {
		return nil, NewValidationError("tz", "unknown time zone")
	}
	return loc, nil
}

// ResolveZone picks the zone for a request: an explicit IANA name wins, then
// an explicit offset, then fallback.
func ResolveZone(tz string, offset *int, fallback *time.Location) (*time.Location, error) {
	if strings.TrimSpace(tz) != "" {
		return LoadZone(tz)
	}
	if offset != nil {
		return ZoneFromOffset(*offset)
	}
	if fallback == nil {
		return time.UTC, nil
	}
	return fallback, nil
}

// ParseDate parses a YYYY-MM-DD date as local noon in loc. Noon keeps the
// calendar date stable under any later zone conversion.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, NewValidationError("date", "must be YYYY-MM-DD")
	}
	return d.Add(12 * time.Hour), nil
}
