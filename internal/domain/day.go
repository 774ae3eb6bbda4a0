package domain

import (
	"fmt"
	"time"
)

// DayLayout is the calendar-day key format used in entries and on the CLI.
const DayLayout = "2006-01-02"

// Day is a local calendar day. It holds no location; callers pair it with
// one when they need instants.
type Day struct {
	year  int
	month time.Month
	day   int
}

// NewDay returns the calendar day for y-m-d, normalizing out-of-range values
// the way time.Date does (e.g. Jan 32 becomes Feb 1).
func NewDay(year int, month time.Month, day int) Day {
	return DayOf(time.Date(year, month, day, 12, 0, 0, 0, time.UTC))
}

// DayOf returns the calendar day containing t in t's own location.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{year: y, month: m, day: d}
}

// ParseDay parses a YYYY-MM-DD key.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse(DayLayout, s)
	if err != nil {
		return Day{}, fmt.Errorf("invalid date %q (expected YYYY-MM-DD): %w", s, err)
	}
	return DayOf(t), nil
}

func (d Day) Year() int { return d.year }
func (d Day) Month() time.Month { return d.month }
func (d Day) DayOfMonth() int { return d.day }
func (d Day) IsZero() bool { return d.year == 0 && d.month == 0 && d.day == 0 }

func (d Day) Weekday() time.Weekday {
	return time.Date(d.year, d.month, d.day, 12, 0, 0, 0, time.UTC).Weekday()
}

// Start returns local midnight at the beginning of the day.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.year, d.month, d.day, 0, 0, 0, 0, loc)
}

// End returns the last millisecond of the day (23:59:59.999).
func (d Day) End(loc *time.Location) time.Time {
	return d.Next().Start(loc).Add(-time.Millisecond)
}

// AddDays moves n calendar days forward (or back for negative n).
func (d Day) AddDays(n int) Day {
	return NewDay(d.year, d.month, d.day+n)
}

func (d Day) Next() Day { return d.AddDays(1) }

// Compare returns -1, 0 or +1 depending on whether d is before, equal to or
// after o.
func (d Day) Compare(o Day) int {
	switch {
	case d.year != o.year:
		return cmpInt(d.year, o.year)
	case d.month != o.month:
		return cmpInt(int(d.month), int(o.month))
	default:
		return cmpInt(d.day, o.day)
	}
}

func (d Day) Before(o Day) bool { return d.Compare(o) < 0 }
func (d Day) After(o Day) bool { return d.Compare(o) > 0 }

// String formats the day as its YYYY-MM-DD key.
func (d Day) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, int(d.month), d.day)
}

func cmpInt(a, b int) int {
	if a < b {
		return -1
	}
	if a > b {
		return 1
	}
	return 0
}
