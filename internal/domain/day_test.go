package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDay(t *testing.T) {
	d, err := ParseDay("2024-03-01")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.March, d.Month())
	assert.Equal(t, 1, d.DayOfMonth())
	assert.Equal(t, "2024-03-01", d.String())

	_, err = ParseDay("03/01/2024")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "YYYY-MM-DD")
}

func TestDay_AddDaysCrossesMonthAndYear(t *testing.T) {
	tests := []struct {
		from string
		n    int
		want string
	}{
		{"2024-02-28", 1, "2024-02-29"},
		{"2024-02-29", 1, "2024-03-01"},
		{"2023-02-28", 1, "2023-03-01"},
		{"2024-12-31", 1, "2025-01-01"},
		{"2024-01-01", -1, "2023-12-31"},
		{"2024-01-10", -6, "2024-01-04"},
	}
	for _, tt := range tests {
		t.Run(tt.from, func(t *testing.T) {
			d, err := ParseDay(tt.from)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.AddDays(tt.n).String())
		})
	}
}

func TestDay_StartAndEnd(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)
	d := NewDay(2024, time.January, 10)

	assert.Equal(t, time.Date(2024, 1, 10, 0, 0, 0, 0, loc), d.Start(loc))
	assert.Equal(t, time.Date(2024, 1, 10, 23, 59, 59, int(999*time.Millisecond), loc), d.End(loc))
	assert.Equal(t, d.Next().Start(loc), d.End(loc).Add(time.Millisecond))
}

func TestDay_StartIsMidnightAcrossDST(t *testing.T) {
	loc, err := time.LoadLocation("Europe/Berlin")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 2024-03-31 is a 23-hour day in Berlin.
	d := NewDay(2024, time.March, 31)
	assert.Equal(t, 23*time.Hour, d.Next().Start(loc).Sub(d.Start(loc)))
	assert.Equal(t, 0, d.Next().Start(loc).Hour())
}

func TestDayOf_UsesLocation(t *testing.T) {
	utc := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
	east := utc.In(time.FixedZone("UTC+3", 3*60*60))

	assert.Equal(t, "2024-01-10", DayOf(utc).String())
	assert.Equal(t, "2024-01-11", DayOf(east).String())
}

func TestDay_Compare(t *testing.T) {
	a := NewDay(2024, time.January, 31)
	b := NewDay(2024, time.February, 1)

	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Equal(t, 0, a.Compare(NewDay(2024, time.January, 31)))
	assert.Equal(t, b, NewDay(2024, time.January, 32), "out-of-range days normalize")
	assert.True(t, Day{}.IsZero())
	assert.Equal(t, time.Wednesday, NewDay(2024, time.January, 10).Weekday())
}
