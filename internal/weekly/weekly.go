package weekly

import (
	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/ledger"
)

// WindowDays is the length of the rolling display window.
const WindowDays = 7

type Quality string

const (
	QualityExcellent      Quality = "excellent"
	QualityGood           Quality = "good"
	QualityFair           Quality = "fair"
	QualityNeedsMoreSleep Quality = "needs_more_sleep"
)

// Label returns the display name of the quality bucket.
func (q Quality) Label() string {
	switch q {
	case QualityExcellent:
		return "Excellent"
	case QualityGood:
		return "Good"
	case QualityFair:
		return "Fair"
	default:
		return "Needs More Sleep"
	}
}

// DayView is one calendar day of the weekly window.
type DayView struct {
	Day                 domain.Day
	Hours               float64
	Entries             []domain.SleepDayEntry
	SessionCount        int
	HasMultipleSessions bool
}

// WeekView is the 7-day window ending today, oldest day first.
type WeekView struct {
	Days         []DayView
	TotalHours   float64
	DaysWithData int
	Average      float64
	Quality      Quality
}

// Aggregate builds the window ending on today (inclusive) from the ledger.
// Average only counts days with recorded sleep and is 0 when none have any.
func Aggregate(l ledger.Ledger, today domain.Day) WeekView {
	byDate := make(map[string][]domain.SleepDayEntry)
	for _, e := range l.Entries() {
		byDate[e.Date] = append(byDate[e.Date], e)
	}

	view := WeekView{Days: make([]DayView, 0, WindowDays)}
	for i := WindowDays - 1; i >= 0; i-- {
		day := today.AddDays(-i)
		dv := summarizeDay(day, byDate[day.String()])
		if dv.Hours > 0 {
			view.TotalHours += dv.Hours
			view.DaysWithData++
		}
		view.Days = append(view.Days, dv)
	}

	view.TotalHours = domain.RoundHours(view.TotalHours)
	if view.DaysWithData > 0 {
		view.Average = view.TotalHours / float64(view.DaysWithData)
	}
	view.Quality = ClassifyQuality(view.Average)
	return view
}

// ClassifyQuality buckets an average nightly sleep length.
func ClassifyQuality(avg float64) Quality {
	switch {
	case avg >= 8:
		return QualityExcellent
	case avg >= 7:
		return QualityGood
	case avg >= 6:
		return QualityFair
	default:
		return QualityNeedsMoreSleep
	}
}

func summarizeDay(day domain.Day, entries []domain.SleepDayEntry) DayView {
	sessions := make(map[string]bool, len(entries))
	var hours float64
	for _, e := range entries {
		hours += e.Hours
		sessions[e.SessionID] = true
	}
	return DayView{
		Day:                 day,
		Hours:               domain.RoundHours(hours),
		Entries:             entries,
		SessionCount:        len(sessions),
		HasMultipleSessions: len(sessions) > 1,
	}
}
