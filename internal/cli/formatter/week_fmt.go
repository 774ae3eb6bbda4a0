package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/weekly"
)

const (
	weekBarWidth = 16
	// weekBarScale is the hours that fill a whole bar.
	weekBarScale = 10.0
)

// FormatWeek renders the 7-day window with one bar per day and the summary
// statistics underneath.
func FormatWeek(view weekly.WeekView, today domain.Day) string {
	var b strings.Builder

	t := Table{
		Headers:    []string{"DAY", "DATE", "SLEEP", "SESSIONS"},
		RightAlign: map[int]bool{3: true},
	}
	for _, d := range view.Days {
		label := d.Day.Weekday().String()[:3]
		if d.Day == today {
			label = Bold(label)
		}
		sessions := Dim("-")
		if d.SessionCount > 0 {
			sessions = fmt.Sprintf("%d", d.SessionCount)
			if d.HasMultipleSessions {
				sessions = StyleYellow.Render(sessions)
			}
		}
		t.Rows = append(t.Rows, []string{
			label,
			Dim(d.Day.String()),
			RenderHoursBar(d.Hours, weekBarScale, weekBarWidth),
			sessions,
		})
	}
	b.WriteString(t.Render())
	b.WriteString("\n")

	if view.DaysWithData == 0 {
		b.WriteString(Dim("No sleep logged in the last 7 days.") + "\n")
		return RenderBox("Week ending "+today.String(), b.String())
	}

	fmt.Fprintf(&b, "%s %s\n", Dim("Total:   "), Bold(FormatHours(view.TotalHours)))
	fmt.Fprintf(&b, "%s %s %s\n", Dim("Average: "), Bold(FormatHours(view.Average)),
		Dim(fmt.Sprintf("(%.2fh over %d of %d days)", view.Average, view.DaysWithData, len(view.Days))))
	fmt.Fprintf(&b, "%s %s\n", Dim("Quality: "), QualityIndicator(view.Quality))

	return RenderBox("Week ending "+today.String(), b.String())
}
