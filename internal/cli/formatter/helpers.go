package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}
	return boxStyle.Render(content)
}

// RelativeDay names d relative to today for the last week, and falls back
// to a short absolute date otherwise.
func RelativeDay(d, today domain.Day) string {
	diff := daysBetween(d, today)
	switch {
	case diff == 0:
		return "Today"
	case diff == 1:
		return "Yesterday"
	case diff == -1:
		return "Tomorrow"
	case diff > 1 && diff < 7:
		return d.Weekday().String()
	default:
		return d.Start(time.UTC).Format("Jan 2, 2006")
	}
}

// ShortDay formats d as "Mon 01/08".
func ShortDay(d domain.Day) string {
	return fmt.Sprintf("%s %02d/%02d", d.Weekday().String()[:3], int(d.Month()), d.DayOfMonth())
}

// daysBetween counts calendar days from d to today. UTC midnights are
// exactly 24h apart.
func daysBetween(d, today domain.Day) int {
	return int(today.Start(time.UTC).Sub(d.Start(time.UTC)).Hours() / 24)
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatHours renders decimal hours as "7h 30m". Values are rounded to the
// nearest minute.
func FormatHours(h float64) string {
	min := int(math.Round(h * 60))
	if min <= 0 {
		return "0m"
	}
	hh := min / 60
	mm := min % 60
	if hh > 0 && mm > 0 {
		return fmt.Sprintf("%dh %dm", hh, mm)
	}
	if hh > 0 {
		return fmt.Sprintf("%dh", hh)
	}
	return fmt.Sprintf("%dm", mm)
}

// FormatSpan renders a session's wall-clock span, adding dates when the
// session crosses midnight.
func FormatSpan(e domain.SleepDayEntry) string {
	bed, wake := e.BedDateTime.Local(), e.WakeDateTime.Local()
	if domain.DayOf(bed) == domain.DayOf(wake) {
		return fmt.Sprintf("%s → %s", e.BedTime, e.WakeTime)
	}
	return fmt.Sprintf("%s %s → %s %s",
		bed.Format("Jan 2"), e.BedTime, wake.Format("Jan 2"), e.WakeTime)
}
