package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/sleeplog/internal/domain"
	"github.com/alexanderramin/sleeplog/internal/weekly"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// QualityColor returns the style for a weekly quality bucket.
func QualityColor(q weekly.Quality) lipgloss.Style {
	switch q {
	case weekly.QualityExcellent:
		return StyleGreen
	case weekly.QualityGood:
		return StyleBlue
	case weekly.QualityFair:
		return StyleYellow
	default:
		return StyleRed
	}
}

// QualityIndicator returns a colored label such as "● GOOD".
func QualityIndicator(q weekly.Quality) string {
	return QualityColor(q).Render("● " + strings.ToUpper(q.Label()))
}

// HoursColor picks the quality style a day with h hours would get.
func HoursColor(h float64) lipgloss.Style {
	if h <= 0 {
		return StyleDim
	}
	return QualityColor(weekly.ClassifyQuality(h))
}

// SleepTypePill returns a short colored marker for where in its session an
// entry sits.
func SleepTypePill(t domain.SleepType) string {
	switch t {
	case domain.SleepFull:
		return StyleGreen.Render("● full")
	case domain.SleepStart:
		return StyleBlue.Render("◐ start")
	case domain.SleepMiddle:
		return StylePurple.Render("○ middle")
	case domain.SleepEnd:
		return StyleYellow.Render("◑ end")
	default:
		return StyleDim.Render(string(t))
	}
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}
