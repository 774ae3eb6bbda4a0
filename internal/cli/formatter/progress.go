package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderHoursBar renders a bar like [██████░░] 7h 30m scaled so that scale
// hours fill the whole width. The bar takes the quality color of the hours.
func RenderHoursBar(hours, scale float64, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 0.0
	if scale > 0 {
		pct = min(max(hours/scale, 0), 1)
	}

	filled := min(int(pct*float64(width)+0.5), width)
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	label := Dim("--")
	if hours > 0 {
		label = FormatHours(hours)
	}
	return fmt.Sprintf("[%s] %s", HoursColor(hours).Render(bar), label)
}
