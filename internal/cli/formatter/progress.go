package formatter

import (
	"fmt"
	"strings"

	"daybelt/internal/domain"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderBar renders a bar like [████░░░░] colored by how far along it is:
// green from two thirds, yellow from one third, red below.
func RenderBar(fraction float64, width int) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(fraction * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	if fraction < 0.33 {
		style = StyleRed
	} else if fraction < 0.66 {
		style = StyleYellow
	}
	return fmt.Sprintf("[%s]", style.Render(bar))
}

// RenderProgress renders the bar followed by "c / t tasks complete (p%)."
func RenderProgress(p domain.Progress, width int) string {
	return fmt.Sprintf("%s %s tasks complete (%s).",
		RenderBar(p.Fraction(), width),
		Bold(fmt.Sprintf("%d / %d", p.Completed, p.Total)),
		Bold(fmt.Sprintf("%d%%", p.Percent)))
}
