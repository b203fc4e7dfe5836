package formatter

import (
	"fmt"
	"strings"

	"daybelt/internal/services"
)

// RenderHistory lists saved days, newest last, one per line.
func RenderHistory(days []services.DaySummary, barWidth int) string {
	if len(days) == 0 {
		return Dim("No saved progress yet.") + "\n"
	}

	var sb strings.Builder
	sb.WriteString(Header("History"))
	sb.WriteString("\n")
	for _, day := range days {
		if day.Err != nil {
			sb.WriteString(fmt.Sprintf("%s  %s\n", day.Date, StyleRed.Render("unreadable snapshot")))
			continue
		}
		sb.WriteString(fmt.Sprintf("%s  %s\n", day.Date, RenderProgress(day.Progress, barWidth)))
	}
	return sb.String()
}
