package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daybelt/internal/api"
	"daybelt/internal/cli/formatter"
)

var (
	cursorStyle = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	statusStyle = lipgloss.NewStyle().Foreground(formatter.ColorYellow)
)

// View renders the board with a cursor column, the status line and help.
// The current slot is worked out from the clock on every render.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	b := api.BoardOf(m.session, m.opts.Clock())

	var sb strings.Builder
	if b.Title != "" {
		sb.WriteString(formatter.StyleTitle.Render(b.Title))
		sb.WriteString("\n")
	}
	if b.Caption != "" {
		sb.WriteString(formatter.Dim(b.Caption))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(formatter.RenderProgress(b.Progress, m.opts.BarWidth))
	sb.WriteString("\n\n")

	width := len(fmt.Sprint(len(b.Tasks)))
	for i, task := range b.Tasks {
		pointer := "  "
		if i == m.cursor {
			pointer = cursorStyle.Render("▸ ")
		}
		sb.WriteString(pointer)
		sb.WriteString(formatter.RenderTaskLine(i+1, width, task, i == b.Current))
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	if m.status != "" {
		sb.WriteString(statusStyle.Render(m.status))
		sb.WriteString("\n")
	}
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}
