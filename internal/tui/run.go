package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// Run drives m until the user quits or ctx is cancelled.
func Run(ctx context.Context, m Model) error {
	p := tea.NewProgram(m, tea.WithContext(ctx), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
