package cli

import (
	"context"
	"fmt"

	"daybelt/internal/cli/formatter"
)

// HistoryCommand lists every saved day with its completion
type HistoryCommand struct {
	app *App
}

// NewHistoryCommand creates a new history command handler
func NewHistoryCommand(app *App) *HistoryCommand {
	return &HistoryCommand{app: app}
}

// Execute runs the history command
func (c *HistoryCommand) Execute(ctx context.Context, args []string) error {
	days, err := c.app.businessAPI.History(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("read history", err)
	}
	fmt.Fprint(c.app.out, formatter.RenderHistory(days, c.app.config.Display.BarWidth))
	return nil
}
