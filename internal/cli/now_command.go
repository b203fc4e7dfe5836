package cli

import (
	"context"
	"fmt"

	"daybelt/internal/cli/formatter"
)

// NowCommand prints the task scheduled for the current time
type NowCommand struct {
	app *App
}

// NewNowCommand creates a new now command handler
func NewNowCommand(app *App) *NowCommand {
	return &NowCommand{app: app}
}

// Execute runs the now command. Having no current slot is not an error.
func (c *NowCommand) Execute(ctx context.Context, args []string) error {
	slot, err := c.app.businessAPI.Now(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("find current task", err)
	}
	fmt.Fprintln(c.app.out, formatter.RenderNow(slot))
	return nil
}
