package cli

import (
	"context"
	"fmt"
)

// ResetCommand marks every task not done
type ResetCommand struct {
	app *App
	// Yes skips the confirmation prompt
	Yes bool
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App) *ResetCommand {
	return &ResetCommand{app: app}
}

// Execute runs the reset command. On a terminal it asks first unless Yes is set.
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	if !c.Yes && c.app.isInteractive() {
		ok, err := c.app.confirm("Reset every task to not done?")
		if err != nil {
			return c.app.errorHandler.Handle("confirm reset", err)
		}
		if !ok {
			fmt.Fprintln(c.app.out, "Reset cancelled.")
			return nil
		}
	}

	board, err := c.app.businessAPI.Reset(ctx)
	if board == nil {
		return c.app.errorHandler.Handle("reset tasks", err)
	}
	c.app.printBoard(board)
	return c.app.errorHandler.SoftFail(c.app.errOut, "reset tasks", err)
}
