package cli

import (
	"context"
)

// DoneAllCommand marks every task done
type DoneAllCommand struct {
	app *App
}

// NewDoneAllCommand creates a new done-all command handler
func NewDoneAllCommand(app *App) *DoneAllCommand {
	return &DoneAllCommand{app: app}
}

// Execute runs the done-all command
func (c *DoneAllCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.businessAPI.MarkAll(ctx)
	if board == nil {
		return c.app.errorHandler.Handle("mark all tasks", err)
	}
	c.app.printBoard(board)
	return c.app.errorHandler.SoftFail(c.app.errOut, "mark all tasks", err)
}
