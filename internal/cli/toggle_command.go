package cli

import (
	"context"
)

// ToggleCommand flips the done flag of one or more tasks
type ToggleCommand struct {
	app *App
}

// NewToggleCommand creates a new toggle command handler
func NewToggleCommand(app *App) *ToggleCommand {
	return &ToggleCommand{app: app}
}

// Execute runs the toggle command. Arguments are 1-based task numbers.
func (c *ToggleCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.businessAPI.Toggle(ctx, args)
	if board == nil {
		return c.app.errorHandler.Handle("toggle tasks", err)
	}
	c.app.printBoard(board)
	return c.app.errorHandler.SoftFail(c.app.errOut, "toggle tasks", err)
}

// SetDoneCommand marks tasks done (check) or not done (uncheck)
type SetDoneCommand struct {
	app  *App
	done bool
}

// NewSetDoneCommand creates a check or uncheck command handler
func NewSetDoneCommand(app *App, done bool) *SetDoneCommand {
	return &SetDoneCommand{app: app, done: done}
}

// Execute runs the check or uncheck command
func (c *SetDoneCommand) Execute(ctx context.Context, args []string) error {
	operation := "check tasks"
	if !c.done {
		operation = "uncheck tasks"
	}

	board, err := c.app.businessAPI.SetDone(ctx, args, c.done)
	if board == nil {
		return c.app.errorHandler.Handle(operation, err)
	}
	c.app.printBoard(board)
	return c.app.errorHandler.SoftFail(c.app.errOut, operation, err)
}
