package cli

import (
	"context"
	"fmt"

	"daybelt/internal/api"
	"daybelt/internal/cli/formatter"
)

// ShowCommand prints today's checklist
type ShowCommand struct {
	app *App
}

// NewShowCommand creates a new show command handler
func NewShowCommand(app *App) *ShowCommand {
	return &ShowCommand{app: app}
}

// Execute runs the show command
func (c *ShowCommand) Execute(ctx context.Context, args []string) error {
	board, err := c.app.businessAPI.Board(ctx)
	if err != nil {
		return c.app.errorHandler.Handle("load checklist", err)
	}
	c.app.printBoard(board)
	return nil
}

// printBoard writes the board to stdout and any load warning to stderr
func (a *App) printBoard(board *api.Board) {
	a.errorHandler.Warn(a.errOut, board.Warning)
	fmt.Fprint(a.out, formatter.RenderBoard(board, a.config.Display.BarWidth))
}
