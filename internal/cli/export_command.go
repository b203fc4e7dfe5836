package cli

import (
	"context"
	"fmt"
	"os"

	"daybelt/internal/errors"
)

// ExportCommand writes today's checklist as CSV
type ExportCommand struct {
	app *App
	// Output is the destination file; empty means stdout
	Output string
}

// NewExportCommand creates a new export command handler
func NewExportCommand(app *App) *ExportCommand {
	return &ExportCommand{app: app}
}

// Execute runs the export command
func (c *ExportCommand) Execute(ctx context.Context, args []string) error {
	if c.Output == "" {
		if err := c.app.businessAPI.ExportCSV(ctx, c.app.out); err != nil {
			return c.app.errorHandler.Handle("export csv", err)
		}
		return nil
	}

	f, err := os.Create(c.Output)
	if err != nil {
		return c.app.errorHandler.Handle("export csv", errors.NewStorageError("create "+c.Output, err))
	}
	if err := c.app.businessAPI.ExportCSV(ctx, f); err != nil {
		_ = f.Close()
		return c.app.errorHandler.Handle("export csv", err)
	}
	if err := f.Close(); err != nil {
		return c.app.errorHandler.Handle("export csv", errors.NewStorageError("close "+c.Output, err))
	}

	fmt.Fprintf(c.app.errOut, "Exported to %s\n", c.Output)
	return nil
}
