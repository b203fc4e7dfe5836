package cli

import (
	"context"
	"path/filepath"

	"daybelt/internal/errors"
	"daybelt/internal/logging"
	"daybelt/internal/plan"
	"daybelt/internal/tui"
)

// TUICommand runs the interactive checklist
type TUICommand struct {
	app *App
	// Watch reloads the plan file when it changes
	Watch bool
}

// NewTUICommand creates a new tui command handler
func NewTUICommand(app *App) *TUICommand {
	return &TUICommand{app: app}
}

// Execute runs the tui command until the user quits
func (c *TUICommand) Execute(ctx context.Context, args []string) error {
	cfg := c.app.config
	opts := tui.Options{
		BarWidth:   cfg.Display.BarWidth,
		ExportPath: c.exportPath(),
		Clock:      c.app.businessAPI.Clock(),
	}

	if c.Watch {
		if c.app.planSource == "" {
			return c.app.errorHandler.Handle("watch plan",
				errors.NewInvalidInputError("plan", "", "--watch needs a plan file (set BELT_PLAN or --plan)"))
		}
		watcher, err := plan.NewWatcher(c.app.planSource, cfg.Plan.LabelMaxLength)
		if err != nil {
			return c.app.errorHandler.Handle("watch plan", err)
		}
		if err := watcher.Start(ctx); err != nil {
			_ = watcher.Stop()
			return c.app.errorHandler.Handle("watch plan", err)
		}
		defer func() {
			if err := watcher.Stop(); err != nil {
				logging.Default().Warn("plan watcher did not stop cleanly", "err", err)
			}
		}()
		opts.Updates = watcher.Updates()
	}

	model, err := tui.New(ctx, c.app.businessAPI, opts)
	if err != nil {
		return c.app.errorHandler.Handle("open checklist", err)
	}
	if err := c.app.runTUI(ctx, model); err != nil {
		return c.app.errorHandler.Handle("run checklist", err)
	}
	return nil
}

// exportPath puts a bare export filename in the data directory
func (c *TUICommand) exportPath() string {
	name := c.app.config.Display.ExportFilename
	if name == "" || filepath.IsAbs(name) || filepath.Dir(name) != "." {
		return name
	}
	return filepath.Join(c.app.config.Storage.Dir, name)
}
