package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"daybelt/internal/api"
	"daybelt/internal/cli/formatter"
	"daybelt/internal/config"
	"daybelt/internal/logging"
	"daybelt/internal/plan"
)

// BootstrapFunc turns final configuration into a ready App. The returned
// func releases the snapshot store.
type BootstrapFunc func(ctx context.Context, cfg *config.Config, opts ...AppOption) (*App, func() error, error)

// Bootstrap wires configuration into a ready App: logging, the pinned time
// zone, the plan, the snapshot store and the business API.
func Bootstrap(ctx context.Context, cfg *config.Config, opts ...AppOption) (*App, func() error, error) {
	ConfigureLogging(cfg, os.Stderr)

	loc, err := cfg.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load time zone: %w", err)
	}
	time.Local = loc
	logging.Debugf("pinned time zone to %s", loc)

	formatter.SetColor(cfg.Display.Color)

	p, err := plan.Resolve(cfg.Plan.Path, cfg.Storage.Dir, cfg.Plan.LabelMaxLength)
	if err != nil {
		return nil, nil, err
	}

	repo, err := config.CreateRepository(ctx, cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open snapshot store: %w", err)
	}
	logging.Debugf("using %s snapshot store in %s", cfg.Storage.Backend, cfg.Storage.Dir)

	businessAPI := api.NewBusinessAPI(repo, p, time.Now)
	app := NewApp(businessAPI, cfg, append([]AppOption{WithPlanSource(p.Source)}, opts...)...)
	return app, repo.Close, nil
}

// ConfigureLogging installs the process logger described by cfg. Verbose
// raises the default warn level to info.
func ConfigureLogging(cfg *config.Config, w io.Writer) {
	level := cfg.Application.LogLevel
	if cfg.Application.Verbose && logging.ParseLevel(level) > logging.ParseLevel("info") {
		level = "info"
	}
	logging.SetDefault(logging.New(w, logging.Options{
		Level:  level,
		Format: cfg.Application.LogFormat,
		Prefix: "belt",
	}))
}
