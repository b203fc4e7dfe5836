package cli

import (
	"context"
	stderrors "errors"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"daybelt/internal/api"
	"daybelt/internal/config"
	"daybelt/internal/tui"
)

// App represents the main CLI application
type App struct {
	businessAPI   api.BusinessAPI
	config        *config.Config
	planSource    string
	out           io.Writer
	errOut        io.Writer
	isInteractive func() bool
	confirm       func(title string) (bool, error)
	runTUI        func(ctx context.Context, m tui.Model) error
	errorHandler  *ErrorHandler
	registry      *CommandRegistry
}

// AppOption customizes an App
type AppOption func(*App)

// WithOutput sets where results and warnings are written
func WithOutput(out, errOut io.Writer) AppOption {
	return func(a *App) {
		a.out = out
		a.errOut = errOut
	}
}

// WithPlanSource records the plan file in use, empty for the built-in plan
func WithPlanSource(path string) AppOption {
	return func(a *App) {
		a.planSource = path
	}
}

// WithInteractive overrides terminal detection
func WithInteractive(isInteractive func() bool) AppOption {
	return func(a *App) {
		a.isInteractive = isInteractive
	}
}

// WithConfirm overrides the yes/no prompt
func WithConfirm(confirm func(title string) (bool, error)) AppOption {
	return func(a *App) {
		a.confirm = confirm
	}
}

// WithTUIRunner overrides how the interactive checklist is run
func WithTUIRunner(run func(ctx context.Context, m tui.Model) error) AppOption {
	return func(a *App) {
		a.runTUI = run
	}
}

// NewApp creates a new CLI application instance with dependency injection
func NewApp(businessAPI api.BusinessAPI, cfg *config.Config, opts ...AppOption) *App {
	if cfg == nil {
		cfg = config.NewConfig()
	}
	app := &App{
		businessAPI:   businessAPI,
		config:        cfg,
		out:           os.Stdout,
		errOut:        os.Stderr,
		isInteractive: StdinIsTerminal,
		confirm:       confirmWithHuh,
		runTUI:        tui.Run,
		errorHandler:  NewErrorHandler(),
	}
	for _, opt := range opts {
		opt(app)
	}
	app.registry = NewCommandRegistry(app)
	return app
}

// Run executes the named command with the given arguments
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.registry.Execute(ctx, "show", nil)
	}
	return a.registry.Execute(ctx, args[0], args[1:])
}

// StdinIsTerminal reports whether stdin is attached to a terminal
func StdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func confirmWithHuh(title string) (bool, error) {
	var ok bool
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Affirmative("Yes").
				Negative("No").
				Value(&ok),
		),
	).WithShowHelp(false).Run()
	if stderrors.Is(err, huh.ErrUserAborted) {
		return false, nil
	}
	return ok, err
}
