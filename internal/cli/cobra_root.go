package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"daybelt/internal/config"
	"daybelt/internal/logging"
)

// RootOptions configures the root command
type RootOptions struct {
	Stdout io.Writer
	Stderr io.Writer
	// Bootstrap builds the App once flags are parsed. Defaults to Bootstrap.
	Bootstrap BootstrapFunc
	// AppOptions are passed through to the App
	AppOptions []AppOption
}

// RootCommand represents the base command when called without any subcommands
type RootCommand struct {
	cmd     *cobra.Command
	opts    RootOptions
	config  *config.Config
	app     *App
	closeFn func() error
}

// NewRootCommand creates the root cobra command with global flags
func NewRootCommand(opts RootOptions) *RootCommand {
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Bootstrap == nil {
		opts.Bootstrap = Bootstrap
	}

	root := &RootCommand{opts: opts}

	root.cmd = &cobra.Command{
		Use:   "belt",
		Short: "A no-decisions day plan you tick off as you go",
		Long: `belt shows a fixed schedule of time-boxed tasks, remembers which ones you have
done today, and points at the task whose time slot contains the current time.

EXAMPLES:
  belt                          # Show today's checklist
  belt toggle 3                 # Flip task 3
  belt check 1 2                # Mark tasks 1 and 2 done
  belt now                      # What should I be doing right now?
  belt export -o today.csv      # Export as CSV
  belt tui --watch              # Interactive checklist, reloading the plan on edit

CONFIGURATION:
  Priority: command-line flags > environment variables > config file > defaults

    BELT_CONFIG                   Config file (default: ~/.belt/config.toml)
    BELT_DATA_DIR                 Snapshot directory (default: ~/.belt)
    BELT_STORAGE_BACKEND          json or sqlite (default: json)
    BELT_DB_FILENAME              SQLite file name (default: belt.db)
    BELT_TIMEZONE                 IANA time zone (default: UTC)
    BELT_PLAN                     Day plan file, .yaml or .toml
    BELT_DISPLAY_BAR_WIDTH        Progress bar width (default: 30)
    BELT_EXPORT_FILENAME          TUI export file (default: schedule.csv)
    BELT_LOG_LEVEL                debug, info, warn, error (default: warn)
    BELT_LOG_FORMAT               text, json, logfmt (default: text)
    BELT_DEBUG                    Force debug logging when set

  A .env file in the working directory is loaded first.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return root.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := root.timeoutContext(cmd)
			defer cancel()
			return NewShowCommand(root.app).Execute(ctx, args)
		},
	}
	root.cmd.SetOut(opts.Stdout)
	root.cmd.SetErr(opts.Stderr)

	config.BindFlags(root.cmd.PersistentFlags())
	root.addSubcommands()

	return root
}

// Execute runs the root command and releases the snapshot store afterwards
func (r *RootCommand) Execute(ctx context.Context) error {
	err := r.cmd.ExecuteContext(ctx)
	if r.closeFn != nil {
		if closeErr := r.closeFn(); closeErr != nil {
			logging.Default().Warn("failed to close snapshot store", "err", closeErr)
		}
		r.closeFn = nil
	}
	return err
}

// SetArgs sets the arguments the root command parses
func (r *RootCommand) SetArgs(args []string) {
	r.cmd.SetArgs(args)
}

// Command exposes the underlying cobra command
func (r *RootCommand) Command() *cobra.Command {
	return r.cmd
}

// Config returns the configuration in effect, once a command has started
func (r *RootCommand) Config() *config.Config {
	return r.config
}

// setup loads configuration with flag overrides and builds the App
func (r *RootCommand) setup(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loader.WithFile(path)
	}

	cfg, err := loader.LoadWithOverrides(config.OverridesFromFlags(cmd.Flags()))
	if err != nil {
		return err
	}
	r.config = cfg

	appOpts := append([]AppOption{WithOutput(r.opts.Stdout, r.opts.Stderr)}, r.opts.AppOptions...)
	app, closeFn, err := r.opts.Bootstrap(cmd.Context(), cfg, appOpts...)
	if err != nil {
		return err
	}
	r.app = app
	r.closeFn = closeFn
	return nil
}

// timeoutContext bounds non-interactive commands by the configured timeout
func (r *RootCommand) timeoutContext(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), r.getAppTimeout())
}

// getAppTimeout returns the configured application timeout
func (r *RootCommand) getAppTimeout() time.Duration {
	if r.config != nil && r.config.Application.Timeout > 0 {
		return r.config.Application.Timeout
	}
	return 30 * time.Second
}

// addSubcommands adds all CLI subcommands to the root command
func (r *RootCommand) addSubcommands() {
	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show today's checklist",
		Long:  "Print the title, progress bar and numbered task list, marking the task whose slot contains the current time.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewShowCommand(r.app).Execute(ctx, args)
		},
	}

	toggleCmd := &cobra.Command{
		Use:   "toggle N [N...]",
		Short: "Flip tasks between done and not done",
		Long: `Flip one or more tasks by their 1-based number, saving after each.
All numbers are checked before any task changes.

Examples:
  belt toggle 3
  belt toggle 1 4 5`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewToggleCommand(r.app).Execute(ctx, args)
		},
	}

	checkCmd := &cobra.Command{
		Use:   "check N [N...]",
		Short: "Mark tasks done",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewSetDoneCommand(r.app, true).Execute(ctx, args)
		},
	}

	uncheckCmd := &cobra.Command{
		Use:   "uncheck N [N...]",
		Short: "Mark tasks not done",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewSetDoneCommand(r.app, false).Execute(ctx, args)
		},
	}

	var resetYes bool
	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Mark every task not done",
		Long:  "Mark every task not done. On a terminal you are asked to confirm unless --yes is given.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The prompt waits on the user, so no timeout here.
			reset := NewResetCommand(r.app)
			reset.Yes = resetYes
			return reset.Execute(cmd.Context(), args)
		},
	}
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip the confirmation prompt")

	doneAllCmd := &cobra.Command{
		Use:   "done-all",
		Short: "Mark every task done",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewDoneAllCommand(r.app).Execute(ctx, args)
		},
	}

	var exportOutput string
	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "Export today's checklist as CSV",
		Long: `Write today's checklist as time,task,done rows with done as True or False.

Examples:
  belt export > schedule.csv
  belt export --output schedule.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			export := NewExportCommand(r.app)
			export.Output = exportOutput
			return export.Execute(ctx, args)
		},
	}
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Write to FILE instead of stdout")

	nowCmd := &cobra.Command{
		Use:   "now",
		Short: "Show the task scheduled right now",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewNowCommand(r.app).Execute(ctx, args)
		},
	}

	historyCmd := &cobra.Command{
		Use:   "history",
		Short: "List saved days with their completion",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := r.timeoutContext(cmd)
			defer cancel()
			return NewHistoryCommand(r.app).Execute(ctx, args)
		},
	}

	var tuiWatch bool
	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Interactive checklist",
		Long: `Open the interactive checklist.

Keys: ↑/↓ move, space toggle, r reset, a mark all, e export CSV,
c copy CSV to the clipboard, q quit. With --watch, edits to the plan
file are picked up while the checklist is open.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tuiCommand := NewTUICommand(r.app)
			tuiCommand.Watch = tuiWatch
			return tuiCommand.Execute(cmd.Context(), args)
		},
	}
	tuiCmd.Flags().BoolVarP(&tuiWatch, "watch", "w", false, "Reload the plan file when it changes")

	r.cmd.AddCommand(
		showCmd,
		toggleCmd,
		checkCmd,
		uncheckCmd,
		resetCmd,
		doneAllCmd,
		exportCmd,
		nowCmd,
		historyCmd,
		tuiCmd,
	)
}
