package cli

import (
	"context"
	"sort"
	"strings"

	"daybelt/internal/errors"
)

// Command represents a CLI command
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// CommandRegistry manages all available commands
type CommandRegistry struct {
	commands map[string]Command
}

// NewCommandRegistry creates a new command registry
func NewCommandRegistry(app *App) *CommandRegistry {
	registry := &CommandRegistry{
		commands: make(map[string]Command),
	}

	registry.Register("show", NewShowCommand(app))
	registry.Register("toggle", NewToggleCommand(app))
	registry.Register("check", NewSetDoneCommand(app, true))
	registry.Register("uncheck", NewSetDoneCommand(app, false))
	registry.Register("reset", NewResetCommand(app))
	registry.Register("done-all", NewDoneAllCommand(app))
	registry.Register("export", NewExportCommand(app))
	registry.Register("now", NewNowCommand(app))
	registry.Register("history", NewHistoryCommand(app))
	registry.Register("tui", NewTUICommand(app))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Get returns the command registered under name
func (r *CommandRegistry) Get(name string) (Command, bool) {
	command, ok := r.commands[name]
	return command, ok
}

// Execute runs the specified command with the given arguments
func (r *CommandRegistry) Execute(ctx context.Context, commandName string, args []string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx, args)
}

// Names returns the registered command names in order
func (r *CommandRegistry) Names() []string {
	names := make([]string, 0, len(r.commands))
	for name := range r.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetUsage returns the usage string for the CLI
func (r *CommandRegistry) GetUsage() string {
	return "usage: belt [" + strings.Join(r.Names(), "|") + "]"
}
