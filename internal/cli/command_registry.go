package cli

import (
	"context"

	"worklog/internal/api"
	"worklog/internal/errors"
)

// Names of the actions reachable from the menus
const (
	cmdAddEntry       = "add"
	cmdSearch         = "search"
	cmdModifyEntry    = "modify"
	cmdSearchEmployee = "search-employee"
	cmdSearchDate     = "search-date"
	cmdSearchDuration = "search-duration"
	cmdSearchLookup   = "search-lookup"
	cmdBrowseAll      = "browse"
)

// Command represents one menu action
type Command interface {
	Execute(ctx context.Context) error
}

// CommandFunc adapts a plain function to Command
type CommandFunc func(ctx context.Context) error

// Execute calls f
func (f CommandFunc) Execute(ctx context.Context) error {
	return f(ctx)
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

	// Register all commands
	registry.Register(cmdAddEntry, NewAddEntryCommand(app))
	registry.Register(cmdModifyEntry, NewModifyEntryCommand(app))
	registry.Register(cmdSearch, CommandFunc(func(ctx context.Context) error {
		return app.searchMenu().Run(ctx)
	}))
	registry.Register(cmdSearchEmployee, NewSearchCommand(app, api.SearchByEmployee))
	registry.Register(cmdSearchDate, NewSearchCommand(app, api.SearchByDate))
	registry.Register(cmdSearchDuration, NewSearchCommand(app, api.SearchByDuration))
	registry.Register(cmdSearchLookup, NewSearchCommand(app, api.SearchByLookup))
	registry.Register(cmdBrowseAll, NewSearchCommand(app, api.SearchAll))

	return registry
}

// Register adds a command to the registry
func (r *CommandRegistry) Register(name string, command Command) {
	r.commands[name] = command
}

// Execute runs the named command
func (r *CommandRegistry) Execute(ctx context.Context, commandName string) error {
	command, exists := r.commands[commandName]
	if !exists {
		return errors.NewInvalidInputError("command", commandName, "unknown command")
	}
	return command.Execute(ctx)
}
