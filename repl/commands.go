// File: commands.go
// Title: REPL Meta-Command Registry
// Description: Implements the registry for colon-prefixed session
//              commands. Commands are registered under a primary name
//              plus optional aliases and are dispatched by enumerated
//              identifier. The registry is safe for concurrent use.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial command registry implementation

package repl

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	lingolog "github.com/msto63/lingo/core/log"
	lingostringx "github.com/msto63/lingo/utils/stringx"
)

// CommandID identifies a builtin meta-command
type CommandID int

const (
	// CommandUnknown is the zero value and matches no builtin
	CommandUnknown CommandID = iota

	// CommandHelp lists the available commands
	CommandHelp

	// CommandQuit ends the session
	CommandQuit

	// CommandMode shows or switches the output mode
	CommandMode

	// CommandHistory lists the lines entered this session
	CommandHistory

	// CommandClear clears the screen
	CommandClear
)

// String returns the name of the command identifier
func (id CommandID) String() string {
	switch id {
	case CommandHelp:
		return "help"
	case CommandQuit:
		return "quit"
	case CommandMode:
		return "mode"
	case CommandHistory:
		return "history"
	case CommandClear:
		return "clear"
	default:
		return "unknown"
	}
}

// Command describes a registered meta-command
type Command struct {
	// ID is the dispatch identifier
	ID CommandID

	// Name is the primary name without the colon prefix
	Name string

	// Aliases are alternative names without the colon prefix
	Aliases []string

	// Usage is the invocation shown in help output
	Usage string

	// Description is the one-line help text
	Description string
}

// CommandRegistry manages the meta-commands of a session
type CommandRegistry struct {
	commands map[string]*Command
	order    []*Command
	logger   *lingolog.Logger
	mutex    sync.RWMutex
}

// NewCommandRegistry creates a registry with the builtin commands
// already registered
func NewCommandRegistry(logger *lingolog.Logger) (*CommandRegistry, error) {
	if logger == nil {
		logger = lingolog.GetDefault()
	}

	registry := &CommandRegistry{
		commands: make(map[string]*Command),
		order:    make([]*Command, 0),
		logger:   logger.WithField("component", "repl-commands"),
	}

	if err := registry.registerBuiltins(); err != nil {
		return nil, fmt.Errorf("failed to register builtin commands: %w", err)
	}

	registry.logger.Debug("command registry initialized", lingolog.Fields{
		"commands": len(registry.order),
	})

	return registry, nil
}

// Register adds a command under its name and all aliases
func (cr *CommandRegistry) Register(cmd *Command) error {
	if cmd == nil {
		return errors.New("command definition cannot be nil")
	}
	if lingostringx.IsBlank(cmd.Name) {
		return errors.New("command name cannot be empty")
	}

	cr.mutex.Lock()
	defer cr.mutex.Unlock()

	name := normalizeCommandName(cmd.Name)
	cmd.Name = name

	if _, exists := cr.commands[name]; exists {
		return fmt.Errorf("command %s already registered", name)
	}
	for i, alias := range cmd.Aliases {
		alias = normalizeCommandName(alias)
		cmd.Aliases[i] = alias
		if _, exists := cr.commands[alias]; exists {
			return fmt.Errorf("alias %s already registered", alias)
		}
	}

	cr.commands[name] = cmd
	for _, alias := range cmd.Aliases {
		cr.commands[alias] = cmd
	}
	cr.order = append(cr.order, cmd)

	cr.logger.Debug("repl command registered", lingolog.Fields{
		"command": name,
		"aliases": len(cmd.Aliases),
	})

	return nil
}

// Resolve looks up a command by name or alias. A leading colon and
// case differences are ignored.
func (cr *CommandRegistry) Resolve(name string) (*Command, bool) {
	cr.mutex.RLock()
	defer cr.mutex.RUnlock()

	cmd, exists := cr.commands[normalizeCommandName(name)]
	return cmd, exists
}

// Has reports whether a command name or alias is registered
func (cr *CommandRegistry) Has(name string) bool {
	_, exists := cr.Resolve(name)
	return exists
}

// Commands returns the registered commands in registration order
func (cr *CommandRegistry) Commands() []*Command {
	cr.mutex.RLock()
	defer cr.mutex.RUnlock()

	commands := make([]*Command, len(cr.order))
	copy(commands, cr.order)
	return commands
}

// Names returns all registered names and aliases in sorted order
func (cr *CommandRegistry) Names() []string {
	cr.mutex.RLock()
	defer cr.mutex.RUnlock()

	names := make([]string, 0, len(cr.commands))
	for name := range cr.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// registerBuiltins installs the session commands every shell offers
func (cr *CommandRegistry) registerBuiltins() error {
	builtins := []*Command{
		{
			ID:          CommandHelp,
			Name:        "help",
			Usage:       ":help",
			Description: "Show available commands",
		},
		{
			ID:          CommandQuit,
			Name:        "quit",
			Aliases:     []string{"q", "exit"},
			Usage:       ":quit",
			Description: "Exit the session",
		},
		{
			ID:          CommandMode,
			Name:        "mode",
			Usage:       ":mode [tokens|ast]",
			Description: "Show or switch the output mode",
		},
		{
			ID:          CommandHistory,
			Name:        "history",
			Usage:       ":history",
			Description: "List the source lines entered this session",
		},
		{
			ID:          CommandClear,
			Name:        "clear",
			Usage:       ":clear",
			Description: "Clear the screen",
		},
	}

	for _, cmd := range builtins {
		if err := cr.Register(cmd); err != nil {
			return fmt.Errorf("failed to register %s: %w", cmd.Name, err)
		}
	}

	return nil
}

// normalizeCommandName strips the colon prefix and lowercases the name
func normalizeCommandName(name string) string {
	return strings.ToLower(strings.TrimPrefix(strings.TrimSpace(name), ":"))
}
