// File: commands_test.go
// Title: REPL Command Registry Tests
// Description: Tests for registration, normalization, and resolution of
//              session meta-commands including alias handling.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package repl

import (
	"sort"
	"strings"
	"testing"
)

func TestNewCommandRegistry(t *testing.T) {
	t.Run("registers the builtin commands", func(t *testing.T) {
		registry, err := NewCommandRegistry(quietLogger())
		if err != nil {
			t.Fatalf("NewCommandRegistry() returned unexpected error: %v", err)
		}

		commands := registry.Commands()
		if len(commands) != 5 {
			t.Fatalf("builtin command count = %d, want 5", len(commands))
		}

		wantOrder := []string{"help", "quit", "mode", "history", "clear"}
		for i, want := range wantOrder {
			if commands[i].Name != want {
				t.Errorf("commands[%d].Name = %q, want %q", i, commands[i].Name, want)
			}
		}
	})

	t.Run("accepts a nil logger", func(t *testing.T) {
		registry, err := NewCommandRegistry(nil)
		if err != nil {
			t.Fatalf("NewCommandRegistry(nil) returned unexpected error: %v", err)
		}
		if !registry.Has("help") {
			t.Error("expected builtin commands with nil logger")
		}
	})

	t.Run("resolves quit aliases", func(t *testing.T) {
		registry, err := NewCommandRegistry(quietLogger())
		if err != nil {
			t.Fatalf("NewCommandRegistry() returned unexpected error: %v", err)
		}

		for _, name := range []string{"q", "exit", ":q", ":exit"} {
			cmd, ok := registry.Resolve(name)
			if !ok {
				t.Errorf("Resolve(%q) did not find the quit command", name)
				continue
			}
			if cmd.ID != CommandQuit {
				t.Errorf("Resolve(%q).ID = %v, want %v", name, cmd.ID, CommandQuit)
			}
		}
	})
}

func TestCommandRegistry_Register(t *testing.T) {
	newRegistry := func(t *testing.T) *CommandRegistry {
		t.Helper()
		registry, err := NewCommandRegistry(quietLogger())
		if err != nil {
			t.Fatalf("NewCommandRegistry() returned unexpected error: %v", err)
		}
		return registry
	}

	t.Run("rejects nil command", func(t *testing.T) {
		registry := newRegistry(t)

		if err := registry.Register(nil); err == nil {
			t.Error("expected error for nil command")
		}
	})

	t.Run("rejects blank name", func(t *testing.T) {
		registry := newRegistry(t)

		err := registry.Register(&Command{Name: "   "})
		if err == nil {
			t.Error("expected error for blank command name")
		}
	})

	t.Run("rejects duplicate name", func(t *testing.T) {
		registry := newRegistry(t)

		err := registry.Register(&Command{Name: "help"})
		if err == nil {
			t.Fatal("expected error for duplicate command name")
		}
		if !strings.Contains(err.Error(), "already registered") {
			t.Errorf("error = %q, want already registered message", err.Error())
		}
	})

	t.Run("rejects alias clashing with existing command", func(t *testing.T) {
		registry := newRegistry(t)

		err := registry.Register(&Command{
			Name:    "reset",
			Aliases: []string{"q"},
		})
		if err == nil {
			t.Fatal("expected error for clashing alias")
		}
		if !strings.Contains(err.Error(), "alias q already registered") {
			t.Errorf("error = %q, want alias clash message", err.Error())
		}
	})

	t.Run("normalizes names and aliases", func(t *testing.T) {
		registry := newRegistry(t)

		err := registry.Register(&Command{
			Name:        ":Lex",
			Aliases:     []string{":L"},
			Usage:       ":lex",
			Description: "Tokenize without changing the mode",
		})
		if err != nil {
			t.Fatalf("Register() returned unexpected error: %v", err)
		}

		cmd, ok := registry.Resolve(":LEX")
		if !ok {
			t.Fatal("Resolve(\":LEX\") did not find the command")
		}
		if cmd.Name != "lex" {
			t.Errorf("stored name = %q, want %q", cmd.Name, "lex")
		}
		if !registry.Has("l") {
			t.Error("alias was not normalized and registered")
		}
	})
}

func TestCommandRegistry_Resolve(t *testing.T) {
	registry, err := NewCommandRegistry(quietLogger())
	if err != nil {
		t.Fatalf("NewCommandRegistry() returned unexpected error: %v", err)
	}

	tests := []struct {
		name   string
		lookup string
		wantID CommandID
		found  bool
	}{
		{name: "plain name", lookup: "help", wantID: CommandHelp, found: true},
		{name: "colon prefix", lookup: ":help", wantID: CommandHelp, found: true},
		{name: "uppercase", lookup: ":HELP", wantID: CommandHelp, found: true},
		{name: "alias", lookup: ":q", wantID: CommandQuit, found: true},
		{name: "history", lookup: "history", wantID: CommandHistory, found: true},
		{name: "unknown", lookup: "nope", found: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := registry.Resolve(tt.lookup)
			if ok != tt.found {
				t.Fatalf("Resolve(%q) found = %v, want %v", tt.lookup, ok, tt.found)
			}
			if tt.found && cmd.ID != tt.wantID {
				t.Errorf("Resolve(%q).ID = %v, want %v", tt.lookup, cmd.ID, tt.wantID)
			}
		})
	}
}

func TestCommandRegistry_Names(t *testing.T) {
	registry, err := NewCommandRegistry(quietLogger())
	if err != nil {
		t.Fatalf("NewCommandRegistry() returned unexpected error: %v", err)
	}

	names := registry.Names()

	if !sort.StringsAreSorted(names) {
		t.Errorf("Names() not sorted: %v", names)
	}
	for _, want := range []string{"clear", "exit", "help", "history", "mode", "q", "quit"} {
		found := false
		for _, name := range names {
			if name == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Names() missing %q: %v", want, names)
		}
	}
}

func TestCommandID_String(t *testing.T) {
	tests := []struct {
		id   CommandID
		want string
	}{
		{id: CommandHelp, want: "help"},
		{id: CommandQuit, want: "quit"},
		{id: CommandMode, want: "mode"},
		{id: CommandHistory, want: "history"},
		{id: CommandClear, want: "clear"},
		{id: CommandUnknown, want: "unknown"},
		{id: CommandID(42), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.id.String(); got != tt.want {
			t.Errorf("CommandID(%d).String() = %q, want %q", int(tt.id), got, tt.want)
		}
	}
}
