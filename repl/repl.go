// File: repl.go
// Title: Lingo Interactive Shell
// Description: Implements the interactive read-eval-print loop for Lingo
//              source exploration. Reads lines with editing and history
//              support, shows the token stream or the parsed AST for each
//              line, and dispatches colon-prefixed meta-commands through
//              the session command registry.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial REPL implementation

package repl

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"

	"github.com/google/uuid"
	"github.com/peterh/liner"

	"github.com/msto63/lingo"
	lingoast "github.com/msto63/lingo/ast"
	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
	lingoparser "github.com/msto63/lingo/parser"
	lingotoken "github.com/msto63/lingo/token"
	lingostringx "github.com/msto63/lingo/utils/stringx"
)

const (
	// DefaultPrompt is shown before each input line
	DefaultPrompt = ">> "

	// DefaultHistoryFile is the history file name below the home directory
	DefaultHistoryFile = ".lingo_history"

	greetingLine = "Hello! This is the Lingo programming language!"
	greetingHint = "Feel free to type in commands"

	// Width of the kind column in token mode output
	tokenKindWidth = 10
)

// Mode selects what the shell prints for an input line
type Mode int

const (
	// ModeTokens prints one token per line, the original shell behavior
	ModeTokens Mode = iota

	// ModeAST parses the line and prints the canonical form and tree
	ModeAST
)

// String returns the display name of the mode
func (m Mode) String() string {
	switch m {
	case ModeTokens:
		return "tokens"
	case ModeAST:
		return "ast"
	default:
		return "unknown"
	}
}

// ParseMode converts a mode name into a Mode value
func ParseMode(name string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "tokens", "token":
		return ModeTokens, nil
	case "ast", "tree":
		return ModeAST, nil
	default:
		return ModeTokens, lingoerror.New(fmt.Sprintf("unknown repl mode: %s", name)).
			WithCode(lingoerror.CodeInvalidInput).
			WithOperation("repl.ParseMode")
	}
}

// REPL represents an interactive Lingo session
type REPL struct {
	engine      *lingo.Engine
	commands    *CommandRegistry
	logger      *lingolog.Logger
	options     Options
	sessionID   string
	mode        Mode
	historyPath string
	history     []string
	out         io.Writer
}

// Options configures the interactive session
type Options struct {
	// Engine processes the input lines (optional, a collecting engine
	// is created when nil)
	Engine *lingo.Engine

	// Logger for session events (optional, defaults to default logger)
	Logger *lingolog.Logger

	// Prompt shown before each input line (default: ">> ")
	Prompt string

	// HistoryFile stores the line history between sessions
	// (default: ~/.lingo_history)
	HistoryFile string

	// Mode selects the initial output mode (default: ModeTokens)
	Mode Mode

	// Output receives greeting and evaluation output (default: os.Stdout)
	Output io.Writer

	// DisableHistory turns off history persistence entirely
	DisableHistory bool
}

// New creates a new interactive session with the specified options
func New(opts Options) (*REPL, error) {
	options := opts

	if options.Logger == nil {
		options.Logger = lingolog.GetDefault()
	}
	if lingostringx.IsEmpty(options.Prompt) {
		options.Prompt = DefaultPrompt
	}
	if options.Output == nil {
		options.Output = os.Stdout
	}

	sessionID := uuid.New().String()
	logger := options.Logger.WithSessionID(sessionID).WithField("component", "repl")

	if options.Engine == nil {
		options.Engine = lingo.New(lingo.Options{
			Logger:           logger,
			CollectAllTokens: true,
		})
	}

	historyPath := options.HistoryFile
	if lingostringx.IsEmpty(historyPath) && !options.DisableHistory {
		home, err := os.UserHomeDir()
		if err != nil {
			logger.WarnWithErr("could not resolve home directory, history disabled", err)
			options.DisableHistory = true
		} else {
			historyPath = filepath.Join(home, DefaultHistoryFile)
		}
	}

	commands, err := NewCommandRegistry(logger)
	if err != nil {
		return nil, lingoerror.Wrap(err, "failed to initialize repl commands").
			WithCode(lingoerror.CodeSessionInit).
			WithOperation("repl.New")
	}

	repl := &REPL{
		engine:      options.Engine,
		commands:    commands,
		logger:      logger,
		options:     options,
		sessionID:   sessionID,
		mode:        options.Mode,
		historyPath: historyPath,
		history:     make([]string, 0),
		out:         options.Output,
	}

	logger.Debug("repl initialized", lingolog.Fields{
		"mode":        repl.mode.String(),
		"prompt":      options.Prompt,
		"historyFile": historyPath,
	})

	return repl, nil
}

// SessionID returns the unique identifier of this session
func (r *REPL) SessionID() string {
	return r.sessionID
}

// Mode returns the current output mode
func (r *REPL) Mode() Mode {
	return r.mode
}

// Run drives the interactive loop until the user quits or input ends.
// The terminal is put into line-editing mode; Ctrl-C aborts the current
// line, Ctrl-D ends the session.
func (r *REPL) Run() error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	// Restore the terminal before dying on external termination
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		line.Close()
		os.Exit(130)
	}()

	r.loadHistory(line)
	defer r.saveHistory(line)

	fmt.Fprintln(r.out, greetingLine)
	fmt.Fprintln(r.out, greetingHint)

	r.logger.Audit("repl session started", lingolog.Fields{
		"mode": r.mode.String(),
	})

	for {
		input, err := line.Prompt(r.options.Prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				continue
			}
			if errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out)
				break
			}
			r.logger.WarnWithErr("input closed", err)
			break
		}

		output, quit := r.ProcessLine(input)
		if output != "" {
			fmt.Fprintln(r.out, output)
		}
		if lingostringx.IsNotBlank(input) {
			line.AppendHistory(input)
		}
		if quit {
			break
		}
	}

	r.logger.Audit("repl session ended", lingolog.Fields{
		"lines": len(r.history),
	})

	return nil
}

// ProcessLine handles one input line and returns the text to print and
// whether the session should end. It needs no terminal, which makes it
// the seam for driving a session programmatically.
func (r *REPL) ProcessLine(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	if strings.HasPrefix(trimmed, ":") {
		return r.runCommand(trimmed)
	}

	r.history = append(r.history, trimmed)

	switch r.mode {
	case ModeAST:
		return r.renderAST(trimmed), false
	default:
		return r.renderTokens(trimmed), false
	}
}

// runCommand dispatches a colon-prefixed meta-command
func (r *REPL) runCommand(input string) (string, bool) {
	parts := strings.Fields(input)
	name := parts[0]
	args := parts[1:]

	cmd, ok := r.commands.Resolve(name)
	if !ok {
		err := lingoerror.New(fmt.Sprintf("unknown repl command: %s", name)).
			WithCode(lingoerror.CodeUnknownCommand).
			WithOperation("repl.runCommand")
		r.logger.LogError(err)
		return fmt.Sprintf("unknown command %s (try :help)", name), false
	}

	switch cmd.ID {
	case CommandHelp:
		return r.renderHelp(), false
	case CommandQuit:
		return "", true
	case CommandMode:
		return r.runModeCommand(args), false
	case CommandHistory:
		return r.renderHistory(), false
	case CommandClear:
		return "\x1b[2J\x1b[H", false
	default:
		return fmt.Sprintf("unknown command %s (try :help)", name), false
	}
}

// runModeCommand shows or switches the output mode
func (r *REPL) runModeCommand(args []string) string {
	if len(args) == 0 {
		return fmt.Sprintf("current mode: %s (usage: :mode tokens|ast)", r.mode)
	}

	mode, err := ParseMode(args[0])
	if err != nil {
		return fmt.Sprintf("unknown mode %q (expected tokens or ast)", args[0])
	}

	r.mode = mode
	r.logger.Info("repl mode changed", lingolog.Fields{
		"mode": mode.String(),
	})

	return fmt.Sprintf("mode set to %s", mode)
}

// renderTokens prints the token stream of a line, one token per row,
// stopping before the terminal EndOfFile
func (r *REPL) renderTokens(source string) string {
	tokens, err := r.engine.Tokenize(source)
	if err != nil {
		return "error: " + err.Error()
	}

	var out strings.Builder
	for _, tok := range tokens {
		if tok.Kind == lingotoken.EndOfFile {
			break
		}
		out.WriteString(lingostringx.PadRight(tok.Kind.String(), tokenKindWidth, ' '))
		out.WriteString(strconv.Quote(tok.Literal))
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// renderAST parses a line and prints either its diagnostics or the
// canonical form followed by the tree structure
func (r *REPL) renderAST(source string) string {
	result, err := r.engine.Parse(source)
	if err != nil {
		if result != nil && result.HasErrors() {
			return renderDiagnostics(result.Diagnostics)
		}
		return "error: " + err.Error()
	}

	var out strings.Builder
	out.WriteString(result.Program.String())
	out.WriteString("\n")
	out.WriteString(lingoast.ASTToString(result.Program))

	return strings.TrimRight(out.String(), "\n")
}

// renderDiagnostics lists parse errors with their positions
func renderDiagnostics(diagnostics []lingoparser.Diagnostic) string {
	var out strings.Builder
	out.WriteString("parse errors:\n")
	for _, d := range diagnostics {
		out.WriteString("  ")
		out.WriteString(d.Error())
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// renderHelp lists the registered meta-commands
func (r *REPL) renderHelp() string {
	var out strings.Builder
	out.WriteString("Available commands:\n")

	for _, cmd := range r.commands.Commands() {
		out.WriteString("  ")
		out.WriteString(lingostringx.PadRight(cmd.Usage, 20, ' '))
		out.WriteString(cmd.Description)
		if len(cmd.Aliases) > 0 {
			aliases := make([]string, 0, len(cmd.Aliases))
			for _, alias := range cmd.Aliases {
				aliases = append(aliases, ":"+alias)
			}
			out.WriteString(fmt.Sprintf(" (aliases %s)", strings.Join(aliases, ", ")))
		}
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// renderHistory lists the lines entered this session
func (r *REPL) renderHistory() string {
	if len(r.history) == 0 {
		return "history is empty"
	}

	var out strings.Builder
	for i, entry := range r.history {
		out.WriteString(lingostringx.PadLeft(strconv.Itoa(i+1), 3, ' '))
		out.WriteString("  ")
		out.WriteString(entry)
		out.WriteString("\n")
	}

	return strings.TrimRight(out.String(), "\n")
}

// loadHistory reads persisted line history into the prompt state
func (r *REPL) loadHistory(line *liner.State) {
	if r.options.DisableHistory || lingostringx.IsEmpty(r.historyPath) {
		return
	}

	f, err := os.Open(r.historyPath)
	if err != nil {
		if !os.IsNotExist(err) {
			r.logger.WarnWithErr("history file unavailable",
				lingoerror.Wrap(err, "could not open history file").WithCode(lingoerror.CodeHistoryIO),
				lingolog.Field("path", r.historyPath))
		}
		return
	}
	defer f.Close()

	if _, err := line.ReadHistory(f); err != nil {
		r.logger.WarnWithErr("history file unreadable",
			lingoerror.Wrap(err, "could not read history file").WithCode(lingoerror.CodeHistoryIO),
			lingolog.Field("path", r.historyPath))
	}
}

// saveHistory writes the prompt history back to the history file
func (r *REPL) saveHistory(line *liner.State) {
	if r.options.DisableHistory || lingostringx.IsEmpty(r.historyPath) {
		return
	}

	f, err := os.Create(r.historyPath)
	if err != nil {
		r.logger.WarnWithErr("history file not writable",
			lingoerror.Wrap(err, "could not create history file").WithCode(lingoerror.CodeHistoryIO),
			lingolog.Field("path", r.historyPath))
		return
	}
	defer f.Close()

	if _, err := line.WriteHistory(f); err != nil {
		r.logger.WarnWithErr("history not saved",
			lingoerror.Wrap(err, "could not write history file").WithCode(lingoerror.CodeHistoryIO),
			lingolog.Field("path", r.historyPath))
	}
}
