// File: lingo.go
// Title: Lingo Main Interface and Engine
// Description: Provides the main Lingo engine interface and high-level API
//              for tokenizing, parsing, checking and formatting Lingo
//              source text. Integrates lexer, parser and AST components
//              behind a single validated entry point.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine implementation

package lingo

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	lingoast "github.com/msto63/lingo/ast"
	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
	lingolexer "github.com/msto63/lingo/lexer"
	lingoparser "github.com/msto63/lingo/parser"
	lingotoken "github.com/msto63/lingo/token"
	lingostringx "github.com/msto63/lingo/utils/stringx"
)

// DefaultMaxSourceLength is the input size limit applied when no explicit
// limit is configured
const DefaultMaxSourceLength = 64 * 1024

// Engine represents the main Lingo engine that coordinates lexing and parsing
type Engine struct {
	logger  *lingolog.Logger
	options Options
}

// Options configures the Lingo engine behavior
type Options struct {
	// Logger for engine operations (optional, defaults to default logger)
	Logger *lingolog.Logger

	// LogLevel for engine-specific logging; the engine logger is lowered
	// or raised to this level when set
	LogLevel lingolog.Level

	// MaxSourceLength limits input source length in bytes (default: 65536)
	MaxSourceLength int

	// CollectAllTokens keeps scanning past illegal bytes so they surface
	// as Illegal tokens in the stream; when false the first illegal byte
	// fails the Tokenize call (default: true)
	CollectAllTokens bool
}

// Result represents the outcome of parsing a source unit
type Result struct {
	// Program is the parsed AST root, present even when diagnostics
	// were recorded
	Program *lingoast.Program

	// Diagnostics lists the recorded parse errors in source order
	Diagnostics []lingoparser.Diagnostic

	// Duration is the time taken to scan and parse the source
	Duration time.Duration

	// Source is the original input text
	Source string
}

// HasErrors returns true if any diagnostics were recorded
func (r *Result) HasErrors() bool {
	return len(r.Diagnostics) > 0
}

// Messages returns the recorded diagnostics as plain messages
func (r *Result) Messages() []string {
	messages := make([]string, 0, len(r.Diagnostics))
	for _, d := range r.Diagnostics {
		messages = append(messages, d.Message)
	}
	return messages
}

// StatementCount returns the number of statements in the parsed program
func (r *Result) StatementCount() int {
	if r.Program == nil {
		return 0
	}
	return len(r.Program.Statements)
}

// IsEmpty returns true if the parsed program contains no statements
func (r *Result) IsEmpty() bool {
	return r.StatementCount() == 0
}

// String returns a string representation of the result
func (r *Result) String() string {
	if r.HasErrors() {
		return fmt.Sprintf("FAILED: %d parse error(s) (Statements: %d, Duration: %v)",
			len(r.Diagnostics), r.StatementCount(), r.Duration)
	}

	return fmt.Sprintf("SUCCESS: %d statement(s) (Duration: %v)",
		r.StatementCount(), r.Duration)
}

// New creates a new Lingo engine with the specified options
func New(opts ...Options) *Engine {
	// Default options
	options := Options{
		Logger:           lingolog.GetDefault(),
		LogLevel:         lingolog.LevelInfo,
		MaxSourceLength:  DefaultMaxSourceLength,
		CollectAllTokens: true,
	}

	// Apply provided options
	levelSet := false
	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.LogLevel != 0 {
			options.LogLevel = provided.LogLevel
			levelSet = true
		}
		if provided.MaxSourceLength > 0 {
			options.MaxSourceLength = provided.MaxSourceLength
		}
		options.CollectAllTokens = provided.CollectAllTokens
	}

	// Create logger with engine context
	logger := options.Logger
	if levelSet {
		logger = logger.WithLevel(options.LogLevel)
	}
	logger = logger.WithField("component", "lingo-engine")

	engine := &Engine{
		logger:  logger,
		options: options,
	}

	logger.Debug("lingo engine initialized", lingolog.Fields{
		"maxSourceLength":  options.MaxSourceLength,
		"collectAllTokens": options.CollectAllTokens,
	})

	return engine
}

// Tokenize validates the source and drains a fresh lexer over it, returning
// every token up to and including the terminal EndOfFile. Illegal bytes are
// returned as Illegal tokens unless CollectAllTokens is disabled, in which
// case the first one fails the call.
func (e *Engine) Tokenize(source string) ([]lingotoken.Token, error) {
	logger := e.logger.WithRequestID(uuid.New().String())
	timer := logger.StartTimer("lingo_tokenize")
	defer timer.Stop()

	if err := e.validateSource(source, "lingo.Tokenize"); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("source_validated")

	lex := lingolexer.New(source)
	tokens := make([]lingotoken.Token, 0, len(source)/2)

	for {
		tok := lex.NextToken()

		if tok.Kind == lingotoken.Illegal && !e.options.CollectAllTokens {
			err := lingoerror.New(fmt.Sprintf("illegal character %q at line %d, column %d",
				tok.Literal, tok.Line, tok.Column)).
				WithCode(lingoerror.CodeIllegalToken).
				WithOperation("lingo.Tokenize").
				WithDetail("line", tok.Line).
				WithDetail("column", tok.Column)

			timer.StopWithError(err)
			return nil, err
		}

		tokens = append(tokens, tok)

		if tok.Kind == lingotoken.EndOfFile {
			break
		}
	}

	timer.WithField("tokens", len(tokens))

	return tokens, nil
}

// Parse validates, scans and parses the source into an AST. Validation
// failures return a nil Result. Source that scans but parses with
// diagnostics returns both the partial Result and a syntax error, so
// callers choose between tolerant and strict handling.
func (e *Engine) Parse(source string) (*Result, error) {
	logger := e.logger.WithRequestID(uuid.New().String())
	timer := logger.StartTimer("lingo_parse")
	defer timer.Stop()

	logger.Debug("parsing source", lingolog.Fields{
		"sourceLength": len(source),
	})

	if err := e.validateSource(source, "lingo.Parse"); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	timer.Checkpoint("source_validated")

	p := lingoparser.New(lingolexer.New(source))
	program := p.ParseProgram()
	diagnostics := p.Diagnostics()

	timer.Checkpoint("program_parsed")

	result := &Result{
		Program:     program,
		Diagnostics: diagnostics,
		Duration:    time.Since(timer.StartTime()),
		Source:      source,
	}

	if len(diagnostics) > 0 {
		err := e.syntaxError(diagnostics)
		timer.StopWithError(err)
		logger.Warn("parsing recorded diagnostics", lingolog.Fields{
			"diagnostics": len(diagnostics),
			"statements":  result.StatementCount(),
		})
		return result, err
	}

	timer.WithField("statements", result.StatementCount())

	return result, nil
}

// Check reports whether the source is syntactically valid. It is the
// strict counterpart to Parse: any recorded diagnostic fails the call.
func (e *Engine) Check(source string) error {
	_, err := e.Parse(source)
	return err
}

// Format parses the source and renders the canonical form of the resulting
// program. Formatting is strict: source that parses with diagnostics
// returns the parse error and no output.
func (e *Engine) Format(source string) (string, error) {
	result, err := e.Parse(source)
	if err != nil {
		return "", err
	}

	return result.Program.String(), nil
}

// MaxSourceLength returns the configured input size limit in bytes
func (e *Engine) MaxSourceLength() int {
	return e.options.MaxSourceLength
}

// validateSource validates the input source string
func (e *Engine) validateSource(source, operation string) error {
	// Check for empty input
	if lingostringx.IsBlank(source) {
		return lingoerror.New("source input cannot be empty").
			WithCode(lingoerror.CodeEmptySource).
			WithOperation(operation)
	}

	// Check length limits
	if len(source) > e.options.MaxSourceLength {
		return lingoerror.New(fmt.Sprintf("source input exceeds maximum length: %d > %d",
			len(source), e.options.MaxSourceLength)).
			WithCode(lingoerror.CodeSourceTooLarge).
			WithOperation(operation).
			WithDetail("sourceLength", len(source)).
			WithDetail("maxSourceLength", e.options.MaxSourceLength)
	}

	return nil
}

// syntaxError builds the structured error reported when parsing recorded
// diagnostics. The full positioned messages travel in the error details.
func (e *Engine) syntaxError(diagnostics []lingoparser.Diagnostic) error {
	first := diagnostics[0]

	positioned := make([]string, 0, len(diagnostics))
	for _, d := range diagnostics {
		positioned = append(positioned, d.Error())
	}

	return lingoerror.New(fmt.Sprintf("source has %d syntax error(s); first at line %d, column %d: %s",
		len(diagnostics), first.Line, first.Column, first.Message)).
		WithCode(classifyDiagnostics(diagnostics)).
		WithOperation("lingo.Parse").
		WithDetail("diagnostics", positioned).
		WithDetail("diagnosticCount", len(diagnostics))
}

// classifyDiagnostics picks the most specific error code the recorded
// diagnostics justify. Illegal bytes outrank overflowing integer
// literals, which outrank plain grammar mismatches.
func classifyDiagnostics(diagnostics []lingoparser.Diagnostic) lingoerror.Code {
	code := lingoerror.CodeSyntaxError

	for _, d := range diagnostics {
		if d.Token.Kind == lingotoken.Illegal {
			return lingoerror.CodeIllegalToken
		}
		if strings.HasPrefix(d.Message, "could not parse") {
			code = lingoerror.CodeIntegerOverflow
		}
	}

	return code
}

// Default engine for the package-level functions

var (
	defaultEngine *Engine
	defaultOnce   sync.Once
)

// Default returns the shared engine used by the package-level functions,
// creating it with default options on first use
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New()
	})
	return defaultEngine
}

// Tokenize tokenizes source text using the default engine
func Tokenize(source string) ([]lingotoken.Token, error) {
	return Default().Tokenize(source)
}

// Parse parses source text using the default engine
func Parse(source string) (*Result, error) {
	return Default().Parse(source)
}

// Check validates source text using the default engine
func Check(source string) error {
	return Default().Check(source)
}

// Format renders the canonical form of source text using the default engine
func Format(source string) (string, error) {
	return Default().Format(source)
}
