// File: repl_test.go
// Title: REPL Session Tests
// Description: Tests for the interactive session logic, driven through
//              the terminal-free ProcessLine seam. Covers both output
//              modes, meta-command dispatch, session history, and mode
//              parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial test implementation

package repl

import (
	"io"
	"strings"
	"testing"

	"github.com/msto63/lingo"
	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
)

func quietLogger() *lingolog.Logger {
	return lingolog.New().WithOutput(io.Discard).WithLevel(lingolog.LevelFatal)
}

func newTestREPL(t *testing.T, opts Options) *REPL {
	t.Helper()

	if opts.Logger == nil {
		opts.Logger = quietLogger()
	}
	if opts.Output == nil {
		opts.Output = io.Discard
	}
	opts.DisableHistory = true

	session, err := New(opts)
	if err != nil {
		t.Fatalf("New() returned unexpected error: %v", err)
	}

	return session
}

func TestNew(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		if session.options.Prompt != DefaultPrompt {
			t.Errorf("prompt = %q, want %q", session.options.Prompt, DefaultPrompt)
		}
		if session.Mode() != ModeTokens {
			t.Errorf("mode = %v, want %v", session.Mode(), ModeTokens)
		}
		if session.SessionID() == "" {
			t.Error("expected a generated session ID")
		}
		if len(session.SessionID()) != 36 {
			t.Errorf("session ID length = %d, want 36", len(session.SessionID()))
		}
	})

	t.Run("accepts custom configuration", func(t *testing.T) {
		session := newTestREPL(t, Options{
			Prompt: "lingo> ",
			Mode:   ModeAST,
		})

		if session.options.Prompt != "lingo> " {
			t.Errorf("prompt = %q, want %q", session.options.Prompt, "lingo> ")
		}
		if session.Mode() != ModeAST {
			t.Errorf("mode = %v, want %v", session.Mode(), ModeAST)
		}
	})

	t.Run("generates distinct session ids", func(t *testing.T) {
		first := newTestREPL(t, Options{})
		second := newTestREPL(t, Options{})

		if first.SessionID() == second.SessionID() {
			t.Errorf("expected distinct session IDs, both are %q", first.SessionID())
		}
	})

	t.Run("defaults to a collecting engine", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, quit := session.ProcessLine("@")
		if quit {
			t.Fatal("expected session to continue")
		}
		if output != `ILLEGAL   "@"` {
			t.Errorf("output = %q, want %q", output, `ILLEGAL   "@"`)
		}
	})

	t.Run("uses the provided engine", func(t *testing.T) {
		strict := lingo.New(lingo.Options{
			Logger:           quietLogger(),
			CollectAllTokens: false,
		})
		session := newTestREPL(t, Options{Engine: strict})

		output, quit := session.ProcessLine("@")
		if quit {
			t.Fatal("expected session to continue")
		}
		if !strings.HasPrefix(output, "error:") {
			t.Errorf("output = %q, want error prefix", output)
		}
		if !strings.Contains(output, "illegal character") {
			t.Errorf("output = %q, want illegal character message", output)
		}
	})
}

func TestREPL_ProcessLine_TokenMode(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "let statement",
			input: "let x = 5;",
			want: strings.Join([]string{
				`LET       "let"`,
				`IDENT     "x"`,
				`ASSIGN    "="`,
				`INT       "5"`,
				`SEMICOLON ";"`,
			}, "\n"),
		},
		{
			name:  "comparison with two char operator",
			input: "ten != 9;",
			want: strings.Join([]string{
				`IDENT     "ten"`,
				`NOT_EQ    "!="`,
				`INT       "9"`,
				`SEMICOLON ";"`,
			}, "\n"),
		},
		{
			name:  "equality operator alone",
			input: "==",
			want:  `EQ        "=="`,
		},
		{
			name:  "illegal byte shown as token",
			input: "@",
			want:  `ILLEGAL   "@"`,
		},
		{
			name:  "blank line produces no output",
			input: "   ",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := newTestREPL(t, Options{})

			output, quit := session.ProcessLine(tt.input)
			if quit {
				t.Fatal("expected session to continue")
			}
			if output != tt.want {
				t.Errorf("output = %q, want %q", output, tt.want)
			}
		})
	}
}

func TestREPL_ProcessLine_ASTMode(t *testing.T) {
	t.Run("let statement prints canonical form and tree", func(t *testing.T) {
		session := newTestREPL(t, Options{Mode: ModeAST})

		output, quit := session.ProcessLine("let x = 5;")
		if quit {
			t.Fatal("expected session to continue")
		}

		want := strings.Join([]string{
			"let x = 5;",
			"Program:",
			"  LetStatement:",
			"    Name: x",
			"    Value:",
			"      IntegerLiteral: 5",
		}, "\n")
		if output != want {
			t.Errorf("output = %q, want %q", output, want)
		}
	})

	t.Run("expression prints grouped form", func(t *testing.T) {
		session := newTestREPL(t, Options{Mode: ModeAST})

		output, quit := session.ProcessLine("1 + 2")
		if quit {
			t.Fatal("expected session to continue")
		}

		want := strings.Join([]string{
			"(1 + 2)",
			"Program:",
			"  ExpressionStatement:",
			"    InfixExpression: +",
			"      IntegerLiteral: 1",
			"      IntegerLiteral: 2",
		}, "\n")
		if output != want {
			t.Errorf("output = %q, want %q", output, want)
		}
	})

	t.Run("broken source lists diagnostics", func(t *testing.T) {
		session := newTestREPL(t, Options{Mode: ModeAST})

		output, quit := session.ProcessLine("let = 5;")
		if quit {
			t.Fatal("expected session to continue")
		}
		if !strings.HasPrefix(output, "parse errors:") {
			t.Errorf("output = %q, want parse errors header", output)
		}
		if !strings.Contains(output, "expected next token to be IDENT, got ASSIGN instead") {
			t.Errorf("output = %q, want peek diagnostic", output)
		}
		if !strings.Contains(output, "parse error at line 1") {
			t.Errorf("output = %q, want positioned diagnostic", output)
		}
	})
}

func TestREPL_ProcessLine_Commands(t *testing.T) {
	t.Run("help lists the builtin commands", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, quit := session.ProcessLine(":help")
		if quit {
			t.Fatal("expected session to continue")
		}
		if !strings.HasPrefix(output, "Available commands:") {
			t.Errorf("output = %q, want command listing", output)
		}
		for _, want := range []string{
			":quit",
			"Exit the session (aliases :q, :exit)",
			":mode [tokens|ast]",
			":history",
			":clear",
		} {
			if !strings.Contains(output, want) {
				t.Errorf("help output missing %q:\n%s", want, output)
			}
		}
	})

	t.Run("quit and aliases end the session", func(t *testing.T) {
		for _, input := range []string{":quit", ":q", ":exit", ":QUIT"} {
			session := newTestREPL(t, Options{})

			output, quit := session.ProcessLine(input)
			if !quit {
				t.Errorf("ProcessLine(%q) did not request quit", input)
			}
			if output != "" {
				t.Errorf("ProcessLine(%q) output = %q, want empty", input, output)
			}
		}
	})

	t.Run("mode without argument reports the current mode", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, _ := session.ProcessLine(":mode")
		want := "current mode: tokens (usage: :mode tokens|ast)"
		if output != want {
			t.Errorf("output = %q, want %q", output, want)
		}
	})

	t.Run("mode switches between tokens and ast", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, _ := session.ProcessLine(":mode ast")
		if output != "mode set to ast" {
			t.Errorf("output = %q, want %q", output, "mode set to ast")
		}
		if session.Mode() != ModeAST {
			t.Errorf("mode = %v, want %v", session.Mode(), ModeAST)
		}

		astOutput, _ := session.ProcessLine("1 + 2")
		if !strings.HasPrefix(astOutput, "(1 + 2)") {
			t.Errorf("ast mode output = %q, want canonical prefix", astOutput)
		}

		output, _ = session.ProcessLine(":mode tokens")
		if output != "mode set to tokens" {
			t.Errorf("output = %q, want %q", output, "mode set to tokens")
		}
		if session.Mode() != ModeTokens {
			t.Errorf("mode = %v, want %v", session.Mode(), ModeTokens)
		}
	})

	t.Run("mode rejects unknown names", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, quit := session.ProcessLine(":mode bogus")
		if quit {
			t.Fatal("expected session to continue")
		}
		want := `unknown mode "bogus" (expected tokens or ast)`
		if output != want {
			t.Errorf("output = %q, want %q", output, want)
		}
		if session.Mode() != ModeTokens {
			t.Errorf("mode changed to %v on invalid input", session.Mode())
		}
	})

	t.Run("unknown command suggests help", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, quit := session.ProcessLine(":frobnicate")
		if quit {
			t.Fatal("expected session to continue")
		}
		want := "unknown command :frobnicate (try :help)"
		if output != want {
			t.Errorf("output = %q, want %q", output, want)
		}
	})

	t.Run("clear emits the terminal reset sequence", func(t *testing.T) {
		session := newTestREPL(t, Options{})

		output, quit := session.ProcessLine(":clear")
		if quit {
			t.Fatal("expected session to continue")
		}
		if output != "\x1b[2J\x1b[H" {
			t.Errorf("output = %q, want clear sequence", output)
		}
	})
}

func TestREPL_History(t *testing.T) {
	session := newTestREPL(t, Options{})

	output, _ := session.ProcessLine(":history")
	if output != "history is empty" {
		t.Errorf("output = %q, want empty history message", output)
	}

	session.ProcessLine("let x = 5;")
	session.ProcessLine(":mode ast")
	session.ProcessLine("1 + 2")

	output, _ = session.ProcessLine(":history")
	want := strings.Join([]string{
		"  1  let x = 5;",
		"  2  1 + 2",
	}, "\n")
	if output != want {
		t.Errorf("output = %q, want %q", output, want)
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Mode
		expectErr bool
	}{
		{name: "tokens", input: "tokens", want: ModeTokens},
		{name: "tokens uppercase", input: "TOKENS", want: ModeTokens},
		{name: "token singular", input: "token", want: ModeTokens},
		{name: "ast with whitespace", input: " ast ", want: ModeAST},
		{name: "tree alias", input: "tree", want: ModeAST},
		{name: "unknown name", input: "bogus", expectErr: true},
		{name: "empty name", input: "", expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mode, err := ParseMode(tt.input)

			if tt.expectErr {
				if err == nil {
					t.Fatalf("ParseMode(%q) expected error, got none", tt.input)
				}
				if !lingoerror.HasCode(err, lingoerror.CodeInvalidInput) {
					t.Errorf("error code = %v, want %v",
						lingoerror.GetCode(err), lingoerror.CodeInvalidInput)
				}
				return
			}

			if err != nil {
				t.Fatalf("ParseMode(%q) returned unexpected error: %v", tt.input, err)
			}
			if mode != tt.want {
				t.Errorf("ParseMode(%q) = %v, want %v", tt.input, mode, tt.want)
			}
		})
	}
}

func TestMode_String(t *testing.T) {
	tests := []struct {
		mode Mode
		want string
	}{
		{mode: ModeTokens, want: "tokens"},
		{mode: ModeAST, want: "ast"},
		{mode: Mode(99), want: "unknown"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("Mode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}

func BenchmarkREPL_ProcessLine(b *testing.B) {
	session, err := New(Options{
		Logger:         quietLogger(),
		Output:         io.Discard,
		DisableHistory: true,
	})
	if err != nil {
		b.Fatalf("New() returned unexpected error: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session.ProcessLine("let result = five + ten * 2;")
	}
}
