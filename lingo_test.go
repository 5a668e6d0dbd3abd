// File: lingo_test.go
// Title: Lingo Engine Tests
// Description: Unit tests for the main Lingo engine functionality including
//              input validation, tokenizing, parsing, checking and canonical
//              formatting. Tests cover option handling, error codes, and
//              tolerant versus strict use of parse results.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine tests

package lingo

import (
	"io"
	"strings"
	"testing"

	lingoerror "github.com/msto63/lingo/core/error"
	lingolog "github.com/msto63/lingo/core/log"
	lingotoken "github.com/msto63/lingo/token"
)

// quietLogger returns a logger that swallows all engine output so test
// runs stay readable
func quietLogger() *lingolog.Logger {
	return lingolog.New().WithOutput(io.Discard).WithLevel(lingolog.LevelFatal)
}

func TestNew(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		engine := New()

		if engine.options.MaxSourceLength != DefaultMaxSourceLength {
			t.Errorf("Expected default max source length %d, got %d",
				DefaultMaxSourceLength, engine.options.MaxSourceLength)
		}
		if !engine.options.CollectAllTokens {
			t.Errorf("Expected token collection to default to true")
		}
		if engine.logger == nil {
			t.Errorf("Expected engine logger to be set")
		}
	})

	t.Run("provided options", func(t *testing.T) {
		engine := New(Options{
			Logger:           quietLogger(),
			MaxSourceLength:  128,
			CollectAllTokens: true,
		})

		if engine.options.MaxSourceLength != 128 {
			t.Errorf("Expected max source length 128, got %d", engine.options.MaxSourceLength)
		}
		if !engine.options.CollectAllTokens {
			t.Errorf("Expected token collection to be enabled")
		}
	})

	t.Run("zero length keeps default", func(t *testing.T) {
		engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

		if engine.options.MaxSourceLength != DefaultMaxSourceLength {
			t.Errorf("Expected default max source length %d, got %d",
				DefaultMaxSourceLength, engine.options.MaxSourceLength)
		}
	})

	t.Run("provided options replace the token policy", func(t *testing.T) {
		// Passing any options struct takes its token policy verbatim,
		// like the other boolean engine switches
		engine := New(Options{Logger: quietLogger(), MaxSourceLength: 10})

		if engine.options.CollectAllTokens {
			t.Errorf("Expected token collection to follow the provided options")
		}
	})

	t.Run("max source length accessor", func(t *testing.T) {
		engine := New(Options{Logger: quietLogger(), MaxSourceLength: 42, CollectAllTokens: true})

		if engine.MaxSourceLength() != 42 {
			t.Errorf("Expected accessor to report 42, got %d", engine.MaxSourceLength())
		}
	})
}

func TestEngine_Tokenize(t *testing.T) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

	tests := []struct {
		name  string
		input string
		kinds []lingotoken.Kind
	}{
		{
			name:  "let statement",
			input: "let five = 5;",
			kinds: []lingotoken.Kind{
				lingotoken.Let, lingotoken.Identifier, lingotoken.Assign,
				lingotoken.Integer, lingotoken.Semicolon, lingotoken.EndOfFile,
			},
		},
		{
			name:  "comparison operators",
			input: "1 == 2 != 3",
			kinds: []lingotoken.Kind{
				lingotoken.Integer, lingotoken.Equal, lingotoken.Integer,
				lingotoken.NotEqual, lingotoken.Integer, lingotoken.EndOfFile,
			},
		},
		{
			name:  "illegal bytes are collected",
			input: "let @ = 5;",
			kinds: []lingotoken.Kind{
				lingotoken.Let, lingotoken.Illegal, lingotoken.Assign,
				lingotoken.Integer, lingotoken.Semicolon, lingotoken.EndOfFile,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := engine.Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}

			if len(tokens) != len(tt.kinds) {
				t.Fatalf("Expected %d tokens, got %d", len(tt.kinds), len(tokens))
			}

			for i, kind := range tt.kinds {
				if tokens[i].Kind != kind {
					t.Errorf("Token %d: expected kind %s, got %s",
						i, kind.String(), tokens[i].Kind.String())
				}
			}

			if tokens[len(tokens)-1].Kind != lingotoken.EndOfFile {
				t.Errorf("Expected terminal EndOfFile token")
			}
		})
	}

	t.Run("strict mode rejects illegal bytes", func(t *testing.T) {
		strict := New(Options{Logger: quietLogger(), CollectAllTokens: false})

		tokens, err := strict.Tokenize("let @ = 5;")
		if err == nil {
			t.Fatalf("Expected error for illegal byte")
		}
		if tokens != nil {
			t.Errorf("Expected no tokens on failure, got %d", len(tokens))
		}
		if !lingoerror.HasCode(err, lingoerror.CodeIllegalToken) {
			t.Errorf("Expected code %s, got %s",
				lingoerror.CodeIllegalToken, lingoerror.GetCode(err))
		}
		if !strings.Contains(err.Error(), "line 1") {
			t.Errorf("Expected position in error message, got: %v", err)
		}
	})

	t.Run("empty source", func(t *testing.T) {
		_, err := engine.Tokenize("   \t\n")
		if !lingoerror.HasCode(err, lingoerror.CodeEmptySource) {
			t.Errorf("Expected code %s, got %v", lingoerror.CodeEmptySource, err)
		}
	})

	t.Run("oversized source", func(t *testing.T) {
		small := New(Options{Logger: quietLogger(), MaxSourceLength: 8, CollectAllTokens: true})

		_, err := small.Tokenize("let five = 5;")
		if !lingoerror.HasCode(err, lingoerror.CodeSourceTooLarge) {
			t.Errorf("Expected code %s, got %v", lingoerror.CodeSourceTooLarge, err)
		}
	})
}

func TestEngine_Parse(t *testing.T) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

	t.Run("valid program", func(t *testing.T) {
		source := "let five = 5; let ten = 10; return five + ten;"

		result, err := engine.Parse(source)
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if result.StatementCount() != 3 {
			t.Errorf("Expected 3 statements, got %d", result.StatementCount())
		}
		if result.HasErrors() {
			t.Errorf("Expected no diagnostics, got %v", result.Messages())
		}
		if result.Source != source {
			t.Errorf("Expected source to be preserved")
		}
		if result.Duration <= 0 {
			t.Errorf("Expected a positive parse duration, got %v", result.Duration)
		}
	})

	t.Run("tolerant use keeps the partial program", func(t *testing.T) {
		result, err := engine.Parse("let x = 1; let = 2; let y = 3;")
		if err == nil {
			t.Fatalf("Expected syntax error")
		}
		if result == nil {
			t.Fatalf("Expected partial result alongside the error")
		}

		if result.StatementCount() != 2 {
			t.Errorf("Expected 2 surviving statements, got %d", result.StatementCount())
		}
		if len(result.Diagnostics) != 1 {
			t.Errorf("Expected 1 diagnostic, got %d", len(result.Diagnostics))
		}
		if !lingoerror.HasCode(err, lingoerror.CodeSyntaxError) {
			t.Errorf("Expected code %s, got %s",
				lingoerror.CodeSyntaxError, lingoerror.GetCode(err))
		}
	})

	t.Run("syntax error carries the diagnostics", func(t *testing.T) {
		_, err := engine.Parse("let = 5;")
		if err == nil {
			t.Fatalf("Expected syntax error")
		}

		lingoErr, ok := err.(*lingoerror.Error)
		if !ok {
			t.Fatalf("Expected *lingoerror.Error, got %T", err)
		}

		count, ok := lingoErr.Details()["diagnosticCount"].(int)
		if !ok || count != 1 {
			t.Errorf("Expected diagnosticCount detail 1, got %v",
				lingoErr.Details()["diagnosticCount"])
		}
		if !strings.Contains(err.Error(), "line 1") {
			t.Errorf("Expected first diagnostic position in message, got: %v", err)
		}
	})

	t.Run("illegal byte classification", func(t *testing.T) {
		result, err := engine.Parse("let x = 5; @")
		if !lingoerror.HasCode(err, lingoerror.CodeIllegalToken) {
			t.Errorf("Expected code %s, got %v", lingoerror.CodeIllegalToken, err)
		}
		if result.StatementCount() != 1 {
			t.Errorf("Expected the valid statement to survive, got %d", result.StatementCount())
		}
	})

	t.Run("integer overflow classification", func(t *testing.T) {
		_, err := engine.Parse("let big = 99999999999999999999;")
		if !lingoerror.HasCode(err, lingoerror.CodeIntegerOverflow) {
			t.Errorf("Expected code %s, got %v", lingoerror.CodeIntegerOverflow, err)
		}
	})

	t.Run("blank source", func(t *testing.T) {
		result, err := engine.Parse("")
		if !lingoerror.HasCode(err, lingoerror.CodeEmptySource) {
			t.Errorf("Expected code %s, got %v", lingoerror.CodeEmptySource, err)
		}
		if result != nil {
			t.Errorf("Expected no result for rejected input")
		}
	})
}

func TestEngine_Check(t *testing.T) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

	tests := []struct {
		name      string
		source    string
		expectErr bool
	}{
		{
			name:      "valid let statement",
			source:    "let five = 5;",
			expectErr: false,
		},
		{
			name:      "valid expression",
			source:    "1 + 2 * 3",
			expectErr: false,
		},
		{
			name:      "missing binding name",
			source:    "let = 5;",
			expectErr: true,
		},
		{
			name:      "operator without operand",
			source:    "1 +",
			expectErr: true,
		},
		{
			name:      "blank input",
			source:    "  ",
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := engine.Check(tt.source)

			if tt.expectErr && err == nil {
				t.Errorf("Expected error but got none")
			}
			if !tt.expectErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestEngine_Format(t *testing.T) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

	tests := []struct {
		name   string
		source string
		want   string
	}{
		{
			name:   "let statement normalization",
			source: "let five=5",
			want:   "let five = 5;",
		},
		{
			name:   "precedence becomes explicit",
			source: "1 + 2 * 3",
			want:   "(1 + (2 * 3))",
		},
		{
			name:   "prefix binds tighter than infix",
			source: "-a * b",
			want:   "((-a) * b)",
		},
		{
			name:   "bang on boolean",
			source: "!true;",
			want:   "(!true)",
		},
		{
			name:   "multiple statements",
			source: "let x = 1 let y = 2",
			want:   "let x = 1;let y = 2;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.Format(tt.source)
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Expected %q, got %q", tt.want, got)
			}

			// Canonical output must survive a second pass unchanged
			again, err := engine.Format(got)
			if err != nil {
				t.Fatalf("Formatting canonical output failed: %v", err)
			}
			if again != got {
				t.Errorf("Formatting is not idempotent: %q became %q", got, again)
			}
		})
	}

	t.Run("broken source is rejected", func(t *testing.T) {
		out, err := engine.Format("let = 5")
		if err == nil {
			t.Fatalf("Expected error for broken source")
		}
		if out != "" {
			t.Errorf("Expected empty output on failure, got %q", out)
		}
	})
}

func TestResult_Helpers(t *testing.T) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})

	t.Run("successful result", func(t *testing.T) {
		result, err := engine.Parse("let x = 1; return x;")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}

		if !strings.Contains(result.String(), "SUCCESS") {
			t.Errorf("Expected SUCCESS in %q", result.String())
		}
		if result.IsEmpty() {
			t.Errorf("Expected a non-empty result")
		}
		if len(result.Messages()) != 0 {
			t.Errorf("Expected no messages, got %v", result.Messages())
		}
	})

	t.Run("failed result", func(t *testing.T) {
		result, _ := engine.Parse("let = 1;")

		if !strings.Contains(result.String(), "FAILED") {
			t.Errorf("Expected FAILED in %q", result.String())
		}
		if len(result.Messages()) != 1 {
			t.Errorf("Expected 1 message, got %d", len(result.Messages()))
		}
	})

	t.Run("zero value", func(t *testing.T) {
		var result Result

		if result.StatementCount() != 0 {
			t.Errorf("Expected 0 statements, got %d", result.StatementCount())
		}
		if !result.IsEmpty() {
			t.Errorf("Expected zero value to be empty")
		}
	})
}

func TestPackageLevelFunctions(t *testing.T) {
	t.Run("default engine is shared", func(t *testing.T) {
		if Default() != Default() {
			t.Errorf("Expected the same default engine instance")
		}
	})

	t.Run("tokenize", func(t *testing.T) {
		tokens, err := Tokenize("let x = 1;")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if len(tokens) != 6 {
			t.Errorf("Expected 6 tokens, got %d", len(tokens))
		}
	})

	t.Run("parse", func(t *testing.T) {
		result, err := Parse("let x = 1;")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if result.StatementCount() != 1 {
			t.Errorf("Expected 1 statement, got %d", result.StatementCount())
		}
	})

	t.Run("check", func(t *testing.T) {
		if err := Check("let x = 1;"); err != nil {
			t.Errorf("Unexpected error: %v", err)
		}
	})

	t.Run("format", func(t *testing.T) {
		out, err := Format("let x=1")
		if err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		if out != "let x = 1;" {
			t.Errorf("Expected %q, got %q", "let x = 1;", out)
		}
	})
}

func BenchmarkEngine_Tokenize(b *testing.B) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})
	source := "let five = 5; let ten = 10; let result = five + ten * 2;"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Tokenize(source); err != nil {
			b.Fatalf("Tokenize failed: %v", err)
		}
	}
}

func BenchmarkEngine_Parse(b *testing.B) {
	engine := New(Options{Logger: quietLogger(), CollectAllTokens: true})
	source := "let five = 5; let ten = 10; return five + ten * 2;"

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := engine.Parse(source); err != nil {
			b.Fatalf("Parse failed: %v", err)
		}
	}
}
