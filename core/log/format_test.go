// File: format_test.go
// Title: Log Formatter Tests
// Description: Tests for the JSON, text, and console formatters including
//              field rendering, quoting, and format parsing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with formatter tests

package log

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func testEntry() *Entry {
	return &Entry{
		Timestamp: time.Date(2026, 3, 2, 10, 30, 0, 0, time.UTC),
		Level:     LevelInfo,
		Message:   "parse completed",
		Logger:    "engine",
		Fields:    Fields{"statements": 2},
	}
}

func TestFormatString(t *testing.T) {
	tests := []struct {
		format Format
		want   string
	}{
		{FormatJSON, "json"},
		{FormatText, "text"},
		{FormatConsole, "console"},
		{Format(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := tt.format.String(); got != tt.want {
				t.Errorf("Format.String() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"text", FormatText, false},
		{"plain", FormatText, false},
		{"console", FormatConsole, false},
		{"terminal", FormatConsole, false},
		{"  text  ", FormatText, false},
		{"yaml", FormatText, true},
		{"", FormatText, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseFormat() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if got != tt.want {
				t.Errorf("ParseFormat() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatJSON).(*JSONFormatter); !ok {
		t.Error("GetFormatter(FormatJSON) should return a JSONFormatter")
	}
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) should return a TextFormatter")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) should return a ConsoleFormatter")
	}
}

func TestJSONFormatter(t *testing.T) {
	entry := testEntry()
	entry.RequestID = "req-1"
	entry.SessionID = "sess-2"
	entry.Error = "something broke"
	duration := 1500 * time.Microsecond
	entry.Duration = &duration

	formatter := NewJSONFormatter()
	output, err := formatter.Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(output, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	if result["level"] != "info" {
		t.Errorf("level = %v, want info", result["level"])
	}
	if result["message"] != "parse completed" {
		t.Errorf("message = %v, want 'parse completed'", result["message"])
	}
	if result["logger"] != "engine" {
		t.Errorf("logger = %v, want engine", result["logger"])
	}
	if result["request_id"] != "req-1" {
		t.Errorf("request_id = %v, want req-1", result["request_id"])
	}
	if result["session_id"] != "sess-2" {
		t.Errorf("session_id = %v, want sess-2", result["session_id"])
	}
	if result["error"] != "something broke" {
		t.Errorf("error = %v, want 'something broke'", result["error"])
	}
	if result["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", result["duration_ms"])
	}

	// Fields are flattened into the top-level object
	if result["statements"] != float64(2) {
		t.Errorf("statements = %v, want 2", result["statements"])
	}
}

func TestJSONFormatterOmitsEmpty(t *testing.T) {
	entry := &Entry{
		Timestamp: time.Now(),
		Level:     LevelDebug,
		Message:   "bare entry",
	}

	output, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(output, &result); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}

	for _, key := range []string{"logger", "request_id", "session_id", "error", "duration_ms"} {
		if _, exists := result[key]; exists {
			t.Errorf("empty %s should be omitted", key)
		}
	}
}

func TestJSONFormatterPrettyPrint(t *testing.T) {
	formatter := &JSONFormatter{PrettyPrint: true}

	output, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	if !strings.Contains(string(output), "\n  ") {
		t.Error("PrettyPrint output should be indented")
	}
}

func TestTextFormatter(t *testing.T) {
	output, err := NewTextFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	want := "2026-03-02 10:30:00.000 [INFO] [engine] parse completed statements=2\n"
	if string(output) != want {
		t.Errorf("Format() = %q, want %q", string(output), want)
	}
}

func TestTextFormatterQuotesValues(t *testing.T) {
	entry := testEntry()
	entry.Fields = Fields{"source": "let x"}

	output, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	if !strings.Contains(string(output), `source="let x"`) {
		t.Errorf("values with spaces should be quoted, got %q", string(output))
	}
}

func TestTextFormatterErrorAndDuration(t *testing.T) {
	entry := testEntry()
	entry.Fields = nil
	entry.Error = "boom"
	duration := 15 * time.Millisecond
	entry.Duration = &duration

	output, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	text := string(output)
	if !strings.Contains(text, "error=boom") {
		t.Errorf("output missing error, got %q", text)
	}
	if !strings.Contains(text, "duration=15ms") {
		t.Errorf("output missing duration, got %q", text)
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := testEntry()
	entry.Fields = Fields{"zebra": 1, "alpha": 2, "mid": 3}

	output, err := NewTextFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	text := string(output)
	alphaPos := strings.Index(text, "alpha=")
	midPos := strings.Index(text, "mid=")
	zebraPos := strings.Index(text, "zebra=")

	if alphaPos < 0 || midPos < 0 || zebraPos < 0 {
		t.Fatalf("output missing fields, got %q", text)
	}
	if !(alphaPos < midPos && midPos < zebraPos) {
		t.Errorf("fields should be sorted by key, got %q", text)
	}
}

func TestConsoleFormatterNoColors(t *testing.T) {
	formatter := &ConsoleFormatter{DisableColors: true}

	output, err := formatter.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	want := "10:30:00.000 INF [engine] parse completed statements=2\n"
	if string(output) != want {
		t.Errorf("Format() = %q, want %q", string(output), want)
	}
}

func TestConsoleFormatterColors(t *testing.T) {
	output, err := NewConsoleFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error: %v", err)
	}

	text := string(output)
	if !strings.Contains(text, "\033[32m") {
		t.Errorf("info output should use the info color, got %q", text)
	}
	if !strings.Contains(text, "\033[0m") {
		t.Errorf("colored output should reset, got %q", text)
	}
}

// Benchmark tests
func BenchmarkJSONFormatter(b *testing.B) {
	formatter := NewJSONFormatter()
	entry := testEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}

func BenchmarkTextFormatter(b *testing.B) {
	formatter := NewTextFormatter()
	entry := testEntry()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = formatter.Format(entry)
	}
}
