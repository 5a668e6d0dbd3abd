// File: format.go
// Title: Log Output Formatters
// Description: Implements formatters for rendering log entries as JSON,
//              plain text, or colored console output. Formatters are
//              stateless and safe for concurrent use.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with JSON, text, and console formats

package log

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Format represents the output format for log entries
type Format int

const (
	// FormatJSON outputs one JSON object per line, for machine consumption
	FormatJSON Format = iota

	// FormatText outputs human-readable plain text lines
	FormatText

	// FormatConsole outputs colored text for interactive terminals
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text", "plain":
		return FormatText, nil
	case "console", "terminal":
		return FormatConsole, nil
	default:
		return FormatText, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// Formatter converts log entries into output bytes
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// GetFormatter returns the formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatJSON:
		return NewJSONFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewTextFormatter()
	}
}

// JSONFormatter formats entries as single-line JSON objects
type JSONFormatter struct {
	// PrettyPrint enables indented output, mainly for debugging
	PrettyPrint bool
}

// NewJSONFormatter creates a JSON formatter with default settings
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{
		PrettyPrint: false,
	}
}

// Format implements the Formatter interface
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := map[string]interface{}{
		"timestamp": entry.Timestamp.Format(time.RFC3339Nano),
		"level":     entry.Level.String(),
		"message":   entry.Message,
	}

	if entry.Logger != "" {
		data["logger"] = entry.Logger
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}
	if entry.SessionID != "" {
		data["session_id"] = entry.SessionID
	}
	if entry.Error != "" {
		data["error"] = entry.Error
	}
	if entry.Duration != nil {
		data["duration_ms"] = float64(entry.Duration.Nanoseconds()) / 1e6
	}

	// Flatten fields into the top-level object
	for k, v := range entry.Fields {
		data[k] = v
	}

	if f.PrettyPrint {
		return json.MarshalIndent(data, "", "  ")
	}
	return json.Marshal(data)
}

// TextFormatter formats entries as human-readable text lines
type TextFormatter struct {
	// TimestampFormat overrides the default timestamp layout
	TimestampFormat string
}

// NewTextFormatter creates a text formatter with default settings
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{
		TimestampFormat: "2006-01-02 15:04:05.000",
	}
}

// Format implements the Formatter interface
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "2006-01-02 15:04:05.000"
	}

	var sb strings.Builder

	sb.WriteString(entry.Timestamp.Format(layout))
	sb.WriteString(" [")
	sb.WriteString(strings.ToUpper(entry.Level.String()))
	sb.WriteString("]")

	if entry.Logger != "" {
		sb.WriteString(" [")
		sb.WriteString(entry.Logger)
		sb.WriteString("]")
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	if entry.RequestID != "" {
		sb.WriteString(" request_id=")
		sb.WriteString(entry.RequestID)
	}
	if entry.SessionID != "" {
		sb.WriteString(" session_id=")
		sb.WriteString(entry.SessionID)
	}

	writeFields(&sb, entry.Fields, "")

	if entry.Error != "" {
		sb.WriteString(" error=")
		sb.WriteString(quoteIfNeeded(entry.Error))
	}
	if entry.Duration != nil {
		sb.WriteString(" duration=")
		sb.WriteString(entry.Duration.String())
	}

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// ConsoleFormatter formats entries as colored text for terminals
type ConsoleFormatter struct {
	// TimestampFormat overrides the default timestamp layout
	TimestampFormat string

	// DisableColors turns off ANSI color codes
	DisableColors bool
}

// NewConsoleFormatter creates a console formatter with default settings
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{
		TimestampFormat: "15:04:05.000",
		DisableColors:   false,
	}
}

// Format implements the Formatter interface
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	layout := f.TimestampFormat
	if layout == "" {
		layout = "15:04:05.000"
	}

	var sb strings.Builder

	sb.WriteString(entry.Timestamp.Format(layout))
	sb.WriteString(" ")

	if f.DisableColors {
		sb.WriteString(entry.Level.ShortString())
	} else {
		sb.WriteString(entry.Level.Color())
		sb.WriteString(entry.Level.ShortString())
		sb.WriteString("\033[0m")
	}

	if entry.Logger != "" {
		sb.WriteString(" [")
		sb.WriteString(entry.Logger)
		sb.WriteString("]")
	}

	sb.WriteString(" ")
	sb.WriteString(entry.Message)

	dim, reset := "", ""
	if !f.DisableColors {
		dim, reset = "\033[90m", "\033[0m"
	}

	if entry.RequestID != "" {
		sb.WriteString(" ")
		sb.WriteString(dim)
		sb.WriteString("request_id=")
		sb.WriteString(entry.RequestID)
		sb.WriteString(reset)
	}
	if entry.SessionID != "" {
		sb.WriteString(" ")
		sb.WriteString(dim)
		sb.WriteString("session_id=")
		sb.WriteString(entry.SessionID)
		sb.WriteString(reset)
	}

	if len(entry.Fields) > 0 {
		sb.WriteString(dim)
		writeFields(&sb, entry.Fields, "")
		sb.WriteString(reset)
	}

	if entry.Error != "" {
		sb.WriteString(" ")
		if !f.DisableColors {
			sb.WriteString("\033[31m")
		}
		sb.WriteString("error=")
		sb.WriteString(quoteIfNeeded(entry.Error))
		if !f.DisableColors {
			sb.WriteString(reset)
		}
	}
	if entry.Duration != nil {
		sb.WriteString(" ")
		sb.WriteString(dim)
		sb.WriteString("duration=")
		sb.WriteString(entry.Duration.String())
		sb.WriteString(reset)
	}

	sb.WriteString("\n")
	return []byte(sb.String()), nil
}

// writeFields appends fields as key=value pairs in sorted key order
func writeFields(sb *strings.Builder, fields Fields, prefix string) {
	if len(fields) == 0 {
		return
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		sb.WriteString(" ")
		sb.WriteString(prefix)
		sb.WriteString(k)
		sb.WriteString("=")
		sb.WriteString(quoteIfNeeded(fmt.Sprintf("%v", fields[k])))
	}
}

// quoteIfNeeded wraps values containing spaces in double quotes
func quoteIfNeeded(value string) string {
	if strings.ContainsAny(value, " \t\n") {
		return fmt.Sprintf("%q", value)
	}
	return value
}
