// File: entry.go
// Title: Log Entry Structure
// Description: Defines the structure of log entries with structured fields,
//              context identifiers, and timing information. Entries are
//              immutable value objects passed to formatters.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured fields

package log

import (
	"time"
)

// Fields represents structured log fields as key-value pairs
type Fields map[string]interface{}

// Entry represents a single log entry with all its metadata
type Entry struct {
	// Timestamp when the log entry was created
	Timestamp time.Time `json:"timestamp"`

	// Level of the log entry
	Level Level `json:"level"`

	// Message is the main log message
	Message string `json:"message"`

	// Logger name that created this entry
	Logger string `json:"logger,omitempty"`

	// RequestID for tracing individual engine operations
	RequestID string `json:"request_id,omitempty"`

	// SessionID for grouping entries of one interactive session
	SessionID string `json:"session_id,omitempty"`

	// Fields contains additional structured data
	Fields Fields `json:"fields,omitempty"`

	// Error contains error information if applicable
	Error string `json:"error,omitempty"`

	// Duration for timing information (e.g. operation duration)
	Duration *time.Duration `json:"duration,omitempty"`
}

// NewEntry creates a new log entry with the current timestamp
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    make(Fields),
	}
}

// WithField adds a single field to the entry
func (e *Entry) WithField(key string, value interface{}) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	e.Fields[key] = value
	return e
}

// WithFields adds multiple fields to the entry
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = make(Fields)
	}
	for k, v := range fields {
		e.Fields[k] = v
	}
	return e
}

// WithError adds error information to the entry
func (e *Entry) WithError(err error) *Entry {
	if err != nil {
		e.Error = err.Error()
	}
	return e
}

// WithDuration adds duration information to the entry
func (e *Entry) WithDuration(duration time.Duration) *Entry {
	e.Duration = &duration
	return e
}

// WithRequestID adds a request ID to the entry
func (e *Entry) WithRequestID(requestID string) *Entry {
	e.RequestID = requestID
	return e
}

// WithSessionID adds a session ID to the entry
func (e *Entry) WithSessionID(sessionID string) *Entry {
	e.SessionID = sessionID
	return e
}

// WithLogger sets the logger name for the entry
func (e *Entry) WithLogger(name string) *Entry {
	e.Logger = name
	return e
}

// Clone creates a deep copy of the entry
func (e *Entry) Clone() *Entry {
	clone := &Entry{
		Timestamp: e.Timestamp,
		Level:     e.Level,
		Message:   e.Message,
		Logger:    e.Logger,
		RequestID: e.RequestID,
		SessionID: e.SessionID,
		Error:     e.Error,
	}

	if e.Duration != nil {
		duration := *e.Duration
		clone.Duration = &duration
	}

	if e.Fields != nil {
		clone.Fields = make(Fields, len(e.Fields))
		for k, v := range e.Fields {
			clone.Fields[k] = v
		}
	}

	return clone
}

// Field creates a Fields map with a single key-value pair
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates a Fields map with an error field
func Err(err error) Fields {
	if err == nil {
		return Fields{}
	}
	return Fields{"error": err.Error()}
}

// String creates a Fields map with a string field
func String(key, value string) Fields {
	return Fields{key: value}
}

// Int creates a Fields map with an integer field
func Int(key string, value int) Fields {
	return Fields{key: value}
}

// Bool creates a Fields map with a boolean field
func Bool(key string, value bool) Fields {
	return Fields{key: value}
}

// Duration creates a Fields map with a duration field
func Duration(key string, value time.Duration) Fields {
	return Fields{key: value}
}

// Any creates a Fields map with any value
func Any(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Merge combines multiple Fields maps into one
// Later maps override earlier ones for duplicate keys
func Merge(fields ...Fields) Fields {
	result := make(Fields)
	for _, f := range fields {
		for k, v := range f {
			result[k] = v
		}
	}
	return result
}

// With adds fields to an existing Fields map, returning a new map
func (f Fields) With(key string, value interface{}) Fields {
	result := make(Fields, len(f)+1)
	for k, v := range f {
		result[k] = v
	}
	result[key] = value
	return result
}

// Clone creates a copy of the Fields map
func (f Fields) Clone() Fields {
	if f == nil {
		return nil
	}
	result := make(Fields, len(f))
	for k, v := range f {
		result[k] = v
	}
	return result
}
