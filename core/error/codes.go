// File: codes.go
// Title: Error Code Definitions
// Description: Defines standardized error codes for consistent error
//              classification across the lingo toolchain. These codes enable
//              structured error handling, process exit codes, and error
//              monitoring.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with core error codes

package error

// Code represents a structured error code for categorizing errors
type Code string

// Core error codes for the lingo toolchain
const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"
	CodeTimeout      Code = "TIMEOUT"

	// Source handling
	CodeEmptySource    Code = "EMPTY_SOURCE"
	CodeSourceTooLarge Code = "SOURCE_TOO_LARGE"
	CodeSourceRead     Code = "SOURCE_READ"

	// Syntax analysis
	CodeSyntaxError     Code = "SYNTAX_ERROR"
	CodeIllegalToken    Code = "ILLEGAL_TOKEN"
	CodeIntegerOverflow Code = "INTEGER_OVERFLOW"

	// Interactive sessions
	CodeSessionInit    Code = "SESSION_INIT"
	CodeHistoryIO      Code = "HISTORY_IO"
	CodeUnknownCommand Code = "UNKNOWN_COMMAND"

	// Configuration and environment
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeMissingConfig    Code = "MISSING_CONFIG"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeEnvironmentError Code = "ENVIRONMENT_ERROR"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeInvalidFormat    Code = "INVALID_FORMAT"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
	CodeInvalidLength    Code = "INVALID_LENGTH"

	// File I/O
	CodeFileRead  Code = "FILE_READ"
	CodeFileWrite Code = "FILE_WRITE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeTimeout,
		CodeEmptySource, CodeSourceTooLarge, CodeSourceRead,
		CodeSyntaxError, CodeIllegalToken, CodeIntegerOverflow,
		CodeSessionInit, CodeHistoryIO, CodeUnknownCommand,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength,
		CodeFileRead, CodeFileWrite:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeEmptySource, CodeSourceTooLarge, CodeSourceRead:
		return "source"
	case CodeSyntaxError, CodeIllegalToken, CodeIntegerOverflow:
		return "syntax"
	case CodeSessionInit, CodeHistoryIO, CodeUnknownCommand:
		return "session"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeInvalidFormat, CodeValueOutOfRange, CodeInvalidLength:
		return "validation"
	case CodeFileRead, CodeFileWrite:
		return "io"
	default:
		return "generic"
	}
}

// ExitCode returns the process exit code for this error code,
// following the BSD sysexits convention
func (c Code) ExitCode() int {
	switch c {
	case CodeSyntaxError, CodeIllegalToken, CodeIntegerOverflow,
		CodeInvalidInput, CodeEmptySource, CodeSourceTooLarge,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return 65 // EX_DATAERR
	case CodeNotFound, CodeSourceRead, CodeFileRead:
		return 66 // EX_NOINPUT
	case CodeUnknownCommand:
		return 64 // EX_USAGE
	case CodeFileWrite:
		return 73 // EX_CANTCREAT
	case CodeHistoryIO:
		return 74 // EX_IOERR
	case CodeTimeout:
		return 75 // EX_TEMPFAIL
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig, CodeEnvironmentError:
		return 78 // EX_CONFIG
	default:
		return 70 // EX_SOFTWARE
	}
}
