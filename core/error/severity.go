// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors to enable proper
//              prioritization and logging. Severity levels determine how
//              loudly an error is reported and which exit paths are taken.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with severity levels

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a minor error that doesn't affect core functionality
	// Examples: syntax errors in user source, invalid input values
	SeverityLow Severity = iota

	// SeverityMedium indicates an error that affects functionality but has workarounds
	// Examples: unreadable config file, history file not writable
	SeverityMedium

	// SeverityHigh indicates a serious error that significantly impacts functionality
	// Examples: internal invariant violations, session initialization failures
	SeverityHigh

	// SeverityCritical indicates a critical error that makes the toolchain unusable
	// Examples: broken environment, unusable terminal
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level warrants immediate attention
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	// Critical system errors
	case CodeEnvironmentError:
		return SeverityCritical

	// High severity errors
	case CodeInternal, CodeSessionInit, CodeFileWrite:
		return SeverityHigh

	// Medium severity errors
	case CodeTimeout, CodeSourceRead, CodeFileRead, CodeHistoryIO,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityMedium

	// Low severity errors
	case CodeInvalidInput, CodeNotFound, CodeEmptySource, CodeSourceTooLarge,
		CodeSyntaxError, CodeIllegalToken, CodeIntegerOverflow, CodeUnknownCommand,
		CodeValidationFailed, CodeRequiredField, CodeInvalidFormat,
		CodeValueOutOfRange, CodeInvalidLength:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
