// Package error provides comprehensive error handling capabilities for the lingo toolchain.
//
// Package: error
// Title: Lingo Error Handling Framework
// Description: This package implements a structured error handling system with
//              contextual information, error codes, stack traces, and
//              integration with the logging system. It provides a foundation
//              for consistent error handling across lexer, parser, and
//              interactive session components.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with contextual errors and codes
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for consistent classification
// - Process exit codes following the BSD sysexits convention
// - Stack trace capture for debugging
// - Integration with the logging system
// - Error severity levels and categorization
//
// Usage:
//   import lingoerror "github.com/msto63/lingo/core/error"
//
//   // Create a new error with context
//   err := lingoerror.New("source exceeds maximum length").
//     WithCode(lingoerror.CodeSourceTooLarge).
//     WithDetail("length", 131072).
//     WithOperation("Parse")
//
//   // Wrap an existing error with context
//   wrapped := lingoerror.Wrap(err, "failed to check source").
//     WithContext("engine")
//
//   // Check error type and code
//   if lingoerror.HasCode(err, lingoerror.CodeSourceTooLarge) {
//     // Reject oversized input specifically
//   }
package error
