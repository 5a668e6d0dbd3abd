// Package log provides structured logging capabilities for the lingo toolchain.
//
// Package: log
// Title: Lingo Structured Logging Framework
// Description: This package implements a structured logging system with
//              contextual information, multiple output formats, log levels, and
//              tight integration with the lingo error handling system. It
//              supports performance timing for lexer and parser runs and audit
//              trails for interactive sessions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial implementation with structured logging and error integration
//
// Features:
// - Structured logging with JSON, text, and console formats
// - Multiple log levels with filtering capabilities
// - Contextual logging with request IDs, session IDs, and custom fields
// - Integration with the lingo error system for automatic error logging
// - Performance timers with checkpoints for pipeline stages
// - Audit trail capabilities for interactive sessions
//
// Usage:
//   import lingolog "github.com/msto63/lingo/core/log"
//
//   // Create a logger with context
//   logger := log.New().
//     WithLevel(log.LevelInfo).
//     WithFormat(log.FormatJSON).
//     WithField("component", "parser").
//     WithRequestID("req-123")
//
//   // Log messages with different levels
//   logger.Info("source parsed", log.Field("statements", 3))
//   logger.Error("parse failed", log.Err(err))
//   logger.Debug("scanning source", log.Fields{
//     "bytes": 1024,
//     "mode":  "tokens",
//   })
//
//   // Log performance metrics
//   timer := logger.StartTimer("parse")
//   // ... run the parser
//   timer.Stop()
//
//   // Audit logging for interactive sessions
//   logger.Audit("session started", log.Fields{
//     "session_id": sessionID,
//     "mode":       "ast",
//   })
package log
