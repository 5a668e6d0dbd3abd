// Package repl provides the interactive shell for the Lingo front end.
//
// Package: repl
// Title: Lingo Interactive Shell
// Description: This package implements the read-eval-print loop for
//              exploring Lingo source line by line. Each input line is
//              either tokenized or parsed depending on the session mode,
//              and colon-prefixed meta-commands control the session
//              itself. Line editing and persistent history are provided
//              by the terminal prompt, and every session is tagged with
//              a unique identifier for audit logging.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial REPL with token and AST modes
//
// Features:
// - Line editing with Ctrl-C abort and Ctrl-D exit handling
// - Persistent line history across sessions (~/.lingo_history)
// - Token mode printing one token per line, as the language's
//   original shell did
// - AST mode printing the canonical form and tree structure
// - Meta-commands (:help, :quit, :mode, :history, :clear) dispatched
//   through a concurrent-safe command registry with aliases
// - Session audit logging with generated session IDs
//
// Usage:
//   import "github.com/msto63/lingo/repl"
//
//   session, err := repl.New(repl.Options{
//     Prompt: ">> ",
//     Mode:   repl.ModeTokens,
//   })
//   if err != nil {
//     log.Fatal(err)
//   }
//   if err := session.Run(); err != nil {
//     log.Fatal(err)
//   }
//
//   // Driving a session without a terminal
//   output, quit := session.ProcessLine("let x = 5;")
package repl
