// Package lingo provides the high-level engine for processing Lingo source.
//
// Package: lingo
// Title: Lingo Engine Facade
// Description: This package ties the lexer, parser and AST together behind
//              a single validated API. It offers tokenizing, parsing,
//              syntax checking and canonical formatting with structured
//              errors, request-scoped logging and operation timing.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial engine implementation
//
// Features:
// - Input validation with size limits before any scanning starts
// - Tokenize drains a fresh lexer and can reject illegal bytes strictly
// - Parse returns the AST together with ordered diagnostics and timing
// - Check gives a strict yes/no answer for syntactic validity
// - Format renders the canonical source form and is idempotent
// - Structured errors with codes, request IDs on every log line
//
// Usage:
//   import "github.com/msto63/lingo"
//
//   // One-off calls through the shared default engine
//   tokens, err := lingo.Tokenize("let five = 5;")
//   out, err := lingo.Format("let five=5")
//
//   // A configured engine for long-running use
//   engine := lingo.New(lingo.Options{
//     Logger:           logger,
//     MaxSourceLength:  1 << 16,
//     CollectAllTokens: true,
//   })
//
//   result, err := engine.Parse(source)
//   if err != nil {
//     // result still carries the partial program and its diagnostics
//     for _, d := range result.Diagnostics {
//       fmt.Println(d.Error())
//     }
//   }
package lingo
