// File: doc.go
// Title: String Utilities Package Documentation
// Description: Package documentation for the stringx utility package
//              providing extended string manipulation functions.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial package documentation

/*
Package stringx provides string utilities that extend the Go standard
library with commonly needed operations.

The functions fall into three groups:

Validation helpers distinguish empty from blank strings:

	stringx.IsEmpty("")      // true
	stringx.IsBlank(" \t ")  // true
	stringx.IsBlank(" x ")   // false

Formatting helpers are Unicode-aware and never split multi-byte
characters:

	stringx.Truncate("hello world", 8, "...") // "hello..."
	stringx.PadRight("IDENT", 10, ' ')        // "IDENT     "

Selection helpers simplify default-value chains:

	stringx.FirstNonBlank(flagValue, envValue, "fallback")

All functions are pure and safe for concurrent use.
*/
package stringx
