// File: doc.go
// Title: Lingo Parser Package Documentation
// Description: Implements the Pratt parser for Lingo source text.
//              Converts token streams into Abstract Syntax Trees with
//              error-tolerant statement recovery and positioned
//              diagnostics.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

/*
Package parser converts Lingo token streams into Abstract Syntax Trees.

The parser pulls tokens from a lexer through a two-token lookahead
cursor and builds statements top-down. Expressions are parsed with a
precedence-climbing (Pratt) core: every token kind that can start an
expression maps to a prefix strategy, every binary operator maps to an
infix strategy plus a binding strength, and both mappings are closed
enumerations dispatched through switches.

Parsing is best-effort. A malformed statement is skipped, a diagnostic
is recorded with its source position, and parsing resumes at the next
statement boundary. An empty diagnostics list after ParseProgram means
a syntactically clean program:

	p := parser.New(lexer.New("let x = 5;"))
	program := p.ParseProgram()
	if p.HasErrors() {
		// inspect p.Diagnostics()
	}
*/
package parser
