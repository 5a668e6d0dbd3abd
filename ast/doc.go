// File: doc.go
// Title: Lingo Abstract Syntax Tree Package Documentation
// Description: Defines the Abstract Syntax Tree nodes and structures for
//              representing parsed Lingo programs. Provides traversal and
//              tree inspection utilities.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree structures for Lingo programs.

Nodes are split into two sealed axes, Statement and Expression, each with
a closed kind enumeration. Consumers dispatch with type switches or kind
switches; both are exhaustiveness-checked against the variant set in this
package, so no downcasting is needed anywhere.

Every node can reproduce a canonical source form through String, which
lets callers compare parse results structurally:

	program := parser.New(lexer.New("-a * b")).ParseProgram()
	fmt.Println(program.String()) // ((-a) * b)

The AST enables:
  - Structured representation of Lingo programs
  - Canonical re-printing for formatting and round-trip tests
  - Tree traversal, validation, and node collection
*/
package ast
