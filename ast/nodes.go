// File: nodes.go
// Title: Lingo AST Node Definitions
// Description: Defines all AST node types for representing parsed Lingo
//              programs. Statements and expressions form two sealed node
//              axes with closed kind enumerations, so consumers dispatch
//              through exhaustive switches instead of downcasts.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial AST node definitions

package ast

import (
	"fmt"
	"strings"

	lingotoken "github.com/msto63/lingo/token"
	lingostringx "github.com/msto63/lingo/utils/stringx"
)

// Node represents the base interface for all AST nodes
type Node interface {
	// TokenLiteral returns the literal of the token that started the node,
	// used in diagnostics and tests
	TokenLiteral() string

	// String returns the canonical source form of the node
	String() string

	// Position returns the source position of the node
	Position() Position

	// Validate performs basic structural validation of the node
	Validate() error
}

// Position represents a position in the source code
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based)
	Offset int // Byte offset (0-based)
}

// positionOf derives a node position from its defining token
func positionOf(tok lingotoken.Token) Position {
	return Position{
		Line:   tok.Line,
		Column: tok.Column,
		Offset: tok.Position,
	}
}

// Statement is the sealed interface for all statement nodes.
// Only types in this package can implement it.
type Statement interface {
	Node
	statementNode()

	// Kind returns the closed statement discriminator
	Kind() StatementKind
}

// Expression is the sealed interface for all expression nodes.
// Only types in this package can implement it.
type Expression interface {
	Node
	expressionNode()

	// Kind returns the closed expression discriminator
	Kind() ExpressionKind
}

// StatementKind discriminates the closed set of statement variants
type StatementKind int

const (
	StatementLet StatementKind = iota
	StatementReturn
	StatementExpression
)

// String returns string representation of StatementKind
func (sk StatementKind) String() string {
	switch sk {
	case StatementLet:
		return "let"
	case StatementReturn:
		return "return"
	case StatementExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// ExpressionKind discriminates the closed set of expression variants
type ExpressionKind int

const (
	ExpressionIdentifier ExpressionKind = iota
	ExpressionInteger
	ExpressionBoolean
	ExpressionPrefix
	ExpressionInfix
)

// String returns string representation of ExpressionKind
func (ek ExpressionKind) String() string {
	switch ek {
	case ExpressionIdentifier:
		return "identifier"
	case ExpressionInteger:
		return "integer"
	case ExpressionBoolean:
		return "boolean"
	case ExpressionPrefix:
		return "prefix"
	case ExpressionInfix:
		return "infix"
	default:
		return "unknown"
	}
}

// Program is the root node of every parsed source unit. It owns its
// statements exclusively; the tree has no sharing and no cycles.
type Program struct {
	Statements []Statement // Statements in source order
}

// Statement types

// LetStatement represents a binding: let <name> = <value>;
type LetStatement struct {
	Token lingotoken.Token // The LET token
	Name  *Identifier      // Bound identifier
	Value Expression       // Bound expression, nil if the parse failed
}

// ReturnStatement represents: return <value>;
type ReturnStatement struct {
	Token lingotoken.Token // The RETURN token
	Value Expression       // Returned expression, nil if the parse failed
}

// ExpressionStatement wraps a bare expression used in statement position,
// enabling REPL-style input such as "x + y;"
type ExpressionStatement struct {
	Token lingotoken.Token // First token of the expression
	Value Expression       // The wrapped expression
}

// Expression types

// Identifier represents a name reference
type Identifier struct {
	Token lingotoken.Token // The IDENT token
	Name  string           // Identifier name
}

// IntegerLiteral represents a non-negative decimal integer literal
type IntegerLiteral struct {
	Token lingotoken.Token // The INT token
	Value uint64           // Parsed numeric value
}

// BooleanLiteral represents the keywords true and false
type BooleanLiteral struct {
	Token lingotoken.Token // The TRUE or FALSE token
	Value bool             // Literal value
}

// PrefixExpression represents a unary expression: <operator><operand>
type PrefixExpression struct {
	Token    lingotoken.Token // The prefix operator token
	Operator string           // Operator literal ("-" or "!")
	Operand  Expression       // Operand expression
}

// InfixExpression represents a binary expression: <left> <operator> <right>
type InfixExpression struct {
	Token    lingotoken.Token // The infix operator token
	Operator string           // Operator literal (+, -, *, /, <, >, ==, !=)
	Left     Expression       // Left operand
	Right    Expression       // Right operand
}

// Implementation of Node interface for Program

func (p *Program) TokenLiteral() string {
	if len(p.Statements) > 0 {
		return p.Statements[0].TokenLiteral()
	}
	return ""
}

func (p *Program) String() string {
	var out strings.Builder

	for _, stmt := range p.Statements {
		out.WriteString(stmt.String())
	}

	return out.String()
}

func (p *Program) Position() Position {
	if len(p.Statements) > 0 {
		return p.Statements[0].Position()
	}
	return Position{Line: 1, Column: 1}
}

func (p *Program) Validate() error {
	for i, stmt := range p.Statements {
		if stmt == nil {
			return fmt.Errorf("statement %d is nil", i)
		}
		if err := stmt.Validate(); err != nil {
			return fmt.Errorf("statement %d: %w", i, err)
		}
	}
	return nil
}

// IsEmpty returns true if the program contains no statements
func (p *Program) IsEmpty() bool {
	return len(p.Statements) == 0
}

// Implementation of Node interface for LetStatement

func (ls *LetStatement) TokenLiteral() string {
	return ls.Token.Literal
}

func (ls *LetStatement) String() string {
	var out strings.Builder

	out.WriteString(ls.TokenLiteral() + " ")
	out.WriteString(ls.Name.String())
	out.WriteString(" = ")

	if ls.Value != nil {
		out.WriteString(ls.Value.String())
	}

	out.WriteString(";")

	return out.String()
}

func (ls *LetStatement) Position() Position {
	return positionOf(ls.Token)
}

func (ls *LetStatement) Validate() error {
	if ls.Name == nil {
		return fmt.Errorf("binding name is required")
	}
	if err := ls.Name.Validate(); err != nil {
		return fmt.Errorf("binding name: %w", err)
	}

	if ls.Value != nil {
		if err := ls.Value.Validate(); err != nil {
			return fmt.Errorf("binding value: %w", err)
		}
	}

	return nil
}

func (ls *LetStatement) statementNode() {}

func (ls *LetStatement) Kind() StatementKind { return StatementLet }

// Implementation of Node interface for ReturnStatement

func (rs *ReturnStatement) TokenLiteral() string {
	return rs.Token.Literal
}

func (rs *ReturnStatement) String() string {
	var out strings.Builder

	out.WriteString(rs.TokenLiteral())

	if rs.Value != nil {
		out.WriteString(" " + rs.Value.String())
	}

	out.WriteString(";")

	return out.String()
}

func (rs *ReturnStatement) Position() Position {
	return positionOf(rs.Token)
}

func (rs *ReturnStatement) Validate() error {
	if rs.Value != nil {
		if err := rs.Value.Validate(); err != nil {
			return fmt.Errorf("return value: %w", err)
		}
	}
	return nil
}

func (rs *ReturnStatement) statementNode() {}

func (rs *ReturnStatement) Kind() StatementKind { return StatementReturn }

// Implementation of Node interface for ExpressionStatement

func (es *ExpressionStatement) TokenLiteral() string {
	return es.Token.Literal
}

func (es *ExpressionStatement) String() string {
	if es.Value != nil {
		return es.Value.String()
	}
	return ""
}

func (es *ExpressionStatement) Position() Position {
	return positionOf(es.Token)
}

func (es *ExpressionStatement) Validate() error {
	if es.Value == nil {
		return fmt.Errorf("expression is required")
	}
	return es.Value.Validate()
}

func (es *ExpressionStatement) statementNode() {}

func (es *ExpressionStatement) Kind() StatementKind { return StatementExpression }

// Implementation of Node interface for Identifier

func (id *Identifier) TokenLiteral() string {
	return id.Token.Literal
}

func (id *Identifier) String() string {
	return id.Name
}

func (id *Identifier) Position() Position {
	return positionOf(id.Token)
}

func (id *Identifier) Validate() error {
	if lingostringx.IsBlank(id.Name) {
		return fmt.Errorf("identifier name is required")
	}
	return nil
}

func (id *Identifier) expressionNode() {}

func (id *Identifier) Kind() ExpressionKind { return ExpressionIdentifier }

// Implementation of Node interface for IntegerLiteral

func (il *IntegerLiteral) TokenLiteral() string {
	return il.Token.Literal
}

func (il *IntegerLiteral) String() string {
	return il.Token.Literal
}

func (il *IntegerLiteral) Position() Position {
	return positionOf(il.Token)
}

func (il *IntegerLiteral) Validate() error {
	if lingostringx.IsBlank(il.Token.Literal) {
		return fmt.Errorf("integer literal is required")
	}
	return nil
}

func (il *IntegerLiteral) expressionNode() {}

func (il *IntegerLiteral) Kind() ExpressionKind { return ExpressionInteger }

// Implementation of Node interface for BooleanLiteral

func (bl *BooleanLiteral) TokenLiteral() string {
	return bl.Token.Literal
}

func (bl *BooleanLiteral) String() string {
	return bl.Token.Literal
}

func (bl *BooleanLiteral) Position() Position {
	return positionOf(bl.Token)
}

func (bl *BooleanLiteral) Validate() error {
	return nil
}

func (bl *BooleanLiteral) expressionNode() {}

func (bl *BooleanLiteral) Kind() ExpressionKind { return ExpressionBoolean }

// Implementation of Node interface for PrefixExpression

func (pe *PrefixExpression) TokenLiteral() string {
	return pe.Token.Literal
}

func (pe *PrefixExpression) String() string {
	return fmt.Sprintf("(%s%s)", pe.Operator, pe.Operand.String())
}

func (pe *PrefixExpression) Position() Position {
	return positionOf(pe.Token)
}

func (pe *PrefixExpression) Validate() error {
	if lingostringx.IsBlank(pe.Operator) {
		return fmt.Errorf("operator is required")
	}
	if pe.Operand == nil {
		return fmt.Errorf("operand is required")
	}
	if err := pe.Operand.Validate(); err != nil {
		return fmt.Errorf("operand: %w", err)
	}
	return nil
}

func (pe *PrefixExpression) expressionNode() {}

func (pe *PrefixExpression) Kind() ExpressionKind { return ExpressionPrefix }

// Implementation of Node interface for InfixExpression

func (ie *InfixExpression) TokenLiteral() string {
	return ie.Token.Literal
}

func (ie *InfixExpression) String() string {
	return fmt.Sprintf("(%s %s %s)", ie.Left.String(), ie.Operator, ie.Right.String())
}

func (ie *InfixExpression) Position() Position {
	return positionOf(ie.Token)
}

func (ie *InfixExpression) Validate() error {
	if ie.Left == nil {
		return fmt.Errorf("left operand is required")
	}
	if ie.Right == nil {
		return fmt.Errorf("right operand is required")
	}
	if lingostringx.IsBlank(ie.Operator) {
		return fmt.Errorf("operator is required")
	}

	if err := ie.Left.Validate(); err != nil {
		return fmt.Errorf("left operand: %w", err)
	}
	if err := ie.Right.Validate(); err != nil {
		return fmt.Errorf("right operand: %w", err)
	}

	return nil
}

func (ie *InfixExpression) expressionNode() {}

func (ie *InfixExpression) Kind() ExpressionKind { return ExpressionInfix }
