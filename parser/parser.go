// File: parser.go
// Title: Lingo Pratt Parser
// Description: Implements the parsing phase of Lingo source processing.
//              Converts token streams into Abstract Syntax Trees using
//              precedence-climbing (Pratt) expression parsing with one
//              token of lookahead. Malformed statements are skipped and
//              recorded as diagnostics; the parse never aborts early.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial parser implementation

package parser

import (
	"fmt"
	"strconv"

	lingoast "github.com/msto63/lingo/ast"
	lingolexer "github.com/msto63/lingo/lexer"
	lingotoken "github.com/msto63/lingo/token"
)

// Parser implements Pratt parsing for Lingo source text
type Parser struct {
	lexer       *lingolexer.Lexer
	cursor      cursor
	diagnostics []Diagnostic
}

// cursor is the two-token lookahead window. It is owned exclusively by
// one Parser instance, so no synchronization is needed.
type cursor struct {
	current lingotoken.Token // Token under examination
	peek    lingotoken.Token // One token of lookahead
}

// Diagnostic represents a recorded, non-fatal parse error with position
// information
type Diagnostic struct {
	Message string           // Human-readable description
	Line    int              // Line of the offending token (1-based)
	Column  int              // Column of the offending token (1-based)
	Token   lingotoken.Token // The token the parser stumbled over
}

// String returns the diagnostic message
func (d Diagnostic) String() string {
	return d.Message
}

// Error formats the diagnostic with its source position
func (d Diagnostic) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", d.Line, d.Column, d.Message)
}

// New creates a parser reading from the given lexer and primes both
// cursor slots
func New(l *lingolexer.Lexer) *Parser {
	p := &Parser{
		lexer:       l,
		diagnostics: make([]Diagnostic, 0),
	}

	// Fill current and peek
	p.advance()
	p.advance()

	return p
}

// ParseProgram drives the lexer to exhaustion and returns the program
// root. Statements that fail to parse are skipped, not inserted; their
// diagnostics are retrievable through Diagnostics or Errors afterwards.
func (p *Parser) ParseProgram() *lingoast.Program {
	program := &lingoast.Program{
		Statements: make([]lingoast.Statement, 0),
	}

	for p.cursor.current.Kind != lingotoken.EndOfFile {
		if stmt := p.parseStatement(); stmt != nil {
			program.Statements = append(program.Statements, stmt)
		} else {
			p.synchronize()
		}
		p.advance()
	}

	return program
}

// Diagnostics returns all recorded parse errors in source order
func (p *Parser) Diagnostics() []Diagnostic {
	return p.diagnostics
}

// Errors returns the recorded parse errors as plain messages
func (p *Parser) Errors() []string {
	messages := make([]string, 0, len(p.diagnostics))
	for _, diag := range p.diagnostics {
		messages = append(messages, diag.Message)
	}
	return messages
}

// HasErrors returns true if any diagnostics were recorded
func (p *Parser) HasErrors() bool {
	return len(p.diagnostics) > 0
}

// Statement parsing

// parseStatement dispatches on the current token kind. A nil return
// means the statement was skipped and a diagnostic recorded.
func (p *Parser) parseStatement() lingoast.Statement {
	switch p.cursor.current.Kind {
	case lingotoken.Let:
		if stmt := p.parseLetStatement(); stmt != nil {
			return stmt
		}
	case lingotoken.Return:
		if stmt := p.parseReturnStatement(); stmt != nil {
			return stmt
		}
	default:
		if stmt := p.parseExpressionStatement(); stmt != nil {
			return stmt
		}
	}
	return nil
}

// parseLetStatement parses: let <identifier> = <expression>;
func (p *Parser) parseLetStatement() *lingoast.LetStatement {
	stmt := &lingoast.LetStatement{Token: p.cursor.current}

	if !p.expectPeek(lingotoken.Identifier) {
		return nil
	}

	stmt.Name = &lingoast.Identifier{
		Token: p.cursor.current,
		Name:  p.cursor.current.Literal,
	}

	if !p.expectPeek(lingotoken.Assign) {
		return nil
	}

	p.advance() // move onto the value expression

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	// Statement-terminating semicolons are tolerated but not mandatory
	if p.cursor.peek.Kind == lingotoken.Semicolon {
		p.advance()
	}

	return stmt
}

// parseReturnStatement parses: return <expression>;
func (p *Parser) parseReturnStatement() *lingoast.ReturnStatement {
	stmt := &lingoast.ReturnStatement{Token: p.cursor.current}

	p.advance() // move onto the value expression

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.cursor.peek.Kind == lingotoken.Semicolon {
		p.advance()
	}

	return stmt
}

// parseExpressionStatement parses a bare expression in statement
// position. The optional semicolon enables terminator-free single
// expressions in interactive input.
func (p *Parser) parseExpressionStatement() *lingoast.ExpressionStatement {
	stmt := &lingoast.ExpressionStatement{Token: p.cursor.current}

	stmt.Value = p.parseExpression(Lowest)
	if stmt.Value == nil {
		return nil
	}

	if p.cursor.peek.Kind == lingotoken.Semicolon {
		p.advance()
	}

	return stmt
}

// Expression parsing

// parseExpression is the precedence-climbing core. It builds the left
// operand through the current token's prefix strategy, then folds in
// infix operators from the right as long as the peeked operator binds
// tighter than min. Equal precedence does not continue the loop, which
// is what makes same-precedence operator chains left-associative.
func (p *Parser) parseExpression(min Precedence) lingoast.Expression {
	var left lingoast.Expression

	switch prefixStrategyFor(p.cursor.current.Kind) {
	case prefixIdentifier:
		left = p.parseIdentifier()
	case prefixInteger:
		left = p.parseIntegerLiteral()
	case prefixBoolean:
		left = p.parseBooleanLiteral()
	case prefixOperator:
		left = p.parsePrefixExpression()
	case prefixGrouped:
		left = p.parseGroupedExpression()
	default:
		p.noPrefixStrategyError(p.cursor.current.Kind)
		return nil
	}

	if left == nil {
		return nil
	}

	for p.cursor.peek.Kind != lingotoken.Semicolon && min < precedenceOf(p.cursor.peek.Kind) {
		// A peeked kind without an infix strategy ends the expression;
		// the loop must not advance past it
		if infixStrategyFor(p.cursor.peek.Kind) == infixNone {
			return left
		}

		p.advance() // peek becomes the operator under examination

		left = p.parseInfixExpression(left)
		if left == nil {
			return nil
		}
	}

	return left
}

// parseIdentifier builds an identifier reference from the current token
func (p *Parser) parseIdentifier() lingoast.Expression {
	return &lingoast.Identifier{
		Token: p.cursor.current,
		Name:  p.cursor.current.Literal,
	}
}

// parseIntegerLiteral parses the current literal as a non-negative
// integer. A non-representable literal fails the statement with a
// diagnostic, never a panic.
func (p *Parser) parseIntegerLiteral() lingoast.Expression {
	value, err := strconv.ParseUint(p.cursor.current.Literal, 10, 64)
	if err != nil {
		p.addDiagnostic(fmt.Sprintf("could not parse %q as integer", p.cursor.current.Literal), p.cursor.current)
		return nil
	}

	return &lingoast.IntegerLiteral{
		Token: p.cursor.current,
		Value: value,
	}
}

// parseBooleanLiteral builds a boolean literal from the TRUE or FALSE
// keyword token
func (p *Parser) parseBooleanLiteral() lingoast.Expression {
	return &lingoast.BooleanLiteral{
		Token: p.cursor.current,
		Value: p.cursor.current.Kind == lingotoken.True,
	}
}

// parsePrefixExpression parses a unary operator and its operand at
// Prefix precedence
func (p *Parser) parsePrefixExpression() lingoast.Expression {
	expr := &lingoast.PrefixExpression{
		Token:    p.cursor.current,
		Operator: p.cursor.current.Literal,
	}

	p.advance() // move onto the operand

	expr.Operand = p.parseExpression(Prefix)
	if expr.Operand == nil {
		return nil
	}

	return expr
}

// parseInfixExpression parses the right operand of a binary operator.
// The right side is parsed at the operator's own precedence, so chains
// of equal-precedence operators group to the left.
func (p *Parser) parseInfixExpression(left lingoast.Expression) lingoast.Expression {
	expr := &lingoast.InfixExpression{
		Token:    p.cursor.current,
		Operator: p.cursor.current.Literal,
		Left:     left,
	}

	precedence := precedenceOf(p.cursor.current.Kind)
	p.advance() // move onto the right operand

	expr.Right = p.parseExpression(precedence)
	if expr.Right == nil {
		return nil
	}

	return expr
}

// parseGroupedExpression parses a parenthesized expression at Lowest
// precedence and requires the closing parenthesis
func (p *Parser) parseGroupedExpression() lingoast.Expression {
	p.advance() // consume '('

	expr := p.parseExpression(Lowest)
	if expr == nil {
		return nil
	}

	if !p.expectPeek(lingotoken.RParen) {
		return nil
	}

	return expr
}

// Utility methods

// advance shifts the cursor window one token forward
func (p *Parser) advance() {
	p.cursor.current = p.cursor.peek
	p.cursor.peek = p.lexer.NextToken()
}

// synchronize skips ahead to the next statement boundary after a failed
// statement, so the leftover tokens of one malformed statement cannot
// produce cascading diagnostics
func (p *Parser) synchronize() {
	for p.cursor.current.Kind != lingotoken.Semicolon &&
		p.cursor.current.Kind != lingotoken.EndOfFile {
		p.advance()
	}
}

// expectPeek advances if the peeked token has the expected kind;
// otherwise it records a mismatch diagnostic and leaves the cursor
// untouched
func (p *Parser) expectPeek(kind lingotoken.Kind) bool {
	if p.cursor.peek.Kind == kind {
		p.advance()
		return true
	}

	p.peekError(kind)
	return false
}

// peekError records a token-kind mismatch diagnostic
func (p *Parser) peekError(expected lingotoken.Kind) {
	p.addDiagnostic(fmt.Sprintf("expected next token to be %s, got %s instead",
		expected.String(), p.cursor.peek.Kind.String()), p.cursor.peek)
}

// noPrefixStrategyError records a missing-strategy diagnostic for a
// token that cannot start an expression
func (p *Parser) noPrefixStrategyError(kind lingotoken.Kind) {
	p.addDiagnostic(fmt.Sprintf("no prefix parse function for %s found", kind.String()), p.cursor.current)
}

// addDiagnostic appends a diagnostic carrying the offending token and
// its position
func (p *Parser) addDiagnostic(message string, tok lingotoken.Token) {
	p.diagnostics = append(p.diagnostics, Diagnostic{
		Message: message,
		Line:    tok.Line,
		Column:  tok.Column,
		Token:   tok,
	})
}

// ParseInput is a convenience that lexes and parses source text in one
// call, returning the program and any diagnostics
func ParseInput(source string) (*lingoast.Program, []Diagnostic) {
	p := New(lingolexer.New(source))
	program := p.ParseProgram()
	return program, p.Diagnostics()
}
