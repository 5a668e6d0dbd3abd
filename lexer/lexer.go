// File: lexer.go
// Title: Lingo Lexical Analyzer (Tokenizer)
// Description: Implements the lexical analysis phase of the Lingo front end.
//              Converts source text into a stream of tokens one byte at a
//              time, with single-byte lookahead for the two-character
//              operators and position tracking for error reporting.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

package lexer

import (
	lingotoken "github.com/msto63/lingo/token"
)

// Lexer performs lexical analysis of Lingo source text
type Lexer struct {
	input    string // Input string
	position int    // Current position in input (points to current byte)
	readPos  int    // Current reading position (after current byte)
	ch       byte   // Current byte under examination
	line     int    // Current line number (1-based)
	column   int    // Current column number (1-based)
}

// New creates a new lexer for the given input and primes the first byte
func New(input string) *Lexer {
	l := &Lexer{
		input:  input,
		line:   1,
		column: 0,
	}
	l.readChar() // Initialize first character
	return l
}

// NextToken returns the next token from the input. It never fails:
// unclassifiable bytes become Illegal tokens, and once the end of input is
// reached every further call keeps returning EndOfFile.
func (l *Lexer) NextToken() lingotoken.Token {
	var tok lingotoken.Token

	l.skipWhitespace()

	// Save current position for the token
	pos := l.position
	line := l.line
	column := l.column

	switch l.ch {
	case '=':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = lingotoken.Token{Kind: lingotoken.Equal, Literal: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(lingotoken.Assign, l.ch, pos, line, column)
		}
	case '!':
		if l.peekChar() == '=' {
			ch := l.ch
			l.readChar()
			tok = lingotoken.Token{Kind: lingotoken.NotEqual, Literal: string(ch) + string(l.ch), Position: pos, Line: line, Column: column}
		} else {
			tok = newToken(lingotoken.Bang, l.ch, pos, line, column)
		}
	case '+':
		tok = newToken(lingotoken.Plus, l.ch, pos, line, column)
	case '-':
		tok = newToken(lingotoken.Minus, l.ch, pos, line, column)
	case '*':
		tok = newToken(lingotoken.Asterisk, l.ch, pos, line, column)
	case '/':
		tok = newToken(lingotoken.Slash, l.ch, pos, line, column)
	case '<':
		tok = newToken(lingotoken.LessThan, l.ch, pos, line, column)
	case '>':
		tok = newToken(lingotoken.GreaterThan, l.ch, pos, line, column)
	case ',':
		tok = newToken(lingotoken.Comma, l.ch, pos, line, column)
	case ';':
		tok = newToken(lingotoken.Semicolon, l.ch, pos, line, column)
	case '(':
		tok = newToken(lingotoken.LParen, l.ch, pos, line, column)
	case ')':
		tok = newToken(lingotoken.RParen, l.ch, pos, line, column)
	case '{':
		tok = newToken(lingotoken.LBrace, l.ch, pos, line, column)
	case '}':
		tok = newToken(lingotoken.RBrace, l.ch, pos, line, column)
	case 0:
		tok = lingotoken.Token{Kind: lingotoken.EndOfFile, Literal: "", Position: pos, Line: line, Column: column}
	default:
		if isLetter(l.ch) {
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			tok.Literal = l.readIdentifier()
			tok.Kind = lingotoken.LookupIdent(tok.Literal)
			return tok // Early return: readIdentifier already advanced
		} else if isDigit(l.ch) {
			tok.Kind = lingotoken.Integer
			tok.Literal = l.readNumber()
			tok.Position = pos
			tok.Line = line
			tok.Column = column
			return tok // Early return: readNumber already advanced
		} else {
			tok = newToken(lingotoken.Illegal, l.ch, pos, line, column)
		}
	}

	l.readChar()
	return tok
}

// Tokenize drains the input and returns all tokens including the terminal
// EndOfFile. Illegal tokens are returned like any other: classifying bad
// bytes is the caller's concern, not the scanner's.
func (l *Lexer) Tokenize() []lingotoken.Token {
	var tokens []lingotoken.Token

	for {
		tok := l.NextToken()
		tokens = append(tokens, tok)

		if tok.Kind == lingotoken.EndOfFile {
			break
		}
	}

	return tokens
}

// readChar reads the next byte and advances both cursors
func (l *Lexer) readChar() {
	if l.readPos >= len(l.input) {
		l.ch = 0 // NUL sentinel represents end of input
	} else {
		l.ch = l.input[l.readPos]
	}

	l.position = l.readPos
	l.readPos++

	// Update line and column tracking
	if l.ch == '\n' {
		l.line++
		l.column = 0
	} else {
		l.column++
	}
}

// peekChar returns the next byte without advancing
func (l *Lexer) peekChar() byte {
	if l.readPos >= len(l.input) {
		return 0
	}
	return l.input[l.readPos]
}

// readIdentifier reads an identifier (ASCII letters and underscores)
func (l *Lexer) readIdentifier() string {
	start := l.position
	for isLetter(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// readNumber reads a run of decimal digits. No sign, decimal point or
// exponent handling: Lingo integers are plain non-negative decimals.
func (l *Lexer) readNumber() string {
	start := l.position
	for isDigit(l.ch) {
		l.readChar()
	}
	return l.input[start:l.position]
}

// skipWhitespace skips the whitespace bytes that carry no token
func (l *Lexer) skipWhitespace() {
	for l.ch == ' ' || l.ch == '\t' || l.ch == '\n' || l.ch == '\r' {
		l.readChar()
	}
}

// Utility functions

// newToken creates a single-byte token with the given parameters
func newToken(kind lingotoken.Kind, ch byte, pos, line, column int) lingotoken.Token {
	return lingotoken.Token{
		Kind:     kind,
		Literal:  string(ch),
		Position: pos,
		Line:     line,
		Column:   column,
	}
}

// isLetter checks if the byte has identifier meaning. Underscore counts as
// a letter, enabling identifiers like _foo. Only ASCII is supported.
func isLetter(ch byte) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z' || ch == '_'
}

// isDigit checks if the byte is a decimal digit
func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

// TokenizeInput is a convenience function that tokenizes input in one call
func TokenizeInput(input string) []lingotoken.Token {
	return New(input).Tokenize()
}
