// File: token.go
// Title: Lingo Token Model
// Description: Defines the closed set of token kinds produced by the Lingo
//              lexer, the Token value carrying kind, literal text and source
//              position, and the keyword lookup table that separates
//              reserved words from plain identifiers.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token model implementation

package token

import "fmt"

// Kind identifies the lexical class of a token
type Kind int

const (
	// Special tokens
	Illegal Kind = iota
	EndOfFile

	// Identifiers and literals
	Identifier // five, _foo, addTwo
	Integer    // 5, 838383

	// Operators
	Assign      // =
	Plus        // +
	Minus       // -
	Bang        // !
	Asterisk    // *
	Slash       // /
	LessThan    // <
	GreaterThan // >
	Equal       // ==
	NotEqual    // !=

	// Delimiters
	Comma     // ,
	Semicolon // ;
	LParen    // (
	RParen    // )
	LBrace    // {
	RBrace    // }

	// Keywords
	Function // fn
	Let      // let
	True     // true
	False    // false
	If       // if
	Else     // else
	Return   // return
)

// Token represents a lexical token with position information
type Token struct {
	Kind     Kind   // Lexical class of the token
	Literal  string // Source text the token was built from
	Position int    // Byte position in input
	Line     int    // Line number (1-based)
	Column   int    // Column number (1-based)
}

// String returns a string representation of the token
func (t Token) String() string {
	switch t.Kind {
	case EndOfFile:
		return "EOF"
	case Illegal:
		return fmt.Sprintf("ILLEGAL(%s)", t.Literal)
	default:
		return fmt.Sprintf("%s(%s)", t.Kind.String(), t.Literal)
	}
}

// String returns the display name of the token kind as used in diagnostics
func (k Kind) String() string {
	switch k {
	case Illegal:
		return "ILLEGAL"
	case EndOfFile:
		return "EOF"
	case Identifier:
		return "IDENT"
	case Integer:
		return "INT"
	case Assign:
		return "ASSIGN"
	case Plus:
		return "PLUS"
	case Minus:
		return "MINUS"
	case Bang:
		return "BANG"
	case Asterisk:
		return "ASTERISK"
	case Slash:
		return "SLASH"
	case LessThan:
		return "LT"
	case GreaterThan:
		return "GT"
	case Equal:
		return "EQ"
	case NotEqual:
		return "NOT_EQ"
	case Comma:
		return "COMMA"
	case Semicolon:
		return "SEMICOLON"
	case LParen:
		return "LPAREN"
	case RParen:
		return "RPAREN"
	case LBrace:
		return "LBRACE"
	case RBrace:
		return "RBRACE"
	case Function:
		return "FUNCTION"
	case Let:
		return "LET"
	case True:
		return "TRUE"
	case False:
		return "FALSE"
	case If:
		return "IF"
	case Else:
		return "ELSE"
	case Return:
		return "RETURN"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword reports whether the kind is one of the reserved words
func (k Kind) IsKeyword() bool {
	return k >= Function && k <= Return
}

// IsOperator reports whether the kind is a prefix or infix operator
func (k Kind) IsOperator() bool {
	return k >= Assign && k <= NotEqual
}

// Keywords map for identifier lookup. Matching is exact and case-sensitive;
// "Let" or "LET" remain plain identifiers.
var keywords = map[string]Kind{
	"fn":     Function,
	"let":    Let,
	"true":   True,
	"false":  False,
	"if":     If,
	"else":   Else,
	"return": Return,
}

// LookupIdent determines if an identifier literal is a keyword or a regular
// identifier
func LookupIdent(ident string) Kind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}
