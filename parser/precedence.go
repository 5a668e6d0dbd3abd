// File: precedence.go
// Title: Lingo Operator Precedence and Parsing Strategies
// Description: Defines the operator precedence ladder and the closed
//              mapping from token kinds to prefix and infix parsing
//              strategies. Strategies are enumerated tags dispatched
//              through switches, keeping the strategy set statically
//              auditable.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial precedence and strategy tables

package parser

import (
	lingotoken "github.com/msto63/lingo/token"
)

// Precedence represents operator binding strength. Higher values bind
// tighter. The climbing loop compares the peeked operator's precedence
// against the caller's minimum, which is what encodes both precedence
// and left-associativity.
type Precedence int

const (
	Lowest      Precedence = iota + 1
	Equals                 // == !=
	LessGreater            // < >
	Sum                    // + -
	Product                // * /
	Prefix                 // -x !x
	Call                   // reserved for future function-call parsing
)

// String returns string representation of Precedence
func (p Precedence) String() string {
	switch p {
	case Lowest:
		return "lowest"
	case Equals:
		return "equals"
	case LessGreater:
		return "less-greater"
	case Sum:
		return "sum"
	case Product:
		return "product"
	case Prefix:
		return "prefix"
	case Call:
		return "call"
	default:
		return "unknown"
	}
}

// precedenceOf returns the infix binding strength of a token kind.
// Kinds that cannot appear as infix operators bind at Lowest, which
// keeps them out of the climbing loop.
func precedenceOf(kind lingotoken.Kind) Precedence {
	switch kind {
	case lingotoken.Equal, lingotoken.NotEqual:
		return Equals
	case lingotoken.LessThan, lingotoken.GreaterThan:
		return LessGreater
	case lingotoken.Plus, lingotoken.Minus:
		return Sum
	case lingotoken.Asterisk, lingotoken.Slash:
		return Product
	default:
		return Lowest
	}
}

// prefixStrategy enumerates the ways a token kind can start an
// expression
type prefixStrategy int

const (
	prefixNone prefixStrategy = iota
	prefixIdentifier
	prefixInteger
	prefixBoolean
	prefixOperator
	prefixGrouped
)

// prefixStrategyFor maps a token kind to its prefix parsing strategy.
// Kinds without an entry cannot start an expression and surface as a
// missing-strategy diagnostic.
func prefixStrategyFor(kind lingotoken.Kind) prefixStrategy {
	switch kind {
	case lingotoken.Identifier:
		return prefixIdentifier
	case lingotoken.Integer:
		return prefixInteger
	case lingotoken.True, lingotoken.False:
		return prefixBoolean
	case lingotoken.Bang, lingotoken.Minus:
		return prefixOperator
	case lingotoken.LParen:
		return prefixGrouped
	default:
		return prefixNone
	}
}

// infixStrategy enumerates the ways a token kind can extend an
// already-parsed left operand
type infixStrategy int

const (
	infixNone infixStrategy = iota
	infixBinary
)

// infixStrategyFor maps a token kind to its infix parsing strategy.
// All binary operators share one strategy; their differences live in
// the precedence table.
func infixStrategyFor(kind lingotoken.Kind) infixStrategy {
	switch kind {
	case lingotoken.Plus, lingotoken.Minus,
		lingotoken.Asterisk, lingotoken.Slash,
		lingotoken.LessThan, lingotoken.GreaterThan,
		lingotoken.Equal, lingotoken.NotEqual:
		return infixBinary
	default:
		return infixNone
	}
}
