// File: doc.go
// Title: Lingo Token Package Documentation
// Description: Documents the token model shared by the lexer and parser:
//              the closed Kind enumeration, the Token value, and keyword
//              resolution.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial token model implementation

/*
Package token defines the lexical token model of the Lingo language.

A Token pairs a Kind from the closed enumeration with the literal source
text it was built from, plus byte offset and 1-based line/column for
diagnostics. Keyword kinds are resolved from identifier literals through
LookupIdent; the match is exact and case-sensitive, so only the lowercase
reserved words (fn, let, true, false, if, else, return) leave the
Identifier class.

Kind display names (IDENT, INT, ASSIGN, ...) are stable and appear verbatim
in parser diagnostics.
*/
package token
