// File: doc.go
// Title: Lingo Lexer Package Documentation
// Description: Documents the byte-level scanner that turns Lingo source
//              text into the token stream consumed by the parser.
// Author: msto63 with Claude Sonnet 4.0
// Version: v0.1.0
// Created: 2025-03-02
// Modified: 2025-03-02
//
// Change History:
// - 2025-03-02 v0.1.0: Initial lexer implementation

/*
Package lexer implements the lexical analysis phase of the Lingo front end.

The Lexer walks the input one byte at a time with a two-cursor state
(position / read position) and a NUL sentinel for end of input. NextToken
is pull-based and never fails: whitespace is skipped, == and != are
recognized with single-byte lookahead, identifiers and integers are scanned
with an early return (their scan loops have already advanced past the
lexeme), and every byte outside the classified ranges becomes an Illegal
token. Once the sentinel is reached, NextToken keeps returning EndOfFile
indefinitely.

Only ASCII input is supported. Multi-byte text is not interpreted; such
bytes fall into the Illegal class.
*/
package lexer
