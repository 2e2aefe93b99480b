// File: errors.go
// Title: Markup Syntax Errors
// Description: The structural error returned by the parse entry points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import "fmt"

// SyntaxError reports an unexpected token at a parse entry point.
// Offset, Line and Column are always set, with or without position
// tracking.
type SyntaxError struct {
	Message string
	Offset  int // 0-based byte offset
	Line    int // 1-based
	Column  int // 1-based, in bytes
	Token   TokenType
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("parse error at line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func (p *Parser) unexpected(tok Token, expected string) *SyntaxError {
	pos := p.t.Position(tok.Start)
	return &SyntaxError{
		Message: fmt.Sprintf("Unexpected token %s; expected %s", tok.Type, expected),
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
		Token:   tok.Type,
	}
}
