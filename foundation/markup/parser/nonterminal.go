// File: nonterminal.go
// Title: Nonterminal Reference Recognition
// Description: Matches the contents of a pipe span against the lexical
//              shape of a grammar nonterminal reference.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"regexp"

	"github.com/msto63/ecmarkdown/foundation/markup/ast"
)

// Name, optional [params], optional _opt or ? suffix
var nonTerminalPattern = regexp.MustCompile(`^([A-Za-z0-9]+)(?:\[([^\]]+)\])?(_opt|\?)?$`)

// ParseNonTerminal parses s as a nonterminal reference such as
// "Foo[?Bar]_opt". It returns nil if s does not have that shape.
func ParseNonTerminal(s string) *ast.Pipe {
	m := nonTerminalPattern.FindStringSubmatch(s)
	if m == nil {
		return nil
	}
	return &ast.Pipe{
		NonTerminal: m[1],
		Params:      m[2],
		Optional:    m[3] != "",
	}
}
