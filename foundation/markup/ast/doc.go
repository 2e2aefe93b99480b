// File: doc.go
// Title: Markup Abstract Syntax Tree Package Documentation
// Description: Defines the node model produced by the ecmarkdown parser,
//              source positions, the enter/exit tree walk and tree dumps.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST implementation

/*
Package ast defines the Abstract Syntax Tree for ecmarkdown markup.

The node set is closed: every node implements Node and reports its Kind.
Inline content is a []FragmentNode; lists hold *ListItem values whose
Sublist, when present, is a single nested list.

Nodes are built once by the parser and not modified afterwards. When
position tracking is enabled, every node carries a Location whose offsets
delimit the exact source text it was built from.

Tree walks use Visit with an Observer:

	ast.Visit(root, ast.Observer{
		Enter: func(n ast.Node) { ... },
		Exit:  func(n ast.Node) { ... },
	})
*/
package ast
