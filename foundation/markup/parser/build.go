// File: build.go
// Title: Fragment Builder
// Description: Appends nodes to fragment sequences while keeping adjacent
//              text joined.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import "github.com/msto63/ecmarkdown/foundation/markup/ast"

// appendNode appends node to frag. Text following text is joined into a
// new node that replaces the last element; attached nodes are never
// modified.
func appendNode(frag []ast.FragmentNode, node ast.FragmentNode) []ast.FragmentNode {
	if text, ok := node.(*ast.Text); ok && len(frag) > 0 {
		if last, ok := frag[len(frag)-1].(*ast.Text); ok {
			frag[len(frag)-1] = joinText(last, text)
			return frag
		}
	}
	return append(frag, node)
}

func appendNodes(frag []ast.FragmentNode, nodes ...ast.FragmentNode) []ast.FragmentNode {
	for _, n := range nodes {
		frag = appendNode(frag, n)
	}
	return frag
}

// prependText puts text in front of frag, joining it with a leading text node
func prependText(text *ast.Text, frag []ast.FragmentNode) []ast.FragmentNode {
	out := make([]ast.FragmentNode, 0, len(frag)+1)
	if len(frag) > 0 {
		if first, ok := frag[0].(*ast.Text); ok {
			out = append(out, joinText(text, first))
			return append(out, frag[1:]...)
		}
	}
	out = append(out, text)
	return append(out, frag...)
}

// joinText returns a new node covering a followed by b
func joinText(a, b *ast.Text) *ast.Text {
	joined := &ast.Text{Contents: a.Contents + b.Contents}
	if a.Location != nil && b.Location != nil {
		joined.Location = &ast.Location{Start: a.Location.Start, End: b.Location.End}
	}
	return joined
}
