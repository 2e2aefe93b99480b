// File: doc.go
// Title: ecmarkdown Package Documentation
// Description: Public entry points for parsing and rendering ecmarkdown.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial public API

/*
Package ecmarkdown converts ecmarkdown, the lightweight markup used in
the algorithm steps of language standards documents, into HTML.

Algorithms are ordered lists of steps:

	html, err := ecmarkdown.Algorithm("1. Let _x_ be *true*.\n1. Return _x_.")
	// <emu-alg><ol><li>Let <var>x</var> be <emu-val>true</emu-val>.</li>...

Fragments are inline content:

	html, err := ecmarkdown.Fragment("Returns |Expression[In]_opt|.")
	// Returns <emu-nt params="In" optional>Expression</emu-nt>.

The two steps can be run separately to inspect or walk the tree:

	alg, err := ecmarkdown.ParseAlgorithm(src, ecmarkdown.Options{TrackPositions: true})
	ecmarkdown.Visit(alg, ecmarkdown.Observer{Enter: func(n ecmarkdown.Node) { ... }})
	out := ecmarkdown.Emit(alg)

Malformed markup never fails: unmatched or empty formats and invalid
nonterminals are kept as text. Parsing fails only when input remains that
the entry point cannot take, such as a paragraph break inside an algorithm.
Such failures are returned as *SyntaxError.

All functions are safe for concurrent use.
*/
package ecmarkdown
