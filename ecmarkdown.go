// File: ecmarkdown.go
// Title: ecmarkdown Public API
// Description: Parses and renders ecmarkdown algorithms and fragments.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial public API

package ecmarkdown

import (
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/markup/emitter"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
)

type (
	// Node is any node of a parsed tree
	Node = ast.Node
	// FragmentNode is a node of inline content
	FragmentNode = ast.FragmentNode
	// Observer receives Visit callbacks
	Observer = ast.Observer
	// SyntaxError is returned when input cannot be parsed
	SyntaxError = parser.SyntaxError
)

// Options configures parsing and rendering
type Options struct {
	// TrackPositions records source locations on every node
	TrackPositions bool
	// Reindent strips list indentation from continuation lines on output
	Reindent bool
	// Logger receives parser debug output; the default logger if nil
	Logger *mdlog.Logger
}

func options(opts []Options) Options {
	if len(opts) == 0 {
		return Options{}
	}
	return opts[0]
}

func (o Options) parser() parser.Options {
	return parser.Options{TrackPositions: o.TrackPositions, Logger: o.Logger}
}

// ParseFragment parses inline content
func ParseFragment(src string, opts ...Options) ([]FragmentNode, error) {
	return parser.ParseFragment(src, options(opts).parser())
}

// ParseAlgorithm parses an algorithm: one ordered list of steps
func ParseAlgorithm(src string, opts ...Options) (*ast.Algorithm, error) {
	return parser.ParseAlgorithm(src, options(opts).parser())
}

// Emit renders a node as HTML
func Emit(node Node) string {
	return emitter.Emit(node)
}

// EmitFragment renders inline content as HTML
func EmitFragment(nodes []FragmentNode) string {
	return emitter.EmitFragment(nodes)
}

// Visit walks node depth-first
func Visit(node Node, obs Observer) {
	ast.Visit(node, obs)
}

// Fragment parses and renders inline content
func Fragment(src string, opts ...Options) (string, error) {
	o := options(opts)
	frag, err := ParseFragment(src, o)
	if err != nil {
		return "", err
	}
	return emitter.New(emitter.Options{Reindent: o.Reindent}).EmitFragment(frag), nil
}

// Algorithm parses and renders an algorithm
func Algorithm(src string, opts ...Options) (string, error) {
	o := options(opts)
	alg, err := ParseAlgorithm(src, o)
	if err != nil {
		return "", err
	}
	return emitter.New(emitter.Options{Reindent: o.Reindent}).Emit(alg), nil
}
