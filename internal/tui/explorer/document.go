// ============================================================================
// ecmarkdown - Markup Rendering Toolkit
// ============================================================================
//
// Package:     explorer
// Description: Analysis of one source into the views the explorer shows
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package explorer

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
	"github.com/msto63/ecmarkdown/internal/render"
)

// Document is everything the explorer knows about one source
type Document struct {
	Name         string
	Source       string
	HTML         string
	Tree         string
	Tokens       []parser.Token
	Positions    []string // "line:column" per token
	NonTerminals []string
	Cached       bool

	// Err is the syntax error of the source, if any. Tokens are
	// available even when parsing failed.
	Err *parser.SyntaxError
}

// Analyze tokenizes, parses and renders src. Only failures other than
// syntax errors are returned as error.
func Analyze(ctx context.Context, svc *render.Service, name, src string) (*Document, error) {
	doc := &Document{Name: name, Source: src}

	t := parser.NewTokenizer(src, parser.TokenizerOptions{TrackPositions: true})
	for {
		tok := t.Next()
		pos := t.Position(tok.Start)
		doc.Tokens = append(doc.Tokens, tok)
		doc.Positions = append(doc.Positions, strconv.Itoa(pos.Line)+":"+strconv.Itoa(pos.Column))
		if tok.Type == parser.TokenEOF {
			break
		}
	}

	cfg := svc.Config()
	opts := parser.Options{TrackPositions: cfg.TrackPositions, Logger: mdlog.Discard()}

	var tree interface{}
	var err error
	if cfg.Mode == render.ModeFragment {
		var frag []ast.FragmentNode
		frag, err = parser.ParseFragment(src, opts)
		if err == nil {
			tree = ast.FragmentToMaps(frag)
			doc.NonTerminals = fragmentNonTerminals(frag)
		}
	} else {
		var alg *ast.Algorithm
		alg, err = parser.ParseAlgorithm(src, opts)
		if err == nil {
			tree = ast.ToMap(alg)
			doc.NonTerminals = ast.NonTerminals(alg)
		}
	}
	if err != nil {
		if errors.As(err, &doc.Err) {
			return doc, nil
		}
		return nil, err
	}

	out, err := yaml.Marshal(tree)
	if err != nil {
		return nil, mderror.Wrap(err, "failed to encode tree").
			WithCode(mderror.CodeInternal).
			WithOperation("explorer.Analyze")
	}
	doc.Tree = string(out)

	res, err := svc.Render(ctx, render.Request{Name: name, Source: src})
	if err != nil {
		return nil, err
	}
	doc.HTML = res.HTML
	doc.Cached = res.Cached
	return doc, nil
}

func fragmentNonTerminals(frag []ast.FragmentNode) []string {
	seen := make(map[string]bool)
	var names []string
	for _, n := range frag {
		for _, nt := range ast.NonTerminals(n) {
			if !seen[nt] {
				seen[nt] = true
				names = append(names, nt)
			}
		}
	}
	return names
}

// sourceLine returns line n (1-based) of src without its line ending
func sourceLine(src string, n int) (string, bool) {
	lines := strings.Split(src, "\n")
	if n < 1 || n > len(lines) {
		return "", false
	}
	return strings.TrimSuffix(lines[n-1], "\r"), true
}
