// File: emitter_test.go
// Title: Markup Emitter Unit Tests
// Description: Tests HTML rendering of every node kind, list attributes,
//              reindenting and the structure of emitted documents.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package emitter

import (
	"strings"
	"testing"

	"github.com/andybalholm/cascadia"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/markup/parser"
)

var quiet = parser.Options{Logger: mdlog.Discard()}

func fragment(t *testing.T, src string) []ast.FragmentNode {
	t.Helper()
	frag, err := parser.ParseFragment(src, quiet)
	require.NoError(t, err)
	return frag
}

func algorithm(t *testing.T, src string) *ast.Algorithm {
	t.Helper()
	alg, err := parser.ParseAlgorithm(src, quiet)
	require.NoError(t, err)
	return alg
}

func TestEmitFragment(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Text", "Let x be 1.", "Let x be 1."},
		{"Star", "*true*", "<emu-val>true</emu-val>"},
		{"Underscore", "_x_", "<var>x</var>"},
		{"Tick", "`a`", "<code>a</code>"},
		{"Tilde", "~empty~", "<emu-const>empty</emu-const>"},
		{"Nonterminal", "|Foo|", "<emu-nt>Foo</emu-nt>"},
		{"Nonterminal with params", "|Foo[?Bar]_opt|", `<emu-nt params="?Bar" optional>Foo</emu-nt>`},
		{"Optional nonterminal", "|Foo?|", "<emu-nt optional>Foo</emu-nt>"},
		{"Invalid nonterminal", "|1bad nt|", "|1bad nt|"},
		{"Tags verbatim", "a <b>x</b>", "a <b>x</b>"},
		{"Comment verbatim", "a <!-- c -->", "a <!-- c -->"},
		{"Opaque tag verbatim", "<pre>*x*</pre>", "<pre>*x*</pre>"},
		{"Escaped tag in code", "`<b>`", "<code>&lt;b&gt;</code>"},
		{"Degraded underscore", "x _", "x _"},
		{"Mixed", "Let _x_ be *true* or `null`.", "Let <var>x</var> be <emu-val>true</emu-val> or <code>null</code>."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EmitFragment(fragment(t, tt.input)))
		})
	}
}

func TestEmit_Algorithm(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Two steps",
			input:    "1. a\n2. b",
			expected: "<emu-alg><ol><li>a</li><li>b</li></ol></emu-alg>",
		},
		{
			name:     "Start number",
			input:    "4. a",
			expected: `<emu-alg><ol start="4"><li>a</li></ol></emu-alg>`,
		},
		{
			name:     "Nested list",
			input:    "1. a\n  * b\n1. c",
			expected: "<emu-alg><ol><li>a<ul><li>b</li></ul></li><li>c</li></ol></emu-alg>",
		},
		{
			name:     "Item attributes",
			input:    `1. [id="step", data-x="a<b"] Return _x_.`,
			expected: `<emu-alg><ol><li id="step" data-x="a&lt;b">Return <var>x</var>.</li></ol></emu-alg>`,
		},
		{
			name:     "Multiline item",
			input:    "1. a\n   b",
			expected: "<emu-alg><ol><li>a\n   b</li></ol></emu-alg>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Emit(algorithm(t, tt.input)))
		})
	}
}

func TestEmit_Reindent(t *testing.T) {
	alg := algorithm(t, "1. a\n  * b\n      c\n1. d\n   e")

	plain := Emit(alg)
	assert.Equal(t, "<emu-alg><ol><li>a<ul><li>b\n      c</li></ul></li><li>d\n   e</li></ol></emu-alg>", plain)

	e := New(Options{Reindent: true})
	assert.Equal(t, "<emu-alg><ol><li>a<ul><li>b\n    c</li></ul></li><li>d\n   e</li></ol></emu-alg>", e.Emit(alg))

	// the emitter is reusable and keeps its matchers
	assert.Equal(t, e.Emit(alg), e.Emit(alg))
	assert.Len(t, e.strip.byWidth, 1)
}

func TestEmit_ListNodes(t *testing.T) {
	alg := algorithm(t, "1. a\n  * b")
	item := alg.Contents.Items[0]

	assert.Equal(t, "<li>a<ul><li>b</li></ul></li>", Emit(item))
	assert.Equal(t, "<ul><li>b</li></ul>", Emit(item.Sublist))
	assert.Equal(t, "<ol><li>a<ul><li>b</li></ul></li></ol>", Emit(alg.Contents))
}

func TestEmit_PipeNode(t *testing.T) {
	assert.Equal(t, `<emu-nt params="In">Expr</emu-nt>`, Emit(&ast.Pipe{NonTerminal: "Expr", Params: "In"}))
}

type foreignNode struct{ ast.Span }

func (foreignNode) Kind() ast.Kind { return ast.Kind(-1) }

func TestEmit_UnknownNodePanics(t *testing.T) {
	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, mderror.HasCode(err, mderror.CodeInternal))
	}()
	Emit(&foreignNode{})
}

func TestEmit_DocumentStructure(t *testing.T) {
	src := strings.Join([]string{
		`1. [id="s1"] Let _result_ be *true*.`,
		"1. For each |Element| _e_, do",
		"  1. If `e` is ~empty~, return.",
		"1. Return _result_.",
	}, "\n")

	doc, err := html.Parse(strings.NewReader(Emit(algorithm(t, src))))
	require.NoError(t, err)

	steps := cascadia.MustCompile("emu-alg > ol > li").MatchAll(doc)
	assert.Len(t, steps, 3)

	first := cascadia.MustCompile("li#s1").MatchFirst(doc)
	require.NotNil(t, first)

	nested := cascadia.MustCompile("emu-alg > ol > li > ol > li").MatchAll(doc)
	require.Len(t, nested, 1)

	vars := cascadia.MustCompile("var").MatchAll(doc)
	assert.Len(t, vars, 3)
	assert.Equal(t, "result", vars[0].FirstChild.Data)

	nts := cascadia.MustCompile("emu-nt").MatchAll(doc)
	require.Len(t, nts, 1)
	assert.Equal(t, "Element", nts[0].FirstChild.Data)

	assert.Len(t, cascadia.MustCompile("code").MatchAll(doc), 1)
	assert.Len(t, cascadia.MustCompile("emu-const").MatchAll(doc), 1)
	assert.Len(t, cascadia.MustCompile("emu-val").MatchAll(doc), 1)
}
