// File: emitter.go
// Title: Markup HTML Emitter
// Description: Renders ecmarkdown nodes to HTML by structural recursion.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial emitter implementation

package emitter

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
)

// Options configures rendering
type Options struct {
	Reindent bool
}

// Emitter renders nodes to HTML. An Emitter may be reused but not shared
// between goroutines.
type Emitter struct {
	opts   Options
	b      strings.Builder
	indent int // indent of the innermost list being rendered

	strip *stripCache
}

// New creates an emitter
func New(opts Options) *Emitter {
	e := &Emitter{opts: opts}
	if opts.Reindent {
		e.strip = newStripCache()
	}
	return e
}

// Emit renders a node with the default options
func Emit(node ast.Node) string {
	return New(Options{}).Emit(node)
}

// EmitFragment renders a fragment with the default options
func EmitFragment(frag []ast.FragmentNode) string {
	return New(Options{}).EmitFragment(frag)
}

// Emit renders node and returns the HTML
func (e *Emitter) Emit(node ast.Node) string {
	e.reset()
	e.emitNode(node)
	return e.b.String()
}

// EmitFragment renders every node of frag in order
func (e *Emitter) EmitFragment(frag []ast.FragmentNode) string {
	e.reset()
	e.emitFragment(frag)
	return e.b.String()
}

func (e *Emitter) reset() {
	e.b.Reset()
	e.indent = 0
}

func (e *Emitter) emitNode(node ast.Node) {
	switch n := node.(type) {
	case *ast.Algorithm:
		e.b.WriteString("<emu-alg>")
		if n.Contents != nil {
			e.emitOrderedList(n.Contents)
		}
		e.b.WriteString("</emu-alg>")
	case *ast.OrderedList:
		e.emitOrderedList(n)
	case *ast.UnorderedList:
		e.emitUnorderedList(n)
	case *ast.ListItem:
		e.emitListItem(n)
	case *ast.Text:
		e.emitText(n.Contents)
	case *ast.Star:
		e.wrap("emu-val", n.Contents)
	case *ast.Underscore:
		e.wrap("var", n.Contents)
	case *ast.Tick:
		e.wrap("code", n.Contents)
	case *ast.Tilde:
		e.wrap("emu-const", n.Contents)
	case *ast.Pipe:
		e.emitPipe(n)
	case *ast.Tag:
		e.b.WriteString(n.Contents)
	case *ast.Comment:
		e.b.WriteString(n.Contents)
	case *ast.OpaqueTag:
		e.b.WriteString(n.Contents)
	case *ast.BlockTag:
		e.b.WriteString(n.Contents)
	default:
		panic(mderror.Internal("emitter.Emit", "cannot emit node of kind %s", node.Kind()))
	}
}

func (e *Emitter) emitOrderedList(ol *ast.OrderedList) {
	e.b.WriteString("<ol")
	if ol.Start != 1 {
		e.b.WriteString(` start="`)
		e.b.WriteString(strconv.Itoa(ol.Start))
		e.b.WriteString(`"`)
	}
	e.b.WriteString(">")
	e.emitItems(ol)
	e.b.WriteString("</ol>")
}

func (e *Emitter) emitUnorderedList(ul *ast.UnorderedList) {
	e.b.WriteString("<ul>")
	e.emitItems(ul)
	e.b.WriteString("</ul>")
}

func (e *Emitter) emitItems(list ast.ListNode) {
	outer := e.indent
	e.indent = list.ListIndent()
	for _, item := range list.ListItems() {
		e.emitListItem(item)
	}
	e.indent = outer
}

func (e *Emitter) emitListItem(li *ast.ListItem) {
	e.b.WriteString("<li")
	for _, attr := range li.Attrs {
		e.b.WriteString(" ")
		e.b.WriteString(attr.Key)
		e.b.WriteString(`="`)
		e.b.WriteString(html.EscapeString(attr.Value))
		e.b.WriteString(`"`)
	}
	e.b.WriteString(">")
	e.emitFragment(li.Contents)
	if li.Sublist != nil {
		e.emitNode(li.Sublist)
	}
	e.b.WriteString("</li>")
}

func (e *Emitter) emitPipe(p *ast.Pipe) {
	e.b.WriteString("<emu-nt")
	if p.Params != "" {
		e.b.WriteString(` params="`)
		e.b.WriteString(p.Params)
		e.b.WriteString(`"`)
	}
	if p.Optional {
		e.b.WriteString(" optional")
	}
	e.b.WriteString(">")
	e.b.WriteString(p.NonTerminal)
	e.b.WriteString("</emu-nt>")
}

func (e *Emitter) emitText(s string) {
	if e.strip != nil && e.indent > 0 {
		s = e.strip.get(e.indent).ReplaceAllString(s, "\n")
	}
	e.b.WriteString(s)
}

func (e *Emitter) wrap(tag string, frag []ast.FragmentNode) {
	e.b.WriteString("<")
	e.b.WriteString(tag)
	e.b.WriteString(">")
	e.emitFragment(frag)
	e.b.WriteString("</")
	e.b.WriteString(tag)
	e.b.WriteString(">")
}

func (e *Emitter) emitFragment(frag []ast.FragmentNode) {
	for _, n := range frag {
		e.emitNode(n)
	}
}
