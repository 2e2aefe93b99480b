// File: parser.go
// Title: Markup Recursive Descent Parser
// Description: Builds the ecmarkdown AST from the token stream. Algorithms
//              are a single ordered list; fragments are inline content.
//              Unmatched or invalid markup degrades to literal text; the
//              only errors are unexpected tokens at the entry points.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial parser implementation

package parser

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	mdlog "github.com/msto63/ecmarkdown/foundation/core/log"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

// noFormat is passed as the closing kind when no format span is open
const noFormat = TokenEOF

// Options configures parser behavior
type Options struct {
	TrackPositions bool
	Logger         *mdlog.Logger
}

// Parser implements recursive descent parsing for ecmarkdown
type Parser struct {
	t      *Tokenizer
	track  bool
	logger *mdlog.Logger
}

// New creates a parser over src
func New(src string, opts Options) *Parser {
	if opts.Logger == nil {
		opts.Logger = mdlog.GetDefault()
	}
	return &Parser{
		t:      NewTokenizer(src, TokenizerOptions{TrackPositions: opts.TrackPositions}),
		track:  opts.TrackPositions,
		logger: opts.Logger.WithField("component", "markup-parser"),
	}
}

// ParseAlgorithm parses src as an algorithm
func ParseAlgorithm(src string, opts Options) (*ast.Algorithm, error) {
	return New(src, opts).ParseAlgorithm()
}

// ParseFragment parses src as inline content
func ParseFragment(src string, opts Options) ([]ast.FragmentNode, error) {
	return New(src, opts).ParseFragment()
}

// ParseAlgorithm parses leading blank lines followed by exactly one
// ordered list, which must reach the end of input.
func (p *Parser) ParseAlgorithm() (*ast.Algorithm, error) {
	p.logger.Debug("Starting algorithm parse", mdlog.Fields{"length": len(p.t.Source())})

	for {
		tok := p.t.Peek(1)
		if tok.Type != TokenLinebreak && tok.Type != TokenParabreak {
			break
		}
		p.t.Next()
	}

	first := p.t.Peek(1)
	if first.Type != TokenOrderedList {
		return nil, p.fail(p.unexpected(first, TokenOrderedList.String()))
	}

	list := p.parseList().(*ast.OrderedList)
	alg := &ast.Algorithm{Contents: list}
	alg.Location = p.loc(first.Start, p.prevEnd())

	if tok := p.t.Peek(1); tok.Type != TokenEOF {
		return nil, p.fail(p.unexpected(tok, TokenEOF.String()))
	}

	p.logger.Debug("Algorithm parse completed", mdlog.Fields{"items": len(list.Items)})
	return alg, nil
}

// ParseFragment parses inline content up to the end of input
func (p *Parser) ParseFragment() ([]ast.FragmentNode, error) {
	p.logger.Debug("Starting fragment parse", mdlog.Fields{"length": len(p.t.Source())})

	frag := p.parseFragment(false, noFormat)

	if tok := p.t.Peek(1); tok.Type != TokenEOF {
		return nil, p.fail(p.unexpected(tok, TokenEOF.String()))
	}

	p.logger.Debug("Fragment parse completed", mdlog.Fields{"nodes": len(frag)})
	return frag, nil
}

func (p *Parser) fail(err *SyntaxError) error {
	p.logger.Debug("Parse failed", mdlog.Fields{
		"error":  err.Message,
		"offset": err.Offset,
	})
	return err
}

// parseList parses list items while the marker kind and indent match the
// first marker.
func (p *Parser) parseList() ast.ListNode {
	first := p.t.Peek(1)
	ordered := first.Type == TokenOrderedList
	indent := stringx.LeadingBlanks(first.Contents)

	var items []*ast.ListItem
	for {
		tok := p.t.Peek(1)
		if tok.Type != first.Type || stringx.LeadingBlanks(tok.Contents) != indent {
			break
		}
		items = append(items, p.parseListItem(ordered, indent))
	}

	loc := p.loc(first.Start, p.prevEnd())
	if !ordered {
		return &ast.UnorderedList{Span: ast.Span{Location: loc}, Indent: indent, Items: items}
	}

	// out-of-range numbers clamp to the largest int
	start, _ := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(first.Contents), "."))
	return &ast.OrderedList{Span: ast.Span{Location: loc}, Indent: indent, Start: start, Items: items}
}

// parseListItem parses the marker, optional attributes, the item's inline
// content and a deeper-indented sublist if one follows.
func (p *Parser) parseListItem(ordered bool, indent int) *ast.ListItem {
	marker := p.t.Next()

	var attrs []ast.Attr
	for _, tok := range p.t.TryScanListItemAttributes() {
		attrs = append(attrs, ast.Attr{Key: tok.Key, Value: tok.Value})
	}

	contents := p.parseFragment(true, noFormat)

	var sublist ast.ListNode
	if tok := p.t.Peek(1); tok.Type.IsList() && stringx.LeadingBlanks(tok.Contents) > indent {
		sublist = p.parseList()
	}

	item := &ast.ListItem{
		Ordered:  ordered,
		Attrs:    attrs,
		Contents: contents,
		Sublist:  sublist,
	}
	item.Location = p.loc(marker.Start, p.prevEnd())
	return item
}

// parseFragment parses inline content. It stops at EOF, a paragraph
// break, the closing marker when closing is a format kind, or a list
// marker when inList is set.
func (p *Parser) parseFragment(inList bool, closing TokenType) []ast.FragmentNode {
	var frag []ast.FragmentNode

	for {
		tok := p.t.Peek(1)

		switch {
		case tok.Type == TokenEOF:
			return frag

		case tok.Type == TokenParabreak:
			// a trailing paragraph break is kept as text
			if p.t.Peek(2).Type == TokenEOF {
				p.t.Next()
				frag = appendNode(frag, p.textFromToken(tok))
			}
			return frag

		case tok.Type == TokenText, tok.Type.isSpace(), tok.Type == TokenHeader:
			if text := p.parseText(inList, closing); text != nil {
				frag = appendNode(frag, text)
			}

		case tok.Type.IsFormat():
			if closing == noFormat {
				if p.invalidAfterMarkup(tok) {
					p.t.Next()
					frag = appendNode(frag, p.textFromToken(tok))
					continue
				}
				frag = appendNodes(frag, p.parseFormat(tok.Type, inList)...)
				continue
			}
			if tok.Type == closing {
				return frag
			}
			// only one format may be open
			p.t.Next()
			frag = appendNode(frag, p.textFromToken(tok))

		case tok.Type == TokenTag, tok.Type == TokenComment, tok.Type == TokenOpaqueTag, tok.Type == TokenBlockTag:
			p.t.Next()
			frag = append(frag, p.passthrough(tok))

		case tok.Type.IsList():
			if inList {
				return frag
			}
			p.t.Next()
			frag = appendNode(frag, p.textFromToken(tok))

		default:
			panic(mderror.Internal("parser.parseFragment", "unexpected token %s at offset %d", tok.Type, tok.Start))
		}
	}
}

// parseText collects text, whitespace and tokens that cannot act as
// markup here into one text node. It returns nil if nothing was collected.
func (p *Parser) parseText(inList bool, closing TokenType) *ast.Text {
	start := p.t.Peek(1).Start
	end := start

	var b strings.Builder
	for {
		tok := p.t.Peek(1)

		var ws strings.Builder
		wsEnd := end
		for tok.Type.isSpace() {
			ws.WriteString(tok.Contents)
			wsEnd = tok.End
			p.t.Next()
			tok = p.t.Peek(1)
		}
		keepSpace := func() {
			if ws.Len() > 0 {
				b.WriteString(ws.String())
				end = wsEnd
			}
		}

		if tok.Type == TokenEOF || tok.Type == TokenParabreak || (inList && tok.Type.IsList()) {
			// trailing whitespace of a list item is dropped
			if !inList {
				keepSpace()
			}
			break
		}

		keepSpace()

		if p.endsText(tok, closing) {
			break
		}

		b.WriteString(tok.Contents)
		end = tok.End
		p.t.Next()
	}

	if b.Len() == 0 {
		return nil
	}
	return &ast.Text{
		Span:     ast.Span{Location: p.loc(start, end)},
		Contents: b.String(),
	}
}

// endsText reports whether tok ends a text run instead of joining it
func (p *Parser) endsText(tok Token, closing TokenType) bool {
	switch tok.Type {
	case TokenTag, TokenComment, TokenOpaqueTag, TokenBlockTag, TokenTick:
		return true
	}
	if !tok.Type.IsFormat() {
		return false
	}
	prev, hasPrev := p.t.Previous()
	if closing == noFormat {
		return isValidStartFormat(prev, hasPrev, p.t.Peek(2))
	}
	if tok.Type == closing {
		return isValidEndFormat(prev, hasPrev)
	}
	return false
}

// invalidAfterMarkup reports whether an opening marker that directly
// follows a comment or block tag fails the start rules. Text runs end at
// those tokens, so the check in endsText never sees the marker.
func (p *Parser) invalidAfterMarkup(tok Token) bool {
	if tok.Type == TokenTick {
		return false
	}
	prev, ok := p.t.Previous()
	if !ok || (prev.Type != TokenComment && prev.Type != TokenBlockTag) {
		return false
	}
	return !isValidStartFormat(prev, true, p.t.Peek(2))
}

// parseFormat parses a span opened by the next token. An unclosed span
// degrades to its opening marker as text followed by its contents; an
// empty span degrades to the two markers.
func (p *Parser) parseFormat(kind TokenType, inList bool) []ast.FragmentNode {
	open := p.t.Next()

	var contents []ast.FragmentNode
	if kind == TokenUnderscore {
		// variables are a single run of plain text
		if tok := p.t.Peek(1); tok.Type == TokenText {
			p.t.Next()
			contents = []ast.FragmentNode{p.textFromToken(tok)}
		}
	} else {
		contents = p.parseFragment(inList, kind)
	}

	closeTok := p.t.Peek(1)
	if closeTok.Type != kind {
		return prependText(p.textFromToken(open), contents)
	}
	p.t.Next()

	if len(contents) == 0 {
		return []ast.FragmentNode{&ast.Text{
			Span:     ast.Span{Location: p.loc(open.Start, closeTok.End)},
			Contents: open.Contents + closeTok.Contents,
		}}
	}

	span := ast.Span{Location: p.loc(open.Start, closeTok.End)}
	switch kind {
	case TokenStar:
		return []ast.FragmentNode{&ast.Star{Span: span, Contents: contents}}
	case TokenUnderscore:
		return []ast.FragmentNode{&ast.Underscore{Span: span, Contents: contents}}
	case TokenTilde:
		return []ast.FragmentNode{&ast.Tilde{Span: span, Contents: contents}}
	case TokenTick:
		return []ast.FragmentNode{&ast.Tick{Span: span, Contents: escapeTags(contents)}}
	case TokenPipe:
		if len(contents) == 1 {
			if text, ok := contents[0].(*ast.Text); ok {
				if nt := ParseNonTerminal(text.Contents); nt != nil {
					nt.Span = span
					return []ast.FragmentNode{nt}
				}
			}
		}
		out := prependText(p.textFromToken(open), contents)
		return appendNode(out, p.textFromToken(closeTok))
	}
	panic(mderror.Internal("parser.parseFormat", "unknown format %s", kind))
}

// quoteEntity spells escaped double quotes as &quot;
var quoteEntity = strings.NewReplacer("&#34;", "&quot;")

// escapeTags turns tags inside a code span into escaped text
func escapeTags(contents []ast.FragmentNode) []ast.FragmentNode {
	var out []ast.FragmentNode
	for _, n := range contents {
		if tag, ok := n.(*ast.Tag); ok {
			n = &ast.Text{Span: tag.Span, Contents: quoteEntity.Replace(html.EscapeString(tag.Contents))}
		}
		out = appendNode(out, n)
	}
	return out
}

func (p *Parser) textFromToken(tok Token) *ast.Text {
	return &ast.Text{
		Span:     ast.Span{Location: p.loc(tok.Start, tok.End)},
		Contents: tok.Contents,
	}
}

func (p *Parser) passthrough(tok Token) ast.FragmentNode {
	span := ast.Span{Location: p.loc(tok.Start, tok.End)}
	switch tok.Type {
	case TokenTag:
		return &ast.Tag{Span: span, Contents: tok.Contents}
	case TokenComment:
		return &ast.Comment{Span: span, Contents: tok.Contents}
	case TokenOpaqueTag:
		return &ast.OpaqueTag{Span: span, Contents: tok.Contents}
	case TokenBlockTag:
		return &ast.BlockTag{Span: span, Contents: tok.Contents}
	}
	panic(mderror.Internal("parser.passthrough", "token %s is not markup", tok.Type))
}

func (p *Parser) loc(start, end int) *ast.Location {
	if !p.track {
		return nil
	}
	return &ast.Location{
		Start: p.t.Position(start),
		End:   p.t.Position(end),
	}
}

func (p *Parser) prevEnd() int {
	if prev, ok := p.t.Previous(); ok {
		return prev.End
	}
	return 0
}

// isValidStartFormat: a format opens only after a non-word character and
// before a non-space token. Tick is handled by the caller.
func isValidStartFormat(prev Token, hasPrev bool, next Token) bool {
	if hasPrev && isWordByte(prev.lastByte()) {
		return false
	}
	return !next.Type.isSpace()
}

// isValidEndFormat: a format closes only after a non-space token
func isValidEndFormat(prev Token, hasPrev bool) bool {
	return !hasPrev || !prev.Type.isSpace()
}
