// File: lexer.go
// Title: Markup Lexical Analyzer (Tokenizer)
// Description: Converts ecmarkdown source into a lazily produced stream of
//              tokens with lookahead. Line starts are scanned for list
//              markers, headers and block or opaque tags before the general
//              character scanner runs.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial tokenizer implementation

package parser

import (
	"sort"
	"strings"
	"unicode/utf8"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
	"github.com/msto63/ecmarkdown/foundation/markup/ast"
	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

// TokenizerOptions configures the tokenizer
type TokenizerOptions struct {
	TrackPositions bool
}

// Tokenizer produces tokens on demand. Tokens scanned by Peek are kept in
// a queue so repeated lookahead never rescans the source.
type Tokenizer struct {
	src   string
	pos   int
	track bool

	eof     bool
	newline bool // at the start of a line

	queue     []Token // ready tokens
	lookahead []Token // staged behind the token being scanned

	previous    Token
	hasPrevious bool

	lineStarts []int
}

// NewTokenizer creates a tokenizer over src
func NewTokenizer(src string, opts TokenizerOptions) *Tokenizer {
	lineStarts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			lineStarts = append(lineStarts, i+1)
		}
	}
	return &Tokenizer{
		src:        src,
		track:      opts.TrackPositions,
		newline:    true,
		lineStarts: lineStarts,
	}
}

// Source returns the text being tokenized
func (t *Tokenizer) Source() string {
	return t.src
}

// Position converts a byte offset into a line/column position
func (t *Tokenizer) Position(offset int) ast.Position {
	line := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	})
	return ast.Position{
		Line:   line,
		Column: offset - t.lineStarts[line-1] + 1,
		Offset: offset,
	}
}

// Peek returns the token dist positions ahead (1 is the next token)
// without consuming it. Past the end it returns EOF.
func (t *Tokenizer) Peek(dist int) Token {
	if dist < 1 {
		dist = 1
	}
	for !t.eof && len(t.queue) < dist {
		t.matchToken()
	}
	if len(t.queue) < dist {
		return t.queue[len(t.queue)-1]
	}
	return t.queue[dist-1]
}

// Next consumes and returns the next token. EOF is never consumed.
func (t *Tokenizer) Next() Token {
	tok := t.Peek(1)
	t.previous = tok
	t.hasPrevious = true
	if tok.Type != TokenEOF {
		t.queue = t.queue[1:]
	}
	return tok
}

// Previous returns the last token returned by Next
func (t *Tokenizer) Previous() (Token, bool) {
	return t.previous, t.hasPrevious
}

// All drains the tokenizer and returns every token including EOF
func (t *Tokenizer) All() []Token {
	var out []Token
	for {
		tok := t.Next()
		out = append(out, tok)
		if tok.Type == TokenEOF {
			return out
		}
	}
}

func (t *Tokenizer) matchToken() {
	src := t.src

	if t.pos >= len(src) {
		t.eof = true
		t.enqueue(Token{Type: TokenEOF, Start: t.pos, End: t.pos})
		return
	}

	if t.newline {
		t.newline = false
		if t.matchLineStart() {
			return
		}
	}

	start := t.pos
	c := src[t.pos]

	switch {
	case c == '*':
		t.single(TokenStar)
	case c == '_':
		t.single(TokenUnderscore)
	case c == '`':
		t.single(TokenTick)
	case c == '|':
		t.single(TokenPipe)
	case c == '~':
		t.single(TokenTilde)
	case c == '\n':
		t.newline = true
		for t.pos < len(src) && src[t.pos] == '\n' {
			t.pos++
		}
		typ := TokenLinebreak
		if t.pos-start > 1 {
			typ = TokenParabreak
		}
		t.enqueue(Token{Type: typ, Contents: src[start:t.pos], Start: start, End: t.pos})
	case stringx.IsBlankByte(c):
		ws := t.scanWhitespace()
		t.enqueue(Token{Type: TokenWhitespace, Contents: ws, Start: start, End: t.pos})
	case isChars(c):
		t.enqueueText(start, "")
	case c == '<':
		if strings.HasPrefix(src[t.pos:], "<!--") {
			if comment, ok := matchComment(src[t.pos:]); ok {
				t.pos += len(comment)
				t.enqueue(Token{Type: TokenComment, Contents: comment, Start: start, End: t.pos})
				return
			}
		} else if tag, ok := matchTag(src[t.pos:]); ok {
			t.pos += len(tag.text)
			t.enqueue(Token{Type: TokenTag, Contents: tag.text, Start: start, End: t.pos})
			return
		}
		t.enqueueText(start, "")
	default:
		panic(mderror.Internal("parser.Tokenizer", "unexpected character %q at offset %d", c, t.pos))
	}
}

// matchLineStart scans the constructs recognized only at the start of a
// line. It reports whether it enqueued anything.
func (t *Tokenizer) matchLineStart() bool {
	src := t.src
	wsStart := t.pos
	ws := t.scanWhitespace()
	start := t.pos

	if t.pos >= len(src) {
		t.enqueue(Token{Type: TokenWhitespace, Contents: ws, Start: wsStart, End: t.pos})
		return true
	}

	switch c := src[t.pos]; {
	case isDigit(c):
		for t.pos < len(src) && isDigit(src[t.pos]) {
			t.pos++
		}
		if strings.HasPrefix(src[t.pos:], ". ") {
			t.pos += 2
			t.enqueue(Token{Type: TokenOrderedList, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
			return true
		}
		t.enqueueWhitespace(ws, wsStart)
		t.enqueueText(start, src[start:t.pos])
		return true

	case strings.HasPrefix(src[t.pos:], "* "):
		t.pos += 2
		t.enqueue(Token{Type: TokenUnorderedList, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
		return true

	case c == '<':
		if tag, ok := matchTag(src[t.pos:]); ok {
			t.pos += len(tag.text)
			switch {
			case IsBlockTag(tag.name):
				t.scanToEOL()
				t.enqueue(Token{Type: TokenBlockTag, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
				t.newline = true
			case IsOpaqueTag(tag.name) && !tag.closing() && !tag.selfClosing():
				t.scanToEndTag(tag.name)
				t.enqueue(Token{Type: TokenOpaqueTag, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
			default:
				t.enqueueWhitespace(ws, wsStart)
				t.enqueue(Token{Type: TokenTag, Contents: tag.text, Start: start, End: t.pos})
			}
			return true
		}
		if comment, ok := matchComment(src[t.pos:]); ok {
			t.pos += len(comment)
			t.scanToEOL()
			t.enqueue(Token{Type: TokenBlockTag, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
			t.newline = true
			return true
		}

	case c == '#':
		for t.pos < len(src) && src[t.pos] == '#' {
			t.pos++
		}
		level := t.pos - start
		if level <= 6 && t.pos < len(src) && stringx.IsBlankByte(src[t.pos]) {
			t.scanWhitespace()
			t.enqueue(Token{Type: TokenHeader, Level: level, Contents: src[wsStart:t.pos], Start: wsStart, End: t.pos})
			return true
		}
		// not a header: rescan the run as ordinary text
		t.pos = start
	}

	if ws != "" {
		t.enqueueWhitespace(ws, wsStart)
		return true
	}
	return false
}

func (t *Tokenizer) single(typ TokenType) {
	start := t.pos
	t.pos++
	t.enqueue(Token{Type: typ, Contents: t.src[start:t.pos], Start: start, End: t.pos})
}

func (t *Tokenizer) enqueueWhitespace(ws string, start int) {
	if ws != "" {
		t.enqueue(Token{Type: TokenWhitespace, Contents: ws, Start: start, End: start + len(ws)})
	}
}

// enqueueText scans a text run starting at t.pos and enqueues it with
// prefix prepended. A tag or comment ending the run follows it.
func (t *Tokenizer) enqueueText(start int, prefix string) {
	chars, end := t.scanChars()
	t.enqueue(Token{Type: TokenText, Contents: prefix + chars, Start: start, End: end})
}

func (t *Tokenizer) scanWhitespace() string {
	start := t.pos
	for t.pos < len(t.src) && stringx.IsBlankByte(t.src[t.pos]) {
		t.pos++
	}
	return t.src[start:t.pos]
}

// scanChars consumes plain characters, escapes and "<" that open nothing.
// A "<" opening a tag or comment ends the run; that token is staged in the
// lookahead. It returns the text and the offset where the run ends.
func (t *Tokenizer) scanChars() (string, int) {
	src := t.src
	var b strings.Builder

	for t.pos < len(src) {
		c := src[t.pos]
		switch {
		case c == '\\':
			b.WriteString(t.scanEscape())
		case isChars(c):
			b.WriteByte(c)
			t.pos++
		case c == '<':
			start := t.pos
			if tag, ok := matchTag(src[t.pos:]); ok {
				t.pos += len(tag.text)
				t.stage(Token{Type: TokenTag, Contents: tag.text, Start: start, End: t.pos})
				return b.String(), start
			}
			if comment, ok := matchComment(src[t.pos:]); ok {
				t.pos += len(comment)
				t.stage(Token{Type: TokenComment, Contents: comment, Start: start, End: t.pos})
				return b.String(), start
			}
			b.WriteByte(c)
			t.pos++
		default:
			return b.String(), t.pos
		}
	}
	return b.String(), t.pos
}

// scanEscape consumes a backslash and the character after it. Format
// characters and backslash lose the backslash; anything else, a newline
// included, is kept with it.
func (t *Tokenizer) scanEscape() string {
	t.pos++
	if t.pos >= len(t.src) {
		return "\\"
	}
	c := t.src[t.pos]
	if isFormat(c) || c == '\\' {
		t.pos++
		return string(c)
	}
	_, size := utf8.DecodeRuneInString(t.src[t.pos:])
	t.pos += size
	return t.src[t.pos-size-1 : t.pos]
}

// scanToEOL consumes the rest of the line including its newline
func (t *Tokenizer) scanToEOL() {
	if i := strings.IndexByte(t.src[t.pos:], '\n'); i >= 0 {
		t.pos += i + 1
		return
	}
	t.pos = len(t.src)
}

// scanToEndTag consumes up to and including the closing tag for name, or
// to the end of input
func (t *Tokenizer) scanToEndTag(name string) {
	for t.pos < len(t.src) {
		if tag, ok := matchTag(t.src[t.pos:]); ok {
			t.pos += len(tag.text)
			if tag.name == name && tag.closing() {
				return
			}
			continue
		}
		t.pos++
	}
}

func (t *Tokenizer) stage(tok Token) {
	t.locate(&tok)
	t.lookahead = append(t.lookahead, tok)
}

// enqueue appends tok to the queue followed by any staged tokens
func (t *Tokenizer) enqueue(tok Token) {
	t.locate(&tok)
	t.queue = append(t.queue, tok)
	if len(t.lookahead) > 0 {
		t.queue = append(t.queue, t.lookahead...)
		t.lookahead = t.lookahead[:0]
	}
}

func (t *Tokenizer) locate(tok *Token) {
	if t.track {
		tok.Location = &ast.Location{
			Start: t.Position(tok.Start),
			End:   t.Position(tok.End),
		}
	}
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isFormat(c byte) bool {
	switch c {
	case '*', '_', '`', '<', '|', '~':
		return true
	}
	return false
}

func isChars(c byte) bool {
	return !isFormat(c) && c != '\n' && !stringx.IsBlankByte(c)
}
