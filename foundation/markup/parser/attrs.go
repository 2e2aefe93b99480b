// File: attrs.go
// Title: List Item Attribute Scanning
// Description: Scans the optional [key="value", ...] attribute list that
//              may follow a list marker.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"strings"

	"github.com/msto63/ecmarkdown/foundation/utils/stringx"
)

// TryScanListItemAttributes scans an attribute list at the current source
// position, directly after a consumed list marker:
//
//	[id="step-1", class="note"] text
//
// The closing bracket must be followed by a blank (which is consumed), a
// newline or the end of input. On success it returns one attr token per
// pair. On any deviation nothing is consumed and nil is returned.
func (t *Tokenizer) TryScanListItemAttributes() []Token {
	if len(t.queue) > 0 || len(t.lookahead) > 0 || t.newline {
		return nil
	}

	src := t.src
	pos := t.pos
	if pos >= len(src) || src[pos] != '[' {
		return nil
	}
	groupStart := pos
	pos++

	var attrs []Token
	for {
		pos = skipBlanks(src, pos)

		keyStart := pos
		for pos < len(src) && isKeyByte(src[pos]) {
			pos++
		}
		if pos == keyStart {
			return nil
		}
		key := src[keyStart:pos]

		pos = skipBlanks(src, pos)
		if pos >= len(src) || src[pos] != '=' {
			return nil
		}
		pos = skipBlanks(src, pos+1)

		value, next, ok := scanQuoted(src, pos)
		if !ok {
			return nil
		}
		pos = next
		attrs = append(attrs, Token{
			Type:     TokenAttr,
			Contents: src[keyStart:pos],
			Start:    keyStart,
			End:      pos,
			Key:      key,
			Value:    value,
		})

		pos = skipBlanks(src, pos)
		if pos >= len(src) {
			return nil
		}
		if src[pos] == ',' {
			pos++
			continue
		}
		if src[pos] == ']' {
			pos++
			break
		}
		return nil
	}

	switch {
	case pos >= len(src), src[pos] == '\n':
	case stringx.IsBlankByte(src[pos]):
		pos++
	default:
		return nil
	}

	for i := range attrs {
		t.locate(&attrs[i])
	}
	group := Token{Type: TokenAttr, Contents: src[groupStart:pos], Start: groupStart, End: pos}
	t.locate(&group)
	t.previous = group
	t.hasPrevious = true
	t.pos = pos
	return attrs
}

// scanQuoted scans a double-quoted value starting at pos. \" and \\ are
// the only escapes; a newline ends the attempt.
func scanQuoted(src string, pos int) (string, int, bool) {
	if pos >= len(src) || src[pos] != '"' {
		return "", pos, false
	}
	pos++

	var b strings.Builder
	for pos < len(src) {
		c := src[pos]
		switch c {
		case '"':
			return b.String(), pos + 1, true
		case '\n':
			return "", pos, false
		case '\\':
			if pos+1 < len(src) && (src[pos+1] == '"' || src[pos+1] == '\\') {
				b.WriteByte(src[pos+1])
				pos += 2
				continue
			}
		}
		b.WriteByte(c)
		pos++
	}
	return "", pos, false
}

func skipBlanks(src string, pos int) int {
	for pos < len(src) && stringx.IsBlankByte(src[pos]) {
		pos++
	}
	return pos
}

func isKeyByte(c byte) bool {
	return c == '-' || isWordByte(c)
}
