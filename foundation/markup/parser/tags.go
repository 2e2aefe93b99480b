// File: tags.go
// Title: HTML Tag Recognition
// Description: Tag and comment patterns and the block and opaque tag sets
//              that drive line-start scanning.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package parser

import (
	"regexp"
	"strings"
)

var (
	tagPattern     = regexp.MustCompile("^<[/!]?(\\w[\\w-]*)(\\s+\\w+(\\s*=\\s*(\"[^\"]*\"|'[^']*'|[^><\"'=`]+))?)*\\s*/?>")
	commentPattern = regexp.MustCompile(`(?s)^<!--.*?-->`)
)

// blockTags start a line-spanning blockTag token at the start of a line
var blockTags = toSet(
	"emu-note", "emu-clause", "emu-intro", "emu-annex", "emu-biblio",
	"emu-import", "emu-table", "emu-figure", "emu-example",
	"emu-see-also-para", "emu-alg", "doctype",
	"address", "article", "aside", "base", "basefont", "blockquote", "body",
	"caption", "center", "col", "colgroup", "dd", "details", "dialog", "dir",
	"div", "dl", "dt", "fieldset", "figcaption", "figure", "footer", "form",
	"frame", "frameset", "h1", "h2", "h3", "h4", "h5", "h6", "head", "header",
	"hr", "html", "legend", "li", "link", "main", "menu", "menuitem", "meta",
	"nav", "noframes", "ol", "optgroup", "option", "p", "param", "section",
	"source", "title", "summary", "table", "tbody", "td", "tfoot", "th",
	"thead", "tr", "track", "ul",
)

// opaqueTags capture everything up to their closing tag verbatim
var opaqueTags = toSet(
	"emu-grammar", "emu-production", "emu-eqn", "pre", "code", "script", "style",
)

func toSet(names ...string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return set
}

// IsBlockTag reports whether name is scanned as a block tag at line start
func IsBlockTag(name string) bool {
	return blockTags[name]
}

// IsOpaqueTag reports whether name is captured verbatim at line start
func IsOpaqueTag(name string) bool {
	return opaqueTags[name]
}

// tagMatch is a recognized tag
type tagMatch struct {
	text string // full tag text
	name string
}

func (m tagMatch) closing() bool {
	return strings.HasPrefix(m.text, "</")
}

func (m tagMatch) selfClosing() bool {
	return strings.HasSuffix(m.text, "/>")
}

// matchTag matches a tag at the start of s. Only "<" followed by "/",
// "!" or a word character is tried.
func matchTag(s string) (tagMatch, bool) {
	if len(s) < 2 || s[0] != '<' {
		return tagMatch{}, false
	}
	if c := s[1]; c != '/' && c != '!' && !isWordByte(c) {
		return tagMatch{}, false
	}
	loc := tagPattern.FindStringSubmatchIndex(s)
	if loc == nil {
		return tagMatch{}, false
	}
	return tagMatch{text: s[:loc[1]], name: s[loc[2]:loc[3]]}, true
}

// matchComment matches an HTML comment at the start of s, ending at the
// nearest "-->".
func matchComment(s string) (string, bool) {
	if !strings.HasPrefix(s, "<!--") {
		return "", false
	}
	loc := commentPattern.FindStringIndex(s)
	if loc == nil {
		return "", false
	}
	return s[:loc[1]], true
}

func isWordByte(c byte) bool {
	return c == '_' || ('0' <= c && c <= '9') || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
