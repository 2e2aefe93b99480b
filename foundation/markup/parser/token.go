// File: token.go
// Title: Markup Token Definitions
// Description: Token types produced by the ecmarkdown tokenizer.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial token definitions

package parser

import (
	"fmt"

	"github.com/msto63/ecmarkdown/foundation/markup/ast"
)

// TokenType represents the type of a lexical token
type TokenType int

const (
	TokenEOF TokenType = iota

	// Format markers
	TokenStar       // *
	TokenUnderscore // _
	TokenTick       // `
	TokenPipe       // |
	TokenTilde      // ~

	// Text and whitespace
	TokenText
	TokenWhitespace // run of spaces and tabs
	TokenLinebreak  // single \n
	TokenParabreak  // run of two or more \n

	// Line-start constructs
	TokenOrderedList   // "1. " with leading whitespace
	TokenUnorderedList // "* " with leading whitespace
	TokenHeader        // "# " .. "###### "

	// Markup
	TokenTag
	TokenComment
	TokenBlockTag
	TokenOpaqueTag

	// List item attribute key="value"
	TokenAttr
)

var tokenNames = [...]string{
	TokenEOF:           "EOF",
	TokenStar:          "star",
	TokenUnderscore:    "underscore",
	TokenTick:          "tick",
	TokenPipe:          "pipe",
	TokenTilde:         "tilde",
	TokenText:          "text",
	TokenWhitespace:    "whitespace",
	TokenLinebreak:     "linebreak",
	TokenParabreak:     "parabreak",
	TokenOrderedList:   "ol",
	TokenUnorderedList: "ul",
	TokenHeader:        "header",
	TokenTag:           "tag",
	TokenComment:       "comment",
	TokenBlockTag:      "blockTag",
	TokenOpaqueTag:     "opaqueTag",
	TokenAttr:          "attr",
}

// String returns the token type name
func (tt TokenType) String() string {
	if tt < 0 || int(tt) >= len(tokenNames) {
		return "unknown"
	}
	return tokenNames[tt]
}

// IsFormat reports whether tt is one of the five format markers
func (tt TokenType) IsFormat() bool {
	return tt >= TokenStar && tt <= TokenTilde
}

// IsList reports whether tt is a list marker
func (tt TokenType) IsList() bool {
	return tt == TokenOrderedList || tt == TokenUnorderedList
}

// isSpace reports whether tt is whitespace or a single linebreak
func (tt TokenType) isSpace() bool {
	return tt == TokenWhitespace || tt == TokenLinebreak
}

// Token represents a lexical token with position information
type Token struct {
	Type     TokenType
	Contents string // text the token stands for; escapes are resolved
	Start    int    // byte offset of the first source byte
	End      int    // byte offset after the last source byte

	// Location is set only when the tokenizer tracks positions
	Location *ast.Location

	Level int    // header level
	Key   string // attr key
	Value string // attr value
}

// String returns a string representation of the token
func (t Token) String() string {
	if t.Type == TokenEOF {
		return "EOF"
	}
	return fmt.Sprintf("%s(%q)", t.Type, t.Contents)
}

// lastByte returns the last byte of the token contents, or 0
func (t Token) lastByte() byte {
	if t.Contents == "" {
		return 0
	}
	return t.Contents[len(t.Contents)-1]
}
