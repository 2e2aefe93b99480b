// File: stringx.go
// Title: Core String Utility Functions
// Description: Small string helpers shared by the configuration loader,
//              the tokenizer and the CLI diagnostics.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Added blank-run and tab helpers, dropped case/random

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// IsBlankByte reports whether b is a space or a tab, the only characters
// counted as indentation.
func IsBlankByte(b byte) bool {
	return b == ' ' || b == '\t'
}

// LeadingBlanks returns the number of leading space and tab bytes of s.
func LeadingBlanks(s string) int {
	n := 0
	for n < len(s) && IsBlankByte(s[n]) {
		n++
	}
	return n
}

// ExpandTabs replaces every tab with spaces up to the next multiple of
// width. Used to align diagnostic carets under source lines.
func ExpandTabs(s string, width int) string {
	if width <= 0 || !strings.ContainsRune(s, '\t') {
		return s
	}

	var b strings.Builder
	col := 0
	for _, r := range s {
		switch r {
		case '\t':
			pad := width - col%width
			b.WriteString(strings.Repeat(" ", pad))
			col += pad
		case '\n':
			b.WriteRune(r)
			col = 0
		default:
			b.WriteRune(r)
			col++
		}
	}
	return b.String()
}

// Truncate truncates a string to maxLen runes, adding ellipsis if truncated.
// This function is Unicode-aware and will not break multi-byte characters.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadLeft pads s to width runes with pad.
// If the string is already longer than width, it returns the original string.
func PadLeft(s string, width int, pad rune) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return strings.Repeat(string(pad), width-n) + s
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}
