// File: position.go
// Title: Source Positions
// Description: Position and Location types attached to tokens and nodes.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

import "fmt"

// Position represents a position in the source text
type Position struct {
	Line   int `json:"line" yaml:"line"`     // Line number (1-based)
	Column int `json:"column" yaml:"column"` // Column number in bytes (1-based)
	Offset int `json:"offset" yaml:"offset"` // Byte offset (0-based)
}

// String returns "line:column"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Location is the half-open source range [Start, End) of a token or node
type Location struct {
	Start Position `json:"start" yaml:"start"`
	End   Position `json:"end" yaml:"end"`
}

// String returns "line:column-line:column"
func (l Location) String() string {
	return l.Start.String() + "-" + l.End.String()
}

// Slice returns the source text covered by l
func (l Location) Slice(source string) string {
	return source[l.Start.Offset:l.End.Offset]
}

// Span is embedded in every node. Location is nil unless the parser
// tracked positions.
type Span struct {
	Location *Location `json:"location,omitempty" yaml:"location,omitempty"`
}

// Loc returns the node's source range, or nil
func (s *Span) Loc() *Location {
	return s.Location
}
