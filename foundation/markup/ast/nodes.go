// File: nodes.go
// Title: Markup AST Node Definitions
// Description: Defines all node types of the ecmarkdown tree: algorithm,
//              lists, list items, format spans, nonterminal references and
//              passthrough markup.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial AST node definitions

package ast

// Kind identifies the type of a node
type Kind int

const (
	KindAlgorithm Kind = iota
	KindOrderedList
	KindUnorderedList
	KindOrderedListItem
	KindUnorderedListItem
	KindText
	KindStar
	KindUnderscore
	KindTick
	KindTilde
	KindPipe
	KindTag
	KindComment
	KindOpaqueTag
	KindBlockTag
)

var kindNames = [...]string{
	KindAlgorithm:         "algorithm",
	KindOrderedList:       "ol",
	KindUnorderedList:     "ul",
	KindOrderedListItem:   "ordered-list-item",
	KindUnorderedListItem: "unordered-list-item",
	KindText:              "text",
	KindStar:              "star",
	KindUnderscore:        "underscore",
	KindTick:              "tick",
	KindTilde:             "tilde",
	KindPipe:              "pipe",
	KindTag:               "tag",
	KindComment:           "comment",
	KindOpaqueTag:         "opaqueTag",
	KindBlockTag:          "blockTag",
}

// String returns the node kind name
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Node represents the base interface for all AST nodes
type Node interface {
	// Kind returns the node type
	Kind() Kind

	// Loc returns the source range, nil when positions are not tracked
	Loc() *Location
}

// FragmentNode is a node that may appear in inline content
type FragmentNode interface {
	Node
	fragmentNode()
}

// ListNode is an ordered or unordered list
type ListNode interface {
	Node
	ListIndent() int
	ListItems() []*ListItem
}

// Algorithm wraps the single ordered list of an algorithm
type Algorithm struct {
	Span
	Contents *OrderedList
}

// OrderedList is a numbered list
type OrderedList struct {
	Span
	Indent int // leading whitespace of the first marker
	Start  int // number of the first marker
	Items  []*ListItem
}

// UnorderedList is a bulleted list
type UnorderedList struct {
	Span
	Indent int
	Items  []*ListItem
}

// Attr is a key/value pair given in brackets after a list marker
type Attr struct {
	Key   string `json:"key" yaml:"key"`
	Value string `json:"value" yaml:"value"`
}

// ListItem is one entry of a list
type ListItem struct {
	Span
	Ordered  bool
	Attrs    []Attr
	Contents []FragmentNode
	Sublist  ListNode // nil when the item has no nested list
}

// Text is literal text
type Text struct {
	Span
	Contents string
}

// Star is *value*
type Star struct {
	Span
	Contents []FragmentNode
}

// Underscore is _variable_
type Underscore struct {
	Span
	Contents []FragmentNode
}

// Tick is `code`
type Tick struct {
	Span
	Contents []FragmentNode
}

// Tilde is ~constant~
type Tilde struct {
	Span
	Contents []FragmentNode
}

// Pipe is a nonterminal reference |Name[Params]_opt|
type Pipe struct {
	Span
	NonTerminal string
	Params      string // empty when no parameter list was given
	Optional    bool
}

// Tag is an inline HTML tag
type Tag struct {
	Span
	Contents string
}

// Comment is an HTML comment
type Comment struct {
	Span
	Contents string
}

// OpaqueTag is an element captured verbatim up to its closing tag
type OpaqueTag struct {
	Span
	Contents string
}

// BlockTag is a line starting with a block-level tag or comment
type BlockTag struct {
	Span
	Contents string
}

func (*Algorithm) Kind() Kind     { return KindAlgorithm }
func (*OrderedList) Kind() Kind   { return KindOrderedList }
func (*UnorderedList) Kind() Kind { return KindUnorderedList }
func (*Text) Kind() Kind          { return KindText }
func (*Star) Kind() Kind          { return KindStar }
func (*Underscore) Kind() Kind    { return KindUnderscore }
func (*Tick) Kind() Kind          { return KindTick }
func (*Tilde) Kind() Kind         { return KindTilde }
func (*Pipe) Kind() Kind          { return KindPipe }
func (*Tag) Kind() Kind           { return KindTag }
func (*Comment) Kind() Kind       { return KindComment }
func (*OpaqueTag) Kind() Kind     { return KindOpaqueTag }
func (*BlockTag) Kind() Kind      { return KindBlockTag }

// Kind returns KindOrderedListItem or KindUnorderedListItem
func (li *ListItem) Kind() Kind {
	if li.Ordered {
		return KindOrderedListItem
	}
	return KindUnorderedListItem
}

func (*Text) fragmentNode()       {}
func (*Star) fragmentNode()       {}
func (*Underscore) fragmentNode() {}
func (*Tick) fragmentNode()       {}
func (*Tilde) fragmentNode()      {}
func (*Pipe) fragmentNode()       {}
func (*Tag) fragmentNode()        {}
func (*Comment) fragmentNode()    {}
func (*OpaqueTag) fragmentNode()  {}
func (*BlockTag) fragmentNode()   {}

func (l *OrderedList) ListIndent() int          { return l.Indent }
func (l *OrderedList) ListItems() []*ListItem   { return l.Items }
func (l *UnorderedList) ListIndent() int        { return l.Indent }
func (l *UnorderedList) ListItems() []*ListItem { return l.Items }

// FormatContents returns the children of a format span and true, or
// nil and false for any other node.
func FormatContents(n Node) ([]FragmentNode, bool) {
	switch v := n.(type) {
	case *Star:
		return v.Contents, true
	case *Underscore:
		return v.Contents, true
	case *Tick:
		return v.Contents, true
	case *Tilde:
		return v.Contents, true
	}
	return nil, false
}

// RawContents returns the literal contents of text and passthrough nodes
func RawContents(n Node) (string, bool) {
	switch v := n.(type) {
	case *Text:
		return v.Contents, true
	case *Tag:
		return v.Contents, true
	case *Comment:
		return v.Contents, true
	case *OpaqueTag:
		return v.Contents, true
	case *BlockTag:
		return v.Contents, true
	}
	return "", false
}
