// File: visitor.go
// Title: Markup AST Tree Walk
// Description: Depth-first traversal with enter/exit callbacks, driven by
//              a static table of child-bearing fields per node kind.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial visitor implementation

package ast

// Observer receives callbacks during Visit. Either function may be nil.
type Observer struct {
	Enter func(Node)
	Exit  func(Node)
}

const (
	fieldContents = "contents"
	fieldSublist  = "sublist"
)

// childFields lists, per kind, the fields holding child nodes in visit order
var childFields = map[Kind][]string{
	KindAlgorithm:         {fieldContents},
	KindOrderedList:       {fieldContents},
	KindUnorderedList:     {fieldContents},
	KindOrderedListItem:   {fieldContents, fieldSublist},
	KindUnorderedListItem: {fieldContents, fieldSublist},
	KindText:              nil,
	KindStar:              {fieldContents},
	KindUnderscore:        {fieldContents},
	KindTick:              {fieldContents},
	KindTilde:             {fieldContents},
	KindPipe:              nil,
	KindTag:               nil,
	KindComment:           nil,
	KindOpaqueTag:         nil,
	KindBlockTag:          nil,
}

// ChildFields returns the names of the child-bearing fields of kind
func ChildFields(kind Kind) []string {
	return childFields[kind]
}

// Visit walks node depth-first, calling obs.Enter before and obs.Exit
// after the node's children. Absent children are skipped.
func Visit(node Node, obs Observer) {
	if obs.Enter != nil {
		obs.Enter(node)
	}
	for _, field := range childFields[node.Kind()] {
		for _, child := range children(node, field) {
			Visit(child, obs)
		}
	}
	if obs.Exit != nil {
		obs.Exit(node)
	}
}

// children resolves a single- or many-valued field to a uniform slice
func children(node Node, field string) []Node {
	switch field {
	case fieldContents:
		switch v := node.(type) {
		case *Algorithm:
			if v.Contents == nil {
				return nil
			}
			return []Node{v.Contents}
		case ListNode:
			items := v.ListItems()
			out := make([]Node, len(items))
			for i, item := range items {
				out[i] = item
			}
			return out
		case *ListItem:
			return fragmentNodes(v.Contents)
		default:
			if contents, ok := FormatContents(node); ok {
				return fragmentNodes(contents)
			}
		}
	case fieldSublist:
		if li, ok := node.(*ListItem); ok && li.Sublist != nil {
			return []Node{li.Sublist}
		}
	}
	return nil
}

func fragmentNodes(frag []FragmentNode) []Node {
	out := make([]Node, len(frag))
	for i, n := range frag {
		out[i] = n
	}
	return out
}

// NonTerminals returns the distinct nonterminal names referenced under
// node, in order of first appearance.
func NonTerminals(node Node) []string {
	seen := make(map[string]bool)
	var names []string
	Visit(node, Observer{
		Enter: func(n Node) {
			if p, ok := n.(*Pipe); ok && !seen[p.NonTerminal] {
				seen[p.NonTerminal] = true
				names = append(names, p.NonTerminal)
			}
		},
	})
	return names
}
