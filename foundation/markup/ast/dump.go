// File: dump.go
// Title: Markup AST Tree Dump
// Description: Converts nodes into name-keyed maps for JSON and YAML output.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package ast

// ToMap converts node and its subtree into maps and slices suitable for
// encoding/json or yaml.v3. Keys follow the node field names in lower case;
// every map carries "name" with the kind.
func ToMap(node Node) map[string]interface{} {
	m := map[string]interface{}{
		"name": node.Kind().String(),
	}
	if loc := node.Loc(); loc != nil {
		m["location"] = map[string]interface{}{
			"start": positionMap(loc.Start),
			"end":   positionMap(loc.End),
		}
	}

	switch v := node.(type) {
	case *Algorithm:
		if v.Contents != nil {
			m["contents"] = ToMap(v.Contents)
		}
	case *OrderedList:
		m["indent"] = v.Indent
		m["start"] = v.Start
		m["contents"] = itemMaps(v.Items)
	case *UnorderedList:
		m["indent"] = v.Indent
		m["contents"] = itemMaps(v.Items)
	case *ListItem:
		if len(v.Attrs) > 0 {
			attrs := make([]interface{}, len(v.Attrs))
			for i, a := range v.Attrs {
				attrs[i] = map[string]interface{}{"key": a.Key, "value": a.Value}
			}
			m["attrs"] = attrs
		}
		m["contents"] = FragmentToMaps(v.Contents)
		if v.Sublist != nil {
			m["sublist"] = ToMap(v.Sublist)
		} else {
			m["sublist"] = nil
		}
	case *Pipe:
		m["nonTerminal"] = v.NonTerminal
		if v.Params != "" {
			m["params"] = v.Params
		}
		m["optional"] = v.Optional
	default:
		if contents, ok := FormatContents(node); ok {
			m["contents"] = FragmentToMaps(contents)
		} else if raw, ok := RawContents(node); ok {
			m["contents"] = raw
		}
	}
	return m
}

// FragmentToMaps converts every node of frag with ToMap
func FragmentToMaps(frag []FragmentNode) []interface{} {
	out := make([]interface{}, len(frag))
	for i, n := range frag {
		out[i] = ToMap(n)
	}
	return out
}

func itemMaps(items []*ListItem) []interface{} {
	out := make([]interface{}, len(items))
	for i, item := range items {
		out[i] = ToMap(item)
	}
	return out
}

func positionMap(p Position) map[string]interface{} {
	return map[string]interface{}{
		"line":   p.Line,
		"column": p.Column,
		"offset": p.Offset,
	}
}
