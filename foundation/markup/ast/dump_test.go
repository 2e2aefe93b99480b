// File: dump_test.go
// Title: Markup AST Tree Dump Unit Tests
// Description: Tests map conversion of trees and locations.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial test suite

package ast

import (
	"encoding/json"
	"testing"
)

func TestToMap(t *testing.T) {
	m := ToMap(createTestAlgorithm())

	if m["name"] != "algorithm" {
		t.Fatalf("Expected algorithm, got %v", m["name"])
	}
	if _, ok := m["location"]; ok {
		t.Error("Expected no location without tracking")
	}

	ol := m["contents"].(map[string]interface{})
	if ol["name"] != "ol" || ol["start"] != 1 || ol["indent"] != 0 {
		t.Errorf("Unexpected list map: %v", ol)
	}

	items := ol["contents"].([]interface{})
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}

	first := items[0].(map[string]interface{})
	sub := first["sublist"].(map[string]interface{})
	if sub["name"] != "ul" {
		t.Errorf("Expected ul sublist, got %v", sub["name"])
	}
	second := items[1].(map[string]interface{})
	if second["sublist"] != nil {
		t.Errorf("Expected nil sublist, got %v", second["sublist"])
	}

	contents := first["contents"].([]interface{})
	pipe := contents[3].(map[string]interface{})
	if pipe["nonTerminal"] != "Foo" || pipe["optional"] != false {
		t.Errorf("Unexpected pipe map: %v", pipe)
	}
	if _, ok := pipe["params"]; ok {
		t.Error("Expected params to be omitted")
	}

	if _, err := json.Marshal(m); err != nil {
		t.Errorf("Map should encode as JSON: %v", err)
	}
}

func TestToMap_LocationAndAttrs(t *testing.T) {
	item := &ListItem{
		Span:     Span{Location: &Location{Start: Position{1, 1, 0}, End: Position{1, 9, 8}}},
		Attrs:    []Attr{{Key: "id", Value: "a"}},
		Contents: []FragmentNode{&Comment{Contents: "<!-- -->"}},
	}
	m := ToMap(item)

	loc := m["location"].(map[string]interface{})
	end := loc["end"].(map[string]interface{})
	if end["column"] != 9 || end["offset"] != 8 {
		t.Errorf("Unexpected end position: %v", end)
	}

	attrs := m["attrs"].([]interface{})
	if attrs[0].(map[string]interface{})["key"] != "id" {
		t.Errorf("Unexpected attrs: %v", attrs)
	}

	comment := m["contents"].([]interface{})[0].(map[string]interface{})
	if comment["contents"] != "<!-- -->" {
		t.Errorf("Unexpected comment contents: %v", comment["contents"])
	}
}

func TestLocation(t *testing.T) {
	loc := Location{Start: Position{1, 3, 2}, End: Position{2, 1, 5}}
	if loc.String() != "1:3-2:1" {
		t.Errorf("Unexpected location string %q", loc.String())
	}
	if got := loc.Slice("ab cd\nx"); got != "cd\n" {
		t.Errorf("Slice() = %q", got)
	}
}
