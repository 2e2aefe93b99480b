// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity, and
//              chain lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2026-10-18 v0.2.0: Chain lookups through fmt.Errorf wrapping

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "test error message"
	err := New(msg)

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}
	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}
	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}
	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		message string
		wantNil bool
		wantMsg string
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "context",
			wantNil: true,
		},
		{
			name:    "wrap standard error",
			err:     errors.New("boom"),
			message: "render failed",
			wantMsg: "render failed: boom",
		},
		{
			name:    "wrap structured error",
			err:     New("bad markup").WithCode(CodeSyntax),
			message: "fragment 3",
			wantMsg: "fragment 3: bad markup",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWrapInheritsCodeAndDetails(t *testing.T) {
	inner := New("unexpected token").
		WithCode(CodeSyntax).
		WithDetail("offset", 12)
	outer := Wrap(inner, "algorithm")

	if outer.Code() != CodeSyntax {
		t.Errorf("Code() = %v, want %v", outer.Code(), CodeSyntax)
	}
	if outer.Severity() != SeverityLow {
		t.Errorf("Severity() = %v, want %v", outer.Severity(), SeverityLow)
	}
	if v, ok := outer.Detail("offset"); !ok || v != 12 {
		t.Errorf("Detail(offset) = %v, %v", v, ok)
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeInternal, SeverityCritical},
		{CodeConfigError, SeverityHigh},
		{CodeSyntax, SeverityLow},
		{CodeRenderFailed, SeverityMedium},
	}
	for _, tt := range tests {
		if got := New("x").WithCode(tt.code).Severity(); got != tt.want {
			t.Errorf("WithCode(%s) severity = %v, want %v", tt.code, got, tt.want)
		}
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeSyntax)
	if explicit.Severity() != SeverityHigh {
		t.Error("explicit severity should survive WithCode")
	}
}

func TestHasCodeThroughStandardWrapping(t *testing.T) {
	base := New("missing").WithCode(CodeNotFound)
	err := fmt.Errorf("loading: %w", base)

	if !HasCode(err, CodeNotFound) {
		t.Error("HasCode() should look through fmt.Errorf wrapping")
	}
	if HasCode(err, CodeSyntax) {
		t.Error("HasCode() reported a code that is not in the chain")
	}
	if GetCode(err) != CodeNotFound {
		t.Errorf("GetCode() = %v, want %v", GetCode(err), CodeNotFound)
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() of a plain error should be CodeUnknown")
	}
}

func TestWrapTruncatesDeepChains(t *testing.T) {
	var err error = errors.New("root")
	for i := 0; i < MaxErrorChainDepth+2; i++ {
		err = Wrap(err, fmt.Sprintf("level %d", i))
	}
	var e *Error
	if !errors.As(err, &e) {
		t.Fatal("expected *Error")
	}
	if !strings.Contains(e.Error(), "chain truncated") {
		t.Errorf("expected truncated chain, got %q", e.Error())
	}
}

func TestMarshalJSON(t *testing.T) {
	err := New("unexpected token ul").
		WithCode(CodeSyntax).
		WithOperation("parser.ParseAlgorithm").
		WithDetail("line", 3)

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("MarshalJSON() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("invalid JSON: %v", jerr)
	}
	if decoded["code"] != string(CodeSyntax) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "parser.ParseAlgorithm" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestStringIsDeterministic(t *testing.T) {
	err := New("bad").WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()
	if !strings.Contains(s, "Details: {a=1, b=2}") {
		t.Errorf("String() details not sorted: %q", s)
	}
}

func TestCodeHelpers(t *testing.T) {
	if !CodeSyntax.IsValid() || Code("NOPE").IsValid() {
		t.Error("IsValid() mismatch")
	}
	if CodeSyntax.Category() != "markup" {
		t.Errorf("Category() = %s", CodeSyntax.Category())
	}
	if CodeSyntax.ExitCode() != 2 || CodeInternal.ExitCode() != 70 {
		t.Error("ExitCode() mismatch")
	}
}

func TestInternal(t *testing.T) {
	err := Internal("emitter.Emit", "unknown node %T", 42)
	if err.Code() != CodeInternal || err.Severity() != SeverityCritical {
		t.Errorf("Internal() = %v/%v", err.Code(), err.Severity())
	}
	if err.Error() != "unknown node int" {
		t.Errorf("Error() = %q", err.Error())
	}
}
