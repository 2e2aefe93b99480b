package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	mderror "github.com/msto63/ecmarkdown/foundation/core/error"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"none", LevelOff, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelWarn) {
		t.Error("error should log at warn")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not log at info")
	}
	if LevelFatal.ShouldLog(LevelOff) {
		t.Error("nothing logs when off")
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"text", FormatText, false},
		{"console", FormatText, false},
		{"logfmt", FormatLogfmt, false},
		{"xml", FormatJSON, true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestJSONFormatterErrorDetails(t *testing.T) {
	entry := NewEntry(LevelError, "failed")
	entry.Error = mderror.New("bad").WithCode(mderror.CodeSyntax).WithDetail("offset", 4)
	entry.Duration = 1500 * time.Microsecond

	raw, err := NewJSONFormatter().Format(entry)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(raw), "\n") {
		t.Error("JSON output should end with a newline")
	}

	var m map[string]interface{}
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if m["error"] != "bad" {
		t.Errorf("error = %v, want bad", m["error"])
	}
	details, ok := m["error_details"].(map[string]interface{})
	if !ok {
		t.Fatalf("error_details missing: %v", m)
	}
	if details["code"] != string(mderror.CodeSyntax) {
		t.Errorf("error_details.code = %v", details["code"])
	}
	if m["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v, want 1.5", m["duration_ms"])
	}
}

func TestTextFormatterSortsFields(t *testing.T) {
	entry := NewEntry(LevelInfo, "msg")
	entry.Fields = Fields{"b": 2, "a": 1, "c": 3}

	f := NewTextFormatter()
	f.DisableTimestamp = true
	raw, _ := f.Format(entry)

	if got, want := string(raw), "[INF] msg [a=1 b=2 c=3]\n"; got != want {
		t.Errorf("Format() = %q, want %q", got, want)
	}
}

func TestLogfmtFormatterQuotesStrings(t *testing.T) {
	entry := NewEntry(LevelWarn, "two words")
	entry.Fields = Fields{"path": "a b.emd", "n": 7}
	entry.Error = errors.New("x")

	raw, _ := NewLogfmtFormatter().Format(entry)
	out := string(raw)

	for _, want := range []string{`level=warn`, `message="two words"`, `n=7`, `path="a b.emd"`, `error="x"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestFieldsMergeAndKeys(t *testing.T) {
	merged := Field("a", 1).Merge(Fields{"b": 2})
	if keys := merged.Keys(); strings.Join(keys, ",") != "a,b" {
		t.Errorf("Keys() = %v", keys)
	}
	if Err(nil) == nil {
		t.Error("Err(nil) should return empty fields, not nil")
	}
}
