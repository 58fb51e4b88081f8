// File: format_test.go
// Title: Log Format Tests
// Description: Tests for the JSON, text and console formatters.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

func testEntry() *Entry {
	e := NewEntry(LevelInfo, "hello")
	e.Timestamp = time.Date(2026, 10, 18, 12, 30, 0, 0, time.UTC)
	e.Logger = "test"
	e.WithField("zeta", 1).WithField("alpha", "two")
	return e
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input   string
		want    Format
		wantErr bool
	}{
		{"json", FormatJSON, false},
		{"TEXT", FormatText, false},
		{"console", FormatConsole, false},
		{"logfmt", FormatJSON, true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.input)
		if got != tt.want || (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) = %v, %v", tt.input, got, err)
		}
	}
	if FormatConsole.String() != "console" || Format(9).String() != "unknown" {
		t.Error("Format.String() mismatch")
	}
}

func TestJSONFormatterKeyOrder(t *testing.T) {
	out, err := NewJSONFormatter().Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.HasSuffix(string(out), "\n") {
		t.Error("Format() should end with a newline")
	}

	decoded := mapx.New[string, any]()
	if err := json.Unmarshal(out, decoded); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	want := []string{"timestamp", "level", "message", "logger", "zeta", "alpha"}
	if diff := cmp.Diff(want, decoded.Keys()); diff != "" {
		t.Errorf("key order mismatch (-want +got):\n%s", diff)
	}
	if decoded.Value("timestamp") != "2026-10-18T12:30:00Z" {
		t.Errorf("timestamp = %v", decoded.Value("timestamp"))
	}
}

func TestJSONFormatterError(t *testing.T) {
	e := testEntry()
	e.Error = dlerror.New("boom").WithCode(dlerror.CodeTypeMismatch)
	e.Duration = 1500 * time.Microsecond

	out, err := NewJSONFormatter().Format(e)
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(out, &decoded); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if decoded["error"] != "boom" {
		t.Errorf("error = %v", decoded["error"])
	}
	details, ok := decoded["error_details"].(map[string]any)
	if !ok || details["code"] != string(dlerror.CodeTypeMismatch) {
		t.Errorf("error_details = %v", decoded["error_details"])
	}
	if decoded["duration_ms"] != 1.5 {
		t.Errorf("duration_ms = %v", decoded["duration_ms"])
	}

	e.Error = errors.New("plain")
	out, _ = NewJSONFormatter().Format(e)
	if strings.Contains(string(out), "error_details") {
		t.Error("plain errors should not produce error_details")
	}
}

func TestJSONFormatterPrettyPrint(t *testing.T) {
	f := NewJSONFormatter()
	f.PrettyPrint = true
	out, err := f.Format(testEntry())
	if err != nil {
		t.Fatalf("Format() error = %v", err)
	}
	if !strings.Contains(string(out), "\n  \"level\": \"info\"") {
		t.Errorf("PrettyPrint output not indented:\n%s", out)
	}
}

func TestTextFormatter(t *testing.T) {
	f := NewTextFormatter()
	out, _ := f.Format(testEntry())
	want := "12:30:00 [INF] {test} hello [zeta=1 alpha=two]\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}

	f.DisableTimestamp = true
	e := testEntry()
	e.CorrelationID = "c1"
	e.Error = errors.New("bad")
	out, _ = f.Format(e)
	want = "[INF] {test} (cid=c1) hello [zeta=1 alpha=two] error=\"bad\"\n"
	if string(out) != want {
		t.Errorf("Format() = %q, want %q", out, want)
	}
}

func TestConsoleFormatter(t *testing.T) {
	f := NewConsoleFormatter()
	f.DisableColors = true
	f.DisableTimestamp = true

	out, _ := f.Format(testEntry())
	if got := string(out); got != "INF {test} hello [zeta=1 alpha=two]\n" {
		t.Errorf("Format() = %q", got)
	}

	f.DisableColors = false
	out, _ = f.Format(testEntry())
	if !strings.Contains(string(out), "INF") || !strings.Contains(string(out), "hello") {
		t.Errorf("colored Format() = %q", out)
	}
}

func TestGetFormatter(t *testing.T) {
	if _, ok := GetFormatter(FormatText).(*TextFormatter); !ok {
		t.Error("GetFormatter(FormatText) type mismatch")
	}
	if _, ok := GetFormatter(FormatConsole).(*ConsoleFormatter); !ok {
		t.Error("GetFormatter(FormatConsole) type mismatch")
	}
	if _, ok := GetFormatter(Format(42)).(*JSONFormatter); !ok {
		t.Error("GetFormatter(unknown) should fall back to JSON")
	}
}

func BenchmarkJSONFormatter(b *testing.B) {
	f := NewJSONFormatter()
	e := testEntry()
	for i := 0; i < b.N; i++ {
		_, _ = f.Format(e)
	}
}
