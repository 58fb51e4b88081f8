// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and metadata.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

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

	if err == nil {
		t.Fatal("New() returned nil")
	}

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

	trace := err.StackTrace()
	if len(trace) == 0 {
		t.Fatal("StackTrace() should not be empty")
	}
	if !strings.Contains(trace[0].Function, "TestNew") {
		t.Errorf("first frame = %q, want the caller of New", trace[0].Function)
	}
}

func TestNewf(t *testing.T) {
	err := Newf("key %q missing", "a")
	if err.Error() != `key "a" missing` {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap structured error keeps code",
			err:      New("original").WithCode(CodeEmptyReduce),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original",
			wantCode: CodeEmptyReduce,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if wrapped != nil {
					t.Errorf("Wrap() = %v, want nil", wrapped)
				}
				return
			}
			if wrapped.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", wrapped.Error(), tt.wantMsg)
			}
			if wrapped.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", wrapped.Code(), tt.wantCode)
			}
			if !errors.Is(wrapped, tt.err) {
				t.Error("errors.Is(wrapped, original) = false")
			}
		})
	}
}

func TestWithCodeDerivesSeverity(t *testing.T) {
	tests := []struct {
		code Code
		want Severity
	}{
		{CodeEmptyReduce, SeverityLow},
		{CodeUnhashableValue, SeverityLow},
		{CodeTypeMismatch, SeverityLow},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
		{CodeEncodeFailed, SeverityMedium},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tt.code)
			if err.Severity() != tt.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tt.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeEmptyReduce)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestDetails(t *testing.T) {
	err := New("x").
		WithDetail("a", 1).
		WithDetails(map[string]interface{}{"b": "two"}).
		WithOperation("mapx.Invert")

	details := err.Details()
	if details["a"] != 1 || details["b"] != "two" {
		t.Errorf("Details() = %v", details)
	}

	details["a"] = 99
	if err.Details()["a"] != 1 {
		t.Error("Details() must return a copy")
	}

	if err.Operation() != "mapx.Invert" {
		t.Errorf("Operation() = %q", err.Operation())
	}
}

func TestHasCodeThroughChain(t *testing.T) {
	inner := New("exhausted").WithCode(CodeEmptyReduce)
	outer := fmt.Errorf("reduce failed: %w", inner)

	if !HasCode(outer, CodeEmptyReduce) {
		t.Error("HasCode() should find code through fmt wrapping")
	}
	if HasCode(outer, CodeTypeMismatch) {
		t.Error("HasCode() matched the wrong code")
	}
	if GetCode(outer) != CodeEmptyReduce {
		t.Errorf("GetCode() = %v", GetCode(outer))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode() on a plain error should be CodeUnknown")
	}
	if GetSeverity(errors.New("plain")) != SeverityMedium {
		t.Error("GetSeverity() on a plain error should be SeverityMedium")
	}
	if HasCode(nil, CodeUnknown) {
		t.Error("HasCode(nil) should be false")
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")

	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want %v", err.RootCause(), root)
	}

	lone := New("lone")
	if lone.RootCause() != lone {
		t.Error("RootCause() of an unwrapped error should be itself")
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("cause"), "failed").
		WithCode(CodeTypeMismatch).
		WithOperation("mapx.Update").
		WithDetail("input_type", "int")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("json.Marshal() error = %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("json.Unmarshal() error = %v", jerr)
	}

	if decoded["code"] != string(CodeTypeMismatch) {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "mapx.Update" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "cause" {
		t.Errorf("cause = %v", decoded["cause"])
	}
	if decoded["severity"] != "low" {
		t.Errorf("severity = %v", decoded["severity"])
	}
}

func TestString(t *testing.T) {
	err := New("boom").WithCode(CodeInvalidFormat).WithDetail("b", 2).WithDetail("a", 1)
	s := err.String()

	for _, want := range []string{"Error: boom", "Code: INVALID_FORMAT", "Details: {a=1, b=2}"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q in %q", want, s)
		}
	}
}

func TestCodeCategory(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{CodeEmptyReduce, "mapping"},
		{CodeInvalidFormat, "codec"},
		{CodeMissingConfig, "configuration"},
		{CodeUnknown, "generic"},
	}
	for _, tt := range tests {
		if got := tt.code.Category(); got != tt.want {
			t.Errorf("%s.Category() = %q, want %q", tt.code, got, tt.want)
		}
		if !tt.code.IsValid() {
			t.Errorf("%s.IsValid() = false", tt.code)
		}
	}
	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported as valid")
	}
}

func TestSeverityString(t *testing.T) {
	if SeverityCritical.String() != "critical" || Severity(42).String() != "unknown" {
		t.Error("Severity.String() mismatch")
	}
	if !SeverityHigh.ShouldAlert() || SeverityLow.ShouldAlert() {
		t.Error("ShouldAlert() mismatch")
	}
}
