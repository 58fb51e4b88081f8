// File: level_test.go
// Title: Log Level Tests
// Description: Tests for level names, parsing, filtering and severity mapping.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"testing"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
)

func TestLevelString(t *testing.T) {
	tests := []struct {
		level Level
		long  string
		short string
	}{
		{LevelTrace, "trace", "TRC"},
		{LevelDebug, "debug", "DBG"},
		{LevelInfo, "info", "INF"},
		{LevelWarn, "warn", "WRN"},
		{LevelError, "error", "ERR"},
		{LevelFatal, "fatal", "FTL"},
		{Level(99), "unknown", "???"},
	}

	for _, tt := range tests {
		t.Run(tt.long, func(t *testing.T) {
			if got := tt.level.String(); got != tt.long {
				t.Errorf("String() = %v, want %v", got, tt.long)
			}
			if got := tt.level.ShortString(); got != tt.short {
				t.Errorf("ShortString() = %v, want %v", got, tt.short)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    Level
		wantErr bool
	}{
		{"trace", LevelTrace, false},
		{"DEBUG", LevelDebug, false},
		{" info ", LevelInfo, false},
		{"", LevelInfo, false},
		{"warning", LevelWarn, false},
		{"err", LevelError, false},
		{"fatal", LevelFatal, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel() = %v, want %v", got, tt.want)
			}
			if tt.wantErr && !dlerror.HasCode(err, dlerror.CodeInvalidInput) {
				t.Errorf("ParseLevel() error code = %v", dlerror.GetCode(err))
			}
		})
	}
}

func TestLevelShouldLog(t *testing.T) {
	if !LevelError.ShouldLog(LevelInfo) {
		t.Error("error should pass an info minimum")
	}
	if LevelDebug.ShouldLog(LevelInfo) {
		t.Error("debug should not pass an info minimum")
	}
	if !LevelInfo.ShouldLog(LevelInfo) {
		t.Error("a level should pass itself")
	}

	levels := AllLevels()
	for i := 1; i < len(levels); i++ {
		if levels[i] <= levels[i-1] {
			t.Errorf("AllLevels() not ascending at %d", i)
		}
	}
}

func TestLevelForSeverity(t *testing.T) {
	tests := []struct {
		severity dlerror.Severity
		want     Level
	}{
		{dlerror.SeverityLow, LevelInfo},
		{dlerror.SeverityMedium, LevelWarn},
		{dlerror.SeverityHigh, LevelError},
		{dlerror.SeverityCritical, LevelError},
	}
	for _, tt := range tests {
		if got := LevelForSeverity(tt.severity); got != tt.want {
			t.Errorf("LevelForSeverity(%v) = %v, want %v", tt.severity, got, tt.want)
		}
	}
}

func TestLevelColor(t *testing.T) {
	seen := make(map[string]Level)
	for _, level := range AllLevels() {
		c := string(level.Color())
		if prev, ok := seen[c]; ok {
			t.Errorf("%v and %v share color %q", prev, level, c)
		}
		seen[c] = level
	}
}
