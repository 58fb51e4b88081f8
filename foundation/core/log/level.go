// File: level.go
// Title: Log Levels
// Description: Defines the log levels used to filter output and how each
//              level is named and colored on a terminal.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
)

// Level represents the importance of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota
	// LevelDebug is for diagnostics while developing
	LevelDebug
	// LevelInfo is the standard level for normal operation
	LevelInfo
	// LevelWarn marks situations worth a look
	LevelWarn
	// LevelError marks failed operations
	LevelError
	// LevelFatal marks errors that end the program
	LevelFatal
)

// String returns the lowercase name of the level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// ShortString returns the three-letter tag used by text output
func (l Level) ShortString() string {
	switch l {
	case LevelTrace:
		return "TRC"
	case LevelDebug:
		return "DBG"
	case LevelInfo:
		return "INF"
	case LevelWarn:
		return "WRN"
	case LevelError:
		return "ERR"
	case LevelFatal:
		return "FTL"
	default:
		return "???"
	}
}

// Color returns the terminal color of the level
func (l Level) Color() lipgloss.Color {
	switch l {
	case LevelTrace:
		return lipgloss.Color("245")
	case LevelDebug:
		return lipgloss.Color("6")
	case LevelInfo:
		return lipgloss.Color("2")
	case LevelWarn:
		return lipgloss.Color("3")
	case LevelError:
		return lipgloss.Color("1")
	case LevelFatal:
		return lipgloss.Color("5")
	default:
		return lipgloss.Color("7")
	}
}

// ShouldLog reports whether a message at l passes the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	return l >= minLevel
}

// ParseLevel parses a level name. Unknown names yield LevelInfo and an error
// with CodeInvalidInput.
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	default:
		return LevelInfo, dlerror.Newf("invalid log level %q", level).
			WithCode(dlerror.CodeInvalidInput).
			WithOperation("log.ParseLevel").
			WithDetail("input", level)
	}
}

// LevelForSeverity maps an error severity to the level it is logged at
func LevelForSeverity(severity dlerror.Severity) Level {
	switch severity {
	case dlerror.SeverityLow:
		return LevelInfo
	case dlerror.SeverityMedium:
		return LevelWarn
	default:
		return LevelError
	}
}

// AllLevels returns all levels from most to least verbose
func AllLevels() []Level {
	return []Level{LevelTrace, LevelDebug, LevelInfo, LevelWarn, LevelError, LevelFatal}
}

// DefaultLevel returns the level used when none is configured
func DefaultLevel() Level {
	return LevelInfo
}
