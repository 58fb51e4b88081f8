// File: format.go
// Title: Log Formats
// Description: Formatters that render entries as JSON, plain text or styled
//              console lines. JSON output keeps a fixed key order: standard
//              keys first, then custom fields in the order they were added.
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
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON writes one JSON object per line
	FormatJSON Format = iota
	// FormatText writes human-readable lines
	FormatText
	// FormatConsole writes text lines with a colored level tag
	FormatConsole
)

// String returns the name of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a format name. Unknown names yield FormatJSON and an
// error with CodeInvalidInput.
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, dlerror.Newf("invalid log format %q", format).
			WithCode(dlerror.CodeInvalidInput).
			WithOperation("log.ParseFormat").
			WithDetail("input", format)
	}
}

// Formatter renders an entry into bytes, including the trailing newline
type Formatter interface {
	Format(entry *Entry) ([]byte, error)
}

// JSONFormatter formats entries as JSON objects
type JSONFormatter struct {
	PrettyPrint     bool
	TimestampFormat string
}

// NewJSONFormatter creates a JSON formatter with RFC 3339 timestamps
func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{TimestampFormat: time.RFC3339}
}

// Format formats an entry as JSON
func (f *JSONFormatter) Format(entry *Entry) ([]byte, error) {
	data := mapx.New[string, any]().
		Set("timestamp", entry.Timestamp.Format(f.TimestampFormat)).
		Set("level", entry.Level.String()).
		Set("message", entry.Message)

	if entry.Logger != "" {
		data.Set("logger", entry.Logger)
	}
	if entry.CorrelationID != "" {
		data.Set("correlation_id", entry.CorrelationID)
	}

	for k, v := range entry.Fields.All() {
		if err, ok := v.(error); ok {
			v = err.Error()
		}
		data.Set(k, v)
	}

	if entry.Error != nil {
		data.Set("error", entry.Error.Error())
		var dlErr *dlerror.Error
		if errors.As(entry.Error, &dlErr) {
			if raw, err := dlErr.MarshalJSON(); err == nil {
				data.Set("error_details", json.RawMessage(raw))
			}
		}
	}

	if entry.Duration > 0 {
		data.Set("duration_ms", float64(entry.Duration.Nanoseconds())/1e6)
	}

	var out []byte
	var err error
	if f.PrettyPrint {
		out, err = json.MarshalIndent(data, "", "  ")
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return nil, err
	}
	return append(out, '\n'), nil
}

// TextFormatter formats entries as plain text lines
type TextFormatter struct {
	TimestampFormat  string
	DisableTimestamp bool
}

// NewTextFormatter creates a text formatter with short timestamps
func NewTextFormatter() *TextFormatter {
	return &TextFormatter{TimestampFormat: "15:04:05"}
}

// Format formats an entry as text
func (f *TextFormatter) Format(entry *Entry) ([]byte, error) {
	return []byte(f.line(entry, "["+entry.Level.ShortString()+"]") + "\n"), nil
}

func (f *TextFormatter) line(entry *Entry, levelTag string) string {
	var parts []string

	if !f.DisableTimestamp {
		parts = append(parts, entry.Timestamp.Format(f.TimestampFormat))
	}
	parts = append(parts, levelTag)

	if entry.Logger != "" {
		parts = append(parts, "{"+entry.Logger+"}")
	}
	if entry.CorrelationID != "" {
		parts = append(parts, "(cid="+entry.CorrelationID+")")
	}

	parts = append(parts, entry.Message)

	if entry.Fields.Len() > 0 {
		fieldParts := make([]string, 0, entry.Fields.Len())
		for k, v := range entry.Fields.All() {
			fieldParts = append(fieldParts, fmt.Sprintf("%s=%v", k, v))
		}
		parts = append(parts, "["+strings.Join(fieldParts, " ")+"]")
	}

	if entry.Error != nil {
		parts = append(parts, fmt.Sprintf("error=%q", entry.Error.Error()))
	}
	if entry.Duration > 0 {
		parts = append(parts, "duration="+entry.Duration.String())
	}

	return strings.Join(parts, " ")
}

// ConsoleFormatter formats entries as text with a colored level tag
type ConsoleFormatter struct {
	DisableColors bool
	*TextFormatter
}

// NewConsoleFormatter creates a console formatter
func NewConsoleFormatter() *ConsoleFormatter {
	return &ConsoleFormatter{TextFormatter: NewTextFormatter()}
}

// Format formats an entry for a terminal
func (f *ConsoleFormatter) Format(entry *Entry) ([]byte, error) {
	tag := entry.Level.ShortString()
	if !f.DisableColors {
		tag = lipgloss.NewStyle().Bold(true).Foreground(entry.Level.Color()).Render(tag)
	}
	return []byte(f.line(entry, tag) + "\n"), nil
}

// GetFormatter returns a formatter for the given format
func GetFormatter(format Format) Formatter {
	switch format {
	case FormatText:
		return NewTextFormatter()
	case FormatConsole:
		return NewConsoleFormatter()
	default:
		return NewJSONFormatter()
	}
}
