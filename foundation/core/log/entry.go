// File: entry.go
// Title: Log Entry Structure
// Description: Defines a single log record. Custom fields are kept in an
//              ordered Dict so output lists them in the order they were added.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"maps"
	"slices"
	"time"

	"github.com/hellerve/dandelion/foundation/utils/mapx"
)

// Entry represents a single log record
type Entry struct {
	Timestamp     time.Time
	Level         Level
	Message       string
	Logger        string
	CorrelationID string

	// Fields in the order they were attached
	Fields *mapx.Dict[string, any]

	Error    error
	Duration time.Duration
}

// Fields is a set of key-value pairs passed at a call site. Keys of a single
// Fields value are attached in sorted order.
type Fields map[string]any

// Field creates a single field
func Field(key string, value any) Fields {
	return Fields{key: value}
}

// Err creates an error field
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field
func Duration(key string, d time.Duration) Fields {
	return Fields{key: d}
}

// NewEntry creates an entry stamped with the current time
func NewEntry(level Level, message string) *Entry {
	return &Entry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
		Fields:    mapx.New[string, any](),
	}
}

// WithFields attaches fields. Existing keys are overwritten in place.
func (e *Entry) WithFields(fields Fields) *Entry {
	if e.Fields == nil {
		e.Fields = mapx.New[string, any]()
	}
	attach(e.Fields, fields)
	return e
}

func attach(dst *mapx.Dict[string, any], fields Fields) {
	for _, k := range slices.Sorted(maps.Keys(fields)) {
		dst.Set(k, fields[k])
	}
}

// WithField attaches a single field
func (e *Entry) WithField(key string, value any) *Entry {
	if e.Fields == nil {
		e.Fields = mapx.New[string, any]()
	}
	e.Fields.Set(key, value)
	return e
}

// WithError attaches an error
func (e *Entry) WithError(err error) *Entry {
	e.Error = err
	return e
}

// WithDuration attaches a measured duration
func (e *Entry) WithDuration(d time.Duration) *Entry {
	e.Duration = d
	return e
}

// Clone returns a copy whose fields can be changed independently
func (e *Entry) Clone() *Entry {
	if e == nil {
		return nil
	}
	clone := *e
	clone.Fields = e.Fields.Clone()
	return &clone
}
