// File: timer.go
// Title: Performance Timer
// Description: Measures how long an operation takes and logs the result
//              through the owning Logger.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package log

import (
	"time"
)

// Timer measures the duration of one operation
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer starts a timer that reports to logger at debug level
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the level of the completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to the completion message
func (t *Timer) WithField(key string, value any) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs "<operation> completed". Stopping twice
// logs nothing and returns 0.
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.fields, t.timing(elapsed))
	}
	return elapsed
}

// StopWithError stops the timer and logs "<operation> failed" at error level
// with err attached
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	if t.logger != nil {
		timing := t.timing(elapsed)
		timing["success"] = false
		t.logger.log(LevelError, t.operation+" failed", err, t.fields, timing)
	}
	return elapsed
}

// Cancel stops the timer without logging
func (t *Timer) Cancel() {
	t.stopped = true
}

// IsRunning reports whether the timer has not been stopped
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) timing(elapsed time.Duration) Fields {
	return Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
	}
}
