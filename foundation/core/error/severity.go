// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors and the default severity
//              derived from an error code.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates a caller mistake that is fully recoverable,
	// such as an invalid argument or a reduce over an empty mapping
	SeverityLow Severity = iota

	// SeverityMedium indicates a failed operation that left no damage behind
	SeverityMedium

	// SeverityHigh indicates a failure that stops the current command
	SeverityHigh

	// SeverityCritical indicates a broken invariant
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// Level returns the numeric level of the severity (0-3)
func (s Severity) Level() int {
	return int(s)
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidInput, CodeNotFound, CodeEmptyReduce,
		CodeTypeMismatch, CodeUnhashableValue, CodeInvalidFormat:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
