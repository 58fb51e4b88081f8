// File: codes.go
// Title: Error Codes
// Description: Defines the structured error codes used across dandelion and
//              their grouping into categories.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial code set for mapping, codec and config errors

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown          Code = "UNKNOWN"
	CodeInternal         Code = "INTERNAL"
	CodeNotFound         Code = "NOT_FOUND"
	CodeInvalidInput     Code = "INVALID_INPUT"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Mapping operations
	CodeUnhashableValue Code = "UNHASHABLE_VALUE"
	CodeEmptyReduce     Code = "EMPTY_REDUCE"
	CodeTypeMismatch    Code = "TYPE_MISMATCH"

	// Encoding and decoding
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeEncodeFailed  Code = "ENCODE_FAILED"

	// Configuration and environment
	CodeConfigError   Code = "CONFIG_ERROR"
	CodeMissingConfig Code = "MISSING_CONFIG"
	CodeInvalidConfig Code = "INVALID_CONFIG"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput, CodeInvalidOperation,
		CodeUnhashableValue, CodeEmptyReduce, CodeTypeMismatch,
		CodeInvalidFormat, CodeEncodeFailed,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeUnhashableValue, CodeEmptyReduce, CodeTypeMismatch:
		return "mapping"
	case CodeInvalidFormat, CodeEncodeFailed:
		return "codec"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	default:
		return "generic"
	}
}
