// Package error provides structured error handling for dandelion.
//
// Package: error
// Title: dandelion Error Handling
// Description: This package implements a structured error type with error codes,
//              severities, details and stack traces. Every package in the module
//              reports failures through it so callers can branch on a code instead
//              of matching message text.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation with codes, severities and wrapping
//
// Features:
// - Contextual error wrapping with additional metadata
// - Structured error codes for the mapping operations (unhashable value,
//   empty reduce, type mismatch) and the ambient layers (config, codecs)
// - Stack trace capture for debugging
// - Interoperability with errors.Is and errors.As
//
// Usage:
//
//	import dlerror "github.com/hellerve/dandelion/foundation/core/error"
//
//	err := dlerror.New("value cannot be used as a key").
//		WithCode(dlerror.CodeUnhashableValue).
//		WithOperation("mapx.Invert").
//		WithDetail("value_type", "[]int")
//
//	if dlerror.HasCode(err, dlerror.CodeUnhashableValue) {
//		// handle
//	}
package error
