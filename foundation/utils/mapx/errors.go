// File: errors.go
// Title: Mapping Errors
// Description: Error constructors for the failure modes of Dict operations.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mapx

import (
	"errors"
	"fmt"

	dlerror "github.com/hellerve/dandelion/foundation/core/error"
)

// ErrExhausted is the cause of a reduce over an empty Dict: the iterator had
// no element to seed the accumulator with.
var ErrExhausted = errors.New("no next element")

func errEmptyReduce() error {
	return dlerror.New("reduce of empty Dict with no initial value").
		WithCode(dlerror.CodeEmptyReduce).
		WithOperation("mapx.Dict.Reduce").
		WithCause(ErrExhausted)
}

func errUnhashable(operation string, value any) error {
	return dlerror.New(fmt.Sprintf("value of type %T cannot be used as a key", value)).
		WithCode(dlerror.CodeUnhashableValue).
		WithOperation(operation).
		WithDetail("value_type", fmt.Sprintf("%T", value))
}

func errTypeMismatch(operation string, got any, want string) error {
	return dlerror.New(fmt.Sprintf("cannot use %T as %s", got, want)).
		WithCode(dlerror.CodeTypeMismatch).
		WithOperation(operation).
		WithDetail("got", fmt.Sprintf("%T", got)).
		WithDetail("want", want)
}

func errFormat(operation string, format Format, cause error) error {
	return dlerror.Wrap(cause, fmt.Sprintf("decode %s", format)).
		WithCode(dlerror.CodeInvalidFormat).
		WithOperation(operation).
		WithDetail("format", format.String())
}

func errEncode(operation string, format Format, cause error) error {
	return dlerror.Wrap(cause, fmt.Sprintf("encode %s", format)).
		WithCode(dlerror.CodeEncodeFailed).
		WithOperation(operation).
		WithDetail("format", format.String())
}
