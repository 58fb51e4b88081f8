// File: truth.go
// Title: Truthiness
// Description: Implements the default keep-predicate used by Filter: a value
//              is falsy when it is nil, false, numerically zero, empty or a
//              zero struct.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mapx

import "reflect"

// Truther lets a type decide its own truthiness
type Truther interface {
	Truth() bool
}

// Lener is implemented by sized containers; they are truthy when non-empty
type Lener interface {
	Len() int
}

// Truthy reports whether v counts as true.
//
// Rules, in order: nil values and nil pointers, maps, slices, channels and
// functions are false; a Truther decides for itself; a Lener is true when
// Len() > 0; booleans are themselves; numbers are true unless zero; strings,
// slices, maps, arrays and channels are true unless empty; structs are true
// unless they are the zero value. Everything else is true.
func Truthy[T any](v T) bool {
	return truthy(any(v))
}

func truthy(x any) bool {
	if x == nil {
		return false
	}

	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		if rv.IsNil() {
			return false
		}
	}

	switch t := x.(type) {
	case Truther:
		return t.Truth()
	case Lener:
		return t.Len() > 0
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case float64:
		return t != 0
	}

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() != 0
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return rv.Len() > 0
	case reflect.Struct:
		return !rv.IsZero()
	default:
		return true
	}
}
