// File: entry.go
// Title: Key-Value Pairs
// Description: Defines Entry, the key-value pair type used to build, inspect
//              and seed folds over a Dict.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mapx

import "fmt"

// Entry represents a key-value pair
type Entry[K comparable, V any] struct {
	Key   K `json:"key" yaml:"key"`
	Value V `json:"value" yaml:"value"`
}

// Pair creates an Entry
func Pair[K comparable, V any](key K, value V) Entry[K, V] {
	return Entry[K, V]{Key: key, Value: value}
}

// String renders the entry as (key, value)
func (e Entry[K, V]) String() string {
	return fmt.Sprintf("(%v, %v)", e.Key, e.Value)
}
