// File: dict.go
// Title: Augmented Ordered Mapping
// Description: Implements Dict, a key-unique, insertion-ordered mapping with
//              the standard lookup, insert, delete, iterate and size operations.
//              The chainable augmented operations live in ops.go.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation on top of go-ordered-map

package mapx

import (
	"fmt"
	"iter"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Dict is an insertion-ordered mapping from K to V.
//
// Order is the order in which keys were first inserted. Setting a key that
// is already present replaces its value and keeps its position; it does not
// move the key to the end. To move a key, Delete it and Set it again.
// Every mutating method returns the receiver so calls chain. A nil *Dict
// reads as empty. A Dict is not safe for concurrent use.
type Dict[K comparable, V any] struct {
	om *orderedmap.OrderedMap[K, V]
}

// Mapping is anything that yields key-value pairs in a defined order.
// *Dict implements it.
type Mapping[K comparable, V any] interface {
	All() iter.Seq2[K, V]
}

// New creates an empty Dict
func New[K comparable, V any]() *Dict[K, V] {
	return &Dict[K, V]{om: orderedmap.New[K, V]()}
}

// FromEntries creates a Dict from key-value pairs in the given order.
// Later pairs override earlier ones with the same key.
func FromEntries[K comparable, V any](entries ...Entry[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// FromMap creates a Dict from a native map.
// The resulting order follows Go map iteration and is therefore unspecified.
func FromMap[K comparable, V any](m map[K]V) *Dict[K, V] {
	d := New[K, V]()
	for k, v := range m {
		d.Set(k, v)
	}
	return d
}

// FromSeq creates a Dict from a sequence of key-value pairs
func FromSeq[K comparable, V any](seq iter.Seq2[K, V]) *Dict[K, V] {
	d := New[K, V]()
	for k, v := range seq {
		d.Set(k, v)
	}
	return d
}

func (d *Dict[K, V]) mapping() {}

func (d *Dict[K, V]) store() *orderedmap.OrderedMap[K, V] {
	if d.om == nil {
		d.om = orderedmap.New[K, V]()
	}
	return d.om
}

// Get returns the value stored under key and whether it was present
func (d *Dict[K, V]) Get(key K) (V, bool) {
	if d == nil || d.om == nil {
		var zero V
		return zero, false
	}
	return d.om.Get(key)
}

// Value returns the value stored under key, or the zero value
func (d *Dict[K, V]) Value(key K) V {
	v, _ := d.Get(key)
	return v
}

// Has reports whether key is present
func (d *Dict[K, V]) Has(key K) bool {
	_, ok := d.Get(key)
	return ok
}

// Set stores value under key. A new key is appended; an existing key keeps
// its position rather than moving to the end.
func (d *Dict[K, V]) Set(key K, value V) *Dict[K, V] {
	d.store().Set(key, value)
	return d
}

// Delete removes the given keys. Missing keys are ignored.
func (d *Dict[K, V]) Delete(keys ...K) *Dict[K, V] {
	if d == nil || d.om == nil {
		return d
	}
	for _, k := range keys {
		d.om.Delete(k)
	}
	return d
}

// Pop removes key and returns the value it held
func (d *Dict[K, V]) Pop(key K) (V, bool) {
	if d == nil || d.om == nil {
		var zero V
		return zero, false
	}
	return d.om.Delete(key)
}

// Len returns the number of entries
func (d *Dict[K, V]) Len() int {
	if d == nil || d.om == nil {
		return 0
	}
	return d.om.Len()
}

// All returns an iterator over all key-value pairs in insertion order.
// The entry following the current one is looked up before yielding, so the
// loop body may delete the current key.
func (d *Dict[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if d == nil || d.om == nil {
			return
		}
		for pair := d.om.Oldest(); pair != nil; {
			next := pair.Next()
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = next
		}
	}
}

// Backward returns an iterator over all pairs from newest to oldest
func (d *Dict[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if d == nil || d.om == nil {
			return
		}
		for pair := d.om.Newest(); pair != nil; {
			prev := pair.Prev()
			if !yield(pair.Key, pair.Value) {
				return
			}
			pair = prev
		}
	}
}

// Keys returns the keys in insertion order
func (d *Dict[K, V]) Keys() []K {
	keys := make([]K, 0, d.Len())
	for k := range d.All() {
		keys = append(keys, k)
	}
	return keys
}

// Values returns the values in insertion order
func (d *Dict[K, V]) Values() []V {
	values := make([]V, 0, d.Len())
	for _, v := range d.All() {
		values = append(values, v)
	}
	return values
}

// Entries returns the key-value pairs in insertion order
func (d *Dict[K, V]) Entries() []Entry[K, V] {
	entries := make([]Entry[K, V], 0, d.Len())
	for k, v := range d.All() {
		entries = append(entries, Entry[K, V]{Key: k, Value: v})
	}
	return entries
}

// ToMap converts the Dict to a native map. Order is lost.
func (d *Dict[K, V]) ToMap() map[K]V {
	if d == nil {
		return nil
	}
	m := make(map[K]V, d.Len())
	for k, v := range d.All() {
		m[k] = v
	}
	return m
}

// Clone returns a shallow copy with the same order
func (d *Dict[K, V]) Clone() *Dict[K, V] {
	return FromSeq(d.All())
}

// String renders the Dict as {k1: v1, k2: v2}
func (d *Dict[K, V]) String() string {
	var b strings.Builder
	b.WriteByte('{')
	first := true
	for k, v := range d.All() {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", k, v)
	}
	b.WriteByte('}')
	return b.String()
}

// Equal reports whether a and b hold the same set of pairs, ignoring order
func Equal[K, V comparable](a, b *Dict[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq
func EqualFunc[K comparable, V any](a, b *Dict[K, V], eq func(V, V) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	for k, va := range a.All() {
		vb, ok := b.Get(k)
		if !ok || !eq(va, vb) {
			return false
		}
	}
	return true
}

// EqualOrdered reports whether a and b hold the same pairs in the same order
func EqualOrdered[K, V comparable](a, b *Dict[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	next, stop := iter.Pull2(b.All())
	defer stop()
	for ka, va := range a.All() {
		kb, vb, ok := next()
		if !ok || ka != kb || va != vb {
			return false
		}
	}
	return true
}
