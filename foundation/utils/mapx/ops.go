// File: ops.go
// Title: Chainable Dict Operations
// Description: Implements the augmented operations of Dict: reset, invert,
//              filter, update/merge, reduce, clear and setdefault. Mutating
//              operations return the receiver; operations that can fail return
//              it together with an error and leave the contents untouched.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial implementation

package mapx

import (
	"fmt"
	"iter"
	"reflect"
)

// Reset replaces the contents of d with the pairs of other, in other's order.
// other may be d itself.
func (d *Dict[K, V]) Reset(other Mapping[K, V]) *Dict[K, V] {
	var entries []Entry[K, V]
	if other != nil {
		for k, v := range other.All() {
			entries = append(entries, Entry[K, V]{Key: k, Value: v})
		}
	}

	d.Clear()
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// ResetMap replaces the contents of d with the pairs of a native map
func (d *Dict[K, V]) ResetMap(m map[K]V) *Dict[K, V] {
	return d.Reset(FromMap(m))
}

// Clear removes all entries
func (d *Dict[K, V]) Clear() *Dict[K, V] {
	d.om = nil
	return d
}

// Invert swaps keys and values in place. When several keys share a value,
// the key written last in iteration order wins.
//
// Inverting in place needs every value to be usable as a K and every key as
// a V, which holds for Dict[T, T] and Dict[any, any]. A value of the wrong
// type fails with CodeTypeMismatch; a value that cannot be a map key at all
// (a slice held in an interface, say) fails with CodeUnhashableValue. On
// failure d is unchanged.
func (d *Dict[K, V]) Invert() (*Dict[K, V], error) {
	const op = "mapx.Dict.Invert"

	tmp := New[K, V]()
	for k, v := range d.All() {
		newKey, ok := convert[K](v)
		if !ok {
			return d, errTypeMismatch(op, v, "key type "+typeName[K]())
		}
		if !hashable(newKey) {
			return d, errUnhashable(op, any(newKey))
		}
		newValue, ok := convert[V](k)
		if !ok {
			return d, errTypeMismatch(op, k, "value type "+typeName[V]())
		}
		tmp.Set(newKey, newValue)
	}
	return d.Reset(tmp), nil
}

// Invert returns a new Dict mapping each value of d to its key. When several
// keys share a value, the key written last in iteration order wins. A value
// whose dynamic type cannot be a map key fails with CodeUnhashableValue.
func Invert[K, V comparable](d *Dict[K, V]) (*Dict[V, K], error) {
	inverted := New[V, K]()
	for k, v := range d.All() {
		if !hashable(v) {
			return nil, errUnhashable("mapx.Invert", any(v))
		}
		inverted.Set(v, k)
	}
	return inverted, nil
}

// Filter keeps the entries whose value satisfies keep, preserving order.
// A nil keep means Truthy.
func (d *Dict[K, V]) Filter(keep func(V) bool) *Dict[K, V] {
	if keep == nil {
		keep = Truthy[V]
	}
	return d.filter(func(_ K, v V) bool { return keep(v) })
}

// FilterKeys keeps the entries whose key satisfies keep, preserving order.
// A nil keep means Truthy.
func (d *Dict[K, V]) FilterKeys(keep func(K) bool) *Dict[K, V] {
	if keep == nil {
		keep = Truthy[K]
	}
	return d.filter(func(k K, _ V) bool { return keep(k) })
}

// FilterBy applies keep to each value, or to each key when byKeys is set.
// A nil keep means Truthy.
func (d *Dict[K, V]) FilterBy(keep func(any) bool, byKeys bool) *Dict[K, V] {
	if keep == nil {
		keep = Truthy[any]
	}
	if byKeys {
		return d.filter(func(k K, _ V) bool { return keep(k) })
	}
	return d.filter(func(_ K, v V) bool { return keep(v) })
}

// RemoveEmpty drops every entry with a falsy value
func (d *Dict[K, V]) RemoveEmpty() *Dict[K, V] {
	return d.Filter(nil)
}

func (d *Dict[K, V]) filter(keep func(K, V) bool) *Dict[K, V] {
	tmp := New[K, V]()
	for k, v := range d.All() {
		if keep(k, v) {
			tmp.Set(k, v)
		}
	}
	return d.Reset(tmp)
}

// Update merges sources into d in the order given; later writes override
// earlier ones for the same key. Accepted sources are map[K]V, *Dict[K, V]
// or any other Mapping[K, V], a single Entry[K, V], []Entry[K, V] and
// iter.Seq2[K, V]. Any other source fails with CodeTypeMismatch before
// anything is written.
func (d *Dict[K, V]) Update(sources ...any) (*Dict[K, V], error) {
	seqs := make([]iter.Seq2[K, V], 0, len(sources))
	for _, src := range sources {
		seq, ok := asSeq[K, V](src)
		if !ok {
			return d, errTypeMismatch("mapx.Dict.Update", src, "mapping or pairs of "+typeName[K]()+" to "+typeName[V]())
		}
		seqs = append(seqs, seq)
	}

	for _, seq := range seqs {
		for k, v := range seq {
			d.Set(k, v)
		}
	}
	return d, nil
}

// Merge is Update for statically typed sources; it cannot fail
func (d *Dict[K, V]) Merge(others ...Mapping[K, V]) *Dict[K, V] {
	for _, other := range others {
		if other == nil {
			continue
		}
		for k, v := range other.All() {
			d.Set(k, v)
		}
	}
	return d
}

// MergeMap merges native maps into d. Within one map the insertion order of
// new keys follows Go map iteration.
func (d *Dict[K, V]) MergeMap(maps ...map[K]V) *Dict[K, V] {
	for _, m := range maps {
		for k, v := range m {
			d.Set(k, v)
		}
	}
	return d
}

// MergeEntries merges key-value pairs into d in order
func (d *Dict[K, V]) MergeEntries(entries ...Entry[K, V]) *Dict[K, V] {
	for _, e := range entries {
		d.Set(e.Key, e.Value)
	}
	return d
}

// SetDefault stores value under key unless key is already present.
// It never overwrites; use Get to read the resulting value.
func (d *Dict[K, V]) SetDefault(key K, value V) *Dict[K, V] {
	if !d.Has(key) {
		d.Set(key, value)
	}
	return d
}

// SetDefaults applies SetDefault for every pair of defaults, in order
func (d *Dict[K, V]) SetDefaults(defaults Mapping[K, V]) *Dict[K, V] {
	if defaults == nil {
		return d
	}
	for k, v := range defaults.All() {
		d.SetDefault(k, v)
	}
	return d
}

// Reduce folds d in iteration order. The first pair seeds the accumulator and
// is not passed to fn; fn is called once for each remaining pair, so for n
// entries it runs n-1 times. An empty Dict fails with CodeEmptyReduce, and the
// error wraps ErrExhausted.
//
// Use the package-level Reduce to fold from an explicit initial value.
func (d *Dict[K, V]) Reduce(fn func(acc Entry[K, V], key K, value V) Entry[K, V]) (Entry[K, V], error) {
	next, stop := iter.Pull2(d.All())
	defer stop()

	k, v, ok := next()
	if !ok {
		return Entry[K, V]{}, errEmptyReduce()
	}

	acc := Entry[K, V]{Key: k, Value: v}
	for {
		k, v, ok := next()
		if !ok {
			return acc, nil
		}
		acc = fn(acc, k, v)
	}
}

// Reduce folds d in iteration order starting from initial; fn is called once
// per entry.
func Reduce[K comparable, V, A any](d *Dict[K, V], fn func(acc A, key K, value V) A, initial A) A {
	acc := initial
	for k, v := range d.All() {
		acc = fn(acc, k, v)
	}
	return acc
}

func asSeq[K comparable, V any](src any) (iter.Seq2[K, V], bool) {
	switch s := src.(type) {
	case map[K]V:
		return func(yield func(K, V) bool) {
			for k, v := range s {
				if !yield(k, v) {
					return
				}
			}
		}, true
	case *Dict[K, V]:
		return s.All(), true
	case Mapping[K, V]:
		return s.All(), true
	case Entry[K, V]:
		return func(yield func(K, V) bool) { yield(s.Key, s.Value) }, true
	case []Entry[K, V]:
		return func(yield func(K, V) bool) {
			for _, e := range s {
				if !yield(e.Key, e.Value) {
					return
				}
			}
		}, true
	case iter.Seq2[K, V]:
		return s, s != nil
	case func(func(K, V) bool):
		return s, s != nil
	default:
		return nil, false
	}
}

// convert asserts x to T. A nil x converts to the zero T when T is an
// interface type, since nil is a valid interface key.
func convert[T any](x any) (T, bool) {
	if t, ok := x.(T); ok {
		return t, true
	}
	var zero T
	if x == nil && reflect.TypeFor[T]().Kind() == reflect.Interface {
		return zero, true
	}
	return zero, false
}

// hashable reports whether the dynamic value of x can be a map key. A Dict
// is a mapping like a native map and never becomes a key, even though its
// pointer is comparable.
func hashable[T any](x T) bool {
	v := any(x)
	if v == nil {
		return true
	}
	if _, ok := v.(interface{ mapping() }); ok {
		return false
	}
	return reflect.ValueOf(v).Comparable()
}

func typeName[T any]() string {
	return fmt.Sprint(reflect.TypeFor[T]())
}
