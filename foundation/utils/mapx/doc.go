// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides Dict, an insertion-ordered mapping with
//              chainable convenience operations, together with order-preserving
//              JSON, YAML and TOML codecs.
// Author: hellerve
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-18 v0.1.0: Initial documentation

// Package mapx provides an augmented, insertion-ordered mapping.
//
// # Overview
//
// Dict[K, V] is a key-unique mapping that remembers the order in which keys
// were first inserted. Besides the usual Get, Set, Delete, Len and All it
// offers a small fixed set of operations that return the Dict itself, so
// they can be chained:
//
//	d := mapx.FromEntries(
//		mapx.Pair("a", 0),
//		mapx.Pair("b", 1),
//		mapx.Pair("c", 2),
//	)
//	d.RemoveEmpty().SetDefault("d", 3).Delete("c")
//	// d is now {b: 1, d: 3}
//
// # Operations
//
//   - Reset: replace the contents with another mapping, in its order
//   - Invert: swap keys and values; on duplicate values the last key wins
//   - Filter, FilterKeys, FilterBy, RemoveEmpty: keep entries passing a
//     predicate, by value or by key; the default predicate is Truthy
//   - Update, Merge, MergeMap, MergeEntries: write other mappings or pairs
//     into the Dict, later writes override earlier ones
//   - Reduce: fold in order; the method seeds the accumulator with the first
//     pair, the package function starts from an explicit initial value
//   - Clear, SetDefault, SetDefaults
//
// Operations that can fail (Invert, Update, Reduce) return an error built
// with the foundation error package. Its code tells the failure apart:
//
//   - CodeUnhashableValue: a value cannot become a key during Invert
//   - CodeEmptyReduce: Reduce on an empty Dict; the error wraps ErrExhausted
//   - CodeTypeMismatch: Update got something that is not a mapping or pairs,
//     or Invert met a value of the wrong type
//
// A failed operation leaves the Dict unchanged.
//
// # Order
//
// Iteration follows insertion order. Setting an existing key replaces the
// value in place. Reset, Invert and the filters rebuild the Dict, so its
// order afterwards is the order of the mapping it was rebuilt from. Dicts
// built from native Go maps take Go's unspecified map order.
//
// # Encoding
//
// Dict implements json.Marshaler, json.Unmarshaler, yaml.Marshaler and
// yaml.Unmarshaler and keeps key order in both directions. Decode and Encode
// handle JSON, YAML and TOML documents with string keys. Nested mappings
// decode as *Dict[string, any] so their order survives too; YAML merge keys
// fill in keys the mapping does not set. Empty input and a null document
// decode to an empty Dict.
//
// # Concurrency
//
// A Dict has no internal locking. Guard it with a mutex when it is shared
// between goroutines and any of them writes.
package mapx
