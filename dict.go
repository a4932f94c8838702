package coords

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/

import (
	"cmp"
	"fmt"
	"iter"
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Pair is a single key/value entry, used by pairwise constructors.
type Pair[K cmp.Ordered] struct {
	Key   K
	Value float64
}

// P creates a Pair.
func P[K cmp.Ordered](key K, value float64) Pair[K] {
	return Pair[K]{Key: key, Value: value}
}

// Dict is an immutable mapping from keys to numeric values which can
// have maths done to it, where the other operand is either another Dict
// with the same keys or a scalar.
//
// A dict created by
//
//	Dict[string]{}
//
// is a valid object and behaves like an empty mapping.
//
// Dicts are order-agnostic: deterministic iteration and printing use
// ascending key order. For configurable dimension ordering see
// Coordinate.
type Dict[K cmp.Ordered] struct {
	m map[K]float64
}

// NewDict creates a dict from a Go map. The input map is copied; later
// changes to it do not affect the dict.
func NewDict[K cmp.Ordered](m map[K]float64) Dict[K] {
	return Dict[K]{m: maps.Clone(m)}
}

// DictOf creates a dict from key/value pairs. On duplicate keys the
// last pair wins, mirroring map literal construction.
func DictOf[K cmp.Ordered](pairs ...Pair[K]) Dict[K] {
	m := make(map[K]float64, len(pairs))
	for _, p := range pairs {
		m[p.Key] = p.Value
	}
	return Dict[K]{m: m}
}

// Len returns the number of keys.
func (d Dict[K]) Len() int {
	return len(d.m)
}

// Has reports whether the dict holds the given key.
func (d Dict[K]) Has(key K) bool {
	_, ok := d.m[key]
	return ok
}

// At returns the value stored for a key. Looking up an absent key
// returns an error wrapping ErrNoSuchKey.
func (d Dict[K]) At(key K) (float64, error) {
	if v, ok := d.m[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: Dict has no key %v", ErrNoSuchKey, key)
}

// Set rejects assignment. Dicts are read-only after construction; Set
// exists so that misuse is a diagnosable error and always returns
// ErrImmutable.
func (d Dict[K]) Set(key K, value float64) error {
	return ErrImmutable
}

// Keys returns an iterator over all keys in ascending key order.
func (d Dict[K]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for _, k := range d.sortedKeys() {
			if !yield(k) {
				return
			}
		}
	}
}

// All returns an iterator over all key/value entries in ascending key
// order.
func (d Dict[K]) All() iter.Seq2[K, float64] {
	return func(yield func(K, float64) bool) {
		for _, k := range d.sortedKeys() {
			if !yield(k, d.m[k]) {
				return
			}
		}
	}
}

// Equal reports whether two dicts hold the same keys with the same
// values.
func (d Dict[K]) Equal(other Dict[K]) bool {
	return maps.Equal(d.m, other.m)
}

// String returns a deterministic representation in ascending key order.
func (d Dict[K]) String() string {
	return formatEntries[K]("Dict", d.sortedKeys(), d.m)
}

func (d Dict[K]) sortedKeys() []K {
	return slices.Sorted(maps.Keys(d.m))
}

func (d Dict[K]) sameKeys(other Dict[K]) bool {
	if len(d.m) != len(other.m) {
		return false
	}
	for k := range d.m {
		if _, ok := other.m[k]; !ok {
			return false
		}
	}
	return true
}

// formatEntries renders "name{k: v, ...}" for the given keys.
func formatEntries[K cmp.Ordered](name string, keys []K, m map[K]float64) string {
	var sb strings.Builder
	sb.WriteString(name)
	sb.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%v: %s", k, formatValue(m[k]))
	}
	sb.WriteByte('}')
	return sb.String()
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
