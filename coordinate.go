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
	"slices"
)

// Coordinate is a point in an arbitrary space, listed in whatever
// dimension order is requested. It wraps a Dict and adds ordering: an
// optional instance-level order override and an optional Space binding
// with a default order.
//
// The effective order of a coordinate resolves as instance override →
// space default → reverse lexicographic over the keys actually held.
// An order sequence may be a superset of the held keys; listing skips
// absent entries silently.
//
// Coordinates can have maths done to them, with either another
// Coordinate holding the same keys (order independent) or a scalar.
// Every operation returns a new coordinate carrying the left operand's
// order override and space binding.
type Coordinate[K cmp.Ordered] struct {
	dict  Dict[K]
	order []K
	space *Space[K]
}

// NewCoordinate creates a free coordinate (not bound to a space) from a
// Go map. The input map is copied.
func NewCoordinate[K cmp.Ordered](m map[K]float64) Coordinate[K] {
	return Coordinate[K]{dict: NewDict(m)}
}

// CoordinateOf creates a free coordinate from key/value pairs. On
// duplicate keys the last pair wins.
func CoordinateOf[K cmp.Ordered](pairs ...Pair[K]) Coordinate[K] {
	return Coordinate[K]{dict: DictOf(pairs...)}
}

// CoordinateFromValues creates a free coordinate positionally: values
// are zipped against the given order, which also becomes the instance's
// order override.
//
// An empty order yields ErrNoOrder; a value count differing from the
// order length yields an error wrapping ErrLengthMismatch.
func CoordinateFromValues[K cmp.Ordered](order []K, values ...float64) (Coordinate[K], error) {
	d, err := zipValues(order, values)
	if err != nil {
		return Coordinate[K]{}, err
	}
	return Coordinate[K]{dict: d, order: slices.Clone(order)}, nil
}

func zipValues[K cmp.Ordered](order []K, values []float64) (Dict[K], error) {
	if len(order) == 0 {
		return Dict[K]{}, ErrNoOrder
	}
	if len(values) != len(order) {
		return Dict[K]{}, fmt.Errorf("%w: %d values against order %v", ErrLengthMismatch, len(values), order)
	}
	m := make(map[K]float64, len(order))
	for i, k := range order {
		m[k] = values[i]
	}
	return Dict[K]{m: m}, nil
}

// WithOrder returns a copy of the coordinate carrying the given
// instance-level order override. The coordinate itself is unchanged.
func (c Coordinate[K]) WithOrder(order ...K) Coordinate[K] {
	out := Coordinate[K]{dict: c.dict, order: slices.Clone(order), space: c.space}
	return out
}

// Order resolves the effective dimension order: the instance override
// if set, else the space's default order if set, else the held keys
// sorted in reverse lexicographic order. It is computed fresh on every
// call, never cached.
func (c Coordinate[K]) Order() []K {
	if len(c.order) > 0 {
		return slices.Clone(c.order)
	}
	if c.space != nil && len(c.space.order) > 0 {
		return slices.Clone(c.space.order)
	}
	keys := c.dict.sortedKeys()
	slices.Reverse(keys)
	return keys
}

// Space returns the space the coordinate is bound to, or nil for free
// coordinates.
func (c Coordinate[K]) Space() *Space[K] {
	return c.space
}

// AsDict returns the coordinate's values as a plain Dict, dropping
// ordering and space binding.
func (c Coordinate[K]) AsDict() Dict[K] {
	return c.dict
}

// Len returns the number of dimensions.
func (c Coordinate[K]) Len() int {
	return c.dict.Len()
}

// Has reports whether the coordinate holds the given key.
func (c Coordinate[K]) Has(key K) bool {
	return c.dict.Has(key)
}

// At returns the value stored for a key. Looking up an absent key
// returns an error wrapping ErrNoSuchKey.
func (c Coordinate[K]) At(key K) (float64, error) {
	if v, ok := c.dict.m[key]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: %s has no key %v", ErrNoSuchKey, c.name(), key)
}

// Set rejects assignment and always returns ErrImmutable.
func (c Coordinate[K]) Set(key K, value float64) error {
	return ErrImmutable
}

// Equal reports whether two coordinates hold the same keys with the
// same values. Order overrides and space bindings do not participate.
func (c Coordinate[K]) Equal(other Coordinate[K]) bool {
	return c.dict.Equal(other.dict)
}

// Keys returns an iterator over the held keys in the given order, or in
// the resolved effective order when order is nil. Order entries absent
// from the coordinate are skipped.
func (c Coordinate[K]) Keys(order []K) iter.Seq[K] {
	ord := c.listing(order)
	return func(yield func(K) bool) {
		for _, k := range ord {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns an iterator over the held values, ordered like Keys.
func (c Coordinate[K]) Values(order []K) iter.Seq[float64] {
	ord := c.listing(order)
	return func(yield func(float64) bool) {
		for _, k := range ord {
			if !yield(c.dict.m[k]) {
				return
			}
		}
	}
}

// Items returns an iterator over key/value entries, ordered like Keys.
func (c Coordinate[K]) Items(order []K) iter.Seq2[K, float64] {
	ord := c.listing(order)
	return func(yield func(K, float64) bool) {
		for _, k := range ord {
			if !yield(k, c.dict.m[k]) {
				return
			}
		}
	}
}

// ToList returns the held values as a slice, ordered like Keys.
func (c Coordinate[K]) ToList(order []K) []float64 {
	ord := c.listing(order)
	values := make([]float64, len(ord))
	for i, k := range ord {
		values[i] = c.dict.m[k]
	}
	return values
}

// listing filters an order down to the keys actually held.
func (c Coordinate[K]) listing(order []K) []K {
	if len(order) == 0 {
		order = c.Order()
	}
	keys := make([]K, 0, len(order))
	for _, k := range order {
		if _, ok := c.dict.m[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// String returns a representation in the effective order, prefixed with
// the space name for space-bound coordinates.
func (c Coordinate[K]) String() string {
	return formatEntries(c.name(), c.listing(nil), c.dict.m)
}

func (c Coordinate[K]) name() string {
	if c.space != nil {
		return c.space.name
	}
	return "Coordinate"
}

// derive rebuilds a coordinate around a new dict, keeping the order
// override and space binding. The space validation hook re-runs on the
// result; elementwise operations preserve the key set, so a violation
// here is an internal fault.
func (c Coordinate[K]) derive(d Dict[K]) Coordinate[K] {
	if c.space != nil {
		assert(c.space.check(d) == nil, "derived coordinate left its space")
	}
	return Coordinate[K]{dict: d, order: c.order, space: c.space}
}

func (c Coordinate[K]) deriveErr(d Dict[K], err error) (Coordinate[K], error) {
	if err != nil {
		return Coordinate[K]{}, err
	}
	return c.derive(d), nil
}

// --- Unary operations ------------------------------------------------------

// Neg negates every value.
func (c Coordinate[K]) Neg() Coordinate[K] { return c.derive(c.dict.Neg()) }

// Pos is the unary identity. It returns a copy with unchanged values.
func (c Coordinate[K]) Pos() Coordinate[K] { return c.derive(c.dict.Pos()) }

// Abs replaces every value with its absolute value.
func (c Coordinate[K]) Abs() Coordinate[K] { return c.derive(c.dict.Abs()) }

// Ceil replaces every value with the least integer value >= value.
func (c Coordinate[K]) Ceil() Coordinate[K] { return c.derive(c.dict.Ceil()) }

// Floor replaces every value with the greatest integer value <= value.
func (c Coordinate[K]) Floor() Coordinate[K] { return c.derive(c.dict.Floor()) }

// Trunc replaces every value with its integer part.
func (c Coordinate[K]) Trunc() Coordinate[K] { return c.derive(c.dict.Trunc()) }

// Round rounds every value to ndigits decimal places.
func (c Coordinate[K]) Round(ndigits int) Coordinate[K] { return c.derive(c.dict.Round(ndigits)) }

// Map applies a caller-supplied function to every value.
func (c Coordinate[K]) Map(f func(float64) float64) Coordinate[K] { return c.derive(c.dict.Map(f)) }

// --- Container binary operations -------------------------------------------

// Add adds elementwise. The key sets must be equal.
func (c Coordinate[K]) Add(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Add(other.dict))
}

// Sub subtracts elementwise. The key sets must be equal.
func (c Coordinate[K]) Sub(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Sub(other.dict))
}

// Mul multiplies elementwise. The key sets must be equal.
func (c Coordinate[K]) Mul(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Mul(other.dict))
}

// Div divides elementwise. The key sets must be equal.
func (c Coordinate[K]) Div(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Div(other.dict))
}

// FloorDiv floor-divides elementwise. The key sets must be equal.
func (c Coordinate[K]) FloorDiv(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.FloorDiv(other.dict))
}

// Mod takes the floored modulo elementwise. The key sets must be equal.
func (c Coordinate[K]) Mod(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Mod(other.dict))
}

// Pow raises elementwise. The key sets must be equal.
func (c Coordinate[K]) Pow(other Coordinate[K]) (Coordinate[K], error) {
	return c.deriveErr(c.dict.Pow(other.dict))
}

// Divmod returns the elementwise quotient and remainder pair. The key
// sets must be equal.
func (c Coordinate[K]) Divmod(other Coordinate[K]) (Coordinate[K], Coordinate[K], error) {
	q, r, err := c.dict.Divmod(other.dict)
	if err != nil {
		return Coordinate[K]{}, Coordinate[K]{}, err
	}
	return c.derive(q), c.derive(r), nil
}

// --- Scalar broadcast operations -------------------------------------------

// AddScalar adds s to every value.
func (c Coordinate[K]) AddScalar(s float64) Coordinate[K] { return c.derive(c.dict.AddScalar(s)) }

// SubScalar subtracts s from every value.
func (c Coordinate[K]) SubScalar(s float64) Coordinate[K] { return c.derive(c.dict.SubScalar(s)) }

// MulScalar multiplies every value by s.
func (c Coordinate[K]) MulScalar(s float64) Coordinate[K] { return c.derive(c.dict.MulScalar(s)) }

// DivScalar divides every value by s.
func (c Coordinate[K]) DivScalar(s float64) Coordinate[K] { return c.derive(c.dict.DivScalar(s)) }

// FloorDivScalar floor-divides every value by s.
func (c Coordinate[K]) FloorDivScalar(s float64) Coordinate[K] {
	return c.derive(c.dict.FloorDivScalar(s))
}

// ModScalar takes every value modulo s.
func (c Coordinate[K]) ModScalar(s float64) Coordinate[K] { return c.derive(c.dict.ModScalar(s)) }

// PowScalar raises every value to the power s.
func (c Coordinate[K]) PowScalar(s float64) Coordinate[K] { return c.derive(c.dict.PowScalar(s)) }

// DivmodScalar returns the quotient and remainder of every value
// divided by s.
func (c Coordinate[K]) DivmodScalar(s float64) (Coordinate[K], Coordinate[K]) {
	q, r := c.dict.DivmodScalar(s)
	return c.derive(q), c.derive(r)
}

// --- Reflected scalar operations -------------------------------------------

// RSub subtracts every value from s: each value becomes s - value.
func (c Coordinate[K]) RSub(s float64) Coordinate[K] { return c.derive(c.dict.RSub(s)) }

// RDiv divides s by every value: each value becomes s / value.
func (c Coordinate[K]) RDiv(s float64) Coordinate[K] { return c.derive(c.dict.RDiv(s)) }

// RFloorDiv floor-divides s by every value.
func (c Coordinate[K]) RFloorDiv(s float64) Coordinate[K] { return c.derive(c.dict.RFloorDiv(s)) }

// RMod takes s modulo every value.
func (c Coordinate[K]) RMod(s float64) Coordinate[K] { return c.derive(c.dict.RMod(s)) }

// RPow raises s to the power of every value.
func (c Coordinate[K]) RPow(s float64) Coordinate[K] { return c.derive(c.dict.RPow(s)) }

// RDivmod returns the quotient and remainder of s divided by every
// value.
func (c Coordinate[K]) RDivmod(s float64) (Coordinate[K], Coordinate[K]) {
	q, r := c.dict.RDivmod(s)
	return c.derive(q), c.derive(r)
}

// --- Reductions ------------------------------------------------------------

// Sum returns the sum of all values.
func (c Coordinate[K]) Sum() float64 { return c.dict.Sum() }

// Prod returns the product of all values, 1 for an empty coordinate.
func (c Coordinate[K]) Prod() float64 { return c.dict.Prod() }

// Norm returns the Minkowski norm with the given order over the values.
// Order 2 is the Euclidean norm.
func (c Coordinate[K]) Norm(order float64) float64 { return c.dict.Norm(order) }
