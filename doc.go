/*
Package coords provides small immutable coordinate values in arbitrary
spaces.

Coordinates

A coordinate is a point in an arbitrary-dimensional space, keyed by
labels ('x', 'y', 'z' or 'a', 'b', 'c' — any ordered key type will do).
Coordinates behave like read-only dictionaries, but they can have maths
done to them: elementwise arithmetic against a scalar or against another
coordinate with the same keys, plus reductions like sums and vector
norms.

Two layers make up the package. Dict is the arithmetic engine: an
immutable key→value mapping with elementwise unary and binary operators.
Coordinate builds on Dict and adds dimension ordering — a deterministic
but configurable listing order that is independent of how the values are
stored. Space describes families of coordinates which must carry an
exact set of dimension keys; constructing a coordinate through a space
validates its key set and stamps the space's default ordering onto it.

All values in this package are immutable: operations never change an
existing coordinate but return a new one, preserving the operand's
ordering and space binding. Sharing coordinates between goroutines
therefore needs no synchronization.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the License file in the repository root.

*/
package coords

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// CoordError is an error type for the coords module
type CoordError string

func (e CoordError) Error() string {
	return string(e)
}

// ErrNoSuchKey is flagged when a key lookup names a dimension the
// container does not have.
const ErrNoSuchKey = CoordError("no such key")

// ErrKeyMismatch signals a binary operation between two containers whose
// key sets differ.
const ErrKeyMismatch = CoordError("operands do not have the same keys")

// ErrImmutable signals an attempt to assign into an existing instance.
// Containers are read-only after construction.
const ErrImmutable = CoordError("items cannot be set")

// ErrNoOrder signals positional construction without a resolvable
// dimension order.
const ErrNoOrder = CoordError("cannot parse values with no order")

// ErrLengthMismatch signals positional construction where the value
// count differs from the length of the order.
const ErrLengthMismatch = CoordError("values do not match length of order")

// ErrSpaceMismatch signals a coordinate whose key set differs from the
// required keys of its space.
const ErrSpaceMismatch = CoordError("coordinate does not match its space")

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
