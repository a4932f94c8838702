package coords

import (
	"fmt"
	"math"
)

// Elementwise arithmetic on Dict. All operations construct a new dict
// and leave the operands untouched. Binary operations come in three
// families:
//
//   - container form, e.g. Add(other): the key sets must be set-equal,
//     each output value combines the two values stored under the key;
//   - scalar form, e.g. AddScalar(s): s is broadcast over all values;
//   - reflected scalar form, e.g. RSub(s): s is the left operand, for
//     the non-commutative operations. Reflected add and mul are the
//     forward scalar forms.
//
// FloorDiv is floor(a/b) and Mod is the floored modulo a-b*floor(a/b),
// so Divmod is exact: q*b + r == a with r carrying the divisor's sign.

func (d Dict[K]) unaryOp(f func(float64) float64) Dict[K] {
	m := make(map[K]float64, len(d.m))
	for k, v := range d.m {
		m[k] = f(v)
	}
	return Dict[K]{m: m}
}

func (d Dict[K]) scalarOp(s float64, f func(a, b float64) float64) Dict[K] {
	m := make(map[K]float64, len(d.m))
	for k, v := range d.m {
		m[k] = f(v, s)
	}
	return Dict[K]{m: m}
}

func (d Dict[K]) binaryOp(other Dict[K], f func(a, b float64) float64) (Dict[K], error) {
	if !d.sameKeys(other) {
		return Dict[K]{}, fmt.Errorf("%w: %s and %s", ErrKeyMismatch, d, other)
	}
	m := make(map[K]float64, len(d.m))
	for k, v := range d.m {
		m[k] = f(v, other.m[k])
	}
	return Dict[K]{m: m}, nil
}

func opAdd(a, b float64) float64 { return a + b }
func opSub(a, b float64) float64 { return a - b }
func opMul(a, b float64) float64 { return a * b }
func opDiv(a, b float64) float64 { return a / b }
func opFloorDiv(a, b float64) float64 {
	return math.Floor(a / b)
}
func opMod(a, b float64) float64 {
	return a - b*math.Floor(a/b)
}

// flip swaps the operands, turning a forward operation into its
// reflected counterpart.
func flip(f func(a, b float64) float64) func(a, b float64) float64 {
	return func(a, b float64) float64 { return f(b, a) }
}

func roundTo(ndigits int) func(float64) float64 {
	p := math.Pow(10, float64(ndigits))
	return func(v float64) float64 { return math.Round(v*p) / p }
}

// --- Unary operations ------------------------------------------------------

// Neg negates every value.
func (d Dict[K]) Neg() Dict[K] { return d.unaryOp(func(v float64) float64 { return -v }) }

// Pos is the unary identity. It returns a copy with unchanged values.
func (d Dict[K]) Pos() Dict[K] { return d.unaryOp(func(v float64) float64 { return v }) }

// Abs replaces every value with its absolute value.
func (d Dict[K]) Abs() Dict[K] { return d.unaryOp(math.Abs) }

// Ceil replaces every value with the least integer value >= value.
func (d Dict[K]) Ceil() Dict[K] { return d.unaryOp(math.Ceil) }

// Floor replaces every value with the greatest integer value <= value.
func (d Dict[K]) Floor() Dict[K] { return d.unaryOp(math.Floor) }

// Trunc replaces every value with its integer part.
func (d Dict[K]) Trunc() Dict[K] { return d.unaryOp(math.Trunc) }

// Round rounds every value to ndigits decimal places, halves away from
// zero.
func (d Dict[K]) Round(ndigits int) Dict[K] { return d.unaryOp(roundTo(ndigits)) }

// Map applies a caller-supplied function to every value.
func (d Dict[K]) Map(f func(float64) float64) Dict[K] { return d.unaryOp(f) }

// --- Container binary operations -------------------------------------------

// Add adds elementwise. The key sets must be equal.
func (d Dict[K]) Add(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opAdd) }

// Sub subtracts elementwise. The key sets must be equal.
func (d Dict[K]) Sub(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opSub) }

// Mul multiplies elementwise. The key sets must be equal.
func (d Dict[K]) Mul(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opMul) }

// Div divides elementwise. The key sets must be equal.
func (d Dict[K]) Div(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opDiv) }

// FloorDiv floor-divides elementwise. The key sets must be equal.
func (d Dict[K]) FloorDiv(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opFloorDiv) }

// Mod takes the floored modulo elementwise. The key sets must be equal.
func (d Dict[K]) Mod(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, opMod) }

// Pow raises elementwise. The key sets must be equal.
func (d Dict[K]) Pow(other Dict[K]) (Dict[K], error) { return d.binaryOp(other, math.Pow) }

// Divmod returns the elementwise quotient and remainder pair. The key
// sets must be equal.
func (d Dict[K]) Divmod(other Dict[K]) (Dict[K], Dict[K], error) {
	q, err := d.binaryOp(other, opFloorDiv)
	if err != nil {
		return Dict[K]{}, Dict[K]{}, err
	}
	r, err := d.binaryOp(other, opMod)
	assert(err == nil, "divmod: remainder failed after quotient succeeded")
	return q, r, nil
}

// --- Scalar broadcast operations -------------------------------------------

// AddScalar adds s to every value.
func (d Dict[K]) AddScalar(s float64) Dict[K] { return d.scalarOp(s, opAdd) }

// SubScalar subtracts s from every value.
func (d Dict[K]) SubScalar(s float64) Dict[K] { return d.scalarOp(s, opSub) }

// MulScalar multiplies every value by s.
func (d Dict[K]) MulScalar(s float64) Dict[K] { return d.scalarOp(s, opMul) }

// DivScalar divides every value by s.
func (d Dict[K]) DivScalar(s float64) Dict[K] { return d.scalarOp(s, opDiv) }

// FloorDivScalar floor-divides every value by s.
func (d Dict[K]) FloorDivScalar(s float64) Dict[K] { return d.scalarOp(s, opFloorDiv) }

// ModScalar takes every value modulo s.
func (d Dict[K]) ModScalar(s float64) Dict[K] { return d.scalarOp(s, opMod) }

// PowScalar raises every value to the power s.
func (d Dict[K]) PowScalar(s float64) Dict[K] { return d.scalarOp(s, math.Pow) }

// DivmodScalar returns the quotient and remainder of every value
// divided by s.
func (d Dict[K]) DivmodScalar(s float64) (Dict[K], Dict[K]) {
	return d.scalarOp(s, opFloorDiv), d.scalarOp(s, opMod)
}

// --- Reflected scalar operations -------------------------------------------

// RSub subtracts every value from s: each value becomes s - value.
func (d Dict[K]) RSub(s float64) Dict[K] { return d.scalarOp(s, flip(opSub)) }

// RDiv divides s by every value: each value becomes s / value.
func (d Dict[K]) RDiv(s float64) Dict[K] { return d.scalarOp(s, flip(opDiv)) }

// RFloorDiv floor-divides s by every value.
func (d Dict[K]) RFloorDiv(s float64) Dict[K] { return d.scalarOp(s, flip(opFloorDiv)) }

// RMod takes s modulo every value.
func (d Dict[K]) RMod(s float64) Dict[K] { return d.scalarOp(s, flip(opMod)) }

// RPow raises s to the power of every value.
func (d Dict[K]) RPow(s float64) Dict[K] { return d.scalarOp(s, flip(math.Pow)) }

// RDivmod returns the quotient and remainder of s divided by every
// value.
func (d Dict[K]) RDivmod(s float64) (Dict[K], Dict[K]) {
	return d.scalarOp(s, flip(opFloorDiv)), d.scalarOp(s, flip(opMod))
}

// --- Reductions ------------------------------------------------------------

// Sum returns the sum of all values.
func (d Dict[K]) Sum() float64 {
	var sum float64
	for _, v := range d.m {
		sum += v
	}
	return sum
}

// Prod returns the product of all values, 1 for an empty dict.
func (d Dict[K]) Prod() float64 {
	p := 1.0
	for _, v := range d.m {
		p *= v
	}
	return p
}

// Norm returns the Minkowski norm with the given order over the values,
// (Σ|v|^order)^(1/order). Order 2 is the Euclidean norm.
func (d Dict[K]) Norm(order float64) float64 {
	var sum float64
	for _, v := range d.m {
		sum += math.Pow(math.Abs(v), order)
	}
	return math.Pow(sum, 1/order)
}
