// SPDX-License-Identifier: MIT
// Package algebra - Vector arithmetic.
//
// Purpose:
//   - Elementwise arithmetic, distance/average, dot product, norm and slicing.
//   - Every operation validates first and returns a fresh Vector of the
//     receiver's kind; operands are never mutated.

package algebra

import (
	"log/slog"
)

// checkVectorOperand validates a binary operand pair: both non-nil, same
// dimensionality. Returns an unwrapped validator error.
func checkVectorOperand[T any](v, o *Vector[T]) error {
	if v == nil || o == nil {
		return ErrNullComponent
	}

	return ValidateSameDimensionality(v.Dimensionality(), o.Dimensionality())
}

// zip is the shared facade for Plus/Minus/Times.
func (v *Vector[T]) zip(op string, o *Vector[T], f func(a, b T) T) (*Vector[T], error) {
	if err := checkVectorOperand(v, o); err != nil {
		return nil, algebraErrorf(op, err)
	}

	return v.derive(zipValues(v.data, o.data, f)), nil
}

// Plus returns v + o elementwise.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) Plus(o *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, algebraErrorf(opPlus, ErrNullComponent)
	}

	return v.zip(opPlus, o, v.sp.ar.Add)
}

// Minus returns v − o elementwise.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) Minus(o *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, algebraErrorf(opMinus, ErrNullComponent)
	}

	return v.zip(opMinus, o, v.sp.ar.Subtract)
}

// Times returns the elementwise (Hadamard) product v ∘ o.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) Times(o *Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, algebraErrorf(opTimes, ErrNullComponent)
	}

	return v.zip(opTimes, o, v.sp.ar.Multiply)
}

// DividedBy returns v / o elementwise.
//
// Implementation:
//   - Stage 1: operand checks, then every divisor of o is checked for zero.
//   - Stage 2: elementwise Divide into a fresh vector.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality, ErrDivideByZero.
// Complexity: O(n).
func (v *Vector[T]) DividedBy(o *Vector[T]) (*Vector[T], error) {
	if err := checkVectorOperand(v, o); err != nil {
		return nil, algebraErrorf(opDividedBy, err)
	}
	data, err := divideValues(v.sp.ar, v.data, o.data)
	if err != nil {
		return nil, algebraErrorf(opDividedBy, err)
	}

	return v.derive(data), nil
}

// Scale multiplies every value by the strategy's conversion of s.
// Complexity: O(n).
func (v *Vector[T]) Scale(s float64) *Vector[T] {
	return v.ScaleBy(v.sp.ar.ValueOf(s))
}

// ScaleBy multiplies every value by s.
// Complexity: O(n).
func (v *Vector[T]) ScaleBy(s T) *Vector[T] {
	ar := v.sp.ar

	return v.derive(mapValues(v.data, func(x T) T { return ar.Multiply(x, s) }))
}

// Negate returns −v.
func (v *Vector[T]) Negate() *Vector[T] {
	return v.derive(mapValues(v.data, v.sp.ar.Negate))
}

// Round rounds every value through the strategy.
func (v *Vector[T]) Round() *Vector[T] {
	return v.derive(mapValues(v.data, v.sp.ar.Round))
}

// Reverse returns a copy of v with the value order reversed.
func (v *Vector[T]) Reverse() *Vector[T] {
	return v.derive(reversedValues(v.data))
}

// Distance returns the Euclidean distance between v and o.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) Distance(o *Vector[T]) (T, error) {
	if err := checkVectorOperand(v, o); err != nil {
		var zero T
		return zero, algebraErrorf(opDistance, err)
	}

	return distanceValues(v.sp.ar, v.data, o.data), nil
}

// Midpoint returns the elementwise mean of v and o.
func (v *Vector[T]) Midpoint(o *Vector[T]) (*Vector[T], error) {
	return v.Average(o)
}

// Average returns the elementwise mean of v and all others.
//
// Implementation:
//   - Stage 1: every operand non-nil and of v's dimensionality.
//   - Stage 2: elementwise sum, then divide by the operand count.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(k·n).
func (v *Vector[T]) Average(others ...*Vector[T]) (*Vector[T], error) {
	if v == nil {
		return nil, algebraErrorf(opAverage, ErrNullComponent)
	}
	sets := make([][]T, 0, len(others)+1)
	sets = append(sets, v.data)
	for _, o := range others {
		if err := checkVectorOperand(v, o); err != nil {
			return nil, algebraErrorf(opAverage, err)
		}
		sets = append(sets, o.data)
	}
	data, err := averageValues(v.sp.ar, sets)
	if err != nil {
		return nil, algebraErrorf(opAverage, err)
	}

	return v.derive(data), nil
}

// AverageVector returns the elementwise mean of vs; the result takes the
// kind and space of vs[0].
//
// Errors: ErrNullComponent (empty list or nil entry), ErrMismatchedDimensionality.
func AverageVector[T any](vs ...*Vector[T]) (*Vector[T], error) {
	if len(vs) == 0 {
		return nil, algebraErrorf(opAverage, ErrNullComponent)
	}

	return vs[0].Average(vs[1:]...)
}

// Dot returns Σ v[i]·o[i].
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) Dot(o *Vector[T]) (T, error) {
	if err := checkVectorOperand(v, o); err != nil {
		var zero T
		return zero, algebraErrorf(opDot, err)
	}

	return dotValues(v.sp.ar, v.data, o.data), nil
}

// Hypotenuse returns the Euclidean norm sqrt(SquareSum()).
func (v *Vector[T]) Hypotenuse() T {
	return v.sp.ar.Sqrt(v.SquareSum())
}

// Normalize scales v by the reciprocal of its norm.
//
// Behavior highlights:
//   - A zero-length v yields an unchanged clone (logged at Debug); it never
//     divides by zero.
//
// Complexity: O(n).
func (v *Vector[T]) Normalize() *Vector[T] {
	ar := v.sp.ar
	h := v.Hypotenuse()
	if ar.IsZero(h) {
		v.debug(opNormalize, "normalize of zero-length vector", slog.Int("dim", v.Dimensionality()))

		return v.Clone()
	}
	inv, err := ar.Reciprocal(h)
	if err != nil {
		v.debug(opNormalize, "normalize reciprocal failed", slog.Any("err", err))

		return v.Clone()
	}

	return v.ScaleBy(inv)
}

// SubVector returns the values in the half-open range [from, to).
//
// Behavior highlights:
//   - KindVectorN yields KindVectorN.
//   - A fixed kind is legal only when to−from equals its dimension; the
//     result keeps the kind.
//
// Errors: ErrNullComponent, ErrIndexOutOfRange, ErrFixedDimensionViolation.
// Complexity: O(to−from).
func (v *Vector[T]) SubVector(from, to int) (*Vector[T], error) {
	if v == nil {
		return nil, algebraErrorf(opSubVector, ErrNullComponent)
	}
	if err := ValidateRange(from, to, len(v.data)); err != nil {
		return nil, algebraErrorf(opSubVector, err)
	}
	if err := ValidateFixedDimension(v.kind.Fixed(), to-from); err != nil {
		return nil, algebraErrorf(opSubVector, err)
	}
	data := make([]T, to-from)
	copy(data, v.data[from:to])

	return v.derive(data), nil
}
