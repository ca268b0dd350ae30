// SPDX-License-Identifier: MIT
// Package algebra - elementwise kernels shared by Vector and Matrix.
//
// Purpose:
//   - Declare the operation tags used for error wrapping (no magic strings).
//   - Implement the flat-slice kernels (zip, map, fold, average, distance)
//     exactly once; Vector and Matrix facades validate shape and wrap errors.
//
// Notes:
//   - Kernels never mutate their inputs and always allocate a fresh slice.
//   - Kernels assume validated input; all guards live at the facades.

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/arith"
)

// Operation name constants for unified error wrapping.
const (
	opGet            = "Get"
	opSet            = "Set"
	opPlus           = "Plus"
	opMinus          = "Minus"
	opTimes          = "Times"
	opHadamard       = "Hadamard"
	opDividedBy      = "DividedBy"
	opScale          = "Scale"
	opDistance       = "Distance"
	opAverage        = "Average"
	opCopyTo         = "CopyTo"
	opDot            = "Dot"
	opSubVector      = "SubVector"
	opCross          = "Cross"
	opDotFlop        = "DotFlop"
	opDotFlopNeg     = "DotFlopNegative"
	opSquareDiff     = "SquareDifference"
	opTimesVector    = "TimesVector"
	opDeterminant    = "Determinant"
	opMinor          = "Minor"
	opInverse        = "Inverse"
	opSolveSystem    = "SolveSystem"
	opTransform      = "Transform"
	opSubMatrix      = "SubMatrix"
	opRow            = "Row"
	opColumn         = "Column"
	opRedim          = "Redim"
	opNormalize      = "Normalize"
	opNewVector      = "NewVector"
	opNewMatrix      = "NewMatrix"
	opParseVector    = "ParseVector"
	opParseMatrix    = "ParseMatrix"
	opMatrixFromRows = "MatrixFromRows"
	opConvert        = "Convert"
)

// algebraErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
//
// Returns:
//   - error formatted as "<tag>: <underlying>" that still matches errors.Is.
//
// Complexity: O(1).
func algebraErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// zipValues computes out[i] = f(a[i], b[i]) for equally long a and b.
//
// Implementation:
//   - Stage 1: allocate out of len(a).
//   - Stage 2: single pass applying f.
//
// Complexity: O(n) time, O(n) space.
func zipValues[T any](a, b []T, f func(x, y T) T) []T {
	out := make([]T, len(a))
	for i := range a {
		out[i] = f(a[i], b[i])
	}

	return out
}

// mapValues computes out[i] = f(a[i]).
// Complexity: O(n) time, O(n) space.
func mapValues[T any](a []T, f func(x T) T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[i] = f(v)
	}

	return out
}

// divideValues computes out[i] = a[i] / b[i].
//
// Implementation:
//   - Stage 1: validateDivisors over b (fail fast, nothing allocated).
//   - Stage 2: elementwise Divide; a strategy error aborts the whole result.
//
// Errors: ErrDivideByZero when any b[i] is (tolerance-)zero.
// Complexity: O(n).
func divideValues[T any](ar arith.Arithmetic[T], a, b []T) ([]T, error) {
	if err := validateDivisors(ar, b); err != nil {
		return nil, err
	}
	out := make([]T, len(a))
	for i := range a {
		q, err := ar.Divide(a[i], b[i])
		if err != nil {
			return nil, err
		}
		out[i] = q
	}

	return out, nil
}

// sumValues folds values with Add starting from Zero.
func sumValues[T any](ar arith.Arithmetic[T], values []T) T {
	acc := ar.Zero()
	for _, v := range values {
		acc = ar.Add(acc, v)
	}

	return acc
}

// squareSumValues folds values with acc + v·v starting from Zero.
func squareSumValues[T any](ar arith.Arithmetic[T], values []T) T {
	acc := ar.Zero()
	for _, v := range values {
		acc = ar.Add(acc, ar.Multiply(v, v))
	}

	return acc
}

// dotValues folds pairwise products of equally long a and b.
func dotValues[T any](ar arith.Arithmetic[T], a, b []T) T {
	acc := ar.Zero()
	for i := range a {
		acc = ar.Add(acc, ar.Multiply(a[i], b[i]))
	}

	return acc
}

// distanceValues is the Euclidean distance sqrt(Σ (a[i]-b[i])²).
// Complexity: O(n).
func distanceValues[T any](ar arith.Arithmetic[T], a, b []T) T {
	acc := ar.Zero()
	for i := range a {
		d := ar.Subtract(a[i], b[i])
		acc = ar.Add(acc, ar.Multiply(d, d))
	}

	return ar.Sqrt(acc)
}

// averageValues computes the elementwise mean of equally long slices.
//
// Implementation:
//   - Stage 1: elementwise sum across sets.
//   - Stage 2: divide each sum by len(sets) converted through FromInt.
//
// Behavior highlights:
//   - Integer strategies truncate the mean (Divide truncates).
//
// Complexity: O(k·n) for k sets of length n.
func averageValues[T any](ar arith.Arithmetic[T], sets [][]T) ([]T, error) {
	if len(sets) == 0 {
		return nil, nil
	}
	n := len(sets[0])
	acc := zeroValues(ar, n)
	for _, s := range sets {
		for i := range acc {
			acc[i] = ar.Add(acc[i], s[i])
		}
	}
	count := ar.FromInt(int64(len(sets)))
	for i := range acc {
		q, err := ar.Divide(acc[i], count)
		if err != nil {
			return nil, err
		}
		acc[i] = q
	}

	return acc, nil
}

// reversedValues returns a copy of a in reverse order.
func reversedValues[T any](a []T) []T {
	out := make([]T, len(a))
	for i, v := range a {
		out[len(a)-1-i] = v
	}

	return out
}

// zeroValues allocates n fresh zeros (a new value per slot for pointer-backed T).
func zeroValues[T any](ar arith.Arithmetic[T], n int) []T {
	if n < 0 {
		n = 0
	}
	out := make([]T, n)
	for i := range out {
		out[i] = ar.Zero()
	}

	return out
}

// filledValues allocates n copies of v.
func filledValues[T any](v T, n int) []T {
	out := make([]T, n)
	for i := range out {
		out[i] = v
	}

	return out
}
