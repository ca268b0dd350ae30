// SPDX-License-Identifier: MIT
// Package algebra: sentinel error set.
// This file defines ONLY package-level sentinel errors. Every operation returns
// these sentinels (possibly wrapped with an operation tag) and tests match them
// via errors.Is. No operation panics on user-triggered conditions.

package algebra

import (
	"errors"

	"github.com/katalvlaran/lvalgebra/arith"
)

// ERROR PRIORITY (enforced in tests):
// nil component -> dimensionality -> index/range -> shape (square, fixed)
// -> numeric (divide by zero, not invertible).

var (
	// ErrMismatchedDimensionality is returned when a binary operation receives
	// operands of different dimensionality.
	ErrMismatchedDimensionality = errors.New("algebra: mismatched dimensionality")

	// ErrIndexOutOfRange indicates an index or coordinate outside the component.
	ErrIndexOutOfRange = errors.New("algebra: index out of range")

	// ErrNotSquare signals that matrix data does not form a square
	// (length is not a perfect square, or a sub-region is not square).
	ErrNotSquare = errors.New("algebra: not square")

	// ErrNotInvertible is returned by Inverse/SolveSystem when the determinant
	// is zero within tolerance.
	ErrNotInvertible = errors.New("algebra: matrix is not invertible")

	// ErrFixedDimensionViolation signals that a fixed-dimension kind (2/3/4-D
	// vector, 3×3/4×4 matrix) received a mismatched size.
	ErrFixedDimensionViolation = errors.New("algebra: fixed dimension violation")

	// ErrNullComponent indicates a nil component (receiver, argument or entry).
	ErrNullComponent = errors.New("algebra: null component")
)

// ErrDivideByZero is the arithmetic sentinel re-exported for callers that only
// import algebra. errors.Is(err, arith.ErrDivideByZero) holds as well.
var ErrDivideByZero = arith.ErrDivideByZero

// ErrNumberFormat is the parse sentinel re-exported from arith.
var ErrNumberFormat = arith.ErrNumberFormat
