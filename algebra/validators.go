// SPDX-License-Identifier: MIT
// Package: algebra
//
// Purpose:
//   - Provide a single source of truth for shape, index and size checks.
//   - Keep kernels minimal by delegating guards here; every kernel validates
//     BEFORE touching data, so a failed call never leaves partial mutation.
//   - Return sentinel errors wrapped with a validator tag so call sites can
//     wrap once more with their operation tag.
//
// Determinism & Performance:
//   - All checks are pure and O(1) except validateEntries/validateDivisors (O(n)).

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/arith"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateSameDimensionality ensures two operands have equal dimensionality.
//
// Inputs: dimensionality of each operand.
// Returns: nil or wrapped ErrMismatchedDimensionality.
// Complexity: O(1).
func ValidateSameDimensionality(a, b int) error {
	if a != b {
		return validatorErrorf(fmt.Sprintf("ValidateSameDimensionality(%d,%d)", a, b), ErrMismatchedDimensionality)
	}

	return nil
}

// ValidateIndex ensures 0 ≤ i < n.
//
// Returns: nil or wrapped ErrIndexOutOfRange.
// Complexity: O(1).
func ValidateIndex(i, n int) error {
	if i < 0 || i >= n {
		return validatorErrorf(fmt.Sprintf("ValidateIndex(%d of %d)", i, n), ErrIndexOutOfRange)
	}

	return nil
}

// ValidateRange ensures the half-open range [from, to) lies within [0, n].
// An empty range (from == to) is legal.
//
// Returns: nil or wrapped ErrIndexOutOfRange.
// Complexity: O(1).
func ValidateRange(from, to, n int) error {
	if from < 0 || to > n || from > to {
		return validatorErrorf(fmt.Sprintf("ValidateRange([%d,%d) of %d)", from, to, n), ErrIndexOutOfRange)
	}

	return nil
}

// IsPerfectSquare reports whether n = d² for some d ≥ 0 and returns d.
// Complexity: O(1) (integer square root with a correction step).
func IsPerfectSquare(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	d := int(arith.Int{}.Sqrt(int64(n)))

	return d, d*d == n
}

// ValidatePerfectSquare returns the side length of a flat matrix buffer.
//
// Returns: (dim, nil) or (0, wrapped ErrNotSquare).
// Complexity: O(1).
func ValidatePerfectSquare(n int) (int, error) {
	d, ok := IsPerfectSquare(n)
	if !ok {
		return 0, validatorErrorf(fmt.Sprintf("ValidatePerfectSquare(%d)", n), ErrNotSquare)
	}

	return d, nil
}

// ValidateFixedDimension ensures a fixed-dimension kind receives exactly its
// dimension. fixed == 0 means the kind is resizeable and anything goes.
//
// Returns: nil or wrapped ErrFixedDimensionViolation.
// Complexity: O(1).
func ValidateFixedDimension(fixed, got int) error {
	if fixed != 0 && fixed != got {
		return validatorErrorf(fmt.Sprintf("ValidateFixedDimension(want %d, got %d)", fixed, got), ErrFixedDimensionViolation)
	}

	return nil
}

// validateEntries rejects null entries (nil decimals) with ErrNullComponent.
// Complexity: O(n).
func validateEntries[T any](ar arith.Arithmetic[T], values []T) error {
	for i, v := range values {
		if !ar.Valid(v) {
			return validatorErrorf(fmt.Sprintf("validateEntries(%d)", i), ErrNullComponent)
		}
	}

	return nil
}

// validateDivisors rejects any (tolerance-)zero divisor with ErrDivideByZero.
// Complexity: O(n).
func validateDivisors[T any](ar arith.Arithmetic[T], values []T) error {
	for i, v := range values {
		if ar.IsZero(v) {
			return validatorErrorf(fmt.Sprintf("validateDivisors(%d)", i), ErrDivideByZero)
		}
	}

	return nil
}
