// SPDX-License-Identifier: MIT

// Package algebra - shared Component state & accessors.
//
// Purpose:
//   - Hold the backing slice and the shared numeric space of a Vector or Matrix.
//   - Expose the accessors common to both (Len, Get, GetRaw, Components,
//     RawComponents, Sum, SquareSum, Do) exactly once.
//
// Invariants:
//   - data never contains an invalid (null) entry.
//   - Stored values are never mutated in place; Set replaces an entry. This is
//     what lets Clone share pointer-backed values (decimals) safely.
//   - sp is shared by every value derived from the same Factory and is never
//     mutated, so representation configuration (decimal precision/rounding)
//     follows every derived value structurally.
//
// AI-Hints:
//   - Components() returns cleaned copies for display/equality; use
//     RawComponents() when feeding values back into arithmetic.

package algebra

import (
	"log/slog"
	"strings"

	"github.com/katalvlaran/lvalgebra/arith"
)

// ---------- Formatting literals ----------
const (
	_fmtSep         = ", "
	_fmtVectorOpen  = "<"
	_fmtVectorClose = ">"
	_fmtMatrixOpen  = "["
	_fmtMatrixClose = "]"
)

// space is the immutable numeric environment shared by all components built
// from one Factory.
type space[T any] struct {
	ar     arith.Arithmetic[T] // arithmetic strategy; never nil
	logger *slog.Logger        // debug sink; never nil
}

// components is the base state embedded by Vector and Matrix.
type components[T any] struct {
	data []T       // flat storage (row-major for matrices)
	sp   *space[T] // shared numeric environment
}

// Len returns the number of stored values (dimensionality² for matrices).
// Complexity: O(1).
func (c *components[T]) Len() int { return len(c.data) }

// Arithmetic returns the strategy used by every operation on this component.
func (c *components[T]) Arithmetic() arith.Arithmetic[T] { return c.sp.ar }

// Get returns the cleaned value at flat index i or ErrIndexOutOfRange.
// Complexity: O(1).
func (c *components[T]) Get(i int) (T, error) {
	v, err := c.GetRaw(i)
	if err != nil {
		return v, err
	}

	return c.sp.ar.Clean(v), nil
}

// GetRaw returns the stored value at flat index i or ErrIndexOutOfRange.
// Complexity: O(1).
func (c *components[T]) GetRaw(i int) (T, error) {
	if err := ValidateIndex(i, len(c.data)); err != nil {
		var zero T
		return zero, algebraErrorf(opGet, err)
	}

	return c.data[i], nil
}

// Components returns a cleaned copy of the stored values.
// Complexity: O(n).
func (c *components[T]) Components() []T {
	return mapValues(c.data, c.sp.ar.Clean)
}

// RawComponents returns a copy of the stored values.
// Complexity: O(n).
func (c *components[T]) RawComponents() []T {
	out := make([]T, len(c.data))
	copy(out, c.data)

	return out
}

// Sum folds the values with Add, starting from Zero.
// Complexity: O(n).
func (c *components[T]) Sum() T {
	return sumValues(c.sp.ar, c.data)
}

// SquareSum folds the squared values with Add, starting from Zero.
// Complexity: O(n).
func (c *components[T]) SquareSum() T {
	return squareSumValues(c.sp.ar, c.data)
}

// Do visits each stored value in index order and calls f(i, v); it stops
// early when f returns false.
// Complexity: O(n), no allocations.
func (c *components[T]) Do(f func(i int, v T) bool) {
	for i, v := range c.data {
		if !f(i, v) {
			return
		}
	}
}

// equalValues reports pairwise tolerance equality of two equally long slices.
func (c *components[T]) equalValues(other []T) bool {
	if len(c.data) != len(other) {
		return false
	}
	for i := range c.data {
		if !c.sp.ar.IsEqual(c.data[i], other[i]) {
			return false
		}
	}

	return true
}

// formatValues renders cleaned values joined by ", " (no brackets).
func (c *components[T]) formatValues(values []T) string {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(c.sp.ar.Format(c.sp.ar.Clean(v)))
	}

	return b.String()
}

// debug logs a degenerate-geometry event with the operation tag.
func (c *components[T]) debug(op, msg string, attrs ...any) {
	c.sp.logger.Debug(msg, append([]any{slog.String("op", op), slog.String("arith", c.sp.ar.Name())}, attrs...)...)
}
