// SPDX-License-Identifier: MIT

// Package arith: the Arithmetic contract shared by all representations.
//
// Purpose:
//   - Declare the single numeric surface consumed by algebra kernels.
//   - Keep every representation-specific decision (tolerance, rounding,
//     division semantics) behind this interface.
//
// AI-Hints:
//   - Implementations must return fresh values; pointer-backed representations
//     (Decimal) never alias an operand in a result.
//   - Divide and Reciprocal are the only fallible binary operations.

package arith

// Arithmetic is the per-representation implementation of the numeric
// operations used throughout Component math.
type Arithmetic[T any] interface {
	// Name identifies the representation ("float64", "int64", "decimal", ...).
	Name() string

	// Zero returns the additive identity.
	Zero() T
	// One returns the multiplicative identity.
	One() T
	// NegativeOne returns -1.
	NegativeOne() T

	// ValueOf converts a float64 literal into the representation.
	ValueOf(x float64) T
	// FromInt converts an int64 literal into the representation.
	FromInt(x int64) T
	// Parse converts text into the representation or returns ErrNumberFormat.
	Parse(s string) (T, error)
	// Float64 converts a value back to float64 (lossy for Decimal).
	Float64(a T) float64

	// Add returns a + b.
	Add(a, b T) T
	// Subtract returns a - b.
	Subtract(a, b T) T
	// Multiply returns a × b.
	Multiply(a, b T) T
	// Divide returns a ÷ b or ErrDivideByZero when IsZero(b).
	Divide(a, b T) (T, error)
	// Power returns a raised to b.
	Power(a, b T) T
	// Sqrt returns the square root of a.
	Sqrt(a T) T
	// Reciprocal returns 1 ÷ a or ErrDivideByZero when IsZero(a).
	Reciprocal(a T) (T, error)
	// Negate returns -a.
	Negate(a T) T

	// IsZero reports whether a is (tolerance-)zero.
	IsZero(a T) bool
	// IsEqual reports whether a and b are equal within the representation's tolerance.
	IsEqual(a, b T) bool
	// Compare returns -1, 0 or +1 ordering a against b (exact, no tolerance).
	Compare(a, b T) int

	// Round rounds a to an integral value.
	Round(a T) T
	// Clean canonicalizes a for display and equality (trims arithmetic artifacts).
	Clean(a T) T
	// Format renders a as plain text.
	Format(a T) string
	// Valid reports whether a is a usable (non-null) entry.
	Valid(a T) bool
}
