// SPDX-License-Identifier: MIT

// Package arith defines the Arithmetic strategy used by every Vector and
// Matrix in lvalgebra, and ships one strategy per numeric representation.
//
// What & Why:
//
//	Component math never touches a numeric type directly. Each operation
//	(+, -, ×, ÷, ^, √, compare, zero/one) is delegated to an Arithmetic[T]
//	value, so one algorithm serves float64, int64, arbitrary-precision
//	decimals and any other Go numeric type without reflection.
//
// Representations:
//
//	Float64     — float64 with tolerance-based equality (DefaultEpsilon).
//	Int         — int64 with exact equality and truncating division.
//	Decimal     — *apd.Decimal with an immutable precision/rounding context.
//	Generic[N]  — fallback for any constraints.Integer | constraints.Float.
//
// Determinism:
//
//	Strategies are stateless apart from their construction-time configuration,
//	are safe for concurrent use, and never mutate their operands.
package arith
