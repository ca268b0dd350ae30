// SPDX-License-Identifier: MIT

// Package algebra provides Vector and square Matrix components that work
// uniformly over every numeric representation in package arith.
//
// What & Why:
//
//	A Factory binds one arith.Arithmetic strategy; every Vector and Matrix it
//	builds, and everything derived from them, shares that strategy and its
//	configuration (decimal precision and rounding travel structurally).
//	Operations validate first and then compute a fresh result, leaving
//	operands untouched.
//
// Shapes:
//
//	Vector  — KindVectorN (resizeable) or fixed KindVector2/3/4.
//	Matrix  — KindMatrixN (resizeable) or fixed KindMatrix3/4; row-major,
//	          (x, y) = (column, row), ToIndex(x, y) = y·width + x.
//
// Matrix algorithms:
//
//	Determinant (Laplace along column 0), Minor/Minors, Cofactor, Adjoint,
//	Inverse, SolveSystem, Transform (transpose·v), SubMatrix, Redim.
//
// Errors:
//
//	All failures are sentinel errors matched with errors.Is:
//	ErrMismatchedDimensionality, ErrIndexOutOfRange, ErrNotSquare,
//	ErrNotInvertible, ErrDivideByZero, ErrFixedDimensionViolation,
//	ErrNullComponent, ErrNumberFormat.
//
// Concurrency:
//
//	Distinct values may be read from many goroutines. Mutating a shared value
//	(Set, Redim, CopyTo) requires the caller's own synchronization.
//
// Quick example:
//
//	f := algebra.NewFactory[float64](arith.NewFloat64())
//	a := algebra.Must(f.Vector3(1, 0, 0))
//	b := algebra.Must(f.Vector3(0, 1, 0))
//	c, _ := a.Cross(b) // <0, 0, 1>
package algebra
