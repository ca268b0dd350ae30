// Package lvalgebra is a numeric component algebra library: vectors and
// square matrices that work the same way over float64, int64,
// arbitrary-precision decimals and any other Go number type.
//
// 🚀 What is lvalgebra?
//
//	A small, generic library that brings together:
//		• Arithmetic strategies: one pluggable implementation per representation
//		• Vectors: elementwise math, dot, norm, normalize, cross, dot-flop
//		• Fixed shapes: 2/3/4-D vectors and 3×3/4×4 matrices
//		• Matrices: product, determinant, minors, cofactor, adjugate, inverse
//		• Solving & resizing: SolveSystem, Transform, SubMatrix, Redim
//
// ✨ Why choose lvalgebra?
//
//   - Exact when you need it – integer and decimal matrices stay exact
//   - Fail fast – shapes are validated before any math runs
//   - Pure results – every operation returns a fresh value
//   - Generic – no reflection, no boxing
//
// Under the hood, everything is organized under two packages and a CLI:
//
//	arith/      — Arithmetic[T] strategy + Float64, Int, Decimal, Generic[N]
//	algebra/    — Factory, Vector, Matrix, validators and sentinel errors
//	cmd/lvalg/  — command-line calculator over any representation
//
// Quick start:
//
//	f := algebra.NewFactory[float64](arith.NewFloat64())
//	m := algebra.Must(f.Matrix(2, 1, 1, 3))
//	inv, err := m.Inverse() // [<0.6, -0.2>, <-0.2, 0.4>]
package lvalgebra
