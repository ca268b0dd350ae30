// SPDX-License-Identifier: MIT

// Package algebra - Factory: the construction capability for one representation.
//
// Purpose:
//   - Bind one Arithmetic strategy plus options into an immutable space that
//     every Vector and Matrix built here (and everything derived from them)
//     shares.
//   - Offer every construction path: explicit values, floats, strings, rows,
//     and zero/identity/origin/sign-chart instances of a given dimension.
//
// Behavior highlights:
//   - Fixed kinds ignore dimension arguments (ZeroVector(KindVector3, 7) is 3-D)
//     but reject explicit value lists of the wrong size.
//   - Values are validated before anything is allocated.
//
// AI-Hints:
//   - Type inference needs the strategy type: NewFactory[float64](arith.NewFloat64()).

package algebra

import (
	"fmt"

	"github.com/katalvlaran/lvalgebra/arith"
)

// Factory builds vectors and matrices over one arithmetic representation.
// A Factory is immutable and safe for concurrent use.
type Factory[T any] struct {
	sp *space[T]
}

// NewFactory returns a Factory over ar. Panics if ar is nil.
func NewFactory[T any](ar arith.Arithmetic[T], opts ...Option) *Factory[T] {
	if ar == nil {
		panic(panicNilArithmetic)
	}
	o := gatherOptions(opts...)

	return &Factory[T]{sp: &space[T]{ar: ar, logger: o.logger}}
}

// Arithmetic returns the strategy bound to f.
func (f *Factory[T]) Arithmetic() arith.Arithmetic[T] { return f.sp.ar }

// Must returns c or panics with err. Intended for literals in tests and examples.
func Must[C any](c C, err error) C {
	if err != nil {
		panic(err)
	}

	return c
}

// ---------- Vectors ----------

// NewVector builds a vector of kind from values (copied).
//
// Errors: ErrNullComponent, ErrFixedDimensionViolation.
// Complexity: O(n).
func (f *Factory[T]) NewVector(kind VectorKind, values ...T) (*Vector[T], error) {
	if err := validateEntries(f.sp.ar, values); err != nil {
		return nil, algebraErrorf(opNewVector, err)
	}
	if err := ValidateFixedDimension(kind.Fixed(), len(values)); err != nil {
		return nil, algebraErrorf(opNewVector, err)
	}
	data := make([]T, len(values))
	copy(data, values)

	return newVector(f.sp, kind, data), nil
}

// Vector builds a resizeable vector from values.
func (f *Factory[T]) Vector(values ...T) (*Vector[T], error) {
	return f.NewVector(KindVectorN, values...)
}

// Vector2 builds a fixed 2-D vector.
func (f *Factory[T]) Vector2(x, y T) (*Vector[T], error) {
	return f.NewVector(KindVector2, x, y)
}

// Vector3 builds a fixed 3-D vector.
func (f *Factory[T]) Vector3(x, y, z T) (*Vector[T], error) {
	return f.NewVector(KindVector3, x, y, z)
}

// Vector4 builds a fixed 4-D vector.
func (f *Factory[T]) Vector4(x, y, z, w T) (*Vector[T], error) {
	return f.NewVector(KindVector4, x, y, z, w)
}

// VectorFromFloats converts raw floats through the strategy's ValueOf.
//
// Errors: ErrFixedDimensionViolation.
func (f *Factory[T]) VectorFromFloats(kind VectorKind, values ...float64) (*Vector[T], error) {
	return f.NewVector(kind, f.fromFloats(values)...)
}

// ParseVector parses every string with the strategy's Parse.
//
// Errors: ErrNumberFormat (with the offending position), ErrFixedDimensionViolation.
func (f *Factory[T]) ParseVector(kind VectorKind, values ...string) (*Vector[T], error) {
	parsed, err := f.parse(values)
	if err != nil {
		return nil, algebraErrorf(opParseVector, err)
	}

	return f.NewVector(kind, parsed...)
}

// ZeroVector returns a zero-filled vector; fixed kinds ignore dim, dim < 0 is empty.
func (f *Factory[T]) ZeroVector(kind VectorKind, dim int) *Vector[T] {
	return newVector(f.sp, kind, zeroValues(f.sp.ar, kind.dimension(dim)))
}

// OriginVector is the all-zero vector of the given dimension.
func (f *Factory[T]) OriginVector(kind VectorKind, dim int) *Vector[T] {
	return f.ZeroVector(kind, dim)
}

// IdentityVector is the all-ones vector of the given dimension.
func (f *Factory[T]) IdentityVector(kind VectorKind, dim int) *Vector[T] {
	n := max(kind.dimension(dim), 0)

	return newVector(f.sp, kind, filledValues(f.sp.ar.One(), n))
}

// ---------- Matrices ----------

// NewMatrix builds a matrix of kind from row-major values (copied).
//
// Implementation:
//   - Stage 1: entries valid (ErrNullComponent).
//   - Stage 2: len(values) is a perfect square (ErrNotSquare).
//   - Stage 3: fixed kinds require their exact side (ErrFixedDimensionViolation).
//
// Complexity: O(n²).
func (f *Factory[T]) NewMatrix(kind MatrixKind, values ...T) (*Matrix[T], error) {
	if err := validateEntries(f.sp.ar, values); err != nil {
		return nil, algebraErrorf(opNewMatrix, err)
	}
	dim, err := ValidatePerfectSquare(len(values))
	if err != nil {
		return nil, algebraErrorf(opNewMatrix, err)
	}
	if err = ValidateFixedDimension(kind.Fixed(), dim); err != nil {
		return nil, algebraErrorf(opNewMatrix, err)
	}
	data := make([]T, len(values))
	copy(data, values)

	return newMatrix(f.sp, kind, dim, data), nil
}

// Matrix builds a resizeable matrix from row-major values.
func (f *Factory[T]) Matrix(values ...T) (*Matrix[T], error) {
	return f.NewMatrix(KindMatrixN, values...)
}

// Matrix3 builds a fixed 3×3 matrix from 9 row-major values.
func (f *Factory[T]) Matrix3(values ...T) (*Matrix[T], error) {
	return f.NewMatrix(KindMatrix3, values...)
}

// Matrix4 builds a fixed 4×4 matrix from 16 row-major values.
func (f *Factory[T]) Matrix4(values ...T) (*Matrix[T], error) {
	return f.NewMatrix(KindMatrix4, values...)
}

// MatrixFromRows builds a matrix from explicit rows; every row must be as
// long as the number of rows.
//
// Errors: ErrNotSquare, ErrNullComponent, ErrFixedDimensionViolation.
func (f *Factory[T]) MatrixFromRows(kind MatrixKind, rows ...[]T) (*Matrix[T], error) {
	flat := make([]T, 0, len(rows)*len(rows))
	for y, row := range rows {
		if len(row) != len(rows) {
			tag := fmt.Sprintf("row %d has %d values, want %d", y, len(row), len(rows))
			return nil, algebraErrorf(opMatrixFromRows, validatorErrorf(tag, ErrNotSquare))
		}
		flat = append(flat, row...)
	}

	return f.NewMatrix(kind, flat...)
}

// MatrixFromFloats converts raw row-major floats through ValueOf.
func (f *Factory[T]) MatrixFromFloats(kind MatrixKind, values ...float64) (*Matrix[T], error) {
	return f.NewMatrix(kind, f.fromFloats(values)...)
}

// ParseMatrix parses row-major strings with the strategy's Parse.
//
// Errors: ErrNumberFormat, ErrNotSquare, ErrFixedDimensionViolation.
func (f *Factory[T]) ParseMatrix(kind MatrixKind, values ...string) (*Matrix[T], error) {
	parsed, err := f.parse(values)
	if err != nil {
		return nil, algebraErrorf(opParseMatrix, err)
	}

	return f.NewMatrix(kind, parsed...)
}

// ZeroMatrix returns a zero-filled dim×dim matrix; fixed kinds ignore dim.
func (f *Factory[T]) ZeroMatrix(kind MatrixKind, dim int) *Matrix[T] {
	n := max(kind.dimension(dim), 0)

	return newMatrix(f.sp, kind, n, zeroValues(f.sp.ar, n*n))
}

// OriginMatrix is the all-zero matrix of the given side.
func (f *Factory[T]) OriginMatrix(kind MatrixKind, dim int) *Matrix[T] {
	return f.ZeroMatrix(kind, dim)
}

// IdentityMatrix has One on the diagonal and Zero elsewhere.
func (f *Factory[T]) IdentityMatrix(kind MatrixKind, dim int) *Matrix[T] {
	m := f.ZeroMatrix(kind, dim)
	for i := 0; i < m.dim; i++ {
		m.data[i*m.dim+i] = f.sp.ar.One()
	}

	return m
}

// SignChart is the checkerboard of cofactor scalars: (x, y) holds
// One when x and y share parity, else NegativeOne.
func (f *Factory[T]) SignChart(kind MatrixKind, dim int) *Matrix[T] {
	m := f.ZeroMatrix(kind, dim)
	for y := 0; y < m.dim; y++ {
		for x := 0; x < m.dim; x++ {
			m.data[y*m.dim+x] = cofactorSign(f.sp.ar, x, y)
		}
	}

	return m
}

// ---------- helpers ----------

func (f *Factory[T]) fromFloats(values []float64) []T {
	out := make([]T, len(values))
	for i, v := range values {
		out[i] = f.sp.ar.ValueOf(v)
	}

	return out
}

func (f *Factory[T]) parse(values []string) ([]T, error) {
	out := make([]T, len(values))
	for i, s := range values {
		v, err := f.sp.ar.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("value %d: %w", i, err)
		}
		out[i] = v
	}

	return out, nil
}
