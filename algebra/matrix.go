// SPDX-License-Identifier: MIT

// Package algebra - Matrix type, accessors and structural mutation.
//
// Purpose:
//   - Define Matrix[T]: a square component stored row-major in a flat slice;
//     width = height = dimensionality, length = dimensionality².
//   - Provide coordinate access (At/Set/ToIndex), row/column extraction and
//     the in-place mutators (Set, Redim, CopyTo).
//
// Coordinates:
//   - (x, y) is (column, row); ToIndex(x, y) = y·width + x.
//
// Invariants:
//   - len(data) == dim·dim at all times.
//   - Fixed kinds (KindMatrix3/4) always have dim == Fixed().

package algebra

import (
	"log/slog"
	"strings"
)

// Matrix is a square, row-major grid of T sharing one arithmetic space.
// Build matrices with a Factory; the zero Matrix is not usable.
type Matrix[T any] struct {
	components[T]
	kind MatrixKind
	dim  int
}

// newMatrix wraps data (len dim²) without copying.
func newMatrix[T any](sp *space[T], kind MatrixKind, dim int, data []T) *Matrix[T] {
	return &Matrix[T]{components: components[T]{data: data, sp: sp}, kind: kind, dim: dim}
}

// derive builds a matrix of the same kind, side and space around fresh data.
func (m *Matrix[T]) derive(data []T) *Matrix[T] {
	return newMatrix(m.sp, m.kind, m.dim, data)
}

// vector builds a vector of the matching kind in the same space.
func (m *Matrix[T]) vector(data []T) *Vector[T] {
	return newVector(m.sp, m.kind.VectorKind(), data)
}

// Dimensionality returns the side length.
func (m *Matrix[T]) Dimensionality() int { return m.dim }

// Width returns the number of columns (the side length).
func (m *Matrix[T]) Width() int { return m.dim }

// Height returns the number of rows (the side length).
func (m *Matrix[T]) Height() int { return m.dim }

// Kind returns the concrete shape of m.
func (m *Matrix[T]) Kind() MatrixKind { return m.kind }

// Resizeable reports whether Redim may change m.
func (m *Matrix[T]) Resizeable() bool { return m.kind.Resizeable() }

// ToIndex maps column x, row y to the flat row-major index y·width + x.
// No bounds checks; see At/Set.
func (m *Matrix[T]) ToIndex(x, y int) int { return y*m.dim + x }

// validateXY checks both coordinates against the side length.
func (m *Matrix[T]) validateXY(x, y int) error {
	if err := ValidateIndex(x, m.dim); err != nil {
		return err
	}

	return ValidateIndex(y, m.dim)
}

// At returns the raw value at column x, row y.
//
// Errors: ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) At(x, y int) (T, error) {
	if err := m.validateXY(x, y); err != nil {
		var zero T
		return zero, algebraErrorf(opGet, err)
	}

	return m.data[m.ToIndex(x, y)], nil
}

// Set replaces the value at column x, row y.
//
// Errors: ErrNullComponent (nil m or invalid value), ErrIndexOutOfRange.
// Complexity: O(1).
func (m *Matrix[T]) Set(x, y int, value T) error {
	if m == nil || !m.sp.ar.Valid(value) {
		return algebraErrorf(opSet, ErrNullComponent)
	}
	if err := m.validateXY(x, y); err != nil {
		return algebraErrorf(opSet, err)
	}
	m.data[m.ToIndex(x, y)] = value

	return nil
}

// Row returns row y as a vector of the matching kind.
//
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Row(y int) (*Vector[T], error) {
	if err := ValidateIndex(y, m.dim); err != nil {
		return nil, algebraErrorf(opRow, err)
	}
	data := make([]T, m.dim)
	copy(data, m.data[y*m.dim:(y+1)*m.dim])

	return m.vector(data), nil
}

// Column returns column x as a vector of the matching kind.
//
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Column(x int) (*Vector[T], error) {
	if err := ValidateIndex(x, m.dim); err != nil {
		return nil, algebraErrorf(opColumn, err)
	}
	data := make([]T, m.dim)
	for y := range data {
		data[y] = m.data[m.ToIndex(x, y)]
	}

	return m.vector(data), nil
}

// Redim changes the side length of m in place and returns m.
//
// Implementation:
//   - Stage 1: no-op on fixed kinds (logged) or an unchanged side.
//   - Stage 2: allocate n×n zeros; copy the overlapping top-left block cell by
//     cell so every kept value keeps its (x, y) position.
//
// Behavior highlights:
//   - n ≤ 0 empties m.
//   - Shrinking keeps the top-left n×n block; growing zero-pads right/bottom.
//
// Complexity: O(n²).
func (m *Matrix[T]) Redim(n int) *Matrix[T] {
	if n < 0 {
		n = 0
	}
	if n == m.dim {
		return m
	}
	if !m.kind.Resizeable() {
		m.debug(opRedim, "redim ignored on fixed kind",
			slog.String("kind", m.kind.String()), slog.Int("requested", n))

		return m
	}

	data := zeroValues(m.sp.ar, n*n)
	keep := min(n, m.dim)
	for y := 0; y < keep; y++ {
		copy(data[y*n:y*n+keep], m.data[y*m.dim:y*m.dim+keep])
	}
	m.data, m.dim = data, n

	return m
}

// CopyTo copies the raw values of m into dst and hands dst the arithmetic
// space of m, so representation settings follow along.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
func (m *Matrix[T]) CopyTo(dst *Matrix[T]) error {
	if m == nil || dst == nil {
		return algebraErrorf(opCopyTo, ErrNullComponent)
	}
	if err := ValidateSameDimensionality(m.dim, dst.dim); err != nil {
		return algebraErrorf(opCopyTo, err)
	}
	copy(dst.data, m.data)
	dst.sp = m.sp

	return nil
}

// Clone returns an independent copy of m.
func (m *Matrix[T]) Clone() *Matrix[T] {
	return m.derive(m.RawComponents())
}

// Equal reports whether m and o share kind and side length and hold pairwise
// tolerance-equal values. Two nil matrices are equal.
func (m *Matrix[T]) Equal(o *Matrix[T]) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.kind != o.kind || m.dim != o.dim {
		return false
	}

	return m.equalValues(o.data)
}

// String renders m as "[<row0>, <row1>, ...]" using cleaned values.
func (m *Matrix[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtMatrixOpen)
	for y := 0; y < m.dim; y++ {
		if y > 0 {
			b.WriteString(_fmtSep)
		}
		b.WriteString(_fmtVectorOpen)
		b.WriteString(m.formatValues(m.data[y*m.dim : (y+1)*m.dim]))
		b.WriteString(_fmtVectorClose)
	}
	b.WriteString(_fmtMatrixClose)

	return b.String()
}
