// SPDX-License-Identifier: MIT
// Package algebra - determinant, minors, adjugate, inverse and solving.
//
// Purpose:
//   - Exact, strategy-driven kernels: no pivoting, no floating shortcuts, so
//     integer and decimal matrices produce exact cofactor algebra.
//
// Conventions:
//   - Determinant expands along column 0, not row 0.
//   - Transform pre-multiplies by the transpose (row-vector convention).
//   - det of the 0×0 matrix is One (empty product), which makes the 1×1
//     adjugate [1] and the 1×1 inverse [1/a].

package algebra

import (
	"log/slog"

	"github.com/katalvlaran/lvalgebra/arith"
)

// cofactorSign returns +1 when x and y share parity, else −1 ((−1)^(x+y)).
func cofactorSign[T any](ar arith.Arithmetic[T], x, y int) T {
	if x%2 == y%2 {
		return ar.One()
	}

	return ar.NegativeOne()
}

// withoutCell returns the (n−1)×(n−1) flat matrix obtained by dropping
// column x and row y from the n×n flat data.
// Complexity: O(n²).
func withoutCell[T any](data []T, n, x, y int) []T {
	if n <= 1 {
		return nil
	}
	out := make([]T, 0, (n-1)*(n-1))
	for row := 0; row < n; row++ {
		if row == y {
			continue
		}
		for col := 0; col < n; col++ {
			if col == x {
				continue
			}
			out = append(out, data[row*n+col])
		}
	}

	return out
}

// determinantOf computes det of the n×n flat data.
//
// Implementation:
//   - Stage 1: base cases n=0 → One, n=1 → the sole value, n=2 → a·d − b·c.
//   - Stage 2: Laplace along column 0:
//     Σ_h data[0,h] · sign(0,h) · det(data without row h, column 0).
//
// Complexity: O(n!) time, O(n²) space per recursion level.
//
// AI-Hints:
//   - The factorial cost is fine for the 3×3/4×4 geometry this targets;
//     prefer a decomposition elsewhere for large float matrices.
func determinantOf[T any](ar arith.Arithmetic[T], data []T, n int) T {
	switch n {
	case 0:
		return ar.One()
	case 1:
		return data[0]
	case 2:
		return ar.Subtract(ar.Multiply(data[0], data[3]), ar.Multiply(data[1], data[2]))
	}

	acc := ar.Zero()
	for h := 0; h < n; h++ {
		pivot := data[h*n]
		sub := determinantOf(ar, withoutCell(data, n, 0, h), n-1)
		term := ar.Multiply(ar.Multiply(pivot, cofactorSign(ar, 0, h)), sub)
		acc = ar.Add(acc, term)
	}

	return acc
}

// Determinant returns det(m) by Laplace expansion along column 0.
//
// Behavior highlights:
//   - 0×0 → One; 1×1 → the sole value; 2×2 → a·d − b·c.
//
// Complexity: O(n!) for n ≥ 3.
func (m *Matrix[T]) Determinant() T {
	return determinantOf(m.sp.ar, m.data, m.dim)
}

// Minor returns the determinant of m without column x and row y.
//
// Errors: ErrIndexOutOfRange.
func (m *Matrix[T]) Minor(x, y int) (T, error) {
	if err := m.validateXY(x, y); err != nil {
		var zero T
		return zero, algebraErrorf(opMinor, err)
	}

	return determinantOf(m.sp.ar, withoutCell(m.data, m.dim, x, y), m.dim-1), nil
}

// Minors returns the matrix whose (x, y) cell is Minor(x, y).
// Complexity: O(n² · (n−1)!).
func (m *Matrix[T]) Minors() *Matrix[T] {
	ar, n := m.sp.ar, m.dim
	out := make([]T, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+x] = determinantOf(ar, withoutCell(m.data, n, x, y), n-1)
		}
	}

	return m.derive(out)
}

// CofactorScalar returns One when x and y share parity, else NegativeOne.
func (m *Matrix[T]) CofactorScalar(x, y int) T {
	return cofactorSign(m.sp.ar, x, y)
}

// Cofactor multiplies every raw value by its cofactor scalar.
// Complexity: O(n²).
func (m *Matrix[T]) Cofactor() *Matrix[T] {
	ar, n := m.sp.ar, m.dim
	out := make([]T, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[y*n+x] = ar.Multiply(m.data[y*n+x], cofactorSign(ar, x, y))
		}
	}

	return m.derive(out)
}

// Adjoint returns the adjugate transpose(cofactor(minors(m))).
func (m *Matrix[T]) Adjoint() *Matrix[T] {
	return m.Minors().Cofactor().Transpose()
}

// Inverse returns m⁻¹ = adjoint(m) · reciprocal(det(m)).
//
// Implementation:
//   - Stage 1: det; a tolerance-zero det is logged at Debug and rejected.
//   - Stage 2: reciprocal of det, then scale the adjugate.
//
// Behavior highlights:
//   - The result keeps the kind of m.
//   - Integer strategies invert only unimodular matrices (det = ±1); any
//     other det has no integer reciprocal and yields ErrNotInvertible.
//   - Singularity uses the strategy's IsZero. For Float64 that is an absolute
//     tolerance (arith.DefaultEpsilon), so a tiny but regular matrix such as
//     0.001·I₃ (det 1e-9) is rejected; lower it with arith.WithEpsilon.
//
// Errors: ErrNullComponent, ErrNotInvertible.
// Complexity: O(n² · (n−1)!).
func (m *Matrix[T]) Inverse() (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opInverse, ErrNullComponent)
	}
	ar := m.sp.ar
	det := m.Determinant()
	if ar.IsZero(det) {
		m.debug(opInverse, "singular matrix", slog.Int("dim", m.dim), slog.String("det", ar.Format(det)))

		return nil, algebraErrorf(opInverse, ErrNotInvertible)
	}
	inv, err := ar.Reciprocal(det)
	if err != nil {
		m.debug(opInverse, "determinant has no reciprocal", slog.Any("err", err))

		return nil, algebraErrorf(opInverse, ErrNotInvertible)
	}
	// truncating strategies collapse 1/det to zero unless |det| is one
	if ar.IsZero(ar.Multiply(det, inv)) {
		m.debug(opInverse, "determinant has no reciprocal", slog.String("det", ar.Format(det)))

		return nil, algebraErrorf(opInverse, ErrNotInvertible)
	}

	return m.Adjoint().ScaleBy(inv), nil
}

// SolveSystem solves m·x = b as x = m⁻¹·b.
//
// Errors: ErrNullComponent, ErrNotInvertible, ErrMismatchedDimensionality.
func (m *Matrix[T]) SolveSystem(b *Vector[T]) (*Vector[T], error) {
	if m == nil || b == nil {
		return nil, algebraErrorf(opSolveSystem, ErrNullComponent)
	}
	if err := ValidateSameDimensionality(m.dim, b.Dimensionality()); err != nil {
		return nil, algebraErrorf(opSolveSystem, err)
	}
	inv, err := m.Inverse()
	if err != nil {
		return nil, algebraErrorf(opSolveSystem, err)
	}
	x, err := inv.TimesVector(b)
	if err != nil {
		return nil, algebraErrorf(opSolveSystem, err)
	}

	return x, nil
}

// Transform returns mᵀ·v (row-vector convention: v·m).
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
func (m *Matrix[T]) Transform(v *Vector[T]) (*Vector[T], error) {
	if m == nil || v == nil {
		return nil, algebraErrorf(opTransform, ErrNullComponent)
	}
	out, err := m.Transpose().TimesVector(v)
	if err != nil {
		return nil, algebraErrorf(opTransform, err)
	}

	return out, nil
}

// SubMatrix extracts columns [x1, x2) and rows [y1, y2).
//
// Implementation:
//   - Stage 1: both ranges inside [0, dim].
//   - Stage 2: region must be square; fixed kinds must keep their side.
//   - Stage 3: copy row slices into a fresh matrix of the same kind.
//
// Errors: ErrNullComponent, ErrIndexOutOfRange, ErrNotSquare,
// ErrFixedDimensionViolation.
// Complexity: O(k²) for a k×k region.
func (m *Matrix[T]) SubMatrix(x1, y1, x2, y2 int) (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opSubMatrix, ErrNullComponent)
	}
	if err := ValidateRange(x1, x2, m.dim); err != nil {
		return nil, algebraErrorf(opSubMatrix, err)
	}
	if err := ValidateRange(y1, y2, m.dim); err != nil {
		return nil, algebraErrorf(opSubMatrix, err)
	}
	w, h := x2-x1, y2-y1
	if w != h {
		return nil, algebraErrorf(opSubMatrix, validatorErrorf("SubMatrix(region)", ErrNotSquare))
	}
	if err := ValidateFixedDimension(m.kind.Fixed(), w); err != nil {
		return nil, algebraErrorf(opSubMatrix, err)
	}
	out := make([]T, 0, w*w)
	for y := y1; y < y2; y++ {
		out = append(out, m.data[y*m.dim+x1:y*m.dim+x2]...)
	}

	return newMatrix(m.sp, m.kind, w, out), nil
}
