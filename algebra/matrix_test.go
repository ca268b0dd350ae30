// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/algebra"
	"github.com/katalvlaran/lvalgebra/arith"
)

func TestMatrix_ConstructionErrors(t *testing.T) {
	t.Parallel()
	f := floats()

	_, err := f.Matrix(1, 2, 3)
	require.ErrorIs(t, err, algebra.ErrNotSquare)
	_, err = f.Matrix3(1, 2, 3, 4)
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	_, err = f.Matrix4(make([]float64, 9)...)
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	_, err = f.MatrixFromRows(algebra.KindMatrixN, []float64{1, 2}, []float64{3})
	require.ErrorIs(t, err, algebra.ErrNotSquare)
	_, err = f.ParseMatrix(algebra.KindMatrixN, "1", "2", "x", "4")
	require.ErrorIs(t, err, algebra.ErrNumberFormat)

	empty, err := f.Matrix()
	require.NoError(t, err)
	require.Equal(t, 0, empty.Dimensionality())
	require.Equal(t, "[]", empty.String())
}

func TestMatrix_AccessAndRendering(t *testing.T) {
	t.Parallel()
	f := floats()
	m := mat(t, f, 1, 2, 3, 4)

	require.Equal(t, 2, m.Dimensionality())
	require.Equal(t, 4, m.Len())
	require.Equal(t, 2, m.Width())
	require.Equal(t, 2, m.Height())
	require.Equal(t, 3, m.ToIndex(1, 1))
	require.Equal(t, "[<1, 2>, <3, 4>]", m.String())

	v, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 2.0, v, "x is the column")

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), algebra.ErrIndexOutOfRange)

	require.NoError(t, m.Set(0, 1, 9))
	require.Equal(t, "[<1, 2>, <9, 4>]", m.String())

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, "<9, 4>", row.String())
	col, err := m.Column(1)
	require.NoError(t, err)
	require.Equal(t, "<2, 4>", col.String())
	_, err = m.Row(2)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)

	require.Equal(t, 5.0, m.Trace())
}

func TestMatrix_FromRowsMatchesFlat(t *testing.T) {
	t.Parallel()
	f := ints()

	rows, err := f.MatrixFromRows(algebra.KindMatrix3, []int64{1, 2, 3}, []int64{4, 5, 6}, []int64{7, 8, 9})
	require.NoError(t, err)
	flat := algebra.Must(f.Matrix3(1, 2, 3, 4, 5, 6, 7, 8, 9))
	require.True(t, rows.Equal(flat))
	require.False(t, rows.Equal(mat(t, f, 1, 2, 3, 4, 5, 6, 7, 8, 9)), "kind participates in equality")
}

func TestMatrix_Elementwise(t *testing.T) {
	t.Parallel()
	f := floats()
	a := mat(t, f, 1, 2, 3, 4)
	b := mat(t, f, 5, 6, 7, 8)

	sum, err := a.Plus(b)
	require.NoError(t, err)
	diff(t, []float64{6, 8, 10, 12}, sum.Components())

	back, err := sum.Minus(b)
	require.NoError(t, err)
	require.True(t, back.Equal(a))

	h, err := a.Hadamard(b)
	require.NoError(t, err)
	diff(t, []float64{5, 12, 21, 32}, h.Components())

	q, err := b.DividedBy(a)
	require.NoError(t, err)
	diff(t, []float64{5, 3, 7.0 / 3, 2}, q.RawComponents())

	_, err = a.DividedBy(mat(t, f, 1, 0, 1, 1))
	require.ErrorIs(t, err, algebra.ErrDivideByZero)
	_, err = a.Plus(mat(t, f, 1))
	require.ErrorIs(t, err, algebra.ErrMismatchedDimensionality)
	_, err = a.Plus(nil)
	require.ErrorIs(t, err, algebra.ErrNullComponent)

	diff(t, []float64{0.5, 1, 1.5, 2}, a.Scale(0.5).Components())
	diff(t, []float64{-1, -2, -3, -4}, a.Negate().Components())
	diff(t, []float64{4, 3, 2, 1}, a.Reverse().Components())
	require.Equal(t, 10.0, a.Sum())
	require.Equal(t, 30.0, a.SquareSum())

	mid, err := a.Midpoint(b)
	require.NoError(t, err)
	diff(t, []float64{3, 4, 5, 6}, mid.Components())

	d, err := a.Distance(b)
	require.NoError(t, err)
	require.InDelta(t, 8, d, tol)
}

func TestMatrix_Times(t *testing.T) {
	t.Parallel()
	f := floats()
	a := mat(t, f, 1, 2, 3, 4)
	b := mat(t, f, 5, 6, 7, 8)

	p, err := a.Times(b)
	require.NoError(t, err)
	require.Equal(t, "[<19, 22>, <43, 50>]", p.String())
	require.Equal(t, "[<1, 2>, <3, 4>]", a.String(), "operands untouched")

	id := f.IdentityMatrix(algebra.KindMatrixN, 2)
	same, err := a.Times(id)
	require.NoError(t, err)
	require.True(t, same.Equal(a))

	_, err = a.Times(f.IdentityMatrix(algebra.KindMatrixN, 3))
	require.ErrorIs(t, err, algebra.ErrMismatchedDimensionality)
}

func TestMatrix_TimesVectorAndTransform(t *testing.T) {
	t.Parallel()
	f := floats()
	m := mat(t, f, 1, 2, 3, 4)
	v := vec(t, f, 1, 1)

	mv, err := m.TimesVector(v)
	require.NoError(t, err)
	require.Equal(t, "<3, 7>", mv.String())

	tv, err := m.Transform(v)
	require.NoError(t, err)
	require.Equal(t, "<4, 6>", tv.String(), "Transform multiplies by the transpose")

	_, err = m.TimesVector(vec(t, f, 1, 2, 3))
	require.ErrorIs(t, err, algebra.ErrMismatchedDimensionality)
	_, err = m.Transform(nil)
	require.ErrorIs(t, err, algebra.ErrNullComponent)

	m3 := f.IdentityMatrix(algebra.KindMatrix3, 0)
	out, err := m3.TimesVector(vec(t, f, 1, 2, 3))
	require.NoError(t, err)
	require.Equal(t, algebra.KindVector3, out.Kind())

	m4 := f.IdentityMatrix(algebra.KindMatrix4, 0)
	out, err = m4.Transform(algebra.Must(f.Vector4(1, 2, 3, 1)))
	require.NoError(t, err)
	require.Equal(t, algebra.KindVector4, out.Kind())
}

func TestMatrix_Transpose(t *testing.T) {
	t.Parallel()
	f := floats()

	for _, tc := range []struct {
		name   string
		values []float64
	}{
		{"empty", nil},
		{"1x1", []float64{7}},
		{"2x2", []float64{1, 2, 3, 4}},
		{"3x3", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := mat(t, f, tc.values...)
			require.True(t, m.Transpose().Transpose().Equal(m))
		})
	}

	tr := mat(t, f, 1, 2, 3, 4).Transpose()
	require.Equal(t, "[<1, 3>, <2, 4>]", tr.String())
}

func TestMatrix_Determinant(t *testing.T) {
	t.Parallel()
	f := floats()

	for n := 0; n <= 5; n++ {
		require.Equal(t, 1.0, f.IdentityMatrix(algebra.KindMatrixN, n).Determinant(), "det(I_%d)", n)
	}
	for n := 1; n <= 5; n++ {
		require.Equal(t, 0.0, f.OriginMatrix(algebra.KindMatrixN, n).Determinant(), "det(O_%d)", n)
	}

	m3 := algebra.Must(f.Matrix3(1, 0, 0, 0, 1, 0, 0, 0, 1))
	require.Equal(t, 1.0, m3.Determinant())

	require.Equal(t, 7.0, mat(t, f, 7).Determinant())
	require.Equal(t, -2.0, mat(t, f, 1, 2, 3, 4).Determinant())
	require.InDelta(t, -306, mat(t, f, 6, 1, 1, 4, -2, 5, 2, 8, 7).Determinant(), tol)

	// exact under integer arithmetic
	require.Equal(t, int64(-306), mat(t, ints(), 6, 1, 1, 4, -2, 5, 2, 8, 7).Determinant())
	require.Equal(t, int64(36), mat(t, ints(), 2, 0, 0, 1, 0, 3, 0, 0, 0, 0, 4, 0, 1, 0, 0, 2).Determinant())
}

func TestMatrix_MinorsCofactorAdjoint(t *testing.T) {
	t.Parallel()
	f := ints()
	m := mat(t, f, 1, 2, 3, 4)

	require.Equal(t, []int64{4, 3, 2, 1}, m.Minors().Components())
	require.Equal(t, []int64{1, -2, -3, 4}, m.Cofactor().Components())
	require.Equal(t, []int64{4, -2, -3, 1}, m.Adjoint().Components())

	minor, err := m.Minor(1, 0)
	require.NoError(t, err)
	require.Equal(t, int64(3), minor)
	_, err = m.Minor(2, 0)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)

	require.Equal(t, int64(1), m.CofactorScalar(0, 0))
	require.Equal(t, int64(-1), m.CofactorScalar(1, 0))
	require.Equal(t, int64(1), m.CofactorScalar(3, 1))

	require.Equal(t, "[<1, -1, 1>, <-1, 1, -1>, <1, -1, 1>]", f.SignChart(algebra.KindMatrixN, 3).String())
	require.Equal(t, 4, f.SignChart(algebra.KindMatrix4, 2).Dimensionality(), "fixed kinds ignore dim")
}

func TestMatrix_Inverse(t *testing.T) {
	t.Parallel()
	f := floats()

	inv, err := mat(t, f, 2, 0, 0, 2).Inverse()
	require.NoError(t, err)
	require.True(t, inv.Equal(mat(t, f, 0.5, 0, 0, 0.5)), "got %s", inv)
	require.Equal(t, "[<0.5, 0>, <0, 0.5>]", inv.String())

	one, err := mat(t, f, 4).Inverse()
	require.NoError(t, err)
	require.Equal(t, "[<0.25>]", one.String())

	for _, tc := range []struct {
		name   string
		kind   algebra.MatrixKind
		values []float64
	}{
		{"2x2", algebra.KindMatrixN, []float64{2, 1, 1, 3}},
		{"3x3", algebra.KindMatrix3, []float64{6, 1, 1, 4, -2, 5, 2, 8, 7}},
		{"4x4", algebra.KindMatrix4, []float64{2, 0, 0, 1, 0, 3, 0, 0, 0, 0, 4, 0, 1, 0, 0, 2}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := algebra.Must(f.NewMatrix(tc.kind, tc.values...))
			inv, err := m.Inverse()
			require.NoError(t, err)
			require.Equal(t, tc.kind, inv.Kind())

			p, err := m.Times(inv)
			require.NoError(t, err)
			require.True(t, p.Equal(f.IdentityMatrix(tc.kind, m.Dimensionality())), "M·M⁻¹ = %s", p)
		})
	}
}

func TestMatrix_InverseSingular(t *testing.T) {
	t.Parallel()
	f, buf := debugFactory()

	_, err := algebra.Must(f.Matrix(1, 2, 2, 4)).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)
	require.Contains(t, buf.String(), "singular matrix")

	_, err = f.OriginMatrix(algebra.KindMatrix3, 0).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)
}

func TestMatrix_InverseWithoutIntegerReciprocal(t *testing.T) {
	t.Parallel()

	_, err := mat(t, ints(), 2, 0, 0, 2).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)

	_, err = mat(t, ints(), 2, 0, 0, 2).SolveSystem(vec(t, ints(), 2, 4))
	require.ErrorIs(t, err, algebra.ErrNotInvertible)

	i32 := algebra.NewFactory[int32](arith.NewGeneric[int32]())
	_, err = algebra.Must(i32.Matrix(3, 1, 1, 1)).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible)

	inv, err := algebra.Must(i32.Matrix(-1, 0, 0, 1)).Inverse()
	require.NoError(t, err)
	require.Equal(t, []int32{-1, 0, 0, 1}, inv.Components())
}

func TestMatrix_InverseToleranceIsAbsolute(t *testing.T) {
	t.Parallel()
	values := []float64{0.001, 0, 0, 0, 0.001, 0, 0, 0, 0.001}

	_, err := algebra.Must(floats().MatrixFromFloats(algebra.KindMatrix3, values...)).Inverse()
	require.ErrorIs(t, err, algebra.ErrNotInvertible, "det 1e-9 is within the default tolerance")

	fine := algebra.NewFactory[float64](arith.NewFloat64(arith.WithEpsilon(1e-15)))
	inv, err := algebra.Must(fine.MatrixFromFloats(algebra.KindMatrix3, values...)).Inverse()
	require.NoError(t, err)
	diff(t, []float64{1000, 0, 0, 0, 1000, 0, 0, 0, 1000}, inv.RawComponents())
}

func TestMatrix_InverseExactRepresentations(t *testing.T) {
	t.Parallel()

	// unimodular: exact integer inverse
	inv, err := mat(t, ints(), 2, 1, 1, 1).Inverse()
	require.NoError(t, err)
	require.Equal(t, []int64{1, -1, -1, 2}, inv.Components())

	d := decimals()
	m := algebra.Must(d.ParseMatrix(algebra.KindMatrixN, "2", "0", "0", "2"))
	dinv, err := m.Inverse()
	require.NoError(t, err)
	require.Equal(t, "[<0.5, 0>, <0, 0.5>]", dinv.String())
}

func TestMatrix_SolveSystem(t *testing.T) {
	t.Parallel()
	f := floats()
	m := mat(t, f, 2, 1, 1, 3)

	x, err := m.SolveSystem(vec(t, f, 3, 5))
	require.NoError(t, err)
	diff(t, []float64{0.8, 1.4}, x.RawComponents())

	check, err := m.TimesVector(x)
	require.NoError(t, err)
	require.True(t, check.Equal(vec(t, f, 3, 5)))

	_, err = mat(t, f, 1, 1, 1, 1).SolveSystem(vec(t, f, 1, 2))
	require.ErrorIs(t, err, algebra.ErrNotInvertible)
	_, err = m.SolveSystem(vec(t, f, 1))
	require.ErrorIs(t, err, algebra.ErrMismatchedDimensionality)
}

func TestMatrix_SubMatrix(t *testing.T) {
	t.Parallel()
	f := floats()
	m := mat(t, f, 1, 2, 3, 4, 5, 6, 7, 8, 9)

	s, err := m.SubMatrix(1, 1, 3, 3)
	require.NoError(t, err)
	require.Equal(t, "[<5, 6>, <8, 9>]", s.String())

	s, err = m.SubMatrix(0, 1, 1, 2)
	require.NoError(t, err)
	require.Equal(t, "[<4>]", s.String())

	_, err = m.SubMatrix(0, 0, 2, 3)
	require.ErrorIs(t, err, algebra.ErrNotSquare)
	_, err = m.SubMatrix(0, 0, 4, 4)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)

	fixed := algebra.Must(f.Matrix3(1, 2, 3, 4, 5, 6, 7, 8, 9))
	_, err = fixed.SubMatrix(0, 0, 2, 2)
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	whole, err := fixed.SubMatrix(0, 0, 3, 3)
	require.NoError(t, err)
	require.True(t, whole.Equal(fixed))
}

func TestMatrix_Redim(t *testing.T) {
	t.Parallel()
	f := floats()

	grown := mat(t, f, 1, 2, 3, 4).Redim(3)
	require.Equal(t, "[<1, 2, 0>, <3, 4, 0>, <0, 0, 0>]", grown.String())

	shrunk := mat(t, f, 1, 2, 3, 4, 5, 6, 7, 8, 9).Redim(2)
	require.Equal(t, "[<1, 2>, <4, 5>]", shrunk.String())

	require.Equal(t, "[]", mat(t, f, 1, 2, 3, 4).Redim(0).String())

	fixed := algebra.Must(f.Matrix3(1, 2, 3, 4, 5, 6, 7, 8, 9))
	require.Equal(t, 3, fixed.Redim(2).Dimensionality())
	require.False(t, fixed.Resizeable())
}

func TestMatrix_CopyToAndClone(t *testing.T) {
	t.Parallel()
	f := floats()
	a := mat(t, f, 1, 2, 3, 4)

	c := a.Clone()
	require.NoError(t, c.Set(0, 0, 5))
	require.Equal(t, "[<1, 2>, <3, 4>]", a.String())

	dst := f.ZeroMatrix(algebra.KindMatrixN, 2)
	require.NoError(t, a.CopyTo(dst))
	require.True(t, dst.Equal(a))
	require.ErrorIs(t, a.CopyTo(f.ZeroMatrix(algebra.KindMatrixN, 3)), algebra.ErrMismatchedDimensionality)
	require.ErrorIs(t, a.CopyTo(nil), algebra.ErrNullComponent)
}
