// SPDX-License-Identifier: MIT
package algebra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvalgebra/algebra"
	"github.com/katalvlaran/lvalgebra/arith"
)

func TestVector_PlusMinusRoundTrip(t *testing.T) {
	t.Parallel()
	f := floats()
	a := vec(t, f, 1.5, -2, 3.25)
	b := vec(t, f, 0.1, 0.2, 0.3)

	sum, err := a.Plus(b)
	require.NoError(t, err)
	back, err := sum.Minus(b)
	require.NoError(t, err)
	require.True(t, back.Equal(a), "got %s", back)

	// operands are untouched
	require.Equal(t, "<1.5, -2, 3.25>", a.String())
	require.Equal(t, "<0.1, 0.2, 0.3>", b.String())
}

func TestVector_BinaryErrors(t *testing.T) {
	t.Parallel()
	f := floats()
	a := vec(t, f, 1, 2)
	b := vec(t, f, 1, 2, 3)

	for _, tc := range []struct {
		name string
		op   func() error
		want error
	}{
		{"plus mismatch", func() error { _, err := a.Plus(b); return err }, algebra.ErrMismatchedDimensionality},
		{"minus mismatch", func() error { _, err := a.Minus(b); return err }, algebra.ErrMismatchedDimensionality},
		{"times mismatch", func() error { _, err := a.Times(b); return err }, algebra.ErrMismatchedDimensionality},
		{"dot mismatch", func() error { _, err := a.Dot(b); return err }, algebra.ErrMismatchedDimensionality},
		{"distance mismatch", func() error { _, err := a.Distance(b); return err }, algebra.ErrMismatchedDimensionality},
		{"average mismatch", func() error { _, err := a.Average(a, b); return err }, algebra.ErrMismatchedDimensionality},
		{"plus nil", func() error { _, err := a.Plus(nil); return err }, algebra.ErrNullComponent},
		{"nil receiver", func() error { var n *algebra.Vector[float64]; _, err := n.Plus(a); return err }, algebra.ErrNullComponent},
		{"average empty", func() error { _, err := algebra.AverageVector[float64](); return err }, algebra.ErrNullComponent},
		{"copy mismatch", func() error { return a.CopyTo(b) }, algebra.ErrMismatchedDimensionality},
	} {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.op(), tc.want)
		})
	}
}

func TestVector_DividedBy(t *testing.T) {
	t.Parallel()
	f := floats()
	a := vec(t, f, 1, 2, 3)

	q, err := a.DividedBy(vec(t, f, 2, 4, 6))
	require.NoError(t, err)
	require.Equal(t, "<0.5, 0.5, 0.5>", q.String())

	_, err = a.DividedBy(vec(t, f, 1, 0, 1))
	require.ErrorIs(t, err, algebra.ErrDivideByZero)
	require.ErrorIs(t, err, arith.ErrDivideByZero)

	_, err = vec(t, ints(), 4, 5).DividedBy(vec(t, ints(), 2, 0))
	require.ErrorIs(t, err, algebra.ErrDivideByZero)
}

func TestVector_Redim(t *testing.T) {
	t.Parallel()
	f := floats()

	require.Equal(t, "<1, 2, 3, 0, 0>", vec(t, f, 1, 2, 3).Redim(5).String())
	require.Equal(t, "<1, 2>", vec(t, f, 1, 2, 3).Redim(2).String())
	require.Equal(t, "<>", vec(t, f, 1, 2, 3).Redim(0).String())
	require.Equal(t, 0, vec(t, f, 1, 2, 3).Redim(-4).Dimensionality())

	fixed := algebra.Must(f.Vector3(1, 2, 3))
	require.False(t, fixed.Resizeable())
	require.Same(t, fixed, fixed.Redim(5))
	require.Equal(t, 3, fixed.Dimensionality())
}

func TestVector_RedimFixedIsLogged(t *testing.T) {
	t.Parallel()
	f, buf := debugFactory()

	algebra.Must(f.Vector2(1, 2)).Redim(4)
	require.Contains(t, buf.String(), "redim ignored on fixed kind")
	require.Contains(t, buf.String(), "kind=Vector2")
}

func TestVector_HypotenuseNormalize(t *testing.T) {
	t.Parallel()
	f := floats()
	v := vec(t, f, 3, 4)

	require.Equal(t, 5.0, v.Hypotenuse())
	require.True(t, v.Normalize().Equal(vec(t, f, 0.6, 0.8)))
	require.Equal(t, "<3, 4>", v.String(), "Normalize must not mutate")

	zero := f.ZeroVector(algebra.KindVectorN, 3)
	n := zero.Normalize()
	require.True(t, n.Equal(zero))
	require.NotSame(t, zero, n)
}

func TestVector_NormalizeZeroIsLogged(t *testing.T) {
	t.Parallel()
	f, buf := debugFactory()

	f.ZeroVector(algebra.KindVector3, 0).Normalize()
	require.Contains(t, buf.String(), "normalize of zero-length vector")
	require.Contains(t, buf.String(), "op=Normalize")
}

func TestVector_Cross(t *testing.T) {
	t.Parallel()
	f := floats()
	x := algebra.Must(f.Vector3(1, 0, 0))
	y := algebra.Must(f.Vector3(0, 1, 0))

	z, err := x.Cross(y)
	require.NoError(t, err)
	require.True(t, z.Equal(algebra.Must(f.Vector3(0, 0, 1))))
	require.Equal(t, algebra.KindVector3, z.Kind())

	a := algebra.Must(f.Vector3(1, 2, 3))
	b := algebra.Must(f.Vector3(4, 5, 6))
	ab, err := a.Cross(b)
	require.NoError(t, err)
	require.Equal(t, "<-3, 6, -3>", ab.String())

	d, err := ab.Dot(a)
	require.NoError(t, err)
	require.InDelta(t, 0, d, tol)
	d, err = ab.Dot(b)
	require.NoError(t, err)
	require.InDelta(t, 0, d, tol)

	ba, err := b.Cross(a)
	require.NoError(t, err)
	require.True(t, ba.Equal(ab.Scale(-1)))

	// A resizeable 3-D vector qualifies too.
	_, err = vec(t, f, 1, 2, 3).Cross(b)
	require.NoError(t, err)

	_, err = vec(t, f, 1, 2).Cross(b)
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	_, err = a.Cross(nil)
	require.ErrorIs(t, err, algebra.ErrNullComponent)
}

func TestVector_TwoDimensional(t *testing.T) {
	t.Parallel()
	f := ints()
	a := algebra.Must(f.Vector2(1, 2))
	b := algebra.Must(f.Vector2(3, 4))

	p, err := a.DotFlop(b)
	require.NoError(t, err)
	require.Equal(t, []int64{-5, 10}, p.Components())
	require.Equal(t, algebra.KindVector2, p.Kind())

	q, err := a.DotFlopNegative(b)
	require.NoError(t, err)
	require.Equal(t, []int64{11, -2}, q.Components())

	sd, err := b.SquareDifference()
	require.NoError(t, err)
	require.Equal(t, int64(-7), sd)

	_, err = a.DotFlop(vec(t, f, 1, 2, 3))
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	_, err = vec(t, f, 1).SquareDifference()
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
}

func TestVector_NamedAccessors(t *testing.T) {
	t.Parallel()
	f := floats()
	v := algebra.Must(f.Vector2(1, 2))

	require.Equal(t, 1.0, v.X())
	require.Equal(t, 2.0, v.Y())
	require.Equal(t, 0.0, v.Z(), "missing slots degrade to zero")
	require.Equal(t, 0.0, v.W())

	require.NoError(t, v.SetY(7))
	require.Equal(t, 7.0, v.Y())
	require.ErrorIs(t, v.SetZ(1), algebra.ErrIndexOutOfRange)

	w := algebra.Must(f.Vector4(1, 2, 3, 4))
	require.NoError(t, w.SetW(9))
	require.Equal(t, "<1, 2, 3, 9>", w.String())

	_, err := w.Get(4)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
	_, err = w.GetRaw(-1)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
}

func TestVector_SubVector(t *testing.T) {
	t.Parallel()
	f := floats()
	v := vec(t, f, 1, 2, 3, 4)

	s, err := v.SubVector(1, 3)
	require.NoError(t, err)
	require.Equal(t, "<2, 3>", s.String())
	require.Equal(t, algebra.KindVectorN, s.Kind())

	empty, err := v.SubVector(2, 2)
	require.NoError(t, err)
	require.Equal(t, 0, empty.Dimensionality())

	_, err = v.SubVector(3, 5)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)
	_, err = v.SubVector(3, 1)
	require.ErrorIs(t, err, algebra.ErrIndexOutOfRange)

	fixed := algebra.Must(f.Vector3(1, 2, 3))
	_, err = fixed.SubVector(0, 2)
	require.ErrorIs(t, err, algebra.ErrFixedDimensionViolation)
	same, err := fixed.SubVector(0, 3)
	require.NoError(t, err)
	require.True(t, same.Equal(fixed))
}

func TestVector_AverageDistance(t *testing.T) {
	t.Parallel()
	f := floats()

	avg, err := vec(t, f, 1, 2).Average(vec(t, f, 3, 4), vec(t, f, 5, 6))
	require.NoError(t, err)
	require.Equal(t, "<3, 4>", avg.String())

	mid, err := vec(t, f, 0, 0).Midpoint(vec(t, f, 2, 4))
	require.NoError(t, err)
	require.Equal(t, "<1, 2>", mid.String())

	all, err := algebra.AverageVector(vec(t, f, 2), vec(t, f, 4))
	require.NoError(t, err)
	require.Equal(t, "<3>", all.String())

	d, err := vec(t, f, 0, 0).Distance(vec(t, f, 3, 4))
	require.NoError(t, err)
	require.Equal(t, 5.0, d)

	// integer means truncate
	im, err := vec(t, ints(), 1).Midpoint(vec(t, ints(), 2))
	require.NoError(t, err)
	require.Equal(t, []int64{1}, im.Components())
}

func TestVector_ElementwiseHelpers(t *testing.T) {
	t.Parallel()
	f := floats()
	v := vec(t, f, 1.4, -2.6, 3)

	diff(t, []float64{2.8, -5.2, 6}, v.Scale(2).Components())
	diff(t, []float64{-1.4, 2.6, -3}, v.Negate().Components())
	diff(t, []float64{1, -3, 3}, v.Round().Components())
	diff(t, []float64{3, -2.6, 1.4}, v.Reverse().Components())
	diff(t, []float64{1.4, -2.6, 3}, v.RawComponents())

	p, err := v.Times(vec(t, f, 2, 2, 2))
	require.NoError(t, err)
	diff(t, []float64{2.8, -5.2, 6}, p.Components())

	require.InDelta(t, 1.8, v.Sum(), tol)
	require.InDelta(t, 1.96+6.76+9, v.SquareSum(), tol)
	require.Equal(t, 3, v.Len())

	var seen []float64
	v.Do(func(i int, x float64) bool {
		seen = append(seen, x)
		return i < 1
	})
	diff(t, []float64{1.4, -2.6}, seen)
}

func TestVector_EqualityAndClone(t *testing.T) {
	t.Parallel()
	f := floats()
	a := vec(t, f, 1, 2, 3)

	require.False(t, a.Equal(algebra.Must(f.Vector3(1, 2, 3))), "kind participates in equality")
	require.False(t, a.Equal(vec(t, f, 1, 2)))
	require.False(t, a.Equal(nil))
	require.True(t, a.Equal(vec(t, f, 1, 2, 3+1e-12)), "tolerance equality")

	c := a.Clone()
	require.NoError(t, c.Set(0, 10))
	require.Equal(t, "<1, 2, 3>", a.String())
	require.Equal(t, "<10, 2, 3>", c.String())

	dst := f.ZeroVector(algebra.KindVectorN, 3)
	require.NoError(t, a.CopyTo(dst))
	require.True(t, dst.Equal(a))
}

func TestVector_DecimalPrecisionSurvives(t *testing.T) {
	t.Parallel()
	f := decimals(arith.WithPrecision(10))
	d := f.Arithmetic()

	v, err := f.ParseVector(algebra.KindVectorN, "1", "2")
	require.NoError(t, err)

	sum, err := v.Plus(v)
	require.NoError(t, err)
	require.Equal(t, uint32(10), sum.Arithmetic().(arith.Decimal).Precision())

	third, err := d.Divide(d.One(), d.FromInt(3))
	require.NoError(t, err)
	scaled := sum.ScaleBy(third)
	require.Equal(t, uint32(10), scaled.Arithmetic().(arith.Decimal).Precision())
	require.Equal(t, []string{"0.6666666666", "1.333333333"}, decStrings(scaled.RawComponents()))

	// Scale converts its float factor under the same context
	half := sum.Scale(0.5)
	require.Equal(t, uint32(10), half.Arithmetic().(arith.Decimal).Precision())
	require.True(t, half.Equal(v), "got %s", half)
	tenth := v.Scale(0.1)
	require.Equal(t, "<0.1, 0.2>", tenth.String())

	_, err = f.ParseVector(algebra.KindVectorN, "1", "x")
	require.ErrorIs(t, err, algebra.ErrNumberFormat)
}

func TestVector_DecimalIsExact(t *testing.T) {
	t.Parallel()
	f := decimals()

	a := algebra.Must(f.ParseVector(algebra.KindVector3, "0.1", "0.2", "0.3"))
	b := algebra.Must(f.ParseVector(algebra.KindVector3, "0.2", "0.1", "0.7"))
	s, err := a.Plus(b)
	require.NoError(t, err)
	require.Equal(t, "<0.3, 0.3, 1>", s.String())

	_, err = f.Vector(nil)
	require.ErrorIs(t, err, algebra.ErrNullComponent)
	require.ErrorIs(t, a.Set(0, nil), algebra.ErrNullComponent)
}

func TestVector_Generic(t *testing.T) {
	t.Parallel()
	f := algebra.NewFactory[float32](arith.NewGeneric[float32]())

	v := algebra.Must(f.Vector2(3, 4))
	require.Equal(t, float32(5), v.Hypotenuse())
	require.Equal(t, "<3, 4>", v.String())
}
