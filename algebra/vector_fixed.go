// SPDX-License-Identifier: MIT

package algebra

// requireExact validates that every operand is non-nil with exactly dim values.
func requireExact[T any](dim int, vs ...*Vector[T]) error {
	for _, v := range vs {
		if v == nil {
			return ErrNullComponent
		}
		if err := ValidateFixedDimension(dim, v.Dimensionality()); err != nil {
			return err
		}
	}

	return nil
}

// SquareDifference returns x² − y² of a 2-D vector.
//
// Errors: ErrNullComponent, ErrFixedDimensionViolation (v is not 2-D).
func (v *Vector[T]) SquareDifference() (T, error) {
	if err := requireExact(2, v); err != nil {
		var zero T
		return zero, algebraErrorf(opSquareDiff, err)
	}
	ar := v.sp.ar
	x, y := v.data[0], v.data[1]

	return ar.Subtract(ar.Multiply(x, x), ar.Multiply(y, y)), nil
}

// DotFlop is the complex-style product of two 2-D vectors:
//
//	(a.x·b.x − a.y·b.y, a.x·b.y + a.y·b.x)
//
// The result is a KindVector2.
//
// Errors: ErrNullComponent, ErrFixedDimensionViolation.
func (v *Vector[T]) DotFlop(o *Vector[T]) (*Vector[T], error) {
	if err := requireExact(2, v, o); err != nil {
		return nil, algebraErrorf(opDotFlop, err)
	}
	ar := v.sp.ar
	ax, ay, bx, by := v.data[0], v.data[1], o.data[0], o.data[1]

	return newVector(v.sp, KindVector2, []T{
		ar.Subtract(ar.Multiply(ax, bx), ar.Multiply(ay, by)),
		ar.Add(ar.Multiply(ax, by), ar.Multiply(ay, bx)),
	}), nil
}

// DotFlopNegative is the conjugate counterpart of DotFlop:
//
//	(a.x·b.x + a.y·b.y, a.x·b.y − a.y·b.x)
//
// Errors: ErrNullComponent, ErrFixedDimensionViolation.
func (v *Vector[T]) DotFlopNegative(o *Vector[T]) (*Vector[T], error) {
	if err := requireExact(2, v, o); err != nil {
		return nil, algebraErrorf(opDotFlopNeg, err)
	}
	ar := v.sp.ar
	ax, ay, bx, by := v.data[0], v.data[1], o.data[0], o.data[1]

	return newVector(v.sp, KindVector2, []T{
		ar.Add(ar.Multiply(ax, bx), ar.Multiply(ay, by)),
		ar.Subtract(ar.Multiply(ax, by), ar.Multiply(ay, bx)),
	}), nil
}

// Cross returns the right-handed cross product v × o of two 3-D vectors:
//
//	(a.y·b.z − a.z·b.y, a.z·b.x − a.x·b.z, a.x·b.y − a.y·b.x)
//
// The result is a KindVector3.
//
// Errors: ErrNullComponent, ErrFixedDimensionViolation.
// Complexity: O(1).
func (v *Vector[T]) Cross(o *Vector[T]) (*Vector[T], error) {
	if err := requireExact(3, v, o); err != nil {
		return nil, algebraErrorf(opCross, err)
	}
	ar := v.sp.ar
	a, b := v.data, o.data
	det := func(p, q, r, s T) T { return ar.Subtract(ar.Multiply(p, q), ar.Multiply(r, s)) }

	return newVector(v.sp, KindVector3, []T{
		det(a[1], b[2], a[2], b[1]),
		det(a[2], b[0], a[0], b[2]),
		det(a[0], b[1], a[1], b[0]),
	}), nil
}
