// SPDX-License-Identifier: MIT
// Package algebra - Matrix elementwise arithmetic and products.
//
// Purpose:
//   - Elementwise kernels (Plus, Minus, Hadamard, DividedBy, Scale, ...)
//     shared with Vector through impl_component.go.
//   - Matrix product (Times), matrix·vector product (TimesVector),
//     Transpose and Trace.
//
// Determinism:
//   - Fixed loop orders (row y outer, column x inner, k innermost).

package algebra

// checkMatrixOperand validates a binary operand pair: both non-nil, same side.
func checkMatrixOperand[T any](m, o *Matrix[T]) error {
	if m == nil || o == nil {
		return ErrNullComponent
	}

	return ValidateSameDimensionality(m.dim, o.dim)
}

// zip is the shared facade for Plus/Minus/Hadamard.
func (m *Matrix[T]) zip(op string, o *Matrix[T], f func(a, b T) T) (*Matrix[T], error) {
	if err := checkMatrixOperand(m, o); err != nil {
		return nil, algebraErrorf(op, err)
	}

	return m.derive(zipValues(m.data, o.data, f)), nil
}

// Plus returns m + o elementwise.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n²).
func (m *Matrix[T]) Plus(o *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opPlus, ErrNullComponent)
	}

	return m.zip(opPlus, o, m.sp.ar.Add)
}

// Minus returns m − o elementwise.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n²).
func (m *Matrix[T]) Minus(o *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opMinus, ErrNullComponent)
	}

	return m.zip(opMinus, o, m.sp.ar.Subtract)
}

// Hadamard returns the elementwise product m ∘ o.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n²).
func (m *Matrix[T]) Hadamard(o *Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opHadamard, ErrNullComponent)
	}

	return m.zip(opHadamard, o, m.sp.ar.Multiply)
}

// DividedBy returns m / o elementwise; every value of o must be non-zero.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality, ErrDivideByZero.
// Complexity: O(n²).
func (m *Matrix[T]) DividedBy(o *Matrix[T]) (*Matrix[T], error) {
	if err := checkMatrixOperand(m, o); err != nil {
		return nil, algebraErrorf(opDividedBy, err)
	}
	data, err := divideValues(m.sp.ar, m.data, o.data)
	if err != nil {
		return nil, algebraErrorf(opDividedBy, err)
	}

	return m.derive(data), nil
}

// Scale multiplies every value by the strategy's conversion of s.
func (m *Matrix[T]) Scale(s float64) *Matrix[T] {
	return m.ScaleBy(m.sp.ar.ValueOf(s))
}

// ScaleBy multiplies every value by s.
func (m *Matrix[T]) ScaleBy(s T) *Matrix[T] {
	ar := m.sp.ar

	return m.derive(mapValues(m.data, func(x T) T { return ar.Multiply(x, s) }))
}

// Negate returns −m.
func (m *Matrix[T]) Negate() *Matrix[T] {
	return m.derive(mapValues(m.data, m.sp.ar.Negate))
}

// Round rounds every value through the strategy.
func (m *Matrix[T]) Round() *Matrix[T] {
	return m.derive(mapValues(m.data, m.sp.ar.Round))
}

// Reverse returns a copy of m with the flat value order reversed
// (equivalently, rotated by 180°).
func (m *Matrix[T]) Reverse() *Matrix[T] {
	return m.derive(reversedValues(m.data))
}

// Distance returns the Euclidean (Frobenius) distance between m and o.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
func (m *Matrix[T]) Distance(o *Matrix[T]) (T, error) {
	if err := checkMatrixOperand(m, o); err != nil {
		var zero T
		return zero, algebraErrorf(opDistance, err)
	}

	return distanceValues(m.sp.ar, m.data, o.data), nil
}

// Midpoint returns the elementwise mean of m and o.
func (m *Matrix[T]) Midpoint(o *Matrix[T]) (*Matrix[T], error) {
	return m.Average(o)
}

// Average returns the elementwise mean of m and all others.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(k·n²).
func (m *Matrix[T]) Average(others ...*Matrix[T]) (*Matrix[T], error) {
	if m == nil {
		return nil, algebraErrorf(opAverage, ErrNullComponent)
	}
	sets := make([][]T, 0, len(others)+1)
	sets = append(sets, m.data)
	for _, o := range others {
		if err := checkMatrixOperand(m, o); err != nil {
			return nil, algebraErrorf(opAverage, err)
		}
		sets = append(sets, o.data)
	}
	data, err := averageValues(m.sp.ar, sets)
	if err != nil {
		return nil, algebraErrorf(opAverage, err)
	}

	return m.derive(data), nil
}

// Times returns the matrix product m·o.
//
// Implementation:
//   - Stage 1: operand checks (non-nil, equal side).
//   - Stage 2: triple loop y→x→k accumulating m[k,y]·o[x,k] with the
//     strategy's Add/Multiply.
//
// Behavior highlights:
//   - The result keeps the kind of m. Inputs are untouched.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n³) time, O(n²) space.
//
// AI-Hints:
//   - Use Hadamard for the elementwise product.
func (m *Matrix[T]) Times(o *Matrix[T]) (*Matrix[T], error) {
	if err := checkMatrixOperand(m, o); err != nil {
		return nil, algebraErrorf(opTimes, err)
	}
	ar, n := m.sp.ar, m.dim
	out := make([]T, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			acc := ar.Zero()
			for k := 0; k < n; k++ {
				acc = ar.Add(acc, ar.Multiply(m.data[y*n+k], o.data[k*n+x]))
			}
			out[y*n+x] = acc
		}
	}

	return m.derive(out), nil
}

// TimesVector returns m·v: entry y is the dot product of row y with v.
// The result kind follows m (Matrix3 → Vector3, Matrix4 → Vector4).
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n²).
func (m *Matrix[T]) TimesVector(v *Vector[T]) (*Vector[T], error) {
	if m == nil || v == nil {
		return nil, algebraErrorf(opTimesVector, ErrNullComponent)
	}
	if err := ValidateSameDimensionality(m.dim, v.Dimensionality()); err != nil {
		return nil, algebraErrorf(opTimesVector, err)
	}
	ar, n := m.sp.ar, m.dim
	out := make([]T, n)
	for y := 0; y < n; y++ {
		out[y] = dotValues(ar, m.data[y*n:(y+1)*n], v.data)
	}

	return m.vector(out), nil
}

// Transpose returns mᵀ: value (x, y) moves to (y, x).
// Complexity: O(n²).
func (m *Matrix[T]) Transpose() *Matrix[T] {
	n := m.dim
	out := make([]T, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			out[x*n+y] = m.data[y*n+x]
		}
	}

	return m.derive(out)
}

// Trace returns the sum of the diagonal.
func (m *Matrix[T]) Trace() T {
	ar := m.sp.ar
	acc := ar.Zero()
	for i := 0; i < m.dim; i++ {
		acc = ar.Add(acc, m.data[i*m.dim+i])
	}

	return acc
}
