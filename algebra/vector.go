// SPDX-License-Identifier: MIT

// Package algebra - Vector type, accessors and structural mutation.
//
// Purpose:
//   - Define Vector[T]: a 1-D component whose dimensionality equals its length.
//   - Provide the in-place mutators (Set, SetX..SetW, Redim, CopyTo); every
//     other operation returns a fresh Vector (see impl_vector.go).
//
// Invariants:
//   - Fixed kinds (KindVector2/3/4) always hold exactly Fixed() values.
//   - Redim on a fixed kind is a logged no-op.

package algebra

import (
	"log/slog"
	"strings"
)

// Vector is an ordered, fixed-length sequence of T sharing one arithmetic space.
// Build vectors with a Factory; the zero Vector is not usable.
type Vector[T any] struct {
	components[T]
	kind VectorKind
}

// newVector wraps data without copying; callers hand over ownership.
func newVector[T any](sp *space[T], kind VectorKind, data []T) *Vector[T] {
	return &Vector[T]{components: components[T]{data: data, sp: sp}, kind: kind}
}

// derive builds a vector of the same kind and space around fresh data.
func (v *Vector[T]) derive(data []T) *Vector[T] {
	return newVector(v.sp, v.kind, data)
}

// Dimensionality returns the number of values (equal to Len for vectors).
func (v *Vector[T]) Dimensionality() int { return len(v.data) }

// Kind returns the concrete shape of v.
func (v *Vector[T]) Kind() VectorKind { return v.kind }

// Resizeable reports whether Redim may change v.
func (v *Vector[T]) Resizeable() bool { return v.kind.Resizeable() }

// Set replaces the value at index i.
//
// Errors: ErrNullComponent (nil v or invalid value), ErrIndexOutOfRange.
// Complexity: O(1).
func (v *Vector[T]) Set(i int, value T) error {
	if v == nil {
		return algebraErrorf(opSet, ErrNullComponent)
	}
	if !v.sp.ar.Valid(value) {
		return algebraErrorf(opSet, ErrNullComponent)
	}
	if err := ValidateIndex(i, len(v.data)); err != nil {
		return algebraErrorf(opSet, err)
	}
	v.data[i] = value

	return nil
}

// slot returns the raw value at i, or Zero when v is too short.
func (v *Vector[T]) slot(i int) T {
	if i < len(v.data) {
		return v.data[i]
	}

	return v.sp.ar.Zero()
}

// X returns the first value, or Zero when v has no such slot.
func (v *Vector[T]) X() T { return v.slot(0) }

// Y returns the second value, or Zero when v has no such slot.
func (v *Vector[T]) Y() T { return v.slot(1) }

// Z returns the third value, or Zero when v has no such slot.
func (v *Vector[T]) Z() T { return v.slot(2) }

// W returns the fourth value, or Zero when v has no such slot.
func (v *Vector[T]) W() T { return v.slot(3) }

// SetX replaces the first value; ErrIndexOutOfRange when absent.
func (v *Vector[T]) SetX(value T) error { return v.Set(0, value) }

// SetY replaces the second value; ErrIndexOutOfRange when absent.
func (v *Vector[T]) SetY(value T) error { return v.Set(1, value) }

// SetZ replaces the third value; ErrIndexOutOfRange when absent.
func (v *Vector[T]) SetZ(value T) error { return v.Set(2, value) }

// SetW replaces the fourth value; ErrIndexOutOfRange when absent.
func (v *Vector[T]) SetW(value T) error { return v.Set(3, value) }

// Redim changes the dimensionality of v in place and returns v.
//
// Behavior highlights:
//   - Fixed kinds or an unchanged dimension: no-op.
//   - n ≤ 0 empties v.
//   - Shrinking truncates; growing zero-pads, keeping existing positions.
//
// Complexity: O(n).
func (v *Vector[T]) Redim(n int) *Vector[T] {
	if n < 0 {
		n = 0
	}
	if n == len(v.data) {
		return v
	}
	if !v.kind.Resizeable() {
		v.debug(opRedim, "redim ignored on fixed kind",
			slog.String("kind", v.kind.String()), slog.Int("requested", n))

		return v
	}

	data := zeroValues(v.sp.ar, n)
	copy(data, v.data)
	v.data = data

	return v
}

// CopyTo copies the raw values of v into dst and hands dst the arithmetic
// space of v, so representation settings (decimal precision) follow along.
//
// Errors: ErrNullComponent, ErrMismatchedDimensionality.
// Complexity: O(n).
func (v *Vector[T]) CopyTo(dst *Vector[T]) error {
	if v == nil || dst == nil {
		return algebraErrorf(opCopyTo, ErrNullComponent)
	}
	if err := ValidateSameDimensionality(v.Dimensionality(), dst.Dimensionality()); err != nil {
		return algebraErrorf(opCopyTo, err)
	}
	copy(dst.data, v.data)
	dst.sp = v.sp

	return nil
}

// Clone returns an independent copy of v (same kind and space).
func (v *Vector[T]) Clone() *Vector[T] {
	return v.derive(v.RawComponents())
}

// Equal reports whether v and o have the same kind and dimensionality and
// pairwise tolerance-equal values. Two nil vectors are equal.
func (v *Vector[T]) Equal(o *Vector[T]) bool {
	if v == nil || o == nil {
		return v == o
	}
	if v.kind != o.kind {
		return false
	}

	return v.equalValues(o.data)
}

// String renders v as "<a, b, c>" using cleaned values.
func (v *Vector[T]) String() string {
	var b strings.Builder
	b.WriteString(_fmtVectorOpen)
	b.WriteString(v.formatValues(v.data))
	b.WriteString(_fmtVectorClose)

	return b.String()
}
