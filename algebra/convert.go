// SPDX-License-Identifier: MIT

package algebra

import (
	"github.com/katalvlaran/lvalgebra/arith"
)

// convertValue moves one value between representations. The canonical text
// form is tried first so decimals keep every digit; values the destination
// cannot parse (a fraction into an integer strategy, or a value outside a
// Generic integer's range) fall back to Float64/ValueOf.
func convertValue[S, D any](from arith.Arithmetic[S], to arith.Arithmetic[D], v S) D {
	if d, err := to.Parse(from.Format(v)); err == nil {
		return d
	}

	return to.ValueOf(from.Float64(v))
}

func convertValues[S, D any](from arith.Arithmetic[S], to arith.Arithmetic[D], values []S) []D {
	out := make([]D, len(values))
	for i, v := range values {
		out[i] = convertValue(from, to, v)
	}

	return out
}

// ConvertVector rebuilds src in the representation of f, keeping its kind.
//
// Errors: ErrNullComponent.
// Complexity: O(n).
func ConvertVector[S, D any](f *Factory[D], src *Vector[S]) (*Vector[D], error) {
	if f == nil || src == nil {
		return nil, algebraErrorf(opConvert, ErrNullComponent)
	}

	return newVector(f.sp, src.kind, convertValues(src.sp.ar, f.sp.ar, src.data)), nil
}

// ConvertMatrix rebuilds src in the representation of f, keeping its kind.
//
// Errors: ErrNullComponent.
// Complexity: O(n²).
func ConvertMatrix[S, D any](f *Factory[D], src *Matrix[S]) (*Matrix[D], error) {
	if f == nil || src == nil {
		return nil, algebraErrorf(opConvert, ErrNullComponent)
	}

	return newMatrix(f.sp, src.kind, src.dim, convertValues(src.sp.ar, f.sp.ar, src.data)), nil
}
