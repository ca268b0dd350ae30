// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Real is the set of Go numeric types handled by Generic.
type Real interface {
	constraints.Integer | constraints.Float
}

// Generic is the fallback strategy for any Go numeric type N (int32, uint8,
// float32, ...). Add, Subtract, Multiply and Divide use N's native operators
// (so integer N truncates); Power, Sqrt, Round, Clean and tolerance checks go
// through float64. The zero value compares floating N exactly; use NewGeneric.
type Generic[N Real] struct {
	eps        float64 // IsEqual/IsZero tolerance (floating N only)
	cleanScale float64 // 10^cleanDigits (floating N only)
}

// NewGeneric builds the strategy for N.
// Options used: WithEpsilon, WithCleanDigits.
func NewGeneric[N Real](opts ...Option) Generic[N] {
	o := gatherOptions(opts...)

	return Generic[N]{
		eps:        o.eps,
		cleanScale: math.Pow10(o.cleanDigits),
	}
}

// isFloating reports whether N keeps the fraction of 0.5.
func isFloating[N Real]() bool {
	half := 0.5

	return N(half) != 0
}

// Name implements Arithmetic, e.g. "generic[float32]".
func (Generic[N]) Name() string {
	var zero N

	return fmt.Sprintf("generic[%T]", zero)
}

func (Generic[N]) Zero() N        { return 0 }
func (Generic[N]) One() N         { return 1 }
func (Generic[N]) NegativeOne() N { return N(negOne) }

// negOne is a variable so that N(negOne) wraps for unsigned N instead of
// failing constant conversion.
var negOne = int64(-1)

// bounds returns the range of N as float64: [lo, hi) for integer N,
// [lo, hi] for floating N.
func bounds[N Real]() (lo, hi float64) {
	var zero N
	bits := int(unsafe.Sizeof(zero)) * 8
	switch {
	case isFloating[N]() && bits == 32:
		return -math.MaxFloat32, math.MaxFloat32
	case isFloating[N]():
		return -math.MaxFloat64, math.MaxFloat64
	case N(negOne) > 0: // unsigned
		return 0, math.Ldexp(1, bits)
	default:
		return -math.Ldexp(1, bits-1), math.Ldexp(1, bits-1)
	}
}

// inRange reports whether the float64 v converts to N without wrapping.
// Infinities fit floating N only.
func inRange[N Real](v float64) bool {
	lo, hi := bounds[N]()
	if isFloating[N]() {
		return math.IsInf(v, 0) || (v >= lo && v <= hi)
	}

	return v >= lo && v < hi
}

// ValueOf converts x to N. Integer N truncate the fraction and saturate at
// their range (NaN maps to 0).
func (Generic[N]) ValueOf(x float64) N {
	if isFloating[N]() || inRange[N](math.Trunc(x)) {
		return N(x)
	}
	if math.IsNaN(x) {
		return 0
	}
	lo, _ := bounds[N]()
	minN := N(lo)
	if x < 0 {
		return minN
	}
	if minN == 0 {
		return N(negOne) // unsigned max: all bits set
	}

	return -(minN + 1)
}

func (Generic[N]) FromInt(x int64) N   { return N(x) }
func (Generic[N]) Float64(a N) float64 { return float64(a) }

// Parse reads a float literal and converts it to N. Integer N reject
// fractions; values outside N's range are rejected rather than wrapped.
func (g Generic[N]) Parse(s string) (N, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}
	if !isFloating[N]() && v != math.Trunc(v) {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}
	if !inRange[N](v) {
		return 0, fmt.Errorf("%q out of range for %s: %w", s, g.Name(), ErrNumberFormat)
	}

	return N(v), nil
}

func (Generic[N]) Add(a, b N) N      { return a + b }
func (Generic[N]) Subtract(a, b N) N { return a - b }
func (Generic[N]) Multiply(a, b N) N { return a * b }
func (Generic[N]) Negate(a N) N      { return -a }
func (Generic[N]) Valid(N) bool      { return true }

// Divide returns a/b in N's native division, or ErrDivideByZero.
func (g Generic[N]) Divide(a, b N) (N, error) {
	if g.IsZero(b) {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// Reciprocal returns 1/a in N's native division, or ErrDivideByZero.
func (g Generic[N]) Reciprocal(a N) (N, error) { return g.Divide(1, a) }

// Power returns N(math.Pow(a, b)).
func (Generic[N]) Power(a, b N) N { return N(math.Pow(float64(a), float64(b))) }

// Sqrt returns N(math.Sqrt(a)); negative input yields 0 for integer N.
func (g Generic[N]) Sqrt(a N) N {
	if !isFloating[N]() && a < 0 {
		return 0
	}

	return N(math.Sqrt(float64(a)))
}

// Round returns N(math.Round(a)).
func (g Generic[N]) Round(a N) N {
	if !isFloating[N]() {
		return a
	}

	return N(math.Round(float64(a)))
}

// IsZero reports a == 0, or |a| ≤ eps for floating N.
func (g Generic[N]) IsZero(a N) bool {
	if !isFloating[N]() {
		return a == 0
	}

	return math.Abs(float64(a)) <= g.eps
}

// IsEqual reports a == b, or |a-b| ≤ eps for floating N.
func (g Generic[N]) IsEqual(a, b N) bool {
	if a == b {
		return true
	}
	if !isFloating[N]() {
		return false
	}

	return math.Abs(float64(a)-float64(b)) <= g.eps
}

// Compare orders a against b.
func (Generic[N]) Compare(a, b N) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Clean rounds floating N to the configured decimal places; integers pass through.
func (g Generic[N]) Clean(a N) N {
	if !isFloating[N]() {
		return a
	}

	return N(cleanFloat(float64(a), g.cleanScale))
}

// Format renders a with %v.
func (Generic[N]) Format(a N) string { return fmt.Sprintf("%v", a) }
