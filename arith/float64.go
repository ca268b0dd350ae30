// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Float64 is the float64 strategy: IEEE-754 arithmetic with an absolute
// tolerance for equality and a decimal-place based Clean.
// The zero value compares exactly and leaves values uncleaned; use NewFloat64.
type Float64 struct {
	eps         float64 // IsEqual/IsZero tolerance
	cleanScale  float64 // 10^cleanDigits
	cleanDigits int     // decimal places kept by Clean
}

// Compile-time assertion.
var _ Arithmetic[float64] = Float64{}

// NewFloat64 builds a float64 strategy.
// Options used: WithEpsilon, WithCleanDigits.
func NewFloat64(opts ...Option) Float64 {
	o := gatherOptions(opts...)

	return Float64{
		eps:         o.eps,
		cleanScale:  math.Pow10(o.cleanDigits),
		cleanDigits: o.cleanDigits,
	}
}

// Name implements Arithmetic.
func (Float64) Name() string { return "float64" }

// Epsilon returns the equality tolerance.
func (f Float64) Epsilon() float64 { return f.eps }

// CleanDigits returns the number of decimal places kept by Clean.
func (f Float64) CleanDigits() int { return f.cleanDigits }

func (Float64) Zero() float64        { return 0 }
func (Float64) One() float64         { return 1 }
func (Float64) NegativeOne() float64 { return -1 }

func (Float64) ValueOf(x float64) float64 { return x }
func (Float64) FromInt(x int64) float64   { return float64(x) }
func (Float64) Float64(a float64) float64 { return a }

// Parse reads a float64 literal; surrounding blanks are ignored.
func (Float64) Parse(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}

	return v, nil
}

func (Float64) Add(a, b float64) float64      { return a + b }
func (Float64) Subtract(a, b float64) float64 { return a - b }
func (Float64) Multiply(a, b float64) float64 { return a * b }
func (Float64) Power(a, b float64) float64    { return math.Pow(a, b) }
func (Float64) Sqrt(a float64) float64        { return math.Sqrt(a) }
func (Float64) Negate(a float64) float64      { return -a }
func (Float64) Round(a float64) float64       { return math.Round(a) }
func (Float64) Valid(float64) bool            { return true }

// Divide returns a/b, or ErrDivideByZero when b is within tolerance of zero.
func (f Float64) Divide(a, b float64) (float64, error) {
	if f.IsZero(b) {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// Reciprocal returns 1/a, or ErrDivideByZero when a is within tolerance of zero.
func (f Float64) Reciprocal(a float64) (float64, error) {
	return f.Divide(1, a)
}

// IsZero reports |a| ≤ eps.
func (f Float64) IsZero(a float64) bool { return math.Abs(a) <= f.eps }

// IsEqual reports a == b or |a-b| ≤ eps. Equal infinities compare equal.
func (f Float64) IsEqual(a, b float64) bool {
	if a == b {
		return true
	}

	return math.Abs(a-b) <= f.eps
}

// Compare orders a against b exactly; NaN sorts before everything.
func (Float64) Compare(a, b float64) int {
	switch {
	case a < b || (math.IsNaN(a) && !math.IsNaN(b)):
		return -1
	case a > b || (!math.IsNaN(a) && math.IsNaN(b)):
		return 1
	default:
		return 0
	}
}

// Clean rounds a to the configured number of decimal places and folds -0 to 0.
// Magnitudes where the scaling would lose integer precision are returned as-is.
func (f Float64) Clean(a float64) float64 {
	return cleanFloat(a, f.cleanScale)
}

// Format renders a in the shortest form that round-trips ('g', -1).
func (Float64) Format(a float64) string {
	return strconv.FormatFloat(a, 'g', -1, 64)
}

// cleanLimit is the magnitude above which a*scale would exceed 2^53.
const cleanLimit = 1 << 53

// cleanFloat is shared by Float64 and floating Generic instantiations.
func cleanFloat(a, scale float64) float64 {
	if scale == 0 || math.IsNaN(a) || math.IsInf(a, 0) {
		return a
	}
	if math.Abs(a*scale) >= cleanLimit {
		return a
	}
	r := math.Round(a*scale) / scale
	if r == 0 {
		return 0 // fold -0
	}

	return r
}
