// SPDX-License-Identifier: MIT

package arith

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Int is the int64 strategy. Division truncates toward zero, Sqrt is the
// floor square root, and equality is exact. The zero value is ready to use.
type Int struct{}

// Compile-time assertion.
var _ Arithmetic[int64] = Int{}

// NewInt returns the int64 strategy. Options are accepted for symmetry with
// the other constructors and have no effect.
func NewInt(...Option) Int { return Int{} }

// Name implements Arithmetic.
func (Int) Name() string { return "int64" }

func (Int) Zero() int64        { return 0 }
func (Int) One() int64         { return 1 }
func (Int) NegativeOne() int64 { return -1 }

// ValueOf truncates x toward zero.
func (Int) ValueOf(x float64) int64 { return int64(x) }
func (Int) FromInt(x int64) int64   { return x }
func (Int) Float64(a int64) float64 { return float64(a) }

// Parse reads a base-10 integer literal; surrounding blanks are ignored.
func (Int) Parse(s string) (int64, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}

	return v, nil
}

func (Int) Add(a, b int64) int64      { return a + b }
func (Int) Subtract(a, b int64) int64 { return a - b }
func (Int) Multiply(a, b int64) int64 { return a * b }
func (Int) Negate(a int64) int64      { return -a }
func (Int) Round(a int64) int64       { return a }
func (Int) Clean(a int64) int64       { return a }
func (Int) IsZero(a int64) bool       { return a == 0 }
func (Int) IsEqual(a, b int64) bool   { return a == b }
func (Int) Valid(int64) bool          { return true }

// Divide returns a/b truncated toward zero, or ErrDivideByZero.
func (Int) Divide(a, b int64) (int64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}

	return a / b, nil
}

// Reciprocal returns 1/a truncated: ±1 for a = ±1, 0 for any other non-zero a.
func (i Int) Reciprocal(a int64) (int64, error) {
	return i.Divide(1, a)
}

// Power returns a^b by binary exponentiation. Negative exponents follow
// truncating division: only bases ±1 survive, everything else yields 0.
func (Int) Power(a, b int64) int64 {
	if b < 0 {
		switch a {
		case 1:
			return 1
		case -1:
			if b%2 == 0 {
				return 1
			}
			return -1
		default:
			return 0
		}
	}
	result := int64(1)
	for base := a; b > 0; b >>= 1 {
		if b&1 == 1 {
			result *= base
		}
		base *= base
	}

	return result
}

// Sqrt returns the floor square root of a; negative input yields 0.
func (Int) Sqrt(a int64) int64 {
	if a <= 0 {
		return 0
	}
	r := int64(math.Sqrt(float64(a)))
	// float64 rounding can be off by one near large perfect squares; compare
	// through division so the correction never overflows.
	for r > a/r {
		r--
	}
	for r+1 <= a/(r+1) {
		r++
	}

	return r
}

// Compare orders a against b.
func (Int) Compare(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// Format renders a in base 10.
func (Int) Format(a int64) string { return strconv.FormatInt(a, 10) }
