// SPDX-License-Identifier: MIT

// Package arith - arbitrary-precision decimal strategy.
//
// Purpose:
//   - Provide exact decimal arithmetic on *apd.Decimal with a configurable
//     precision and rounding mode.
//   - Carry that configuration inside the strategy value itself, so every
//     component derived from a decimal component keeps the same precision.
//
// Behavior highlights:
//   - Every operation allocates its result; operands are never written.
//   - The apd context traps nothing: invalid operations yield NaN and overflow
//     yields ±Infinity, mirroring float64. Division by zero is rejected up
//     front with ErrDivideByZero.
//   - Equality tolerance is 10^-(precision-DecimalGuardDigits).
//
// AI-Hints:
//   - Precision is in significant digits, not decimal places.
//   - Use Clean before printing: it rounds away the guard digits and strips
//     trailing zeros (1.000 → 1, 0.999…9 → 1).

package arith

import (
	"fmt"
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is the *apd.Decimal strategy. The zero value uses DefaultPrecision
// and DefaultRounding; use NewDecimal to configure them.
type Decimal struct {
	ctx      *apd.Context // arithmetic context; never mutated after construction
	cleanCtx *apd.Context // ctx with the guard digits removed, used by Clean
	tol      *apd.Decimal // IsZero/IsEqual tolerance
}

// Compile-time assertion.
var _ Arithmetic[*apd.Decimal] = Decimal{}

// defaultDecimal backs the zero value of Decimal.
var defaultDecimal = NewDecimal()

// NewDecimal builds a decimal strategy.
// Options used: WithPrecision, WithRounding.
//
// Complexity:
//   - Time O(1), Space O(1).
func NewDecimal(opts ...Option) Decimal {
	o := gatherOptions(opts...)

	return Decimal{
		ctx:      newDecimalContext(o.precision, o.rounding),
		cleanCtx: newDecimalContext(o.precision-DecimalGuardDigits, o.rounding),
		tol:      apd.New(1, -int32(o.precision-DecimalGuardDigits)),
	}
}

// newDecimalContext returns a trap-free context of the given precision.
func newDecimalContext(precision uint32, rounding apd.Rounder) *apd.Context {
	return &apd.Context{
		Precision:   precision,
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Rounding:    rounding,
	}
}

// resolved returns d itself, or the default strategy for the zero value.
func (d Decimal) resolved() Decimal {
	if d.ctx == nil {
		return defaultDecimal
	}

	return d
}

// must panics on an apd error. With a trap-free context and a validated
// precision the only remaining errors are programmer errors.
func must(_ apd.Condition, err error) {
	if err != nil {
		panic(fmt.Sprintf("arith: decimal: %v", err))
	}
}

// Name implements Arithmetic.
func (Decimal) Name() string { return "decimal" }

// Precision returns the number of significant digits.
func (d Decimal) Precision() uint32 { return d.resolved().ctx.Precision }

// Rounding returns the rounding mode.
func (d Decimal) Rounding() apd.Rounder { return d.resolved().ctx.Rounding }

func (Decimal) Zero() *apd.Decimal        { return apd.New(0, 0) }
func (Decimal) One() *apd.Decimal         { return apd.New(1, 0) }
func (Decimal) NegativeOne() *apd.Decimal { return apd.New(-1, 0) }

// ValueOf converts x through its shortest decimal text, rounded to precision.
// NaN and ±Inf convert to the matching apd forms.
func (d Decimal) ValueOf(x float64) *apd.Decimal {
	switch {
	case math.IsNaN(x):
		return &apd.Decimal{Form: apd.NaN}
	case math.IsInf(x, 0):
		return &apd.Decimal{Form: apd.Infinite, Negative: x < 0}
	}
	v, err := new(apd.Decimal).SetFloat64(x)
	if err != nil {
		return &apd.Decimal{Form: apd.NaN}
	}
	r := new(apd.Decimal)
	must(d.resolved().ctx.Round(r, v))

	return r
}

// FromInt converts x exactly.
func (Decimal) FromInt(x int64) *apd.Decimal { return apd.New(x, 0) }

// Parse reads a finite decimal literal ("12.5", "-3e-4"), rounded to precision.
func (d Decimal) Parse(s string) (*apd.Decimal, error) {
	v, _, err := apd.NewFromString(strings.TrimSpace(s))
	if err != nil || v.Form != apd.Finite {
		return nil, fmt.Errorf("%q: %w", s, ErrNumberFormat)
	}
	r := new(apd.Decimal)
	must(d.resolved().ctx.Round(r, v))

	return r, nil
}

// Float64 converts a to the nearest float64; unconvertible values yield NaN.
func (Decimal) Float64(a *apd.Decimal) float64 {
	f, err := a.Float64()
	if err != nil {
		return math.NaN()
	}

	return f
}

// Add returns a + b rounded to precision.
func (d Decimal) Add(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Add(r, a, b))

	return r
}

// Subtract returns a - b rounded to precision.
func (d Decimal) Subtract(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Sub(r, a, b))

	return r
}

// Multiply returns a × b rounded to precision.
func (d Decimal) Multiply(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Mul(r, a, b))

	return r
}

// Divide returns a ÷ b rounded to precision, or ErrDivideByZero when b is
// within tolerance of zero.
func (d Decimal) Divide(a, b *apd.Decimal) (*apd.Decimal, error) {
	if d.IsZero(b) {
		return nil, ErrDivideByZero
	}
	r := new(apd.Decimal)
	must(d.resolved().ctx.Quo(r, a, b))

	return r, nil
}

// Reciprocal returns 1 ÷ a, or ErrDivideByZero.
func (d Decimal) Reciprocal(a *apd.Decimal) (*apd.Decimal, error) {
	return d.Divide(d.One(), a)
}

// Power returns a^b rounded to precision.
func (d Decimal) Power(a, b *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Pow(r, a, b))

	return r
}

// Sqrt returns √a rounded to precision; negative input yields NaN.
func (d Decimal) Sqrt(a *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Sqrt(r, a))

	return r
}

// Negate returns -a.
func (d Decimal) Negate(a *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.Neg(r, a))

	return r
}

// IsZero reports |a| ≤ tolerance.
func (d Decimal) IsZero(a *apd.Decimal) bool {
	if a.IsZero() {
		return true
	}

	return new(apd.Decimal).Abs(a).Cmp(d.resolved().tol) <= 0
}

// IsEqual reports a == b or |a-b| ≤ tolerance.
func (d Decimal) IsEqual(a, b *apd.Decimal) bool {
	if a.Cmp(b) == 0 {
		return true
	}

	return d.IsZero(d.Subtract(a, b))
}

// Compare orders a against b exactly.
func (Decimal) Compare(a, b *apd.Decimal) int { return a.Cmp(b) }

// Round rounds a to an integral value with the configured rounding mode.
func (d Decimal) Round(a *apd.Decimal) *apd.Decimal {
	r := new(apd.Decimal)
	must(d.resolved().ctx.RoundToIntegralValue(r, a))

	return r
}

// Clean drops the guard digits, strips trailing zeros and folds -0 to 0.
func (d Decimal) Clean(a *apd.Decimal) *apd.Decimal {
	rounded := new(apd.Decimal)
	must(d.resolved().cleanCtx.Round(rounded, a))
	r, _ := new(apd.Decimal).Reduce(rounded)
	if r.IsZero() {
		r.Negative = false
	}

	return r
}

// Format renders a in plain (non-exponent) notation.
func (Decimal) Format(a *apd.Decimal) string { return a.Text('f') }

// Valid reports a != nil.
func (Decimal) Valid(a *apd.Decimal) bool { return a != nil }
