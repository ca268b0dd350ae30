// SPDX-License-Identifier: MIT

// Package arith: functional configuration for the numeric strategies.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Options are resolved once at strategy construction; the resulting
//     strategy is immutable, so every value derived from it inherits the same
//     tolerance and precision without any copy hook.
//   - Float-only settings are ignored by Int and Decimal, precision settings
//     are ignored by Float64, Int and Generic.
package arith

import (
	"math"
	"strings"

	"github.com/cockroachdb/apd/v3"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by IsEqual/IsZero on
	// floating representations.
	DefaultEpsilon = 1e-9

	// DefaultCleanDigits is the number of decimal places Clean keeps for
	// floating representations.
	DefaultCleanDigits = 10

	// DefaultPrecision is the number of significant digits of Decimal (decimal128).
	DefaultPrecision uint32 = 34

	// DefaultRounding is the rounding mode of Decimal.
	DefaultRounding = apd.RoundHalfEven

	// DecimalGuardDigits is how many trailing significant digits Decimal
	// equality ignores: tolerance = 10^-(precision-DecimalGuardDigits).
	DecimalGuardDigits uint32 = 3

	// maxCleanDigits bounds WithCleanDigits; float64 carries ~17 significant digits.
	maxCleanDigits = 17
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid     = "arith: WithEpsilon: eps must be finite, non-negative"
	panicCleanDigitsInvalid = "arith: WithCleanDigits: digits must be in [0, 17]"
	panicPrecisionInvalid   = "arith: WithPrecision: precision must be > DecimalGuardDigits"
	panicRoundingInvalid    = "arith: WithRounding: unknown rounding mode"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	eps         float64     // >= 0; DefaultEpsilon
	cleanDigits int         // [0, maxCleanDigits]; DefaultCleanDigits
	precision   uint32      // > DecimalGuardDigits; DefaultPrecision
	rounding    apd.Rounder // one of roundings; DefaultRounding
}

// roundings lists the apd rounding modes accepted by WithRounding and ParseRounding.
var roundings = []apd.Rounder{
	apd.RoundDown,
	apd.RoundHalfUp,
	apd.RoundHalfEven,
	apd.RoundCeiling,
	apd.RoundFloor,
	apd.RoundHalfDown,
	apd.RoundUp,
	apd.Round05Up,
}

// WithEpsilon sets the absolute tolerance of floating equality. The same
// tolerance decides IsZero, so it also bounds which determinants count as
// singular in matrix inversion.
// Panics if eps is NaN, ±Inf or negative.
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithCleanDigits sets how many decimal places Clean keeps on floating values.
// Panics outside [0, 17].
func WithCleanDigits(digits int) Option {
	if digits < 0 || digits > maxCleanDigits {
		panic(panicCleanDigitsInvalid)
	}

	return func(o *Options) { o.cleanDigits = digits }
}

// WithPrecision sets the significant digits of Decimal arithmetic.
// Panics when precision leaves no room above DecimalGuardDigits.
func WithPrecision(precision uint32) Option {
	if precision <= DecimalGuardDigits {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = precision }
}

// WithRounding sets the Decimal rounding mode. Panics on an unknown mode.
func WithRounding(r apd.Rounder) Option {
	if !knownRounding(r) {
		panic(panicRoundingInvalid)
	}

	return func(o *Options) { o.rounding = r }
}

// ParseRounding resolves a rounding mode by its apd name, case-insensitively
// ("half_even", "down", ...). It returns ErrNumberFormat for unknown names.
func ParseRounding(name string) (apd.Rounder, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for _, r := range roundings {
		if string(r) == want {
			return r, nil
		}
	}

	return "", ErrNumberFormat
}

// knownRounding reports whether r is one of the supported apd modes.
func knownRounding(r apd.Rounder) bool {
	for _, k := range roundings {
		if k == r {
			return true
		}
	}

	return false
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{
		eps:         DefaultEpsilon,
		cleanDigits: DefaultCleanDigits,
		precision:   DefaultPrecision,
		rounding:    DefaultRounding,
	}
}

// gatherOptions applies user options over the defaults in order; later
// options win. Nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
