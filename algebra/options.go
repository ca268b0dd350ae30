// SPDX-License-Identifier: MIT

// Package algebra: functional configuration of a Factory.
//
// Design goals:
//   - No global state: every Factory resolves its own options once.
//   - Safe by construction: panic only on nonsensical values (programmer error).
//   - Options travel with the values: each Vector/Matrix built by a Factory
//     (and everything derived from it) shares the Factory's resolved space.
package algebra

import (
	"io"
	"log/slog"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicNilLogger     = "algebra: WithLogger: logger must be non-nil"
	panicNilArithmetic = "algebra: NewFactory: arithmetic must be non-nil"
)

// discardLogger is the default: degenerate-geometry events are dropped.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	logger *slog.Logger // debug sink for degenerate operations; discardLogger
}

// WithLogger routes debug events (ignored redim on a fixed kind, zero-length
// normalize, singular inverse) to l. Panics if l is nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = l }
}

// defaultOptions returns the documented defaults.
func defaultOptions() Options {
	return Options{logger: discardLogger}
}

// gatherOptions applies user options over the defaults in order; nil options are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
