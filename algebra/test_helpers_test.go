// SPDX-License-Identifier: MIT
// Package algebra_test contains test helpers.
//
// Purpose:
//   - Provide one factory per representation and terse Must-style builders.
//   - Keep all fixtures small, finite and exactly representable where possible.

package algebra_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/katalvlaran/lvalgebra/algebra"
	"github.com/katalvlaran/lvalgebra/arith"
)

// tol is the absolute tolerance used for float slice comparisons.
const tol = 1e-9

func floats() *algebra.Factory[float64] {
	return algebra.NewFactory[float64](arith.NewFloat64())
}

func ints() *algebra.Factory[int64] {
	return algebra.NewFactory[int64](arith.NewInt())
}

func decimals(opts ...arith.Option) *algebra.Factory[*apd.Decimal] {
	return algebra.NewFactory[*apd.Decimal](arith.NewDecimal(opts...))
}

// debugFactory returns a float factory whose debug events land in the buffer.
func debugFactory() (*algebra.Factory[float64], *bytes.Buffer) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return algebra.NewFactory[float64](arith.NewFloat64(), algebra.WithLogger(logger)), &buf
}

// vec builds a resizeable vector or fails the test.
func vec[T any](t *testing.T, f *algebra.Factory[T], values ...T) *algebra.Vector[T] {
	t.Helper()
	v, err := f.Vector(values...)
	if err != nil {
		t.Fatalf("Vector(%v): %v", values, err)
	}

	return v
}

// mat builds a resizeable matrix from row-major values or fails the test.
func mat[T any](t *testing.T, f *algebra.Factory[T], values ...T) *algebra.Matrix[T] {
	t.Helper()
	m, err := f.Matrix(values...)
	if err != nil {
		t.Fatalf("Matrix(%v): %v", values, err)
	}

	return m
}

// diff fails the test when want and got differ beyond tol.
func diff(t *testing.T, want, got []float64) {
	t.Helper()
	if d := cmp.Diff(want, got, cmpopts.EquateApprox(0, tol), cmpopts.EquateEmpty()); d != "" {
		t.Errorf("unexpected values (-want +got):\n%s", d)
	}
}

// decStrings renders raw decimal values with their full digits.
func decStrings(values []*apd.Decimal) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = v.Text('f')
	}

	return out
}
