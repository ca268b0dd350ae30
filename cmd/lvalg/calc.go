// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/cockroachdb/apd/v3"

	"github.com/katalvlaran/lvalgebra/algebra"
	"github.com/katalvlaran/lvalgebra/arith"
)

// Command names shared by the cobra layer and the calculator.
const (
	opDet       = "det"
	opInverse   = "inverse"
	opTranspose = "transpose"
	opAdjoint   = "adjoint"
	opMinors    = "minors"
	opHypot     = "hypot"
	opNormalize = "normalize"
	opSolve     = "solve"
	opMul       = "mul"
	opTransform = "transform"
	opDot       = "dot"
	opCross     = "cross"
	opDistance  = "distance"
	opSignChart = "sign-chart"
	opIdentity  = "identity"
)

// ErrUnknownOperation is returned for an operation the calculator lacks.
var ErrUnknownOperation = errors.New("lvalg: unknown operation")

// calculator evaluates one command over textual operands and renders the
// result canonically. It hides the representation type from the cobra layer.
type calculator interface {
	unary(op string, operand []string) (string, error)
	binary(op string, operand, with []string) (string, error)
	chart(op string, dim int) (string, error)
}

// calc is the calculator over one representation T.
type calc[T any] struct {
	f *algebra.Factory[T]
}

// newCalculator builds the calculator for cfg.Repr; cfg must be validated.
func newCalculator(cfg Config, logger *slog.Logger) (calculator, error) {
	lo := algebra.WithLogger(logger)
	switch cfg.Repr {
	case reprFloat64:
		return calc[float64]{f: algebra.NewFactory[float64](arith.NewFloat64(arith.WithEpsilon(cfg.Epsilon)), lo)}, nil
	case reprFloat32:
		return calc[float32]{f: algebra.NewFactory[float32](arith.NewGeneric[float32](arith.WithEpsilon(cfg.Epsilon)), lo)}, nil
	case reprInt:
		return calc[int64]{f: algebra.NewFactory[int64](arith.NewInt(), lo)}, nil
	case reprDecimal:
		rounding, err := arith.ParseRounding(cfg.Rounding)
		if err != nil {
			return nil, err
		}
		d := arith.NewDecimal(arith.WithPrecision(cfg.Precision), arith.WithRounding(rounding))

		return calc[*apd.Decimal]{f: algebra.NewFactory[*apd.Decimal](d, lo)}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRepr, cfg.Repr)
	}
}

func (c calc[T]) matrix(values []string) (*algebra.Matrix[T], error) {
	return c.f.ParseMatrix(algebra.KindMatrixN, values...)
}

func (c calc[T]) vector(values []string) (*algebra.Vector[T], error) {
	return c.f.ParseVector(algebra.KindVectorN, values...)
}

func (c calc[T]) scalar(v T) string {
	ar := c.f.Arithmetic()

	return ar.Format(ar.Clean(v))
}

// render turns (value, err) into (canonical text, err).
func render[S fmt.Stringer](s S, err error) (string, error) {
	if err != nil {
		return "", err
	}

	return s.String(), nil
}

func (c calc[T]) unary(op string, operand []string) (string, error) {
	switch op {
	case opDet, opInverse, opTranspose, opAdjoint, opMinors:
		m, err := c.matrix(operand)
		if err != nil {
			return "", err
		}
		switch op {
		case opDet:
			return c.scalar(m.Determinant()), nil
		case opInverse:
			return render(m.Inverse())
		case opTranspose:
			return m.Transpose().String(), nil
		case opAdjoint:
			return m.Adjoint().String(), nil
		default:
			return m.Minors().String(), nil
		}
	case opHypot, opNormalize:
		v, err := c.vector(operand)
		if err != nil {
			return "", err
		}
		if op == opHypot {
			return c.scalar(v.Hypotenuse()), nil
		}

		return v.Normalize().String(), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

func (c calc[T]) binary(op string, operand, with []string) (string, error) {
	switch op {
	case opSolve, opTransform:
		m, err := c.matrix(operand)
		if err != nil {
			return "", err
		}
		v, err := c.vector(with)
		if err != nil {
			return "", err
		}
		if op == opSolve {
			return render(m.SolveSystem(v))
		}

		return render(m.Transform(v))
	case opMul:
		a, err := c.matrix(operand)
		if err != nil {
			return "", err
		}
		b, err := c.matrix(with)
		if err != nil {
			return "", err
		}

		return render(a.Times(b))
	case opDot, opCross, opDistance:
		a, err := c.vector(operand)
		if err != nil {
			return "", err
		}
		b, err := c.vector(with)
		if err != nil {
			return "", err
		}
		switch op {
		case opDot:
			d, err := a.Dot(b)
			if err != nil {
				return "", err
			}

			return c.scalar(d), nil
		case opCross:
			return render(a.Cross(b))
		default:
			d, err := a.Distance(b)
			if err != nil {
				return "", err
			}

			return c.scalar(d), nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}

func (c calc[T]) chart(op string, dim int) (string, error) {
	switch op {
	case opSignChart:
		return c.f.SignChart(algebra.KindMatrixN, dim).String(), nil
	case opIdentity:
		return c.f.IdentityMatrix(algebra.KindMatrixN, dim).String(), nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownOperation, op)
}
