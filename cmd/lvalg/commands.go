// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"
)

// app holds the flag targets and the state resolved before each command.
type app struct {
	configPath string
	flags      Config

	calc   calculator
	logger *slog.Logger
}

// newRootCmd builds the full command tree. Each call returns an independent
// tree, so tests can run commands in parallel.
func newRootCmd() *cobra.Command {
	a := &app{flags: DefaultConfig()}

	root := &cobra.Command{
		Use:   "lvalg",
		Short: "Vector and matrix algebra over float, integer and decimal numbers",
		Long: `lvalg evaluates vector and matrix operations from the command line.

Matrices are given as a flat row-major list whose length is a perfect square.
Put "--" before operands that start with a minus sign.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVar(&a.flags.Repr, "repr", a.flags.Repr, "number representation: float64|float32|int|decimal")
	pf.Uint32Var(&a.flags.Precision, "precision", a.flags.Precision, "decimal precision in significant digits")
	pf.StringVar(&a.flags.Rounding, "rounding", a.flags.Rounding, "decimal rounding mode (half_even, half_up, down, ...)")
	pf.Float64Var(&a.flags.Epsilon, "epsilon", a.flags.Epsilon, "floating equality tolerance")
	pf.BoolVarP(&a.flags.Verbose, "verbose", "v", false, "log degenerate operations to stderr")

	for _, u := range []struct{ op, short string }{
		{opDet, "Determinant of a matrix"},
		{opInverse, "Inverse of a matrix"},
		{opTranspose, "Transpose of a matrix"},
		{opAdjoint, "Adjugate of a matrix"},
		{opMinors, "Matrix of minors"},
		{opHypot, "Euclidean norm of a vector"},
		{opNormalize, "Unit vector in the same direction"},
	} {
		root.AddCommand(a.unaryCmd(u.op, u.short))
	}
	for _, b := range []struct{ op, short string }{
		{opSolve, "Solve M·x = b (--with b)"},
		{opMul, "Matrix product M·N (--with N)"},
		{opTransform, "Transform a vector by Mᵀ (--with v)"},
		{opDot, "Dot product (--with w)"},
		{opCross, "Cross product of 3-D vectors (--with w)"},
		{opDistance, "Euclidean distance (--with w)"},
	} {
		root.AddCommand(a.binaryCmd(b.op, b.short))
	}
	root.AddCommand(a.chartCmd(opSignChart, "Cofactor sign checkerboard of side N"))
	root.AddCommand(a.chartCmd(opIdentity, "Identity matrix of side N"))

	return root
}

// setup resolves defaults < config file < explicitly set flags, then builds
// the logger and the calculator.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(a.configPath)
	if err != nil {
		return err
	}
	fs := cmd.Flags()
	if fs.Changed("repr") {
		cfg.Repr = a.flags.Repr
	}
	if fs.Changed("precision") {
		cfg.Precision = a.flags.Precision
	}
	if fs.Changed("rounding") {
		cfg.Rounding = a.flags.Rounding
	}
	if fs.Changed("epsilon") {
		cfg.Epsilon = a.flags.Epsilon
	}
	if fs.Changed("verbose") {
		cfg.Verbose = a.flags.Verbose
	}
	if err = cfg.validate(); err != nil {
		return err
	}

	level := slog.LevelWarn
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.logger.Debug("configuration resolved",
		slog.String("repr", cfg.Repr),
		slog.Any("precision", cfg.Precision),
		slog.String("rounding", cfg.Rounding),
		slog.Float64("epsilon", cfg.Epsilon),
	)

	a.calc, err = newCalculator(cfg, a.logger)

	return err
}

func (a *app) unaryCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <numbers...>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.calc.unary(op, args)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}

func (a *app) binaryCmd(op, short string) *cobra.Command {
	var with []string
	cmd := &cobra.Command{
		Use:   op + " <numbers...> --with <numbers>",
		Short: short,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := a.calc.binary(op, args, with)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
	cmd.Flags().StringSliceVar(&with, "with", nil, "second operand, comma separated")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}

func (a *app) chartCmd(op, short string) *cobra.Command {
	return &cobra.Command{
		Use:   op + " <N>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil || n < 0 {
				return fmt.Errorf("%s: side must be a non-negative integer, got %q", op, args[0])
			}
			out, err := a.calc.chart(op, n)
			if err != nil {
				return fmt.Errorf("%s: %w", op, err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)

			return err
		},
	}
}
