// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvalgebra/arith"
)

// Supported values for Config.Repr.
const (
	reprFloat64 = "float64"
	reprFloat32 = "float32"
	reprInt     = "int"
	reprDecimal = "decimal"
)

// ErrUnknownRepr is returned for a representation name the CLI does not know.
var ErrUnknownRepr = errors.New("lvalg: unknown representation")

// Config is the CLI configuration. Values load from an optional YAML file and
// are then overridden by explicitly set flags.
type Config struct {
	Repr      string  `yaml:"repr"`
	Precision uint32  `yaml:"precision"`
	Rounding  string  `yaml:"rounding"`
	Epsilon   float64 `yaml:"epsilon"`
	Verbose   bool    `yaml:"verbose"`
}

// DefaultConfig mirrors the library defaults.
func DefaultConfig() Config {
	return Config{
		Repr:      reprFloat64,
		Precision: arith.DefaultPrecision,
		Rounding:  string(arith.DefaultRounding),
		Epsilon:   arith.DefaultEpsilon,
	}
}

// loadConfig returns the defaults overlaid with the YAML file at path.
// An empty path yields the defaults.
func loadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read the config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}

	return cfg, nil
}

// validate rejects settings the arithmetic options would panic on.
func (c Config) validate() error {
	switch c.Repr {
	case reprFloat64, reprFloat32, reprInt, reprDecimal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownRepr, c.Repr)
	}
	if c.Precision <= arith.DecimalGuardDigits {
		return fmt.Errorf("precision must exceed %d, got %d", arith.DecimalGuardDigits, c.Precision)
	}
	if math.IsNaN(c.Epsilon) || math.IsInf(c.Epsilon, 0) || c.Epsilon < 0 {
		return fmt.Errorf("epsilon must be finite and non-negative, got %g", c.Epsilon)
	}
	if _, err := arith.ParseRounding(c.Rounding); err != nil {
		return fmt.Errorf("rounding %q: %w", c.Rounding, err)
	}

	return nil
}
