package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/rootfind/internal/secant"
)

const (
	DefaultProblem      = "square"
	DefaultInitialGuess = 1.0
	DefaultPrecision    = 64
)

var ErrBadPrecision = errors.New("config: precision must be 32 or 64")

type Config struct {
	Problem      string       `yaml:"problem"`
	InitialGuess float64      `yaml:"initial_guess"`
	Precision    int          `yaml:"precision"`
	Solver       SolverConfig `yaml:"solver"`
}

// SolverConfig mirrors secant.Builder: nil fields keep the solver defaults.
type SolverConfig struct {
	Tolerance     *float64 `yaml:"tolerance,omitempty"`
	Step          *float64 `yaml:"step,omitempty"`
	MaxIterations *int     `yaml:"max_iterations,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Problem:      DefaultProblem,
		InitialGuess: DefaultInitialGuess,
		Precision:    DefaultPrecision,
	}
}

func Load(path string) (*Config, error) {
	return LoadOver(path, DefaultConfig())
}

// LoadOver reads path on top of a copy of base: keys the file sets win, the
// rest keep base's values. base is not modified.
func LoadOver(path string, base *Config) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := base.Clone()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks only the fields the CLI needs to dispatch. Solver values
// are passed through untouched.
func (c *Config) Validate() error {
	if c.Precision != 32 && c.Precision != 64 {
		return fmt.Errorf("%w, got %d", ErrBadPrecision, c.Precision)
	}
	return nil
}

func (c *Config) Builder() secant.Builder[float64] {
	b := secant.NewBuilder[float64]()
	if c.Solver.Tolerance != nil {
		b = b.WithTolerance(*c.Solver.Tolerance)
	}
	if c.Solver.Step != nil {
		b = b.WithStep(*c.Solver.Step)
	}
	if c.Solver.MaxIterations != nil {
		b = b.WithMaxIterations(*c.Solver.MaxIterations)
	}
	return b
}

// Builder32 is Builder for single precision solves.
func (c *Config) Builder32() secant.Builder[float32] {
	b := secant.NewBuilder[float32]()
	if c.Solver.Tolerance != nil {
		b = b.WithTolerance(float32(*c.Solver.Tolerance))
	}
	if c.Solver.Step != nil {
		b = b.WithStep(float32(*c.Solver.Step))
	}
	if c.Solver.MaxIterations != nil {
		b = b.WithMaxIterations(*c.Solver.MaxIterations)
	}
	return b
}

// Clone returns a deep copy so presets are never mutated by callers.
func (c *Config) Clone() *Config {
	out := *c
	if c.Solver.Tolerance != nil {
		v := *c.Solver.Tolerance
		out.Solver.Tolerance = &v
	}
	if c.Solver.Step != nil {
		v := *c.Solver.Step
		out.Solver.Step = &v
	}
	if c.Solver.MaxIterations != nil {
		v := *c.Solver.MaxIterations
		out.Solver.MaxIterations = &v
	}
	return &out
}

func Float(v float64) *float64 { return &v }
func Int(v int) *int           { return &v }
