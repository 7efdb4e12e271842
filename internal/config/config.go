// Package config defines heapbench's configuration surface: benchmark
// shape (sizes, patterns, repetition, seed) and output destinations,
// loaded from file, environment and defaults via viper.
package config

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/heapbench/internal/generator"
)

// DefaultSizes mirrors the stock benchmark suite's size ladder.
var DefaultSizes = []int{100, 500, 1000, 5000, 10000, 50000, 100000}

// DefaultPatterns is the stock input distribution set for a plain run.
var DefaultPatterns = []string{string(generator.PatternRandom)}

// Scalar benchmark defaults.
const (
	DefaultTrials = 5
	DefaultWarmup = 3
	DefaultSeed   = uint64(1)
)

// Validation errors.
var (
	ErrNoSizes       = errors.New("benchmark.sizes must not be empty")
	ErrInvalidSize   = errors.New("benchmark.sizes must be positive")
	ErrNoPatterns    = errors.New("benchmark.patterns must not be empty")
	ErrInvalidTrials = errors.New("benchmark.trials must be positive")
	ErrInvalidWarmup = errors.New("benchmark.warmup must be non-negative")
)

// BenchmarkConfig shapes a benchmark run.
type BenchmarkConfig struct {
	Sizes    []int    `mapstructure:"sizes"`
	Patterns []string `mapstructure:"patterns"`
	Trials   int      `mapstructure:"trials"`
	Warmup   int      `mapstructure:"warmup"`
	Seed     uint64   `mapstructure:"seed"`
}

// OutputConfig selects result destinations beyond the console.
type OutputConfig struct {
	CSV         string `mapstructure:"csv"`
	HTML        string `mapstructure:"html"`
	MetricsAddr string `mapstructure:"metrics_addr"`
	NoColor     bool   `mapstructure:"no_color"`
}

// Config is the root configuration.
type Config struct {
	Benchmark BenchmarkConfig `mapstructure:"benchmark"`
	Output    OutputConfig    `mapstructure:"output"`
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	if len(c.Benchmark.Sizes) == 0 {
		return ErrNoSizes
	}

	for _, size := range c.Benchmark.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
		}
	}

	if len(c.Benchmark.Patterns) == 0 {
		return ErrNoPatterns
	}

	for _, name := range c.Benchmark.Patterns {
		_, err := generator.ParsePattern(name)
		if err != nil {
			return err
		}
	}

	if c.Benchmark.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, c.Benchmark.Trials)
	}

	if c.Benchmark.Warmup < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWarmup, c.Benchmark.Warmup)
	}

	return nil
}

// Patterns returns the configured patterns as typed values. Call only
// after Validate.
func (c *Config) Patterns() []generator.Pattern {
	patterns := make([]generator.Pattern, len(c.Benchmark.Patterns))

	for i, name := range c.Benchmark.Patterns {
		patterns[i] = generator.Pattern(name)
	}

	return patterns
}
