package bench

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/heapbench/internal/generator"
)

func validConfig() Config {
	return Config{
		Sizes:    []int{64, 128},
		Patterns: []generator.Pattern{generator.PatternRandom, generator.PatternSorted},
		Trials:   2,
		Warmup:   1,
		Seed:     1,
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		mutate   func(*Config)
		expected error
	}{
		{name: "valid", mutate: func(*Config) {}, expected: nil},
		{name: "no_sizes", mutate: func(c *Config) { c.Sizes = nil }, expected: ErrNoSizes},
		{name: "zero_size", mutate: func(c *Config) { c.Sizes = []int{100, 0} }, expected: ErrInvalidSize},
		{name: "negative_size", mutate: func(c *Config) { c.Sizes = []int{-5} }, expected: ErrInvalidSize},
		{name: "no_patterns", mutate: func(c *Config) { c.Patterns = nil }, expected: ErrNoPatterns},
		{name: "zero_trials", mutate: func(c *Config) { c.Trials = 0 }, expected: ErrInvalidTrials},
		{name: "negative_warmup", mutate: func(c *Config) { c.Warmup = -1 }, expected: ErrInvalidWarmup},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.expected == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.expected)
			}
		})
	}
}

func TestNewRunnerRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Trials = 0

	_, err := NewRunner(cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidTrials)
}

func TestRun(t *testing.T) {
	t.Parallel()

	runner, err := NewRunner(validConfig())
	require.NoError(t, err)

	result, err := runner.Run()
	require.NoError(t, err)

	// 2 sizes x 2 patterns.
	require.Len(t, result.Cells, 4)

	// 4 cells x 2 trials, in execution order.
	require.Len(t, result.Runs, 8)

	for _, cell := range result.Cells {
		assert.Len(t, cell.Trials, 2)
		assert.Positive(t, cell.MeanComparisons)
		assert.Positive(t, cell.MeanAccesses)
		assert.Positive(t, cell.MeanHeapifyOps)

		for _, run := range cell.Trials {
			assert.Equal(t, cell.Size, run.Size)
			assert.Equal(t, string(cell.Pattern), run.Pattern)
			assert.Positive(t, run.Comparisons)
		}
	}

	for i, run := range result.Runs {
		assert.Equal(t, i%2+1, run.Trial, "trials numbered from 1 within each cell")
	}
}

func TestRunUnknownPatternFails(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Patterns = []generator.Pattern{generator.Pattern("zigzag")}

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	_, err = runner.Run()
	require.Error(t, err)
	assert.ErrorIs(t, err, generator.ErrUnknownPattern)
}

func TestRunDeterministicCounters(t *testing.T) {
	t.Parallel()

	runOnce := func() *Result {
		runner, err := NewRunner(validConfig())
		require.NoError(t, err)

		result, err := runner.Run()
		require.NoError(t, err)

		return result
	}

	first := runOnce()
	second := runOnce()

	require.Len(t, second.Runs, len(first.Runs))

	for i := range first.Runs {
		assert.Equal(t, first.Runs[i].Comparisons, second.Runs[i].Comparisons)
		assert.Equal(t, first.Runs[i].Swaps, second.Runs[i].Swaps)
	}
}

func TestRunLargerInputsCostMore(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Sizes = []int{256, 1024}
	cfg.Patterns = []generator.Pattern{generator.PatternRandom}

	runner, err := NewRunner(cfg)
	require.NoError(t, err)

	result, err := runner.Run()
	require.NoError(t, err)

	require.Len(t, result.Cells, 2)
	assert.Greater(t, result.Cells[1].MeanComparisons, result.Cells[0].MeanComparisons)
}
