package commands

import (
	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/heapbench/internal/bench"
	"github.com/Sumatoshi-tech/heapbench/internal/generator"
	"github.com/Sumatoshi-tech/heapbench/internal/report"
)

// Verification defaults: a doubling ladder from 1000 to 32000 elements.
const (
	defaultVerifyBaseSize  = 1000
	defaultVerifyDoublings = 5
	defaultVerifyTrials    = 3
	defaultVerifyWarmup    = 2
)

// VerifyCommand holds the flags for the verify command.
type VerifyCommand struct {
	baseSize  int
	doublings int
	trials    int
	warmup    int
	seed      uint64
	pattern   string
	noColor   bool
}

// NewVerifyCommand creates and configures the verify command.
func NewVerifyCommand() *cobra.Command {
	cmd := &VerifyCommand{}

	cobraCmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify n log n scaling over a doubling size ladder",
		Long: `Verify benchmarks a single pattern over sizes that double from a base
size and reports time normalized by n log2 n together with observed
versus expected growth ratios between consecutive sizes.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().IntVar(&cmd.baseSize, "base-size", defaultVerifyBaseSize, "Smallest input size in the ladder")
	cobraCmd.Flags().IntVar(&cmd.doublings, "doublings", defaultVerifyDoublings, "Number of size doublings above the base size")
	cobraCmd.Flags().IntVar(&cmd.trials, "trials", defaultVerifyTrials, "Measured trials per size")
	cobraCmd.Flags().IntVar(&cmd.warmup, "warmup", defaultVerifyWarmup, "Untracked warmup runs per size")
	cobraCmd.Flags().Uint64Var(&cmd.seed, "seed", 1, "PRNG seed for input generation")
	cobraCmd.Flags().StringVar(&cmd.pattern, "pattern", string(generator.PatternRandom), "Input pattern to benchmark")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")

	return cobraCmd
}

// Run executes the verify command.
func (c *VerifyCommand) Run(cmd *cobra.Command, _ []string) error {
	pattern, err := generator.ParsePattern(c.pattern)
	if err != nil {
		return err
	}

	sizes := make([]int, 0, c.doublings+1)
	for size, i := c.baseSize, 0; i <= c.doublings; size, i = size*2, i+1 {
		sizes = append(sizes, size)
	}

	runner, err := bench.NewRunner(bench.Config{
		Sizes:    sizes,
		Patterns: []generator.Pattern{pattern},
		Trials:   c.trials,
		Warmup:   c.warmup,
		Seed:     c.seed,
	})
	if err != nil {
		return err
	}

	result, err := runner.Run()
	if err != nil {
		return err
	}

	report.WriteComplexityTable(cmd.OutOrStdout(), result.Cells, report.ConsoleOptions{NoColor: c.noColor})

	return nil
}
