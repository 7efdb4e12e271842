// Package main provides the entry point for the heapbench CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/heapbench/cmd/heapbench/commands"
	"github.com/Sumatoshi-tech/heapbench/pkg/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "heapbench",
		Short: "Heapbench - instrumented heap sort benchmark suite",
		Long: `Heapbench measures an in-place heap sort across input sizes and
distributions, counting comparisons, swaps and element accesses for
empirical complexity verification.

Commands:
  run       Execute a benchmark grid (sizes x input patterns)
  verify    Check n log n scaling over a doubling size ladder`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewRunCommand())
	rootCmd.AddCommand(commands.NewVerifyCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "heapbench %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
