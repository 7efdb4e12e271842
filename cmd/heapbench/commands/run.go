// Package commands implements the heapbench CLI commands.
package commands

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/Sumatoshi-tech/heapbench/internal/bench"
	"github.com/Sumatoshi-tech/heapbench/internal/config"
	"github.com/Sumatoshi-tech/heapbench/internal/observability"
	"github.com/Sumatoshi-tech/heapbench/internal/report"
)

// readHeaderTimeout bounds slow-header clients on the metrics listener.
const readHeaderTimeout = 5 * time.Second

// RunCommand holds the flags for the run command.
type RunCommand struct {
	configPath  string
	sizes       []int
	patterns    []string
	trials      int
	warmup      int
	seed        uint64
	csvPath     string
	htmlPath    string
	metricsAddr string
	noColor     bool
	quiet       bool
}

// NewRunCommand creates and configures the run command.
func NewRunCommand() *cobra.Command {
	cmd := &RunCommand{}

	cobraCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a benchmark grid over input sizes and patterns",
		Long: `Run sorts generated inputs for every configured (size, pattern) cell,
with untracked warmup iterations followed by measured trials, and renders
a summary table. Trial data can additionally be exported as CSV, an HTML
chart page, or served on a Prometheus scrape endpoint.`,
		RunE: cmd.Run,
	}

	cobraCmd.Flags().StringVar(&cmd.configPath, "config", "", "Config file path (default: .heapbench.yaml in CWD or $HOME)")
	cobraCmd.Flags().IntSliceVar(&cmd.sizes, "sizes", nil, "Input sizes to benchmark (comma-separated)")
	cobraCmd.Flags().StringSliceVar(&cmd.patterns, "patterns", nil, "Input patterns: random, sorted, reverse, nearly_sorted, duplicates")
	cobraCmd.Flags().IntVar(&cmd.trials, "trials", 0, "Measured trials per cell")
	cobraCmd.Flags().IntVar(&cmd.warmup, "warmup", -1, "Untracked warmup runs per cell")
	cobraCmd.Flags().Uint64Var(&cmd.seed, "seed", 0, "PRNG seed for input generation")
	cobraCmd.Flags().StringVarP(&cmd.csvPath, "csv", "o", "", "Export per-trial results to a CSV file")
	cobraCmd.Flags().StringVar(&cmd.htmlPath, "html", "", "Export result charts to an HTML file")
	cobraCmd.Flags().StringVar(&cmd.metricsAddr, "metrics-addr", "", "Serve results on a Prometheus /metrics endpoint after the run (e.g. :9090)")
	cobraCmd.Flags().BoolVar(&cmd.noColor, "no-color", false, "Disable colored output")
	cobraCmd.Flags().BoolVarP(&cmd.quiet, "quiet", "q", false, "Suppress the console summary")

	return cobraCmd
}

// Run executes the run command.
func (c *RunCommand) Run(cmd *cobra.Command, _ []string) error {
	cfg, err := c.loadConfig(cmd)
	if err != nil {
		return err
	}

	runner, err := bench.NewRunner(bench.Config{
		Sizes:    cfg.Benchmark.Sizes,
		Patterns: cfg.Patterns(),
		Trials:   cfg.Benchmark.Trials,
		Warmup:   cfg.Benchmark.Warmup,
		Seed:     cfg.Benchmark.Seed,
	})
	if err != nil {
		return err
	}

	result, err := runner.Run()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()

	if !c.quiet {
		report.WriteSummary(out, result, report.ConsoleOptions{NoColor: cfg.Output.NoColor})
	}

	if cfg.Output.CSV != "" {
		exportErr := report.ExportCSV(cfg.Output.CSV, result.Runs)
		if exportErr != nil {
			return exportErr
		}

		fmt.Fprintf(out, "Results exported to %s\n", cfg.Output.CSV)
	}

	if cfg.Output.HTML != "" {
		exportErr := report.ExportCharts(cfg.Output.HTML, result)
		if exportErr != nil {
			return exportErr
		}

		fmt.Fprintf(out, "Charts exported to %s\n", cfg.Output.HTML)
	}

	if cfg.Output.MetricsAddr != "" {
		return serveMetrics(cmd, cfg.Output.MetricsAddr, result)
	}

	return nil
}

// loadConfig resolves the effective configuration: file and environment
// first, then explicit flags override.
func (c *RunCommand) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.configPath)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("sizes") {
		cfg.Benchmark.Sizes = c.sizes
	}

	if flags.Changed("patterns") {
		cfg.Benchmark.Patterns = c.patterns
	}

	if flags.Changed("trials") {
		cfg.Benchmark.Trials = c.trials
	}

	if flags.Changed("warmup") {
		cfg.Benchmark.Warmup = c.warmup
	}

	if flags.Changed("seed") {
		cfg.Benchmark.Seed = c.seed
	}

	if flags.Changed("csv") {
		cfg.Output.CSV = c.csvPath
	}

	if flags.Changed("html") {
		cfg.Output.HTML = c.htmlPath
	}

	if flags.Changed("metrics-addr") {
		cfg.Output.MetricsAddr = c.metricsAddr
	}

	if c.noColor {
		cfg.Output.NoColor = true
	}

	validateErr := cfg.Validate()
	if validateErr != nil {
		return nil, validateErr
	}

	return cfg, nil
}

// serveMetrics blocks serving the completed result for scraping until the
// process is interrupted.
func serveMetrics(cmd *cobra.Command, addr string, result *bench.Result) error {
	handler, err := observability.Handler(result)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	fmt.Fprintf(cmd.OutOrStdout(), "Serving results on http://%s/metrics (interrupt to stop)\n", addr)

	server := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	return server.ListenAndServe()
}
