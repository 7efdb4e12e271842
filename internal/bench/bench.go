// Package bench owns benchmark execution: run repetition with warmup,
// per-trial measurement through a tracker, post-sort verification and
// per-cell aggregation. It never prints; rendering belongs to the report
// package.
package bench

import (
	"errors"
	"fmt"
	"time"

	"github.com/Sumatoshi-tech/heapbench/internal/generator"
	"github.com/Sumatoshi-tech/heapbench/pkg/heapsort"
	"github.com/Sumatoshi-tech/heapbench/pkg/tracker"
)

// Configuration validation errors.
var (
	ErrNoSizes       = errors.New("bench: at least one input size is required")
	ErrInvalidSize   = errors.New("bench: input sizes must be positive")
	ErrNoPatterns    = errors.New("bench: at least one input pattern is required")
	ErrInvalidTrials = errors.New("bench: trials must be positive")
	ErrInvalidWarmup = errors.New("bench: warmup must be non-negative")
)

// ErrUnsorted reports a sort that left its input out of order. It means
// the engine is broken; the run aborts immediately.
var ErrUnsorted = errors.New("bench: sequence not sorted after run")

// Config describes a benchmark run.
type Config struct {
	Sizes    []int
	Patterns []generator.Pattern
	Trials   int
	Warmup   int
	Seed     uint64
}

// Validate checks the configuration before a run.
func (c Config) Validate() error {
	if len(c.Sizes) == 0 {
		return ErrNoSizes
	}

	for _, size := range c.Sizes {
		if size <= 0 {
			return fmt.Errorf("%w: got %d", ErrInvalidSize, size)
		}
	}

	if len(c.Patterns) == 0 {
		return ErrNoPatterns
	}

	if c.Trials <= 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidTrials, c.Trials)
	}

	if c.Warmup < 0 {
		return fmt.Errorf("%w: got %d", ErrInvalidWarmup, c.Warmup)
	}

	return nil
}

// Cell aggregates the measured trials for one (size, pattern) pair.
type Cell struct {
	Size    int
	Pattern generator.Pattern
	Trials  []tracker.Run

	MeanTime   time.Duration
	StdDevTime time.Duration

	MeanComparisons float64
	MeanSwaps       float64
	MeanAccesses    float64
	MeanHeapifyOps  float64
}

// Result is the outcome of a full benchmark run: per-cell aggregates plus
// the flat trial history in execution order for CSV export.
type Result struct {
	Cells []Cell
	Runs  []tracker.Run
}

// Runner executes benchmark runs for a validated Config.
type Runner struct {
	cfg     Config
	source  *generator.Source
	tracker *tracker.Tracker
}

// NewRunner creates a Runner, validating the configuration up front.
func NewRunner(cfg Config) (*Runner, error) {
	err := cfg.Validate()
	if err != nil {
		return nil, err
	}

	return &Runner{
		cfg:     cfg,
		source:  generator.NewSource(cfg.Seed),
		tracker: tracker.New(),
	}, nil
}

// Run executes the full grid: for every size and pattern, Warmup untracked
// sorts to settle the runtime, then Trials measured sorts with a counter
// reset and Start/Stop around each. Every sorted output is verified; a
// verification failure aborts the whole run.
func (r *Runner) Run() (*Result, error) {
	result := &Result{
		Cells: make([]Cell, 0, len(r.cfg.Sizes)*len(r.cfg.Patterns)),
	}

	for _, size := range r.cfg.Sizes {
		for _, pattern := range r.cfg.Patterns {
			cell, err := r.runCell(size, pattern)
			if err != nil {
				return nil, err
			}

			result.Cells = append(result.Cells, cell)
		}
	}

	result.Runs = r.tracker.Runs()

	return result, nil
}

func (r *Runner) runCell(size int, pattern generator.Pattern) (Cell, error) {
	warmupSorter := heapsort.New(nil)

	for w := 0; w < r.cfg.Warmup; w++ {
		seq, err := r.source.Generate(pattern, size)
		if err != nil {
			return Cell{}, fmt.Errorf("generate warmup input: %w", err)
		}

		err = warmupSorter.Sort(seq)
		if err != nil {
			return Cell{}, fmt.Errorf("warmup sort: %w", err)
		}
	}

	sorter := heapsort.New(r.tracker)
	trials := make([]tracker.Run, 0, r.cfg.Trials)

	for trial := 1; trial <= r.cfg.Trials; trial++ {
		seq, err := r.source.Generate(pattern, size)
		if err != nil {
			return Cell{}, fmt.Errorf("generate input: %w", err)
		}

		r.tracker.Reset()
		r.tracker.Start()

		err = sorter.Sort(seq)
		if err != nil {
			return Cell{}, fmt.Errorf("sort n=%d pattern=%s: %w", size, pattern, err)
		}

		r.tracker.Stop()

		if !heapsort.IsSorted(seq) {
			return Cell{}, fmt.Errorf("%w: n=%d pattern=%s trial=%d", ErrUnsorted, size, pattern, trial)
		}

		r.tracker.SaveRun(size, string(pattern), trial)

		runs := r.tracker.Runs()
		trials = append(trials, runs[len(runs)-1])
	}

	return aggregate(size, pattern, trials), nil
}

func aggregate(size int, pattern generator.Pattern, trials []tracker.Run) Cell {
	times := make([]float64, len(trials))
	comparisons := make([]float64, len(trials))
	swaps := make([]float64, len(trials))
	accesses := make([]float64, len(trials))
	heapifyOps := make([]float64, len(trials))

	for i, run := range trials {
		times[i] = float64(run.Elapsed)
		comparisons[i] = float64(run.Comparisons)
		swaps[i] = float64(run.Swaps)
		accesses[i] = float64(run.TotalAccesses())
		heapifyOps[i] = float64(run.HeapifyOps)
	}

	meanTime, stdDevTime := MeanStdDev(times)

	return Cell{
		Size:            size,
		Pattern:         pattern,
		Trials:          trials,
		MeanTime:        time.Duration(meanTime),
		StdDevTime:      time.Duration(stdDevTime),
		MeanComparisons: Mean(comparisons),
		MeanSwaps:       Mean(swaps),
		MeanAccesses:    Mean(accesses),
		MeanHeapifyOps:  Mean(heapifyOps),
	}
}
