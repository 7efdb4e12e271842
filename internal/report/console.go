// Package report renders benchmark results for their three consumers: a
// human at a terminal (go-pretty tables), a spreadsheet or plotting
// pipeline (CSV), and a browser (go-echarts HTML page).
package report

import (
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/heapbench/internal/bench"
)

// ConsoleOptions controls terminal rendering.
type ConsoleOptions struct {
	NoColor bool
}

// WriteSummary renders one table row per (size, pattern) cell with mean
// timing and mean operation counts across trials.
func WriteSummary(w io.Writer, result *bench.Result, options ConsoleOptions) {
	heading(w, "Heap Sort Benchmark", options)

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Size", "Pattern", "Mean Time", "Std Dev", "Comparisons", "Swaps", "Accesses", "Heapify Ops"})

	for _, cell := range result.Cells {
		tbl.AppendRow(table.Row{
			humanize.Comma(int64(cell.Size)),
			string(cell.Pattern),
			formatDuration(cell.MeanTime),
			formatDuration(cell.StdDevTime),
			humanize.CommafWithDigits(cell.MeanComparisons, 0),
			humanize.CommafWithDigits(cell.MeanSwaps, 0),
			humanize.CommafWithDigits(cell.MeanAccesses, 0),
			humanize.CommafWithDigits(cell.MeanHeapifyOps, 0),
		})
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d cells, %d trials total", len(result.Cells), len(result.Runs))})
	tbl.Render()
}

// WriteComplexityTable renders the Θ(n log n) verification view for cells
// measured over a doubling size ladder: per size, mean time, time
// normalized by n·log2(n), and the observed growth ratio against the
// theoretical one. Normalized times staying roughly flat and ratios
// tracking the expected column confirm the asymptotic bound.
func WriteComplexityTable(w io.Writer, cells []bench.Cell, options ConsoleOptions) {
	heading(w, "Complexity Verification (n log n)", options)

	tbl := newTable(w)
	tbl.AppendHeader(table.Row{"Size", "Mean Time", "Time / n log n", "Ratio", "Expected"})

	for i, cell := range cells {
		ratio := "--"
		expected := "--"

		if i > 0 {
			prev := cells[i-1]
			observed := bench.GrowthRatio(float64(prev.MeanTime), float64(cell.MeanTime))
			ratio = fmt.Sprintf("%.3f", observed)
			expected = fmt.Sprintf("%.3f", bench.ExpectedGrowthRatio(prev.Size, cell.Size))
		}

		tbl.AppendRow(table.Row{
			humanize.Comma(int64(cell.Size)),
			formatDuration(cell.MeanTime),
			fmt.Sprintf("%.6f", bench.NormalizedMillis(cell.MeanTime, cell.Size)),
			ratio,
			expected,
		})
	}

	tbl.Render()

	fmt.Fprintln(w, "Time/n log n should remain roughly constant for a Θ(n log n) algorithm.")
}

func newTable(w io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.SeparateColumns = false
	tbl.Style().Options.DrawBorder = false

	return tbl
}

func heading(w io.Writer, text string, options ConsoleOptions) {
	title := color.New(color.FgHiCyan, color.Bold)
	if options.NoColor {
		title.DisableColor()
	}

	title.Fprintf(w, "%s\n", text)
}

const nanosPerMilli = float64(time.Millisecond)

func formatDuration(d time.Duration) string {
	return fmt.Sprintf("%.3f ms", float64(d)/nanosPerMilli)
}
