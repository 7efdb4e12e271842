package report

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/Sumatoshi-tech/heapbench/internal/bench"
	"github.com/Sumatoshi-tech/heapbench/internal/generator"
)

const (
	chartWidth  = "900px"
	chartHeight = "500px"
)

// WriteCharts renders the benchmark results as an HTML page with two line
// charts: mean elapsed time against input size and mean comparison count
// against input size, one series per pattern. The comparison chart carries
// an n·log2(n) reference series scaled to the first measured point so the
// asymptotic shape is visible at a glance.
func WriteCharts(w io.Writer, result *bench.Result) error {
	page := components.NewPage()
	page.SetLayout(components.PageCenterLayout)
	page.AddCharts(
		buildTimeChart(result),
		buildComparisonChart(result),
	)

	err := page.Render(w)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}

	return nil
}

// ExportCharts writes the chart page to a file at path.
func ExportCharts(path string, result *bench.Result) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart file: %w", err)
	}

	writeErr := WriteCharts(file, result)

	closeErr := file.Close()
	if writeErr != nil {
		return writeErr
	}

	if closeErr != nil {
		return fmt.Errorf("close chart file: %w", closeErr)
	}

	return nil
}

func buildTimeChart(result *bench.Result) *charts.Line {
	line := newLine("Mean Sort Time", "Time (ms)")
	line.SetXAxis(sizeLabels(result))

	for _, pattern := range patternsInOrder(result) {
		data := make([]opts.LineData, 0, len(result.Cells))

		for _, cell := range cellsForPattern(result, pattern) {
			data = append(data, opts.LineData{Value: float64(cell.MeanTime) / float64(time.Millisecond)})
		}

		line.AddSeries(string(pattern), data)
	}

	return line
}

func buildComparisonChart(result *bench.Result) *charts.Line {
	line := newLine("Mean Comparisons", "Comparisons")
	line.SetXAxis(sizeLabels(result))

	for _, pattern := range patternsInOrder(result) {
		data := make([]opts.LineData, 0, len(result.Cells))

		for _, cell := range cellsForPattern(result, pattern) {
			data = append(data, opts.LineData{Value: cell.MeanComparisons})
		}

		line.AddSeries(string(pattern), data)
	}

	if reference := referenceSeries(result); len(reference) > 0 {
		line.AddSeries("n log n (reference)", reference,
			charts.WithLineStyleOpts(opts.LineStyle{Type: "dashed"}),
		)
	}

	return line
}

// referenceSeries scales n·log2(n) to the first measured comparison count
// so the reference overlays the data instead of dwarfing it.
func referenceSeries(result *bench.Result) []opts.LineData {
	sizes := sizesInOrder(result)
	if len(sizes) == 0 {
		return nil
	}

	first := result.Cells[0]
	if first.Size < 2 || first.MeanComparisons == 0 {
		return nil
	}

	base := first.MeanComparisons / (float64(first.Size) * math.Log2(float64(first.Size)))
	data := make([]opts.LineData, 0, len(sizes))

	for _, size := range sizes {
		value := 0.0
		if size >= 2 {
			value = base * float64(size) * math.Log2(float64(size))
		}

		data = append(data, opts.LineData{Value: value})
	}

	return data
}

func newLine(title, yAxisName string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "n"}),
		charts.WithYAxisOpts(opts.YAxis{Name: yAxisName}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
	)

	return line
}

func sizesInOrder(result *bench.Result) []int {
	seen := make(map[int]bool)
	sizes := make([]int, 0)

	for _, cell := range result.Cells {
		if !seen[cell.Size] {
			seen[cell.Size] = true
			sizes = append(sizes, cell.Size)
		}
	}

	return sizes
}

func sizeLabels(result *bench.Result) []string {
	sizes := sizesInOrder(result)
	labels := make([]string, len(sizes))

	for i, size := range sizes {
		labels[i] = fmt.Sprintf("%d", size)
	}

	return labels
}

func patternsInOrder(result *bench.Result) []generator.Pattern {
	seen := make(map[generator.Pattern]bool)
	patterns := make([]generator.Pattern, 0)

	for _, cell := range result.Cells {
		if !seen[cell.Pattern] {
			seen[cell.Pattern] = true
			patterns = append(patterns, cell.Pattern)
		}
	}

	return patterns
}

func cellsForPattern(result *bench.Result, pattern generator.Pattern) []bench.Cell {
	cells := make([]bench.Cell, 0)

	for _, cell := range result.Cells {
		if cell.Pattern == pattern {
			cells = append(cells, cell)
		}
	}

	return cells
}
