// Package observability exposes completed benchmark results on a
// Prometheus scrape endpoint. Results are immutable once a run finishes,
// so the collector reads them without synchronization and is safe for
// concurrent scrapes.
package observability

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Sumatoshi-tech/heapbench/internal/bench"
)

// metricLabels tag every metric with the benchmark cell it came from.
var metricLabels = []string{"size", "pattern"}

// ResultCollector implements prometheus.Collector over a completed
// benchmark result, emitting one labeled sample per (size, pattern) cell.
type ResultCollector struct {
	result *bench.Result

	meanSeconds *prometheus.Desc
	comparisons *prometheus.Desc
	swaps       *prometheus.Desc
	accesses    *prometheus.Desc
	trials      *prometheus.Desc
}

// NewResultCollector creates a collector for a completed result.
func NewResultCollector(result *bench.Result) *ResultCollector {
	return &ResultCollector{
		result: result,
		meanSeconds: prometheus.NewDesc(
			"heapbench_mean_sort_seconds",
			"Mean wall-clock sort time across trials.",
			metricLabels, nil,
		),
		comparisons: prometheus.NewDesc(
			"heapbench_mean_comparisons",
			"Mean element comparisons per sort across trials.",
			metricLabels, nil,
		),
		swaps: prometheus.NewDesc(
			"heapbench_mean_swaps",
			"Mean element swaps per sort across trials.",
			metricLabels, nil,
		),
		accesses: prometheus.NewDesc(
			"heapbench_mean_array_accesses",
			"Mean element reads plus writes per sort across trials.",
			metricLabels, nil,
		),
		trials: prometheus.NewDesc(
			"heapbench_trials",
			"Number of measured trials in the cell.",
			metricLabels, nil,
		),
	}
}

// Describe implements prometheus.Collector.
func (c *ResultCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- c.meanSeconds
	ch <- c.comparisons
	ch <- c.swaps
	ch <- c.accesses
	ch <- c.trials
}

// Collect implements prometheus.Collector.
func (c *ResultCollector) Collect(ch chan<- prometheus.Metric) {
	for _, cell := range c.result.Cells {
		size := strconv.Itoa(cell.Size)
		pattern := string(cell.Pattern)

		ch <- prometheus.MustNewConstMetric(c.meanSeconds, prometheus.GaugeValue, cell.MeanTime.Seconds(), size, pattern)
		ch <- prometheus.MustNewConstMetric(c.comparisons, prometheus.GaugeValue, cell.MeanComparisons, size, pattern)
		ch <- prometheus.MustNewConstMetric(c.swaps, prometheus.GaugeValue, cell.MeanSwaps, size, pattern)
		ch <- prometheus.MustNewConstMetric(c.accesses, prometheus.GaugeValue, cell.MeanAccesses, size, pattern)
		ch <- prometheus.MustNewConstMetric(c.trials, prometheus.GaugeValue, float64(len(cell.Trials)), size, pattern)
	}
}

// Handler returns an http.Handler serving the result on a /metrics scrape
// endpoint. Each call creates an independent registry to avoid collector
// conflicts when called multiple times.
func Handler(result *bench.Result) (http.Handler, error) {
	registry := prometheus.NewRegistry()

	err := registry.Register(NewResultCollector(result))
	if err != nil {
		return nil, fmt.Errorf("register result collector: %w", err)
	}

	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{}), nil
}
