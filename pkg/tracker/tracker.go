// Package tracker collects operation counters and wall-clock timing for
// empirical complexity verification of the heap engine.
//
// A Tracker is plain single-caller state: counters are monotone within a
// measurement, increments are O(1) and branch-free, and nothing here feeds
// back into algorithm control flow. It is not safe for concurrent
// mutation; the benchmark harness owns one Tracker per run.
package tracker

import "time"

// Run is a snapshot of the counters for one measured sort, tagged with the
// input it ran against.
type Run struct {
	Size        int
	Pattern     string
	Trial       int
	Comparisons uint64
	Swaps       uint64
	ArrayReads  uint64
	ArrayWrites uint64
	HeapifyOps  uint64
	Elapsed     time.Duration
}

// TotalAccesses returns reads + writes for the run.
func (r Run) TotalAccesses() uint64 {
	return r.ArrayReads + r.ArrayWrites
}

// Tracker accumulates the five operation counters plus a start/stop
// timestamp pair, and keeps a history of saved runs across measurements.
type Tracker struct {
	comparisons uint64
	swaps       uint64
	arrayReads  uint64
	arrayWrites uint64
	heapifyOps  uint64

	startedAt time.Time
	stoppedAt time.Time

	runs []Run
}

// New creates a Tracker with zeroed counters and an empty run history.
func New() *Tracker {
	return &Tracker{}
}

// Reset zeroes all counters and clears timing state. Idempotent; the run
// history is preserved.
func (t *Tracker) Reset() {
	t.comparisons = 0
	t.swaps = 0
	t.arrayReads = 0
	t.arrayWrites = 0
	t.heapifyOps = 0
	t.startedAt = time.Time{}
	t.stoppedAt = time.Time{}
}

// Start records the beginning of a measured interval.
func (t *Tracker) Start() {
	t.startedAt = time.Now()
}

// Stop records the end of a measured interval. Pairing Stop with a
// preceding Start is the caller's responsibility; an unpaired interval
// reads as zero elapsed time.
func (t *Tracker) Stop() {
	t.stoppedAt = time.Now()
}

// RecordComparison counts one comparison between two sequence elements.
func (t *Tracker) RecordComparison() {
	t.comparisons++
}

// RecordComparisons counts n comparisons at once.
func (t *Tracker) RecordComparisons(n uint64) {
	t.comparisons += n
}

// RecordSwap counts one two-element exchange, which costs two reads and
// two writes on top of the swap itself.
func (t *Tracker) RecordSwap() {
	t.swaps++
	t.arrayReads += 2
	t.arrayWrites += 2
}

// RecordArrayRead counts one element read.
func (t *Tracker) RecordArrayRead() {
	t.arrayReads++
}

// RecordArrayWrite counts one element write.
func (t *Tracker) RecordArrayWrite() {
	t.arrayWrites++
}

// RecordHeapify counts one sift-down invocation.
func (t *Tracker) RecordHeapify() {
	t.heapifyOps++
}

// Comparisons returns the comparison count.
func (t *Tracker) Comparisons() uint64 { return t.comparisons }

// Swaps returns the swap count.
func (t *Tracker) Swaps() uint64 { return t.swaps }

// ArrayReads returns the element read count.
func (t *Tracker) ArrayReads() uint64 { return t.arrayReads }

// ArrayWrites returns the element write count.
func (t *Tracker) ArrayWrites() uint64 { return t.arrayWrites }

// HeapifyOps returns the sift-down invocation count.
func (t *Tracker) HeapifyOps() uint64 { return t.heapifyOps }

// TotalAccesses returns reads + writes.
func (t *Tracker) TotalAccesses() uint64 {
	return t.arrayReads + t.arrayWrites
}

// Elapsed returns the measured interval. Readable at any time, including
// mid-measurement; zero when Start/Stop were not paired.
func (t *Tracker) Elapsed() time.Duration {
	if t.startedAt.IsZero() || t.stoppedAt.IsZero() || t.stoppedAt.Before(t.startedAt) {
		return 0
	}

	return t.stoppedAt.Sub(t.startedAt)
}

// SaveRun snapshots the current counters and elapsed time into the run
// history, tagged with the input size, pattern and trial number.
func (t *Tracker) SaveRun(size int, pattern string, trial int) {
	t.runs = append(t.runs, Run{
		Size:        size,
		Pattern:     pattern,
		Trial:       trial,
		Comparisons: t.comparisons,
		Swaps:       t.swaps,
		ArrayReads:  t.arrayReads,
		ArrayWrites: t.arrayWrites,
		HeapifyOps:  t.heapifyOps,
		Elapsed:     t.Elapsed(),
	})
}

// Runs returns a copy of the run history.
func (t *Tracker) Runs() []Run {
	out := make([]Run, len(t.runs))
	copy(out, t.runs)

	return out
}
