// Package heapsort implements an in-place, comparison-based sorting engine
// built on an implicit binary max-heap, together with the heap primitives
// the sort composes (build, sift-down, sift-up, extract-max, increase-key,
// insert).
//
// The engine is stateless and allocation-free: the heap is a logical view
// over a contiguous prefix of a caller-supplied slice, and the heap size is
// caller-managed state threaded through every primitive call. An optional
// Recorder receives one event per comparison, swap, element access and
// sift-down invocation; when absent, reporting collapses to a no-op branch
// on a single code path.
package heapsort

import (
	"errors"
	"fmt"
)

// Recorder receives operation-level events emitted by the engine. It must
// not influence control flow; implementations are expected to be O(1) per
// call so that attaching one never changes the asymptotic cost of a sort.
type Recorder interface {
	RecordComparison()
	RecordSwap()
	RecordArrayRead()
	RecordArrayWrite()
	RecordHeapify()
}

// ErrInvalidArgument is the kind wrapped by every precondition failure:
// nil sequence on Sort, empty heap on ExtractMax/GetMax, decreasing key on
// IncreaseKey, full heap on Insert. Preconditions are checked before any
// mutation, so a returned error implies the sequence is untouched.
var ErrInvalidArgument = errors.New("heapsort: invalid argument")

// Sorter is the heap engine. The zero value sorts without instrumentation;
// use New to attach a Recorder.
type Sorter struct {
	rec Recorder
}

// New creates a Sorter reporting into rec. A nil rec disables
// instrumentation entirely.
func New(rec Recorder) *Sorter {
	return &Sorter{rec: rec}
}

// Sort sorts seq ascending, in place, using O(1) auxiliary space.
// A nil sequence fails with ErrInvalidArgument; sequences of length 0 or 1
// return immediately with no operations recorded.
//
// Two phases: a bottom-up build imposing the max-heap invariant over the
// full slice in O(n), then n-1 extraction rounds that swap the root with
// the end of the active prefix and sift down over the shrunk heap.
func (s *Sorter) Sort(seq []int64) error {
	if seq == nil {
		return fmt.Errorf("%w: sequence must not be nil", ErrInvalidArgument)
	}

	n := len(seq)
	if n <= 1 {
		return nil
	}

	s.buildMaxHeap(seq, n)

	for end := n - 1; end > 0; end-- {
		s.swap(seq, 0, end)
		s.siftDown(seq, end, 0)
	}

	return nil
}

// buildMaxHeap imposes the max-heap invariant bottom-up: sift down every
// internal node from the last one, index n/2-1, back to the root. Internal
// node heights shrink geometrically, so total work is O(n) rather than the
// O(n log n) of repeated insertion.
func (s *Sorter) buildMaxHeap(seq []int64, n int) {
	for i := n/2 - 1; i >= 0; i-- {
		s.siftDown(seq, n, i)
	}
}

// siftDown restores the max-heap invariant rooted at start, assuming both
// child subtrees already satisfy it. Iterative, so stack usage stays O(1)
// regardless of heap depth. Children are promoted only on strict
// inequality: a child equal to the current value never swaps, so duplicate
// keys settle without churn.
func (s *Sorter) siftDown(seq []int64, heapSize, start int) {
	s.recordHeapify()

	i := start

	for {
		largest := i
		left := 2*i + 1
		right := 2*i + 2

		if left < heapSize {
			s.recordComparison()
			s.recordReads(2)

			if seq[left] > seq[largest] {
				largest = left
			}
		}

		if right < heapSize {
			s.recordComparison()
			s.recordReads(2)

			if seq[right] > seq[largest] {
				largest = right
			}
		}

		if largest == i {
			return
		}

		s.swap(seq, i, largest)
		i = largest
	}
}

// siftUp is the dual of siftDown: after the value at index has grown, swap
// it toward the root while it strictly exceeds its parent.
func (s *Sorter) siftUp(seq []int64, index int) {
	i := index

	for i > 0 {
		parent := (i - 1) / 2

		s.recordComparison()
		s.recordReads(2)

		if seq[i] <= seq[parent] {
			return
		}

		s.swap(seq, i, parent)
		i = parent
	}
}

// swap exchanges two elements. The Recorder accounts a swap as two reads
// plus two writes, so only the swap event is emitted here.
func (s *Sorter) swap(seq []int64, i, j int) {
	s.recordSwap()

	seq[i], seq[j] = seq[j], seq[i]
}

func (s *Sorter) recordComparison() {
	if s.rec != nil {
		s.rec.RecordComparison()
	}
}

func (s *Sorter) recordSwap() {
	if s.rec != nil {
		s.rec.RecordSwap()
	}
}

func (s *Sorter) recordReads(n int) {
	if s.rec != nil {
		for i := 0; i < n; i++ {
			s.rec.RecordArrayRead()
		}
	}
}

func (s *Sorter) recordWrite() {
	if s.rec != nil {
		s.rec.RecordArrayWrite()
	}
}

func (s *Sorter) recordHeapify() {
	if s.rec != nil {
		s.rec.RecordHeapify()
	}
}
