package heapsort

import (
	"fmt"
	"math"
)

// Heap primitives over a caller-managed max-heap occupying the prefix
// [0, heapSize) of a plain slice. The engine never tracks the heap size
// itself; callers chaining Insert/ExtractMax/IncreaseKey are responsible
// for threading the current size through each call.

// ExtractMax removes and returns the maximum of a max-heap of the given
// size. The last element of the active prefix moves to the root and a
// sift-down restores the invariant over the shrunk size heapSize-1, which
// the caller must use for subsequent operations.
func (s *Sorter) ExtractMax(seq []int64, heapSize int) (int64, error) {
	if heapSize <= 0 {
		return 0, fmt.Errorf("%w: heap is empty", ErrInvalidArgument)
	}

	s.recordReads(1)
	maxValue := seq[0]

	s.recordReads(1)
	s.recordWrite()
	seq[0] = seq[heapSize-1]

	s.siftDown(seq, heapSize-1, 0)

	return maxValue, nil
}

// GetMax returns the root value without mutating the heap.
func (s *Sorter) GetMax(seq []int64, heapSize int) (int64, error) {
	if heapSize <= 0 {
		return 0, fmt.Errorf("%w: heap is empty", ErrInvalidArgument)
	}

	s.recordReads(1)

	return seq[0], nil
}

// IncreaseKey raises the value at index to newValue and restores the
// invariant upward. Lowering a key fails with ErrInvalidArgument before
// any write, as does an index outside the underlying sequence.
func (s *Sorter) IncreaseKey(seq []int64, index int, newValue int64) error {
	if index < 0 || index >= len(seq) {
		return fmt.Errorf("%w: index %d out of range [0, %d)", ErrInvalidArgument, index, len(seq))
	}

	s.recordReads(1)

	if newValue < seq[index] {
		return fmt.Errorf("%w: new value must not decrease the key", ErrInvalidArgument)
	}

	s.recordWrite()
	seq[index] = newValue

	s.siftUp(seq, index)

	return nil
}

// Insert adds value to a heap with spare capacity (heapSize below
// len(seq)) and returns the new heap size. A minimal sentinel is placed at
// the first free slot and bubbled into position via IncreaseKey.
func (s *Sorter) Insert(seq []int64, heapSize int, value int64) (int, error) {
	if heapSize >= len(seq) {
		return heapSize, fmt.Errorf("%w: heap is full", ErrInvalidArgument)
	}

	s.recordWrite()
	seq[heapSize] = math.MinInt64

	err := s.IncreaseKey(seq, heapSize, value)
	if err != nil {
		return heapSize, err
	}

	return heapSize + 1, nil
}

// IsSorted reports whether seq is in non-decreasing order. Nil, empty and
// singleton sequences are sorted by definition. Pure predicate: nothing is
// recorded.
func IsSorted(seq []int64) bool {
	for i := 1; i < len(seq); i++ {
		if seq[i-1] > seq[i] {
			return false
		}
	}

	return true
}

// IsMaxHeap reports whether the max-heap invariant holds over the prefix
// [0, heapSize) of seq: every parent is >= both children within the
// prefix. Pure predicate: nothing is recorded.
func IsMaxHeap(seq []int64, heapSize int) bool {
	if heapSize > len(seq) {
		heapSize = len(seq)
	}

	for i := 0; i < heapSize; i++ {
		left := 2*i + 1
		right := 2*i + 2

		if left < heapSize && seq[i] < seq[left] {
			return false
		}

		if right < heapSize && seq[i] < seq[right] {
			return false
		}
	}

	return true
}
