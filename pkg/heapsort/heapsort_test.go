package heapsort

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingRecorder is a minimal Recorder for asserting event accounting
// without pulling in the tracker package.
type countingRecorder struct {
	comparisons int
	swaps       int
	reads       int
	writes      int
	heapifyOps  int
}

func (r *countingRecorder) RecordComparison() { r.comparisons++ }
func (r *countingRecorder) RecordArrayRead()  { r.reads++ }
func (r *countingRecorder) RecordArrayWrite() { r.writes++ }
func (r *countingRecorder) RecordHeapify()    { r.heapifyOps++ }

func (r *countingRecorder) RecordSwap() {
	r.swaps++
	r.reads += 2
	r.writes += 2
}

// pseudoRandom returns a deterministic scrambled sequence.
func pseudoRandom(n int) []int64 {
	seq := make([]int64, n)
	state := int64(12345)

	for i := range seq {
		state = (state*1103515245 + 12341) % (1 << 31)
		seq[i] = state % int64(n*10)
	}

	return seq
}

func TestSort(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    []int64
		expected []int64
	}{
		{name: "classic_example", input: []int64{64, 34, 25, 12, 22, 11, 90}, expected: []int64{11, 12, 22, 25, 34, 64, 90}},
		{name: "all_duplicates", input: []int64{5, 5, 5, 5, 5}, expected: []int64{5, 5, 5, 5, 5}},
		{name: "some_duplicates", input: []int64{4, 2, 7, 2, 9, 4, 1}, expected: []int64{1, 2, 2, 4, 4, 7, 9}},
		{name: "already_sorted", input: []int64{1, 2, 3, 4, 5}, expected: []int64{1, 2, 3, 4, 5}},
		{name: "reverse_sorted", input: []int64{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}, expected: []int64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}},
		{name: "two_elements_descending", input: []int64{2, 1}, expected: []int64{1, 2}},
		{name: "two_elements_ascending", input: []int64{1, 2}, expected: []int64{1, 2}},
		{name: "single_element", input: []int64{42}, expected: []int64{42}},
		{name: "empty", input: []int64{}, expected: []int64{}},
		{name: "negative_values", input: []int64{3, -7, 0, -1, 12, -7}, expected: []int64{-7, -7, -1, 0, 3, 12}},
		{name: "extreme_values", input: []int64{math.MaxInt64, math.MinInt64, 0}, expected: []int64{math.MinInt64, 0, math.MaxInt64}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			seq := append([]int64(nil), tt.input...)

			err := New(nil).Sort(seq)
			require.NoError(t, err)

			assert.Equal(t, tt.expected, seq)
			assert.True(t, IsSorted(seq))
		})
	}
}

func TestSortNilSequence(t *testing.T) {
	t.Parallel()

	err := New(nil).Sort(nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestSortPermutationInvariant(t *testing.T) {
	t.Parallel()

	seq := pseudoRandom(500)

	before := make(map[int64]int)
	for _, v := range seq {
		before[v]++
	}

	err := New(nil).Sort(seq)
	require.NoError(t, err)

	after := make(map[int64]int)
	for _, v := range seq {
		after[v]++
	}

	assert.Equal(t, before, after)
}

func TestSortIdempotence(t *testing.T) {
	t.Parallel()

	seq := pseudoRandom(200)
	sorter := New(nil)

	require.NoError(t, sorter.Sort(seq))

	once := append([]int64(nil), seq...)

	require.NoError(t, sorter.Sort(seq))
	assert.Equal(t, once, seq)
}

func TestSortRecorderDoesNotChangeResult(t *testing.T) {
	t.Parallel()

	tracked := pseudoRandom(300)
	untracked := append([]int64(nil), tracked...)

	require.NoError(t, New(&countingRecorder{}).Sort(tracked))
	require.NoError(t, New(nil).Sort(untracked))

	assert.Equal(t, untracked, tracked)
}

func TestSortTrivialInputsRecordNothing(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input []int64
	}{
		{name: "empty", input: []int64{}},
		{name: "singleton", input: []int64{7}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := &countingRecorder{}

			require.NoError(t, New(rec).Sort(tt.input))
			assert.Equal(t, &countingRecorder{}, rec)
		})
	}
}

func TestSortEventAccounting(t *testing.T) {
	t.Parallel()

	rec := &countingRecorder{}
	seq := []int64{3, 1, 2}

	// Build: one sift-down at index 0 over heap size 3 (2 comparisons,
	// 1 swap). Extraction: 2 rounds, each 1 swap plus a sift-down.
	require.NoError(t, New(rec).Sort(seq))

	assert.Equal(t, []int64{1, 2, 3}, seq)
	assert.Positive(t, rec.comparisons)
	assert.Positive(t, rec.swaps)
	assert.Equal(t, 3, rec.heapifyOps, "one heapify event per sift-down invocation")
	assert.Equal(t, 2*rec.comparisons+2*rec.swaps, rec.reads, "two reads per comparison, two per swap")
	assert.Equal(t, 2*rec.swaps, rec.writes, "two writes per swap")
}

// TestSortComparisonScaling checks the n log n growth empirically:
// doubling the input size should scale comparisons by a factor clearly
// above linear-in-doubling noise yet far below quadratic, roughly 2-3x.
func TestSortComparisonScaling(t *testing.T) {
	t.Parallel()

	comparisonsFor := func(n int) int {
		rec := &countingRecorder{}
		require.NoError(t, New(rec).Sort(pseudoRandom(n)))

		return rec.comparisons
	}

	small := comparisonsFor(4096)
	large := comparisonsFor(8192)

	ratio := float64(large) / float64(small)
	assert.Greater(t, ratio, 1.8)
	assert.Less(t, ratio, 3.0)
}
