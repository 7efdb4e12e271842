// Package generator produces deterministic integer input sequences for the
// benchmark harness: the classic sorting distributions (random, sorted,
// reverse, nearly-sorted, duplicate-heavy), reproducible from a seed.
package generator

import (
	"errors"
	"fmt"
)

// Pattern identifies an input distribution.
type Pattern string

// Supported input distributions.
const (
	PatternRandom       Pattern = "random"
	PatternSorted       Pattern = "sorted"
	PatternReverse      Pattern = "reverse"
	PatternNearlySorted Pattern = "nearly_sorted"
	PatternDuplicates   Pattern = "duplicates"
)

// ErrUnknownPattern is returned for a pattern name outside Patterns().
var ErrUnknownPattern = errors.New("generator: unknown pattern")

// Patterns returns every supported pattern in a stable order.
func Patterns() []Pattern {
	return []Pattern{
		PatternRandom,
		PatternSorted,
		PatternReverse,
		PatternNearlySorted,
		PatternDuplicates,
	}
}

// ParsePattern validates a pattern name.
func ParsePattern(name string) (Pattern, error) {
	for _, p := range Patterns() {
		if string(p) == name {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownPattern, name)
}

const (
	// randomValueFactor bounds random values to [0, size*randomValueFactor).
	randomValueFactor = 10

	// duplicateValueRange bounds duplicate-heavy values to [0, duplicateValueRange).
	duplicateValueRange = 10

	// nearlySortedSwapDivisor controls disorder: size/nearlySortedSwapDivisor
	// random transpositions are applied to a sorted sequence.
	nearlySortedSwapDivisor = 20
)

// Source generates sequences from a seeded PRNG. Two Sources built from
// the same seed produce identical sequences for identical request orders.
type Source struct {
	rng splitmix64
}

// NewSource creates a generator Source from a seed.
func NewSource(seed uint64) *Source {
	return &Source{rng: splitmix64{state: seed}}
}

// Generate returns a fresh sequence of the given size drawn from pattern.
// A non-positive size yields an empty sequence.
func (s *Source) Generate(pattern Pattern, size int) ([]int64, error) {
	if size <= 0 {
		size = 0
	}

	switch pattern {
	case PatternRandom:
		return s.random(size), nil
	case PatternSorted:
		return ascending(size), nil
	case PatternReverse:
		return descending(size), nil
	case PatternNearlySorted:
		return s.nearlySorted(size), nil
	case PatternDuplicates:
		return s.duplicates(size), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPattern, pattern)
	}
}

func (s *Source) random(size int) []int64 {
	seq := make([]int64, size)

	for i := range seq {
		seq[i] = int64(s.rng.intn(size * randomValueFactor))
	}

	return seq
}

func ascending(size int) []int64 {
	seq := make([]int64, size)

	for i := range seq {
		seq[i] = int64(i)
	}

	return seq
}

func descending(size int) []int64 {
	seq := make([]int64, size)

	for i := range seq {
		seq[i] = int64(size - i)
	}

	return seq
}

func (s *Source) nearlySorted(size int) []int64 {
	seq := ascending(size)

	for k := 0; k < size/nearlySortedSwapDivisor; k++ {
		i := s.rng.intn(size)
		j := s.rng.intn(size)
		seq[i], seq[j] = seq[j], seq[i]
	}

	return seq
}

func (s *Source) duplicates(size int) []int64 {
	seq := make([]int64, size)

	for i := range seq {
		seq[i] = int64(s.rng.intn(duplicateValueRange))
	}

	return seq
}
