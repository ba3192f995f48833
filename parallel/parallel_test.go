package parallel_test

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kvantaro/aoc2025/parallel"
)

func TestMapReduce(t *testing.T) {
	got := parallel.MapReduce(100, 0,
		func(i int) int { return i },
		func(a, b int) int { return a + b },
	)
	assert.Equal(t, 4950, got)
}

func TestMapReduce_Empty(t *testing.T) {
	got := parallel.MapReduce(0, 7,
		func(int) int { panic("must not be called") },
		func(a, b int) int { return a + b },
	)
	assert.Equal(t, 7, got)
}

func TestForEach_CoversEveryIndex(t *testing.T) {
	var hits [64]atomic.Int32
	parallel.ForEach(len(hits), func(i int) {
		hits[i].Add(1)
	})
	for i := range hits {
		assert.Equal(t, int32(1), hits[i].Load(), "index %d", i)
	}
}

func TestSum(t *testing.T) {
	assert.Equal(t, 4950, parallel.Sum(100, func(i int) int { return i }))
	assert.Equal(t, uint64(0), parallel.Sum(0, func(int) uint64 { return 1 }))
	assert.InDelta(t, 5.0, parallel.Sum(10, func(int) float64 { return 0.5 }), 1e-9)
}

func TestMax(t *testing.T) {
	got := parallel.Max(10, 0, func(i int) int { return (i * 7) % 10 })
	assert.Equal(t, 9, got)
	assert.Equal(t, -5, parallel.Max(0, -5, func(int) int { return 100 }))
}

func TestCount(t *testing.T) {
	got := parallel.Count(100, func(i int) bool { return i%3 == 0 })
	assert.Equal(t, 34, got)
}

func TestFirstMatch(t *testing.T) {
	assert.Equal(t, 42, parallel.FirstMatch(1000, func(i int) bool { return i >= 42 }))
	assert.Equal(t, -1, parallel.FirstMatch(1000, func(int) bool { return false }))
	assert.Equal(t, -1, parallel.FirstMatch(0, func(int) bool { return true }))
}
