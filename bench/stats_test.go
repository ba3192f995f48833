package bench

import (
	"math"
	"math/rand"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIsqrt_Exhaustive checks isqrt against the definition y² ≤ x < (y+1)²
// for every x up to 10000.
func TestIsqrt_Exhaustive(t *testing.T) {
	for x := uint64(0); x <= 10000; x++ {
		y := isqrt(x)
		require.LessOrEqual(t, y*y, x, "isqrt(%d) = %d overshoots", x, y)
		require.Greater(t, (y+1)*(y+1), x, "isqrt(%d) = %d undershoots", x, y)
	}
}

// TestIsqrt_Large exercises the overflow-safe square test: near MaxUint64
// a naive y² comparison would wrap.
func TestIsqrt_Large(t *testing.T) {
	assert.Equal(t, uint64(math.MaxUint32), isqrt(math.MaxUint64))
	assert.Equal(t, uint64(3_037_000_499), isqrt(math.MaxInt64))
	assert.Equal(t, uint64(1_000_000_000), isqrt(1_000_000_000_000_000_000))
}

// sortedMedian is the straightforward reference implementation.
func sortedMedian(v []time.Duration) time.Duration {
	w := make([]time.Duration, len(v))
	copy(w, v)
	sort.Slice(w, func(i, j int) bool { return w[i] < w[j] })
	n := len(w)
	if n%2 == 1 {
		return w[n/2]
	}
	return (w[n/2-1] + w[n/2]) / 2
}

func TestMedianOf_MatchesSorted(t *testing.T) {
	cases := [][]time.Duration{
		{5},
		{2, 1},
		{3, 1, 2},
		{4, 1, 3, 2},
		{10, 10, 10, 10, 10},
		{1, 1, 2, 2},
	}
	for _, v := range cases {
		assert.Equal(t, sortedMedian(v), medianOf(v), "samples %v", v)
	}
}

func TestMedianOf_Random(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 100; i++ {
		v := make([]time.Duration, 1+rng.Intn(50))
		for j := range v {
			v[j] = time.Duration(rng.Intn(1000))
		}
		assert.Equal(t, sortedMedian(v), medianOf(v), "samples %v", v)
	}
}

// TestMedianOf_LeavesInputIntact: reduce iterates the samples again after
// taking the median, so medianOf must not reorder its argument.
func TestMedianOf_LeavesInputIntact(t *testing.T) {
	v := []time.Duration{9, 1, 5, 3, 7}
	medianOf(v)
	assert.Equal(t, []time.Duration{9, 1, 5, 3, 7}, v)
}

func TestMedianOf_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { medianOf(nil) })
}

func TestRoundIterations(t *testing.T) {
	cases := []struct {
		in, want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 3},
		{9, 3},
		{10, 10},
		{57, 50},
		{99, 90},
		{100, 100},
		{999, 900},
		{1000, 1000},
		{123_456, 123_000},
		{1_000_000, 1_000_000},
		{5_000_000_000, 1_000_000},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, roundIterations(c.in), "roundIterations(%d)", c.in)
	}
}

// TestReduce_KnownSamples pins every statistic on a hand-checked sample
// set: mean 3, median 3, deviations {2,1,0,1,2} so MAD 1, variance 2 so
// the integer standard deviation is 1.
func TestReduce_KnownSamples(t *testing.T) {
	samples := []time.Duration{1, 2, 3, 4, 5}
	r := reduce("known", time.Second, 5, samples)
	assert.Equal(t, "known", r.Name)
	assert.Equal(t, time.Second, r.TimeLimit)
	assert.Equal(t, uint64(5), r.Iterations)
	assert.Equal(t, time.Duration(1), r.Fastest)
	assert.Equal(t, time.Duration(5), r.Slowest)
	assert.Equal(t, time.Duration(3), r.Mean)
	assert.Equal(t, time.Duration(3), r.Median)
	assert.Equal(t, time.Duration(1), r.MAD)
	assert.Equal(t, time.Duration(1), r.StdDev)
}

func TestReduce_EmptyPanics(t *testing.T) {
	assert.Panics(t, func() { reduce("empty", time.Second, 0, nil) })
}

func TestStdDev_Uniform(t *testing.T) {
	samples := []time.Duration{7, 7, 7, 7}
	assert.Equal(t, time.Duration(0), stdDev(samples, 7))
}

func TestScaleIndex(t *testing.T) {
	assert.Equal(t, 4, scaleIndex(0))
	assert.Equal(t, 4, scaleIndex(999))
	assert.Equal(t, 3, scaleIndex(time.Microsecond))
	assert.Equal(t, 2, scaleIndex(999*time.Millisecond))
	assert.Equal(t, 1, scaleIndex(59*time.Second))
	assert.Equal(t, 0, scaleIndex(2*time.Minute))
}
