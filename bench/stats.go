package bench

import (
	"math/big"
	"math/bits"
	"time"
)

// isqrt returns the integer square root of x: the largest y with y² ≤ x.
// Newton's method rounding down; the y² > x test goes through a full
// 128-bit product so large intermediate squares cannot wrap.
func isqrt(x uint64) uint64 {
	if x == 0 {
		return 0
	}
	y := x/2 + 1
	for squareExceeds(y, x) {
		y = (y + x/y) / 2
	}
	return y
}

// squareExceeds reports whether y² > x without overflowing.
func squareExceeds(y, x uint64) bool {
	hi, lo := bits.Mul64(y, y)
	return hi > 0 || lo > x
}

// stdDev computes the population standard deviation of samples around
// mean, in whole nanoseconds. The sum of squared deviations accumulates in
// a big.Int: a million second-scale deviations would overflow uint64, and
// silently wrapped statistics are worse than none. The final quotient is
// at most the largest single squared deviation, so it fits uint64.
func stdDev(samples []time.Duration, mean time.Duration) time.Duration {
	sumSq := new(big.Int)
	sq := new(big.Int)
	for _, d := range samples {
		dev := int64(absDiff(d, mean))
		sq.SetInt64(dev)
		sq.Mul(sq, sq)
		sumSq.Add(sumSq, sq)
	}
	variance := sumSq.Div(sumSq, big.NewInt(int64(len(samples))))
	return time.Duration(isqrt(variance.Uint64()))
}

// medianOf returns the median of v by partial selection, without fully
// sorting. For an even count the two central elements are located by one
// selection pass plus a minimum scan over the upper partition, and their
// mean is returned. Panics on an empty slice: callers guarantee at least
// one sample (see reduce).
func medianOf(v []time.Duration) time.Duration {
	n := len(v)
	if n == 0 {
		panic("bench: median of empty sample set")
	}
	// Work on a copy; callers keep iterating the original ordering.
	w := make([]time.Duration, n)
	copy(w, v)
	if n%2 == 1 {
		return quickselect(w, n/2)
	}
	// Even count: select the lower middle, then the upper middle is the
	// minimum of the (now partitioned) upper half.
	lower := quickselect(w, n/2-1)
	upper := w[n/2]
	for _, d := range w[n/2+1:] {
		upper = min(upper, d)
	}
	return (lower + upper) / 2
}

// quickselect returns the k-th smallest element of v (0-based),
// partitioning v in place so that afterwards v[..k] ≤ v[k] ≤ v[k+1..].
// Average O(n); the median-of-three pivot keeps sorted inputs off the
// quadratic path.
func quickselect(v []time.Duration, k int) time.Duration {
	lo, hi := 0, len(v)-1
	for lo < hi {
		p := partition(v, lo, hi)
		switch {
		case p == k:
			return v[k]
		case p < k:
			lo = p + 1
		default:
			hi = p - 1
		}
	}
	return v[k]
}

// partition performs a Lomuto partition of v[lo..hi] around a
// median-of-three pivot and returns the pivot's final index.
func partition(v []time.Duration, lo, hi int) int {
	mid := lo + (hi-lo)/2
	// Order v[lo], v[mid], v[hi] so the median lands at mid.
	if v[mid] < v[lo] {
		v[mid], v[lo] = v[lo], v[mid]
	}
	if v[hi] < v[lo] {
		v[hi], v[lo] = v[lo], v[hi]
	}
	if v[hi] < v[mid] {
		v[hi], v[mid] = v[mid], v[hi]
	}
	v[mid], v[hi] = v[hi], v[mid] // stash pivot at the end
	pivot := v[hi]
	i := lo
	for j := lo; j < hi; j++ {
		if v[j] < pivot {
			v[i], v[j] = v[j], v[i]
			i++
		}
	}
	v[i], v[hi] = v[hi], v[i]
	return i
}
