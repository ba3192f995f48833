package bench

import (
	"math"
	"time"
)

// maxIterations bounds the worst-case measurement phase.
const maxIterations = 1_000_000

// sink receives every timed call's result. Writing through a noinline
// function keeps the compiler from proving the result unused and
// eliminating the call, which would invalidate the timing.
var sink any

//go:noinline
func escape(v any) { sink = v }

// MeasureOnce executes op exactly once and returns the elapsed wall-clock
// duration. The result of op passes through the optimization barrier.
// Panics inside op are not caught and propagate to the caller.
func MeasureOnce[T any](op func() T) time.Duration {
	start := time.Now()
	escape(op())
	return time.Since(start)
}

// MeasureMany benchmarks op under the given wall-clock budget and reduces
// the collected samples to a Result. See doc.go for the calibration
// procedure. The iteration count never drops below 1, so the sample set is
// never empty even when a single call overruns the budget.
func MeasureMany[T any](name string, timeLimit time.Duration, op func() T) Result {
	// 1. Cold run: a first per-call estimate. Clamp to 1ns so the
	//    division below is defined even on coarse clocks.
	cold := max(MeasureOnce(op), time.Nanosecond)
	provisional := uint64(timeLimit / cold)

	// 2. Burn-in: 1% of the provisional count, clamped to [1, MaxUint32],
	//    to wash out first-call effects before committing to a count.
	burnIn := min(max(provisional/100, 1), math.MaxUint32)
	var total time.Duration
	for i := uint64(0); i < burnIn; i++ {
		total += MeasureOnce(op)
	}
	refined := max(total/time.Duration(burnIn), time.Nanosecond)

	// 3. Final count from the refined estimate, rounded to a coarse step.
	iterations := roundIterations(uint64(timeLimit / refined))

	// 4. Measurement phase: exactly `iterations` timed calls.
	samples := make([]time.Duration, iterations)
	for i := range samples {
		samples[i] = MeasureOnce(op)
	}

	return reduce(name, timeLimit, iterations, samples)
}

// roundIterations rounds n down to a coarse, human-legible step:
// below 10 it is capped at 3, two digits round to tens, three digits to
// hundreds, anything larger to thousands capped at maxIterations.
// The result is always at least 1.
func roundIterations(n uint64) uint64 {
	switch {
	case n < 10:
		return max(min(n, 3), 1)
	case n < 100:
		return n / 10 * 10
	case n < 1000:
		return n / 100 * 100
	default:
		return min(n/1000*1000, maxIterations)
	}
}

// reduce collapses the samples into a Result.
// Panics if samples is empty: roundIterations guarantees at least one
// sample, so an empty set here is a programming error, not bad input.
func reduce(name string, timeLimit time.Duration, iterations uint64, samples []time.Duration) Result {
	if len(samples) == 0 {
		panic("bench: no samples collected; iteration rounding must yield at least 1")
	}
	fastest, slowest := samples[0], samples[0]
	var sum time.Duration
	for _, d := range samples {
		fastest = min(fastest, d)
		slowest = max(slowest, d)
		sum += d
	}
	mean := sum / time.Duration(len(samples))
	median := medianOf(samples)

	// Absolute deviations from the median feed the MAD; deviations from
	// the mean (squared) feed the standard deviation.
	absDev := make([]time.Duration, len(samples))
	for i, d := range samples {
		absDev[i] = absDiff(d, median)
	}

	return Result{
		Name:       name,
		TimeLimit:  timeLimit,
		Iterations: iterations,
		Fastest:    fastest,
		Slowest:    slowest,
		Mean:       mean,
		StdDev:     stdDev(samples, mean),
		Median:     median,
		MAD:        medianOf(absDev),
	}
}

// absDiff returns |a-b| for durations.
func absDiff(a, b time.Duration) time.Duration {
	if a < b {
		return b - a
	}
	return a - b
}
