// Package bench is a statistical micro-benchmark harness for zero-argument
// operations. It times a closure repeatedly under a wall-clock budget and
// reports robust statistics about the sample.
//
// How MeasureMany spends its budget:
//
//  1. One cold run estimates the per-call duration.
//  2. A burn-in of 1% of the provisional iteration count (clamped to
//     [1, MaxUint32]) refines that estimate, compensating for first-call
//     effects such as cache and allocator warm-up.
//  3. The final iteration count is recomputed from the refined estimate and
//     rounded down to a coarse, human-legible step (multiples of 10, 100 or
//     1000 depending on magnitude, capped at 1,000,000).
//  4. Exactly that many timed calls run; their durations are reduced to
//     fastest, slowest, mean, population standard deviation, median and
//     median absolute deviation.
//
// The budget is advisory: once the iteration count is fixed, the
// measurement phase may overrun it. Medians are found by partial selection
// rather than a full sort, and the standard deviation uses an iterative
// integer square root, so all statistics stay in the integer nanosecond
// domain.
//
// Every timed call passes its result through an optimization barrier so
// the compiler cannot eliminate the operation as dead code. The harness is
// single-threaded and treats the timed operation as an atomic black box;
// any parallelism inside the closure is invisible to it.
package bench
