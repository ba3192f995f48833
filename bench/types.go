package bench

import (
	"fmt"
	"strconv"
	"time"
)

// Result holds the reduced statistics of one MeasureMany run.
// Immutable once produced.
type Result struct {
	// Name labels the benchmark, e.g. "Parse" or "Part 1".
	Name string
	// TimeLimit is the requested wall-clock budget (advisory, see doc.go).
	TimeLimit time.Duration
	// Iterations is the number of timed calls actually executed.
	Iterations uint64

	Fastest time.Duration
	Slowest time.Duration
	Mean    time.Duration
	// StdDev is the population standard deviation of the samples.
	StdDev time.Duration
	Median time.Duration
	// MAD is the median absolute deviation from the median.
	MAD time.Duration
}

// Columns returns the CSV column names, in serialization order.
func (Result) Columns() []string {
	return []string{
		"name", "iterations", "time_limit",
		"fastest", "slowest", "mean", "std_dev", "median", "mad",
	}
}

// Values renders the result's fields in Columns order, with durations
// formatted under the shared human-readable unit.
func (r Result) Values() []string {
	f := r.humanFormatter()
	return []string{
		r.Name,
		strconv.FormatUint(r.Iterations, 10),
		r.TimeLimit.String(),
		f(r.Fastest), f(r.Slowest), f(r.Mean), f(r.StdDev), f(r.Median), f(r.MAD),
	}
}

// String renders a one-line human-readable report.
func (r Result) String() string {
	f := r.humanFormatter()
	return fmt.Sprintf(
		"[%s] fastest: %s, slowest: %s, mean: %s, std_dev: %s, median: %s, mad: %s | %d iterations in %s",
		r.Name, f(r.Fastest), f(r.Slowest), f(r.Mean), f(r.StdDev), f(r.Median), f(r.MAD),
		r.Iterations, r.TimeLimit,
	)
}
