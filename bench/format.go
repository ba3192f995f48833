package bench

import (
	"fmt"
	"time"
)

// scales are the display units, largest first.
var scales = []struct {
	nanos uint64
	unit  string
}{
	{60_000_000_000, "m"},
	{1_000_000_000, "s"},
	{1_000_000, "ms"},
	{1_000, "µs"},
	{1, "ns"},
}

// humanFormatter picks one display unit for the result's six
// representative durations by majority vote (each duration votes for the
// largest unit not exceeding it; zero votes nanoseconds) and returns a
// formatter rendering any duration under that unit with three decimals.
// One shared unit keeps the whole report visually comparable, and the
// vote keeps a single outlier from forcing an unreadable unit on the rest.
func (r Result) humanFormatter() func(time.Duration) string {
	votes := make([]int, len(scales))
	for _, d := range []time.Duration{r.Fastest, r.Slowest, r.Mean, r.StdDev, r.Median, r.MAD} {
		votes[scaleIndex(d)]++
	}
	// Most votes wins; ties go to the larger unit.
	winner := 0
	for i, v := range votes {
		if v > votes[winner] {
			winner = i
		}
	}
	nanos, unit := scales[winner].nanos, scales[winner].unit
	return func(d time.Duration) string {
		return fmt.Sprintf("%.3f%s", float64(d.Nanoseconds())/float64(nanos), unit)
	}
}

// scaleIndex returns the index of the largest scale not exceeding d,
// or the nanosecond scale for sub-nanosecond (zero) durations.
func scaleIndex(d time.Duration) int {
	for i, s := range scales {
		if uint64(d.Nanoseconds()) >= s.nanos {
			return i
		}
	}
	return len(scales) - 1
}
