// Package day02 solves day 2: summing "invalid" IDs — numbers whose
// decimal digits consist of a block repeated two or more times — inside a
// set of ID ranges. Both parts are closed-form arithmetic-series sums, so
// no ID is ever enumerated.
package day02

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// idRange is an inclusive [Start, End] range of IDs.
type idRange struct {
	Start, End uint64
}

// Puzzle holds the merged, sorted ID ranges.
type Puzzle struct {
	ranges []idRange
}

// New parses comma-separated "start-end" ranges, then sorts and merges
// overlapping or contiguous ones so later passes see disjoint ranges.
func New(content string) (*Puzzle, error) {
	ranges, err := input.ParseCommaSeparated(content, parseRange)
	if err != nil {
		return nil, err
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
	merged := make([]idRange, 0, len(ranges))
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End+1 {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return &Puzzle{ranges: merged}, nil
}

func parseRange(s string) (idRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return idRange{}, fmt.Errorf("day02: invalid range %q", s)
	}
	lo, err := input.Uatoi[uint64](start)
	if err != nil {
		return idRange{}, fmt.Errorf("day02: invalid range %q: %w", s, err)
	}
	hi, err := input.Uatoi[uint64](end)
	if err != nil {
		return idRange{}, fmt.Errorf("day02: invalid range %q: %w", s, err)
	}
	return idRange{Start: lo, End: hi}, nil
}

// Day returns 2.
func (p *Puzzle) Day() int { return 2 }

// digits returns the number of decimal digits in n (n >= 1).
func digits(n uint64) uint {
	var d uint
	for ; n > 0; n /= 10 {
		d++
	}
	return d
}

// pow10 returns 10^e.
func pow10(e uint) uint64 {
	out := uint64(1)
	for ; e > 0; e-- {
		out *= 10
	}
	return out
}

// primeFactors returns the distinct prime factors of n, ascending.
func primeFactors(n uint) []uint {
	factors := make([]uint, 0, 4)
	appendOnce := func(f uint) {
		if len(factors) == 0 || factors[len(factors)-1] != f {
			factors = append(factors, f)
		}
	}
	for n%2 == 0 {
		appendOnce(2)
		n /= 2
	}
	for d := uint(3); d*d <= n; d += 2 {
		for n%d == 0 {
			appendOnce(d)
			n /= d
		}
	}
	if n > 1 {
		appendOnce(n)
	}
	return factors
}

// sumPatternIDs sums the n-digit IDs inside r whose digits are one block
// repeated `repeat` times. Every such ID is k·base for the block value k,
// where base is the repunit-like multiplier 10^0·…+10^(n/repeat)·…, so the
// sum over a contiguous k interval is an arithmetic series.
func sumPatternIDs(r idRange, n, repeat uint) uint64 {
	block := n / repeat // digits per repeated block
	// lower is the smallest n-digit number of this pattern (block value
	// 10^(block-1)); base is the multiplier turning a block value into the
	// full patterned number.
	var lower uint64
	for e := block - 1; e < n; e += block {
		lower += pow10(e)
	}
	base := lower / pow10(block-1)
	upper := base * (pow10(block) - 1)
	// Clip [lower, upper] to the requested range, then translate back to
	// block values.
	start := max(r.Start, lower)
	end := min(r.End, upper)
	start = (start + base - 1) / base
	end /= base
	if start > end {
		return 0
	}
	// Arithmetic series of block values, scaled back up by base.
	return (end - start + 1) * (start + end) / 2 * base
}

// Part1 sums IDs made of a block repeated exactly twice (even digit
// counts only), range by range in parallel.
func (p *Puzzle) Part1() string {
	total := parallel.Sum(len(p.ranges), func(i int) uint64 {
		r := p.ranges[i]
		var sum uint64
		for n := digits(r.Start); n <= digits(r.End); n++ {
			if n >= 2 && n%2 == 0 {
				sum += sumPatternIDs(r, n, 2)
			}
		}
		return sum
	})
	return fmt.Sprint(total)
}

// Part2 sums IDs made of a block repeated any number of times. Only prime
// repeat counts need summing — a composite repeat is already covered by
// its prime divisors — but the all-same-digit IDs are common to every
// prime pattern, so each extra prime subtracts one all-same contribution.
func (p *Puzzle) Part2() string {
	total := parallel.Sum(len(p.ranges), func(i int) uint64 {
		r := p.ranges[i]
		var sum uint64
		for n := digits(r.Start); n <= digits(r.End); n++ {
			if n <= 1 {
				continue
			}
			allSame := sumPatternIDs(r, n, n)
			patterned := allSame
			for _, k := range primeFactors(n) {
				if k < n {
					patterned += sumPatternIDs(r, n, k) - allSame
				}
			}
			sum += patterned
		}
		return sum
	})
	return fmt.Sprint(total)
}
