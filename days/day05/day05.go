// Package day05 solves day 5: an ingredient database with a header of
// fresh-ID ranges and a body of individual IDs, separated by a blank line.
package day05

import (
	"fmt"
	"sort"
	"strings"

	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

type idRange struct {
	Start, End uint64
}

// Puzzle holds merged, sorted fresh ranges and the sorted ID list.
type Puzzle struct {
	ranges []idRange
	ids    []uint64
}

// New parses the two sections: "start-end" ranges, then one ID per line.
// Ranges are sorted and merged (overlapping or contiguous); IDs are
// sorted so lookups can binary search.
func New(content string) (*Puzzle, error) {
	head, body, ok := strings.Cut(content, "\n\n")
	if !ok {
		return nil, fmt.Errorf("day05: expected ranges and IDs separated by a blank line")
	}
	ranges, err := input.ParseLines(strings.TrimSpace(head), parseRange)
	if err != nil {
		return nil, err
	}
	ids, err := input.ParseLines(strings.TrimSpace(body), input.Uatoi[uint64])
	if err != nil {
		return nil, err
	}
	sort.Slice(ranges, func(i, j int) bool {
		if ranges[i].Start != ranges[j].Start {
			return ranges[i].Start < ranges[j].Start
		}
		return ranges[i].End < ranges[j].End
	})
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	merged := make([]idRange, 0, len(ranges))
	for _, r := range ranges {
		if n := len(merged); n > 0 && r.Start <= merged[n-1].End+1 {
			merged[n-1].End = max(merged[n-1].End, r.End)
			continue
		}
		merged = append(merged, r)
	}
	return &Puzzle{ranges: merged, ids: ids}, nil
}

func parseRange(s string) (idRange, error) {
	start, end, ok := strings.Cut(s, "-")
	if !ok {
		return idRange{}, fmt.Errorf("day05: invalid range %q in header", s)
	}
	lo, err := input.Uatoi[uint64](start)
	if err != nil {
		return idRange{}, fmt.Errorf("day05: invalid range %q: %w", s, err)
	}
	hi, err := input.Uatoi[uint64](end)
	if err != nil {
		return idRange{}, fmt.Errorf("day05: invalid range %q: %w", s, err)
	}
	return idRange{Start: lo, End: hi}, nil
}

// Day returns 5.
func (p *Puzzle) Day() int { return 5 }

// countInRange counts IDs inside r via two binary searches over the
// sorted ID list. Complexity: O(log n).
func (p *Puzzle) countInRange(r idRange) int {
	lo := sort.Search(len(p.ids), func(i int) bool { return p.ids[i] >= r.Start })
	hi := sort.Search(len(p.ids), func(i int) bool { return p.ids[i] > r.End })
	return hi - lo
}

// Part1 counts how many listed IDs fall inside any fresh range. With far
// fewer ranges than IDs, iterating ranges and binary-searching IDs is the
// cheap direction: O(M log N) rather than O(N log M).
func (p *Puzzle) Part1() string {
	total := parallel.Sum(len(p.ranges), func(i int) int {
		return p.countInRange(p.ranges[i])
	})
	return fmt.Sprint(total)
}

// Part2 sums the sizes of the merged ranges — merging already removed
// every overlap, so this is just arithmetic.
func (p *Puzzle) Part2() string {
	total := parallel.Sum(len(p.ranges), func(i int) uint64 {
		return p.ranges[i].End - p.ranges[i].Start + 1
	})
	return fmt.Sprint(total)
}
