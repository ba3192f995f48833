// Package day03 solves day 3: battery banks written as rows of digits.
// Part 1 picks the best ordered two-digit reading per bank; part 2 finds
// the largest 12-digit subsequence per bank by dynamic programming.
package day03

import (
	"fmt"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/parallel"
)

// joltageDigits is the reading length searched for in part 2.
const joltageDigits = 12

// Puzzle holds the banks as a rectangular digit grid, one bank per row.
type Puzzle struct {
	banks *grid.Grid[uint8]
}

// New parses a grid of decimal digits, one cell per character.
func New(content string) (*Puzzle, error) {
	banks, err := grid.ParseChars(content, func(c rune) (uint8, error) {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("day03: %q is not a digit", c)
		}
		return uint8(c - '0'), nil
	})
	if err != nil {
		return nil, err
	}
	return &Puzzle{banks: banks}, nil
}

// Day returns 3.
func (p *Puzzle) Day() int { return 3 }

// Part1 reads two digits per bank in order: the largest digit that still
// has something after it, then the largest digit after that position.
// Banks fan out across workers.
func (p *Puzzle) Part1() string {
	total := parallel.Sum(p.banks.Rows(), func(r int) uint64 {
		bank := p.banks.Row(r)
		// Largest digit among all but the last; earliest wins ties so the
		// second pick has the widest choice.
		best := 0
		for i := 1; i < len(bank)-1; i++ {
			if bank[i] > bank[best] {
				best = i
			}
		}
		var second uint8
		for _, d := range bank[best+1:] {
			second = max(second, d)
		}
		return uint64(bank[best])*10 + uint64(second)
	})
	return fmt.Sprint(total)
}

// Part2 finds the largest 12-digit number formed by deleting digits
// without reordering. dp[l] is the best l-digit prefix value so far; each
// incoming digit either extends an (l-1)-digit prefix or is skipped.
func (p *Puzzle) Part2() string {
	total := parallel.Sum(p.banks.Rows(), func(r int) uint64 {
		var dp [joltageDigits + 1]uint64
		for _, d := range p.banks.Row(r) {
			for l := joltageDigits; l >= 1; l-- {
				dp[l] = max(dp[l], dp[l-1]*10+uint64(d))
			}
		}
		return dp[joltageDigits]
	})
	return fmt.Sprint(total)
}
