// Package day01 solves day 1: a safe dial with positions 0..99, starting
// at 50, turned left or right by a list of rotations.
package day01

import (
	"fmt"

	"github.com/kvantaro/aoc2025/input"
)

// Puzzle holds the parsed rotations: negative for left, positive for right.
type Puzzle struct {
	ops []int
}

// New parses one rotation per line, e.g. "L10" or "R275".
func New(content string) (*Puzzle, error) {
	ops, err := input.ParseLines(content, parseOp)
	if err != nil {
		return nil, err
	}
	return &Puzzle{ops: ops}, nil
}

func parseOp(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("day01: empty operation")
	}
	n, err := input.Atoi[int](s[1:])
	if err != nil {
		return 0, fmt.Errorf("day01: bad rotation %q: %w", s, err)
	}
	switch s[0] {
	case 'L':
		return -n, nil
	case 'R':
		return n, nil
	default:
		return 0, fmt.Errorf("day01: invalid operation %q", s)
	}
}

// Day returns 1.
func (p *Puzzle) Day() int { return 1 }

// mod100 wraps a position into 0..99, handling negatives.
func mod100(x int) int { return ((x % 100) + 100) % 100 }

// Part1 simulates the rotations and counts how many times the dial lands
// exactly on position 0.
func (p *Puzzle) Part1() string {
	pos, count := 50, 0
	for _, op := range p.ops {
		pos = mod100(pos + op)
		if pos == 0 {
			count++
		}
	}
	return fmt.Sprint(count)
}

// Part2 counts every pass over position 0, not just landings: each full
// circle in a rotation passes 0 once, and the remainder passes 0 exactly
// when it crosses (or lands on) either end of the 0..100 window.
func (p *Puzzle) Part2() string {
	pos, count := 50, 0
	for _, op := range p.ops {
		count += abs(op) / 100
		next := pos + op%100
		if (pos > 0 && next <= 0) || (pos < 100 && next >= 100) {
			count++
		}
		pos = mod100(next)
	}
	return fmt.Sprint(count)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
