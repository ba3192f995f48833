// Package day10 solves day 10: light machines toggled by buttons. Part 1
// flips lights on and off, part 2 requires each light to be pressed an
// exact number of times.
package day10

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// lightState is a bitmask over the machine's lights, at most 10 of them.
type lightState uint16

// machine is one light machine: the target on/off pattern, the set of
// lights each button toggles, and the per-light press counts.
type machine struct {
	goal    lightState
	buttons []lightState
	counts  []int
}

// Puzzle holds one machine per line.
type Puzzle struct {
	machines []machine
}

// New parses one machine per line, e.g.
//
//	[.##.] (3) (1,3) (2) {3,5,4,7}
//
// where [..] is the goal pattern, each (..) lists the lights a button
// toggles and {..} gives the required press count per light.
func New(content string) (*Puzzle, error) {
	machines, err := input.ParseLines(content, parseMachine)
	if err != nil {
		return nil, err
	}
	return &Puzzle{machines: machines}, nil
}

func parseMachine(line string) (machine, error) {
	var m machine
	hasGoal, hasCounts := false, false
	for _, part := range strings.Fields(line) {
		switch part[0] {
		case '[':
			for i, c := range strings.Trim(part, "[]") {
				switch c {
				case '#':
					m.goal |= 1 << i
				case '.':
				default:
					return m, fmt.Errorf("day10: unexpected character in goal: %q", c)
				}
			}
			hasGoal = true
		case '(':
			var button lightState
			for _, s := range strings.Split(strings.Trim(part, "()"), ",") {
				light, err := input.Atoi[uint8](s)
				if err != nil {
					return m, fmt.Errorf("day10: bad button %q: %w", part, err)
				}
				button |= 1 << light
			}
			m.buttons = append(m.buttons, button)
		case '{':
			counts, err := input.ParseCommaSeparated(strings.Trim(part, "{}"), input.Atoi[int])
			if err != nil {
				return m, fmt.Errorf("day10: bad counts %q: %w", part, err)
			}
			m.counts = counts
			hasCounts = true
		default:
			return m, fmt.Errorf("day10: unexpected part in machine definition: %q", part)
		}
	}
	switch {
	case !hasGoal:
		return m, fmt.Errorf("day10: missing goal definition")
	case len(m.buttons) == 0:
		return m, fmt.Errorf("day10: missing button definitions")
	case !hasCounts:
		return m, fmt.Errorf("day10: missing press count definition")
	}
	return m, nil
}

// Day returns 10.
func (p *Puzzle) Day() int { return 10 }

// minTogglePresses finds the minimum number of button presses reaching the
// goal pattern. Pressing a button twice cancels out, so each button is
// pressed at most once and a subset-XOR dynamic program over the at most
// 2^10 light states suffices. Returns -1 when the goal is unreachable.
func (m *machine) minTogglePresses() int {
	dp := map[lightState]int{0: 0}
	for _, button := range m.buttons {
		next := make(map[lightState]int, len(dp)*2)
		for state, cost := range dp {
			// Not pressing the button carries the state over.
			if c, ok := next[state]; !ok || c > cost {
				next[state] = cost
			}
			if c, ok := next[state^button]; !ok || c > cost+1 {
				next[state^button] = cost + 1
			}
		}
		dp = next
	}
	if cost, ok := dp[m.goal]; ok {
		return cost
	}
	return -1
}

// minCountedPresses finds the minimum total button presses so that every
// light i is toggled exactly counts[i] times. This is an exact cover by
// binary digits: the buttons pressed an odd number of times must match the
// parity of the counts, and after subtracting one press for each of those
// buttons the remaining counts are even, halving into the same problem one
// bit up. The search branches over button subsets per bit and memoizes on
// the remaining count vector. Returns -1 when no assignment exists.
func (m *machine) minCountedPresses() int {
	subsets := 1 << len(m.buttons)
	memo := make(map[string]int)
	var solve func(counts []int) int
	solve = func(counts []int) int {
		parity := lightState(0)
		zero := true
		for i, c := range counts {
			if c%2 == 1 {
				parity |= 1 << i
			}
			if c != 0 {
				zero = false
			}
		}
		if zero {
			return 0
		}
		key := fmt.Sprint(counts)
		if cost, ok := memo[key]; ok {
			return cost
		}
		best := -1
		rest := make([]int, len(counts))
	candidates:
		for s := 0; s < subsets; s++ {
			if m.subsetToggle(s) != parity {
				continue
			}
			for i, c := range counts {
				rest[i] = c - m.subsetPresses(s, i)
				if rest[i] < 0 {
					continue candidates
				}
				rest[i] /= 2
			}
			sub := solve(rest)
			if sub < 0 {
				continue
			}
			if cost := bits.OnesCount(uint(s)) + 2*sub; best < 0 || cost < best {
				best = cost
			}
		}
		memo[key] = best
		return best
	}
	return solve(m.counts)
}

// subsetToggle is the combined on/off effect of pressing every button in
// the subset once.
func (m *machine) subsetToggle(subset int) lightState {
	var state lightState
	for j, button := range m.buttons {
		if subset&(1<<j) != 0 {
			state ^= button
		}
	}
	return state
}

// subsetPresses counts how many buttons in the subset toggle light i.
func (m *machine) subsetPresses(subset, i int) int {
	presses := 0
	for j, button := range m.buttons {
		if subset&(1<<j) != 0 && button&(1<<i) != 0 {
			presses++
		}
	}
	return presses
}

// Part1 sums the minimum presses to reach every machine's goal pattern.
// The input guarantees each machine is solvable.
func (p *Puzzle) Part1() string {
	total := parallel.Sum(len(p.machines), func(i int) uint64 {
		presses := p.machines[i].minTogglePresses()
		if presses < 0 {
			panic(fmt.Sprintf("day10: machine %d has no toggle solution", i))
		}
		return uint64(presses)
	})
	return fmt.Sprint(total)
}

// Part2 sums the minimum presses to reach every machine's press counts.
func (p *Puzzle) Part2() string {
	total := parallel.Sum(len(p.machines), func(i int) uint64 {
		presses := p.machines[i].minCountedPresses()
		if presses < 0 {
			panic(fmt.Sprintf("day10: machine %d has no counted solution", i))
		}
		return uint64(presses)
	})
	return fmt.Sprint(total)
}
