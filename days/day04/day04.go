// Package day04 solves day 4: paper rolls on a warehouse grid. A roll is
// reachable by forklift when fewer than four of its eight neighbors are
// occupied; part 2 keeps removing reachable rolls until a fixpoint.
package day04

import (
	"fmt"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/parallel"
)

// neighborOffsets spans the eight surrounding cells.
var neighborOffsets = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}

// Puzzle holds the occupancy grid: true where a roll sits.
type Puzzle struct {
	rolls *grid.Grid[bool]
}

// New parses a grid of '.' (empty) and '@' (roll) characters.
func New(content string) (*Puzzle, error) {
	rolls, err := grid.ParseChars(content, func(c rune) (bool, error) {
		switch c {
		case '.':
			return false, nil
		case '@':
			return true, nil
		default:
			return false, fmt.Errorf("day04: invalid character %q in grid", c)
		}
	})
	if err != nil {
		return nil, err
	}
	return &Puzzle{rolls: rolls}, nil
}

// Day returns 4.
func (p *Puzzle) Day() int { return 4 }

// findRemovable marks every occupied cell with fewer than four occupied
// neighbors, fanning rows out across workers.
func findRemovable(rolls *grid.Grid[bool]) *grid.Grid[bool] {
	removable, err := grid.New[bool](rolls.Rows(), rolls.Cols())
	if err != nil {
		panic(fmt.Sprintf("day04: removable grid: %v", err))
	}
	parallel.ForEach(rolls.Rows(), func(r int) {
		for c := 0; c < rolls.Cols(); c++ {
			if !rolls.At(r, c) {
				continue
			}
			occupied := 0
			for _, d := range neighborOffsets {
				nr, nc := r+d[0], c+d[1]
				if rolls.InBounds(nr, nc) && rolls.At(nr, nc) {
					occupied++
				}
			}
			removable.Set(r, c, occupied < 4)
		}
	})
	return removable
}

// countTrue counts set cells row-parallel.
func countTrue(g *grid.Grid[bool]) int {
	return parallel.Sum(g.Rows(), func(r int) int {
		n := 0
		for _, v := range g.Row(r) {
			if v {
				n++
			}
		}
		return n
	})
}

// Part1 counts the rolls removable from the initial grid. One sweep.
func (p *Puzzle) Part1() string {
	return fmt.Sprint(countTrue(findRemovable(p.rolls)))
}

// Part2 repeatedly removes every removable roll until none is left to
// remove, counting the total taken. Straight simulation.
func (p *Puzzle) Part2() string {
	rolls := p.rolls.Clone()
	total := 0
	for {
		removable := findRemovable(rolls)
		removed := countTrue(removable)
		if removed == 0 {
			break
		}
		total += removed
		parallel.ForEach(rolls.Rows(), func(r int) {
			for c := 0; c < rolls.Cols(); c++ {
				if removable.At(r, c) {
					rolls.Set(r, c, false)
				}
			}
		})
	}
	return fmt.Sprint(total)
}
