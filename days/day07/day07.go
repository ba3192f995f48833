// Package day07 solves day 7: a tachyon beam falling through a grid of
// splitters. The parse step precomputes, per cell, the distance to the
// next splitter directly below, so traversal skips empty space in one hop.
package day07

import (
	"fmt"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/parallel"
)

type cell uint8

const (
	cellEmpty cell = iota
	cellStart
	cellSplitter
)

type position struct {
	r, c int
}

// Puzzle holds the beam's start and the downward-shortcut table.
type Puzzle struct {
	start position
	// shortcut[r][c] is the number of rows from (r,c) down to the next
	// splitter, or past the bottom edge when none remains.
	shortcut *grid.Grid[int]
}

// New parses the grid ('.' empty, 'S' start, '^' splitter) and builds the
// shortcut table column by column, bottom up.
func New(content string) (*Puzzle, error) {
	cells, err := grid.ParseChars(content, func(ch rune) (cell, error) {
		switch ch {
		case '.':
			return cellEmpty, nil
		case 'S':
			return cellStart, nil
		case '^':
			return cellSplitter, nil
		default:
			return 0, fmt.Errorf("day07: invalid character %q in grid", ch)
		}
	})
	if err != nil {
		return nil, err
	}
	start := position{r: -1, c: -1}
	for r := 0; r < cells.Rows(); r++ {
		for c := 0; c < cells.Cols(); c++ {
			if cells.At(r, c) == cellStart {
				start = position{r: r, c: c}
			}
		}
	}
	if start.r < 0 {
		return nil, fmt.Errorf("day07: no start position in grid")
	}

	shortcut, err := grid.New[int](cells.Rows(), cells.Cols())
	if err != nil {
		return nil, err
	}
	parallel.ForEach(cells.Cols(), func(c int) {
		next := 0
		for r := cells.Rows() - 1; r >= 0; r-- {
			if cells.At(r, c) == cellSplitter {
				next = 0
			} else {
				next++
			}
			shortcut.Set(r, c, next)
		}
	})

	return &Puzzle{start: start, shortcut: shortcut}, nil
}

// Day returns 7.
func (p *Puzzle) Day() int { return 7 }

// Part1 counts the splitters the beam reaches: a depth-first walk where
// hitting a splitter spawns beams in the two adjacent columns.
func (p *Puzzle) Part1() string {
	width, height := p.shortcut.Cols(), p.shortcut.Rows()
	visited := make(map[position]bool)
	frontier := []position{p.start}
	for len(frontier) > 0 {
		pos := frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]
		nr := pos.r + p.shortcut.At(pos.r, pos.c)
		if nr >= height || visited[position{nr, pos.c}] {
			continue
		}
		visited[position{nr, pos.c}] = true
		for _, side := range []int{-1, 1} {
			if nc := pos.c + side; nc >= 0 && nc < width {
				frontier = append(frontier, position{nr, nc})
			}
		}
	}
	return fmt.Sprint(len(visited))
}

// Part2 counts distinct paths to the bottom: the same traversal, layer by
// layer, carrying per-position path counts and merging beams that meet.
func (p *Puzzle) Part2() string {
	width, height := p.shortcut.Cols(), p.shortcut.Rows()
	var total uint64
	frontier := map[position]uint64{p.start: 1}
	for len(frontier) > 0 {
		next := make(map[position]uint64, len(frontier))
		for pos, n := range frontier {
			nr := pos.r + p.shortcut.At(pos.r, pos.c)
			if nr >= height {
				// Fell through the bottom: every path ends here.
				total += n
				continue
			}
			for _, side := range []int{-1, 1} {
				if nc := pos.c + side; nc >= 0 && nc < width {
					next[position{nr, nc}] += n
				}
			}
		}
		frontier = next
	}
	return fmt.Sprint(total)
}
