// Package day09 solves day 9: the largest rectangle spanned by two
// corners of a rectilinear polygon, first unconstrained, then required to
// fit entirely inside the polygon.
package day09

import (
	"fmt"
	"strings"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// Puzzle holds the polygon vertices, one (x,y) row per line, in boundary
// order; consecutive vertices (wrapping around) share an axis.
type Puzzle struct {
	nodes *grid.Grid[int64]
}

// New parses one comma-separated coordinate pair per line.
func New(content string) (*Puzzle, error) {
	nodes, err := grid.ParseFields(
		strings.ReplaceAll(content, ",", " "),
		input.Atoi[int64],
	)
	if err != nil {
		return nil, err
	}
	return &Puzzle{nodes: nodes}, nil
}

// Day returns 9.
func (p *Puzzle) Day() int { return 9 }

// measure is the tile count of the rectangle spanned by vertices i and j:
// both corners included, so each side is |delta|+1.
func (p *Puzzle) measure(i, j int) uint64 {
	area := uint64(1)
	for k := 0; k < p.nodes.Cols(); k++ {
		delta := p.nodes.At(i, k) - p.nodes.At(j, k)
		if delta < 0 {
			delta = -delta
		}
		area *= uint64(delta) + 1
	}
	return area
}

// maxOverPairs fans the (i,j) i<j pair scan out per i and keeps the
// largest accepted measure.
func (p *Puzzle) maxOverPairs(accept func(i, j int) bool) uint64 {
	n := p.nodes.Rows()
	return parallel.Max(n, 0, func(i int) uint64 {
		var best uint64
		for j := i + 1; j < n; j++ {
			if accept(i, j) {
				best = max(best, p.measure(i, j))
			}
		}
		return best
	})
}

// Part1 is the unconstrained brute force over all vertex pairs.
func (p *Puzzle) Part1() string {
	return fmt.Sprint(p.maxOverPairs(func(int, int) bool { return true }))
}

// boundaryEdge is a polygon side, stored as its two vertex indices.
type boundaryEdge struct {
	a, b int
}

// edges splits the polygon boundary into vertical sides (equal x) and
// horizontal sides (the rest).
func (p *Puzzle) edges() (vertical, horizontal []boundaryEdge) {
	n := p.nodes.Rows()
	for i := 0; i < n; i++ {
		e := boundaryEdge{a: i, b: (i + 1) % n}
		if p.nodes.At(e.a, 0) == p.nodes.At(e.b, 0) {
			vertical = append(vertical, e)
		} else {
			horizontal = append(horizontal, e)
		}
	}
	return vertical, horizontal
}

// ordered returns (min, max) of two coordinates.
func ordered(a, b int64) (int64, int64) {
	if a > b {
		return b, a
	}
	return a, b
}

// intersects reports whether any edge pokes strictly into the open
// rectangle spanned by xs×ys. The polygon boundary separates valid from
// invalid tiles, so an edge strictly inside means the rectangle crosses
// outside the polygon somewhere. transpose flips the roles of the axes so
// the same test serves vertical edges.
func (p *Puzzle) intersects(xs, ys [2]int64, edges []boundaryEdge, transpose bool) bool {
	x1, x2 := ordered(xs[0], xs[1])
	y1, y2 := ordered(ys[0], ys[1])
	for _, e := range edges {
		var ex1, ex2, ey int64
		if transpose {
			ex1, ex2 = ordered(p.nodes.At(e.a, 1), p.nodes.At(e.b, 1))
			ey = p.nodes.At(e.b, 0)
		} else {
			ex1, ex2 = ordered(p.nodes.At(e.a, 0), p.nodes.At(e.b, 0))
			ey = p.nodes.At(e.a, 1)
		}
		if ey > y1 && ey < y2 && ex1 < x2 && ex2 > x1 {
			return true
		}
	}
	return false
}

// Part2 keeps only rectangles no boundary edge pokes into, i.e. those
// fully contained in the polygon, and maximizes their measure.
func (p *Puzzle) Part2() string {
	vertical, horizontal := p.edges()
	best := p.maxOverPairs(func(i, j int) bool {
		xs := [2]int64{p.nodes.At(i, 0), p.nodes.At(j, 0)}
		ys := [2]int64{p.nodes.At(i, 1), p.nodes.At(j, 1)}
		return !p.intersects(xs, ys, horizontal, false) &&
			!p.intersects(ys, xs, vertical, true)
	})
	return fmt.Sprint(best)
}
