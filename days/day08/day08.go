// Package day08 solves day 8: electrical junction boxes in 3-D space,
// connected shortest-distance-first. Part 1 unions a fixed number of
// closest pairs; part 2 keeps connecting nearest neighbors until
// everything is one circuit.
package day08

import (
	"container/heap"
	"fmt"
	"sort"
	"strings"

	"github.com/kvantaro/aoc2025/dsu"
	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// defaultMaxConnections is the number of closest pairs part 1 wires up on
// the real input; the worked example uses 10 via WithMaxConnections.
const defaultMaxConnections = 1000

// Option adjusts puzzle parameters.
type Option func(*Puzzle)

// WithMaxConnections overrides how many closest pairs part 1 connects.
func WithMaxConnections(n int) Option {
	return func(p *Puzzle) { p.maxConnections = n }
}

// Puzzle holds the junction coordinates, one row per box.
type Puzzle struct {
	nodes          *grid.Grid[int64]
	maxConnections int
}

// New parses one comma-separated coordinate triple per line.
func New(content string, opts ...Option) (*Puzzle, error) {
	nodes, err := grid.ParseFields(
		strings.ReplaceAll(content, ",", " "),
		input.Atoi[int64],
	)
	if err != nil {
		return nil, err
	}
	p := &Puzzle{nodes: nodes, maxConnections: defaultMaxConnections}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Day returns 8.
func (p *Puzzle) Day() int { return 8 }

// dist returns the squared Euclidean distance between boxes i and j.
func (p *Puzzle) dist(i, j int) int64 {
	var d int64
	for k := 0; k < p.nodes.Cols(); k++ {
		delta := p.nodes.At(i, k) - p.nodes.At(j, k)
		d += delta * delta
	}
	return d
}

// edge is a candidate connection; ordering is total over (dist, i, j) so
// selection among equal distances is deterministic.
type edge struct {
	dist int64
	i, j int
}

func (e edge) less(o edge) bool {
	if e.dist != o.dist {
		return e.dist < o.dist
	}
	if e.i != o.i {
		return e.i < o.i
	}
	return e.j < o.j
}

// maxHeap keeps the largest edge on top, so pushBounded can evict it.
type maxHeap []edge

func (h maxHeap) Len() int            { return len(h) }
func (h maxHeap) Less(a, b int) bool  { return h[b].less(h[a]) }
func (h maxHeap) Swap(a, b int)       { h[a], h[b] = h[b], h[a] }
func (h *maxHeap) Push(x any)         { *h = append(*h, x.(edge)) }
func (h *maxHeap) Pop() (x any)       { x, *h = (*h)[len(*h)-1], (*h)[:len(*h)-1]; return x }

// pushBounded inserts e, evicting the largest edge once the heap holds
// more than bound entries.
func pushBounded(h *maxHeap, e edge, bound int) {
	heap.Push(h, e)
	if h.Len() > bound {
		heap.Pop(h)
	}
}

// minHeap keeps the smallest edge on top for the greedy part 2 merge.
type minHeap []edge

func (h minHeap) Len() int            { return len(h) }
func (h minHeap) Less(a, b int) bool  { return h[a].less(h[b]) }
func (h minHeap) Swap(a, b int)       { h[a], h[b] = h[b], h[a] }
func (h *minHeap) Push(x any)         { *h = append(*h, x.(edge)) }
func (h *minHeap) Pop() (x any)       { x, *h = (*h)[len(*h)-1], (*h)[:len(*h)-1]; return x }

// Part1 wires the maxConnections closest pairs together and multiplies
// the sizes of the three largest resulting circuits. Pair generation fans
// out per box; each worker keeps its own bounded heap, merged afterwards.
func (p *Puzzle) Part1() string {
	n := p.nodes.Rows()
	closest := parallel.MapReduce(n, maxHeap(nil),
		func(i int) maxHeap {
			var h maxHeap
			for j := i + 1; j < n; j++ {
				pushBounded(&h, edge{dist: p.dist(i, j), i: i, j: j}, p.maxConnections)
			}
			return h
		},
		func(a, b maxHeap) maxHeap {
			for _, e := range b {
				pushBounded(&a, e, p.maxConnections)
			}
			return a
		})

	circuits := dsu.New(n)
	for _, e := range closest {
		circuits.Union(e.i, e.j)
	}
	sizes := circuits.ComponentSizes()
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))
	product := uint64(1)
	for _, s := range sizes[:min(3, len(sizes))] {
		product *= uint64(s)
	}
	return fmt.Sprint(product)
}

// nearest returns the closest box to i outside i's circuit.
// Panics if every box is already connected: callers stop at one circuit.
func nearest(p *Puzzle, circuits *dsu.DSU, i int) edge {
	n := p.nodes.Rows()
	root := circuits.Find(i)
	best := edge{dist: -1}
	for k := 0; k < n; k++ {
		if circuits.Find(k) == root {
			continue
		}
		if e := (edge{dist: p.dist(i, k), i: i, j: k}); best.dist < 0 || e.less(best) {
			best = e
		}
	}
	if best.dist < 0 {
		panic("day08: no disconnected box remains")
	}
	return best
}

// Part2 greedily processes the globally closest pair, connecting circuits
// until only one remains; the answer is the product of the X coordinates
// of the final pair. After each pop, only the popped box's nearest
// neighbor needs recomputing.
func (p *Puzzle) Part2() string {
	n := p.nodes.Rows()
	circuits := dsu.New(n)

	// Seed with each box's nearest neighbor, computed in parallel: on the
	// still-flat forest Find performs no compression, so the shared DSU is
	// read-only here.
	seed := make([]edge, n)
	parallel.ForEach(n, func(i int) {
		seed[i] = nearest(p, circuits, i)
	})
	h := minHeap(seed)
	heap.Init(&h)

	for h.Len() > 0 {
		e := heap.Pop(&h).(edge)
		circuits.Union(e.i, e.j)
		if circuits.Count() == 1 {
			return fmt.Sprint(p.nodes.At(e.i, 0) * p.nodes.At(e.j, 0))
		}
		heap.Push(&h, nearest(p, circuits, e.i))
	}
	panic("day08: ran out of edges before connecting all boxes")
}
