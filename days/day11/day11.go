// Package day11 solves day 11: counting paths through a directed acyclic
// graph of machines, plain in part 1 and restricted to paths through two
// checkpoint machines in part 2.
package day11

import (
	"fmt"
	"strings"

	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// Puzzle holds the machine graph: incoming and outgoing adjacency per node
// plus a name lookup. A synthetic "out" sink terminates the graph.
type Puzzle struct {
	inNodes  []map[int]bool
	outNodes [][]int
	names    map[string]int
}

// New parses one machine per line, a name followed by the machines it
// feeds into, e.g. "you: dac fft".
func New(content string) (*Puzzle, error) {
	machines, err := input.ParseLines(
		strings.ReplaceAll(content, ":", ""),
		func(line string) ([]string, error) {
			fields := strings.Fields(line)
			if len(fields) == 0 {
				return nil, fmt.Errorf("day11: empty machine definition")
			}
			return fields, nil
		},
	)
	if err != nil {
		return nil, err
	}
	machines = append(machines, []string{"out"})

	names := make(map[string]int, len(machines))
	for i, m := range machines {
		names[m[0]] = i
	}
	outNodes := make([][]int, len(machines))
	inNodes := make([]map[int]bool, len(machines))
	for i := range inNodes {
		inNodes[i] = make(map[int]bool)
	}
	for i, m := range machines {
		for _, peer := range m[1:] {
			j, ok := names[peer]
			if !ok {
				return nil, fmt.Errorf("day11: %s not found in machine definitions", peer)
			}
			outNodes[i] = append(outNodes[i], j)
			inNodes[j][i] = true
		}
	}
	return &Puzzle{inNodes: inNodes, outNodes: outNodes, names: names}, nil
}

// Day returns 11.
func (p *Puzzle) Day() int { return 11 }

type transfer[T any] struct {
	from, to int
	state    T
}

// topologyDP runs a dynamic program over the graph in topological order,
// from start to goal. Each frontier node first has update applied to its
// accumulated state, then pushes the result to its children, merged in
// with transit. Cycles simply never drain their incoming edges, so their
// contribution is dropped rather than looping forever.
func topologyDP[T any](
	p *Puzzle,
	start, goal int,
	defaultState, startState T,
	transit func(a, b T) T,
	update func(state T, node int) T,
) T {
	remaining := make([]map[int]bool, len(p.inNodes))
	for i, ins := range p.inNodes {
		remaining[i] = make(map[int]bool, len(ins))
		for from := range ins {
			remaining[i][from] = true
		}
	}
	count := make([]T, len(remaining))
	for i := range count {
		count[i] = defaultState
	}
	count[start] = startState

	var frontier []int
	for i, ins := range remaining {
		if len(ins) == 0 {
			frontier = append(frontier, i)
		}
	}
	visited := make(map[int]bool)
	for len(frontier) > 0 {
		for _, node := range frontier {
			count[node] = update(count[node], node)
			visited[node] = true
		}
		if visited[goal] {
			break
		}
		// Fan-out is gathered in parallel, then applied sequentially so
		// no two writes to the same child race.
		edits := make([][]transfer[T], len(frontier))
		parallel.ForEach(len(frontier), func(i int) {
			from := frontier[i]
			for _, to := range p.outNodes[from] {
				edits[i] = append(edits[i], transfer[T]{from: from, to: to, state: count[from]})
			}
		})
		for _, batch := range edits {
			for _, e := range batch {
				count[e.to] = transit(count[e.to], e.state)
				delete(remaining[e.to], e.from)
			}
		}
		frontier = frontier[:0]
		for i, ins := range remaining {
			if len(ins) == 0 && !visited[i] {
				frontier = append(frontier, i)
			}
		}
	}
	return count[goal]
}

// Part1 counts all paths from "you" to "out".
func (p *Puzzle) Part1() string {
	paths := topologyDP(
		p, p.names["you"], p.names["out"],
		uint64(0), uint64(1),
		func(a, b uint64) uint64 { return a + b },
		func(state uint64, _ int) uint64 { return state },
	)
	return fmt.Sprint(paths)
}

// checkpoints partitions path counts by which of the two checkpoint
// machines the paths have visited so far.
type checkpoints struct {
	neither, first, second, both uint64
}

// Part2 counts the paths from "svr" to "out" that pass through both "dac"
// and "fft". Visiting a checkpoint shifts the counts into the buckets that
// record it, and merging paths adds the buckets element-wise.
func (p *Puzzle) Part2() string {
	dac, fft := p.names["dac"], p.names["fft"]
	paths := topologyDP(
		p, p.names["svr"], p.names["out"],
		checkpoints{}, checkpoints{neither: 1},
		func(a, b checkpoints) checkpoints {
			return checkpoints{
				neither: a.neither + b.neither,
				first:   a.first + b.first,
				second:  a.second + b.second,
				both:    a.both + b.both,
			}
		},
		func(state checkpoints, node int) checkpoints {
			switch node {
			case dac:
				return checkpoints{first: state.neither + state.first, both: state.second + state.both}
			case fft:
				return checkpoints{second: state.neither + state.second, both: state.first + state.both}
			default:
				return state
			}
		},
	)
	return fmt.Sprint(paths.both)
}
