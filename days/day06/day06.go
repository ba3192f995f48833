// Package day06 solves day 6: cephalopod arithmetic worksheets. Numbers
// sit in fixed-width columns with meaningful left/right alignment; the
// last input line carries one operator per column.
package day06

import (
	"fmt"
	"strings"

	"github.com/kvantaro/aoc2025/grid"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/parallel"
)

type operator uint8

const (
	opAdd operator = iota
	opMul
)

type alignment uint8

const (
	alignLeft alignment = iota
	alignRight
)

// alignedValue is a parsed number plus how it sat inside its column.
// The alignment only matters for part 2's digit-column reading.
type alignedValue struct {
	value uint64
	align alignment
}

// Puzzle holds one alignedValue per worksheet cell (rows × columns) and
// one operator per column.
type Puzzle struct {
	numbers   *grid.Grid[alignedValue]
	operators []operator
}

// New parses the worksheet. The operator line is the last one; column
// widths are recovered from the gaps between its operators, and any
// characters past the last declared width form the final column.
func New(content string) (*Puzzle, error) {
	lines := strings.Split(strings.TrimRight(content, "\n"), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("day06: expected number rows and an operator line")
	}
	opLine := lines[len(lines)-1]

	operators, err := input.ParseFields(opLine, func(s string) (operator, error) {
		switch s {
		case "+":
			return opAdd, nil
		case "*":
			return opMul, nil
		default:
			return 0, fmt.Errorf("day06: unknown operator %q", s)
		}
	})
	if err != nil {
		return nil, err
	}

	// The spacing between operators defines the column widths: each gap
	// plus one character for the operator itself. The trailing column's
	// width is left implicit.
	inner := strings.Trim(strings.TrimSpace(opLine), "+*")
	inner = strings.ReplaceAll(inner, "*", "+")
	gaps := strings.Split(inner, "+")
	widths := make([]int, len(gaps))
	for i, g := range gaps {
		widths[i] = len(g) + 1
	}

	numbers, err := grid.ParseFixedWidth(
		strings.Join(lines[:len(lines)-1], "\n"),
		widths,
		parseAligned,
	)
	if err != nil {
		return nil, err
	}
	if numbers.Cols() != len(operators) {
		return nil, fmt.Errorf("day06: %d number columns but %d operators",
			numbers.Cols(), len(operators))
	}
	return &Puzzle{numbers: numbers, operators: operators}, nil
}

// parseAligned reads a column slice: a leading space means the number was
// right-aligned in its column.
func parseAligned(s string) (alignedValue, error) {
	v, err := input.Uatoi[uint64](s)
	if err != nil {
		return alignedValue{}, fmt.Errorf("day06: bad number %q: %w", s, err)
	}
	if strings.HasPrefix(s, " ") {
		return alignedValue{value: v, align: alignRight}, nil
	}
	return alignedValue{value: v, align: alignLeft}, nil
}

// Day returns 6.
func (p *Puzzle) Day() int { return 6 }

// apply folds vals with the column's operator.
func apply(op operator, vals []uint64) uint64 {
	var acc uint64
	if op == opMul {
		acc = 1
	}
	for _, v := range vals {
		if op == opMul {
			acc *= v
		} else {
			acc += v
		}
	}
	return acc
}

// column returns the c-th column of the worksheet.
func (p *Puzzle) column(c int) []alignedValue {
	col := make([]alignedValue, p.numbers.Rows())
	for r := range col {
		col[r] = p.numbers.At(r, c)
	}
	return col
}

// Part1 evaluates each column as its numbers under its operator, columns
// in parallel, and sums the results.
func (p *Puzzle) Part1() string {
	total := parallel.Sum(len(p.operators), func(c int) uint64 {
		col := p.column(c)
		vals := make([]uint64, len(col))
		for i, av := range col {
			vals[i] = av.value
		}
		return apply(p.operators[c], vals)
	})
	return fmt.Sprint(total)
}

// digits returns the number of decimal digits in n (1 for zero).
func digits(n uint64) int {
	if n == 0 {
		return 1
	}
	d := 0
	for ; n > 0; n /= 10 {
		d++
	}
	return d
}

// digitRow expands av into exactly width digit slots, -1 marking empty
// slots: a left-aligned number occupies the leading slots, a
// right-aligned one the trailing slots.
func digitRow(av alignedValue, width int) []int8 {
	row := make([]int8, width)
	for i := range row {
		row[i] = -1
	}
	n := digits(av.value)
	offset := 0
	if av.align == alignRight {
		offset = width - n
	}
	v := av.value
	for i := n - 1; i >= 0; i-- {
		row[offset+i] = int8(v % 10)
		v /= 10
	}
	return row
}

// Part2 reads each column the way it is written on paper: the numbers'
// digits are stacked honoring alignment, every resulting digit-column is
// read top to bottom as its own number (empty slots skipped), and those
// numbers feed the column's operator.
func (p *Puzzle) Part2() string {
	total := parallel.Sum(len(p.operators), func(c int) uint64 {
		col := p.column(c)
		width := 1
		for _, av := range col {
			width = max(width, digits(av.value))
		}
		vals := make([]uint64, width)
		for _, av := range col {
			for k, d := range digitRow(av, width) {
				if d >= 0 {
					vals[k] = vals[k]*10 + uint64(d)
				}
			}
		}
		return apply(p.operators[c], vals)
	})
	return fmt.Sprint(total)
}
