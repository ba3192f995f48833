package solve

import (
	"fmt"
	"io"
	"time"

	"github.com/kvantaro/aoc2025/bench"
	"github.com/kvantaro/aoc2025/input"
)

// Solution is one day's puzzle, fully parsed and ready to answer.
// Part1 and Part2 handle their own edge cases and return the answer as a
// string; a broken internal invariant panics rather than returning a
// default value.
type Solution interface {
	// Day returns the day number, 1..25.
	Day() int
	Part1() string
	Part2() string
}

// Factory builds a Solution from raw puzzle input text.
type Factory func(input string) (Solution, error)

// Run reads the day's real input under root, builds the solution, and
// writes the two answer lines to w. Any parse or I/O failure is returned
// for the caller (the binary's main) to report and exit on.
func Run(w io.Writer, root input.Root, day int, build Factory) error {
	content, err := root.ReadDay(day, false)
	if err != nil {
		return err
	}
	s, err := build(content)
	if err != nil {
		return fmt.Errorf("day %d: parse input: %w", day, err)
	}
	fmt.Fprintf(w, "Day %d Part 1: %s\n", s.Day(), s.Part1())
	fmt.Fprintf(w, "Day %d Part 2: %s\n", s.Day(), s.Part2())
	return nil
}

// BenchAll benchmarks the three phases of a day — Parse, Part 1, Part 2 —
// each under the given time budget, and returns their results in that
// fixed order. The parse phase swallows the error inside the timed
// closure only after one untimed probe has proven the input parses.
func BenchAll(root input.Root, day int, timeLimit time.Duration, example bool, build Factory) ([]bench.Result, error) {
	content, err := root.ReadDay(day, example)
	if err != nil {
		return nil, err
	}
	s, err := build(content)
	if err != nil {
		return nil, fmt.Errorf("day %d: parse input: %w", day, err)
	}
	results := []bench.Result{
		bench.MeasureMany("Parse", timeLimit, func() Solution {
			parsed, _ := build(content)
			return parsed
		}),
		bench.MeasureMany("Part 1", timeLimit, s.Part1),
		bench.MeasureMany("Part 2", timeLimit, s.Part2),
	}
	return results, nil
}
