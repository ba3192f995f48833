// Package days registers every daily solver under its day number, so the
// binaries can build any day from its raw input.
package days

import (
	"fmt"
	"sort"

	"github.com/kvantaro/aoc2025/days/day01"
	"github.com/kvantaro/aoc2025/days/day02"
	"github.com/kvantaro/aoc2025/days/day03"
	"github.com/kvantaro/aoc2025/days/day04"
	"github.com/kvantaro/aoc2025/days/day05"
	"github.com/kvantaro/aoc2025/days/day06"
	"github.com/kvantaro/aoc2025/days/day07"
	"github.com/kvantaro/aoc2025/days/day08"
	"github.com/kvantaro/aoc2025/days/day09"
	"github.com/kvantaro/aoc2025/days/day10"
	"github.com/kvantaro/aoc2025/days/day11"
	"github.com/kvantaro/aoc2025/days/day12"
	"github.com/kvantaro/aoc2025/solve"
)

// factories maps day numbers to solver constructors. Each entry wraps the
// day package's New so its concrete *Puzzle satisfies solve.Solution.
var factories = map[int]solve.Factory{
	1:  func(s string) (solve.Solution, error) { return day01.New(s) },
	2:  func(s string) (solve.Solution, error) { return day02.New(s) },
	3:  func(s string) (solve.Solution, error) { return day03.New(s) },
	4:  func(s string) (solve.Solution, error) { return day04.New(s) },
	5:  func(s string) (solve.Solution, error) { return day05.New(s) },
	6:  func(s string) (solve.Solution, error) { return day06.New(s) },
	7:  func(s string) (solve.Solution, error) { return day07.New(s) },
	8:  func(s string) (solve.Solution, error) { return day08.New(s) },
	9:  func(s string) (solve.Solution, error) { return day09.New(s) },
	10: func(s string) (solve.Solution, error) { return day10.New(s) },
	11: func(s string) (solve.Solution, error) { return day11.New(s) },
	12: func(s string) (solve.Solution, error) { return day12.New(s) },
}

// Factory returns the solver constructor for a day.
func Factory(day int) (solve.Factory, error) {
	f, ok := factories[day]
	if !ok {
		return nil, fmt.Errorf("days: no solver registered for day %d", day)
	}
	return f, nil
}

// All returns the registered day numbers in ascending order.
func All() []int {
	out := make([]int, 0, len(factories))
	for day := range factories {
		out = append(out, day)
	}
	sort.Ints(out)
	return out
}
