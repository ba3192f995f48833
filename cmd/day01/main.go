// Command day01 prints the answers for day 1.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day01"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 1, func(s string) (solve.Solution, error) {
			return day01.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
