// Command day12 prints the answers for day 12.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day12"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 12, func(s string) (solve.Solution, error) {
			return day12.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
