// Command day06 prints the answers for day 6.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day06"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 6, func(s string) (solve.Solution, error) {
			return day06.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
