// Command day08 prints the answers for day 8.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day08"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 8, func(s string) (solve.Solution, error) {
			return day08.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
