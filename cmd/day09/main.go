// Command day09 prints the answers for day 9.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day09"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 9, func(s string) (solve.Solution, error) {
			return day09.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
