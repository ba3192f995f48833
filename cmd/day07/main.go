// Command day07 prints the answers for day 7.
package main

import (
	"fmt"
	"os"

	"github.com/kvantaro/aoc2025/days/day07"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

func main() {
	root, err := input.FindRoot()
	if err == nil {
		err = solve.Run(os.Stdout, root, 7, func(s string) (solve.Solution, error) {
			return day07.New(s)
		})
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
