// Command aoc runs or benchmarks the daily solvers. With no day argument
// it covers every registered day.
package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/kvantaro/aoc2025/days"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/report"
	"github.com/kvantaro/aoc2025/solve"
)

var rootCmd = &cobra.Command{
	Use:           "aoc",
	Short:         "Run and benchmark the daily puzzle solvers",
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
	},
}

var runCmd = &cobra.Command{
	Use:   "run [day]",
	Short: "Print the answers for one day, or for every day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, selected, err := resolveDays(args)
		if err != nil {
			return err
		}
		for _, day := range selected {
			build, err := days.Factory(day)
			if err != nil {
				return err
			}
			if err := solve.Run(cmd.OutOrStdout(), root, day, build); err != nil {
				return err
			}
		}
		return nil
	},
}

var (
	timeLimit  time.Duration
	example    bool
	cpuProfile bool
)

var benchCmd = &cobra.Command{
	Use:   "bench [day]",
	Short: "Benchmark parse, part 1 and part 2, writing a CSV per day",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		root, selected, err := resolveDays(args)
		if err != nil {
			return err
		}
		if cpuProfile {
			defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
		}
		for _, day := range selected {
			build, err := days.Factory(day)
			if err != nil {
				return err
			}
			results, err := solve.BenchAll(root, day, timeLimit, example, build)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Day %d:\n", day)
			for _, r := range results {
				fmt.Fprintln(cmd.OutOrStdout(), r)
			}
			if err := report.WriteCSV(root, day, results); err != nil {
				return err
			}
		}
		return nil
	},
}

// resolveDays locates the repository root and turns the optional day
// argument into the list of days to process.
func resolveDays(args []string) (input.Root, []int, error) {
	root, err := input.FindRoot()
	if err != nil {
		return "", nil, err
	}
	if len(args) == 0 {
		return root, days.All(), nil
	}
	day, err := strconv.Atoi(args[0])
	if err != nil {
		return "", nil, fmt.Errorf("invalid day %q: %w", args[0], err)
	}
	return root, []int{day}, nil
}

func init() {
	benchCmd.Flags().DurationVar(&timeLimit, "time-limit", time.Second,
		"time budget per measured phase")
	benchCmd.Flags().BoolVar(&example, "example", false,
		"benchmark against the example input instead of the real one")
	benchCmd.Flags().BoolVar(&cpuProfile, "cpu-profile", false,
		"write a CPU profile for the benchmark run")
	rootCmd.AddCommand(runCmd, benchCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
