// Package solve defines the contract every daily solver satisfies and the
// process-level plumbing shared by the day binaries: printing the two
// answer lines, and benchmarking a day's parse/part1/part2 phases.
package solve
