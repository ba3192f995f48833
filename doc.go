// Package aoc2025 is the root of an Advent of Code 2025 workspace: twelve
// daily puzzle solvers sharing a small toolkit of libraries.
//
// Layout:
//
//	input/    — project-root discovery, input file reading, parsing helpers
//	grid/     — generic rectangular 2D grids with three text parsers
//	dsu/      — disjoint set union (union-find)
//	parallel/ — index-parallel map/reduce helpers
//	bench/    — statistical micro-benchmark harness
//	report/   — CSV serialization of benchmark results
//	solve/    — the per-day Solution contract and shared runner
//	days/     — one package per solved day, plus the registry
//	cmd/      — one binary per day and the aoc CLI (run, bench)
//
// Real puzzle inputs live under inputs/dayNN.txt with committed examples
// at inputs/dayNN-example.txt; benchmark reports land in outputs/.
package aoc2025
