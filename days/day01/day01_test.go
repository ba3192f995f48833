package day01_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day01"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/report"
	"github.com/kvantaro/aoc2025/solve"
)

func newExample(t *testing.T) *day01.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(1, true)
	require.NoError(t, err)
	p, err := day01.New(content)
	require.NoError(t, err)
	return p
}

func TestPart1(t *testing.T) {
	assert.Equal(t, "3", newExample(t).Part1())
}

func TestPart2(t *testing.T) {
	assert.Equal(t, "5", newExample(t).Part2())
}

func TestNew_BadInput(t *testing.T) {
	for _, in := range []string{"", "X10", "L", "Rten"} {
		_, err := day01.New(in)
		assert.Error(t, err, "input %q", in)
	}
}

func TestPart2_FullCircles(t *testing.T) {
	// A single rotation of 1000 passes position 0 ten times.
	p, err := day01.New("R1000")
	require.NoError(t, err)
	assert.Equal(t, "10", p.Part2())
}

// TestBenchmarkReport runs the statistical harness with a tiny budget and
// writes the day's CSV report, same as `aoc bench 1 --example` does.
func TestBenchmarkReport(t *testing.T) {
	root, err := input.FindRoot()
	require.NoError(t, err)
	results, err := solve.BenchAll(root, 1, 10*time.Millisecond, true,
		func(s string) (solve.Solution, error) { return day01.New(s) })
	require.NoError(t, err)
	require.NoError(t, report.WriteCSV(root, 1, results))
}
