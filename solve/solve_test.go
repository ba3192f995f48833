package solve_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/solve"
)

// echoSolution answers with transformations of its raw input, so the tests
// can see exactly what content reached the factory.
type echoSolution struct {
	content string
}

func (echoSolution) Day() int        { return 7 }
func (s echoSolution) Part1() string { return strings.ToUpper(s.content) }
func (s echoSolution) Part2() string { return strings.ToLower(s.content) }

func echoFactory(content string) (solve.Solution, error) {
	return echoSolution{content: strings.TrimSpace(content)}, nil
}

// tempRoot creates a throwaway project root with one day-7 input file.
func tempRoot(t *testing.T, example bool, content string) input.Root {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "inputs"), 0o755))
	root := input.Root(dir)
	require.NoError(t, os.WriteFile(root.InputPath(7, example), []byte(content), 0o644))
	return root
}

func TestRun(t *testing.T) {
	root := tempRoot(t, false, "AbC\n")
	var out strings.Builder
	require.NoError(t, solve.Run(&out, root, 7, echoFactory))
	assert.Equal(t, "Day 7 Part 1: ABC\nDay 7 Part 2: abc\n", out.String())
}

func TestRun_MissingInput(t *testing.T) {
	var out strings.Builder
	err := solve.Run(&out, input.Root(t.TempDir()), 7, echoFactory)
	assert.Error(t, err)
	assert.Empty(t, out.String())
}

func TestRun_ParseFailure(t *testing.T) {
	root := tempRoot(t, false, "whatever\n")
	err := solve.Run(&strings.Builder{}, root, 7, func(string) (solve.Solution, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBenchAll(t *testing.T) {
	root := tempRoot(t, true, "AbC\n")
	results, err := solve.BenchAll(root, 7, time.Millisecond, true, echoFactory)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Parse", results[0].Name)
	assert.Equal(t, "Part 1", results[1].Name)
	assert.Equal(t, "Part 2", results[2].Name)
	for _, r := range results {
		assert.GreaterOrEqual(t, r.Iterations, uint64(1))
		assert.Equal(t, time.Millisecond, r.TimeLimit)
		assert.LessOrEqual(t, r.Fastest, r.Slowest)
	}
}

func TestBenchAll_ParseFailure(t *testing.T) {
	root := tempRoot(t, true, "bad\n")
	_, err := solve.BenchAll(root, 7, time.Millisecond, true, func(string) (solve.Solution, error) {
		return nil, assert.AnError
	})
	assert.ErrorIs(t, err, assert.AnError)
}
