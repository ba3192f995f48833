package report_test

import (
	"encoding/csv"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/bench"
	"github.com/kvantaro/aoc2025/input"
	"github.com/kvantaro/aoc2025/report"
)

func sampleResult(name string) bench.Result {
	return bench.Result{
		Name:       name,
		TimeLimit:  time.Second,
		Iterations: 100,
		Fastest:    time.Millisecond,
		Slowest:    3 * time.Millisecond,
		Mean:       2 * time.Millisecond,
		StdDev:     time.Millisecond / 2,
		Median:     2 * time.Millisecond,
		MAD:        time.Millisecond / 4,
	}
}

func TestWriteCSV(t *testing.T) {
	root := input.Root(t.TempDir())
	results := []bench.Result{sampleResult("Parse"), sampleResult("Part 1"), sampleResult("Part 2")}
	require.NoError(t, report.WriteCSV(root, 3, results))

	f, err := os.Open(root.OutputPath(3))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	require.Len(t, rows, 4, "header plus one row per result")
	assert.Equal(t, results[0].Columns(), rows[0])
	assert.Equal(t, "Parse", rows[1][0])
	assert.Equal(t, "Part 1", rows[2][0])
	assert.Equal(t, "Part 2", rows[3][0])
	for _, row := range rows[1:] {
		assert.Equal(t, "100", row[1])
		assert.Equal(t, "1s", row[2])
		assert.True(t, strings.HasSuffix(row[5], "ms"), "mean %q should use ms", row[5])
	}
}

// TestWriteCSV_Truncates: rewriting a day's report replaces the old file
// instead of appending to it.
func TestWriteCSV_Truncates(t *testing.T) {
	root := input.Root(t.TempDir())
	many := []bench.Result{sampleResult("a"), sampleResult("b"), sampleResult("c")}
	require.NoError(t, report.WriteCSV(root, 1, many))
	require.NoError(t, report.WriteCSV(root, 1, many[:1]))

	f, err := os.Open(root.OutputPath(1))
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}

func TestWriteCSV_NoEntries(t *testing.T) {
	err := report.WriteCSV(input.Root(t.TempDir()), 1, []bench.Result{})
	assert.ErrorIs(t, err, report.ErrNoEntries)
}
