package input_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/input"
)

func TestParseLines(t *testing.T) {
	got, err := input.ParseLines("1\n2\n3\n", input.Atoi[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

// TestParseLines_NoTrailingNewline: the last line counts whether or not
// the file ends with a newline.
func TestParseLines_NoTrailingNewline(t *testing.T) {
	got, err := input.ParseLines("1\n2", input.Atoi[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestParseLines_FirstErrorAborts(t *testing.T) {
	calls := 0
	_, err := input.ParseLines("1\nx\n3\n", func(s string) (int, error) {
		calls++
		return input.Atoi[int](s)
	})
	assert.Error(t, err)
	assert.Equal(t, 2, calls, "parsing should stop at the first failure")
}

func TestParseCommaSeparated(t *testing.T) {
	got, err := input.ParseCommaSeparated(" 1, 2 ,3 ", input.Atoi[int])
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestParseFields(t *testing.T) {
	got, err := input.ParseFields("  a \t b\nc ", func(s string) (string, error) {
		return s, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, got)
}

func TestAtoi(t *testing.T) {
	n, err := input.Atoi[int64](" -42 ")
	require.NoError(t, err)
	assert.Equal(t, int64(-42), n)

	u, err := input.Atoi[uint8]("7")
	require.NoError(t, err)
	assert.Equal(t, uint8(7), u)

	_, err = input.Atoi[int]("4x2")
	assert.Error(t, err)
}

func TestUatoi_RejectsNegative(t *testing.T) {
	_, err := input.Uatoi[uint64]("-1")
	assert.Error(t, err)

	u, err := input.Uatoi[uint64]("18446744073709551615")
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), u)
}

func ExampleParseLines() {
	ops, _ := input.ParseLines("10\n20\n30\n", input.Atoi[int])
	fmt.Println(ops)
	// Output: [10 20 30]
}
