package day05_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day05"
	"github.com/kvantaro/aoc2025/input"
)

func newExample(t *testing.T) *day05.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(5, true)
	require.NoError(t, err)
	p, err := day05.New(content)
	require.NoError(t, err)
	return p
}

// Ranges merge to 3-5 and 10-20; IDs 4, 13 and 19 land inside.
func TestPart1(t *testing.T) {
	assert.Equal(t, "3", newExample(t).Part1())
}

// Merged sizes: 3 + 11.
func TestPart2(t *testing.T) {
	assert.Equal(t, "14", newExample(t).Part2())
}

func TestNew_MissingSeparator(t *testing.T) {
	_, err := day05.New("1-5\n7\n")
	assert.Error(t, err)
}

func TestNew_BadRange(t *testing.T) {
	_, err := day05.New("1..5\n\n7\n")
	assert.Error(t, err)
}
