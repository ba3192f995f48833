package day04_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day04"
	"github.com/kvantaro/aoc2025/input"
)

func newExample(t *testing.T) *day04.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(4, true)
	require.NoError(t, err)
	p, err := day04.New(content)
	require.NoError(t, err)
	return p
}

// In the 4x4 example only the roll at (1,1) has four occupied neighbors.
func TestPart1(t *testing.T) {
	assert.Equal(t, "4", newExample(t).Part1())
}

// After the first sweep the surviving roll is freed, so all five go.
func TestPart2(t *testing.T) {
	assert.Equal(t, "5", newExample(t).Part2())
}

func TestPart2_DoesNotMutatePuzzle(t *testing.T) {
	p := newExample(t)
	require.Equal(t, "5", p.Part2())
	// A second run must see the original grid, not the emptied one.
	assert.Equal(t, "5", p.Part2())
}

func TestNew_BadInput(t *testing.T) {
	_, err := day04.New("@.x\n...")
	assert.Error(t, err)
}
