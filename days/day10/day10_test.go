package day10_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day10"
	"github.com/kvantaro/aoc2025/input"
)

func newExample(t *testing.T) *day10.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(10, true)
	require.NoError(t, err)
	p, err := day10.New(content)
	require.NoError(t, err)
	return p
}

func TestPuzzle_Part1(t *testing.T) {
	p := newExample(t)
	assert.Equal(t, "4", p.Part1())
}

func TestPuzzle_Part2(t *testing.T) {
	p := newExample(t)
	assert.Equal(t, "6", p.Part2())
}

func TestNew_MissingGoal(t *testing.T) {
	_, err := day10.New("(0) (1) {1,1}\n")
	assert.Error(t, err)
}

func TestNew_MissingButtons(t *testing.T) {
	_, err := day10.New("[##] {1,1}\n")
	assert.Error(t, err)
}

func TestNew_MissingCounts(t *testing.T) {
	_, err := day10.New("[##] (0) (1)\n")
	assert.Error(t, err)
}

func TestNew_BadGoalCharacter(t *testing.T) {
	_, err := day10.New("[#x] (0) {1,0}\n")
	assert.Error(t, err)
}
