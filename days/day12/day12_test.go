package day12_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day12"
	"github.com/kvantaro/aoc2025/input"
)

func newExample(t *testing.T) *day12.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(12, true)
	require.NoError(t, err)
	p, err := day12.New(content)
	require.NoError(t, err)
	return p
}

func TestPuzzle_Part1(t *testing.T) {
	p := newExample(t)
	assert.Equal(t, "2", p.Part1())
}

func TestPuzzle_Part2(t *testing.T) {
	p := newExample(t)
	assert.Equal(t, "Final star on top of the tree", p.Part2())
}

func TestNew_NoRegions(t *testing.T) {
	_, err := day12.New("0:\n##\n")
	assert.Error(t, err)
}

func TestNew_BadRegion(t *testing.T) {
	_, err := day12.New("0:\n##\n\n4by4: 1\n")
	assert.Error(t, err)
}
