package day07_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/days/day07"
	"github.com/kvantaro/aoc2025/input"
)

func newExample(t *testing.T) *day07.Puzzle {
	t.Helper()
	root, err := input.FindRoot()
	require.NoError(t, err)
	content, err := root.ReadDay(7, true)
	require.NoError(t, err)
	p, err := day07.New(content)
	require.NoError(t, err)
	return p
}

// The beam hits the middle splitter, then one splitter on each bottom
// corner column.
func TestPart1(t *testing.T) {
	assert.Equal(t, "3", newExample(t).Part1())
}

// Both split beams reconverge over the bottom-center column before
// falling out.
func TestPart2(t *testing.T) {
	assert.Equal(t, "2", newExample(t).Part2())
}

func TestNew_NoStart(t *testing.T) {
	_, err := day07.New("...\n^..")
	assert.Error(t, err)
}

func TestNew_BadCharacter(t *testing.T) {
	_, err := day07.New(".S.\n.x.")
	assert.Error(t, err)
}
