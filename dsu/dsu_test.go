package dsu_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvantaro/aoc2025/dsu"
)

func TestNew_Singletons(t *testing.T) {
	d := dsu.New(4)
	assert.Equal(t, 4, d.Len())
	assert.Equal(t, 4, d.Count())
	for i := 0; i < 4; i++ {
		assert.Equal(t, i, d.Find(i))
		assert.Equal(t, 1, d.Size(i))
	}
}

func TestUnion(t *testing.T) {
	d := dsu.New(5)
	assert.True(t, d.Union(0, 1))
	assert.True(t, d.Union(1, 2))
	assert.False(t, d.Union(0, 2), "already in the same component")
	assert.Equal(t, 3, d.Count())
	assert.Equal(t, d.Find(0), d.Find(2))
	assert.NotEqual(t, d.Find(0), d.Find(3))
	assert.Equal(t, 3, d.Size(2))
	assert.Equal(t, 1, d.Size(4))
}

func TestComponentSizes(t *testing.T) {
	d := dsu.New(6)
	require.True(t, d.Union(0, 1))
	require.True(t, d.Union(2, 3))
	require.True(t, d.Union(3, 4))

	sizes := d.ComponentSizes()
	sort.Ints(sizes)
	assert.Equal(t, []int{1, 2, 3}, sizes)
}

func TestUnion_UntilSingleComponent(t *testing.T) {
	d := dsu.New(8)
	for i := 1; i < 8; i++ {
		require.True(t, d.Union(0, i))
	}
	assert.Equal(t, 1, d.Count())
	assert.Equal(t, 8, d.Size(7))
	assert.Equal(t, []int{8}, d.ComponentSizes())
}
