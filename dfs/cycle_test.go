package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
)

func TestFindCycle_Forest(t *testing.T) {
	g := build(t, 6, [2]int{0, 1}, [2]int{1, 2}, [2]int{1, 3}, [2]int{4, 5})
	cycle, ok := dfs.FindCycle(g)
	assert.False(t, ok)
	assert.Nil(t, cycle)

	_, ok = dfs.FindCycle[int](nil)
	assert.False(t, ok)
}

func TestFindCycle_Triangle(t *testing.T) {
	g := build(t, 4, [2]int{3, 0}, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 0})
	cycle, ok := dfs.FindCycle(g)
	require.True(t, ok)
	assert.Equal(t, []int{0, 1, 2}, cycle)
}

func TestFindCycle_IsClosedWalk(t *testing.T) {
	// 3×3 grid contains four unit squares.
	g := core.NewGraph[int]()
	for i := 0; i < 9; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for i := 0; i < 9; i++ {
		if i%3 < 2 {
			require.NoError(t, g.Connect(i, i+1))
		}
		if i+3 < 9 {
			require.NoError(t, g.Connect(i, i+3))
		}
	}
	cycle, ok := dfs.FindCycle(g)
	require.True(t, ok)
	require.GreaterOrEqual(t, len(cycle), 3)
	for i := range cycle {
		a, b := cycle[i], cycle[(i+1)%len(cycle)]
		adj, err := g.AreNeighbors(a, b)
		require.NoError(t, err)
		assert.True(t, adj, "%d-%d", a, b)
	}
}

func TestVertexStates(t *testing.T) {
	states := []dfs.VertexState{dfs.White, dfs.Gray, dfs.Black}
	for i, s := range states {
		assert.Equal(t, dfs.VertexState(i), s)
	}
}
