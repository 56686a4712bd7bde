package dfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dfs"
)

// build creates a graph over 0..n-1 with the given edges.
func build(t testing.TB, n int, edges ...[2]int) *core.Graph[int] {
	t.Helper()
	g := core.NewGraph[int]()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(i))
	}
	for _, e := range edges {
		require.NoError(t, g.Connect(e[0], e[1]))
	}
	return g
}

func TestTraverse_NilGraph(t *testing.T) {
	_, err := dfs.Traverse[int](nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestTraverse_StartNotFound(t *testing.T) {
	g := build(t, 1)
	_, err := dfs.Traverse(g, 5)
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestTraverse_PreOrder(t *testing.T) {
	// 0-{1,2}, 1-3, 2-4
	g := build(t, 5, [2]int{0, 1}, [2]int{0, 2}, [2]int{1, 3}, [2]int{2, 4})
	res, err := dfs.Traverse(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2, 4, 1, 3}, res.Order)
	assert.Len(t, res.Visited, 5)
}

func TestTraverse_Forest(t *testing.T) {
	g := build(t, 5, [2]int{0, 1}, [2]int{3, 4})
	res, err := dfs.Traverse(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = dfs.Traverse(g, -1, dfs.WithFullTraversal[int]())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, res.Order)
}

func TestTraverse_OnVisitError(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	halt := errors.New("halt")
	res, err := dfs.Traverse(g, 0, dfs.WithOnVisit(func(v int) error {
		if v == 1 {
			return halt
		}
		return nil
	}))
	require.ErrorIs(t, err, halt)
	assert.Equal(t, []int{0, 1}, res.Order)
}

func TestTraverse_Cancellation(t *testing.T) {
	g := build(t, 3, [2]int{0, 1}, [2]int{1, 2})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := dfs.Traverse(g, 0, dfs.WithContext[int](ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestComponents(t *testing.T) {
	g := build(t, 6, [2]int{0, 3}, [2]int{1, 4}, [2]int{4, 5})
	assert.Equal(t, [][]int{{0, 3}, {1, 4, 5}, {2}}, dfs.Components(g))
	assert.Nil(t, dfs.Components(core.NewGraph[int]()))
}
