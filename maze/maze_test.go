package maze_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/dfs"
	"github.com/katalvlaran/labyrinth/maze"
)

var sizes = [][2]int{{1, 1}, {1, 7}, {7, 1}, {2, 2}, {3, 3}, {5, 8}, {12, 4}, {20, 20}}

func TestRoleOf(t *testing.T) {
	cases := []struct {
		row, col int
		want     maze.Role
	}{
		{0, 0, maze.TopLeft},
		{0, 2, maze.Top},
		{0, 4, maze.TopRight},
		{1, 4, maze.Right},
		{3, 4, maze.BottomRight},
		{3, 2, maze.Bottom},
		{3, 0, maze.BottomLeft},
		{2, 0, maze.Left},
		{2, 2, maze.Interior},
	}
	for _, tc := range cases {
		p := maze.Position{Row: tc.row, Col: tc.col}
		assert.Equal(t, tc.want, maze.RoleOf(p, 4, 5), "%v", p)
	}
	assert.Equal(t, maze.TopLeft, maze.RoleOf(maze.Position{}, 1, 1))
	assert.Equal(t, "bottom-left", maze.BottomLeft.String())
}

func TestDirection(t *testing.T) {
	for _, d := range maze.Directions {
		assert.Equal(t, d, d.Opposite().Opposite())
		p := maze.Position{Row: 5, Col: 5}
		assert.Equal(t, p, p.Step(d).Step(d.Opposite()))
	}
	assert.Equal(t, maze.South, maze.North.Opposite())
	assert.Equal(t, maze.West, maze.East.Opposite())
}

func TestGenerate_InvalidArguments(t *testing.T) {
	for _, dims := range [][2]int{{0, 3}, {3, 0}, {256, 1}, {1, 256}, {-1, -1}} {
		_, err := maze.Generate(dims[0], dims[1])
		require.ErrorIs(t, err, maze.ErrInvalidDimensions, "%v", dims)
	}
	_, err := maze.Generate(3, 3, maze.WithWallRemovalRatio(1.5))
	require.ErrorIs(t, err, maze.ErrInvalidRatio)
}

func TestGenerate_PerfectBeforeRemoval(t *testing.T) {
	for _, dims := range sizes {
		rows, cols := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			m, err := maze.Generate(rows, cols, maze.WithSeed(11), maze.WithWallRemovalRatio(0))
			require.NoError(t, err)

			assert.Equal(t, rows*cols-1, m.OpenWallPairs())
			assert.True(t, m.Graph().IsConnected())
			_, cyclic := dfs.FindCycle(m.Graph())
			assert.False(t, cyclic, "carved maze must be a tree")
		})
	}
}

func TestGenerate_RemovalOnlyAddsPassages(t *testing.T) {
	for _, dims := range sizes {
		rows, cols := dims[0], dims[1]
		t.Run(fmt.Sprintf("%dx%d", rows, cols), func(t *testing.T) {
			tree, err := maze.Generate(rows, cols, maze.WithSeed(5), maze.WithWallRemovalRatio(0))
			require.NoError(t, err)
			m, err := maze.Generate(rows, cols, maze.WithSeed(5))
			require.NoError(t, err)

			assert.True(t, m.Graph().IsConnected())
			extra := m.OpenWallPairs() - (rows*cols - 1)
			assert.GreaterOrEqual(t, extra, 0)
			assert.LessOrEqual(t, extra, int(maze.DefaultWallRemovalRatio*float64(rows*cols)))
			if rows < 3 || cols < 3 {
				assert.Zero(t, extra)
			}

			for _, c := range tree.Cells() {
				got, err := m.Cell(c.Row, c.Col)
				require.NoError(t, err)
				assert.Equal(t, c.Score, got.Score)
				for _, d := range maze.Directions {
					if !c.HasWall(d) {
						assert.False(t, got.HasWall(d), "%v %s reclosed", c.Position, d)
					}
				}
			}
		})
	}
}

func TestGenerate_Boundary(t *testing.T) {
	m, err := maze.Generate(9, 6, maze.WithSeed(3))
	require.NoError(t, err)
	start, ok := m.Start()
	require.True(t, ok)
	end, _ := m.End()
	assert.Equal(t, 0, start.Col)
	assert.Equal(t, 5, end.Col)

	openings := 0
	for _, c := range m.Cells() {
		assert.GreaterOrEqual(t, c.Score, 0)
		assert.Less(t, c.Score, 16)
		assert.Equal(t, maze.RoleOf(c.Position, 9, 6), c.Role)
		assert.Equal(t, c.Position == start, c.Start)
		assert.Equal(t, c.Position == end, c.End)
		for _, d := range maze.Directions {
			q := c.Step(d)
			inside := q.Row >= 0 && q.Row < 9 && q.Col >= 0 && q.Col < 6
			if !inside {
				if !c.HasWall(d) {
					openings++
				}
				continue
			}
			nb, err := m.Cell(q.Row, q.Col)
			require.NoError(t, err)
			assert.Equal(t, c.HasWall(d), nb.HasWall(d.Opposite()), "%v %s", c.Position, d)
		}
	}
	assert.Equal(t, 2, openings)

	startCell, _ := m.Cell(start.Row, start.Col)
	assert.False(t, startCell.HasWall(maze.West))
	endCell, _ := m.Cell(end.Row, end.Col)
	assert.False(t, endCell.HasWall(maze.East))

	_, err = m.Cell(9, 0)
	require.ErrorIs(t, err, maze.ErrOutOfBounds)
}

func TestGenerate_SingleCell(t *testing.T) {
	m, err := maze.Generate(1, 1, maze.WithSeed(99))
	require.NoError(t, err)
	start, _ := m.Start()
	end, _ := m.End()
	assert.Equal(t, start, end)

	c, err := m.Cell(0, 0)
	require.NoError(t, err)
	assert.True(t, c.Start)
	assert.True(t, c.End)
	assert.Equal(t, maze.Walls(0).With(maze.North).With(maze.South), c.Walls)

	sol, err := m.Solve()
	require.NoError(t, err)
	assert.Equal(t, []maze.Position{{Row: 0, Col: 0}}, sol.Path)
	assert.Zero(t, sol.Cost)
}

func TestGenerate_SeedReproducible(t *testing.T) {
	a, err := maze.Generate(17, 23, maze.WithSeed(2024))
	require.NoError(t, err)
	b, err := maze.Generate(17, 23, maze.WithSeed(2024))
	require.NoError(t, err)

	ab, _ := a.MarshalBinary()
	bb, _ := b.MarshalBinary()
	assert.Equal(t, ab, bb)
}

func TestSolve(t *testing.T) {
	m, err := maze.Generate(15, 15, maze.WithSeed(8))
	require.NoError(t, err)
	sol, err := m.Solve()
	require.NoError(t, err)
	require.NotEmpty(t, sol.Path)

	start, _ := m.Start()
	end, _ := m.End()
	assert.Equal(t, start, sol.Path[0])
	assert.Equal(t, end, sol.Path[len(sol.Path)-1])

	cost := 0.0
	for i := 1; i < len(sol.Path); i++ {
		a, b := sol.Path[i-1], sol.Path[i]
		ca, _ := m.Cell(a.Row, a.Col)
		cb, _ := m.Cell(b.Row, b.Col)
		w, err := m.Graph().Weight(a, b)
		require.NoError(t, err, "%v-%v must be a passage", a, b)
		assert.Equal(t, float64(1+ca.Score+cb.Score), w)
		cost += w
	}
	assert.Equal(t, cost, sol.Cost)
	assert.True(t, sol.Contains(end))

	again, err := m.Solve()
	require.NoError(t, err)
	assert.Same(t, sol, again)
}
