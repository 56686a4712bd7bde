package core_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/core"
)

// gridGraph builds an n×n 4-neighborhood grid.
func gridGraph(n int) *core.Graph[int] {
	g := core.NewGraph[int](core.WithCapacity(n * n))
	for i := 0; i < n*n; i++ {
		_ = g.AddVertex(i)
	}
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			id := r*n + c
			if c+1 < n {
				_ = g.Connect(id, id+1)
			}
			if r+1 < n {
				_ = g.Connect(id, id+n)
			}
		}
	}
	return g
}

func BenchmarkBFS_Grid100(b *testing.B) {
	g := gridGraph(100)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.BFS(0, nil)
	}
}

func BenchmarkConnect(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = gridGraph(30)
	}
}
