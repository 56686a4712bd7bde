package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
)

func BenchmarkShortestPath_Grid60(b *testing.B) {
	const n = 60
	g := core.NewGraph[int](core.WithCapacity(n * n))
	for i := 0; i < n*n; i++ {
		_ = g.AddVertex(i)
	}
	for i := 0; i < n*n; i++ {
		w := float64(1 + i%7)
		if i%n+1 < n {
			_ = g.Connect(i, i+1, core.WithWeight(w))
		}
		if i+n < n*n {
			_ = g.Connect(i, i+n, core.WithWeight(w))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dijkstra.ShortestPath(g, 0, n*n-1)
	}
}
