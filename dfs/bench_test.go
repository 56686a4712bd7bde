package dfs_test

import (
	"testing"

	"github.com/katalvlaran/labyrinth/dfs"
)

func BenchmarkTraverse_Chain10000(b *testing.B) {
	const n = 10000
	edges := make([][2]int, 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, [2]int{i - 1, i})
	}
	g := build(b, n, edges...)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = dfs.Traverse(g, 0)
	}
}
