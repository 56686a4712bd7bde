package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/bfs"
	"github.com/katalvlaran/labyrinth/core"
)

// ExampleShortestPath finds the fewest-hop route between two stations.
// Two routes exist from "A" to "E": A-B-C-D-E and the shortcut A-F-E.
func ExampleShortestPath() {
	g := core.NewGraph[string]()
	for _, s := range []string{"A", "B", "C", "D", "E", "F"} {
		_ = g.AddVertex(s)
	}
	_ = g.Connect("A", "B")
	_ = g.Connect("B", "C")
	_ = g.Connect("C", "D")
	_ = g.Connect("D", "E")
	_ = g.Connect("A", "F", core.WithWeight(10))
	_ = g.Connect("F", "E", core.WithWeight(10))

	path, err := bfs.ShortestPath(g, "A", "E")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(path)
	// Output:
	// [A F E]
}
