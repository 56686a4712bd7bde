package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/dijkstra"
)

// ExampleShortestPath prefers two cheap hops over one expensive edge.
func ExampleShortestPath() {
	g := core.NewGraph[string]()
	for _, v := range []string{"depot", "hub", "shop"} {
		_ = g.AddVertex(v)
	}
	_ = g.Connect("depot", "shop", core.WithWeight(10))
	_ = g.Connect("depot", "hub", core.WithWeight(3))
	_ = g.Connect("hub", "shop", core.WithWeight(4))

	p, err := dijkstra.ShortestPath(g, "depot", "shop")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(p.Vertices, p.Cost)
	// Output:
	// [depot hub shop] 7
}
