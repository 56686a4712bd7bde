package core_test

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ExampleGraph_BFS walks a small road network breadth-first.
func ExampleGraph_BFS() {
	g := core.NewGraph[string]()
	for _, c := range []string{"Kyiv", "Lviv", "Odesa", "Dnipro"} {
		_ = g.AddVertex(c)
	}
	_ = g.Connect("Kyiv", "Lviv", core.WithWeight(540))
	_ = g.Connect("Kyiv", "Odesa", core.WithWeight(475))
	_ = g.Connect("Odesa", "Dnipro", core.WithWeight(450))

	_ = g.BFS("Lviv", func(c string) error {
		fmt.Println(c)
		return nil
	})
	// Output:
	// Lviv
	// Kyiv
	// Odesa
	// Dnipro
}
