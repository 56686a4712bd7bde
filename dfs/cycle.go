// Cycle detection for undirected core.Graphs.
//
// A back-edge to any Gray vertex other than the DFS parent closes a cycle;
// the cycle is the Gray path from that vertex down to the current one.
// Edges are undirected and parallel edges cannot exist, so the parent edge
// is the only one that must be skipped.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
package dfs

import (
	"github.com/katalvlaran/labyrinth/core"
)

// FindCycle returns one simple cycle of g (first vertex not repeated) and
// true, or nil and false if g is a forest. Vertices are explored in
// g.Vertices() order, so the answer is deterministic.
func FindCycle[T comparable](g *core.Graph[T]) ([]T, bool) {
	if g == nil {
		return nil, false
	}
	c := &cycleFinder[T]{
		g:     g,
		state: make(map[T]VertexState, g.VertexCount()),
	}
	for _, v := range g.Vertices() {
		if c.state[v] != White {
			continue
		}
		if c.visit(v, v, false) {
			return c.cycle, true
		}
	}
	return nil, false
}

type cycleFinder[T comparable] struct {
	g     *core.Graph[T]
	state map[T]VertexState
	path  []T
	cycle []T
}

// visit explores v reached from parent; hasParent is false for roots.
func (c *cycleFinder[T]) visit(v, parent T, hasParent bool) bool {
	c.state[v] = Gray
	c.path = append(c.path, v)

	nbs, _ := c.g.Neighbors(v)
	for _, nb := range nbs {
		if hasParent && nb.To == parent {
			continue
		}
		switch c.state[nb.To] {
		case Gray:
			c.record(nb.To)
			return true
		case White:
			if c.visit(nb.To, v, true) {
				return true
			}
		}
	}

	c.path = c.path[:len(c.path)-1]
	c.state[v] = Black
	return false
}

// record copies the path suffix that starts at from.
func (c *cycleFinder[T]) record(from T) {
	for i := len(c.path) - 1; i >= 0; i-- {
		if c.path[i] == from {
			c.cycle = append([]T(nil), c.path[i:]...)
			return
		}
	}
}
