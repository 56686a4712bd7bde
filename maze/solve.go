package maze

import (
	"github.com/katalvlaran/labyrinth/dijkstra"
)

// Solve returns the cheapest path from start to end. The result is computed
// once and cached; later calls return the same Solution.
//
// An unreachable end yields a Solution with an empty Path and +Inf Cost.
//
// Errors: ErrNoEndpoints if start and end could not be recovered.
func (m *Maze) Solve() (*Solution, error) {
	if m.solution != nil {
		return m.solution, nil
	}
	if !m.hasEndpoints {
		return nil, ErrNoEndpoints
	}
	p, err := dijkstra.ShortestPath(m.graph, m.start, m.end)
	if err != nil {
		return nil, err
	}
	m.solution = &Solution{Path: p.Vertices, Cost: p.Cost}
	m.log.Debug("maze solved", "cells", len(p.Vertices), "cost", p.Cost)
	return m.solution, nil
}
