package bfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/core"
)

// ShortestPath returns a fewest-hop path from origin to destination,
// both endpoints included.
//
// The path is rebuilt from hop labels alone: starting at destination, each
// step moves to the first neighbor whose label is exactly one less than the
// current one, until origin (label 0) is reached.
//
//   - origin == destination yields [origin] without searching.
//   - An unreachable destination yields an empty, non-nil slice and no error.
//
// Errors: ErrGraphNil, core.ErrVertexNotFound.
// Complexity: O(V + E).
func ShortestPath[T comparable](g *core.Graph[T], origin, destination T) ([]T, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	for _, e := range [2]T{origin, destination} {
		if !g.HasVertex(e) {
			return nil, fmt.Errorf("bfs: endpoint %v: %w", e, core.ErrVertexNotFound)
		}
	}
	if origin == destination {
		return []T{origin}, nil
	}

	res, err := Traverse(g, origin)
	if err != nil {
		return nil, err
	}
	hops, ok := res.Depth[destination]
	if !ok {
		return []T{}, nil
	}

	path := make([]T, hops+1)
	path[hops] = destination
	cur := destination
	for d := hops - 1; d >= 0; d-- {
		neighbors, err := g.Neighbors(cur)
		if err != nil {
			return nil, err
		}
		for _, nb := range neighbors {
			if label, seen := res.Depth[nb.To]; seen && label == d {
				cur = nb.To
				break
			}
		}
		path[d] = cur
	}
	return path, nil
}
