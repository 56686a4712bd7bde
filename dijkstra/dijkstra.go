package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/labyrinth/core"
	"github.com/katalvlaran/labyrinth/minheap"
)

// search holds the labels of one run.
type search[T comparable] struct {
	graph *core.Graph[T]
	nodes map[T]*node[T]
}

// ShortestPath returns a minimum-cost path from origin to destination.
//
// An unreachable destination yields an empty Vertices slice and Cost +Inf.
// origin == destination yields [origin] with Cost 0. When several shortest
// paths exist, the one found by first-candidate backtracking is returned.
func ShortestPath[T comparable](g *core.Graph[T], origin, destination T) (*Path[T], error) {
	if err := validate(g, origin, destination); err != nil {
		return nil, err
	}
	s := run(g, origin)

	end := s.nodes[destination]
	if math.IsInf(end.dist, 1) {
		return &Path[T]{Vertices: []T{}, Cost: end.dist}, nil
	}
	vertices, err := s.backtrack(origin, destination)
	if err != nil {
		return nil, err
	}
	return &Path[T]{Vertices: vertices, Cost: end.dist}, nil
}

// Distances returns the shortest distance from origin to every vertex of g;
// unreachable vertices map to +Inf.
func Distances[T comparable](g *core.Graph[T], origin T) (map[T]float64, error) {
	if err := validate(g, origin, origin); err != nil {
		return nil, err
	}
	s := run(g, origin)
	out := make(map[T]float64, len(s.nodes))
	for e, n := range s.nodes {
		out[e] = n.dist
	}
	return out, nil
}

func validate[T comparable](g *core.Graph[T], endpoints ...T) error {
	if g == nil {
		return ErrNilGraph
	}
	for _, e := range endpoints {
		if !g.HasVertex(e) {
			return fmt.Errorf("dijkstra: endpoint %v: %w", e, core.ErrVertexNotFound)
		}
	}
	return nil
}

// run labels every vertex with its distance from origin.
func run[T comparable](g *core.Graph[T], origin T) *search[T] {
	elems := g.Vertices()
	s := &search[T]{graph: g, nodes: make(map[T]*node[T], len(elems))}
	all := make([]*node[T], 0, len(elems))
	for _, e := range elems {
		n := newNode(e)
		s.nodes[e] = n
		all = append(all, n)
	}
	s.nodes[origin].dist = 0

	h := minheap.Build(all)
	for !h.IsEmpty() {
		u, _ := h.ExtractMin()
		nbs, _ := g.Neighbors(u.elem)
		for _, nb := range nbs {
			v := s.nodes[nb.To]
			if alt := u.dist + nb.Weight; alt < v.dist {
				v.dist = alt
				h.Reorder(v)
			}
		}
	}
	return s
}

// backtrack rebuilds the path from destination to origin using the relation
// dist(v) + w(v,u) == dist(u).
func (s *search[T]) backtrack(origin, destination T) ([]T, error) {
	path := []T{destination}
	cur := s.nodes[destination]
	for cur.elem != origin {
		nbs, err := s.graph.Neighbors(cur.elem)
		if err != nil {
			return nil, err
		}
		var prev *node[T]
		for _, nb := range nbs {
			v := s.nodes[nb.To]
			if v.dist+nb.Weight == cur.dist {
				prev = v
				break
			}
		}
		if prev == nil {
			return nil, fmt.Errorf("%w at %v", errBrokenLabels, cur.elem)
		}
		path = append(path, prev.elem)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
