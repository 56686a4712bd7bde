// File: methods_vertices.go
// Role: Vertex lifecycle and vertex-level queries.
//
// Determinism:
//   - Vertices() returns elements in insertion order.
package core

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/collections"
)

// AddVertex registers e as a new vertex.
//
// Errors:
//   - ErrVertexExists if e is already present.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) AddVertex(e T) error {
	if g.vertices.Contains(e) {
		return fmt.Errorf("%w: %v", ErrVertexExists, e)
	}
	g.vertices.Put(e, &vertex[T]{
		elem:      e,
		neighbors: collections.NewOrderedMap[T, *edge[T]](0),
	})
	return nil
}

// RemoveVertex deletes e together with every edge incident to it.
//
// Errors:
//   - ErrVertexNotFound if e is absent.
//
// Complexity: O(deg(e)).
func (g *Graph[T]) RemoveVertex(e T) error {
	v, err := g.vertex(e)
	if err != nil {
		return err
	}
	for _, other := range v.neighbors.Keys() {
		if err := g.Disconnect(e, other); err != nil {
			return err
		}
	}
	return g.vertices.Remove(e)
}

// HasVertex reports whether e is a vertex of g.
func (g *Graph[T]) HasVertex(e T) bool {
	return g.vertices.Contains(e)
}

// Vertices returns every element in insertion order.
// Complexity: O(V).
func (g *Graph[T]) Vertices() []T {
	return g.vertices.Keys()
}

// VertexCount returns |V|.
func (g *Graph[T]) VertexCount() int { return g.vertices.Len() }

// EdgeCount returns |E|, counting each undirected edge once.
func (g *Graph[T]) EdgeCount() int { return g.edges }

// IsEmpty reports whether g has no vertices.
func (g *Graph[T]) IsEmpty() bool { return g.vertices.Len() == 0 }

// Degree returns the number of edges incident to e.
func (g *Graph[T]) Degree(e T) (int, error) {
	v, err := g.vertex(e)
	if err != nil {
		return 0, err
	}
	return v.neighbors.Len(), nil
}

// Neighbors returns e's adjacency in insertion order.
//
// Errors:
//   - ErrVertexNotFound if e is absent.
//
// Complexity: O(deg(e)).
func (g *Graph[T]) Neighbors(e T) ([]Neighbor[T], error) {
	v, err := g.vertex(e)
	if err != nil {
		return nil, err
	}
	out := make([]Neighbor[T], 0, v.neighbors.Len())
	v.neighbors.Each(func(to T, ed *edge[T]) bool {
		out = append(out, Neighbor[T]{To: to, Weight: ed.weight})
		return true
	})
	return out, nil
}

// vertex resolves e to its record or returns ErrVertexNotFound.
func (g *Graph[T]) vertex(e T) (*vertex[T], error) {
	v, err := g.vertices.Get(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVertexNotFound, e)
	}
	return v, nil
}
