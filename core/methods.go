// File: methods.go
// Role: Whole-graph operations: Clear, Clone, Equal, String.
package core

import (
	"fmt"
	"strings"
)

// Clear removes every vertex and edge. The graph stays usable.
func (g *Graph[T]) Clear() {
	g.vertices.Clear()
	g.edges = 0
}

// Clone returns a deep copy of g. Vertex order, per-vertex neighbor order and
// weights are preserved, so searches on the copy break ties the same way.
// Complexity: O(V + E).
func (g *Graph[T]) Clone() *Graph[T] {
	c := NewGraph[T](WithCapacity(g.vertices.Len()))
	for _, e := range g.vertices.Keys() {
		_ = c.AddVertex(e)
	}
	g.vertices.Each(func(a T, v *vertex[T]) bool {
		cv, _ := c.vertices.Get(a)
		v.neighbors.Each(func(b T, ed *edge[T]) bool {
			to, _ := c.vertices.Get(b)
			cv.neighbors.Put(b, &edge[T]{to: to, weight: ed.weight})
			return true
		})
		return true
	})
	c.edges = g.edges
	return c
}

// Equal reports whether g and other hold the same elements and the same
// weighted edges. Insertion order is ignored.
func (g *Graph[T]) Equal(other *Graph[T]) bool {
	if other == nil {
		return false
	}
	if g.vertices.Len() != other.vertices.Len() || g.edges != other.edges {
		return false
	}
	equal := true
	g.vertices.Each(func(a T, v *vertex[T]) bool {
		ov, err := other.vertices.Get(a)
		if err != nil || ov.neighbors.Len() != v.neighbors.Len() {
			equal = false
			return false
		}
		v.neighbors.Each(func(b T, ed *edge[T]) bool {
			oe, err := ov.neighbors.Get(b)
			if err != nil || oe.weight != ed.weight {
				equal = false
			}
			return equal
		})
		return equal
	})
	return equal
}

// String renders one line per vertex: "a -> b(1), c(2.5)".
func (g *Graph[T]) String() string {
	var sb strings.Builder
	g.vertices.Each(func(a T, v *vertex[T]) bool {
		fmt.Fprintf(&sb, "%v ->", a)
		sep := " "
		v.neighbors.Each(func(b T, ed *edge[T]) bool {
			fmt.Fprintf(&sb, "%s%v(%g)", sep, b, ed.weight)
			sep = ", "
			return true
		})
		sb.WriteByte('\n')
		return true
	})
	return sb.String()
}
