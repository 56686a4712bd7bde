package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// errBrokenLabels indicates a distance label with no matching predecessor.
	errBrokenLabels = errors.New("dijkstra: no predecessor satisfies distance labels")
)

// Path is the result of a point-to-point query.
type Path[T comparable] struct {
	// Vertices runs from origin to destination inclusive; empty if unreachable.
	Vertices []T

	// Cost is the sum of edge weights along Vertices; +Inf if unreachable.
	Cost float64
}

// Reachable reports whether the destination was reached.
func (p *Path[T]) Reachable() bool { return len(p.Vertices) > 0 }

// Hops returns the number of edges on the path, or -1 if unreachable.
func (p *Path[T]) Hops() int { return len(p.Vertices) - 1 }

// node is the per-search scratch record for one vertex.
type node[T comparable] struct {
	elem  T
	dist  float64
	index int
}

func (n *node[T]) Index() int               { return n.index }
func (n *node[T]) SetIndex(i int)           { n.index = i }
func (n *node[T]) Less(other *node[T]) bool { return n.dist < other.dist }

func newNode[T comparable](e T) *node[T] {
	return &node[T]{elem: e, dist: math.Inf(1)}
}
