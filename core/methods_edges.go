// File: methods_edges.go
// Role: Edge lifecycle (Connect, Disconnect, SetWeight) and pair queries.
//
// Invariants:
//   - Both endpoints hold an edge record with identical weight.
//   - No self-loops; at most one edge per unordered pair.
//   - EdgeCount() equals half the sum of all degrees.
package core

import (
	"fmt"
	"math"
)

// Connect adds an undirected edge {a,b}. The weight defaults to
// DefaultWeight and may be overridden with WithWeight.
//
// Errors:
//   - ErrLoopNotAllowed if a == b.
//   - ErrBadWeight if the weight is not > 0.
//   - ErrVertexNotFound if either element is absent.
//   - ErrAlreadyConnected if {a,b} already exists.
//
// Complexity: O(1) amortized.
func (g *Graph[T]) Connect(a, b T, opts ...EdgeOption) error {
	cfg := edgeConfig{weight: DefaultWeight}
	for _, opt := range opts {
		opt(&cfg)
	}
	if a == b {
		return fmt.Errorf("%w: %v", ErrLoopNotAllowed, a)
	}
	if err := validateWeight(cfg.weight); err != nil {
		return err
	}
	va, err := g.vertex(a)
	if err != nil {
		return err
	}
	vb, err := g.vertex(b)
	if err != nil {
		return err
	}
	if va.neighbors.Contains(b) {
		return fmt.Errorf("%w: %v-%v", ErrAlreadyConnected, a, b)
	}
	va.neighbors.Put(b, &edge[T]{to: vb, weight: cfg.weight})
	vb.neighbors.Put(a, &edge[T]{to: va, weight: cfg.weight})
	g.edges++
	return nil
}

// Disconnect removes the edge {a,b}.
//
// Errors:
//   - ErrVertexNotFound if either element is absent.
//   - ErrNotConnected if the pair shares no edge.
func (g *Graph[T]) Disconnect(a, b T) error {
	va, vb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	if err := va.neighbors.Remove(b); err != nil {
		return fmt.Errorf("%w: %v-%v", ErrNotConnected, a, b)
	}
	_ = vb.neighbors.Remove(a)
	g.edges--
	return nil
}

// AreNeighbors reports whether {a,b} is an edge.
//
// Errors:
//   - ErrVertexNotFound if either element is absent.
func (g *Graph[T]) AreNeighbors(a, b T) (bool, error) {
	va, _, err := g.pair(a, b)
	if err != nil {
		return false, err
	}
	return va.neighbors.Contains(b), nil
}

// Weight returns the weight of edge {a,b}.
//
// Errors:
//   - ErrVertexNotFound if either element is absent.
//   - ErrNotConnected if the pair shares no edge.
func (g *Graph[T]) Weight(a, b T) (float64, error) {
	va, _, err := g.pair(a, b)
	if err != nil {
		return 0, err
	}
	ed, err := va.neighbors.Get(b)
	if err != nil {
		return 0, fmt.Errorf("%w: %v-%v", ErrNotConnected, a, b)
	}
	return ed.weight, nil
}

// SetWeight replaces the weight of edge {a,b} on both sides.
//
// Errors:
//   - ErrBadWeight if w is not > 0.
//   - ErrVertexNotFound if either element is absent.
//   - ErrNotConnected if the pair shares no edge.
func (g *Graph[T]) SetWeight(a, b T, w float64) error {
	if err := validateWeight(w); err != nil {
		return err
	}
	va, vb, err := g.pair(a, b)
	if err != nil {
		return err
	}
	ab, err := va.neighbors.Get(b)
	if err != nil {
		return fmt.Errorf("%w: %v-%v", ErrNotConnected, a, b)
	}
	ba, _ := vb.neighbors.Get(a)
	ab.weight = w
	ba.weight = w
	return nil
}

// pair resolves both endpoints, reporting the first missing one.
func (g *Graph[T]) pair(a, b T) (*vertex[T], *vertex[T], error) {
	va, err := g.vertex(a)
	if err != nil {
		return nil, nil, err
	}
	vb, err := g.vertex(b)
	if err != nil {
		return nil, nil, err
	}
	return va, vb, nil
}

// validateWeight rejects zero, negative and NaN weights.
func validateWeight(w float64) error {
	if !(w > 0) || math.IsInf(w, 1) {
		return fmt.Errorf("%w: %v", ErrBadWeight, w)
	}
	return nil
}
