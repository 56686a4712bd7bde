// File: types.go
// Role: Graph, vertex and neighbor records; sentinel errors; functional options.
package core

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/labyrinth/collections"
)

// Error categories.
var (
	// ErrInvalidArgument groups every rejection of a malformed request.
	ErrInvalidArgument = errors.New("core: invalid argument")

	// ErrNotFound groups lookups of elements that are not in the graph.
	ErrNotFound = errors.New("core: not found")
)

// Sentinel errors for graph operations.
var (
	// ErrVertexExists indicates AddVertex on an element that is already present.
	ErrVertexExists = fmt.Errorf("%w: vertex already present", ErrInvalidArgument)

	// ErrVertexNotFound indicates an operation referenced an absent element.
	ErrVertexNotFound = fmt.Errorf("%w: vertex not found", ErrNotFound)

	// ErrLoopNotAllowed indicates an attempt to connect an element to itself.
	ErrLoopNotAllowed = fmt.Errorf("%w: self-loop not allowed", ErrInvalidArgument)

	// ErrBadWeight indicates a weight that is not strictly positive.
	ErrBadWeight = fmt.Errorf("%w: weight must be positive", ErrInvalidArgument)

	// ErrAlreadyConnected indicates Connect on a pair that already shares an edge.
	ErrAlreadyConnected = fmt.Errorf("%w: elements already connected", ErrInvalidArgument)

	// ErrNotConnected indicates an edge operation on a pair without an edge.
	ErrNotConnected = fmt.Errorf("%w: elements not connected", ErrInvalidArgument)
)

// DefaultWeight is the weight Connect uses when no WithWeight option is given.
const DefaultWeight = 1.0

// Neighbor is one entry of an element's adjacency, as returned by Neighbors.
type Neighbor[T comparable] struct {
	// To is the adjacent element.
	To T

	// Weight is the cost of the edge; identical on both sides.
	Weight float64
}

// vertex wraps one element and its adjacency map (element → edge record).
type vertex[T comparable] struct {
	elem      T
	neighbors *collections.OrderedMap[T, *edge[T]]
}

// edge is one side of an undirected edge. Both sides hold their own record,
// so weight updates must touch both.
type edge[T comparable] struct {
	to     *vertex[T]
	weight float64
}

// Graph is an undirected, weighted graph over comparable elements.
//
// vertices maps element → vertex in insertion order; edges counts unordered
// pairs. The zero value is not usable; call NewGraph.
type Graph[T comparable] struct {
	vertices *collections.OrderedMap[T, *vertex[T]]
	edges    int
}

// GraphOption configures a Graph before creation.
type GraphOption func(*graphConfig)

type graphConfig struct {
	capacity int
}

// WithCapacity pre-sizes the vertex registry for n elements.
func WithCapacity(n int) GraphOption {
	return func(c *graphConfig) {
		if n > 0 {
			c.capacity = n
		}
	}
}

// EdgeOption configures a single Connect call.
type EdgeOption func(*edgeConfig)

type edgeConfig struct {
	weight float64
}

// WithWeight sets the weight of the edge being created. It must be > 0.
func WithWeight(w float64) EdgeOption {
	return func(c *edgeConfig) { c.weight = w }
}

// NewGraph creates an empty Graph.
// Complexity: O(1) (plus O(capacity) for WithCapacity).
func NewGraph[T comparable](opts ...GraphOption) *Graph[T] {
	cfg := graphConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Graph[T]{vertices: collections.NewOrderedMap[T, *vertex[T]](cfg.capacity)}
}
