package dfs

import (
	"context"
	"errors"
)

// VertexState represents the DFS visitation state of a vertex.
type VertexState int

// Visitation states.
const (
	White VertexState = iota // White: the vertex has not been visited yet.
	Gray                     // Gray: the vertex is on the current DFS path.
	Black                    // Black: the vertex and all its descendants have been explored.
)

// ErrGraphNil is returned when a nil *core.Graph is passed.
var ErrGraphNil = errors.New("dfs: graph is nil")

// Option configures optional behavior of DFS traversal.
type Option[T comparable] func(*Options[T])

// Options holds configurable parameters for DFS traversal.
type Options[T comparable] struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a vertex is popped (pre-order).
	// Returning an error aborts traversal with that error.
	OnVisit func(e T) error

	// FullTraversal, if true, restarts from every unvisited vertex, covering
	// disconnected components.
	FullTraversal bool
}

// DefaultOptions returns Options with a background context, no hook and
// single-source traversal.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{Ctx: context.Background()}
}

// WithContext sets the Context for DFS traversal. A nil ctx has no effect.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit[T comparable](fn func(e T) error) Option[T] {
	return func(o *Options[T]) {
		o.OnVisit = fn
	}
}

// WithFullTraversal enables forest traversal.
func WithFullTraversal[T comparable]() Option[T] {
	return func(o *Options[T]) {
		o.FullTraversal = true
	}
}

// Result captures the outcome of a depth-first traversal.
type Result[T comparable] struct {
	// Order records vertices in visit sequence (pre-order).
	Order []T

	// Visited flags which vertices were reached.
	Visited map[T]bool
}
