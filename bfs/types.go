package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrNoPath is returned by Result.PathTo for an element the search never reached.
	ErrNoPath = errors.New("bfs: no path")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Traverse is invoked.
type Option[T comparable] func(*Options[T])

// Options holds parameters and callbacks to customize BFS execution.
type Options[T comparable] struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when visiting a vertex. If it returns an error,
	// the search aborts and propagates that error.
	OnVisit func(e T, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// FilterNeighbor can skip edges by returning false.
	FilterNeighbor func(curr, neighbor T) bool

	err error
}

// DefaultOptions returns Options with a background context, no depth limit,
// no filtering and a no-op visit hook.
func DefaultOptions[T comparable]() Options[T] {
	return Options[T]{
		Ctx:            context.Background(),
		OnVisit:        func(T, int) error { return nil },
		FilterNeighbor: func(_, _ T) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[T comparable](ctx context.Context) Option[T] {
	return func(o *Options[T]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the search.
func WithOnVisit[T comparable](fn func(e T, depth int) error) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth[T comparable](d int) Option[T] {
	return func(o *Options[T]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbors when fn returns false.
func WithFilterNeighbor[T comparable](fn func(curr, neighbor T) bool) Option[T] {
	return func(o *Options[T]) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a BFS traversal.
type Result[T comparable] struct {
	Order  []T
	Depth  map[T]int
	Parent map[T]T
}

// PathTo reconstructs the BFS-tree path from the start vertex to dest.
// Returns ErrNoPath if dest was not reached.
func (r *Result[T]) PathTo(dest T) ([]T, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("%w to %v", ErrNoPath, dest)
	}
	path := []T{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	reverse(path)
	return path, nil
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
