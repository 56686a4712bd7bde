// File: walk.go
// Role: Frontier-driven traversal shared by BFS and DFS.
//
// Contract:
//   - visit is called exactly once per element reachable from start,
//     start first.
//   - A vertex is marked when it is pushed, never when it is popped.
//   - Neighbors are pushed in insertion order.
//   - Marks are per call; concurrent readers of an unchanging graph may walk
//     independently.
package core

import (
	"errors"

	"github.com/katalvlaran/labyrinth/collections"
)

// ErrStopWalk may be returned by a visit callback to end a walk early.
// Walk then returns nil.
var ErrStopWalk = errors.New("core: stop walk")

// Walk visits every element reachable from start in the order dictated by
// frontier. A Queue yields breadth-first order, a Stack depth-first order.
// The frontier is expected to be empty; it is drained on return.
//
// A non-nil error from visit aborts the walk and is returned unchanged,
// except ErrStopWalk which ends the walk successfully.
//
// Errors:
//   - ErrVertexNotFound if start is absent.
//
// Complexity: O(V + E) time, O(V) extra memory.
func (g *Graph[T]) Walk(start T, visit func(T) error, frontier collections.Frontier[T]) error {
	if _, err := g.vertex(start); err != nil {
		return err
	}
	marked := make(map[T]struct{}, g.vertices.Len())
	marked[start] = struct{}{}
	frontier.Push(start)

	for !frontier.IsEmpty() {
		cur, err := frontier.Pop()
		if err != nil {
			return err
		}
		if visit != nil {
			if err := visit(cur); err != nil {
				drain(frontier)
				if errors.Is(err, ErrStopWalk) {
					return nil
				}
				return err
			}
		}
		v, _ := g.vertices.Get(cur)
		v.neighbors.Each(func(to T, _ *edge[T]) bool {
			if _, seen := marked[to]; !seen {
				marked[to] = struct{}{}
				frontier.Push(to)
			}
			return true
		})
	}
	return nil
}

// BFS walks breadth-first from start.
func (g *Graph[T]) BFS(start T, visit func(T) error) error {
	return g.Walk(start, visit, collections.NewQueue[T](g.vertices.Len()))
}

// DFS walks depth-first from start.
func (g *Graph[T]) DFS(start T, visit func(T) error) error {
	return g.Walk(start, visit, collections.NewStack[T](g.vertices.Len()))
}

// IsConnected reports whether every vertex is reachable from the first one.
// The empty graph is connected.
//
// Complexity: O(V + E).
func (g *Graph[T]) IsConnected() bool {
	n := g.vertices.Len()
	if n == 0 {
		return true
	}
	first := g.vertices.Keys()[0]
	seen := 0
	_ = g.BFS(first, func(T) error {
		seen++
		return nil
	})
	return seen == n
}

func drain[T any](f collections.Frontier[T]) {
	for !f.IsEmpty() {
		_, _ = f.Pop()
	}
}
