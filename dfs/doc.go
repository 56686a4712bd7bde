// Package dfs implements depth-first search on core.Graph: single-source and
// forest traversal, connected components, and cycle detection.
//
// Key features:
//   - Traverse(g, start, opts...): pre-order walk driven by a LIFO frontier
//     (core.Graph.Walk over a collections.Stack); a forest walk with
//     WithFullTraversal.
//   - Components(g): connected components, each in discovery order, ordered
//     by their first vertex in g.Vertices().
//   - FindCycle(g): one simple cycle of an undirected graph, if any. An acyclic
//     connected graph is a spanning tree, which is what maze carving yields.
//
// Complexity:
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Options:
//
//   - WithContext(ctx)      allows cancellation via context.Context.
//   - WithOnVisit(fn)       pre-order hook; error aborts traversal.
//   - WithFullTraversal()   restart from every unvisited vertex.
//
// Errors:
//
//   - ErrGraphNil               if g is nil.
//   - core.ErrVertexNotFound    if start is missing (single-source mode).
//   - context.Canceled          if ctx is done.
//   - any error returned by OnVisit.
package dfs
