// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core.Graphs, driven by the indexable min-heap of package minheap.
//
// Algorithm:
//
//  1. Every vertex gets a scratch node: distance +Inf, origin 0.
//  2. The heap is built bottom-up over all nodes in O(V).
//  3. Repeatedly extract the minimum node u; for each incident edge (u,v,w),
//     if u.dist + w < v.dist, lower v.dist and Reorder(v) in place.
//  4. When the heap is empty every distance is final. The path is rebuilt
//     backward from the destination: at each step the predecessor is the
//     first neighbor v (in enumeration order) with v.dist + w(u,v) == u.dist.
//
// No predecessor map is kept; the distance labels alone determine the path.
// Scratch nodes carry the heap index, so the graph itself is never mutated and
// one graph may serve any number of searches.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V)
//
// Weights are positive by construction (core.Graph rejects weight ≤ 0).
//
// Errors (sentinel):
//
//   - ErrNilGraph              if the graph pointer is nil.
//   - core.ErrVertexNotFound   if origin or destination is absent.
package dijkstra
