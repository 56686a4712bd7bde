package dfs

import (
	"fmt"

	"github.com/katalvlaran/labyrinth/collections"
	"github.com/katalvlaran/labyrinth/core"
)

// walker encapsulates state during DFS.
type walker[T comparable] struct {
	graph *core.Graph[T]
	opts  Options[T]
	res   *Result[T]
}

// Traverse performs depth-first search on g from start. With
// WithFullTraversal it covers every component and start is ignored.
// On error the partial Result is returned.
func Traverse[T comparable](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, fn := range opts {
		fn(&o)
	}
	if !o.FullTraversal && !g.HasVertex(start) {
		return nil, fmt.Errorf("dfs: start %v: %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph: g,
		opts:  o,
		res: &Result[T]{
			Order:   make([]T, 0, n),
			Visited: make(map[T]bool, n),
		},
	}

	if !o.FullTraversal {
		return w.res, w.tree(start)
	}
	for _, v := range g.Vertices() {
		if w.res.Visited[v] {
			continue
		}
		if err := w.tree(v); err != nil {
			return w.res, err
		}
	}
	return w.res, nil
}

// tree walks the component of root.
func (w *walker[T]) tree(root T) error {
	stack := collections.NewStack[T](0)
	return w.graph.Walk(root, w.visit, stack)
}

func (w *walker[T]) visit(e T) error {
	if err := w.opts.Ctx.Err(); err != nil {
		return err
	}
	w.res.Visited[e] = true
	w.res.Order = append(w.res.Order, e)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(e); err != nil {
			return fmt.Errorf("dfs: OnVisit error at %v: %w", e, err)
		}
	}
	return nil
}

// Components returns the connected components of g. Each component lists its
// vertices in DFS visit order; components are ordered by their first vertex
// in g.Vertices(). A nil or empty graph yields nil.
func Components[T comparable](g *core.Graph[T]) [][]T {
	if g == nil || g.IsEmpty() {
		return nil
	}
	var out [][]T
	seen := make(map[T]bool, g.VertexCount())
	for _, v := range g.Vertices() {
		if seen[v] {
			continue
		}
		var comp []T
		_ = g.DFS(v, func(e T) error {
			seen[e] = true
			comp = append(comp, e)
			return nil
		})
		out = append(out, comp)
	}
	return out
}
