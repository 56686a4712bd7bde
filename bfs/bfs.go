package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/labyrinth/collections"
	"github.com/katalvlaran/labyrinth/core"
)

// queueItem pairs an element with its BFS depth.
type queueItem[T comparable] struct {
	elem  T
	depth int
}

// walker encapsulates mutable BFS state.
type walker[T comparable] struct {
	graph *core.Graph[T]
	opts  Options[T]
	ctx   context.Context
	queue *collections.Queue[queueItem[T]]
	res   *Result[T]
}

// Traverse runs breadth-first search on g starting from start.
//
// Errors: ErrGraphNil, core.ErrVertexNotFound, ErrOptionViolation, context
// errors, or a wrapped OnVisit error. On error the partial Result is returned.
func Traverse[T comparable](g *core.Graph[T], start T, opts ...Option[T]) (*Result[T], error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions[T]()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("bfs: start %v: %w", start, core.ErrVertexNotFound)
	}

	n := g.VertexCount()
	w := &walker[T]{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: collections.NewQueue[queueItem[T]](n),
		res: &Result[T]{
			Order:  make([]T, 0, n),
			Depth:  make(map[T]int, n),
			Parent: make(map[T]T, n),
		},
	}
	w.res.Depth[start] = 0
	w.queue.Push(queueItem[T]{elem: start})

	return w.res, w.loop()
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker[T]) loop() error {
	for !w.queue.IsEmpty() {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item, _ := w.queue.Pop()
		w.res.Order = append(w.res.Order, item.elem)
		if err := w.opts.OnVisit(item.elem, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", item.elem, err)
		}
		if err := w.enqueueNeighbors(item); err != nil {
			return err
		}
	}
	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, and enqueues each unseen
// neighbor, marking it at push time.
func (w *walker[T]) enqueueNeighbors(item queueItem[T]) error {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	neighbors, err := w.graph.Neighbors(item.elem)
	if err != nil {
		return err
	}
	for _, nb := range neighbors {
		if _, seen := w.res.Depth[nb.To]; seen {
			continue
		}
		if !w.opts.FilterNeighbor(item.elem, nb.To) {
			continue
		}
		w.res.Depth[nb.To] = next
		w.res.Parent[nb.To] = item.elem
		w.queue.Push(queueItem[T]{elem: nb.To, depth: next})
	}
	return nil
}
