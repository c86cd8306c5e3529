// Package bfs walks a heightmap breadth-first from one cell, following the
// same legal moves as dijkstra. Every move costs one step, so the depths
// it records are exact climb costs.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/aoc2022/heightmap"
)

// walker encapsulates mutable BFS state.
type walker struct {
	g     *heightmap.Grid
	opts  Options
	queue []int
	res   *Result
	buf   []int
}

// Walk runs breadth-first search on g from start. It only reads elevations
// and leaves the grid's search state alone.
// Returns ErrGridNil, heightmap.ErrOutOfBounds for a bad start,
// ErrOptionViolation for bad options, ctx errors on cancellation, or the
// OnVisit error.
func Walk(g *heightmap.Grid, start heightmap.Point, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("bfs: start: %w: %v", heightmap.ErrOutOfBounds, start)
	}

	n := g.Len()
	w := &walker{
		g:     g,
		opts:  o,
		queue: make([]int, 0, n),
		res: &Result{
			Order:  make([]int, 0, n),
			Depth:  make([]int, n),
			Parent: make([]int, n),
		},
		buf: make([]int, 0, 4),
	}
	for i := 0; i < n; i++ {
		w.res.Depth[i] = Unreached
		w.res.Parent[i] = Unreached
	}

	w.enqueue(g.Index(start), 0, Unreached)

	return w.res, w.loop()
}

// enqueue records idx at depth d with its parent and queues it.
func (w *walker) enqueue(idx, d, parent int) {
	w.res.Depth[idx] = d
	w.res.Parent[idx] = parent
	w.queue = append(w.queue, idx)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		u := w.queue[0]
		w.queue = w.queue[1:]
		d := w.res.Depth[u]

		w.res.Order = append(w.res.Order, u)
		if err := w.opts.OnVisit(w.g.Point(u), d); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %v: %w", w.g.Point(u), err)
		}

		if w.opts.MaxDepth > 0 && d+1 > w.opts.MaxDepth {
			continue
		}
		w.buf = w.g.AppendNeighbors(w.buf[:0], u)
		for _, v := range w.buf {
			if w.res.Depth[v] == Unreached {
				w.enqueue(v, d+1, u)
			}
		}
	}
	return nil
}
