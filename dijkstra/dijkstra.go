package dijkstra

import (
	"container/heap"
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/aoc2022/heightmap"
)

// ShortestPath computes the cost of the cheapest climb from from to to on g.
// The grid's search state is reset with from as the start before searching,
// so repeated calls on the same grid are independent.
//
// Returns:
//
//   - Result with Reachable=true and Cost set when to was reached.
//   - Result with Reachable=false when the frontier ran dry first (or every
//     remaining cell lies beyond MaxDistance).
//   - ErrNilGrid, ErrBadMaxDistance for a negative WithMaxDistance, or
//     heightmap.ErrOutOfBounds for a point outside g.
func ShortestPath(g *heightmap.Grid, from, to heightmap.Point, opts ...Option) (Result, error) {
	// 1) Build options and surface any invalid one before touching g.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Result{}, cfg.err
	}

	// 2) Validate the grid and both endpoints; Reset seeds from at 0.
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if !g.InBounds(to) {
		return Result{}, fmt.Errorf("dijkstra: target: %w: %v", heightmap.ErrOutOfBounds, to)
	}
	if err := g.Reset(from); err != nil {
		return Result{}, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 3) Run the lazy-deletion loop until to is finalized or the heap drains.
	r := &runner{
		g:       g,
		options: cfg,
		target:  g.Index(to),
		pq:      make(nodePQ, 0, g.Len()),
		buf:     make([]int, 0, 4),
		trace:   cfg.Logger.Enabled(context.Background(), slog.LevelDebug),
	}
	r.init(g.Index(from))
	reached := r.process()

	// 4) Package the outcome; the path is only walked when requested.
	res := Result{From: from, To: to, Runs: 1}
	if !reached {
		res.Unreachable = 1
		cfg.Logger.Debug("target unreachable", "from", from, "to", to)
		return res, nil
	}
	res.Reachable = true
	res.Cost = g.Dist(r.target)
	if cfg.ReturnPath {
		res.Path = g.Path(to)
	}
	cfg.Logger.Debug("target reached", "from", from, "to", to, "cost", res.Cost)

	return res, nil
}

// EachLowest runs ShortestPath from every cell at the grid's minimum
// elevation to to, in row-major order, and returns every result.
func EachLowest(g *heightmap.Grid, to heightmap.Point, opts ...Option) ([]Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	starts := g.Lowest()
	results := make([]Result, 0, len(starts))
	for _, s := range starts {
		res, err := ShortestPath(g, s, to, opts...)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, nil
}

// MultiSource returns the cheapest reachable result over all minimum
// elevation starts. Ties keep the first start in row-major order. When no
// start reaches to, the Result has Reachable=false. After the call the grid
// holds the search state of the last run, not of the winning one.
func MultiSource(g *heightmap.Grid, to heightmap.Point, opts ...Option) (Result, error) {
	results, err := EachLowest(g, to, opts...)
	if err != nil {
		return Result{}, err
	}

	best := Result{To: to}
	for _, res := range results {
		if !res.Reachable {
			best.Unreachable++
			continue
		}
		if !best.Reachable || res.Cost < best.Cost {
			best.From = res.From
			best.Cost = res.Cost
			best.Path = res.Path
			best.Reachable = true
		}
	}
	best.Runs = len(results)

	return best, nil
}

// runner holds the mutable state for a single search execution.
type runner struct {
	g       *heightmap.Grid // distances, visited flags and predecessors live in the grid
	options Options
	target  int    // flat index of the goal cell
	pq      nodePQ // min-heap of *nodeItem for the lazy priority queue
	buf     []int  // neighbour scratch space
	trace   bool   // debug logging enabled
}

// init pushes the source with distance 0. Reset already set its distance.
func (r *runner) init(src int) {
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process is the main loop. It reports whether the target was finalized.
//
// Loop termination conditions:
//
//   - The target is popped: its distance is final.
//   - The heap becomes empty: the target is unreachable.
//   - The smallest distance in the heap exceeds MaxDistance.
func (r *runner) process() bool {
	for r.pq.Len() > 0 {
		// 1) Pop the smallest-distance item.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Skip stale entries left by an earlier, longer relaxation.
		if r.g.Visited(u) {
			continue
		}
		// 3) Everything left is beyond the cap.
		if item.dist > r.options.MaxDistance {
			return false
		}
		if r.trace {
			r.options.Logger.Debug("pop", "cell", r.g.Point(u), "dist", item.dist)
		}

		// 4) Finalize u; stop early once the target is settled.
		r.g.Visit(u)
		if u == r.target {
			return true
		}

		// 5) Offer u's neighbours a shorter route.
		r.relax(u)
	}

	return false
}

// relax offers every legal, unvisited neighbour of u a path through u.
func (r *runner) relax(u int) {
	du := r.g.Dist(u)
	r.buf = r.g.AppendNeighbors(r.buf[:0], u)
	for _, v := range r.buf {
		if r.g.Visited(v) {
			continue
		}
		nd := du + StepCost
		if nd > r.options.MaxDistance {
			continue
		}
		// Relax never raises a distance, so only improvements are pushed.
		if !r.g.Relax(u, v, nd) {
			continue
		}
		if r.trace {
			r.options.Logger.Debug("relax", "cell", r.g.Point(v), "dist", nd)
		}
		heap.Push(&r.pq, &nodeItem{idx: v, dist: nd})
	}
}

// nodeItem is a cell and the distance it had when pushed. A cell may sit in
// the heap several times; only the entry popped first is acted on.
type nodeItem struct {
	idx  int // flat cell index
	dist int // tentative distance at push time
}

// nodePQ is a min-heap of *nodeItem ordered by dist ascending.
type nodePQ []*nodeItem

// Len returns the number of queued entries, stale ones included.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders entries by ascending distance.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap exchanges two entries.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push appends an entry. Called by heap.Push, never directly.
func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes the last entry. Called by heap.Pop, which has already moved
// the minimum there.
func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop the reference
	*pq = old[:n-1]

	return item
}
