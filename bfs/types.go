package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/aoc2022/heightmap"
)

// Unreached is the Depth and Parent value of a cell the walk never reached.
const Unreached = -1

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when
// Walk is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for a walk.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called for each cell in visit order. Returning an error
	// aborts the walk.
	OnVisit func(p heightmap.Point, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	MaxDepth int

	err error
}

// DefaultOptions returns a background context, no depth limit and a no-op
// OnVisit.
func DefaultOptions() Options {
	return Options{
		Ctx:     context.Background(),
		OnVisit: func(heightmap.Point, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback run on every visited cell.
func WithOnVisit(fn func(p heightmap.Point, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the walk at depth d. Zero means no limit; a negative
// d is an ErrOptionViolation.
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// Result holds the outcome of a walk, indexed by flat cell index.
//   - Order: cells in visit sequence.
//   - Depth: steps from the start, Unreached if never reached.
//   - Parent: predecessor in the BFS tree, Unreached for the start and for
//     cells never reached.
type Result struct {
	Order  []int
	Depth  []int
	Parent []int
}

// Reached reports whether idx was visited.
func (r *Result) Reached(idx int) bool {
	return idx >= 0 && idx < len(r.Depth) && r.Depth[idx] != Unreached
}

// PathTo reconstructs the start-to-dest route as flat indices.
func (r *Result) PathTo(dest int) ([]int, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("bfs: no path to cell %d", dest)
	}
	path := []int{}
	for cur := dest; cur != Unreached; cur = r.Parent[cur] {
		path = append(path, cur)
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
