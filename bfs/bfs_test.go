package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/bfs"
	"github.com/katalvlaran/aoc2022/heightmap"
)

var sample = []string{
	"Sabqponm",
	"abcryxxl",
	"accszExk",
	"acctuvwj",
	"abdefghi",
}

// TestWalk_Errors verifies that invalid inputs and options are rejected.
func TestWalk_Errors(t *testing.T) {
	_, err := bfs.Walk(nil, heightmap.Point{})
	require.ErrorIs(t, err, bfs.ErrGridNil)

	g, err := heightmap.Parse(sample)
	require.NoError(t, err)

	_, err = bfs.Walk(g, heightmap.Point{Row: 9})
	require.ErrorIs(t, err, heightmap.ErrOutOfBounds)

	_, err = bfs.Walk(g, g.Start, bfs.WithMaxDepth(-1))
	require.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestWalk_Sample checks the end depth and that the route is a legal climb.
func TestWalk_Sample(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)

	res, err := bfs.Walk(g, g.Start)
	require.NoError(t, err)

	end := g.Index(g.End)
	require.True(t, res.Reached(end))
	assert.Equal(t, 31, res.Depth[end])
	assert.Equal(t, g.Index(g.Start), res.Order[0])

	path, err := res.PathTo(end)
	require.NoError(t, err)
	require.Len(t, path, 32)
	for i := 1; i < len(path); i++ {
		assert.True(t, g.CanStep(path[i-1], path[i]), "step %d", i)
	}
}

// TestWalk_Unreachable covers a wall the walk cannot climb.
func TestWalk_Unreachable(t *testing.T) {
	g, err := heightmap.Parse([]string{"SacE"})
	require.NoError(t, err)

	res, err := bfs.Walk(g, g.Start)
	require.NoError(t, err)
	assert.False(t, res.Reached(g.Index(g.End)))
	assert.Equal(t, bfs.Unreached, res.Depth[g.Index(g.End)])

	_, err = res.PathTo(g.Index(g.End))
	require.Error(t, err)
}

func TestWalk_MaxDepth(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)

	res, err := bfs.Walk(g, g.Start, bfs.WithMaxDepth(2))
	require.NoError(t, err)
	for _, idx := range res.Order {
		assert.LessOrEqual(t, res.Depth[idx], 2)
	}
	assert.False(t, res.Reached(g.Index(g.End)))
}

func TestWalk_OnVisitAbort(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)

	stop := errors.New("stop")
	visited := 0
	_, err = bfs.Walk(g, g.Start, bfs.WithOnVisit(func(heightmap.Point, int) error {
		visited++
		if visited == 3 {
			return stop
		}
		return nil
	}))
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 3, visited)
}

func TestWalk_Cancelled(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.Walk(g, g.Start, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

// TestWalk_LeavesSearchStateAlone checks the walk never touches Dist or
// Visited.
func TestWalk_LeavesSearchStateAlone(t *testing.T) {
	g, err := heightmap.Parse(sample)
	require.NoError(t, err)
	require.NoError(t, g.Reset(g.Start))

	_, err = bfs.Walk(g, g.Start)
	require.NoError(t, err)
	for i := 0; i < g.Len(); i++ {
		assert.False(t, g.Visited(i))
	}
	assert.Equal(t, 0, g.Dist(g.Index(g.Start)))
}
