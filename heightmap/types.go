package heightmap

import "math"

const (
	// MinElevation is the elevation of 'a' and of the start marker.
	MinElevation = 0
	// MaxElevation is the elevation of 'z' and of the end marker.
	MaxElevation = 25
	// Infinity is the tentative distance of a cell not yet reached.
	Infinity = math.MaxInt
	// NoPrev marks a cell without predecessor.
	NoPrev = -1
)

// Point addresses a cell by row and column.
type Point struct {
	Row, Col int
}

// Cell is a single grid position with its elevation and search state.
type Cell struct {
	Point
	Elevation int

	Dist    int  // tentative distance from the current search's start
	Visited bool // distance finalized
	Prev    int  // flat index of predecessor, or NoPrev
}

// Grid is a rectangular height map. Width, Height, Start, End and the
// elevations never change after construction; only the search state of each
// cell is mutated, by Reset, Relax and Visit.
type Grid struct {
	Width, Height int
	Start, End    Point
	cells         []Cell
}

// orthogonal holds the (dRow, dCol) neighbour offsets: up, left, down, right.
var orthogonal = [4][2]int{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}
