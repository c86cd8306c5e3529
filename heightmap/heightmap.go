package heightmap

import (
	"fmt"
	"strings"
)

// New constructs a Grid from a non-empty, rectangular table of elevations.
// The input is copied; start and end must lie inside the grid.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrElevationRange or ErrOutOfBounds.
// Complexity: O(W×H) time and memory.
func New(elevations [][]int, start, end Point) (*Grid, error) {
	if len(elevations) == 0 || len(elevations[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(elevations), len(elevations[0])
	for _, row := range elevations {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	g := &Grid{
		Width:  w,
		Height: h,
		Start:  start,
		End:    end,
		cells:  make([]Cell, 0, w*h),
	}
	if !g.InBounds(start) || !g.InBounds(end) {
		return nil, fmt.Errorf("%w: start %v, end %v", ErrOutOfBounds, start, end)
	}
	for r, row := range elevations {
		for c, e := range row {
			if e < MinElevation || e > MaxElevation {
				return nil, fmt.Errorf("%w: %d at row %d, col %d", ErrElevationRange, e, r, c)
			}
			g.cells = append(g.cells, Cell{
				Point:     Point{Row: r, Col: c},
				Elevation: e,
				Dist:      Infinity,
				Prev:      NoPrev,
			})
		}
	}
	g.cells[g.Index(start)].Dist = 0

	return g, nil
}

// Parse builds a Grid from puzzle lines. Blank lines are skipped.
// Letters a..z map to 0..25; 'S' and 'E' mark start and end and take the
// elevations of 'a' and 'z'. Exactly one of each marker is required.
// The start cell's distance is initialised to 0.
func Parse(lines []string) (*Grid, error) {
	var (
		rows             [][]int
		start, end       Point
		hasStart, hasEnd bool
	)
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		r := len(rows)
		row := make([]int, 0, len(line))
		for c, ch := range []rune(line) {
			switch {
			case ch == 'S':
				if hasStart {
					return nil, fmt.Errorf("%w: second 'S' at row %d, col %d", ErrDuplicateMarker, r, c)
				}
				start, hasStart = Point{Row: r, Col: c}, true
				row = append(row, MinElevation)
			case ch == 'E':
				if hasEnd {
					return nil, fmt.Errorf("%w: second 'E' at row %d, col %d", ErrDuplicateMarker, r, c)
				}
				end, hasEnd = Point{Row: r, Col: c}, true
				row = append(row, MaxElevation)
			case ch >= 'a' && ch <= 'z':
				row = append(row, int(ch-'a'))
			default:
				return nil, &CellError{Row: r, Col: c, Char: ch}
			}
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return nil, ErrEmptyGrid
	}
	if !hasStart {
		return nil, ErrMissingStart
	}
	if !hasEnd {
		return nil, ErrMissingEnd
	}

	return New(rows, start, end)
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.Height && p.Col >= 0 && p.Col < g.Width
}

// Index maps p to its row-major index. p must be in bounds.
func (g *Grid) Index(p Point) int {
	return p.Row*g.Width + p.Col
}

// Point converts a row-major index back to a Point.
func (g *Grid) Point(idx int) Point {
	return Point{Row: idx / g.Width, Col: idx % g.Width}
}

// Cell returns a copy of the cell at idx.
func (g *Grid) Cell(idx int) Cell { return g.cells[idx] }

// Elevation returns the elevation at p. p must be in bounds.
func (g *Grid) Elevation(p Point) int { return g.cells[g.Index(p)].Elevation }

// CanStep reports whether a move from cell index from to cell index to is
// allowed by the climbing rule. Adjacency is not checked.
func (g *Grid) CanStep(from, to int) bool {
	return g.cells[to].Elevation <= g.cells[from].Elevation+1
}

// Neighbors returns the orthogonal neighbours of idx reachable in one step,
// in the order up, left, down, right.
func (g *Grid) Neighbors(idx int) []int {
	return g.AppendNeighbors(make([]int, 0, len(orthogonal)), idx)
}

// AppendNeighbors appends the neighbours of idx to dst and returns it, so
// hot loops can reuse one buffer.
func (g *Grid) AppendNeighbors(dst []int, idx int) []int {
	p := g.Point(idx)
	for _, d := range orthogonal {
		q := Point{Row: p.Row + d[0], Col: p.Col + d[1]}
		if !g.InBounds(q) {
			continue
		}
		j := g.Index(q)
		if g.CanStep(idx, j) {
			dst = append(dst, j)
		}
	}

	return dst
}

// Reset clears the search state of every cell and sets start's distance
// to 0. Elevations and shape are preserved.
func (g *Grid) Reset(start Point) error {
	if !g.InBounds(start) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, start)
	}
	for i := range g.cells {
		g.cells[i].Dist = Infinity
		g.cells[i].Visited = false
		g.cells[i].Prev = NoPrev
	}
	g.cells[g.Index(start)].Dist = 0

	return nil
}

// Dist returns the tentative distance of idx.
func (g *Grid) Dist(idx int) int { return g.cells[idx].Dist }

// Visited reports whether idx has been finalized.
func (g *Grid) Visited(idx int) bool { return g.cells[idx].Visited }

// Visit marks idx as finalized.
func (g *Grid) Visit(idx int) { g.cells[idx].Visited = true }

// Relax lowers the tentative distance of to to d via from, if d is an
// improvement. It reports whether the cell changed; distances never grow.
func (g *Grid) Relax(from, to, d int) bool {
	if d >= g.cells[to].Dist {
		return false
	}
	g.cells[to].Dist = d
	g.cells[to].Prev = from

	return true
}

// Lowest returns every cell at the minimum elevation present, row-major.
func (g *Grid) Lowest() []Point {
	lowest := MaxElevation + 1
	var out []Point
	for _, c := range g.cells {
		switch {
		case c.Elevation < lowest:
			lowest = c.Elevation
			out = append(out[:0], c.Point)
		case c.Elevation == lowest:
			out = append(out, c.Point)
		}
	}

	return out
}

// Path follows predecessors back from to and returns the route in travel
// order. It returns nil when to was not reached by the last search.
func (g *Grid) Path(to Point) []Point {
	if !g.InBounds(to) || g.cells[g.Index(to)].Dist == Infinity {
		return nil
	}
	var rev []Point
	for at := g.Index(to); at != NoPrev; at = g.cells[at].Prev {
		rev = append(rev, g.cells[at].Point)
	}
	path := make([]Point, len(rev))
	for i, p := range rev {
		path[len(rev)-1-i] = p
	}

	return path
}

// String renders the elevation table, three columns per cell.
func (g *Grid) String() string {
	var sb strings.Builder
	for i, c := range g.cells {
		fmt.Fprintf(&sb, "%3d", c.Elevation)
		if (i+1)%g.Width == 0 {
			sb.WriteByte('\n')
		}
	}

	return sb.String()
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
