// Package heightmap treats a rectangular letter grid as a directed graph of
// elevations, ready for shortest-path search.
//
// What:
//
//   - Grid stores cells row-major in a flat slice; a cell is addressed either
//     by Point{Row, Col} or by its flat index Row*Width+Col.
//   - Elevations come from letters: 'a'..'z' → 0..25. 'S' marks the start
//     (elevation of 'a'), 'E' marks the end (elevation of 'z').
//   - A step from A to an orthogonal neighbour B is legal iff
//     elevation(B) ≤ elevation(A)+1. Descents of any size are allowed.
//   - Each cell also carries mutable search state (tentative distance,
//     visited flag, predecessor). Reset clears it between searches while the
//     elevations and the shape stay untouched.
//
// Complexity:
//
//   - Parse, New:  O(W×H) time and memory.
//   - Reset:       O(W×H).
//   - Neighbors:   O(1), at most 4 cells.
//   - Lowest:      O(W×H).
//
// Errors:
//
//   - ErrMalformed: umbrella for every parse failure below; test with errors.Is.
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrMissingStart, ErrMissingEnd, ErrDuplicateMarker: marker problems.
//   - ErrElevationRange: New got an elevation outside 0..25.
//   - *CellError: a character outside a..z, S and E.
//   - ErrOutOfBounds: a Point outside the grid was passed to Reset.
package heightmap
