package heightmap

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is wrapped by every error caused by bad grid input.
	ErrMalformed = errors.New("heightmap: malformed input")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = fmt.Errorf("%w: grid must have at least one row and one column", ErrMalformed)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrMalformed)
	// ErrMissingStart indicates no 'S' marker was found.
	ErrMissingStart = fmt.Errorf("%w: no start marker 'S'", ErrMalformed)
	// ErrMissingEnd indicates no 'E' marker was found.
	ErrMissingEnd = fmt.Errorf("%w: no end marker 'E'", ErrMalformed)
	// ErrDuplicateMarker indicates 'S' or 'E' appears more than once.
	ErrDuplicateMarker = fmt.Errorf("%w: marker appears more than once", ErrMalformed)
	// ErrElevationRange indicates an elevation outside [MinElevation, MaxElevation].
	ErrElevationRange = fmt.Errorf("%w: elevation out of range", ErrMalformed)

	// ErrOutOfBounds indicates a Point that does not address a cell.
	ErrOutOfBounds = errors.New("heightmap: point out of bounds")
)

// CellError reports a character that is not an elevation letter or marker.
type CellError struct {
	Row, Col int
	Char     rune
}

func (e *CellError) Error() string {
	return fmt.Sprintf("heightmap: invalid elevation %q at row %d, col %d", e.Char, e.Row, e.Col)
}

// Unwrap lets errors.Is(err, ErrMalformed) match.
func (e *CellError) Unwrap() error { return ErrMalformed }
