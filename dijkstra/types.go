package dijkstra

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"github.com/katalvlaran/aoc2022/heightmap"
)

// StepCost is the uniform cost of moving to an adjacent cell.
const StepCost = 1

// Sentinel errors returned by the search functions.
var (
	// ErrNilGrid indicates that a nil *heightmap.Grid was passed.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Result is the outcome of a search.
//
// For ShortestPath Runs is 1 and Unreachable is 0 or 1. For MultiSource From
// is the start that achieved Cost, Runs counts the candidate starts searched
// and Unreachable counts those with no path to To.
type Result struct {
	From, To    heightmap.Point
	Cost        int
	Reachable   bool
	Path        []heightmap.Point // only with WithReturnPath
	Runs        int
	Unreachable int
}

// Options configures a search.
//
// ReturnPath  – fill Result.Path.
// MaxDistance – cells farther than this are never expanded. Default math.MaxInt.
// Logger      – debug trace sink. Default discards.
type Options struct {
	ReturnPath  bool
	MaxDistance int
	Logger      *slog.Logger

	// err records an invalid option; the search returns it before running.
	err error
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// WithReturnPath enables route reconstruction in the Result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration. A target farther than max is reported
// unreachable. A negative max makes the search fail with ErrBadMaxDistance.
func WithMaxDistance(max int) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: got %d", ErrBadMaxDistance, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithLogger routes debug tracing to l. A nil l keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// DefaultOptions returns the configuration used when no Option is given:
// no path, no distance cap, logging discarded.
func DefaultOptions() Options {
	return Options{
		ReturnPath:  false,
		MaxDistance: math.MaxInt,
		Logger:      slog.New(slog.DiscardHandler),
	}
}
