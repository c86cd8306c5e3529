// Package puzzle registers the daily solvers and runs them by day number.
package puzzle

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/aoc2022/internal/ctxlog"
)

// ErrUnknownDay indicates no solver is registered for the requested day.
var ErrUnknownDay = errors.New("puzzle: no solver for day")

// Answer is one part's result. Found is false when the puzzle has no answer
// for this input, e.g. the goal cannot be reached.
type Answer struct {
	Value int
	Found bool
}

// Of wraps a found value.
func Of(v int) Answer { return Answer{Value: v, Found: true} }

func (a Answer) String() string {
	if !a.Found {
		return "unreachable"
	}
	return strconv.Itoa(a.Value)
}

// Result holds both parts of a day.
type Result struct {
	Day   int
	Part1 Answer
	Part2 Answer
}

// Part returns the answer for part 1 or 2.
func (r Result) Part(n int) (Answer, error) {
	switch n {
	case 1:
		return r.Part1, nil
	case 2:
		return r.Part2, nil
	}
	return Answer{}, fmt.Errorf("puzzle: day %d has no part %d", r.Day, n)
}

// Solver computes both parts of a day from its input lines.
type Solver func(ctx context.Context, lines []string) (Result, error)

var solvers = map[int]Solver{}

func register(day int, s Solver) {
	if _, dup := solvers[day]; dup {
		panic(fmt.Sprintf("puzzle: day %d registered twice", day))
	}
	solvers[day] = s
}

// Days lists the registered days in ascending order.
func Days() []int {
	days := make([]int, 0, len(solvers))
	for d := range solvers {
		days = append(days, d)
	}
	slices.Sort(days)
	return days
}

// Solve runs the solver registered for day.
func Solve(ctx context.Context, day int, lines []string) (Result, error) {
	s, ok := solvers[day]
	if !ok {
		return Result{}, fmt.Errorf("%w %d", ErrUnknownDay, day)
	}
	log := ctxlog.FromContext(ctx)
	log.Debug("solving", "day", day, "lines", len(lines))

	res, err := s(ctx, lines)
	if err != nil {
		return Result{}, fmt.Errorf("day %d: %w", day, err)
	}
	res.Day = day
	log.Debug("solved", "day", day, "part1", res.Part1, "part2", res.Part2)

	return res, nil
}
