package puzzle

import (
	"context"
	"log/slog"

	"github.com/katalvlaran/aoc2022/dijkstra"
	"github.com/katalvlaran/aoc2022/heightmap"
	"github.com/katalvlaran/aoc2022/internal/ctxlog"
)

func init() {
	register(12, day12)
}

// day12: fewest steps from S to E, then from the best lowest cell to E.
func day12(ctx context.Context, lines []string) (Result, error) {
	log := ctxlog.FromContext(ctx)
	g, err := heightmap.Parse(lines)
	if err != nil {
		return Result{}, err
	}
	log.Debug("height map", "width", g.Width, "height", g.Height, "start", g.Start, "end", g.End)
	if log.Enabled(ctx, slog.LevelDebug) {
		log.Debug("elevations\n" + g.String())
	}

	opt := dijkstra.WithLogger(log)
	single, err := dijkstra.ShortestPath(g, g.Start, g.End, opt)
	if err != nil {
		return Result{}, err
	}
	multi, err := dijkstra.MultiSource(g, g.End, opt)
	if err != nil {
		return Result{}, err
	}
	log.Debug("multi-source sweep", "runs", multi.Runs, "unreachable", multi.Unreachable, "best_start", multi.From)

	var res Result
	if single.Reachable {
		res.Part1 = Of(single.Cost)
	}
	if multi.Reachable {
		res.Part2 = Of(multi.Cost)
	}
	return res, nil
}
