package puzzle

import (
	"context"

	"github.com/katalvlaran/aoc2022/packet"
)

func init() {
	register(13, day13)
}

// day13: sum of indices of ordered pairs, then the decoder key.
func day13(_ context.Context, lines []string) (Result, error) {
	pairs, err := packet.ParsePairs(lines)
	if err != nil {
		return Result{}, err
	}
	all := make([]packet.Value, 0, 2*len(pairs))
	for _, p := range pairs {
		all = append(all, p.Left, p.Right)
	}

	return Result{
		Part1: Of(packet.SumOrdered(pairs)),
		Part2: Of(packet.DecoderKey(all)),
	}, nil
}
