package packet

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/aoc2022/input"
)

// Pair is two packets read from one blank-line separated block.
type Pair struct {
	Left, Right Value
}

// Ordered reports whether the pair is in the right order.
func (p Pair) Ordered() bool { return Ordered(p.Left, p.Right) }

// ParsePairs reads blocks of exactly two non-blank lines separated by one or
// more blank lines. Parse failures are wrapped with the 1-based pair number.
func ParsePairs(lines []string) ([]Pair, error) {
	blocks := input.Blocks(lines)
	if len(blocks) == 0 {
		return nil, ErrEmpty
	}
	pairs := make([]Pair, 0, len(blocks))
	for i, b := range blocks {
		if len(b) != 2 {
			return nil, fmt.Errorf("%w: pair %d has %d lines", ErrPairShape, i+1, len(b))
		}
		left, err := Parse(b[0])
		if err != nil {
			return nil, fmt.Errorf("pair %d left: %w", i+1, err)
		}
		right, err := Parse(b[1])
		if err != nil {
			return nil, fmt.Errorf("pair %d right: %w", i+1, err)
		}
		pairs = append(pairs, Pair{Left: left, Right: right})
	}

	return pairs, nil
}

// SumOrdered adds up the 1-based indices of the pairs that are in order.
func SumOrdered(pairs []Pair) int {
	sum := 0
	for i, p := range pairs {
		if p.Ordered() {
			sum += i + 1
		}
	}
	return sum
}

// ParseAll parses every non-blank line as a packet. Lines are expected
// trimmed, as input.Lines returns them.
func ParseAll(lines []string) ([]Value, error) {
	var out []Value
	for i, l := range lines {
		if l == "" {
			continue
		}
		v, err := Parse(l)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		out = append(out, v)
	}
	if len(out) == 0 {
		return nil, ErrEmpty
	}

	return out, nil
}

// Sort orders values in place by Compare. Equal packets keep their
// relative order.
func Sort(values []Value) {
	slices.SortStableFunc(values, Compare)
}

// Dividers returns the two divider packets, [[2]] and [[6]].
func Dividers() []Value {
	return []Value{MustParse("[[2]]"), MustParse("[[6]]")}
}

// DecoderKey adds the divider packets to values, sorts everything and
// returns the product of the dividers' 1-based positions. values itself is
// left untouched. Dividers sort after any packet equal to them.
func DecoderKey(values []Value) int {
	type entry struct {
		v       Value
		divider bool
	}
	all := make([]entry, 0, len(values)+2)
	for _, v := range values {
		all = append(all, entry{v: v})
	}
	for _, d := range Dividers() {
		all = append(all, entry{v: d, divider: true})
	}
	slices.SortStableFunc(all, func(a, b entry) int { return Compare(a.v, b.v) })

	key := 1
	for i, e := range all {
		if e.divider {
			key *= i + 1
		}
	}
	return key
}
