package packet_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2022/input"
	"github.com/katalvlaran/aoc2022/packet"
)

const sample = `[1,1,3,1,1]
[1,1,5,1,1]

[[1],[2,3,4]]
[[1],4]

[9]
[[8,7,6]]

[[4,4],4,4]
[[4,4],4,4,4]

[7,7,7,7]
[7,7,7]

[]
[3]

[[[]]]
[[]]

[1,[2,[3,[4,[5,6,7]]]],8,9]
[1,[2,[3,[4,[5,6,0]]]],8,9]
`

func TestCompare_Examples(t *testing.T) {
	cases := []struct {
		name        string
		left, right string
		want        int
	}{
		{"Scalars", "[1,1,3,1,1]", "[1,1,5,1,1]", -1},
		{"PromoteRight", "[[1],[2,3,4]]", "[[1],4]", -1},
		{"PromoteLeft", "[9]", "[[8,7,6]]", 1},
		{"LeftShorter", "[[4,4],4,4]", "[[4,4],4,4,4]", -1},
		{"RightShorter", "[7,7,7,7]", "[7,7,7]", 1},
		{"EmptyLeft", "[]", "[3]", -1},
		{"NestedEmpty", "[[[]]]", "[[]]", 1},
		{"NestedEmptySwapped", "[[]]", "[[[]]]", -1},
		{"Deep", "[1,[2,[3,[4,[5,6,7]]]],8,9]", "[1,[2,[3,[4,[5,6,0]]]],8,9]", 1},
		{"BothEmpty", "[]", "[]", 0},
		{"PromotedEqual", "[1]", "[[1]]", 0},
		{"PromoteAtDepth", "[[1,[2]]]", "[[1,2]]", 0},
		{"MultiDigit", "[10]", "[9]", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, b := packet.MustParse(tc.left), packet.MustParse(tc.right)
			assert.Equal(t, tc.want, packet.Compare(a, b))
			assert.Equal(t, tc.want < 0, packet.Ordered(a, b))
		})
	}
}

func TestCompare_Scalars(t *testing.T) {
	assert.Equal(t, -1, packet.Compare(packet.Scalar(-2), packet.Scalar(1)))
	assert.Equal(t, 0, packet.Compare(packet.Scalar(5), packet.Scalar(5)))
	assert.Equal(t, 1, packet.Compare(packet.Scalar(5), packet.List()))
	assert.True(t, packet.Equal(packet.Scalar(3), packet.MustParse("[[3]]")))
}

// randomValue builds a random tree with small integers and shallow depth so
// that ties and promotions are frequent.
func randomValue(rng *rand.Rand, depth int) packet.Value {
	if depth == 0 || rng.Intn(3) == 0 {
		return packet.Scalar(rng.Intn(4))
	}
	n := rng.Intn(4)
	items := make([]packet.Value, n)
	for i := range items {
		items[i] = randomValue(rng, depth-1)
	}
	return packet.List(items...)
}

// TestCompare_OrderProperties checks reflexivity, antisymmetry and
// transitivity on random trees.
func TestCompare_OrderProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(2022))
	vals := make([]packet.Value, 60)
	for i := range vals {
		vals[i] = packet.List(randomValue(rng, 4), randomValue(rng, 3))
	}
	for _, a := range vals {
		require.Zero(t, packet.Compare(a, a), "reflexive: %v", a)
		for _, b := range vals {
			ab, ba := packet.Compare(a, b), packet.Compare(b, a)
			require.Equal(t, -ab, ba, "antisymmetric: %v vs %v", a, b)
			for _, c := range vals {
				if ab <= 0 && packet.Compare(b, c) <= 0 {
					require.LessOrEqual(t, packet.Compare(a, c), 0, "transitive: %v ≤ %v ≤ %v", a, b, c)
				}
			}
		}
	}
}

func TestParsePairs_Sample(t *testing.T) {
	pairs, err := packet.ParsePairs(input.Lines(sample))
	require.NoError(t, err)
	require.Len(t, pairs, 8)

	want := []bool{true, true, false, true, false, true, false, false}
	for i, p := range pairs {
		assert.Equal(t, want[i], p.Ordered(), "pair %d", i+1)
	}
	assert.Equal(t, 13, packet.SumOrdered(pairs))
}

func TestParsePairs_Errors(t *testing.T) {
	_, err := packet.ParsePairs(input.Lines("[1]\n[2]\n[3]\n"))
	require.ErrorIs(t, err, packet.ErrPairShape)
	assert.Contains(t, err.Error(), "pair 1 has 3 lines")

	_, err = packet.ParsePairs(input.Lines("[1]\n[2]\n\n[3]\n[4"))
	require.ErrorIs(t, err, packet.ErrMalformed)
	assert.True(t, strings.HasPrefix(err.Error(), "pair 2 right:"), err.Error())

	_, err = packet.ParsePairs(input.Lines("\n\n"))
	require.ErrorIs(t, err, packet.ErrEmpty)
}

func TestSortAndDecoderKey(t *testing.T) {
	values, err := packet.ParseAll(input.Lines(sample))
	require.NoError(t, err)
	require.Len(t, values, 16)

	assert.Equal(t, 140, packet.DecoderKey(values))
	assert.Equal(t, "[1,1,3,1,1]", values[0].String(), "DecoderKey must not reorder its input")

	packet.Sort(values)
	for i := 1; i < len(values); i++ {
		assert.LessOrEqual(t, packet.Compare(values[i-1], values[i]), 0)
	}
	assert.Equal(t, "[]", values[0].String())
	assert.Equal(t, "[9]", values[len(values)-1].String())
}

func TestDecoderKey_NoPackets(t *testing.T) {
	// Only the dividers: positions 1 and 2.
	assert.Equal(t, 2, packet.DecoderKey(nil))
}

func TestParseAll_Errors(t *testing.T) {
	_, err := packet.ParseAll([]string{"", ""})
	require.ErrorIs(t, err, packet.ErrEmpty)

	_, err = packet.ParseAll([]string{"[1]", "", "[x]"})
	require.ErrorIs(t, err, packet.ErrMalformed)
	assert.Contains(t, err.Error(), "line 3")
}
