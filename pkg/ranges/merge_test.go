package ranges

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		raw  []Range
		want []Range
	}{
		{
			name: "empty",
			raw:  nil,
			want: nil,
		},
		{
			name: "single",
			raw:  []Range{{3, 3}},
			want: []Range{{3, 3}},
		},
		{
			name: "disjoint stays apart",
			raw:  []Range{{1, 1}, {3, 3}},
			want: []Range{{1, 1}, {3, 3}},
		},
		{
			name: "adjacent singles join",
			raw:  []Range{{5, 5}, {6, 8}},
			want: []Range{{5, 8}},
		},
		{
			name: "unsorted input",
			raw:  []Range{{11, 11}, {4, 5}, {1, 1}, {3, 3}, {2, 2}},
			want: []Range{{1, 5}, {11, 11}},
		},
		{
			name: "contained range absorbed",
			raw:  []Range{{1, 5}, {2, 3}},
			want: []Range{{1, 5}},
		},
		{
			name: "duplicates",
			raw:  []Range{{4, 4}, {4, 4}, {4, 4}},
			want: []Range{{4, 4}},
		},
		{
			name: "overlap extends end",
			raw:  []Range{{5, 9}, {8, 8}, {10, 10}},
			want: []Range{{5, 10}},
		},
		{
			name: "chain across gap filler",
			raw:  []Range{{1, 1}, {3, 3}, {5, 9}, {11, 20}, {10, 10}},
			want: []Range{{1, 1}, {3, 3}, {5, 20}},
		},
		{
			name: "max int end",
			raw:  []Range{{math.MaxInt, math.MaxInt}, {1, math.MaxInt - 1}},
			want: []Range{{1, math.MaxInt}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.raw)
			assert.Equal(t, tt.want, got)
			assert.True(t, IsCanonical(got))
		})
	}
}

func TestMerge_DoesNotModifyInput(t *testing.T) {
	raw := []Range{{9, 9}, {1, 2}, {2, 4}}
	_ = Merge(raw)
	assert.Equal(t, []Range{{9, 9}, {1, 2}, {2, 4}}, raw)
}

func TestMerge_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 200; i++ {
		once := Merge(randomRanges(rng))
		assert.Equal(t, once, Merge(once))
	}
}

func TestMerge_UnionAndMinimality(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		raw := randomRanges(rng)
		merged := Merge(raw)

		require.True(t, IsCanonical(merged), "raw=%v merged=%v", raw, merged)
		assert.Equal(t, expand(raw), expand(merged), "raw=%v", raw)
	}
}

func TestMerge_OrderIndependent(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))
	for i := 0; i < 100; i++ {
		raw := randomRanges(rng)
		shuffled := append([]Range(nil), raw...)
		rng.Shuffle(len(shuffled), func(a, b int) {
			shuffled[a], shuffled[b] = shuffled[b], shuffled[a]
		})
		assert.Equal(t, Merge(raw), Merge(shuffled))
	}
}

func TestIsCanonical(t *testing.T) {
	assert.True(t, IsCanonical(nil))
	assert.True(t, IsCanonical([]Range{{1, 1}, {3, 5}}))
	assert.False(t, IsCanonical([]Range{{1, 2}, {3, 5}}), "touching ranges")
	assert.False(t, IsCanonical([]Range{{1, 4}, {3, 5}}), "overlap")
	assert.False(t, IsCanonical([]Range{{6, 8}, {1, 2}}), "unsorted")
	assert.False(t, IsCanonical([]Range{{0, 2}}), "zero start")
	assert.False(t, IsCanonical([]Range{{5, 3}}), "reversed")
}

func TestRange(t *testing.T) {
	r := Range{Start: 5, End: 8}
	assert.True(t, r.Contains(5))
	assert.True(t, r.Contains(8))
	assert.False(t, r.Contains(4))
	assert.False(t, r.Contains(9))
	assert.Equal(t, 4, r.Len())
	assert.Equal(t, "5-8", r.String())
	assert.False(t, r.IsSingle())

	s := Single(7)
	assert.Equal(t, "7", s.String())
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.IsSingle())
}

func randomRanges(rng *rand.Rand) []Range {
	n := rng.IntN(8)
	out := make([]Range, 0, n)
	for j := 0; j < n; j++ {
		start := 1 + rng.IntN(40)
		out = append(out, Range{Start: start, End: start + rng.IntN(6)})
	}
	return out
}

func expand(rs []Range) map[int]bool {
	set := make(map[int]bool)
	for _, r := range rs {
		for i := r.Start; i <= r.End; i++ {
			set[i] = true
		}
	}
	return set
}
