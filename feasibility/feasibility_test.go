package feasibility_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lantern/coverage"
	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
)

// oracles lists both implementations so every behavioral test runs on each.
var oracles = []struct {
	name string
	fn   feasibility.Func
}{
	{"brute", feasibility.Brute},
	{"burstdp", feasibility.BurstDP},
}

func inst(outposts, lanterns []int64, k, t int) instance.Instance {
	return instance.Instance{Outposts: outposts, Lanterns: lanterns, MaxEffort: k, MaxBursts: t}
}

// TestOracles_NoOutposts is vacuously feasible, even at negative radii.
func TestOracles_NoOutposts(t *testing.T) {
	in := inst(nil, []int64{1, 2}, 1, 1)
	for _, o := range oracles {
		t.Run(o.name, func(t *testing.T) {
			assert.True(t, o.fn(in, -1))
			assert.True(t, o.fn(in, 0))
			assert.True(t, o.fn(inst(nil, nil, 0, 0), -5), "nothing to light needs nothing")
		})
	}
}

// TestOracles_DegenerateBudgets rejects m == 0, k ≤ 0 and t ≤ 0 with outposts present.
func TestOracles_DegenerateBudgets(t *testing.T) {
	cases := []struct {
		name string
		in   instance.Instance
	}{
		{"no lanterns", inst([]int64{0}, nil, 1, 1)},
		{"zero effort", inst([]int64{0}, []int64{0}, 0, 1)},
		{"negative effort", inst([]int64{0}, []int64{0}, -3, 1)},
		{"zero bursts", inst([]int64{0}, []int64{0}, 1, 0)},
	}
	for _, o := range oracles {
		for _, tc := range cases {
			t.Run(o.name+"/"+tc.name, func(t *testing.T) {
				assert.False(t, o.fn(tc.in, 1_000_000))
			})
		}
	}
}

// TestOracles_NegativeRadius never lights a real outpost.
func TestOracles_NegativeRadius(t *testing.T) {
	in := inst([]int64{0}, []int64{0}, 1, 1)
	for _, o := range oracles {
		assert.False(t, o.fn(in, -1), o.name)
		assert.True(t, o.fn(in, 0), o.name)
	}
}

// TestOracles_DisjointBursts covers two far-apart outposts with two
// length-1 bursts; with a single burst the middle lantern must be paid for.
func TestOracles_DisjointBursts(t *testing.T) {
	outposts := []int64{-100, 100}
	lanterns := []int64{-100, 0, 100}
	for _, o := range oracles {
		t.Run(o.name, func(t *testing.T) {
			assert.True(t, o.fn(inst(outposts, lanterns, 2, 2), 0), "two single-lantern bursts, effort 2")
			assert.False(t, o.fn(inst(outposts, lanterns, 2, 1), 0), "one burst must span 3 lanterns")
			assert.False(t, o.fn(inst(outposts, lanterns, 2, 1), 99))
			assert.True(t, o.fn(inst(outposts, lanterns, 2, 1), 100))
			assert.True(t, o.fn(inst(outposts, lanterns, 3, 1), 0), "effort 3 buys the whole row")
		})
	}
}

// TestOracles_EffortLimited needs radius 10 when only one lantern can burn.
func TestOracles_EffortLimited(t *testing.T) {
	outposts := []int64{0, 10, 20}
	lanterns := []int64{0, 10, 20}
	for _, o := range oracles {
		t.Run(o.name, func(t *testing.T) {
			in := inst(outposts, lanterns, 1, 3)
			assert.False(t, o.fn(in, 0))
			assert.False(t, o.fn(in, 9))
			assert.True(t, o.fn(in, 10))
			assert.True(t, o.fn(inst(outposts, lanterns, 3, 3), 0))
		})
	}
}

// TestOracles_Monotone checks feasibility never flips back to false as the radius grows.
func TestOracles_Monotone(t *testing.T) {
	in := inst([]int64{-6, -1, 0, 1, 6}, []int64{-5, -2, 0, 2, 5, 7}, 3, 2)
	for _, o := range oracles {
		t.Run(o.name, func(t *testing.T) {
			seen := false
			for s := int64(-1); s <= 15; s++ {
				ok := o.fn(in, s)
				if seen {
					assert.True(t, ok, "radius %d after a feasible radius", s)
				}
				seen = seen || ok
			}
			assert.True(t, seen)
		})
	}
}

// TestMinEffort_Rounds checks minimum effort per burst budget on a hand-built table.
func TestMinEffort_Rounds(t *testing.T) {
	outposts := []int64{-10, -8, 51}
	lanterns := []int64{-10, -9, -8, 50, 51}

	// Radius 0: outposts need lanterns 1, 3 and 5 exactly.
	tbl, ok := coverage.Build(0, outposts, lanterns)
	require.True(t, ok)

	_, ok = feasibility.MinEffort(tbl, 0)
	assert.False(t, ok)

	want := map[int]int64{1: 5, 2: 4, 3: 3, 4: 3, 30: 3}
	for bursts, effort := range want {
		got, ok := feasibility.MinEffort(tbl, bursts)
		require.True(t, ok)
		assert.Equal(t, effort, got, "bursts=%d", bursts)
	}

	// Radius 1: ranges [1..2], [2..3], [4..5].
	tbl, ok = coverage.Build(1, outposts, lanterns)
	require.True(t, ok)
	got, _ := feasibility.MinEffort(tbl, 1)
	assert.Equal(t, int64(3), got, "burst [2..4]")
	got, _ = feasibility.MinEffort(tbl, 2)
	assert.Equal(t, int64(2), got, "bursts [2] and [4]")
}

// TestMinEffort_EmptyTable needs nothing.
func TestMinEffort_EmptyTable(t *testing.T) {
	got, ok := feasibility.MinEffort(coverage.Table{}, 0)
	assert.True(t, ok)
	assert.Equal(t, int64(0), got)
}

// TestKind_RoundTrip covers names, parsing and dispatch.
func TestKind_RoundTrip(t *testing.T) {
	for _, k := range []feasibility.Kind{feasibility.KindBurstDP, feasibility.KindBrute} {
		parsed, err := feasibility.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, parsed)

		fn, err := feasibility.ByKind(k)
		require.NoError(t, err)
		assert.True(t, fn(inst([]int64{3}, []int64{3}, 1, 1), 0))
	}

	_, err := feasibility.ParseKind("greedy")
	assert.ErrorIs(t, err, feasibility.ErrUnknownOracle)
	_, err = feasibility.ByKind(feasibility.Kind(42))
	assert.ErrorIs(t, err, feasibility.ErrUnknownOracle)
	assert.Equal(t, "Kind(42)", feasibility.Kind(42).String())
}
