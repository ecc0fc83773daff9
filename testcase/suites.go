package testcase

import (
	"fmt"

	"github.com/katalvlaran/lantern/instance"
)

// Small returns the hand-written small suite.
func Small() []Case {
	return []Case{
		fixed("exact-match", 0, 1, 1, []int64{0}, []int64{0}),
		fixed("far-apart", 10, 1, 1, []int64{5}, []int64{-5}),
		fixed("equal-outposts", 0, 1, 1, []int64{2, 2, 2, 2, 2}, []int64{0, 2, 4}),
		fixed("duplicate-lanterns", 2, 1, 1, []int64{1, 3}, []int64{1, 1, 1, 3}),
		fixed("outposts-left", 10, 1, 1, []int64{-10, -9}, []int64{0, 5}),
		fixed("inclusive-boundary", 3, 1, 1, []int64{-3, 3}, []int64{0}),
		fixed("two-single-bursts", 0, 2, 3, []int64{-5, 5}, []int64{-5, 0, 0, 0, 5, 10}),
		fixed("one-lantern-only", 10, 1, 1, []int64{-10, 10}, []int64{-10, -5, 0, 5, 10}),
		fixed("whole-row", 1, 6, 1, []int64{-6, -1, 0, 1, 6}, []int64{-5, -2, 0, 2, 5, 7}),
		fixed("effort-binding", 0, 3, 30, []int64{-6, 0, 6}, []int64{-6, -3, 0, 3, 6, 9, 12}),
	}
}

// Edge returns the boundary suite.
func Edge() []Case {
	return []Case{
		fixed("min-size-zero", 0, 1, 1, []int64{0}, []int64{0}),
		fixed("min-size-extreme", 2_000_000_000, 1, 1, []int64{-1_000_000_000}, []int64{1_000_000_000}),
		fixed("all-outposts-equal", 0, 1, 1, []int64{0, 0, 0, 0, 0}, []int64{-5, 0, 5}),
		fixed("duplicate-lantern-block", 0, 2, 1, []int64{0, 100}, []int64{0, 0, 0, 0, 100}),
		fixed("inclusive-both-sides", 5, 1, 1, []int64{-5, 5}, []int64{0}),
		fixed("one-sided-left", 10, 1, 1, []int64{-10, -9, -8}, []int64{0, 100}),
		fixed("one-sided-right", 10, 1, 1, []int64{8, 9, 10}, []int64{-100, 0}),
		fixed("single-lantern-tradeoff", 100, 1, 1, []int64{0, 100, 200}, []int64{0, 100, 200}),
		fixed("contiguous-pair", 2, 2, 1, []int64{0, 102}, []int64{0, 1, 2, 100, 101, 102}),
		fixed("overflow-span", 1_999_999_999, 1, 1, []int64{-1_000_000_000, 1_000_000_000}, []int64{999_999_999, 1_000_000_000}),
		fixed("off-by-one", 1, 1, 1, []int64{0, 0, 0, 0, 0, 1}, []int64{0, 2}),
		lazy("max-size-shifted", 1, func() instance.Instance {
			const n = 100_000

			return instance.Instance{
				Outposts:  arith(n, 0, 1),
				Lanterns:  arith(n, 1, 1),
				MaxEffort: n,
				MaxBursts: 30,
			}
		}),
		lazy("many-outposts-few-lanterns", 25_000, func() instance.Instance {
			return instance.Instance{
				Outposts:  arith(100_000, -50_000, 1),
				Lanterns:  []int64{-100_000, -50_000, 0, 50_000, 100_000},
				MaxEffort: 5,
				MaxBursts: 2,
			}
		}),
		fixed("best-single-of-many", 90, 1, 30,
			[]int64{-90, -40, -10, 0, 10, 40, 90},
			[]int64{-100, -80, -60, -40, -20, 0, 20, 40, 60, 80}),
		fixed("bursts-at-both-ends", 0, 4, 2, []int64{-10, -8, 51}, []int64{-10, -9, -8, 50, 51}),
	}
}

// BySuite resolves a suite name. count and seed only apply to "random".
func BySuite(name string, count int, seed int64) ([]Case, error) {
	switch name {
	case "small":
		return Small(), nil
	case "edge":
		return Edge(), nil
	case "large":
		return Large(), nil
	case "random":
		base := NewRNG(seed)
		cases := make([]Case, count)
		for i := range cases {
			in := Random(DeriveRNG(base, uint64(i)), DefaultBounds())
			cases[i] = fixed(fmt.Sprintf("random-%d", i), Unknown, in.MaxEffort, in.MaxBursts, in.Outposts, in.Lanterns)
		}

		return cases, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSuite, name)
	}
}

// arith returns count values start, start+step, ….
func arith(count int, start, step int64) []int64 {
	xs := make([]int64, count)
	for i := range xs {
		xs[i] = start + int64(i)*step
	}

	return xs
}
