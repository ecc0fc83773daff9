package testcase

import (
	"math/rand"
	"slices"

	"github.com/katalvlaran/lantern/instance"
)

// Random draws a small instance within b:
//   - 1 ≤ n ≤ MaxOutposts, 1 ≤ m ≤ MaxLanterns
//   - 1 ≤ k ≤ m, 1 ≤ t ≤ k
//   - sorted coordinates in [-CoordSpan, CoordSpan]
//
// Non-positive bounds are treated as 1 (and CoordSpan as 0).
func Random(rng *rand.Rand, b Bounds) instance.Instance {
	maxN := max(b.MaxOutposts, 1)
	maxM := max(b.MaxLanterns, 1)
	span := max(b.CoordSpan, 0)

	n := 1 + rng.Intn(maxN)
	m := 1 + rng.Intn(maxM)
	k := 1 + rng.Intn(m)

	return instance.Instance{
		Outposts:  sortedCoords(rng, n, span),
		Lanterns:  sortedCoords(rng, m, span),
		MaxEffort: k,
		MaxBursts: 1 + rng.Intn(k),
	}
}

func sortedCoords(rng *rand.Rand, count int, span int64) []int64 {
	xs := make([]int64, count)
	for i := range xs {
		xs[i] = rng.Int63n(2*span+1) - span
	}
	slices.Sort(xs)

	return xs
}
