package testcase

import "github.com/katalvlaran/lantern/instance"

const (
	largeN = 100_000
	largeM = 100_000
)

// Large returns the 100000 × 100000 stress suite. Instances are built on
// demand; each one holds about 1.6 MB of coordinates.
func Large() []Case {
	return []Case{
		lazy("extremes-overflow", 1_999_900_001, func() instance.Instance {
			return instance.Instance{
				Outposts:  arith(largeN, 1_000_000_000-(largeN-1), 1),
				Lanterns:  arith(largeM, -1_000_000_000, 1),
				MaxEffort: 1,
				MaxBursts: 1,
			}
		}),
		lazy("heavy-duplicates", 0, func() instance.Instance {
			return instance.Instance{
				Outposts:  repeat(nil, 0, largeN),
				Lanterns:  repeat(repeat(nil, 0, largeM/2), 1, largeM-largeM/2),
				MaxEffort: 1,
				MaxBursts: 30,
			}
		}),
		lazy("single-point-lanterns", 1_000_000_000, func() instance.Instance {
			return instance.Instance{
				Outposts:  spread(largeN, -1_000_000_000, 2_000_000_000),
				Lanterns:  repeat(nil, 0, largeM),
				MaxEffort: 50_000,
				MaxBursts: 30,
			}
		}),
		lazy("three-clusters-two-bursts", 39_999, func() instance.Instance {
			var lanterns []int64
			lanterns = append(lanterns, arith(40_000, -1_000_000_000, 1)...)
			lanterns = append(lanterns, arith(20_000, 0, 1)...)
			lanterns = append(lanterns, arith(40_000, 1_000_000_000-39_999, 1)...)

			outposts := repeat(nil, -1_000_000_000, 33_334)
			outposts = repeat(outposts, 0, 33_333)
			outposts = repeat(outposts, 1_000_000_000, 33_333)

			return instance.Instance{Outposts: outposts, Lanterns: lanterns, MaxEffort: 3, MaxBursts: 2}
		}),
		lazy("balanced-single-lantern", 500_006_000, func() instance.Instance {
			return instance.Instance{
				Outposts:  spread(largeN, -500_000_000, 1_000_000_000),
				Lanterns:  spread(largeM, -600_000_000, 1_200_000_000),
				MaxEffort: 1,
				MaxBursts: 1,
			}
		}),
		lazy("all-on-midpoints", 10_000, func() instance.Instance {
			return instance.Instance{
				Outposts:  arith(largeN, -1_000_000_000+10_000, 20_000),
				Lanterns:  arith(largeM, -1_000_000_000, 20_000),
				MaxEffort: largeM,
				MaxBursts: 1,
			}
		}),
		lazy("thirty-clusters", 0, func() instance.Instance {
			const clusters = 30
			var outposts, lanterns []int64
			for c := range clusters {
				center := int64(-725_000_000 + c*50_000_000)
				lanterns = append(lanterns, arith(share(largeM, clusters, c), center, 1)...)
				outposts = repeat(outposts, center, share(largeN, clusters, c))
			}

			return instance.Instance{Outposts: outposts, Lanterns: lanterns, MaxEffort: 30, MaxBursts: 30}
		}),
		lazy("inclusive-distance-8", 8, func() instance.Instance {
			lanterns := arith(largeM, -999_990_000, 20)
			outposts := make([]int64, largeN)
			for i := range outposts {
				if i < largeN/2 {
					outposts[i] = lanterns[i] - 8
				} else {
					outposts[i] = lanterns[i] + 8
				}
			}

			return instance.Instance{Outposts: outposts, Lanterns: lanterns, MaxEffort: largeM, MaxBursts: 1}
		}),
		lazy("dense-lanterns-ten-outposts", 0, func() instance.Instance {
			uniques := []int64{-40_000, -30_000, -20_000, -10_000, -1, 0, 1, 10_000, 20_000, 30_000}
			var outposts []int64
			for _, x := range uniques {
				outposts = repeat(outposts, x, largeN/len(uniques))
			}

			return instance.Instance{
				Outposts:  outposts,
				Lanterns:  arith(largeM, -50_000, 1),
				MaxEffort: 100,
				MaxBursts: 30,
			}
		}),
		lazy("interleaved-grids", 1_667, func() instance.Instance {
			return instance.Instance{
				Outposts:  arith(largeN, -1_000_000+1, 2),
				Lanterns:  arith(largeM, -1_000_000, 2),
				MaxEffort: 50_000,
				MaxBursts: 30,
			}
		}),
	}
}

// repeat appends count copies of x to xs.
func repeat(xs []int64, x int64, count int) []int64 {
	for range count {
		xs = append(xs, x)
	}

	return xs
}

// spread returns count points from start to start+width, both included.
func spread(count int, start, width int64) []int64 {
	xs := make([]int64, count)
	for i := range xs {
		xs[i] = start + int64(i)*width/int64(count-1)
	}

	return xs
}

// share is the size of part i when total is split into parts near-equal
// pieces, the first total%parts pieces one larger.
func share(total, parts, i int) int {
	size := total / parts
	if i < total%parts {
		size++
	}

	return size
}
