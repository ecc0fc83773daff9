package radius_test

import (
	"fmt"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/radius"
)

// ExampleMinimal solves a small instance with both oracles.
//
// Scenario:
//
//	outposts: -6 -1 0 1 6        k = 6 (every lantern affordable)
//	lanterns: -5 -2 0 2 5 7      t = 1 (one burst)
//
// With the whole row on, the farthest outpost from its nearest lantern is
// 1 unit away.
func ExampleMinimal() {
	in := instance.Instance{
		Outposts:  []int64{-6, -1, 0, 1, 6},
		Lanterns:  []int64{-5, -2, 0, 2, 5, 7},
		MaxEffort: 6,
		MaxBursts: 1,
	}
	dp, _ := radius.Minimal(in, feasibility.BurstDP)
	bf, _ := radius.Minimal(in, feasibility.Brute)
	fmt.Println(dp, bf)
	// Output:
	// 1 1
}
