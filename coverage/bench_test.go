package coverage_test

import (
	"testing"

	"github.com/katalvlaran/lantern/coverage"
)

// BenchmarkBuildInto_100k measures one sweep over 1e5 outposts and lanterns
// with a reused table, as done by every radius probe.
func BenchmarkBuildInto_100k(b *testing.B) {
	const n = 100_000
	outposts := make([]int64, n)
	lanterns := make([]int64, n)
	for i := 0; i < n; i++ {
		outposts[i] = int64(2*i + 1)
		lanterns[i] = int64(2 * i)
	}
	tbl := coverage.Table{Left: make([]int, n+1), Right: make([]int, n+1)}

	b.ReportAllocs()
	b.ResetTimer()
	for it := 0; it < b.N; it++ {
		if !coverage.BuildInto(1, outposts, lanterns, tbl) {
			b.Fatal("radius 1 must light every outpost")
		}
	}
}
