package testcase_test

import (
	"fmt"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/radius"
	"github.com/katalvlaran/lantern/testcase"
)

// ExampleSmall solves the first three hand-written cases.
func ExampleSmall() {
	for _, c := range testcase.Small()[:3] {
		got, _ := radius.Minimal(c.Instance(), feasibility.BurstDP)
		fmt.Printf("%s: %d (verify=%v)\n", c.Name, got, c.Verify(got))
	}
	// Output:
	// exact-match: 0 (verify=<nil>)
	// far-apart: 10 (verify=<nil>)
	// equal-outposts: 0 (verify=<nil>)
}
