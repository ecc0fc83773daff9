// Package lantern finds the smallest lantern radius that lights every
// outpost on a line when lanterns may only be switched on in a few
// contiguous bursts under a total effort budget.
//
// 🚀 What is lantern?
//
//	A small, dependency-light toolkit around one puzzle:
//		• Input model: sorted outposts a, sorted lanterns b, effort k, bursts t
//		• Coverage: per-outpost 1-based lantern ranges for a radius
//		• Feasibility: an exhaustive reference oracle and an O(t·n) burst DP
//		• Radius search: monotone binary search over (-1, 2e9]
//		• Test suites: small, edge, large and seeded random instances
//		• Crosscheck: concurrent differential testing of the two oracles
//
// ✨ Why two oracles?
//
//   - Brute is obviously correct and only usable for m ≲ 16
//   - BurstDP handles n, m ≤ 1e5 and t ≤ 30 in well under a second
//   - crosscheck runs them side by side at every probed radius
//
// Layout:
//
//	instance/    - Instance type, token reader, writer, constraint validation
//	coverage/    - two-pointer coverage table
//	feasibility/ - Brute, BurstDP, MinEffort, oracle selection
//	radius/      - Search, Minimal, SingleLanternBound
//	testcase/    - suites, random generator, answer checker
//	crosscheck/  - differential harness (errgroup worker pool)
//	cmd/lantern/ - CLI: solve, gen, validate, check, coverage, crosscheck
//
// Quick ASCII example (k = 4, t = 2, answer 0):
//
//	outposts:  -10   -8                      51
//	lanterns:  -10 -9 -8                  50 51
//	bursts  :  [ ----- ]                     [ ]
//
//	go install github.com/katalvlaran/lantern/cmd/lantern@latest
package lantern
