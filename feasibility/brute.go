// Package feasibility - exhaustive reference oracle.
//
// Brute enumerates every plan in canonical form: bursts are non-empty,
// disjoint and listed left to right by lantern index. Any plan can be
// rewritten into that form without more bursts or more effort, so the
// enumeration is complete.
//
// Search:
//  1. At every node (not only at leaves) test whether the lanterns switched
//     on so far already light every outpost. Fewer than t bursts is fine.
//  2. Otherwise, if bursts, effort and lanterns remain, try every next burst
//     [l..r] with l ≥ start, stopping r as soon as the burst would exceed
//     the remaining effort.
//  3. Recurse with start = r+1, then undo the activation (pop back).
//
// Complexity: exponential in m; intended for m ≤ BruteLimit.
// Memory: O(m) for the active buffer plus O(t) recursion depth.
package feasibility

import "github.com/katalvlaran/lantern/instance"

// bruteEngine holds the search state.
// active is shared by the whole recursion and mutated with push/undo.
type bruteEngine struct {
	outposts []int64
	lanterns []int64
	radius   int64

	maxEffort int
	maxBursts int

	active []int // 0-based lantern indices currently switched on
}

// Brute reports, by exhaustive search, whether inst can be lit at radius.
//
// Edge cases:
//   - n == 0 is feasible at any radius (nothing to light).
//   - m == 0, k ≤ 0 or t ≤ 0 with n > 0 is infeasible.
func Brute(inst instance.Instance, radius int64) bool {
	if inst.N() == 0 {
		return true
	}
	if inst.M() == 0 || inst.MaxEffort <= 0 || inst.MaxBursts <= 0 {
		return false
	}

	e := bruteEngine{
		outposts:  inst.Outposts,
		lanterns:  inst.Lanterns,
		radius:    radius,
		maxEffort: inst.MaxEffort,
		// Every burst costs at least 1, so more than k bursts is never usable.
		maxBursts: min(inst.MaxBursts, inst.MaxEffort),
		active:    make([]int, 0, inst.M()),
	}

	return e.dfs(0, 0, 0)
}

// covers reports whether every outpost is within radius of an active lantern.
func (e *bruteEngine) covers() bool {
	if len(e.active) == 0 {
		return false
	}

	var (
		a   int64
		idx int
		hit bool
	)
	for _, a = range e.outposts {
		hit = false
		for _, idx = range e.active {
			if absDiff(a, e.lanterns[idx]) <= e.radius {
				hit = true

				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

// dfs explores all burst sequences whose next burst starts at or after start.
func (e *bruteEngine) dfs(start, burstsUsed, effortUsed int) bool {
	if e.covers() {
		return true
	}
	m := len(e.lanterns)
	if burstsUsed == e.maxBursts || effortUsed >= e.maxEffort || start >= m {
		return false
	}

	var l, r, idx, mark int
	for l = start; l < m; l++ {
		for r = l; r < m; r++ {
			length := r - l + 1
			if effortUsed+length > e.maxEffort {
				break // a longer r only costs more
			}

			mark = len(e.active)
			for idx = l; idx <= r; idx++ {
				e.active = append(e.active, idx)
			}
			if e.dfs(r+1, burstsUsed+1, effortUsed+length) {
				return true
			}
			e.active = e.active[:mark]
		}
	}

	return false
}

// absDiff returns |a − b|. Inputs are bounded by ±1e9 so no overflow occurs.
func absDiff(a, b int64) int64 {
	if a < b {
		return b - a
	}

	return a - b
}
