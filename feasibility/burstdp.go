package feasibility

import (
	"github.com/katalvlaran/lantern/coverage"
	"github.com/katalvlaran/lantern/instance"
)

// infEffort marks an unreachable prefix. It is far above any real effort
// (≤ m ≤ 1e5) and far below overflow after the +1/+m adjustments.
const infEffort = int64(1) << 60

// BurstDP reports whether inst can be lit at radius, using the burst
// dynamic program over the coverage table.
//
// Edge cases match Brute: n == 0 is always feasible; an empty coverage range
// for any outpost, t ≤ 0 or k ≤ 0 make the radius infeasible.
func BurstDP(inst instance.Instance, radius int64) bool {
	n := inst.N()
	if n == 0 {
		return true
	}
	if inst.MaxEffort <= 0 || inst.MaxBursts <= 0 {
		return false
	}
	tbl, ok := coverage.Build(radius, inst.Outposts, inst.Lanterns)
	if !ok {
		return false
	}
	effort, ok := MinEffort(tbl, min(inst.MaxBursts, inst.MaxEffort))

	return ok && effort <= int64(inst.MaxEffort)
}

// MinEffort returns the minimum total burst length needed to light all
// outposts of tbl with at most maxBursts bursts. ok is false when no plan
// with that many bursts exists (only possible for maxBursts ≤ 0 or an
// unusable table).
//
// DP state: best[j] = minimum effort lighting outposts 1..j with at most b
// bursts. One burst lights a contiguous block start..j of outposts; the
// cheapest such burst must reach left to Right[start] and right to Left[j]:
//
//	Right[start] ≥ Left[j]  ("good")  cost 1
//	Right[start] <  Left[j]  ("bad")   cost Left[j] − Right[start] + 1
//
// so, per round b with prev = best after b−1 rounds,
//
//	cur[j] = min( min_{good start} prev[start−1] + 1,
//	              min_{bad start}  prev[start−1] − Right[start] + Left[j] + 1 ).
//
// Right is non-decreasing, so the bad starts are exactly 1..boundary where
// boundary only grows with j. The bad minimum is therefore a running scalar,
// and the good minimum is a sliding-window minimum over prev[start−1] for
// start in boundary+1..j, kept in a monotonic deque (values non-decreasing
// from front to back).
//
// Rounds stop at min(maxBursts, n): a burst always lights at least one new
// outpost. They also stop early once a round improves no prefix, since every
// later round would then repeat it.
//
// Complexity: O(rounds · n) time (each index enters and leaves the deque at
// most once per round), O(n) memory.
func MinEffort(tbl coverage.Table, maxBursts int) (effort int64, ok bool) {
	n := tbl.Len()
	if n == 0 {
		return 0, true
	}
	rounds := min(maxBursts, n)
	if rounds <= 0 {
		return 0, false
	}

	var (
		best = make([]int64, n+1) // over ≤ b bursts
		prev = make([]int64, n+1) // best after b−1 rounds
		cur  = make([]int64, n+1) // exactly one more burst than prev
		dq   = newIndexDeque(n + 1)
		j    int
	)
	for j = 1; j <= n; j++ {
		best[j] = infEffort
	}

	for b := 1; b <= rounds; b++ {
		copy(prev, best)
		burstRound(tbl, prev, cur, dq)

		improved := false
		for j = 1; j <= n; j++ {
			if cur[j] < best[j] {
				best[j] = cur[j]
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	if best[n] >= infEffort {
		return 0, false
	}

	return best[n], true
}

// burstRound fills cur[1..n] from prev by appending exactly one burst.
func burstRound(tbl coverage.Table, prev, cur []int64, dq *indexDeque) {
	n := tbl.Len()
	boundary := 0        // outposts 1..boundary have Right < Left[end]
	processed := 0       // bad starts already folded into bestBad
	bestBad := infEffort // min prev[start−1] − Right[start] over bad starts
	dq.reset()
	cur[0] = 0

	for end := 1; end <= n; end++ {
		// start = end becomes a candidate; its prefix is end−1.
		p := end - 1
		if prev[p] < infEffort {
			for !dq.empty() && prev[dq.back()] >= prev[p] {
				dq.popBack()
			}
			dq.pushBack(p)
		}

		for boundary < n && tbl.Right[boundary+1] < tbl.Left[end] {
			boundary++
		}
		badStarts := min(boundary, end)

		for processed < badStarts {
			processed++
			if prev[processed-1] < infEffort {
				bestBad = min(bestBad, prev[processed-1]-int64(tbl.Right[processed]))
			}
		}

		// Prefixes below badStarts belong to bad starts now.
		for !dq.empty() && dq.front() < badStarts {
			dq.popFront()
		}

		v := infEffort
		if !dq.empty() {
			v = prev[dq.front()] + 1
		}
		if bestBad < infEffort {
			v = min(v, bestBad+int64(tbl.Left[end])+1)
		}
		cur[end] = v
	}
}
