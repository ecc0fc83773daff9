// Package feasibility answers the question at the heart of the puzzle:
// can every outpost be lit at radius s using at most t bursts of total
// length at most k?
//
// Two independent oracles are provided and must always agree:
//
//   - Brute - exhaustive depth-first enumeration of disjoint, left-to-right
//     bursts with push/pop backtracking over one active-lantern buffer.
//     Exponential; use only on tiny inputs (see BruteLimit) as ground truth.
//
//   - BurstDP - a bursts × outposts dynamic program over the coverage table
//     (package coverage). For each burst round it keeps a monotonic deque of
//     prefix indices for bursts that start inside the current outpost's
//     lantern range ("good": cost +1) and a running scalar minimum for bursts
//     that must bridge a gap ("bad": cost grows with the gap).
//     Time O(min(t,k,n) · n + n + m), memory O(n).
//
// Both are monotone in the radius, which is what package radius relies on.
//
// ⚙️ Usage:
//
//	ok := feasibility.BurstDP(inst, 7)
//	ref := feasibility.Brute(inst, 7) // same answer, tiny inputs only
//
//	oracle, err := feasibility.ByKind(feasibility.KindBrute)
package feasibility
