// Package radius finds the smallest illumination radius for which a
// feasibility oracle says yes.
//
// The oracle is monotone in the radius (a larger radius only widens every
// outpost's lantern range), so a classic integer binary search applies:
//
//	lo = -1            known infeasible (open bound)
//	hi = 2_000_000_000 known feasible: coordinates lie in [-1e9, 1e9]
//	while hi − lo > 1: mid = lo + (hi−lo)/2; ok(mid) ? hi = mid : lo = mid
//	return hi
//
// The search makes about 31 probes. Each probe is independent and
// allocates its own state inside the oracle.
//
// ⚙️ Usage:
//
//	s, err := radius.Minimal(inst, feasibility.BurstDP)
//
//	// watch every probe
//	s, err = radius.Minimal(inst, feasibility.Brute,
//	  radius.WithOnProbe(func(r int64, ok bool) { … }))
package radius
