package radius

import "github.com/katalvlaran/lantern/instance"

// SingleLanternBound returns min over lanterns j of
// max(|a_min − b_j|, |a_max − b_j|): the radius reached by switching on one
// lantern only. Any instance with k ≥ 1 and t ≥ 1 can afford that plan, so
// the minimal radius never exceeds it.
//
// ok is false when there are no outposts or no lanterns.
//
// Complexity: O(m).
func SingleLanternBound(inst instance.Instance) (bound int64, ok bool) {
	if inst.N() == 0 || inst.M() == 0 {
		return 0, false
	}
	lo, hi := inst.Outposts[0], inst.Outposts[inst.N()-1]

	var (
		b    int64
		need int64
	)
	for i := range inst.Lanterns {
		b = inst.Lanterns[i]
		need = max(abs64(lo-b), abs64(hi-b))
		if i == 0 || need < bound {
			bound = need
		}
	}

	return bound, true
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}

	return x
}
