package radius

import (
	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
)

// Search returns the smallest radius in (Low, High] accepted by ok.
// High is returned when nothing smaller passes; it is never probed.
//
// Complexity: O(log(High − Low)) calls to ok.
func Search(ok Predicate, opts ...Option) (int64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}

	lo, hi := o.Low, o.High
	for hi-lo > 1 {
		mid := lo + (hi-lo)/2
		verdict := ok(mid)
		o.OnProbe(mid, verdict)
		if verdict {
			hi = mid
		} else {
			lo = mid
		}
	}

	return hi, nil
}

// Minimal returns the smallest radius at which oracle lights every outpost
// of inst within its burst and effort budgets.
func Minimal(inst instance.Instance, oracle feasibility.Func, opts ...Option) (int64, error) {
	return Search(func(r int64) bool { return oracle(inst, r) }, opts...)
}
