// Package instance - validation against the puzzle constraints.
//
// Design principles (shared with the solvers):
//   - Deterministic, side-effect free.
//   - No logging, no panics on user input - only sentinel errors from types.go,
//     wrapped with the offending value.
//   - O(n + m) time, no allocations.
package instance

import "fmt"

// Validate checks inst against lim in stages: header, outposts, lanterns.
// The first violation is returned.
//
// Complexity: O(n + m).
func Validate(inst Instance, lim Limits) error {
	// Stage 1: header.
	if err := validateHeader(inst, lim); err != nil {
		return err
	}

	// Stage 2: coordinates, sortedness and range.
	if err := validateCoords("outposts", inst.Outposts, lim); err != nil {
		return err
	}

	return validateCoords("lanterns", inst.Lanterns, lim)
}

// validateHeader enforces 1 ≤ n ≤ MaxOutposts, 1 ≤ m ≤ MaxLanterns,
// 1 ≤ k ≤ m and 1 ≤ t ≤ MaxBursts.
func validateHeader(inst Instance, lim Limits) error {
	n, m := inst.N(), inst.M()
	if n < 1 || n > lim.MaxOutposts {
		return fmt.Errorf("%w: n=%d not in [1..%d]", ErrOutOfRange, n, lim.MaxOutposts)
	}
	if m < 1 || m > lim.MaxLanterns {
		return fmt.Errorf("%w: m=%d not in [1..%d]", ErrOutOfRange, m, lim.MaxLanterns)
	}
	if inst.MaxEffort < 1 || inst.MaxEffort > m {
		return fmt.Errorf("%w: k=%d not in [1..m=%d]", ErrOutOfRange, inst.MaxEffort, m)
	}
	if inst.MaxBursts < 1 || inst.MaxBursts > lim.MaxBursts {
		return fmt.Errorf("%w: t=%d not in [1..%d]", ErrOutOfRange, inst.MaxBursts, lim.MaxBursts)
	}

	return nil
}

// validateCoords checks that xs is non-decreasing and within [MinCoord, MaxCoord].
func validateCoords(what string, xs []int64, lim Limits) error {
	var i int
	for i = range xs {
		if xs[i] < lim.MinCoord || xs[i] > lim.MaxCoord {
			return fmt.Errorf("%w: %s[%d]=%d", ErrOutOfRange, what, i, xs[i])
		}
		if i > 0 && xs[i] < xs[i-1] {
			return fmt.Errorf("%w: %s[%d]=%d < %d", ErrNotSorted, what, i, xs[i], xs[i-1])
		}
	}

	return nil
}
