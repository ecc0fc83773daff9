package coverage

// Table is the coverage interval table for one radius.
//
// Left[i] and Right[i] (1 ≤ i ≤ n) are the first and last 1-based lantern
// indices within the radius of outpost i. Both sequences are non-decreasing.
// A Table is only returned as usable when Left[i] ≤ Right[i] for every i.
type Table struct {
	Left  []int
	Right []int
}

// Len returns the number of outposts described by t.
func (t Table) Len() int {
	if len(t.Left) == 0 {
		return 0
	}

	return len(t.Left) - 1
}

// Range returns the 1-based lantern range of 1-based outpost i.
// ok is false when i is outside [1..Len()].
func (t Table) Range(i int) (left, right int, ok bool) {
	if i < 1 || i > t.Len() {
		return 0, 0, false
	}

	return t.Left[i], t.Right[i], true
}

// Build computes the coverage table for radius over sorted outposts and lanterns.
//
// Algorithm:
//  1. lp = first lantern with coordinate ≥ outpost − radius.
//  2. rp = number of lanterns with coordinate ≤ outpost + radius, never below lp.
//  3. Left[i] = lp + 1, Right[i] = rp (1-based).
//  4. Stop as soon as Left[i] > Right[i]: that outpost cannot be lit at this
//     radius, whatever the bursts and effort.
//
// ok reports whether every outpost has a non-empty range. When ok is false
// the returned Table is only filled up to the failing outpost.
//
// Complexity: O(n + m) time, O(n) memory.
func Build(radius int64, outposts, lanterns []int64) (tbl Table, ok bool) {
	n := len(outposts)
	tbl = Table{
		Left:  make([]int, n+1),
		Right: make([]int, n+1),
	}

	return tbl, BuildInto(radius, outposts, lanterns, tbl)
}

// BuildInto is Build writing into caller-owned slices of length ≥ n+1.
// Build allocates a fresh Table per call and delegates here. On true,
// entries 1..n are overwritten; on false, only those up to the failing
// outpost.
func BuildInto(radius int64, outposts, lanterns []int64, tbl Table) bool {
	var (
		n  = len(outposts)
		m  = len(lanterns)
		lp int // first lantern with coordinate ≥ outpost − radius
		rp int // first lantern with coordinate > outpost + radius
		i  int
	)
	for i = 1; i <= n; i++ {
		x := outposts[i-1]
		lo, hi := x-radius, x+radius

		for lp < m && lanterns[lp] < lo {
			lp++
		}
		if rp < lp {
			rp = lp
		}
		for rp < m && lanterns[rp] <= hi {
			rp++
		}

		tbl.Left[i] = lp + 1
		tbl.Right[i] = rp
		if tbl.Left[i] > tbl.Right[i] {
			return false
		}
	}

	return true
}
