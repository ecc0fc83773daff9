// Package coverage builds, for a candidate radius, the range of lanterns
// that can light each outpost.
//
// Because lanterns are sorted, the lanterns within distance s of an outpost
// form one contiguous block of lantern indices [Left[i], Right[i]]. Because
// outposts are sorted too, both ends of that block only move right as the
// outpost index grows, so a two-pointer sweep builds the whole table in
// O(n + m).
//
// Indices in a Table are 1-based on both axes: outpost i ∈ [1..n] maps to
// lanterns Left[i]..Right[i] ∈ [1..m]. Slot 0 is unused and kept at zero so
// the feasibility DP can index prefixes directly.
package coverage
