package instance

import "errors"

// Sentinel errors for reading and validating instances.
var (
	// ErrMalformedInput indicates a token that is not a base-10 integer.
	ErrMalformedInput = errors.New("instance: malformed integer token")

	// ErrTruncatedInput indicates the stream ended in the middle of an instance.
	ErrTruncatedInput = errors.New("instance: unexpected end of input")

	// ErrNegativeCount indicates a negative outpost or lantern count in the header.
	ErrNegativeCount = errors.New("instance: negative element count")

	// ErrOutOfRange indicates a header value or coordinate outside the Limits.
	ErrOutOfRange = errors.New("instance: value out of range")

	// ErrNotSorted indicates outposts or lanterns that are not non-decreasing.
	ErrNotSorted = errors.New("instance: coordinates must be sorted non-decreasing")
)

// Instance is one puzzle input.
//
// Outposts and Lanterns are sorted ascending and are never mutated by the
// solvers. MaxEffort is k (total burst length budget) and MaxBursts is t.
type Instance struct {
	Outposts  []int64
	Lanterns  []int64
	MaxEffort int
	MaxBursts int
}

// N returns the number of outposts.
func (in Instance) N() int { return len(in.Outposts) }

// M returns the number of lanterns.
func (in Instance) M() int { return len(in.Lanterns) }

// Limits bounds the values accepted by Validate.
type Limits struct {
	MaxOutposts int
	MaxLanterns int
	MaxBursts   int
	MinCoord    int64
	MaxCoord    int64
}

// Coordinate bounds of the puzzle. The radius search relies on them.
const (
	MinCoordinate int64 = -1_000_000_000
	MaxCoordinate int64 = 1_000_000_000
)

// DefaultLimits returns the official puzzle constraints:
//   - 1 ≤ n ≤ 100000, 1 ≤ m ≤ 100000
//   - 1 ≤ k ≤ m, 1 ≤ t ≤ 30
//   - every coordinate in [-1e9, 1e9]
func DefaultLimits() Limits {
	return Limits{
		MaxOutposts: 100_000,
		MaxLanterns: 100_000,
		MaxBursts:   30,
		MinCoord:    MinCoordinate,
		MaxCoord:    MaxCoordinate,
	}
}
