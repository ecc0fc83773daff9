package testcase

import (
	"errors"

	"github.com/katalvlaran/lantern/instance"
)

// Sentinel errors returned by ParseAnswer and CheckAnswer.
var (
	// ErrMalformedAnswer indicates output that is not exactly one integer line.
	ErrMalformedAnswer = errors.New("testcase: output must be one integer on one line")

	// ErrNegativeAnswer indicates a radius below zero.
	ErrNegativeAnswer = errors.New("testcase: radius must be >= 0")

	// ErrAnswerTooLarge indicates a radius above the single-lantern bound.
	ErrAnswerTooLarge = errors.New("testcase: radius exceeds the single-lantern bound")

	// ErrWrongAnswer indicates a radius different from the known answer.
	ErrWrongAnswer = errors.New("testcase: radius differs from the expected answer")

	// ErrUnknownSuite is returned by BySuite for an unsupported name.
	ErrUnknownSuite = errors.New("testcase: unknown suite")
)

// Unknown marks a Case whose minimal radius is not recorded.
const Unknown int64 = -1

// Case is a named instance with its expected answer when known.
type Case struct {
	Name string
	Want int64

	build func() instance.Instance
}

// Instance builds (or returns) the case's input.
func (c Case) Instance() instance.Instance { return c.build() }

func fixed(name string, want int64, k, t int, outposts, lanterns []int64) Case {
	in := instance.Instance{Outposts: outposts, Lanterns: lanterns, MaxEffort: k, MaxBursts: t}

	return Case{Name: name, Want: want, build: func() instance.Instance { return in }}
}

func lazy(name string, want int64, build func() instance.Instance) Case {
	return Case{Name: name, Want: want, build: build}
}

// Bounds limits the shape of Random instances.
type Bounds struct {
	MaxOutposts int
	MaxLanterns int
	CoordSpan   int64 // coordinates drawn from [-CoordSpan, CoordSpan]
}

// DefaultBounds keeps instances small enough for the brute-force oracle.
func DefaultBounds() Bounds {
	return Bounds{MaxOutposts: 8, MaxLanterns: 8, CoordSpan: 50}
}
