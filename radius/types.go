package radius

import (
	"errors"
	"fmt"
)

// Default search bounds. They follow from coordinates in [-1e9, 1e9]:
// no two points are farther apart than 2e9.
const (
	DefaultLow  int64 = -1
	DefaultHigh int64 = 2_000_000_000
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("radius: invalid option supplied")

// Predicate reports whether a radius is feasible. It must be monotone.
type Predicate func(radius int64) bool

// Option configures the search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the search bounds and hooks.
type Options struct {
	// Low is an open bound assumed infeasible; it is never probed.
	Low int64

	// High is a closed bound assumed feasible; it is returned when no
	// smaller radius passes.
	High int64

	// OnProbe is called after every predicate evaluation.
	OnProbe func(radius int64, ok bool)

	err error
}

// DefaultOptions returns bounds (-1, 2e9] and a no-op probe hook.
func DefaultOptions() Options {
	return Options{
		Low:     DefaultLow,
		High:    DefaultHigh,
		OnProbe: func(int64, bool) {},
	}
}

// WithBounds overrides the search interval (lo, hi]. lo must be < hi.
func WithBounds(lo, hi int64) Option {
	return func(o *Options) {
		if lo >= hi {
			o.err = fmt.Errorf("%w: bounds (%d, %d] are empty", ErrOptionViolation, lo, hi)

			return
		}
		o.Low, o.High = lo, hi
	}
}

// WithOnProbe registers a hook called with each probed radius and its verdict.
func WithOnProbe(fn func(radius int64, ok bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnProbe = fn
		}
	}
}

func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
