package feasibility

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lantern/instance"
)

// ErrUnknownOracle is returned for an unsupported Kind or oracle name.
var ErrUnknownOracle = errors.New("feasibility: unknown oracle")

// BruteLimit is the largest lantern count for which Brute finishes quickly.
// Brute still runs above it; callers decide whether to allow that.
const BruteLimit = 16

// Func reports whether inst can be fully lit at radius.
// Implementations must be pure and monotone in radius.
type Func func(inst instance.Instance, radius int64) bool

// Kind selects an oracle implementation.
type Kind int

const (
	// KindBurstDP selects the polynomial dynamic program (default).
	KindBurstDP Kind = iota

	// KindBrute selects the exhaustive reference search.
	KindBrute
)

// String returns the CLI name of k.
func (k Kind) String() string {
	switch k {
	case KindBurstDP:
		return "burstdp"
	case KindBrute:
		return "brute"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// ParseKind maps a CLI name back to its Kind.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "burstdp", "dp":
		return KindBurstDP, nil
	case "brute", "bf":
		return KindBrute, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownOracle, name)
	}
}

// ByKind returns the oracle implementing k.
func ByKind(k Kind) (Func, error) {
	switch k {
	case KindBurstDP:
		return BurstDP, nil
	case KindBrute:
		return Brute, nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownOracle, k)
	}
}
