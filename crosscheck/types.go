package crosscheck

import (
	"errors"
	"log/slog"
	"runtime"
	"time"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/testcase"
)

// ErrInvalidConfig is returned by Run for unusable settings.
var ErrInvalidConfig = errors.New("crosscheck: invalid config")

// Mismatch kinds.
const (
	KindProbe  = "probe"
	KindAnswer = "answer"
)

// Config drives a Run.
type Config struct {
	// Cases is the number of random instances to check.
	Cases int

	// Seed selects the instance streams; 0 behaves like 1.
	Seed int64

	// Workers bounds concurrency; ≤ 0 means runtime.NumCPU().
	Workers int

	// Bounds shapes the random instances. MaxLanterns must stay within
	// feasibility.BruteLimit.
	Bounds testcase.Bounds

	// Candidate is the oracle checked against feasibility.Brute;
	// nil means feasibility.BurstDP.
	Candidate feasibility.Func

	// Logger receives progress and mismatch records; nil discards them.
	Logger *slog.Logger
}

// DefaultConfig returns 1000 cases, seed 1, one worker per CPU,
// testcase.DefaultBounds and the dynamic program as candidate.
func DefaultConfig() Config {
	return Config{
		Cases:     1000,
		Seed:      1,
		Workers:   runtime.NumCPU(),
		Bounds:    testcase.DefaultBounds(),
		Candidate: feasibility.BurstDP,
	}
}

// Mismatch is one disagreement between the oracles.
type Mismatch struct {
	Case int    `yaml:"case"`
	Kind string `yaml:"kind"`

	// Radius is the probed radius (KindProbe) or the exhaustive answer
	// (KindAnswer).
	Radius int64 `yaml:"radius"`

	// Brute and Candidate hold the verdicts for KindProbe.
	Brute     bool `yaml:"brute"`
	Candidate bool `yaml:"candidate"`

	// Got is the candidate's answer for KindAnswer.
	Got int64 `yaml:"got,omitempty"`

	// Input is the instance in canonical text form.
	Input string `yaml:"input"`
}

// Report summarises a Run.
type Report struct {
	Seed       int64         `yaml:"seed"`
	Cases      int           `yaml:"cases"`
	Workers    int           `yaml:"workers"`
	Probes     int64         `yaml:"probes"`
	Mismatches []Mismatch    `yaml:"mismatches"`
	Elapsed    time.Duration `yaml:"elapsed"`
}

// OK reports whether the oracles agreed everywhere.
func (r Report) OK() bool { return len(r.Mismatches) == 0 }
