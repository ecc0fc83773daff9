package crosscheck

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lantern/feasibility"
	"github.com/katalvlaran/lantern/instance"
	"github.com/katalvlaran/lantern/radius"
	"github.com/katalvlaran/lantern/testcase"
)

// caseResult is written by exactly one worker.
type caseResult struct {
	probes     int64
	mismatches []Mismatch
}

// Run checks cfg.Cases random instances and returns the merged report.
// Mismatches are ordered by case index.
func Run(ctx context.Context, cfg Config) (Report, error) {
	if err := validateConfig(&cfg); err != nil {
		return Report{}, err
	}
	log := cfg.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	start := time.Now()
	results := make([]caseResult, cfg.Cases)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i := range cfg.Cases {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := checkCase(cfg, i)
			if err != nil {
				return err
			}
			for _, mm := range res.mismatches {
				log.Warn("oracle disagreement", "case", mm.Case, "kind", mm.Kind, "radius", mm.Radius)
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Report{}, err
	}
	// errgroup does not see a parent cancelled before any Go call returned.
	if err := ctx.Err(); err != nil {
		return Report{}, err
	}

	rep := Report{Seed: cfg.Seed, Cases: cfg.Cases, Workers: cfg.Workers}
	for _, res := range results {
		rep.Probes += res.probes
		rep.Mismatches = append(rep.Mismatches, res.mismatches...)
	}
	rep.Elapsed = time.Since(start)
	log.Info("crosscheck finished",
		"cases", rep.Cases, "probes", rep.Probes, "mismatches", len(rep.Mismatches), "elapsed", rep.Elapsed)

	return rep, nil
}

// checkCase regenerates case idx and compares the oracles on it.
func checkCase(cfg Config, idx int) (caseResult, error) {
	in := testcase.Random(testcase.StreamRNG(cfg.Seed, uint64(idx)), cfg.Bounds)

	var res caseResult
	hook := func(r int64, bruteOK bool) {
		res.probes++
		if candOK := cfg.Candidate(in, r); candOK != bruteOK {
			res.mismatches = append(res.mismatches, Mismatch{
				Case: idx, Kind: KindProbe, Radius: r, Brute: bruteOK, Candidate: candOK,
			})
		}
	}

	want, err := radius.Minimal(in, feasibility.Brute, radius.WithOnProbe(hook))
	if err != nil {
		return caseResult{}, err
	}
	got, err := radius.Minimal(in, cfg.Candidate)
	if err != nil {
		return caseResult{}, err
	}
	if got != want {
		res.mismatches = append(res.mismatches, Mismatch{Case: idx, Kind: KindAnswer, Radius: want, Got: got})
	}

	if len(res.mismatches) > 0 {
		var sb strings.Builder
		if err = instance.Write(&sb, in); err != nil {
			return caseResult{}, err
		}
		for i := range res.mismatches {
			res.mismatches[i].Input = sb.String()
		}
	}

	return res, nil
}

// validateConfig applies defaults and rejects unusable settings.
func validateConfig(cfg *Config) error {
	if cfg.Cases < 0 {
		return fmt.Errorf("%w: cases=%d", ErrInvalidConfig, cfg.Cases)
	}
	if cfg.Bounds.MaxOutposts < 1 || cfg.Bounds.MaxLanterns < 1 || cfg.Bounds.CoordSpan < 0 {
		return fmt.Errorf("%w: bounds %+v", ErrInvalidConfig, cfg.Bounds)
	}
	if cfg.Bounds.MaxLanterns > feasibility.BruteLimit {
		return fmt.Errorf("%w: max lanterns %d above brute-force limit %d",
			ErrInvalidConfig, cfg.Bounds.MaxLanterns, feasibility.BruteLimit)
	}
	if cfg.Candidate == nil {
		cfg.Candidate = feasibility.BurstDP
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	if cfg.Seed == 0 {
		cfg.Seed = 1
	}

	return nil
}
