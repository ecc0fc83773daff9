// Package crosscheck runs the two feasibility oracles side by side on
// seeded random instances and reports every disagreement.
//
// 🚀 What it checks
//
//   - Per probe: the radius search is driven by the exhaustive oracle and a
//     probe hook evaluates the dynamic program at every probed radius. The
//     two verdicts must match.
//   - Per case: the minimal radii found by both searches must match.
//
// ✨ Reproducibility
//
// Case i is generated from testcase.StreamRNG(Seed, i), independently of
// the worker count and scheduling. A mismatch in a report can be replayed
// from its Case index and the run's Seed alone; the report also carries the
// instance in canonical text form.
//
// ⚙️ Concurrency
//
// Cases are spread over an errgroup limited to Workers goroutines. Each case
// writes only its own result slot. Cancelling the context stops scheduling
// new cases and Run returns the context error.
package crosscheck
