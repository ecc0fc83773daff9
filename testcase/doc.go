// Package testcase produces puzzle instances for testing and benchmarking
// the solvers, and checks submitted answers.
//
// Suites:
//   - Small  - ten tiny hand-written instances with known answers.
//   - Edge   - boundary instances: s = 0, overflow-prone coordinates,
//     duplicates, one-sided layouts, tight inclusive distances, and two
//     100000-element stress cases.
//   - Large  - ten 100000 × 100000 stress instances (extremes, duplicates,
//     cluster layouts that force specific burst counts).
//   - Random - seeded small instances for differential testing.
//
// Every fixed case records its minimal radius in Case.Want; random cases
// use Unknown. Large instances are built lazily: a Case only allocates when
// Instance is called.
//
// Determinism: all randomness flows from NewRNG, StreamRNG and DeriveRNG; the
// same seed gives the same instances on every platform.
package testcase
