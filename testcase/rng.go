// Package testcase - RNG utilities shared by the random generators.
//
// Goals:
//   - Determinism: same seed ⇒ identical instances across platforms.
//   - Independent streams: each worker or case derives its own generator.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Derive one per goroutine.
package testcase

import "math/rand"

// defaultSeed is used when callers pass seed == 0.
const defaultSeed int64 = 1

// NewRNG returns a deterministic *rand.Rand; seed 0 means defaultSeed.
func NewRNG(seed int64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(seed))
}

// mixSeed combines a parent seed and a stream id with a SplitMix64 finalizer.
func mixSeed(parent int64, stream uint64) int64 {
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}

// StreamRNG returns the generator for stream id under seed without touching
// any shared state, so case i of a run is reproducible on its own.
func StreamRNG(seed int64, stream uint64) *rand.Rand {
	if seed == 0 {
		seed = defaultSeed
	}

	return rand.New(rand.NewSource(mixSeed(seed, stream)))
}

// DeriveRNG creates an independent stream from base. base.Int63 is consumed
// once so repeated derivations with the same id still differ. A nil base
// uses defaultSeed as the parent.
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	parent := defaultSeed
	if base != nil {
		parent = base.Int63()
	}

	return rand.New(rand.NewSource(mixSeed(parent, stream)))
}
