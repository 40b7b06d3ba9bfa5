// SPDX-License-Identifier: MIT
// Package: scanpath/mutator
//
// rng.go — deterministic random draws shared by the seeded mutators.
//
// Goals:
//   - Determinism: same seed ⇒ identical offsets across platforms and runs.
//   - Random access: draw n is a pure function of (seed, n); no sequential
//     source is advanced, so At(i) never depends on earlier calls.
//   - Safety: no panics, no logging, no process-wide state.
package mutator

// defaultRNGSeed replaces a zero seed so that the "unset" value still
// selects a fixed, reproducible stream.
const defaultRNGSeed int64 = 1

// streamSeed applies the seed policy: seed==0 ⇒ defaultRNGSeed, otherwise
// the seed verbatim.
func streamSeed(seed int64) int64 {
	if seed == 0 {
		return defaultRNGSeed
	}
	return seed
}

// deriveSeed mixes a parent seed and a stream identifier into a new 64-bit
// value with the SplitMix64 finalizer. Consecutive stream ids give
// uncorrelated outputs.
//
// Complexity: O(1).
func deriveSeed(parent int64, stream uint64) int64 {
	var x uint64
	x = uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// drawUnit returns draw n of the stream keyed by seed, uniform in [0, 1).
//
// Complexity: O(1).
func drawUnit(seed int64, n uint64) float64 {
	return unitFloat(uint64(deriveSeed(streamSeed(seed), n)))
}

// unitFloat maps 64 random bits to [0, 1) using the top 53.
func unitFloat(x uint64) float64 {
	return float64(x>>11) / (1 << 53)
}
