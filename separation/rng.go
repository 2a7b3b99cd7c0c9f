// SPDX-License-Identifier: MIT

// Package separation - RNG policy for the random-rotation oracle.
//
// Goals:
//   - Determinism: same seed ⇒ identical rotation sequence across platforms.
//   - Encapsulation: one RNG factory; no time-based sources hidden anywhere.
//   - Testability: OffsetSource lets tests inject a scripted source.
//
// Concurrency: math/rand.Rand is NOT goroutine-safe; each oracle owns its own
// source and the subsystem is single-threaded, so no sharing occurs.
package separation

import "math/rand"

// defaultRNGSeed is the fixed "zero" seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// OffsetSource yields rotation offsets. Intn must return a uniform value in
// [0, n) for n > 0 — the contract of math/rand, which *rand.Rand satisfies
// directly. Tests may script it to force particular rotations.
type OffsetSource interface {
	Intn(n int) int
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}
