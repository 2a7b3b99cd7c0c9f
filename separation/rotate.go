// SPDX-License-Identifier: MIT

package separation

// Rotate returns a fresh slice holding s cyclically shifted left by r:
// element i of the result is s[(i+r) mod len(s)]. Both r==0 and r==len(s)
// are identity rotations (a full turn lands where it started).
//
// Contracts:
//   - 0 ≤ r ≤ len(s); anything else panics (programmer error).
//   - s is never mutated; the result shares no backing array with s.
//
// Complexity: O(n) time, O(n) space.
func Rotate[C any](s []C, r int) []C {
	n := len(s)
	if r < 0 || r > n {
		panic(panicRotateOffset)
	}
	out := make([]C, n)
	// r==n behaves exactly like r==0: copy in original order.
	if r == n {
		r = 0
	}
	copy(out, s[r:])
	copy(out[n-r:], s[:r])

	return out
}

// RandomRotate builds a reordering policy that rotates the candidate
// sequence by an offset drawn uniformly from [0, len] INCLUSIVE on every
// call. The inclusive upper bound means a full no-op rotation is a possible
// (and harmless) outcome; src.Intn is therefore called with len+1.
//
// src state persists across calls — the policy owns it for its lifetime.
// A nil src falls back to the default deterministic stream (seed 0 policy).
func RandomRotate[C any](src OffsetSource) ReorderCandidates[C] {
	if src == nil {
		src = rngFromSeed(0)
	}
	return func(cands []C) []C {
		return Rotate(cands, src.Intn(len(cands)+1))
	}
}
