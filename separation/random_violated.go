// SPDX-License-Identifier: MIT

package separation

// NewRandomViolated assembles the random-rotation strategy: a FirstViolated
// scan starting from a uniformly chosen rotation point of the candidate
// sequence, so that repeated calls do not systematically favor early-indexed
// candidates.
//
// The oracle owns a deterministic random stream seeded per the package seed
// policy (seed==0 ⇒ fixed default seed); stream state persists across calls,
// producing a different rotation each time.
//
// Errors: ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated.
func NewRandomViolated[C, H any](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
	seed int64,
) (*FirstViolated[C, H], error) {
	return NewRandomViolatedSource[C, H](get, how, add, rngFromSeed(seed))
}

// NewRandomViolatedSource is NewRandomViolated with an injected offset
// source, so tests can substitute a seeded or scripted stream. A nil src
// falls back to the default deterministic stream.
func NewRandomViolatedSource[C, H any](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
	src OffsetSource,
) (*FirstViolated[C, H], error) {
	return NewFirstViolatedReordered(get, how, add, RandomRotate[C](src))
}
