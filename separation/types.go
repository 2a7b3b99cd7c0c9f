// SPDX-License-Identifier: MIT

package separation

import "errors"

// Sentinel errors returned by oracle constructors.
var (
	// ErrNilGetCandidates indicates the candidate supplier callable is nil.
	ErrNilGetCandidates = errors.New("separation: GetCandidates callable is nil")

	// ErrNilHowViolated indicates the violation evaluator callable is nil.
	ErrNilHowViolated = errors.New("separation: HowViolated callable is nil")

	// ErrNilAddViolated indicates the constraint committer callable is nil.
	ErrNilAddViolated = errors.New("separation: AddViolated callable is nil")

	// ErrNilCompareHow indicates the measure comparator is nil where one is required.
	ErrNilCompareHow = errors.New("separation: CompareHow comparator is nil")
)

const panicRotateOffset = "separation: Rotate: offset must be in [0, len(s)]"

// GetCandidates enumerates the constraints to examine against the current
// relaxation. It is invoked once per oracle call — results are never
// memoized, so repeated calls without an intervening commit must yield the
// same set (a contract on the caller, not enforced here).
//
// The candidate type C is opaque to the oracle: an index, a Row, a pointer —
// whatever the evaluator and committer agree on.
type GetCandidates[C any] func() []C

// HowViolated maps one candidate to an optional violation measure:
// (measure, true) when the candidate is violated, (zero, false) otherwise.
// Candidates without a measure are skipped and never compared.
type HowViolated[C, H any] func(C) (H, bool)

// AddViolated commits one candidate as a new row, mutating solver state.
// Called at most once per oracle invocation.
type AddViolated[C any] func(C)

// CompareHow is a strict "less than" over violation measures: it reports
// whether a is strictly smaller (less violated) than b. It must be a total
// order; a non-total or unstable comparator leaves tie ordering undefined.
type CompareHow[H any] func(a, b H) bool

// ReorderCandidates permutes a candidate sequence before a first-violated
// scan. It must return an injective permutation of its input (same length,
// same elements) and must not mutate the input slice.
type ReorderCandidates[C any] func([]C) []C

// Oracle is the one capability the row-generation driver consumes: attempt
// to find a violated constraint and add it to the LP, reporting whether one
// was added. Implementations must leave the LP untouched when they report
// false.
type Oracle interface {
	TryAddViolated() bool
}
