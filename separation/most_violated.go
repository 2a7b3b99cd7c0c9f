// SPDX-License-Identifier: MIT

package separation

import "cmp"

// MostViolated is the full-scan strategy: evaluate every candidate, commit
// the single one whose violation measure is maximal under the configured
// order. Construct via NewMostViolated or NewMostViolatedCmp.
type MostViolated[C, H any] struct {
	get GetCandidates[C]
	how HowViolated[C, H]
	add AddViolated[C]
	cmp CompareHow[H]
}

// NewMostViolated assembles a most-violated oracle over naturally ordered
// measures (numeric "<", so the largest measure wins).
//
// Tie-breaking: the incumbent is replaced only on strict improvement, so
// among equally violated candidates the earliest-seen one is committed.
//
// Errors: ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated.
func NewMostViolated[C any, H cmp.Ordered](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
) (*MostViolated[C, H], error) {
	return NewMostViolatedCmp(get, how, add, func(a, b H) bool { return cmp.Less(a, b) })
}

// NewMostViolatedCmp is NewMostViolated with a caller-supplied strict "less"
// over measures, for measure types without a natural order (or with a
// deliberately inverted one).
func NewMostViolatedCmp[C, H any](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
	compare CompareHow[H],
) (*MostViolated[C, H], error) {
	if get == nil {
		return nil, ErrNilGetCandidates
	}
	if how == nil {
		return nil, ErrNilHowViolated
	}
	if add == nil {
		return nil, ErrNilAddViolated
	}
	if compare == nil {
		return nil, ErrNilCompareHow
	}
	return &MostViolated[C, H]{get: get, how: how, add: add, cmp: compare}, nil
}

// TryAddViolated scans all current candidates, commits the most violated one
// and reports true; reports false (committing nothing) when no candidate
// carries a measure.
//
// Complexity: O(n) evaluator calls, O(n) comparisons, exactly one commit on
// success.
func (o *MostViolated[C, H]) TryAddViolated() bool {
	cands := o.get()

	var (
		best    H
		bestIdx = -1
	)
	for i := range cands {
		measure, violated := o.how(cands[i])
		if !violated {
			continue
		}
		// Replace only on strict improvement: ties keep the earliest-seen.
		if bestIdx < 0 || o.cmp(best, measure) {
			best, bestIdx = measure, i
		}
	}
	if bestIdx < 0 {
		return false
	}
	o.add(cands[bestIdx])

	return true
}
