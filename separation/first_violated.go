// SPDX-License-Identifier: MIT

package separation

// FirstViolated is the short-circuiting strategy: scan candidates in a
// caller-determined order and commit the first violated one, without
// evaluating the rest. Construct via NewFirstViolated or
// NewFirstViolatedReordered.
//
// The result is order-dependent; that is the price of skipping the full scan.
type FirstViolated[C, H any] struct {
	get     GetCandidates[C]
	how     HowViolated[C, H]
	add     AddViolated[C]
	reorder ReorderCandidates[C]
}

// NewFirstViolated assembles a first-violated oracle scanning candidates in
// supplier order (identity reordering).
//
// Errors: ErrNilGetCandidates / ErrNilHowViolated / ErrNilAddViolated.
func NewFirstViolated[C, H any](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
) (*FirstViolated[C, H], error) {
	return NewFirstViolatedReordered[C, H](get, how, add, nil)
}

// NewFirstViolatedReordered is NewFirstViolated with an explicit reordering
// policy applied to the candidate sequence before each scan. A nil reorder
// means identity. See ReorderCandidates for the permutation contract.
func NewFirstViolatedReordered[C, H any](
	get GetCandidates[C],
	how HowViolated[C, H],
	add AddViolated[C],
	reorder ReorderCandidates[C],
) (*FirstViolated[C, H], error) {
	if get == nil {
		return nil, ErrNilGetCandidates
	}
	if how == nil {
		return nil, ErrNilHowViolated
	}
	if add == nil {
		return nil, ErrNilAddViolated
	}
	return &FirstViolated[C, H]{get: get, how: how, add: add, reorder: reorder}, nil
}

// TryAddViolated fetches the candidates, applies the reordering policy, and
// walks the result strictly in order: the first candidate with a present
// violation measure is committed immediately and true is returned, leaving
// the remaining candidates unevaluated. Reports false when the scan exhausts
// without a violation.
//
// Complexity: O(k) evaluator calls where k is the position of the first
// violated candidate (n on failure), at most one commit.
func (o *FirstViolated[C, H]) TryAddViolated() bool {
	cands := o.get()
	if o.reorder != nil {
		cands = o.reorder(cands)
	}
	for i := range cands {
		if _, violated := o.how(cands[i]); violated {
			o.add(cands[i])
			return true
		}
	}

	return false
}
