// Package separation_test - first-violated strategy.
// Focus: strict in-order scanning, short-circuit on the first hit, and the
// reordering contract (permutation applied, input never mutated).
package separation_test

import (
	"slices"
	"testing"

	"github.com/BNLIF/wire-cell-paal/separation"
)

// flagged builds supplier/evaluator over indices whose violation is given by
// the flags slice; the evaluator also records which candidates it saw.
func flagged(flags []bool) (separation.GetCandidates[int], separation.HowViolated[int, struct{}], *[]int) {
	seen := &[]int{}
	get := func() []int {
		cands := make([]int, len(flags))
		for i := range cands {
			cands[i] = i
		}
		return cands
	}
	how := func(c int) (struct{}, bool) {
		*seen = append(*seen, c)
		return struct{}{}, flags[c]
	}
	return get, how, seen
}

func TestFirstViolated_ShortCircuitsOnFirstHit(t *testing.T) {
	get, how, seen := flagged([]bool{false, false, true, true})
	var committed []int
	oracle, err := separation.NewFirstViolated(get, how, func(c int) { committed = append(committed, c) })
	if err != nil {
		t.Fatalf("NewFirstViolated error: %v", err)
	}

	if !oracle.TryAddViolated() {
		t.Fatal("a violated candidate exists, oracle must report true")
	}
	if !slices.Equal(committed, []int{2}) {
		t.Fatalf("committed %v, want [2]", committed)
	}
	// Index 3 must never have been evaluated.
	if !slices.Equal(*seen, []int{0, 1, 2}) {
		t.Fatalf("evaluated %v, want [0 1 2] only", *seen)
	}
}

func TestFirstViolated_ExhaustedScanReportsFalse(t *testing.T) {
	get, how, seen := flagged([]bool{false, false, false})
	commits := 0
	oracle, err := separation.NewFirstViolated(get, how, func(int) { commits++ })
	if err != nil {
		t.Fatalf("NewFirstViolated error: %v", err)
	}

	if oracle.TryAddViolated() {
		t.Fatal("no violated candidate, oracle must report false")
	}
	if commits != 0 {
		t.Fatalf("committer called %d times on failure", commits)
	}
	if !slices.Equal(*seen, []int{0, 1, 2}) {
		t.Fatalf("full scan expected on failure, evaluated %v", *seen)
	}
}

func TestFirstViolated_ReorderDeterminesWinner(t *testing.T) {
	get, how, _ := flagged([]bool{false, false, true, true})
	var committed []int
	reverse := func(cands []int) []int {
		out := make([]int, len(cands))
		for i, c := range cands {
			out[len(cands)-1-i] = c
		}
		return out
	}
	oracle, err := separation.NewFirstViolatedReordered(get, how,
		func(c int) { committed = append(committed, c) }, reverse)
	if err != nil {
		t.Fatalf("NewFirstViolatedReordered error: %v", err)
	}

	if !oracle.TryAddViolated() {
		t.Fatal("a violated candidate exists, oracle must report true")
	}
	// Reversed order scans 3 first.
	if !slices.Equal(committed, []int{3}) {
		t.Fatalf("committed %v, want [3]", committed)
	}
}

func TestFirstViolated_SupplierSliceNotMutatedByRotation(t *testing.T) {
	backing := []int{0, 1, 2, 3}
	get := func() []int { return backing }
	how := func(int) (struct{}, bool) { return struct{}{}, true }
	oracle, err := separation.NewFirstViolatedReordered(get, how, func(int) {},
		func(cands []int) []int { return separation.Rotate(cands, 2) })
	if err != nil {
		t.Fatalf("NewFirstViolatedReordered error: %v", err)
	}

	oracle.TryAddViolated()
	if !slices.Equal(backing, []int{0, 1, 2, 3}) {
		t.Fatalf("supplier slice mutated by reordering: %v", backing)
	}
}

func TestFirstViolated_SupplierRefetchedEveryCall(t *testing.T) {
	fetches := 0
	get := func() []int { fetches++; return []int{0} }
	how := func(int) (struct{}, bool) { return struct{}{}, false }
	oracle, err := separation.NewFirstViolated(get, how, func(int) {})
	if err != nil {
		t.Fatalf("NewFirstViolated error: %v", err)
	}

	oracle.TryAddViolated()
	oracle.TryAddViolated()
	if fetches != 2 {
		t.Fatalf("supplier fetched %d times across two calls, want 2", fetches)
	}
}

func TestFirstViolated_NilCallables(t *testing.T) {
	get := func() []int { return nil }
	how := func(int) (struct{}, bool) { return struct{}{}, false }
	add := func(int) {}

	if _, err := separation.NewFirstViolated[int, struct{}](nil, how, add); err != separation.ErrNilGetCandidates {
		t.Fatalf("nil get: err = %v, want ErrNilGetCandidates", err)
	}
	if _, err := separation.NewFirstViolated[int, struct{}](get, nil, add); err != separation.ErrNilHowViolated {
		t.Fatalf("nil how: err = %v, want ErrNilHowViolated", err)
	}
	if _, err := separation.NewFirstViolated[int, struct{}](get, how, nil); err != separation.ErrNilAddViolated {
		t.Fatalf("nil add: err = %v, want ErrNilAddViolated", err)
	}
}
