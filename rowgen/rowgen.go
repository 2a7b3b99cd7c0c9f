package rowgen

import "github.com/BNLIF/wire-cell-paal/lp"

// RowGeneration finds an extreme-point solution to the full LP by row
// generation: solve the initial relaxation, then ask the separation oracle
// whether the found optimum is feasible for the complete problem; if not,
// the oracle has added a new row and the LP is re-optimized. Iterates until
// no violation is found or the relaxation stops being solvable.
//
// The returned status is the outcome of the LAST solve: Optimal means the
// final optimum satisfied the oracle (success); any other status means the
// relaxation failed and is surfaced unchanged — no retry, no recovery.
//
// Guarantees:
//   - exactly k+1 solve calls when the oracle reports true k times;
//   - tryAddViolated is only ever invoked right after a solve returned
//     Optimal, so no row is committed against a stale or failed relaxation.
//
// Errors: ErrNilTryAdd / ErrNilSolve on nil callables; collaborator panics
// and failures propagate synchronously to the caller.
func RowGeneration(tryAddViolated TryAddViolated, solveLP SolveLP, opts ...Option) (lp.Status, error) {
	if tryAddViolated == nil {
		return lp.NotSolved, ErrNilTryAdd
	}
	if solveLP == nil {
		return lp.NotSolved, ErrNilSolve
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var (
		res   lp.Status
		added bool
		round int
	)
	for {
		round++
		res = solveLP()
		added = res == lp.Optimal && tryAddViolated()
		o.Logger.Debug().
			Int("round", round).
			Stringer("status", res).
			Bool("added", added).
			Msg("row generation round")
		if !added {
			break
		}
	}

	return res, nil
}

// Bounded wraps an oracle query with an external addition limit: the
// returned callable behaves like tryAdd for the first max successful
// additions and reports false afterwards without consulting the oracle.
// Use it to cap RowGeneration's iteration count; the driver's own
// termination conditions stay untouched.
//
// Note that a capped run ending Optimal does NOT certify feasibility for
// the full problem — the cap may have masked remaining violations.
func Bounded(tryAdd TryAddViolated, max int) TryAddViolated {
	remaining := max
	return func() bool {
		if remaining <= 0 {
			return false
		}
		if !tryAdd() {
			return false
		}
		remaining--
		return true
	}
}
