// Package rowgen drives the outer loop of the cutting-plane method.
//
// RowGeneration composes two zero-argument operations — an LP solve and a
// separation-oracle query — into the classic protocol:
//
//  1. Solve the relaxation.
//  2. If the status is OPTIMAL, ask the oracle to add one violated row.
//  3. Repeat while the status stays OPTIMAL and a row was added.
//  4. Return the last status.
//
// The two terminal shapes are therefore:
//
//   - Optimal + "no violation found"      → the relaxation's optimum is a
//     feasible extreme point of the full problem: success.
//   - Infeasible / Unbounded / Abnormal   → the relaxation itself failed;
//     the status surfaces unchanged and the caller decides remediation.
//
// The loop never commits a row without the LP having just reached OPTIMAL,
// and after every successful commit the relaxation is re-solved before the
// oracle is consulted again — the oracle always sees the most recently
// solved relaxation. Every exit point has just completed a solve; no partial
// state is left behind.
//
// Iteration is bounded only by "no more violations" or solve failure; a
// caller needing a hard cap wraps the oracle query with Bounded.
//
// Errors (sentinel):
//
//	– ErrNilTryAdd if the oracle query callable is nil.
//	– ErrNilSolve  if the solve callable is nil.
//
// Example usage:
//
//	oracle, _ := separation.NewMostViolated(getCands, howViolated, addRow)
//	status, err := rowgen.RowGeneration(oracle.TryAddViolated, solveLP)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !status.Solved() {
//	    // relaxation infeasible/unbounded: full problem has no solution here
//	}
package rowgen
