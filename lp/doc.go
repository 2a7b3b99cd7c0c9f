// Package lp defines the boundary between the row-generation machinery and
// an external LP engine.
//
// The engine itself (simplex, interior point, column/row storage, basis
// management) is deliberately out of scope: the only thing the driver ever
// asks of it is "re-optimize the current relaxation and tell me how it went",
// captured by SolveFunc and the Status enumeration.
//
// The package also carries the small value types that separation callables
// typically trade in:
//
//   - Coef / Row — a sparse constraint row with (possibly one-sided) bounds.
//   - Row.Activity / Row.Violation — evaluate a row at the current solution
//     and obtain an optional violation measure: (amount, true) when the row
//     is violated beyond the tolerance, (0, false) otherwise.
//
// Statuses follow the usual LP-solver vocabulary (OPTIMAL, FEASIBLE,
// INFEASIBLE, UNBOUNDED, ABNORMAL, NOT_SOLVED). Only Optimal allows the
// row-generation loop to keep going; Infeasible/Unbounded/Abnormal are fatal
// to it and surface unchanged to the caller.
package lp
