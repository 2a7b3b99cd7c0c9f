// Package paal provides the row-generation (cutting-plane) machinery used by
// LP-based approximation algorithms: solve a relaxed linear program, ask a
// separation oracle for a violated constraint, add it, re-optimize, repeat
// until the relaxation's optimum is feasible for the full problem.
//
// 🚀 What is wire-cell-paal?
//
//	A small, deterministic library that brings together:
//		• lp/         — the LP boundary: solve statuses, constraint rows,
//		                violation measures
//		• rowgen/     — the outer row-generation loop driving solve + oracle
//		                to a feasible extreme point
//		• separation/ — three pluggable oracle strategies: most-violated,
//		                first-violated, and first-violated in random rotation
//
// ✨ Why choose wire-cell-paal?
//
//   - Policy by composition – oracles are assembled from three caller-supplied
//     callables (get candidates / how violated / add violated), not inherited
//   - Deterministic – fixed-seed randomness, explicit tie-breaking rules,
//     no time-based sources hidden anywhere
//   - Engine-agnostic – the LP solver itself stays behind a one-function
//     boundary; any simplex or interior-point backend fits
//
// Quick sketch of the protocol:
//
//	solve ──OPTIMAL──▶ oracle ──violated row──▶ commit ──▶ solve ──▶ …
//	  │                   │
//	  └─INFEASIBLE/…      └─none ⇒ current optimum is feasible: done
//
// See examples/ for runnable scenarios.
package paal
