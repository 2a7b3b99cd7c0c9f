// SPDX-License-Identifier: MIT

// Package separation implements the oracle side of row generation: deciding,
// for the most recently solved relaxation, which violated constraint (if any)
// to add next.
//
// An oracle is assembled at construction time from three caller-supplied
// callables:
//
//   - GetCandidates — enumerate the constraints worth examining right now;
//   - HowViolated   — map one candidate to an optional violation measure;
//   - AddViolated   — commit one candidate as a new row of the LP.
//
// plus, depending on the strategy, a comparator over measures or a
// reordering policy. The assembled oracle exposes a single capability,
// Oracle.TryAddViolated, which is exactly what the rowgen driver consumes.
//
// Three strategies are provided:
//
//   - MostViolated  — full scan, commit the single worst offender
//     (ties go to the earliest-seen candidate; see NewMostViolated).
//   - FirstViolated — scan in (re)ordered sequence, commit the first offender,
//     short-circuit the rest. Cheaper when any violation will do.
//   - RandomViolated — FirstViolated over a uniformly random cyclic rotation
//     of the candidates, avoiding systematic bias toward early indices
//     across repeated calls.
//
// Oracles hold no state between invocations beyond the random source owned
// by a random-rotation oracle; candidates are re-fetched on every call and
// only borrowed for the duration of one evaluation.
//
// All randomness follows the deterministic seed policy of rngFromSeed:
// no time-based sources, seed 0 means a fixed default stream.
package separation
