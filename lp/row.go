package lp

import "math"

// DefaultEpsilon is the non-negative tolerance under which a bound overshoot
// is not considered a violation. Keeps floating-point noise from generating
// spurious cuts.
const DefaultEpsilon = 1e-9

const panicEpsilonInvalid = "lp: Violation: eps must be finite, non-negative"

// Coef is one sparse entry of a constraint row: coefficient Val on column Col.
type Coef struct {
	Col int
	Val float64
}

// Row is a sparse linear constraint Lo ≤ Σ Coefs[i].Val·x[Coefs[i].Col] ≤ Hi.
// One-sided rows use -Inf for Lo or +Inf for Hi. Rows are plain values: a
// committer typically appends them to whatever model the engine maintains.
type Row struct {
	Coefs []Coef
	Lo    float64
	Hi    float64
}

// AtLeast builds the one-sided row  Σ coefs ≥ lo.
func AtLeast(lo float64, coefs ...Coef) Row {
	return Row{Coefs: coefs, Lo: lo, Hi: math.Inf(1)}
}

// AtMost builds the one-sided row  Σ coefs ≤ hi.
func AtMost(hi float64, coefs ...Coef) Row {
	return Row{Coefs: coefs, Lo: math.Inf(-1), Hi: hi}
}

// Between builds the two-sided row  lo ≤ Σ coefs ≤ hi.
func Between(lo, hi float64, coefs ...Coef) Row {
	return Row{Coefs: coefs, Lo: lo, Hi: hi}
}

// Activity evaluates the row's left-hand side at the point x.
//
// Contract: every Coefs[i].Col must index into x (programmer error otherwise).
//
// Complexity: O(len(Coefs)).
func (r Row) Activity(x []float64) float64 {
	var sum float64
	for _, c := range r.Coefs {
		sum += c.Val * x[c.Col]
	}
	return sum
}

// Violation reports how far the point x is outside the row's bounds, beyond
// the tolerance eps. The amount is positive when present: Lo-activity for a
// lower-bound violation, activity-Hi for an upper-bound one. (0, false) means
// the row is satisfied within tolerance — the optional-measure idiom used by
// the separation callables.
//
// eps must be finite and non-negative; use DefaultEpsilon when in doubt.
//
// Complexity: O(len(Coefs)).
func (r Row) Violation(x []float64, eps float64) (float64, bool) {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(panicEpsilonInvalid)
	}
	act := r.Activity(x)
	if d := r.Lo - act; d > eps {
		return d, true
	}
	if d := act - r.Hi; d > eps {
		return d, true
	}
	return 0, false
}
