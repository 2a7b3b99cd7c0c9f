package lp

// Status is the outcome of one (re)optimization of the LP relaxation.
//
// The zero value is NotSolved so that a forgotten solve cannot masquerade
// as success.
type Status int

const (
	// NotSolved means no solve has been attempted yet, or the engine gave up
	// before reaching any conclusion.
	NotSolved Status = iota

	// Optimal means the relaxation was solved to proven optimality.
	// This is the only status under which the separation oracle may be asked
	// for a violated row.
	Optimal

	// Feasible means the engine stopped early with a feasible but not
	// necessarily optimal point (e.g., an iteration or time limit inside the
	// engine). Row generation treats it as a failure: committing rows against
	// a non-optimal point certifies nothing.
	Feasible

	// Infeasible means the current relaxation admits no feasible point.
	Infeasible

	// Unbounded means the relaxation's objective is unbounded.
	Unbounded

	// Abnormal means the engine failed for numerical or internal reasons.
	Abnormal
)

// String renders the status in the upper-case vocabulary LP engines use.
func (s Status) String() string {
	switch s {
	case NotSolved:
		return "NOT_SOLVED"
	case Optimal:
		return "OPTIMAL"
	case Feasible:
		return "FEASIBLE"
	case Infeasible:
		return "INFEASIBLE"
	case Unbounded:
		return "UNBOUNDED"
	case Abnormal:
		return "ABNORMAL"
	default:
		return "UNKNOWN"
	}
}

// Solved reports whether the relaxation reached proven optimality.
func (s Status) Solved() bool { return s == Optimal }

// Failed reports whether the status is fatal for row generation:
// anything that is not proven optimality.
func (s Status) Failed() bool { return s != Optimal }

// SolveFunc (re)optimizes the current relaxation and reports the outcome.
// It is the entire surface the row-generation driver needs from an LP engine;
// all model state lives behind it.
type SolveFunc func() Status
