package rowgen

import (
	"errors"

	"github.com/rs/zerolog"

	"github.com/BNLIF/wire-cell-paal/lp"
)

// Sentinel errors returned by RowGeneration.
var (
	// ErrNilTryAdd indicates that a nil oracle-query callable was passed.
	ErrNilTryAdd = errors.New("rowgen: TryAddViolated callable is nil")

	// ErrNilSolve indicates that a nil solve callable was passed.
	ErrNilSolve = errors.New("rowgen: SolveLP callable is nil")
)

// TryAddViolated asks a separation oracle to find one violated constraint
// and add it to the LP, reporting whether it did. separation.Oracle's
// TryAddViolated method has exactly this shape.
type TryAddViolated func() bool

// SolveLP re-optimizes the current relaxation; an alias kept local so the
// driver's signature reads in protocol terms.
type SolveLP = lp.SolveFunc

// Options configures the driver. Control flow is never affected — options
// only add observation.
//
// Logger – per-round Debug events (round number, status, row added or not).
// Default is a no-op logger.
type Options struct {
	Logger zerolog.Logger
}

// Option represents a functional option for configuring RowGeneration.
type Option func(*Options)

// WithLogger attaches a zerolog logger; each round emits one Debug event.
func WithLogger(l zerolog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// DefaultOptions returns the driver defaults: no logging.
func DefaultOptions() Options {
	return Options{Logger: zerolog.Nop()}
}
