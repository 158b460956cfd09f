package policy

import (
	"errors"

	"github.com/favchett/stress-damage/tensor"
)

// Sentinel errors for the policy solver.
var (
	// ErrNilTables indicates Solve or NewSolver received nil model tables.
	ErrNilTables = errors.New("policy: nil model tables")
	// ErrBadOptions indicates a negative iteration cap or tolerance.
	ErrBadOptions = errors.New("policy: invalid options")
)

// Default solver settings.
const (
	// DefaultMaxIter caps the outer value-iteration loop.
	DefaultMaxIter = 1000000
	// DefaultTolerance is the aggregate value change below which the
	// strategy counts as converged.
	DefaultTolerance = 1e-6
)

// Options configures Solve.
//
// Zero values select the defaults: MaxIter=DefaultMaxIter,
// Tolerance=DefaultTolerance. Negative values are rejected with
// ErrBadOptions.
type Options struct {
	MaxIter   int
	Tolerance float64
}

// DefaultOptions returns the default solver settings.
func DefaultOptions() Options {
	return Options{MaxIter: DefaultMaxIter, Tolerance: DefaultTolerance}
}

// Result holds the outcome of a Solve run.
type Result struct {
	// Policy[t][ts][d] is the optimal hormone level per state, valid for
	// ts in 0..MaxTs−1 (the MaxTs slice is the internal season wrap).
	Policy *tensor.I3

	// Iterations is the number of completed outer iterations.
	Iterations int

	// Converged reports whether FinalDiff fell below the tolerance before
	// the iteration cap. A capped run is usable but should be flagged in
	// any report derived from it.
	Converged bool

	// FinalDiff is the last aggregate absolute value change.
	FinalDiff float64
}
