package forward

import (
	"errors"

	"github.com/favchett/stress-damage/tensor"
)

// Sentinel errors for the forward projection.
var (
	// ErrNilTables indicates Project received nil model tables.
	ErrNilTables = errors.New("forward: nil model tables")
	// ErrNilPolicy indicates Project received no strategy table.
	ErrNilPolicy = errors.New("forward: nil policy table")
	// ErrBadOptions indicates a negative cycle cap or tolerance.
	ErrBadOptions = errors.New("forward: invalid options")
)

// Default projection settings.
const (
	// DefaultMaxCycles bounds the breeding-cycle loop, turning a
	// non-stationary oscillation into a reportable warning instead of a
	// hang.
	DefaultMaxCycles = 100000
	// DefaultTolerance is the largest per-state frequency change below
	// which the distribution counts as stationary.
	DefaultTolerance = 1e-6
)

// Options configures Project. Zero values select the defaults; negative
// values are rejected with ErrBadOptions.
type Options struct {
	MaxCycles int
	Tolerance float64
}

// DefaultOptions returns the default projection settings.
func DefaultOptions() Options {
	return Options{MaxCycles: DefaultMaxCycles, Tolerance: DefaultTolerance}
}

// Result holds the stationary distribution and its death accounting.
type Result struct {
	// Freq[t][ts][d][h] is the stationary frequency table. After a run
	// only the ts=0 slice carries mass; it sums to 1.
	Freq *tensor.T4

	// Per-cycle death fractions of the final cycle, by cause.
	PredationDeaths  float64
	DamageDeaths     float64
	BackgroundDeaths float64

	// Cycles is the number of completed breeding cycles.
	Cycles int

	// Converged reports whether the largest per-state change fell below
	// the tolerance before the cycle cap.
	Converged bool

	// MaxChange is the last recorded largest per-state change.
	MaxChange float64
}
