package simulate

import "errors"

// Sentinel errors for the trajectory simulator.
var (
	// ErrNilTables indicates Run received nil model tables.
	ErrNilTables = errors.New("simulate: nil model tables")
	// ErrNilPolicy indicates Run received no strategy table.
	ErrNilPolicy = errors.New("simulate: nil policy table")
	// ErrBadOptions indicates a negative step count or an inverted attack
	// window.
	ErrBadOptions = errors.New("simulate: invalid options")
)

// Default scripted attack window: steps 17..32 of the canned scenario.
const (
	DefaultAttackStart = 17
	DefaultAttackEnd   = 33
)

// Options configures Run.
//
// Steps==0 selects three season lengths. Seed==0 selects the fixed
// default stream (see rng.go); pass an explicit seed for independent
// runs. The attack window is half-open: steps in [AttackStart, AttackEnd)
// are forced attacks; AttackStart==AttackEnd disables the window.
type Options struct {
	Seed        int64
	Steps       int
	AttackStart int
	AttackEnd   int
}

// DefaultOptions returns the canned scenario: three seasons with the
// scripted mid-run attack window.
func DefaultOptions() Options {
	return Options{AttackStart: DefaultAttackStart, AttackEnd: DefaultAttackEnd}
}

// Step is one record of a simulated trajectory.
type Step struct {
	Time    int  // overall step index, from 0
	T       int  // time since last attack, capped at MaxT
	Ts      int  // raw season counter (monotone, unwrapped)
	Damage  int  // damage level after this step's transition
	Hormone int  // hormone level chosen this step
	Attack  bool // whether this step fell in the scripted window
	Phase   int  // season phase ts mod MaxTs; 0 marks a reproductive bout
}
