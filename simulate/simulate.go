package simulate

import (
	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/tensor"
)

// Run simulates one individual for opts.Steps discrete steps under pol
// and returns the per-step trace.
//
// The individual starts undamaged at maximum time since attack, phase 0.
// Inside the scripted window [AttackStart, AttackEnd) every step is an
// attack (t forced to 0); otherwise t increments up to MaxT. The damage
// transition is stochastic: one uniform draw per step picks the ceil bin
// with the interpolation weight, the floor bin otherwise.
//
// Complexity: O(Steps) time, O(Steps) memory for the trace.
func Run(tab *model.Tables, pol *tensor.I3, opts Options) ([]Step, error) {
	if tab == nil {
		return nil, ErrNilTables
	}
	if pol == nil {
		return nil, ErrNilPolicy
	}
	if opts.Steps < 0 || opts.AttackStart > opts.AttackEnd || opts.AttackStart < 0 {
		return nil, ErrBadOptions
	}

	p := tab.Params
	steps := opts.Steps
	if steps == 0 {
		steps = 3 * p.MaxTs
	}
	rng := rngFromSeed(opts.Seed)

	var (
		t  = p.MaxT // time since last attack
		ts = 0      // raw season counter
		d  = 0      // damage level
	)

	trace := make([]Step, 0, steps)
	for time := 0; time < steps; time++ {
		attack := time >= opts.AttackStart && time < opts.AttackEnd
		if attack {
			t = 0
		} else {
			t++
			if t > p.MaxT {
				t = p.MaxT
			}
		}

		phase := ts % p.MaxTs
		h := pol.At(t, phase, d)

		lo, hi, frac := tab.DamageSplit(d, h)
		if rng.Float64() < frac {
			d = hi
		} else {
			d = lo
		}

		trace = append(trace, Step{
			Time:    time,
			T:       t,
			Ts:      ts,
			Damage:  d,
			Hormone: h,
			Attack:  attack,
			Phase:   phase,
		})
		ts++
	}

	return trace, nil
}
