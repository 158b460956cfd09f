package forward

import (
	"math"

	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/tensor"
)

// Project iterates breeding-cycle sweeps of the population frequency
// distribution under pol until stationary (largest per-state change below
// opts.Tolerance) or until opts.MaxCycles.
//
// Contracts:
//   - tab and pol must be non-nil; pol must cover the same bounds as tab
//     (it is the table a policy.Solve run on tab produces).
//
// Invariant: after each cycle's renormalization the ts=0 slice sums to 1.
// Death fractions are attributed per cause before renormalization:
// predation first, then the damage excess over baseline mortality, then
// the baseline itself, on the mass that escaped predation.
func Project(tab *model.Tables, pol *tensor.I3, opts Options) (Result, error) {
	if tab == nil {
		return Result{}, ErrNilTables
	}
	if pol == nil {
		return Result{}, ErrNilPolicy
	}
	if opts.MaxCycles < 0 || opts.Tolerance < 0 {
		return Result{}, ErrBadOptions
	}
	maxCycles := opts.MaxCycles
	if maxCycles == 0 {
		maxCycles = DefaultMaxCycles
	}
	tol := opts.Tolerance
	if tol == 0 {
		tol = DefaultTolerance
	}

	p := tab.Params
	freq := tensor.NewT4(p.MaxT+1, p.MaxTs+1, p.MaxD+1, p.MaxH+1)

	// All mass starts at maximum time since attack, zero damage, zero
	// hormone, at the first reproductive bout.
	freq.Set(p.MaxT, 0, 0, 0, 1.0)

	res := Result{Freq: freq, MaxChange: math.Inf(1)}
	for cycle := 1; cycle <= maxCycles; cycle++ {
		res.Cycles = cycle
		res.PredationDeaths, res.DamageDeaths, res.BackgroundDeaths = sweepCycle(tab, pol, freq)
		res.MaxChange = renormalize(tab, freq,
			res.PredationDeaths+res.DamageDeaths+res.BackgroundDeaths)
		if res.MaxChange < tol {
			res.Converged = true
			return res, nil
		}
	}

	return res, nil
}

// sweepCycle advances the distribution through one full season,
// ts=0..MaxTs−1, and returns the death fractions by cause. Destination
// states: a survived attack resets t to 1; otherwise t advances, capped
// one short of MaxT so the capped row keeps feeding itself through the
// policy's risk floor.
func sweepCycle(tab *model.Tables, pol *tensor.I3, freq *tensor.T4) (pred, damage, bkgd float64) {
	p := tab.Params

	// Phase-major order: every destination lies in slice ts+1, so each
	// phase pass hands the complete surviving mass to the next one and
	// the season ends with everything in the ts=MaxTs slice. That is what
	// makes the post-renormalization sum exactly 1.
	for ts := 0; ts < p.MaxTs; ts++ {
		for t := 1; t <= p.MaxT; t++ {
			pAtt := tab.PredatorPresence[t] * p.PAttack
			tn := t + 1
			if tn > p.MaxT-1 {
				tn = p.MaxT - 1
			}
			for d := 0; d <= p.MaxD; d++ {
				mu := tab.BackgroundMortality[d]
				for h := 0; h <= p.MaxH; h++ {
					m := freq.At(t, ts, d, h)
					if m == 0 {
						continue
					}
					lo, hi, frac := tab.DamageSplit(d, h)
					kill := tab.KillProbability[h]

					// Survived attack: t resets, next hormone level read
					// from the post-attack policy row.
					aMass := m * pAtt * (1.0 - kill) * (1.0 - mu)
					freq.Add(1, ts+1, lo, pol.At(0, ts, lo), aMass*(1.0-frac))
					freq.Add(1, ts+1, hi, pol.At(0, ts, hi), aMass*frac)

					// No attack: t advances (capped), policy row follows.
					cMass := m * (1.0 - pAtt) * (1.0 - mu)
					freq.Add(tn, ts+1, lo, pol.At(tn, ts, lo), cMass*(1.0-frac))
					freq.Add(tn, ts+1, hi, pol.At(tn, ts, hi), cMass*frac)

					pred += m * pAtt * kill
					damage += m * (1.0 - pAtt*kill) * (mu - tab.BackgroundMortality[0])
					bkgd += m * (1.0 - pAtt*kill) * tab.BackgroundMortality[0]
				}
			}
		}
	}

	return pred, damage, bkgd
}

// renormalize divides the season-end slice by the surviving fraction,
// records the largest change against the season-start slice, promotes
// ts=MaxTs to ts=0 for the next cycle, and wipes the interior slices.
func renormalize(tab *model.Tables, freq *tensor.T4, totalDeaths float64) float64 {
	p := tab.Params
	surviving := 1.0 - totalDeaths

	var maxDiff float64
	for t := 1; t <= p.MaxT; t++ {
		for d := 0; d <= p.MaxD; d++ {
			for h := 0; h <= p.MaxH; h++ {
				v := freq.At(t, p.MaxTs, d, h) / surviving
				diff := math.Abs(v - freq.At(t, 0, d, h))
				if diff > maxDiff {
					maxDiff = diff
				}
				freq.Set(t, 0, d, h, v)
				for ts := 1; ts <= p.MaxTs; ts++ {
					freq.Set(t, ts, d, h, 0.0)
				}
			}
		}
	}

	return maxDiff
}
