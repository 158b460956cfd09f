package model

import "math"

// fecundity computes the reproductive payoff table: one bout per season,
// at phases where ts mod MaxTs == 0 (both ends of the 0..MaxTs axis), with
// payoff max(0, 1−KFec·d) decreasing in damage.
//
// Complexity: O(MaxTs·MaxD).
func fecundity(p Params) [][]float64 {
	repro := make([][]float64, p.MaxTs+1)
	for ts := 0; ts <= p.MaxTs; ts++ {
		repro[ts] = make([]float64, p.MaxD+1)
		if ts%p.MaxTs != 0 {
			continue
		}
		for d := 0; d <= p.MaxD; d++ {
			repro[ts][d] = math.Max(0.0, 1.0-p.KFec*float64(d))
		}
	}

	return repro
}
