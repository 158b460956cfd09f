package model

import "math"

// predatorPresence computes Pr(predator present | t steps since attack).
//
// Boundary: one step after an attack the predator is present unless it
// left, so pp[1] = 1−PLeave. For t ≥ 2 the recursion conditions on the
// predator not having attacked at t−1:
//
//	pp[t] = (pp[t-1]·(1−PAttack)·(1−PLeave) + (1−pp[t-1])·PArrive)
//	        / (1 − pp[t-1]·PAttack)
//
// The numerator covers "was present, did not attack, did not leave" plus
// "was absent, arrived"; the denominator renormalizes on the observed
// non-attack. Both terms keep pp[t] inside [0,1] for all inputs in [0,1).
//
// Complexity: O(MaxT).
func predatorPresence(p Params) []float64 {
	pp := make([]float64, p.MaxT+1)
	pp[1] = 1.0 - p.PLeave
	for t := 2; t <= p.MaxT; t++ {
		pp[t] = (pp[t-1]*(1.0-p.PAttack)*(1.0-p.PLeave) + (1.0-pp[t-1])*p.PArrive) /
			(1.0 - pp[t-1]*p.PAttack)
	}

	return pp
}

// killProbability computes Pr(killed | attacked) as a function of hormone
// level: max(0, 1−(h/MaxH)^Alpha). Full hormone investment always protects
// completely; zero investment is always lethal when Alpha > 0.
//
// Complexity: O(MaxH).
func killProbability(p Params) []float64 {
	pk := make([]float64, p.MaxH+1)
	for h := 0; h <= p.MaxH; h++ {
		pk[h] = math.Max(0.0, 1.0-math.Pow(float64(h)/float64(p.MaxH), p.Alpha))
	}

	return pk
}

// backgroundMortality computes the damage-dependent per-step mortality
// min(1, Mu0 + KMort·d).
//
// Complexity: O(MaxD).
func backgroundMortality(p Params) []float64 {
	mu := make([]float64, p.MaxD+1)
	for d := 0; d <= p.MaxD; d++ {
		mu[d] = math.Min(1.0, p.Mu0+p.KMort*float64(d))
	}

	return mu
}
