package model

// Tables holds the write-once environment, damage and reproduction tables.
// All slices are sized bound+1 per axis and never mutate after New returns.
type Tables struct {
	// Params is the validated configuration the tables were built from.
	Params Params

	// PredatorPresence[t] is the probability a predator is present given
	// t steps since the last attack. Index 0 is unused: t resets to 0 only
	// in the instant after a survived attack, before the next observation.
	PredatorPresence []float64

	// KillProbability[h] is the probability an attacking predator kills an
	// individual holding hormone level h. Non-increasing in h.
	KillProbability []float64

	// BackgroundMortality[d] is the per-step damage-dependent mortality.
	// Non-decreasing in d, capped at 1.
	BackgroundMortality []float64

	// DamageTransition[d][h] is the expected next damage level, clamped to
	// [0,MaxD]. Fractional values are split over floor/ceil bins; see
	// DamageSplit.
	DamageTransition [][]float64

	// Fecundity[ts][d] is the reproductive payoff at season phase ts with
	// damage d: nonzero only at season boundaries (ts mod MaxTs == 0).
	Fecundity [][]float64
}

// New validates p and computes all model tables once.
//
// Complexity: O(MaxD·MaxH + MaxTs·MaxD + MaxT + MaxH).
func New(p Params) (*Tables, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	tab := &Tables{Params: p}
	tab.PredatorPresence = predatorPresence(p)
	tab.KillProbability = killProbability(p)
	tab.BackgroundMortality = backgroundMortality(p)
	tab.DamageTransition = damageTransition(p)
	tab.Fecundity = fecundity(p)

	return tab, nil
}
