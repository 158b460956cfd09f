package model

import "math"

// damageTransition computes the expected next damage level for every
// (damage, hormone) pair: d + HSlope·(HMin − h/MaxH)² − Repair, clamped to
// [0, MaxD]. The quadratic term is minimized at hormone fraction HMin, so
// both under- and over-production of hormone accrues damage.
//
// Complexity: O(MaxD·MaxH).
func damageTransition(p Params) [][]float64 {
	dnew := make([][]float64, p.MaxD+1)
	for d := 0; d <= p.MaxD; d++ {
		dnew[d] = make([]float64, p.MaxH+1)
		for h := 0; h <= p.MaxH; h++ {
			dev := p.HMin - float64(h)/float64(p.MaxH)
			next := float64(d) + p.HSlope*dev*dev - p.Repair
			dnew[d][h] = math.Max(0.0, math.Min(float64(p.MaxD), next))
		}
	}

	return dnew
}

// DamageSplit resolves the fractional transition DamageTransition[d][h]
// into its two integer damage bins and the weight of the upper bin:
// lo = floor, hi = ceil, frac = transition − lo. Mass (or value) splits as
// (1−frac) to lo and frac to hi.
//
// Complexity: O(1).
func (tab *Tables) DamageSplit(d, h int) (lo, hi int, frac float64) {
	next := tab.DamageTransition[d][h]
	lo = int(math.Floor(next))
	hi = int(math.Ceil(next))
	frac = next - float64(lo)

	return lo, hi, frac
}
