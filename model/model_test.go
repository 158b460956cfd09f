package model_test

import (
	"math"
	"testing"

	"github.com/favchett/stress-damage/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// smallParams returns a compact, valid configuration for table tests.
func smallParams() model.Params {
	p := model.DefaultParams()
	p.PLeave = 0.5
	p.PArrive = 0.1
	p.MaxT = 10
	p.MaxTs = 4
	p.MaxD = 5
	p.MaxH = 20
	return p
}

// TestValidate_BadProbability ensures probabilities outside [0,1) fail
// fast with the named sentinel.
func TestValidate_BadProbability(t *testing.T) {
	p := smallParams()
	p.PArrive = 1.0
	_, err := model.New(p)
	require.ErrorIs(t, err, model.ErrBadProbability)
	assert.Contains(t, err.Error(), "PArrive")
}

// TestValidate_BadCurve ensures negative coefficients and out-of-range
// HMin are rejected.
func TestValidate_BadCurve(t *testing.T) {
	p := smallParams()
	p.KMort = -0.1
	_, err := model.New(p)
	require.ErrorIs(t, err, model.ErrBadCurve)
	assert.Contains(t, err.Error(), "KMort")

	p = smallParams()
	p.HMin = 1.5
	_, err = model.New(p)
	require.ErrorIs(t, err, model.ErrBadCurve)
}

// TestValidate_BadShape ensures non-positive bounds are rejected.
func TestValidate_BadShape(t *testing.T) {
	p := smallParams()
	p.MaxH = 0
	_, err := model.New(p)
	require.ErrorIs(t, err, model.ErrBadShape)
	assert.Contains(t, err.Error(), "MaxH")
}

// TestPredatorPresence_BoundsAndBoundary sweeps a grid of predator
// parameters and checks the boundary value and the [0,1] invariant for
// every t.
func TestPredatorPresence_BoundsAndBoundary(t *testing.T) {
	grid := []float64{0.0, 0.1, 0.5, 0.9, 0.99}
	for _, pl := range grid {
		for _, pa := range grid {
			for _, pk := range grid {
				p := smallParams()
				p.PLeave = pl
				p.PArrive = pa
				p.PAttack = pk

				tab, err := model.New(p)
				require.NoError(t, err)
				require.Equal(t, 1.0-pl, tab.PredatorPresence[1])
				for ts := 1; ts <= p.MaxT; ts++ {
					v := tab.PredatorPresence[ts]
					require.GreaterOrEqualf(t, v, 0.0, "pp[%d] with L=%g A=%g K=%g", ts, pl, pa, pk)
					require.LessOrEqualf(t, v, 1.0, "pp[%d] with L=%g A=%g K=%g", ts, pl, pa, pk)
				}
			}
		}
	}
}

// TestKillProbability_MonotoneEndpoints checks the kill curve is
// non-increasing with the exact endpoints.
func TestKillProbability_MonotoneEndpoints(t *testing.T) {
	for _, alpha := range []float64{0.5, 1.0, 2.0} {
		p := smallParams()
		p.Alpha = alpha

		tab, err := model.New(p)
		require.NoError(t, err)
		require.Equal(t, 1.0, tab.KillProbability[0])
		require.Equal(t, 0.0, tab.KillProbability[p.MaxH])
		for h := 1; h <= p.MaxH; h++ {
			require.LessOrEqual(t, tab.KillProbability[h], tab.KillProbability[h-1])
		}
	}
}

// TestBackgroundMortality_MonotoneCapped checks mortality is
// non-decreasing in damage and capped at 1.
func TestBackgroundMortality_MonotoneCapped(t *testing.T) {
	p := smallParams()
	p.KMort = 0.3 // steep enough to hit the cap inside 0..MaxD

	tab, err := model.New(p)
	require.NoError(t, err)
	for d := 1; d <= p.MaxD; d++ {
		require.GreaterOrEqual(t, tab.BackgroundMortality[d], tab.BackgroundMortality[d-1])
		require.LessOrEqual(t, tab.BackgroundMortality[d], 1.0)
	}
	require.Equal(t, 1.0, tab.BackgroundMortality[p.MaxD])
}

// TestDamageTransition_BoundsAndMinimum checks the transition stays in
// [0,MaxD] and, for fixed d, is minimized at the hormone level closest to
// fraction HMin.
func TestDamageTransition_BoundsAndMinimum(t *testing.T) {
	p := smallParams()
	tab, err := model.New(p)
	require.NoError(t, err)

	hmin := int(math.Round(p.HMin * float64(p.MaxH)))
	for d := 0; d <= p.MaxD; d++ {
		for h := 0; h <= p.MaxH; h++ {
			v := tab.DamageTransition[d][h]
			require.GreaterOrEqual(t, v, 0.0)
			require.LessOrEqual(t, v, float64(p.MaxD))
			require.GreaterOrEqual(t, v, tab.DamageTransition[d][hmin])
		}
	}
}

// TestDamageSplit_Weights checks the floor/ceil split reassembles the
// fractional transition.
func TestDamageSplit_Weights(t *testing.T) {
	p := smallParams()
	tab, err := model.New(p)
	require.NoError(t, err)

	for d := 0; d <= p.MaxD; d++ {
		for h := 0; h <= p.MaxH; h++ {
			lo, hi, frac := tab.DamageSplit(d, h)
			require.GreaterOrEqual(t, frac, 0.0)
			require.Less(t, frac, 1.0)
			require.LessOrEqual(t, hi-lo, 1)
			require.InDelta(t, tab.DamageTransition[d][h], float64(lo)+frac, 1e-12)
		}
	}
}

// TestFecundity_SeasonBoundaryOnly checks the payoff is nonzero only at
// season boundaries, floored at zero, and non-increasing in damage.
func TestFecundity_SeasonBoundaryOnly(t *testing.T) {
	p := smallParams()
	p.KFec = 0.3 // floors inside 0..MaxD

	tab, err := model.New(p)
	require.NoError(t, err)
	for ts := 0; ts <= p.MaxTs; ts++ {
		for d := 0; d <= p.MaxD; d++ {
			v := tab.Fecundity[ts][d]
			if ts%p.MaxTs != 0 {
				require.Zero(t, v)
				continue
			}
			require.GreaterOrEqual(t, v, 0.0)
			if d > 0 {
				require.LessOrEqual(t, v, tab.Fecundity[ts][d-1])
			}
		}
	}
	require.Equal(t, 1.0, tab.Fecundity[0][0])
	require.Zero(t, tab.Fecundity[p.MaxTs][p.MaxD])
}
