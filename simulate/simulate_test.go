package simulate_test

import (
	"testing"

	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/policy"
	"github.com/favchett/stress-damage/simulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// solvedFixture builds tables and a converged policy for the trajectory
// tests. MaxTs=10 keeps the default 30-step run and the scripted window
// aligned with the canned attack scenario.
func solvedFixture(t *testing.T) (*model.Tables, policy.Result) {
	t.Helper()

	p := model.DefaultParams()
	p.PLeave = 0.5
	p.PArrive = 0.1
	p.PAttack = 0.5
	p.Alpha = 1.0
	p.KMort = 0.01
	p.KFec = 0.05
	p.MaxT = 8
	p.MaxTs = 10
	p.MaxD = 4
	p.MaxH = 10

	tab, err := model.New(p)
	require.NoError(t, err)
	res, err := policy.Solve(tab, policy.Options{MaxIter: 20000})
	require.NoError(t, err)
	require.True(t, res.Converged)

	return tab, res
}

func TestRun_NilInputs(t *testing.T) {
	tab, res := solvedFixture(t)

	_, err := simulate.Run(nil, res.Policy, simulate.DefaultOptions())
	require.ErrorIs(t, err, simulate.ErrNilTables)

	_, err = simulate.Run(tab, nil, simulate.DefaultOptions())
	require.ErrorIs(t, err, simulate.ErrNilPolicy)
}

func TestRun_BadOptions(t *testing.T) {
	tab, res := solvedFixture(t)

	opts := simulate.DefaultOptions()
	opts.Steps = -1
	_, err := simulate.Run(tab, res.Policy, opts)
	require.ErrorIs(t, err, simulate.ErrBadOptions)

	opts = simulate.DefaultOptions()
	opts.AttackStart = 20
	opts.AttackEnd = 10
	_, err = simulate.Run(tab, res.Policy, opts)
	require.ErrorIs(t, err, simulate.ErrBadOptions)
}

// TestRun_Reproducible requires identical traces for identical seeds and
// a diverging damage path for a different seed to matter only through the
// uniform draws (states and hormone reads stay policy-driven).
func TestRun_Reproducible(t *testing.T) {
	tab, res := solvedFixture(t)

	opts := simulate.DefaultOptions()
	opts.Seed = 42

	a, err := simulate.Run(tab, res.Policy, opts)
	require.NoError(t, err)
	b, err := simulate.Run(tab, res.Policy, opts)
	require.NoError(t, err)
	require.Equal(t, a, b, "same seed must reproduce the identical trace")
}

// TestRun_ScriptedWindow checks the attack window forces t to zero inside
// and lets it climb (capped) outside, over the default three seasons.
func TestRun_ScriptedWindow(t *testing.T) {
	tab, res := solvedFixture(t)
	p := tab.Params

	trace, err := simulate.Run(tab, res.Policy, simulate.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, trace, 3*p.MaxTs)

	for i, st := range trace {
		require.Equal(t, i, st.Time)
		require.Equal(t, i, st.Ts)
		require.Equal(t, i%p.MaxTs, st.Phase)
		if i >= simulate.DefaultAttackStart && i < simulate.DefaultAttackEnd {
			assert.True(t, st.Attack)
			assert.Zero(t, st.T)
		} else {
			assert.False(t, st.Attack)
			assert.Positive(t, st.T)
		}
		assert.LessOrEqual(t, st.T, p.MaxT)
		assert.GreaterOrEqual(t, st.Damage, 0)
		assert.LessOrEqual(t, st.Damage, p.MaxD)
		assert.GreaterOrEqual(t, st.Hormone, 0)
		assert.LessOrEqual(t, st.Hormone, p.MaxH)
	}
}

// TestRun_NoWindow disables the scripted window: t must climb from MaxT
// (already capped) and stay there, with no attack flags.
func TestRun_NoWindow(t *testing.T) {
	tab, res := solvedFixture(t)
	p := tab.Params

	trace, err := simulate.Run(tab, res.Policy, simulate.Options{Steps: 12})
	require.NoError(t, err)
	require.Len(t, trace, 12)
	for _, st := range trace {
		require.False(t, st.Attack)
		require.Equal(t, p.MaxT, st.T)
	}
}
