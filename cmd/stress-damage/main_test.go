package main

import (
	"testing"

	"github.com/favchett/stress-damage/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_MapsPositionals(t *testing.T) {
	p, err := parseArgs([]string{"0.5", "0.1", "0.5", "1.0", "0", "0.05"})
	require.NoError(t, err)
	assert.Equal(t, 0.5, p.PLeave)
	assert.Equal(t, 0.1, p.PArrive)
	assert.Equal(t, 0.5, p.PAttack)
	assert.Equal(t, 1.0, p.Alpha)
	assert.Equal(t, 0.0, p.KMort)
	assert.Equal(t, 0.05, p.KFec)
	// Untouched defaults survive.
	assert.Equal(t, model.DefaultParams().MaxH, p.MaxH)
}

func TestParseArgs_WrongArity(t *testing.T) {
	_, err := parseArgs([]string{"0.5", "0.1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positional arguments")
}

func TestParseArgs_NamesBadArgument(t *testing.T) {
	_, err := parseArgs([]string{"0.5", "zero", "0.5", "1.0", "0", "0.05"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "pArrive")

	// Out-of-range values fail validation before any file is touched.
	_, err = parseArgs([]string{"0.5", "1.0", "0.5", "1.0", "0", "0.05"})
	require.ErrorIs(t, err, model.ErrBadProbability)
}

func TestArtifactName_EncodesParameters(t *testing.T) {
	p := model.DefaultParams()
	p.PLeave = 0.5
	p.PArrive = 0.1
	p.KMort = 0.0
	p.KFec = 0.05
	assert.Equal(t, "stressL0.500000A0.100000Kmort0.000000Kfec0.050000.txt",
		artifactName("stress", p))
}
