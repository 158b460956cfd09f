package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for parameter validation.
var (
	// ErrBadProbability indicates a probability parameter outside [0,1).
	ErrBadProbability = errors.New("model: probability parameter outside [0,1)")
	// ErrBadCurve indicates a negative curve coefficient or HMin outside [0,1].
	ErrBadCurve = errors.New("model: invalid curve parameter")
	// ErrBadShape indicates a non-positive state-space bound.
	ErrBadShape = errors.New("model: state-space bound must be positive")
)

// Params contains every constant of the life-history model.
//
// PLeave, PArrive and PAttack are per-step predator probabilities; Alpha
// shapes the hormone-protection curve; Mu0 and KMort set background
// mortality; KFec sets the fecundity cost of damage; HMin, HSlope and
// Repair shape the damage transition. MaxT, MaxTs, MaxD and MaxH are
// inclusive upper bounds of the state axes (time since attack, season
// phase, damage, hormone), so each table axis has bound+1 cells.
type Params struct {
	PLeave  float64 // probability that a present predator leaves
	PArrive float64 // probability that an absent predator arrives
	PAttack float64 // probability that a present predator attacks

	Alpha float64 // hormone-protection exponent
	Mu0   float64 // damage-independent background mortality
	KMort float64 // mortality increase per damage unit
	KFec  float64 // fecundity decrease per damage unit

	HMin   float64 // hormone fraction that minimises new damage
	HSlope float64 // damage cost of deviating from HMin
	Repair float64 // damage units repaired per time step

	MaxT  int // time steps since last attack: 0..MaxT
	MaxTs int // season length: phases 0..MaxTs
	MaxD  int // damage levels: 0..MaxD
	MaxH  int // hormone levels: 0..MaxH
}

// DefaultParams returns the baseline model configuration. The six
// environment parameters (PLeave, PArrive, PAttack, Alpha, KMort, KFec)
// are expected to be overridden by the caller.
func DefaultParams() Params {
	return Params{
		PAttack: 0.5,
		Alpha:   1.0,
		Mu0:     0.002,
		KFec:    0.05,
		HMin:    0.3,
		HSlope:  20.0,
		Repair:  1.0,
		MaxT:    100,
		MaxTs:   10,
		MaxD:    20,
		MaxH:    500,
	}
}

// Validate checks every field and fails fast on the first violation,
// naming the offending parameter and its expected range.
//
// Complexity: O(1).
func (p Params) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"PLeave", p.PLeave},
		{"PArrive", p.PArrive},
		{"PAttack", p.PAttack},
	}
	for _, pr := range probs {
		if pr.v < 0 || pr.v >= 1 {
			return fmt.Errorf("model: %s=%g, want [0,1): %w", pr.name, pr.v, ErrBadProbability)
		}
	}

	curves := []struct {
		name string
		v    float64
	}{
		{"Alpha", p.Alpha},
		{"Mu0", p.Mu0},
		{"KMort", p.KMort},
		{"KFec", p.KFec},
		{"HSlope", p.HSlope},
		{"Repair", p.Repair},
	}
	for _, c := range curves {
		if c.v < 0 {
			return fmt.Errorf("model: %s=%g, want >= 0: %w", c.name, c.v, ErrBadCurve)
		}
	}
	if p.HMin < 0 || p.HMin > 1 {
		return fmt.Errorf("model: HMin=%g, want [0,1]: %w", p.HMin, ErrBadCurve)
	}

	bounds := []struct {
		name string
		v    int
	}{
		{"MaxT", p.MaxT},
		{"MaxTs", p.MaxTs},
		{"MaxD", p.MaxD},
		{"MaxH", p.MaxH},
	}
	for _, b := range bounds {
		if b.v < 1 {
			return fmt.Errorf("model: %s=%d, want >= 1: %w", b.name, b.v, ErrBadShape)
		}
	}

	return nil
}
