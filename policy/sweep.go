package policy

import (
	"math"

	"github.com/favchett/stress-damage/model"
	"github.com/favchett/stress-damage/tensor"
)

// Solver owns every mutable table of the backward induction: the policy,
// the per-state optima of the current sweep, the carried-forward and
// candidate value tables, and the previous iteration's baseline. A Solver
// is not safe for concurrent use.
type Solver struct {
	tab *model.Tables

	// policy[t][ts][d]: optimal hormone level; slice ts=MaxTs mirrors
	// ts=0 after each fit replacement (season wrap).
	policy *tensor.I3

	// perState[t][ts][d]: value of the optimal decision found this sweep.
	perState *tensor.T3

	// candidate[t][ts][d][h]: value of entering the step at state (t,ts,d)
	// holding hormone h, freshly computed this iteration.
	candidate *tensor.T4

	// carry[t][ts][d][h]: value table read by the next (earlier) season
	// sweep; its ts=MaxTs slice closes the season loop.
	carry *tensor.T4

	// current[t][d][h]: baseline from the previous outer iteration, the
	// reference point of the convergence measure.
	current *tensor.T3

	iterations int
}

// NewSolver allocates all tables and seeds the season-end boundary: the
// carried value and the baseline both start at the season-boundary
// fecundity of the state's damage level, for every t ≥ 1. Row t=0 stays
// zero; it is never read, because the continuation index min(t+1,MaxT) is
// at least 1.
//
// Complexity: O(MaxT·MaxD·MaxH).
func NewSolver(tab *model.Tables) (*Solver, error) {
	if tab == nil {
		return nil, ErrNilTables
	}
	p := tab.Params

	s := &Solver{
		tab:       tab,
		policy:    tensor.NewI3(p.MaxT+1, p.MaxTs+1, p.MaxD+1),
		perState:  tensor.NewT3(p.MaxT+1, p.MaxTs+1, p.MaxD+1),
		candidate: tensor.NewT4(p.MaxT+1, p.MaxTs+1, p.MaxD+1, p.MaxH+1),
		carry:     tensor.NewT4(p.MaxT+1, p.MaxTs+1, p.MaxD+1, p.MaxH+1),
		current:   tensor.NewT3(p.MaxT+1, p.MaxD+1, p.MaxH+1),
	}

	for t := 1; t <= p.MaxT; t++ {
		for d := 0; d <= p.MaxD; d++ {
			final := tab.Fecundity[p.MaxTs][d]
			for h := 0; h <= p.MaxH; h++ {
				s.carry.Set(t, p.MaxTs, d, h, final)
				s.current.Set(t, d, h, final)
			}
		}
	}

	return s, nil
}

// Step runs one outer iteration (full backward season sweep plus fit
// replacement) and returns the aggregate absolute value change against the
// previous iteration.
func (s *Solver) Step() float64 {
	s.sweepSeasons()
	diff := s.replaceFit()
	s.iterations++

	return diff
}

// Iterations returns the number of completed outer iterations.
func (s *Solver) Iterations() int {
	return s.iterations
}

// Policy returns the solver-owned strategy table. The table mutates on
// every Step; callers that need a stable snapshot should Clone it.
func (s *Solver) Policy() *tensor.I3 {
	return s.policy
}

// sweepSeasons performs the backward induction over season phases, from
// MaxTs−1 down to 0, so each sweep can reach forward to the ts+1 slice of
// the carried value table.
func (s *Solver) sweepSeasons() {
	p := s.tab.Params

	for ts := p.MaxTs - 1; ts >= 0; ts-- {
		// Optimal decision per (t,d): the objective is the carried value
		// one step ahead, which is unimodal in hormone level.
		for t := 0; t <= p.MaxT; t++ {
			tn := t + 1
			if tn > p.MaxT {
				tn = p.MaxT
			}
			for d := 0; d <= p.MaxD; d++ {
				h, v := MaxUnimodal(p.MaxH, func(h int) float64 {
					return s.carry.At(tn, ts+1, d, h)
				})
				s.policy.Set(t, ts, d, h)
				s.perState.Set(t, ts, d, v)
			}
		}

		// Candidate value of every (t,d,h) before the predator does or
		// doesn't attack. Row t=0 is undefined: an individual observes
		// t=0 only in the instant after surviving an attack, which is the
		// continuation read below, never an entry state.
		//
		// Both continuations read perState at the ts being swept: this is
		// the coupling that carries value backward across the season.
		for t := 1; t <= p.MaxT; t++ {
			pAtt := s.tab.PredatorPresence[t] * p.PAttack
			for d := 0; d <= p.MaxD; d++ {
				surv := 1.0 - s.tab.BackgroundMortality[d]
				payoff := s.tab.Fecundity[ts][d]
				for h := 0; h <= p.MaxH; h++ {
					lo, hi, frac := s.tab.DamageSplit(d, h)

					attacked := payoff + (1.0-frac)*s.perState.At(0, ts, lo) + frac*s.perState.At(0, ts, hi)
					calm := payoff + (1.0-frac)*s.perState.At(t, ts, lo) + frac*s.perState.At(t, ts, hi)

					w := pAtt*(1.0-s.tab.KillProbability[h])*surv*attacked +
						(1.0-pAtt)*surv*calm

					s.candidate.Set(t, ts, d, h, w)
					s.carry.Set(t, ts, d, h, w)
				}
			}
		}
	}
}

// replaceFit closes the season loop for the next outer iteration: it
// accumulates the aggregate |Current − Candidate[·][0][·][·]| difference,
// wraps the ts=0 slices of the candidate values and the policy into their
// ts=MaxTs slots, and promotes the candidate to the new baseline.
func (s *Solver) replaceFit() float64 {
	p := s.tab.Params

	var diff float64
	for t := 1; t <= p.MaxT; t++ {
		for d := 0; d <= p.MaxD; d++ {
			for h := 0; h <= p.MaxH; h++ {
				w := s.candidate.At(t, 0, d, h)
				diff += math.Abs(s.current.At(t, d, h) - w)
				s.carry.Set(t, p.MaxTs, d, h, w)
				s.current.Set(t, d, h, w)
			}
			s.policy.Set(t, p.MaxTs, d, s.policy.At(t, 0, d))
		}
	}

	return diff
}
