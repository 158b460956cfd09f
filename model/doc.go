// Package model defines the parameter set and the write-once numeric
// tables of the stress-damage life-history model.
//
// What:
//
//   - Params collects every model constant: predator dynamics (PLeave,
//     PArrive, PAttack), the hormone-protection exponent Alpha, mortality
//     and fecundity coefficients, the damage-cost curve, and the inclusive
//     state-space bounds MaxT/MaxTs/MaxD/MaxH.
//   - New validates the parameters and computes five tables exactly once:
//     PredatorPresence, KillProbability, BackgroundMortality,
//     DamageTransition and Fecundity. Tables never mutate afterwards.
//
// Why:
//
//   - Every downstream component (policy solver, forward projection,
//     trajectory simulation) reads the same environment; computing it once
//     and sharing an immutable *Tables removes any ordering hazard.
//
// Model:
//
//   - PredatorPresence[1] = 1−PLeave; for t ≥ 2 a renewal recursion
//     conditions on "no attack at t−1". Always within [0,1].
//   - KillProbability[h] = max(0, 1−(h/MaxH)^Alpha): hormone buys
//     protection, with diminishing returns for Alpha < 1.
//   - BackgroundMortality[d] = min(1, Mu0 + KMort·d).
//   - DamageTransition[d][h] = clamp(0, MaxD, d + HSlope·(HMin−h/MaxH)² − Repair):
//     a convex cost minimized at hormone fraction HMin, offset by repair.
//   - Fecundity[ts][d] = max(0, 1−KFec·d) at season boundaries
//     (ts mod MaxTs == 0), zero elsewhere.
//
// Errors:
//
//   - ErrBadProbability: PLeave/PArrive/PAttack outside [0,1).
//   - ErrBadCurve: a curve coefficient is negative (or HMin outside [0,1]).
//   - ErrBadShape: a state-space bound is not positive.
package model
