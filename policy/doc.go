// Package policy computes the optimal state-dependent hormone strategy by
// backward induction over a cyclic season horizon.
//
// What:
//
//   - MaxUnimodal — integer golden-section search for the argmax of a
//     unimodal objective on 0..n.
//   - Solver — owns the policy and value tables and exposes one outer
//     iteration at a time: a full backward season sweep followed by the
//     fit-replacement step that closes the season loop.
//   - Solve — drives a Solver to convergence (aggregate absolute value
//     change < Tolerance) or to the iteration cap.
//
// Why:
//
//   - The state space (t, ts, d) × control h is a dense lattice; the value
//     of each state depends only on the previous sweep's carried-forward
//     table, so one sweep per season phase from MaxTs−1 down to 0 is a
//     complete backward induction step.
//   - Within one season sweep the per-(t,d) searches are mutually
//     independent — each reads only the previous sweep's carried table and
//     writes only its own slot — but execution is sequential; a Solver is
//     not safe for concurrent use.
//   - The objective is unimodal in hormone level, so a golden-section
//     bracket finds the per-state optimum in O(log MaxH) probes instead of
//     a full scan. No multimodality detection exists: if the assumption is
//     violated the search silently returns a local optimum.
//
// Algorithm (one outer iteration):
//
//  1. For ts = MaxTs−1 down to 0:
//     a. For every (t, d): h* = argmax over h of
//     Carry[min(t+1,MaxT)][ts+1][d][h]; record Policy[t][ts][d] = h*
//     and PerState[t][ts][d] = the optimal value.
//     b. For t = 1..MaxT and every (d, h): blend the attack branch
//     (probability PredatorPresence[t]·PAttack, survival
//     (1−KillProbability[h])·(1−BackgroundMortality[d]), continuation
//     read at t=0) with the no-attack branch (continuation read at the
//     same t), each continuation interpolated over the damage
//     floor/ceil bins and both reading PerState at the ts being swept.
//  2. Fit replacement: aggregate |Current − Candidate[·][0][·][·]|, wrap
//     the ts=0 slices of the candidate values and the policy into the
//     ts=MaxTs slots, and promote the candidate to Current.
//
// Convergence: the aggregate difference contracts because every branch is
// discounted by survival < 1; hitting the iteration cap instead is
// non-fatal and reported through Result.Converged.
//
// Complexity per outer iteration:
//
//	O(MaxTs·MaxT·MaxD·(log MaxH + MaxH)) time, O(MaxT·MaxTs·MaxD·MaxH) memory.
//
// Errors:
//
//   - ErrNilTables: Solve/NewSolver called without model tables.
//   - ErrBadOptions: negative iteration cap or tolerance.
package policy
