// Package forward projects a population frequency distribution under a
// converged hormone strategy to its stationary distribution.
//
// What:
//
//   - Project starts from a single point mass (t=MaxT, ts=0, d=0, h=0)
//     and repeats breeding-cycle sweeps: each occupied state splits its
//     mass over the attack/no-attack branches and the floor/ceil damage
//     bins, with the destination hormone level routed through the policy.
//   - Deaths are accounted per cause (predation, damage excess over the
//     baseline, background) and the surviving mass is renormalized each
//     cycle, so the ts=0 slice always sums to exactly 1.
//
// Why:
//
//   - The projection is an independent correctness check on the solver:
//     it exercises the same transition structure forward in time, and its
//     fixed point is the long-run state distribution the strategy induces.
//
// Convergence:
//
//   - A cycle's largest per-state frequency change below Tolerance means
//     the stationary distribution is reached. Project stops at MaxCycles
//     and reports Converged=false, so an oscillating process surfaces as
//     a warning rather than a hang.
//
// Complexity per cycle:
//
//	O(MaxT·MaxTs·MaxD·MaxH) time, O(MaxT·MaxTs·MaxD·MaxH) memory once.
//
// Errors:
//
//   - ErrNilTables, ErrNilPolicy: missing inputs.
//   - ErrBadOptions: negative cycle cap or tolerance.
package forward
