// Package stressdamage solves for the evolutionarily optimal
// state-dependent stress-hormone strategy of an organism facing
// fluctuating predation risk and accumulating somatic damage.
//
// 🚀 What is stress-damage?
//
//	A small, deterministic life-history toolkit that brings together:
//		• Model tables: predator-presence recursion, kill and mortality
//		  curves, damage transitions, seasonal fecundity
//		• Policy solver: backward induction over a cyclic season horizon,
//		  with a per-state integer golden-section search
//		• Forward projection: stationary population frequencies under the
//		  converged strategy, with per-cause death accounting
//		• Trajectory simulation: a single individual's path through a
//		  scripted attack window, reproducible from an explicit seed
//
// ✨ Why choose stress-damage?
//
//   - Deterministic – no wall-clock randomness inside library packages
//   - Explicit ownership – each component owns its tables; no globals
//   - Pure Go – no cgo, no hidden deps
//   - Testable – every convergence and conservation property is asserted
//
// Under the hood, everything is organized under five subpackages:
//
//	model/    — parameters and the write-once environment/damage/fecundity tables
//	tensor/   — flat row-major 3- and 4-index numeric tables
//	policy/   — golden-section search, season sweeps, value iteration
//	forward/  — stationary frequency distribution of the population
//	simulate/ — scripted-attack trajectory of one individual
//
// The cmd/stress-damage binary wires the six model parameters from the
// command line and writes the strategy, forward-projection and trajectory
// artifacts as flat tab-delimited text.
package stressdamage
