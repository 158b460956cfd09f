// Package simulate traces one individual's path through the model under a
// converged hormone strategy, with a scripted predator-attack window.
//
// What:
//
//   - Run executes a fixed number of discrete steps (three season lengths
//     by default). Inside the scripted window every step is an attack,
//     forcing the time-since-attack state back to zero; outside it the
//     state increments, capped at MaxT.
//   - Each step reads the policy at (t, ts mod MaxTs, d), splits the
//     damage transition over its floor/ceil bins, and draws one uniform
//     variate to pick the realized bin.
//
// Why:
//
//   - The trajectory makes the converged strategy legible: hormone level
//     spiking through the attack window and relaxing afterwards is the
//     model's headline prediction, easiest to read off a single path.
//
// Determinism:
//
//   - The generator is constructed from an explicit seed; seed 0 selects a
//     fixed default, so library callers are reproducible unless they opt
//     into external entropy (the CLI seeds from the wall clock).
//
// Errors:
//
//   - ErrNilTables, ErrNilPolicy: missing inputs.
//   - ErrBadOptions: negative step count or an inverted attack window.
package simulate
