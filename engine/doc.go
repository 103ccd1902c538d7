// Package engine wires the sampling pipeline end to end:
//
//	shape ─► SamplePair ─► (P, Q) ─► Clone ─► rsk inverse ─► σ ─► permutation matrix
//
// An Engine is configured once with functional options (source, inverse mode,
// parallel pair sources, logger) and then Run for any number of shapes. Run
// never mutates the P and Q it returns: inversion always works on deep
// clones, so callers can render the tableaux next to σ.
package engine
