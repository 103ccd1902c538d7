// Package rskperm turns Young diagram shapes into random permutations.
//
// It draws a uniformly random pair of standard Young tableaux (P, Q) of a
// shape with the Greene–Nijenhuis–Wilf hook walk and inverts the
// Robinson–Schensted–Knuth correspondence to recover a permutation σ.
//
// Under the hood, everything is organized in subpackages, leaf first:
//
//	random/  — uniform deviate sources: crypto (default), seeded Salsa20, math/rand adapter
//	shape/   — partitions: validation, "50^50" text syntax, staircases, drawn-grid capture
//	tableau/ — Tableau type, hook-walk SYT sampler, sequential and parallel pair sampling
//	rsk/     — inverse RSK: the direct-read shortcut and canonical reverse bumping
//	matrix/  — 0/1 permutation matrices and text rendering
//	engine/  — the shape → (P,Q) → σ pipeline with structured logging
//	cmd/rskperm — the command-line front end
//
// Quick ASCII example, shape [3,1] with one of its three SYT:
//
//	1 2 4
//	3
//
//	go install github.com/katalvlaran/rskperm/cmd/rskperm@latest
package rskperm
