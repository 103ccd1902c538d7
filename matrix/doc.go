// Package matrix provides the 0/1 dense matrix that carries a sampled
// permutation to its renderers.
//
// The matrix package provides:
//
//   - Dense: a row-major binary matrix with bounds-checked At/Set.
//   - FromPermutation: the n×n permutation matrix of σ, marked at (i, σ[i]−1).
//   - (*Dense).Permutation: the inverse reading, one mark per row required.
//   - Render: a plain-text grid writer used by the CLI and golden tests.
//
// Matrices are O(n²) memory, which is fine at interactive sizes (a few hundred
// cells) and the reason no sparse form is offered.
package matrix
