// SPDX-License-Identifier: MIT
// Package: rskperm/rsk
//
// permutation.go — the Permutation result type.

package rsk

import (
	"fmt"

	"github.com/katalvlaran/rskperm/matrix"
)

// Permutation holds σ(1..n) at positions 0..n−1.
type Permutation []int

// Len returns n.
func (s Permutation) Len() int { return len(s) }

// Validate reports ErrNotPermutation unless s uses every value 1..n once.
// Complexity: O(n).
func (s Permutation) Validate() error {
	seen := make([]bool, len(s)+1)
	for i, v := range s {
		if v < 1 || v > len(s) {
			return fmt.Errorf("rsk: σ[%d]=%d outside 1..%d: %w", i, v, len(s), ErrNotPermutation)
		}
		if seen[v] {
			return fmt.Errorf("rsk: value %d repeated at σ[%d]: %w", v, i, ErrNotPermutation)
		}
		seen[v] = true
	}
	return nil
}

// Matrix returns the n×n 0/1 permutation matrix with a mark at (i, σ[i]−1).
func (s Permutation) Matrix() (*matrix.Dense, error) {
	return matrix.FromPermutation(s)
}
