// SPDX-License-Identifier: MIT
// Package: rskperm/shape
//
// scale.go — resizing a diagram to a target number of cells.
//
// Scale first blows every cell up into a k×k block, with k the smallest factor
// that reaches n cells, then trims corner cells from the bottom row upward in
// repeated sweeps until exactly n remain. The outline of a drawn shape is kept
// while its size is pinned to the requested n.

package shape

import "fmt"

// Scale returns a partition of exactly n cells with the outline of p.
// p must be valid and 1 ≤ n ≤ MaxCells.
// Complexity: O(n·rows) worst case.
func Scale(p Partition, n int) (Partition, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("shape: Scale: %w", err)
	}
	if n < 1 || n > MaxCells {
		return nil, fmt.Errorf("shape: Scale: target %d outside [1,%d]: %w", n, MaxCells, ErrInvalidShape)
	}

	size := p.Size()
	k := 1
	for size*k*k < n {
		k++
	}
	out := blockScale(p, k)

	for excess := size*k*k - n; excess > 0; {
		// Sweep bottom-up; a row may lose its last cell only while it stays at
		// least as long as the row below.
		for r := len(out) - 1; r >= 0 && excess > 0; r-- {
			if r+1 < len(out) && out[r] == out[r+1] {
				continue
			}
			out[r]--
			excess--
		}
		for len(out) > 0 && out[len(out)-1] == 0 {
			out = out[:len(out)-1]
		}
	}

	return out, nil
}

// blockScale replaces every row of length l with k rows of length l·k.
func blockScale(p Partition, k int) Partition {
	out := make(Partition, 0, len(p)*k)
	for _, l := range p {
		for i := 0; i < k; i++ {
			out = append(out, l*k)
		}
	}
	return out
}
