// SPDX-License-Identifier: MIT
// Package: rskperm/shape
//
// grid.go — quantizing a drawn outline into a partition.
//
// A drawing surface is sampled into a boolean grid where true marks a cell
// the pen crossed. Every marked cell (r,c) claims the whole rectangle
// [0..r]×[0..c], so any outline drawn around the top-left corner becomes a
// filled, left-justified diagram. The row length of row r is therefore one past
// the right-most mark in rows r and below, which is weakly decreasing by
// construction; reading stops at the first empty row.

package shape

import "fmt"

// FromBorderGrid converts a marked grid into a partition.
// Returns ErrInvalidShape when nothing is marked.
// Complexity: O(R·C) using a suffix sweep instead of per-cell rectangle fills.
func FromBorderGrid(grid [][]bool) (Partition, error) {
	rows := len(grid)

	// reach[r] = 1 + max column marked in any row ≥ r.
	reach := make([]int, rows+1)
	for r := rows - 1; r >= 0; r-- {
		reach[r] = reach[r+1]
		for c := len(grid[r]) - 1; c >= 0; c-- {
			if grid[r][c] {
				if c+1 > reach[r] {
					reach[r] = c + 1
				}
				break
			}
		}
	}

	var out Partition
	for r := 0; r < rows && reach[r] > 0; r++ {
		out = append(out, reach[r])
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("shape: FromBorderGrid: no marked cells: %w", ErrInvalidShape)
	}

	return out, nil
}
