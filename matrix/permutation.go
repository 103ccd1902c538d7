// SPDX-License-Identifier: MIT
// Package matrix: permutation matrices and their text rendering.

package matrix

import (
	"bufio"
	"fmt"
	"io"
)

// FromPermutation builds the n×n matrix of sigma (values 1..n at positions
// 0..n−1), marking (i, sigma[i]−1) for each row i.
// Stage 1 (Validate): non-empty, values in range, no repeats.
// Stage 2 (Execute): mark one cell per row.
// Complexity: O(n²) memory for the matrix, O(n) work.
func FromPermutation(sigma []int) (*Dense, error) {
	n := len(sigma)
	m, err := NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("FromPermutation: %w", err)
	}

	seen := make([]bool, n)
	for i, v := range sigma {
		if v < 1 || v > n || seen[v-1] {
			return nil, fmt.Errorf("FromPermutation: σ[%d]=%d: %w", i, v, ErrInvalidPermutation)
		}
		seen[v-1] = true
		m.data[i*n+v-1] = true
	}

	return m, nil
}

// Permutation reads sigma back from a square matrix with exactly one mark in
// every row and every column.
// Complexity: O(n²).
func (m *Dense) Permutation() ([]int, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Dense.Permutation: %d×%d not square: %w", m.r, m.c, ErrInvalidPermutation)
	}
	sigma := make([]int, m.r)
	colUsed := make([]bool, m.c)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !m.data[i*m.c+j] {
				continue
			}
			if sigma[i] != 0 || colUsed[j] {
				return nil, fmt.Errorf("Dense.Permutation: extra mark at (%d,%d): %w", i, j, ErrInvalidPermutation)
			}
			sigma[i] = j + 1
			colUsed[j] = true
		}
		if sigma[i] == 0 {
			return nil, fmt.Errorf("Dense.Permutation: row %d unmarked: %w", i, ErrInvalidPermutation)
		}
	}

	return sigma, nil
}

// Render writes m as text, one line per row, using mark for set cells and
// blank otherwise.
// Complexity: O(r*c) output.
func Render(w io.Writer, m *Dense, mark, blank rune) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			ch := blank
			if m.data[i*m.c+j] {
				ch = mark
			}
			if _, err := bw.WriteRune(ch); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}

	return bw.Flush()
}
