// SPDX-License-Identifier: MIT
// Package: rskperm/shape
//
// partition.go — Partition type, validation and constructors.

package shape

import (
	"fmt"
	"strconv"
	"strings"
)

// MaxCells bounds the size of any valid partition.
const MaxCells = 1 << 20

// Partition lists the row lengths of a Young diagram, top row first.
type Partition []int

// Size returns n = Σ λᵢ, the number of cells.
// Complexity: O(rows).
func (p Partition) Size() int {
	n := 0
	for _, l := range p {
		n += l
	}
	return n
}

// Rows returns the number of rows.
func (p Partition) Rows() int { return len(p) }

// Cols returns the length of the top row (0 for an empty partition).
func (p Partition) Cols() int {
	if len(p) == 0 {
		return 0
	}
	return p[0]
}

// Validate reports ErrInvalidShape (wrapped with the offending row) unless p is
// non-empty, all rows are ≥ 1, rows are weakly decreasing and the diagram has
// at most MaxCells cells.
// Complexity: O(rows).
func (p Partition) Validate() error {
	if len(p) == 0 {
		return fmt.Errorf("shape: empty partition: %w", ErrInvalidShape)
	}
	total := 0
	for r, l := range p {
		if l < 1 {
			return fmt.Errorf("shape: row %d has length %d: %w", r, l, ErrInvalidShape)
		}
		if r > 0 && l > p[r-1] {
			return fmt.Errorf("shape: row %d (%d) longer than row %d (%d): %w",
				r, l, r-1, p[r-1], ErrInvalidShape)
		}
		if l > MaxCells-total {
			return fmt.Errorf("shape: more than %d cells at row %d: %w", MaxCells, r, ErrInvalidShape)
		}
		total += l
	}

	return nil
}

// Clone returns an independent copy of p.
func (p Partition) Clone() Partition {
	out := make(Partition, len(p))
	copy(out, p)
	return out
}

// Conjugate returns the transposed partition: column lengths of p as rows.
// p must be valid.
// Complexity: O(rows·cols).
func (p Partition) Conjugate() Partition {
	out := make(Partition, p.Cols())
	for c := range out {
		for _, l := range p {
			if l > c {
				out[c]++
			}
		}
	}
	return out
}

// String renders p in Parse syntax with repeated rows folded, e.g. "3^2,1".
func (p Partition) String() string {
	var b strings.Builder
	for i := 0; i < len(p); {
		j := i
		for j < len(p) && p[j] == p[i] {
			j++
		}
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(p[i]))
		if j-i > 1 {
			b.WriteByte('^')
			b.WriteString(strconv.Itoa(j - i))
		}
		i = j
	}
	return b.String()
}

// Staircase returns [k, k−1, …, 1].
func Staircase(k int) (Partition, error) {
	if k < 1 || k > MaxCells {
		return nil, fmt.Errorf("shape: Staircase(%d): %w", k, ErrInvalidShape)
	}
	out := make(Partition, k)
	for i := range out {
		out[i] = k - i
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("shape: Staircase(%d): %w", k, err)
	}
	return out, nil
}

// Rectangle returns rows copies of cols.
func Rectangle(rows, cols int) (Partition, error) {
	if rows < 1 || cols < 1 || cols > MaxCells/rows {
		return nil, fmt.Errorf("shape: Rectangle(%d,%d): %w", rows, cols, ErrInvalidShape)
	}
	out := make(Partition, rows)
	for i := range out {
		out[i] = cols
	}
	return out, nil
}
