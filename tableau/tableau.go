// SPDX-License-Identifier: MIT
// Package: rskperm/tableau
//
// tableau.go — the Tableau type, construction, inspection and surgery.

package tableau

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/rskperm/shape"
)

// Empty marks an unfilled cell.
const Empty = 0

// Tableau is a jagged grid of labels with row r holding len(cells[r]) cells.
// The zero value is a tableau with no rows.
type Tableau struct {
	cells [][]int
}

// New returns an all-empty tableau of shape p.
// Complexity: O(n) time and memory.
func New(p shape.Partition) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tableau: New: %w", err)
	}
	cells := make([][]int, len(p))
	for r, l := range p {
		cells[r] = make([]int, l)
	}

	return &Tableau{cells: cells}, nil
}

// FromRows builds a tableau holding a deep copy of rows. The row lengths must
// form a valid partition; labels are not checked (see Validate).
func FromRows(rows [][]int) (*Tableau, error) {
	p := make(shape.Partition, len(rows))
	for r, row := range rows {
		p[r] = len(row)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("tableau: FromRows: %w", err)
	}

	return &Tableau{cells: copyRows(rows)}, nil
}

func copyRows(rows [][]int) [][]int {
	out := make([][]int, len(rows))
	for r, row := range rows {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Clone returns a deep copy; mutating the copy never affects t.
// Complexity: O(n).
func (t *Tableau) Clone() *Tableau {
	return &Tableau{cells: copyRows(t.cells)}
}

// Rows returns the current number of rows.
func (t *Tableau) Rows() int { return len(t.cells) }

// RowLen returns the length of row r, or 0 if r is out of range.
func (t *Tableau) RowLen(r int) int {
	if r < 0 || r >= len(t.cells) {
		return 0
	}
	return len(t.cells[r])
}

// Size returns the total number of cells (filled or not).
func (t *Tableau) Size() int {
	n := 0
	for _, row := range t.cells {
		n += len(row)
	}
	return n
}

// Shape returns the current row lengths. During inverse RSK the result shrinks
// and may become empty, so it is not validated.
func (t *Tableau) Shape() shape.Partition {
	p := make(shape.Partition, len(t.cells))
	for r, row := range t.cells {
		p[r] = len(row)
	}
	return p
}

// Cells returns a deep copy of the label grid.
func (t *Tableau) Cells() [][]int {
	return copyRows(t.cells)
}

func (t *Tableau) inBounds(r, c int) bool {
	return r >= 0 && r < len(t.cells) && c >= 0 && c < len(t.cells[r])
}

// At returns the label at (r,c); Empty for an unfilled cell.
func (t *Tableau) At(r, c int) (int, error) {
	if !t.inBounds(r, c) {
		return 0, fmt.Errorf("Tableau.At(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	return t.cells[r][c], nil
}

// Set writes label v at (r,c).
func (t *Tableau) Set(r, c, v int) error {
	if !t.inBounds(r, c) {
		return fmt.Errorf("Tableau.Set(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	t.cells[r][c] = v
	return nil
}

// Find scans row-major for label and reports its position.
// Complexity: O(n).
func (t *Tableau) Find(label int) (r, c int, ok bool) {
	for r, row := range t.cells {
		for c, v := range row {
			if v == label {
				return r, c, true
			}
		}
	}
	return -1, -1, false
}

// DeleteCell removes cell (r,c) from row r, shifting the cells to its right
// one column left. The row stays in place even if it becomes empty.
// Complexity: O(len(row r)).
func (t *Tableau) DeleteCell(r, c int) error {
	if !t.inBounds(r, c) {
		return fmt.Errorf("Tableau.DeleteCell(%d,%d): %w", r, c, ErrIndexOutOfBounds)
	}
	row := t.cells[r]
	t.cells[r] = append(row[:c], row[c+1:]...)
	return nil
}

// DropRow removes row r entirely, shifting lower rows up.
func (t *Tableau) DropRow(r int) error {
	if r < 0 || r >= len(t.cells) {
		return fmt.Errorf("Tableau.DropRow(%d): %w", r, ErrIndexOutOfBounds)
	}
	t.cells = append(t.cells[:r], t.cells[r+1:]...)
	return nil
}

// Validate reports ErrNotStandard (wrapped with the first violation) unless t
// is a standard Young tableau of a valid partition shape.
// Complexity: O(n).
func (t *Tableau) Validate() error {
	if err := t.Shape().Validate(); err != nil {
		return fmt.Errorf("tableau: Validate: %w", err)
	}
	n := t.Size()
	seen := make([]bool, n+1)
	for r, row := range t.cells {
		for c, v := range row {
			if v < 1 || v > n {
				return fmt.Errorf("tableau: cell (%d,%d)=%d outside 1..%d: %w", r, c, v, n, ErrNotStandard)
			}
			if seen[v] {
				return fmt.Errorf("tableau: label %d repeated at (%d,%d): %w", v, r, c, ErrNotStandard)
			}
			seen[v] = true
			if c > 0 && row[c-1] >= v {
				return fmt.Errorf("tableau: row %d not increasing at column %d: %w", r, c, ErrNotStandard)
			}
			if r > 0 && t.cells[r-1][c] >= v {
				return fmt.Errorf("tableau: column %d not increasing at row %d: %w", c, r, ErrNotStandard)
			}
		}
	}

	return nil
}

// String renders rows on separate lines with right-aligned labels; empty
// cells print as ".".
func (t *Tableau) String() string {
	widest := t.Size()
	for _, row := range t.cells {
		for _, v := range row {
			if v > widest {
				widest = v
			}
		}
	}
	width := len(strconv.Itoa(widest))
	var b strings.Builder
	for _, row := range t.cells {
		for c, v := range row {
			if c > 0 {
				b.WriteByte(' ')
			}
			cell := "."
			if v != Empty {
				cell = strconv.Itoa(v)
			}
			b.WriteString(strings.Repeat(" ", width-len(cell)))
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
