// SPDX-License-Identifier: MIT
// Package: rskperm/rsk
//
// inverse.go — permutation reconstruction from a tableau pair.
//
// Shared loop (k = n … 1):
//   1. (r,c) ← row-major position of k in Q.
//   2. v ← P[r][c].
//   3. Delete column c from row r of P and of Q.
//   4. If row r of P is empty, drop row r from P and Q.
//   5. Shortcut: σ[k−1] ← v.
//      Bumping:  for rows r−1 … 0, swap v with the largest entry < v; σ[k−1] ← v.
//
// k is the largest remaining label of Q, so (r,c) is a corner: deletion keeps
// both shapes partitions and a row only empties when it is the last one.
//
// Complexity: O(n²) for the row-major scans; bumping adds O(R·C) per label.

package rsk

import (
	"fmt"

	"github.com/katalvlaran/rskperm/tableau"
)

const (
	methodInverse        = "Inverse"
	methodInverseBumping = "InverseBumping"
)

// Inverse runs the shortcut reconstruction. P and Q are consumed.
func Inverse(P, Q *tableau.Tableau) (Permutation, error) {
	return inverse(methodInverse, P, Q, false)
}

// InverseBumping runs canonical inverse RSK. P and Q are consumed.
func InverseBumping(P, Q *tableau.Tableau) (Permutation, error) {
	return inverse(methodInverseBumping, P, Q, true)
}

func inverse(method string, P, Q *tableau.Tableau, bump bool) (Permutation, error) {
	if err := checkPair(P, Q); err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}

	n := Q.Size()
	sigma := make(Permutation, n)
	for k := n; k >= 1; k-- {
		v, r, err := removeLabel(P, Q, k)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", method, err)
		}
		if bump {
			if v, err = bumpUp(P, r, v); err != nil {
				return nil, fmt.Errorf("%s: label %d: %w", method, k, err)
			}
		}
		sigma[k-1] = v
	}

	return sigma, nil
}

// checkPair enforces identical shapes and sizes.
func checkPair(P, Q *tableau.Tableau) error {
	ps, qs := P.Shape(), Q.Shape()
	if P.Size() != Q.Size() || len(ps) != len(qs) {
		return fmt.Errorf("P %v vs Q %v: %w", ps, qs, ErrShapeMismatch)
	}
	for r := range ps {
		if ps[r] != qs[r] {
			return fmt.Errorf("row %d: P has %d cells, Q has %d: %w", r, ps[r], qs[r], ErrShapeMismatch)
		}
	}
	return nil
}

// removeLabel performs steps 1–4 and returns P's value and the row it came from.
func removeLabel(P, Q *tableau.Tableau, k int) (v, r int, err error) {
	r, c, ok := Q.Find(k)
	if !ok {
		return 0, 0, fmt.Errorf("label %d not in Q: %w", k, ErrLabelMissing)
	}
	if v, err = P.At(r, c); err != nil {
		return 0, 0, fmt.Errorf("label %d at (%d,%d) has no cell in P: %v: %w", k, r, c, err, ErrLabelMissing)
	}
	if err = P.DeleteCell(r, c); err != nil {
		return 0, 0, err
	}
	if err = Q.DeleteCell(r, c); err != nil {
		return 0, 0, err
	}
	if P.RowLen(r) == 0 {
		if err = P.DropRow(r); err != nil {
			return 0, 0, err
		}
		if err = Q.DropRow(r); err != nil {
			return 0, 0, err
		}
	}
	return v, r, nil
}

// bumpUp reverse-bumps v from row r upwards and returns the value leaving row 0.
func bumpUp(P *tableau.Tableau, r, v int) (int, error) {
	for row := r - 1; row >= 0; row-- {
		best := -1
		for col := P.RowLen(row) - 1; col >= 0; col-- {
			x, err := P.At(row, col)
			if err != nil {
				return 0, err
			}
			if x < v {
				best = col
				v, x = x, v
				if err = P.Set(row, col, x); err != nil {
					return 0, err
				}
				break
			}
		}
		if best < 0 {
			return 0, fmt.Errorf("row %d has no entry below %d: %w", row, v, tableau.ErrNotStandard)
		}
	}
	return v, nil
}
