// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// All functions return these sentinels (possibly wrapped with %w context);
// tests check them via errors.Is. Nothing here panics on user input.

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrIndexOutOfBounds indicates that a row or column index is outside valid range.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")

	// ErrInvalidPermutation indicates a sequence that is not a bijection of 1..n,
	// or a matrix whose rows/columns do not hold exactly one mark each.
	ErrInvalidPermutation = errors.New("matrix: not a permutation")
)
