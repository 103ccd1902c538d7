// SPDX-License-Identifier: MIT
// Package: rskperm/random
//
// source.go — the Source contract and the integer-uniform helper.

package random

import (
	"fmt"
	"math"
)

const methodRandInt = "RandInt"

// Source produces independent uniform deviates in [0,1).
// Implementations return ErrEntropyUnavailable (possibly wrapped) when their
// entropy stream cannot be read.
type Source interface {
	Float64() (float64, error)
}

// RandInt returns an integer uniformly distributed in the inclusive range
// [lo, hi], computed as floor(r·(hi−lo+1)) + lo for one deviate r.
// Complexity: O(1), one draw from src.
func RandInt(src Source, lo, hi int) (int, error) {
	if hi < lo {
		return 0, fmt.Errorf("%s(%d,%d): %w", methodRandInt, lo, hi, ErrInvalidRange)
	}
	r, err := src.Float64()
	if err != nil {
		return 0, fmt.Errorf("%s(%d,%d): %w", methodRandInt, lo, hi, err)
	}

	width := float64(hi - lo + 1)
	v := int(math.Floor(r*width)) + lo
	// r < 1 but r·width can round up to width for very wide ranges.
	if v > hi {
		v = hi
	}

	return v, nil
}

// bitsToFloat maps the top 53 bits of u onto [0,1).
func bitsToFloat(u uint64) float64 {
	return float64(u>>11) / (1 << 53)
}
