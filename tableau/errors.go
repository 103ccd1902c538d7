// SPDX-License-Identifier: MIT
// Package: rskperm/tableau
//
// errors.go — sentinel errors for the tableau package.
//
// Callers MUST use errors.Is(err, ErrX). Shape problems are reported with
// shape.ErrInvalidShape, entropy problems with random.ErrEntropyUnavailable.

package tableau

import "errors"

// ErrNotStandard indicates a tableau violates the SYT invariants: a label
// outside 1..n, a repeated label, an empty cell, or a row/column that is not
// strictly increasing.
var ErrNotStandard = errors.New("tableau: not a standard Young tableau")

// ErrIndexOutOfBounds indicates a row or column index outside the tableau.
var ErrIndexOutOfBounds = errors.New("tableau: index out of bounds")

// ErrSamplingExhausted indicates the bounded empty-cell rejection loop ran out
// of attempts. With default limits this signals a bug, not bad luck.
var ErrSamplingExhausted = errors.New("tableau: empty-cell sampling exhausted")

// ErrSharedSource indicates SamplePairParallel received a nil Source or the
// same Source for both draws; concurrent draws need independent streams.
var ErrSharedSource = errors.New("tableau: parallel draws need two distinct sources")
