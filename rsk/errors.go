// SPDX-License-Identifier: MIT
// Package: rskperm/rsk
//
// errors.go — sentinel errors for the rsk package.
//
// All three are contract violations by the caller (malformed input), never
// transient conditions: there is nothing to retry.

package rsk

import "errors"

// ErrShapeMismatch indicates P and Q differ in shape or total cell count.
var ErrShapeMismatch = errors.New("rsk: tableau shapes differ")

// ErrLabelMissing indicates a label k ∈ 1..n is absent from Q, or P has no
// cell at the coordinates where Q holds k.
var ErrLabelMissing = errors.New("rsk: label missing from tableau pair")

// ErrNotPermutation indicates a sequence is not a bijection of 1..n.
var ErrNotPermutation = errors.New("rsk: not a permutation")
