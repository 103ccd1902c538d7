// SPDX-License-Identifier: MIT
// Package: rskperm/random
//
// errors.go — sentinel errors for the random package.
//
// Callers MUST branch with errors.Is; implementations attach context via %w.

package random

import "errors"

// ErrEntropyUnavailable indicates the underlying strong entropy reader failed
// or returned a short read. Sampling MUST stop: falling back to a weaker
// generator would silently break uniformity.
var ErrEntropyUnavailable = errors.New("random: entropy source unavailable")

// ErrInvalidRange indicates RandInt was asked for an empty range (hi < lo).
var ErrInvalidRange = errors.New("random: invalid integer range")
