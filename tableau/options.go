// SPDX-License-Identifier: MIT
// Package: rskperm/tableau
//
// options.go — functional options for the samplers.
//
// Contract:
//   • Options are functional (type Option func(*samplerConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs;
//     the samplers themselves never panic.
//   • Defaults: random.Crypto() source, no logging, attempt limit derived
//     from the shape (see attemptLimit).

package tableau

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/rskperm/random"
)

// Attempt-limit policy for the empty-cell rejection loop.
const (
	attemptsPerBoxCell = 64   // multiplier over the bounding box R·C
	minAttempts        = 1024 // floor for tiny shapes
)

// samplerConfig aggregates sampler knobs; passed by value.
type samplerConfig struct {
	src         random.Source
	maxAttempts int // 0 → derived from shape
	logger      *zap.Logger
}

// Option customizes a sampler call.
type Option func(*samplerConfig)

// newSamplerConfig applies opts over the defaults, last wins.
func newSamplerConfig(opts ...Option) samplerConfig {
	cfg := samplerConfig{
		src:    random.Crypto(),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// attemptLimit returns the per-label bound on rejection draws for a shape
// with the given bounding box. The acceptance rate never drops below
// 1/(rows·cols), so 64·rows·cols draws fail with probability < e^-64.
func (c samplerConfig) attemptLimit(rows, cols int) int {
	if c.maxAttempts > 0 {
		return c.maxAttempts
	}
	limit := attemptsPerBoxCell * rows * cols
	if limit < minAttempts {
		limit = minAttempts
	}
	return limit
}

// WithSource sets the deviate source. Panics on nil.
func WithSource(src random.Source) Option {
	if src == nil {
		panic("tableau: WithSource(nil)")
	}
	return func(c *samplerConfig) {
		c.src = src
	}
}

// WithMaxAttempts caps the rejection draws per label. Panics if m < 1.
func WithMaxAttempts(m int) Option {
	if m < 1 {
		panic("tableau: WithMaxAttempts(m<1)")
	}
	return func(c *samplerConfig) {
		c.maxAttempts = m
	}
}

// WithLogger attaches a structured logger; sampler events log at Debug.
// Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("tableau: WithLogger(nil)")
	}
	return func(c *samplerConfig) {
		c.logger = l
	}
}
