// SPDX-License-Identifier: MIT
// Package: rskperm/engine
//
// options.go — Engine configuration.
//
// Deterministic defaults:
//   • source   = random.Crypto()
//   • mode     = ModeShortcut
//   • parallel = off (P and Q drawn sequentially from source)
//   • logger   = zap.NewNop()

package engine

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/rskperm/random"
)

// Mode selects the inverse procedure.
type Mode int

const (
	// ModeShortcut reads σ[k−1] = P[r][c] directly (rsk.Inverse).
	ModeShortcut Mode = iota
	// ModeBumping runs canonical inverse RSK (rsk.InverseBumping).
	ModeBumping
)

var modeNames = map[Mode]string{
	ModeShortcut: "shortcut",
	ModeBumping:  "bumping",
}

// String returns the CLI name of m.
func (m Mode) String() string {
	if name, ok := modeNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// ParseMode maps "shortcut" / "bumping" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(strings.TrimSpace(s), name) {
			return m, nil
		}
	}
	return 0, fmt.Errorf("engine: ParseMode(%q): %w", s, ErrUnknownMode)
}

type config struct {
	src         random.Source
	pSrc, qSrc  random.Source
	mode        Mode
	maxAttempts int
	logger      *zap.Logger
}

// Option customizes an Engine.
type Option func(*config)

// WithSource sets the shared source for sequential pair draws. Panics on nil.
func WithSource(src random.Source) Option {
	if src == nil {
		panic("engine: WithSource(nil)")
	}
	return func(c *config) { c.src = src }
}

// WithPairSources switches Run to concurrent pair sampling with P drawn from
// p and Q from q. Panics on nil.
func WithPairSources(p, q random.Source) Option {
	if p == nil || q == nil {
		panic("engine: WithPairSources(nil)")
	}
	return func(c *config) { c.pSrc, c.qSrc = p, q }
}

// WithMode selects the inverse procedure. Panics on an unknown Mode.
func WithMode(m Mode) Option {
	if _, ok := modeNames[m]; !ok {
		panic("engine: WithMode(unknown)")
	}
	return func(c *config) { c.mode = m }
}

// WithMaxAttempts forwards tableau.WithMaxAttempts. Panics if m < 1.
func WithMaxAttempts(m int) Option {
	if m < 1 {
		panic("engine: WithMaxAttempts(m<1)")
	}
	return func(c *config) { c.maxAttempts = m }
}

// WithLogger attaches a structured logger. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("engine: WithLogger(nil)")
	}
	return func(c *config) { c.logger = l }
}
