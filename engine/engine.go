// SPDX-License-Identifier: MIT
// Package: rskperm/engine
//
// engine.go — the sampling pipeline.

package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/rskperm/matrix"
	"github.com/katalvlaran/rskperm/random"
	"github.com/katalvlaran/rskperm/rsk"
	"github.com/katalvlaran/rskperm/shape"
	"github.com/katalvlaran/rskperm/tableau"
)

// Engine runs the shape → permutation pipeline. Safe for sequential use;
// concurrent Runs must not share a non-concurrent Source.
type Engine struct {
	cfg config
}

// Result is one pipeline run. P and Q are the sampled tableaux, untouched by
// inversion.
type Result struct {
	ID          uuid.UUID
	Shape       shape.Partition
	Mode        Mode
	P, Q        *tableau.Tableau
	Permutation rsk.Permutation
	Matrix      *matrix.Dense
}

// New builds an Engine from opts over the documented defaults.
func New(opts ...Option) *Engine {
	cfg := config{
		src:    random.Crypto(),
		mode:   ModeShortcut,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &Engine{cfg: cfg}
}

// Mode reports the configured inverse procedure.
func (e *Engine) Mode() Mode { return e.cfg.mode }

func (e *Engine) samplerOptions() []tableau.Option {
	opts := []tableau.Option{tableau.WithSource(e.cfg.src), tableau.WithLogger(e.cfg.logger)}
	if e.cfg.maxAttempts > 0 {
		opts = append(opts, tableau.WithMaxAttempts(e.cfg.maxAttempts))
	}
	return opts
}

// SampleTableau draws a single SYT of p with the configured source.
func (e *Engine) SampleTableau(p shape.Partition) (*tableau.Tableau, error) {
	return tableau.Sample(p, e.samplerOptions()...)
}

// Run samples (P, Q) for p, inverts clones of them and returns σ with its
// matrix. Errors wrap shape.ErrInvalidShape, random.ErrEntropyUnavailable,
// tableau.ErrSamplingExhausted or rsk sentinels.
func (e *Engine) Run(ctx context.Context, p shape.Partition) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}

	id := uuid.New()
	log := e.cfg.logger.With(zap.String("run_id", id.String()))
	opts := e.samplerOptions()
	opts = append(opts, tableau.WithLogger(log))

	var (
		P, Q *tableau.Tableau
		err  error
	)
	if e.cfg.pSrc != nil {
		P, Q, err = tableau.SamplePairParallel(ctx, p, e.cfg.pSrc, e.cfg.qSrc, opts...)
	} else {
		P, Q, err = tableau.SamplePair(p, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}

	invert := rsk.Inverse
	if e.cfg.mode == ModeBumping {
		invert = rsk.InverseBumping
	}
	sigma, err := invert(P.Clone(), Q.Clone())
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	if err = sigma.Validate(); err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}
	m, err := sigma.Matrix()
	if err != nil {
		return nil, fmt.Errorf("engine: Run: %w", err)
	}

	log.Debug("permutation sampled",
		zap.Stringer("shape", p),
		zap.Int("n", sigma.Len()),
		zap.Stringer("mode", e.cfg.mode),
		zap.Bool("parallel", e.cfg.pSrc != nil),
	)

	return &Result{
		ID:          id,
		Shape:       p.Clone(),
		Mode:        e.cfg.mode,
		P:           P,
		Q:           Q,
		Permutation: sigma,
		Matrix:      m,
	}, nil
}
