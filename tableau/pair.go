// SPDX-License-Identifier: MIT
// Package: rskperm/tableau
//
// pair.go — drawing the (P, Q) pair of one shape.

package tableau

import (
	"context"
	"fmt"
	"reflect"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/rskperm/random"
	"github.com/katalvlaran/rskperm/shape"
)

const methodSamplePairParallel = "SamplePairParallel"

// SamplePair draws P then Q with Sample, sharing the configured Source.
// Each draw consumes fresh deviates, so P and Q are independent.
func SamplePair(p shape.Partition, opts ...Option) (P, Q *Tableau, err error) {
	cfg := newSamplerConfig(opts...)
	if P, err = sample(p, cfg); err != nil {
		return nil, nil, fmt.Errorf("SamplePair: P: %w", err)
	}
	if Q, err = sample(p, cfg); err != nil {
		return nil, nil, fmt.Errorf("SamplePair: Q: %w", err)
	}
	return P, Q, nil
}

// SamplePairParallel draws P from pSrc and Q from qSrc on two goroutines.
// The sources must be distinct; a WithSource option is overridden.
// ctx is checked before each draw starts; a running walk is not interrupted.
func SamplePairParallel(ctx context.Context, p shape.Partition, pSrc, qSrc random.Source, opts ...Option) (P, Q *Tableau, err error) {
	if pSrc == nil || qSrc == nil || sameSource(pSrc, qSrc) {
		return nil, nil, fmt.Errorf("%s: %w", methodSamplePairParallel, ErrSharedSource)
	}
	if err = p.Validate(); err != nil {
		return nil, nil, fmt.Errorf("%s: %w", methodSamplePairParallel, err)
	}

	base := newSamplerConfig(opts...)
	g, gctx := errgroup.WithContext(ctx)
	draw := func(dst **Tableau, src random.Source, name string) func() error {
		return func() error {
			if err := gctx.Err(); err != nil {
				return fmt.Errorf("%s: %s: %w", methodSamplePairParallel, name, err)
			}
			cfg := base
			cfg.src = src
			t, err := sample(p, cfg)
			if err != nil {
				return fmt.Errorf("%s: %s: %w", methodSamplePairParallel, name, err)
			}
			*dst = t
			return nil
		}
	}
	g.Go(draw(&P, pSrc, "P"))
	g.Go(draw(&Q, qSrc, "Q"))
	if err = g.Wait(); err != nil {
		return nil, nil, err
	}

	return P, Q, nil
}

// sameSource reports whether a and b are the same comparable Source value.
func sameSource(a, b random.Source) bool {
	if !reflect.TypeOf(a).Comparable() || reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	return a == b
}
