// SPDX-License-Identifier: MIT
// Package: rskperm/tableau
//
// hookwalk.go — Greene–Nijenhuis–Wilf uniform SYT sampler.
//
// For k = n … 1:
//   1. Pick a uniformly random empty cell by rejection: row uniform over
//      [0,R−1], column uniform over the bounding box [0,C−1]; accept once the
//      draw lies inside the shape and is empty.
//   2. Walk: with right = empty cells right of (r,c) in row r and down = empty
//      cells below (r,c) in column c, stop if right+down == 0; otherwise draw
//      step ∈ [1, right+down] and jump to the step-th empty cell to the right,
//      or the (step−right)-th empty cell below.
//   3. Write k at the stopping cell, a corner of the unfilled region.
//
// Filled cells always hold larger labels than the current k and sit below or
// right of every empty cell they share a row/column with, so strict row and
// column increase holds after every placement.

package tableau

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/rskperm/random"
	"github.com/katalvlaran/rskperm/shape"
)

const methodSample = "Sample"

// walkStats counts sampler work for logging.
type walkStats struct {
	rejections int
	steps      int
}

// Sample draws one SYT of shape p uniformly at random.
// Complexity: see package doc.
func Sample(p shape.Partition, opts ...Option) (*Tableau, error) {
	cfg := newSamplerConfig(opts...)
	return sample(p, cfg)
}

func sample(p shape.Partition, cfg samplerConfig) (*Tableau, error) {
	t, err := New(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodSample, err)
	}

	var stats walkStats
	limit := cfg.attemptLimit(p.Rows(), p.Cols())
	for k := p.Size(); k >= 1; k-- {
		r, c, err := t.pickEmpty(p, cfg.src, limit, &stats)
		if err != nil {
			return nil, fmt.Errorf("%s: label %d: %w", methodSample, k, err)
		}
		if r, c, err = t.hookWalk(p, r, c, cfg.src, &stats); err != nil {
			return nil, fmt.Errorf("%s: label %d: %w", methodSample, k, err)
		}
		t.cells[r][c] = k
	}

	cfg.logger.Debug("sampled tableau",
		zap.Stringer("shape", p),
		zap.Int("cells", p.Size()),
		zap.Int("rejections", stats.rejections),
		zap.Int("walk_steps", stats.steps),
	)

	return t, nil
}

// pickEmpty draws a uniformly random empty cell by bounding-box rejection.
//
// The column is drawn over [0, Cols-1] for every row and cells past the end of
// the row are rejected. Drawing it over [0, p[r]-1] instead would weight short
// rows up: on [2,1] cell (1,0) would be picked with probability 1/2, not 1/3,
// and the sampled tableaux would no longer be uniform. Keep the bounding box.
func (t *Tableau) pickEmpty(p shape.Partition, src random.Source, limit int, stats *walkStats) (int, int, error) {
	for attempt := 0; attempt < limit; attempt++ {
		r, err := random.RandInt(src, 0, p.Rows()-1)
		if err != nil {
			return 0, 0, err
		}
		c, err := random.RandInt(src, 0, p.Cols()-1)
		if err != nil {
			return 0, 0, err
		}
		if c < p[r] && t.cells[r][c] == Empty {
			return r, c, nil
		}
		stats.rejections++
	}

	return 0, 0, fmt.Errorf("no empty cell after %d draws: %w", limit, ErrSamplingExhausted)
}

// hookWalk runs the walk from (r,c) until it reaches a corner.
// Each step moves strictly down or right, so it ends within R+C steps.
func (t *Tableau) hookWalk(p shape.Partition, r, c int, src random.Source, stats *walkStats) (int, int, error) {
	for {
		right := t.emptyRight(r, c)
		down := t.emptyBelow(p, r, c)
		total := right + down
		if total == 0 {
			return r, c, nil
		}

		step, err := random.RandInt(src, 1, total)
		if err != nil {
			return 0, 0, err
		}
		if step <= right {
			c = t.nthEmptyRight(r, c, step)
		} else {
			r = t.nthEmptyBelow(p, r, c, step-right)
		}
		stats.steps++
	}
}

// emptyRight counts empty cells in row r strictly right of column c.
func (t *Tableau) emptyRight(r, c int) int {
	n := 0
	for j := c + 1; j < len(t.cells[r]); j++ {
		if t.cells[r][j] == Empty {
			n++
		}
	}
	return n
}

// emptyBelow counts rows below r that reach column c and are empty there.
func (t *Tableau) emptyBelow(p shape.Partition, r, c int) int {
	n := 0
	for i := r + 1; i < len(p) && p[i] > c; i++ {
		if t.cells[i][c] == Empty {
			n++
		}
	}
	return n
}

// nthEmptyRight returns the column of the nth empty cell right of (r,c).
func (t *Tableau) nthEmptyRight(r, c, nth int) int {
	for j := c + 1; j < len(t.cells[r]); j++ {
		if t.cells[r][j] == Empty {
			if nth--; nth == 0 {
				return j
			}
		}
	}
	return c
}

// nthEmptyBelow returns the row of the nth empty cell below (r,c).
func (t *Tableau) nthEmptyBelow(p shape.Partition, r, c, nth int) int {
	for i := r + 1; i < len(p) && p[i] > c; i++ {
		if t.cells[i][c] == Empty {
			if nth--; nth == 0 {
				return i
			}
		}
	}
	return r
}
