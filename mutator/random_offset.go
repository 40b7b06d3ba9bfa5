// SPDX-License-Identifier: MIT
// Package: scanpath/mutator
//
// random_offset.go — seeded, bounded per-axis jitter.
//
// Determinism:
//   • Each RandomOffset owns its stream; nothing is shared between instances
//     and no process-wide source is consulted.
//   • The stream is counter based (rng.go): draw n is a SplitMix64 mix of
//     (seed, n), with seed 0 mapped to a fixed default. Point i, axis k uses
//     draw i·len(axes)+k, so random access and sequential iteration produce
//     bit-identical offsets.
//
// Bounds: the offset on axis a lies in [-MaxOffsets[a], +MaxOffsets[a]).

package mutator

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/point"
)

const methodRandomOffset = "RandomOffset"

// RandomOffset perturbs each listed axis by a uniform draw bounded by the
// axis' maximum offset.
type RandomOffset struct {
	seed int64
	axes []string
	max  []float64
}

// NewRandomOffset returns a RandomOffset over axes with the given bounds.
// Every axis needs a finite, non-negative bound.
func NewRandomOffset(seed int64, axes []string, maxOffsets map[string]float64) (*RandomOffset, error) {
	if len(axes) == 0 {
		return nil, fmt.Errorf("%s: no axes: %w", methodRandomOffset, ErrInvalidConfig)
	}
	if dups := lo.FindDuplicates(axes); len(dups) > 0 {
		return nil, fmt.Errorf("%s: axis %q listed twice: %w", methodRandomOffset, dups[0], ErrInvalidConfig)
	}
	r := &RandomOffset{
		seed: seed,
		axes: append([]string(nil), axes...),
		max:  make([]float64, len(axes)),
	}
	for k, a := range axes {
		m, ok := maxOffsets[a]
		if !ok || math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return nil, fmt.Errorf("%s: MaxOffsets[%q]=%v (present=%t): %w", methodRandomOffset, a, m, ok, ErrInvalidConfig)
		}
		r.max[k] = m
	}
	return r, nil
}

// FromConfig builds the mutator described by a model-level offset config.
func FromConfig(c model.RandomOffset) (*RandomOffset, error) {
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomOffset, err)
	}
	return NewRandomOffset(c.Seed, c.Axes, c.MaxOffsets)
}

// Name implements Mutator.
func (r *RandomOffset) Name() string { return "random-offset" }

// Axes implements Mutator.
func (r *RandomOffset) Axes() []string { return append([]string(nil), r.axes...) }

// Seed returns the stream seed.
func (r *RandomOffset) Seed() int64 { return r.seed }

// MaxOffset returns the bound for axis, or 0 if the axis is not perturbed.
func (r *RandomOffset) MaxOffset(axis string) float64 {
	if k := lo.IndexOf(r.axes, axis); k >= 0 {
		return r.max[k]
	}
	return 0
}

// Mutate adds the offsets of draw index to p. Axes p does not carry are
// skipped; the compound generator rejects such configurations up front.
func (r *RandomOffset) Mutate(p point.Point, index int) point.Point {
	base := uint64(index) * uint64(len(r.axes))
	for k, a := range r.axes {
		v, ok := p.Get(a)
		if !ok {
			continue
		}
		u := drawUnit(r.seed, base+uint64(k))
		p = p.With(a, v+(2*u-1)*r.max[k])
	}
	return p
}
