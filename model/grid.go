// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// grid.go — two-axis raster over a BoundingBox.
//
// Canonical model:
//   • The fast axis is the inner loop, the slow axis the outer loop.
//   • Each axis is resolved independently from its points or its step
//     (see sampling.go), over the matching box extent.
//   • Alternating snakes the fast axis on every odd row.
//
// Complexity: validation is O(1); the grid is never materialized here.

package model

// Grid is a raster over a bounding box.
type Grid struct {
	FastAxis string
	SlowAxis string
	Box      BoundingBox

	FastPoints int
	SlowPoints int
	FastStep   float64
	SlowStep   float64

	Common
}

// NewGrid returns a Grid with fastPoints×slowPoints positions. A count of 0
// leaves that axis without a sampling and fails with ErrMissingParameter.
func NewGrid(fastAxis, slowAxis string, box BoundingBox, fastPoints, slowPoints int, opts ...Option) (Grid, error) {
	g := Grid{
		FastAxis:   fastAxis,
		SlowAxis:   slowAxis,
		Box:        box,
		FastPoints: fastPoints,
		SlowPoints: slowPoints,
		Common:     newCommon(opts),
	}
	return g, g.Validate()
}

// NewGridSteps returns a Grid spaced by fastStep and slowStep.
func NewGridSteps(fastAxis, slowAxis string, box BoundingBox, fastStep, slowStep float64, opts ...Option) (Grid, error) {
	g := Grid{
		FastAxis: fastAxis,
		SlowAxis: slowAxis,
		Box:      box,
		FastStep: fastStep,
		SlowStep: slowStep,
		Common:   newCommon(opts),
	}
	return g, g.Validate()
}

func (Grid) Kind() Kind        { return KindGrid }
func (g Grid) Axes() []string  { return []string{g.FastAxis, g.SlowAxis} }
func (g Grid) Options() Common { return g.Common }
func (Grid) sealed()           {}

// Samplings resolves the fast and slow axes.
func (g Grid) Samplings() (fast, slow Sampling, err error) {
	fast, err = sample(methodGrid, "FastPoints", "FastStep", g.Box.FastStart, g.Box.FastLength, g.FastPoints, g.FastStep, g.BoundsToFit)
	if err != nil {
		return Sampling{}, Sampling{}, err
	}
	slow, err = sample(methodGrid, "SlowPoints", "SlowStep", g.Box.SlowStart, g.Box.SlowLength, g.SlowPoints, g.SlowStep, g.BoundsToFit)
	if err != nil {
		return Sampling{}, Sampling{}, err
	}
	return fast, slow, nil
}

// Validate implements Model.
func (g Grid) Validate() error {
	if err := validateAxisNames(methodGrid, g.FastAxis, g.SlowAxis); err != nil {
		return err
	}
	if err := g.Box.validate(methodGrid); err != nil {
		return err
	}
	fast, slow, err := g.Samplings()
	if err != nil {
		return err
	}
	if fast.Count > MaxAxisPoints/max(slow.Count, 1) {
		return modelErrorf(methodGrid, ErrInvalidParameter, "%d×%d points exceeds %d", fast.Count, slow.Count, MaxAxisPoints)
	}
	return validateCommon(methodGrid, g.Common, g.Axes())
}

// GridOffset returns a RandomOffset moving both axes by up to percent% of
// the fast-axis spacing, the jitter used to break raster aliasing.
func GridOffset(g Grid, seed int64, percent float64) (RandomOffset, error) {
	if !isFinite(percent) || percent < 0 {
		return RandomOffset{}, modelErrorf(methodGrid, ErrInvalidParameter, "offset percent=%v", percent)
	}
	fast, _, err := g.Samplings()
	if err != nil {
		return RandomOffset{}, err
	}
	step := fast.Step
	if step < 0 {
		step = -step
	}
	m := step * percent / 100
	return NewRandomOffset(seed, g.Axes(), map[string]float64{g.FastAxis: m, g.SlowAxis: m}), nil
}
