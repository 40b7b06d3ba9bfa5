// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// curves.go — spiral and Lissajous paths fitted into a BoundingBox.
//
// Both curves are centred on the box centre. Their point counts are closed
// forms of the parameters, so the size of a scan is known without
// evaluating a single position.

package model

import "math"

// Spiral is a Fermat spiral whose successive arcs are Scale apart. It keeps
// emitting points until the radius reaches the circle circumscribing Box.
type Spiral struct {
	FastAxis string
	SlowAxis string
	Box      BoundingBox
	Scale    float64

	Common
}

// NewSpiral returns a Spiral. A scale of 0 selects DefaultSpiralScale.
func NewSpiral(fastAxis, slowAxis string, box BoundingBox, scale float64, opts ...Option) (Spiral, error) {
	if scale == 0 {
		scale = DefaultSpiralScale
	}
	s := Spiral{FastAxis: fastAxis, SlowAxis: slowAxis, Box: box, Scale: scale, Common: newCommon(opts)}
	return s, s.Validate()
}

func (Spiral) Kind() Kind        { return KindSpiral }
func (s Spiral) Axes() []string  { return []string{s.FastAxis, s.SlowAxis} }
func (s Spiral) Options() Common { return s.Common }
func (Spiral) sealed()           {}

// PointCount returns ⌊π·r²/scale²⌋+1 where r is the half-diagonal of Box.
// Point i sits at radius scale·√(i/π), so that many points fit inside r.
func (s Spiral) PointCount() (int, error) {
	if !isFinite(s.Scale) || s.Scale <= 0 {
		return 0, modelErrorf(methodSpiral, ErrInvalidParameter, "Scale=%v (must be > 0)", s.Scale)
	}
	r := s.Box.HalfDiagonal()
	n := math.Floor(math.Pi*r*r/(s.Scale*s.Scale) + StepTolerance)
	if n+1 > MaxAxisPoints {
		return 0, modelErrorf(methodSpiral, ErrInvalidParameter, "Scale=%v over radius %v gives more than %d points", s.Scale, r, MaxAxisPoints)
	}
	return int(n) + 1, nil
}

// Validate implements Model.
func (s Spiral) Validate() error {
	if err := validateAxisNames(methodSpiral, s.FastAxis, s.SlowAxis); err != nil {
		return err
	}
	if err := s.Box.validate(methodSpiral); err != nil {
		return err
	}
	if _, err := s.PointCount(); err != nil {
		return err
	}
	return validateCommon(methodSpiral, s.Common, s.Axes())
}

// Lissajous is the curve x = cx + (w/2)·sin(A·θ + Delta), y = cy + (h/2)·cos(B·θ)
// sampled at θ = i·ThetaStep.
type Lissajous struct {
	FastAxis  string
	SlowAxis  string
	Box       BoundingBox
	A         float64 // fast-axis lobe frequency
	B         float64 // slow-axis lobe frequency
	Delta     float64 // fast-axis phase, radians
	ThetaStep float64 // parameter increment between samples
	Points    int     // sample count; 0 samples exactly one closed period

	Common
}

// NewLissajous returns a Lissajous curve with the default lobes, phase,
// θ increment and period-derived point count.
func NewLissajous(fastAxis, slowAxis string, box BoundingBox, opts ...Option) (Lissajous, error) {
	l := Lissajous{
		FastAxis:  fastAxis,
		SlowAxis:  slowAxis,
		Box:       box,
		A:         DefaultLissajousA,
		B:         DefaultLissajousB,
		Delta:     DefaultLissajousDelta,
		ThetaStep: DefaultLissajousThetaStep,
		Common:    newCommon(opts),
	}
	return l, l.Validate()
}

func (Lissajous) Kind() Kind        { return KindLissajous }
func (l Lissajous) Axes() []string  { return []string{l.FastAxis, l.SlowAxis} }
func (l Lissajous) Options() Common { return l.Common }
func (Lissajous) sealed()           {}

// Period returns the θ interval after which the curve closes, 2π/gcd(|A|,|B|).
// It returns 0 when the frequency ratio does not close.
func (l Lissajous) Period() float64 {
	g := gcdFloat(l.A, l.B)
	if g == 0 {
		return 0
	}
	return 2 * math.Pi / g
}

// PointCount returns Points, or the number of θ samples in one closed
// period (both ends included) when Points is 0.
func (l Lissajous) PointCount() (int, error) {
	if l.Points != 0 {
		if err := validateCount(methodLissajous, "Points", l.Points); err != nil {
			return 0, err
		}
		return l.Points, nil
	}
	p := l.Period()
	if p == 0 {
		return 0, modelErrorf(methodLissajous, ErrMissingParameter, "A=%v, B=%v never close; set Points", l.A, l.B)
	}
	n := math.Floor(p/l.ThetaStep + StepTolerance)
	if n+1 > maxLissajousPeriodPoints {
		return 0, modelErrorf(methodLissajous, ErrMissingParameter,
			"one period of A=%v, B=%v needs more than %d points; set Points", l.A, l.B, maxLissajousPeriodPoints)
	}
	return int(n) + 1, nil
}

// Validate implements Model.
func (l Lissajous) Validate() error {
	if err := validateAxisNames(methodLissajous, l.FastAxis, l.SlowAxis); err != nil {
		return err
	}
	if err := l.Box.validate(methodLissajous); err != nil {
		return err
	}
	for _, f := range []struct {
		name string
		v    float64
	}{{"A", l.A}, {"B", l.B}, {"Delta", l.Delta}, {"ThetaStep", l.ThetaStep}} {
		if err := validateFinite(methodLissajous, f.name, f.v); err != nil {
			return err
		}
	}
	if l.A == 0 || l.B == 0 {
		return modelErrorf(methodLissajous, ErrInvalidParameter, "A=%v, B=%v (must be non-zero)", l.A, l.B)
	}
	if l.ThetaStep <= 0 {
		return modelErrorf(methodLissajous, ErrInvalidParameter, "ThetaStep=%v (must be > 0)", l.ThetaStep)
	}
	if _, err := l.PointCount(); err != nil {
		return err
	}
	return validateCommon(methodLissajous, l.Common, l.Axes())
}
