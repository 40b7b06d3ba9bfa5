// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// curves.go — Fermat spiral and Lissajous generators.
//
// Spiral (Fermat, constant area per point):
//   t_i = √(4π·i),  r_i = t_i·scale/(2π)
//   x_i = cx + r_i·sin t_i,  y_i = cy + r_i·cos t_i
// so r_i = scale·√(i/π): the disc of radius r holds π r²/scale² points,
// and neighbouring arcs are scale apart.
//
// Lissajous:
//   θ_i = i·ThetaStep
//   x_i = cx + (w/2)·sin(A·θ_i + Δ),  y_i = cy + (h/2)·cos(B·θ_i)
//
// (cx, cy) is the box centre, (w, h) its signed fast/slow lengths.

package generator

import (
	"math"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/point"
)

// spiralAlpha scales √i into the spiral parameter t.
var spiralAlpha = math.Sqrt(4 * math.Pi)

// Spiral generates a model.Spiral.
type Spiral struct {
	base
	Model model.Spiral
}

// NewSpiral validates m and returns its generator.
func NewSpiral(m model.Spiral) (*Spiral, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	n, _ := m.PointCount()
	cx, cy := m.Box.FastCentre(), m.Box.SlowCentre()
	beta := m.Scale / (2 * math.Pi)

	raw := func(i int) point.Point {
		t := spiralAlpha * math.Sqrt(float64(i))
		r := beta * t
		return point.New2D(i, m.FastAxis, cx+r*math.Sin(t), m.SlowAxis, cy+r*math.Cos(t))
	}
	b, err := newBase(model.KindSpiral, m, n, raw)
	if err != nil {
		return nil, err
	}
	return &Spiral{base: b, Model: m}, nil
}

// Lissajous generates a model.Lissajous.
type Lissajous struct {
	base
	Model model.Lissajous
}

// NewLissajous validates m and returns its generator.
func NewLissajous(m model.Lissajous) (*Lissajous, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	n, _ := m.PointCount()
	cx, cy := m.Box.FastCentre(), m.Box.SlowCentre()
	hw, hh := m.Box.FastLength/2, m.Box.SlowLength/2

	raw := func(i int) point.Point {
		theta := float64(i) * m.ThetaStep
		x := cx + hw*math.Sin(m.A*theta+m.Delta)
		y := cy + hh*math.Cos(m.B*theta)
		return point.New2D(i, m.FastAxis, x, m.SlowAxis, y)
	}
	b, err := newBase(model.KindLissajous, m, n, raw)
	if err != nil {
		return nil, err
	}
	return &Lissajous{base: b, Model: m}, nil
}
