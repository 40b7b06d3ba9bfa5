// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// line.go — one-axis lines, multi-segment lines and diagonal two-axis lines.
//
// Contract:
//   • Exactly one of Points/Step is authoritative; if both are given they
//     must describe the same spacing (ErrContradictoryParameters otherwise).
//   • Neither given ⇒ ErrMissingParameter at construction, never later.
//   • Positions are resolved by Sampling(); see sampling.go for the policy.

package model

import "math"

// Line samples a single axis from Start towards Stop.
type Line struct {
	Axis   string
	Start  float64
	Stop   float64
	Points int     // number of positions, or 0 when Step is authoritative
	Step   float64 // signed spacing, or 0 when Points is authoritative

	Common
}

// NewLine returns a Line with points evenly spaced positions, both ends included.
func NewLine(axis string, start, stop float64, points int, opts ...Option) (Line, error) {
	l := Line{Axis: axis, Start: start, Stop: stop, Points: points, Common: newCommon(opts)}
	return l, l.Validate()
}

// NewLineSteps returns a Line spaced by step from start to stop.
func NewLineSteps(axis string, start, stop, step float64, opts ...Option) (Line, error) {
	l := Line{Axis: axis, Start: start, Stop: stop, Step: step, Common: newCommon(opts)}
	return l, l.Validate()
}

func (Line) Kind() Kind        { return KindLine }
func (l Line) Axes() []string  { return []string{l.Axis} }
func (l Line) Options() Common { return l.Common }
func (Line) sealed()           {}

// Length returns the signed distance from Start to Stop.
func (l Line) Length() float64 { return l.Stop - l.Start }

// Sampling resolves the line's positions.
func (l Line) Sampling() (Sampling, error) {
	return sample(methodLine, "Points", "Step", l.Start, l.Length(), l.Points, l.Step, l.BoundsToFit)
}

// Validate implements Model.
func (l Line) Validate() error {
	if err := validateAxisNames(methodLine, l.Axis); err != nil {
		return err
	}
	if err := validateFinite(methodLine, "Start", l.Start); err != nil {
		return err
	}
	if err := validateFinite(methodLine, "Stop", l.Stop); err != nil {
		return err
	}
	if _, err := l.Sampling(); err != nil {
		return err
	}
	return validateCommon(methodLine, l.Common, l.Axes())
}

// MultiLine concatenates several line segments on one axis, in order.
// Segment axes may be left empty; they inherit Axis.
type MultiLine struct {
	Axis     string
	Segments []Line

	Common
}

// NewMultiLine returns a MultiLine over the given segments.
func NewMultiLine(axis string, segments []Line, opts ...Option) (MultiLine, error) {
	m := MultiLine{Axis: axis, Segments: append([]Line(nil), segments...), Common: newCommon(opts)}
	return m, m.Validate()
}

func (MultiLine) Kind() Kind        { return KindMultiLine }
func (m MultiLine) Axes() []string  { return []string{m.Axis} }
func (m MultiLine) Options() Common { return m.Common }
func (MultiLine) sealed()           {}

// Samplings resolves every segment in order.
func (m MultiLine) Samplings() ([]Sampling, error) {
	out := make([]Sampling, 0, len(m.Segments))
	for i, seg := range m.Segments {
		if seg.Axis != "" && seg.Axis != m.Axis {
			return nil, modelErrorf(methodMultiLine, ErrContradictoryParameters,
				"segment #%d axis %q differs from %q", i, seg.Axis, m.Axis)
		}
		seg.Axis = m.Axis
		if err := seg.Validate(); err != nil {
			return nil, modelErrorf(methodMultiLine, err, "segment #%d", i)
		}
		s, _ := seg.Sampling()
		out = append(out, s)
	}
	return out, nil
}

// Validate implements Model.
func (m MultiLine) Validate() error {
	if err := validateAxisNames(methodMultiLine, m.Axis); err != nil {
		return err
	}
	if len(m.Segments) == 0 {
		return modelErrorf(methodMultiLine, ErrMissingParameter, "Segments is empty")
	}
	ss, err := m.Samplings()
	if err != nil {
		return err
	}
	total := 0
	for _, s := range ss {
		total += s.Count
	}
	if err := validateCount(methodMultiLine, "total points", total); err != nil {
		return err
	}
	return validateCommon(methodMultiLine, m.Common, m.Axes())
}

// DiagonalLine samples a straight segment across two axes.
type DiagonalLine struct {
	XAxis  string
	YAxis  string
	Line   BoundingLine
	Points int
	Step   float64

	Common
}

// NewDiagonalLine returns a DiagonalLine with points positions along line.
func NewDiagonalLine(xAxis, yAxis string, line BoundingLine, points int, opts ...Option) (DiagonalLine, error) {
	d := DiagonalLine{XAxis: xAxis, YAxis: yAxis, Line: line, Points: points, Common: newCommon(opts)}
	return d, d.Validate()
}

// NewDiagonalLineSteps returns a DiagonalLine spaced by step along line.
func NewDiagonalLineSteps(xAxis, yAxis string, line BoundingLine, step float64, opts ...Option) (DiagonalLine, error) {
	d := DiagonalLine{XAxis: xAxis, YAxis: yAxis, Line: line, Step: step, Common: newCommon(opts)}
	return d, d.Validate()
}

func (DiagonalLine) Kind() Kind        { return KindDiagonalLine }
func (d DiagonalLine) Axes() []string  { return []string{d.XAxis, d.YAxis} }
func (d DiagonalLine) Options() Common { return d.Common }
func (DiagonalLine) sealed()           {}

// Sampling resolves distances along the line, measured from its start.
func (d DiagonalLine) Sampling() (Sampling, error) {
	return sample(methodDiagonalLine, "Points", "Step", 0, d.Line.Length, d.Points, d.Step, d.BoundsToFit)
}

// Direction returns the unit vector of the line.
func (d DiagonalLine) Direction() (dx, dy float64) {
	return math.Cos(d.Line.Angle), math.Sin(d.Line.Angle)
}

// Validate implements Model.
func (d DiagonalLine) Validate() error {
	if err := validateAxisNames(methodDiagonalLine, d.XAxis, d.YAxis); err != nil {
		return err
	}
	if err := d.Line.validate(methodDiagonalLine); err != nil {
		return err
	}
	if _, err := d.Sampling(); err != nil {
		return err
	}
	return validateCommon(methodDiagonalLine, d.Common, d.Axes())
}
