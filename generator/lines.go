// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// lines.go — generators for one-axis lines, multi-segment lines and
// diagonal two-axis lines.
//
// All three reduce to model.Sampling, so point i is Start + i·Step on the
// resolved sampling. Zero-length axes were collapsed to a single repeated
// value by the model; nothing here divides.

package generator

import (
	"sort"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/point"
)

// Line generates the positions of a model.Line.
type Line struct {
	base
	Model model.Line
}

// NewLine validates m and returns its generator.
func NewLine(m model.Line) (*Line, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s, _ := m.Sampling()
	g := &Line{Model: m}
	b, err := newBase(model.KindLine, m, s.Count, func(i int) point.Point {
		return point.New1D(i, m.Axis, s.At(i))
	})
	if err != nil {
		return nil, err
	}
	g.base = b
	return g, nil
}

// MultiLine generates the concatenated segments of a model.MultiLine.
type MultiLine struct {
	base
	Model model.MultiLine
}

// NewMultiLine validates m and returns its generator.
func NewMultiLine(m model.MultiLine) (*MultiLine, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	segs, _ := m.Samplings()

	// ends[k] is the index one past the last point of segment k
	ends := make([]int, len(segs))
	total := 0
	for k, s := range segs {
		total += s.Count
		ends[k] = total
	}

	raw := func(i int) point.Point {
		k := sort.Search(len(ends), func(k int) bool { return ends[k] > i })
		first := ends[k] - segs[k].Count
		return point.New1D(i, m.Axis, segs[k].At(i-first))
	}
	b, err := newBase(model.KindMultiLine, m, total, raw)
	if err != nil {
		return nil, err
	}
	return &MultiLine{base: b, Model: m}, nil
}

// DiagonalLine generates evenly spaced points along a model.DiagonalLine.
type DiagonalLine struct {
	base
	Model model.DiagonalLine
}

// NewDiagonalLine validates m and returns its generator.
func NewDiagonalLine(m model.DiagonalLine) (*DiagonalLine, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	s, _ := m.Sampling()
	dx, dy := m.Direction()
	x0, y0 := m.Line.XStart, m.Line.YStart

	raw := func(i int) point.Point {
		d := s.At(i)
		return point.New2D(i, m.XAxis, x0+d*dx, m.YAxis, y0+d*dy)
	}
	b, err := newBase(model.KindDiagonalLine, m, s.Count, raw)
	if err != nil {
		return nil, err
	}
	return &DiagonalLine{base: b, Model: m}, nil
}
