package generator

import (
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/point"
)

// Array echoes the positions of a model.Array verbatim.
type Array struct {
	base
	Model model.Array
}

// NewArray validates m and returns its generator.
func NewArray(m model.Array) (*Array, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	positions := append([]float64(nil), m.Positions...)
	b, err := newBase(model.KindArray, m, len(positions), func(i int) point.Point {
		return point.New1D(i, m.Axis, positions[i])
	})
	if err != nil {
		return nil, err
	}
	return &Array{base: b, Model: m}, nil
}

// SinglePoint yields one fixed point.
type SinglePoint struct {
	base
	Model model.SinglePoint
}

// NewSinglePoint validates m and returns its generator.
func NewSinglePoint(m model.SinglePoint) (*SinglePoint, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	b, err := newBase(model.KindSinglePoint, m, 1, func(i int) point.Point {
		return point.New2D(i, m.XAxis, m.X, m.YAxis, m.Y)
	})
	if err != nil {
		return nil, err
	}
	return &SinglePoint{base: b, Model: m}, nil
}
