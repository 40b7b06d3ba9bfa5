package generator

import (
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/point"
)

// Grid generates a raster: the fast axis is the inner loop. With
// Alternating set, odd rows run backwards (snake order). Shape is
// [slow, fast].
type Grid struct {
	base
	Model model.Grid

	fast model.Sampling
	slow model.Sampling
}

// NewGrid validates m and returns its generator.
func NewGrid(m model.Grid) (*Grid, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}
	fast, slow, _ := m.Samplings()
	g := &Grid{Model: m, fast: fast, slow: slow}

	b, err := newBase(model.KindGrid, m, fast.Count*slow.Count, g.raw)
	if err != nil {
		return nil, err
	}
	b.shape = []int{slow.Count, fast.Count}
	g.base = b
	return g, nil
}

func (g *Grid) raw(i int) point.Point {
	n := g.fast.Count
	row, col := i/n, i%n
	if g.Model.Alternating && row%2 == 1 {
		col = n - 1 - col
	}
	return point.New2D(i, g.Model.FastAxis, g.fast.At(col), g.Model.SlowAxis, g.slow.At(row))
}
