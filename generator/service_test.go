package generator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/region"
)

func TestService_CreateGenerator(t *testing.T) {
	t.Parallel()

	s := generator.NewService()
	assert.Same(t, generator.Default(), s.Registry())

	g, err := s.CreateGenerator(must(model.NewSpiral("x", "y", goldenBox, 1)))
	require.NoError(t, err)
	assert.Equal(t, 20, g.Size())

	g, err = s.CreateGenerator(must(model.NewLissajous("x", "y", goldenBox)))
	require.NoError(t, err)
	assert.Equal(t, 503, g.Size())

	_, err = s.CreateGenerator(model.Line{Axis: "x"})
	assert.ErrorIs(t, err, model.ErrMissingParameter)
}

func TestService_UnregisteredKind(t *testing.T) {
	t.Parallel()

	r := generator.NewRegistry()
	require.NoError(t, r.Register(model.KindLine, func(m model.Model) (generator.Generator, error) {
		return generator.NewLine(m.(model.Line))
	}))
	s := generator.NewService(generator.WithRegistry(r))

	_, err := s.CreateGenerator(must(model.NewGrid("x", "y", goldenBox, 2, 2)))
	assert.ErrorIs(t, err, generator.ErrNoGenerator)
	assert.Contains(t, err.Error(), "no generator available for type grid")

	_, err = s.CreateCompound([]generator.Entry{
		{Model: must(model.NewLine("z", 0, 1, 2))},
		{Model: must(model.NewGrid("x", "y", goldenBox, 2, 2))},
	}, nil, nil)
	assert.ErrorIs(t, err, generator.ErrNoGenerator)
	assert.Contains(t, err.Error(), "entry #1")

	assert.Panics(t, func() { generator.WithRegistry(nil) })
}

func TestService_CreateCompound(t *testing.T) {
	t.Parallel()

	s := generator.NewService(generator.WithCompoundOptions(generator.WithMaxSize(1000)))
	disc := must(region.NewScanRegion(must(region.Circle(-8.5, 7, 1.5)), "x", "y"))
	offset := must(mutator.NewRandomOffset(3, []string{"x"}, map[string]float64{"x": 0.01}))

	c, err := s.CreateCompound([]generator.Entry{
		{Model: must(model.NewLine("z", 0, 1, 3))},
		{Model: must(model.NewGrid("x", "y", goldenBox, 10, 10)), Mutators: []mutator.Mutator{offset}},
	}, []region.ScanRegion{disc}, nil)
	require.NoError(t, err)
	require.Equal(t, 2, c.Rank())
	shape := c.Shape()
	assert.Equal(t, 3, shape[0])
	assert.Less(t, shape[1], 100)
	assert.Equal(t, 3*shape[1], c.Size())
	for _, p := range must(c.Points()) {
		require.True(t, disc.Keeps(p), "point %v escaped the region", p)
	}

	// the per-call cap overrides the service default
	_, err = s.CreateCompound([]generator.Entry{
		{Model: must(model.NewLine("z", 0, 1, 3))},
		{Model: must(model.NewGrid("x", "y", goldenBox, 10, 10))},
	}, nil, nil, generator.WithMaxSize(10))
	assert.ErrorIs(t, err, generator.ErrTooLarge)

	_, err = s.CreateCompound(nil, nil, nil)
	assert.ErrorIs(t, err, generator.ErrNoLevels)

	_, err = s.CreateCompound([]generator.Entry{{Model: must(model.NewLine("x", 0, 1, 3))}}, []region.ScanRegion{disc}, nil)
	assert.ErrorIs(t, err, generator.ErrUnknownAxis)
}
