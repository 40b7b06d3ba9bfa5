// Package mutator_test checks the determinism and bounds contracts of the
// seeded random offset, and the metadata-only behaviour of the ordering and
// motion-hint mutators.
package mutator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/point"
)

func base(i int) point.Point {
	return point.New(i, []string{"x", "y", "z"}, []float64{float64(i), -float64(i), 10})
}

func TestRandomOffset_SeededReproducibility(t *testing.T) {
	t.Parallel()

	bounds := map[string]float64{"x": 0.5, "y": 2}
	a, err := mutator.NewRandomOffset(42, []string{"x", "y"}, bounds)
	require.NoError(t, err)
	b, err := mutator.NewRandomOffset(42, []string{"x", "y"}, bounds)
	require.NoError(t, err)
	c, err := mutator.NewRandomOffset(43, []string{"x", "y"}, bounds)
	require.NoError(t, err)

	differs := false
	for i := 0; i < 200; i++ {
		pa, pb, pc := a.Mutate(base(i), i), b.Mutate(base(i), i), c.Mutate(base(i), i)
		require.True(t, pa.Equal(pb), "index %d", i)
		differs = differs || !pa.Equal(pc)
	}
	assert.True(t, differs, "different seeds must give different streams")
}

func TestRandomOffset_RandomAccessMatchesSequential(t *testing.T) {
	t.Parallel()

	r, err := mutator.NewRandomOffset(7, []string{"x"}, map[string]float64{"x": 1})
	require.NoError(t, err)

	seq := make([]point.Point, 50)
	for i := range seq {
		seq[i] = r.Mutate(base(i), i)
	}
	for _, i := range []int{49, 3, 17, 0, 3} {
		assert.True(t, seq[i].Equal(r.Mutate(base(i), i)), "index %d", i)
	}
}

func TestRandomOffset_Bounds(t *testing.T) {
	t.Parallel()

	const n = 2000
	r, err := mutator.NewRandomOffset(-9, []string{"x", "y"}, map[string]float64{"x": 0.25, "y": 3})
	require.NoError(t, err)

	dx := make([]float64, n)
	dy := make([]float64, n)
	for i := 0; i < n; i++ {
		p := r.Mutate(base(i), i)
		x, _ := p.Get("x")
		y, _ := p.Get("y")
		z, _ := p.Get("z")
		dx[i] = x - float64(i)
		dy[i] = y + float64(i)
		require.Equal(t, 10.0, z, "unlisted axes are untouched")
	}
	assert.GreaterOrEqual(t, floats.Min(dx), -0.25)
	assert.LessOrEqual(t, floats.Max(dx), 0.25)
	assert.GreaterOrEqual(t, floats.Min(dy), -3.0)
	assert.LessOrEqual(t, floats.Max(dy), 3.0)

	// uniform draws should cover most of the interval
	assert.Greater(t, floats.Max(dy), 2.5)
	assert.Less(t, floats.Min(dy), -2.5)
}

func TestRandomOffset_ZeroBoundIsIdentity(t *testing.T) {
	t.Parallel()

	r, err := mutator.NewRandomOffset(1, []string{"x"}, map[string]float64{"x": 0})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		assert.True(t, base(i).Equal(r.Mutate(base(i), i)))
	}
}

func TestRandomOffset_Config(t *testing.T) {
	t.Parallel()

	r, err := mutator.FromConfig(model.NewRandomOffset(5, []string{"y"}, map[string]float64{"y": 0.1}))
	require.NoError(t, err)
	assert.Equal(t, int64(5), r.Seed())
	assert.Equal(t, []string{"y"}, r.Axes())
	assert.Equal(t, 0.1, r.MaxOffset("y"))
	assert.Zero(t, r.MaxOffset("x"))

	_, err = mutator.FromConfig(model.NewRandomOffset(5, []string{"y"}, nil))
	assert.ErrorIs(t, err, model.ErrMissingParameter)

	_, err = mutator.NewRandomOffset(5, nil, nil)
	assert.ErrorIs(t, err, mutator.ErrInvalidConfig)
	_, err = mutator.NewRandomOffset(5, []string{"x", "x"}, map[string]float64{"x": 1})
	assert.ErrorIs(t, err, mutator.ErrInvalidConfig)
	_, err = mutator.NewRandomOffset(5, []string{"x"}, map[string]float64{"x": -1})
	assert.ErrorIs(t, err, mutator.ErrInvalidConfig)
}

func TestCheckAxes(t *testing.T) {
	t.Parallel()

	r, err := mutator.NewRandomOffset(1, []string{"x", "q"}, map[string]float64{"x": 1, "q": 1})
	require.NoError(t, err)
	err = mutator.CheckAxes(r, []string{"x", "y"})
	assert.ErrorIs(t, err, mutator.ErrUnknownAxis)
	assert.Contains(t, err.Error(), `"q"`)

	assert.NoError(t, mutator.CheckAxes(mutator.NewContinuous(), []string{"x"}))
	assert.NoError(t, mutator.CheckAxes(mutator.NewAlternating("y"), []string{"x", "y"}))
}

func TestContinuousAndAlternating(t *testing.T) {
	t.Parallel()

	p := base(3)
	c := mutator.NewContinuous().Mutate(p, 3)
	assert.True(t, c.Continuous())
	assert.False(t, p.Continuous())
	assert.True(t, c.Equal(p))

	alt := mutator.NewAlternating("x")
	var m mutator.Mutator = alt
	rev, ok := m.(mutator.Reverser)
	require.True(t, ok)
	assert.True(t, rev.Reverses())
	assert.True(t, alt.Mutate(p, 3).Equal(p))
	assert.Equal(t, []string{"x"}, alt.Axes())
}

func TestApply_InOrder(t *testing.T) {
	t.Parallel()

	r, err := mutator.NewRandomOffset(3, []string{"x"}, map[string]float64{"x": 1})
	require.NoError(t, err)
	got := mutator.Apply([]mutator.Mutator{r, mutator.NewContinuous()}, base(2), 2)
	want := r.Mutate(base(2), 2)
	assert.True(t, got.Equal(want))
	assert.True(t, got.Continuous())

	assert.True(t, mutator.Apply(nil, base(2), 2).Equal(base(2)))
}
