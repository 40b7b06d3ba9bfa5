package point_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/point"
)

func TestPoint_Accessors(t *testing.T) {
	p := point.New2D(4, "x", 1.5, "y", -2)

	assert.Equal(t, 4, p.Index())
	assert.Equal(t, 2, p.Len())
	assert.Equal(t, []string{"x", "y"}, p.Names())
	assert.Equal(t, []float64{1.5, -2}, p.Values())

	v, ok := p.Get("y")
	require.True(t, ok)
	assert.Equal(t, -2.0, v)

	_, ok = p.Get("z")
	assert.False(t, ok)
	assert.Equal(t, map[string]float64{"x": 1.5, "y": -2}, p.Map())
	assert.Equal(t, "#4(x=1.5, y=-2)", p.String())
}

func TestPoint_Immutable(t *testing.T) {
	names := []string{"a", "b"}
	values := []float64{1, 2}
	p := point.New(0, names, values)

	// mutate the inputs and the returned copies; p must not change
	names[0] = "zz"
	values[0] = 99
	p.Names()[1] = "q"
	p.Values()[1] = 42

	assert.Equal(t, []string{"a", "b"}, p.Names())
	assert.Equal(t, []float64{1, 2}, p.Values())

	q := p.With("a", 7).WithIndex(3).WithContinuous(true)
	assert.Equal(t, 1.0, p.Value(0))
	assert.Equal(t, 0, p.Index())
	assert.False(t, p.Continuous())
	assert.Equal(t, 7.0, q.Value(0))
	assert.Equal(t, 3, q.Index())
	assert.True(t, q.Continuous())
}

func TestPoint_WithAppendsUnknownAxis(t *testing.T) {
	p := point.New1D(0, "x", 1).With("y", 2)
	assert.Equal(t, []string{"x", "y"}, p.Names())
	assert.True(t, p.Has("y"))
}

func TestPoint_MergeOrderAndHint(t *testing.T) {
	outer := point.New1D(2, "T", 290)
	inner := point.New2D(5, "x", 0, "y", 1).WithContinuous(true)

	m := point.Merge(outer, inner)
	assert.Equal(t, []string{"T", "x", "y"}, m.Names())
	assert.Equal(t, []float64{290, 0, 1}, m.Values())
	assert.Equal(t, 0, m.Index())
	assert.True(t, m.Continuous())
}

func TestPoint_Equal(t *testing.T) {
	a := point.New2D(0, "x", 0.1, "y", 0.2)
	b := point.New2D(9, "x", 0.1, "y", 0.2).WithContinuous(true)
	c := point.New2D(0, "y", 0.2, "x", 0.1)
	d := point.New2D(0, "x", 0.1, "y", 0.2000000001)

	assert.True(t, a.Equal(b), "index and hint are ignored")
	assert.False(t, a.Equal(c), "axis order matters")
	assert.False(t, a.Equal(d), "exact float equality")
	assert.False(t, a.Equal(point.New1D(0, "x", 0.1)))
}

func TestPoint_NewPanicsOnLengthMismatch(t *testing.T) {
	assert.Panics(t, func() { point.New(0, []string{"x"}, nil) })
}
