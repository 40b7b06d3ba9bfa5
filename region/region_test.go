package region_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/point"
	"github.com/katalvlaran/scanpath/region"
)

type probe struct {
	x, y float64
	in   bool
}

func checkProbes(t *testing.T, s region.Shape, probes []probe) {
	t.Helper()
	for _, p := range probes {
		assert.Equal(t, p.in, s.Contains(p.x, p.y), "(%v, %v)", p.x, p.y)
	}
}

func TestShapes(t *testing.T) {
	t.Parallel()

	circle, err := region.Circle(1, 1, 2)
	require.NoError(t, err)
	rect, err := region.Rectangle(0, 0, 2, 1, math.Pi/2)
	require.NoError(t, err)
	flipped, err := region.Rectangle(0, 0, -2, -1, 0)
	require.NoError(t, err)
	ellipse, err := region.Ellipse(0, 0, 2, 1, 0)
	require.NoError(t, err)
	tilted, err := region.Ellipse(0, 0, 2, 1, math.Pi/2)
	require.NoError(t, err)
	triangle, err := region.Polygon([]float64{0, 4, 0}, []float64{0, 0, 4})
	require.NoError(t, err)
	upperHalf, err := region.Func(func(_, y float64) bool { return y >= 0 })
	require.NoError(t, err)

	tests := []struct {
		name   string
		shape  region.Shape
		probes []probe
	}{
		{"circle", circle, []probe{{1, 1, true}, {2.9, 1, true}, {3.1, 1, false}, {-0.4, -0.4, true}, {-0.5, -0.6, false}}},
		{"rectangle rotated", rect, []probe{{-0.5, 1, true}, {-0.9, 1.9, true}, {0.5, 0.5, false}, {-0.5, 2.1, false}}},
		{"rectangle negative sides", flipped, []probe{{-1, -0.5, true}, {1, 0.5, false}}},
		{"ellipse", ellipse, []probe{{1.9, 0, true}, {0, 1.1, false}, {1.5, 0.6, true}, {1.5, 0.7, false}}},
		{"ellipse rotated", tilted, []probe{{0, 1.9, true}, {1.1, 0, false}}},
		{"triangle", triangle, []probe{{1, 1, true}, {3, 3, false}, {-0.1, 1, false}}},
		{"func", upperHalf, []probe{{5, 0, true}, {5, -1, false}}},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			checkProbes(t, tc.shape, tc.probes)
		})
	}
}

func TestCircle_BoundaryIsInside(t *testing.T) {
	t.Parallel()

	c, err := region.Circle(0, 0, 2)
	require.NoError(t, err)
	assert.True(t, c.Contains(2, 0))
	assert.True(t, c.Contains(0, -2))
}

func TestShapes_Invalid(t *testing.T) {
	t.Parallel()

	_, err := region.Circle(0, 0, 0)
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Circle(math.NaN(), 0, 1)
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Rectangle(0, 0, 0, 1, 0)
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Ellipse(0, 0, 1, -1, 0)
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Polygon([]float64{0, 1}, []float64{0, 1})
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Polygon([]float64{0, 1, 2}, []float64{0, 1})
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Polygon([]float64{0, 1, math.Inf(1)}, []float64{0, 1, 0})
	assert.ErrorIs(t, err, region.ErrInvalidShape)
	_, err = region.Func(nil)
	assert.ErrorIs(t, err, region.ErrInvalidShape)
}

func TestScanRegion(t *testing.T) {
	t.Parallel()

	c, err := region.Circle(0, 0, 1)
	require.NoError(t, err)
	r, err := region.NewScanRegion(c, "x", "y")
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, r.Axes())

	in := point.New2D(0, "x", 0.5, "y", 0.5)
	out := point.New2D(1, "x", 1, "y", 1)
	other := point.New2D(2, "a", 9, "b", 9)

	assert.True(t, r.Applies(in))
	assert.False(t, r.Applies(other))
	assert.True(t, r.Keeps(in))
	assert.False(t, r.Keeps(out))
	assert.True(t, r.Keeps(other), "points without the region's axes are kept")

	half, err := region.Func(func(x, _ float64) bool { return x < 0.7 })
	require.NoError(t, err)
	r2, err := region.NewScanRegion(half, "x", "y")
	require.NoError(t, err)
	assert.True(t, region.KeepsAll([]region.ScanRegion{r, r2}, in))
	assert.False(t, region.KeepsAll([]region.ScanRegion{r, r2}, point.New2D(0, "x", 0.8, "y", 0)))
	assert.True(t, region.KeepsAll(nil, out))

	_, err = region.NewScanRegion(c, "x", "")
	assert.ErrorIs(t, err, region.ErrEmptyAxisName)
	_, err = region.NewScanRegion(c, "x", "x")
	assert.ErrorIs(t, err, region.ErrDuplicateAxis)
	_, err = region.NewScanRegion(nil, "x", "y")
	assert.ErrorIs(t, err, region.ErrInvalidShape)
}
