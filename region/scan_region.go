package region

import "github.com/katalvlaran/scanpath/point"

// ScanRegion scopes a Shape to a named pair of axes: the shape's first
// coordinate is read from XAxis and its second from YAxis.
type ScanRegion struct {
	Shape Shape
	XAxis string
	YAxis string
}

// NewScanRegion binds shape to the axis pair (xAxis, yAxis).
func NewScanRegion(shape Shape, xAxis, yAxis string) (ScanRegion, error) {
	r := ScanRegion{Shape: shape, XAxis: xAxis, YAxis: yAxis}
	return r, r.Validate()
}

// Validate requires a shape and two distinct, non-empty axis names.
func (r ScanRegion) Validate() error {
	if r.Shape == nil {
		return shapeErrorf(methodScan, ErrInvalidShape, "nil shape")
	}
	if r.XAxis == "" || r.YAxis == "" {
		return shapeErrorf(methodScan, ErrEmptyAxisName, "axes=(%q, %q)", r.XAxis, r.YAxis)
	}
	if r.XAxis == r.YAxis {
		return shapeErrorf(methodScan, ErrDuplicateAxis, "%q", r.XAxis)
	}
	return nil
}

// Axes returns the axis pair the region is evaluated on.
func (r ScanRegion) Axes() []string { return []string{r.XAxis, r.YAxis} }

// Applies reports whether p carries both axes of the region.
func (r ScanRegion) Applies(p point.Point) bool {
	return p.Has(r.XAxis) && p.Has(r.YAxis)
}

// Keeps reports whether p survives the region: points lacking either axis
// are kept vacuously, the others must lie inside the shape.
func (r ScanRegion) Keeps(p point.Point) bool {
	x, okX := p.Get(r.XAxis)
	y, okY := p.Get(r.YAxis)
	if !okX || !okY {
		return true
	}
	return r.Shape.Contains(x, y)
}

// KeepsAll reports whether p survives every region in rs.
func KeepsAll(rs []ScanRegion, p point.Point) bool {
	for _, r := range rs {
		if !r.Keeps(p) {
			return false
		}
	}
	return true
}
