// Package region provides the region-of-interest (ROI) shapes a compound
// scan filters its points with, and ScanRegion, which binds a shape to the
// pair of axes it is evaluated on.
//
// Geometric shapes are 2-D signed distance functions from sdfx: a point is
// inside when the distance is not positive (up to Tolerance), so points on
// the boundary are kept.
package region

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Tolerance is the signed distance below which a point counts as inside.
const Tolerance = 1e-10

const (
	methodCircle    = "Circle"
	methodRectangle = "Rectangle"
	methodEllipse   = "Ellipse"
	methodPolygon   = "Polygon"
	methodFunc      = "Func"
	methodScan      = "ScanRegion"
)

// Shape is a containment predicate over a plane.
type Shape interface {
	// Contains reports whether (x, y) lies inside the shape or on its edge.
	Contains(x, y float64) bool
}

// sdfShape adapts an sdf.SDF2 to Shape. The bounding box is cached so most
// far-away points are rejected without evaluating the distance function.
type sdfShape struct {
	name string
	s    sdf.SDF2
	bb   sdf.Box2
}

func newSDFShape(name string, s sdf.SDF2) sdfShape {
	return sdfShape{name: name, s: s, bb: s.BoundingBox()}
}

func (s sdfShape) Contains(x, y float64) bool {
	if x < s.bb.Min.X-Tolerance || x > s.bb.Max.X+Tolerance ||
		y < s.bb.Min.Y-Tolerance || y > s.bb.Max.Y+Tolerance {
		return false
	}
	return s.s.Evaluate(v2.Vec{X: x, Y: y}) <= Tolerance
}

func (s sdfShape) String() string { return s.name }

// Circle returns the disc of radius r centred on (cx, cy).
func Circle(cx, cy, r float64) (Shape, error) {
	if !finite(cx, cy, r) || r <= 0 {
		return nil, shapeErrorf(methodCircle, ErrInvalidShape, "centre=(%v, %v) radius=%v", cx, cy, r)
	}
	c, err := sdf.Circle2D(r)
	if err != nil {
		return nil, shapeErrorf(methodCircle, ErrInvalidShape, "%v", err)
	}
	return newSDFShape(methodCircle, sdf.Transform2D(c, sdf.Translate2d(v2.Vec{X: cx, Y: cy}))), nil
}

// Rectangle returns the rectangle with one corner at (x, y), sides w and h
// along its own axes, rotated by angle radians about that corner.
// Negative sides extend the rectangle in the negative direction.
func Rectangle(x, y, w, h, angle float64) (Shape, error) {
	if !finite(x, y, w, h, angle) || w == 0 || h == 0 {
		return nil, shapeErrorf(methodRectangle, ErrInvalidShape, "origin=(%v, %v) size=%v×%v angle=%v", x, y, w, h, angle)
	}
	x0, x1 := math.Min(0, w), math.Max(0, w)
	y0, y1 := math.Min(0, h), math.Max(0, h)
	p, err := sdf.Polygon2D([]v2.Vec{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}})
	if err != nil {
		return nil, shapeErrorf(methodRectangle, ErrInvalidShape, "%v", err)
	}
	m := sdf.Translate2d(v2.Vec{X: x, Y: y}).Mul(sdf.Rotate2d(angle))
	return newSDFShape(methodRectangle, sdf.Transform2D(p, m)), nil
}

// Ellipse returns the ellipse centred on (cx, cy) with semi-axes rx and ry,
// rotated by angle radians.
func Ellipse(cx, cy, rx, ry, angle float64) (Shape, error) {
	if !finite(cx, cy, rx, ry, angle) || rx <= 0 || ry <= 0 {
		return nil, shapeErrorf(methodEllipse, ErrInvalidShape, "centre=(%v, %v) semi-axes=%v×%v", cx, cy, rx, ry)
	}
	unit, err := sdf.Circle2D(1)
	if err != nil {
		return nil, shapeErrorf(methodEllipse, ErrInvalidShape, "%v", err)
	}
	// scaling distorts distances but keeps their sign, which is all
	// containment needs
	m := sdf.Translate2d(v2.Vec{X: cx, Y: cy}).
		Mul(sdf.Rotate2d(angle)).
		Mul(sdf.Scale2d(v2.Vec{X: rx, Y: ry}))
	return newSDFShape(methodEllipse, sdf.Transform2D(unit, m)), nil
}

// Polygon returns the simple polygon through the given vertices, in order.
// The closing edge is implied.
func Polygon(xs, ys []float64) (Shape, error) {
	if len(xs) != len(ys) || len(xs) < 3 {
		return nil, shapeErrorf(methodPolygon, ErrInvalidShape, "%d x and %d y coordinates (need ≥3 pairs)", len(xs), len(ys))
	}
	vs := make([]v2.Vec, len(xs))
	for i := range xs {
		if !finite(xs[i], ys[i]) {
			return nil, shapeErrorf(methodPolygon, ErrInvalidShape, "vertex #%d=(%v, %v)", i, xs[i], ys[i])
		}
		vs[i] = v2.Vec{X: xs[i], Y: ys[i]}
	}
	p, err := sdf.Polygon2D(vs)
	if err != nil {
		return nil, shapeErrorf(methodPolygon, ErrInvalidShape, "%v", err)
	}
	return newSDFShape(methodPolygon, p), nil
}

// FuncShape is a Shape backed by an arbitrary predicate.
type FuncShape func(x, y float64) bool

// Contains implements Shape.
func (f FuncShape) Contains(x, y float64) bool { return f(x, y) }

// Func wraps an externally defined containment predicate.
func Func(f func(x, y float64) bool) (Shape, error) {
	if f == nil {
		return nil, shapeErrorf(methodFunc, ErrInvalidShape, "nil predicate")
	}
	return FuncShape(f), nil
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
