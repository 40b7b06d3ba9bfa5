package model

import "math"

// BoundingBox is the rectangular region a two-axis model is fitted into.
// It is a value type: copies never alias, and no method mutates it.
//
// Lengths may be negative, which reverses the direction of travel along
// that axis (the start is still the first edge visited).
type BoundingBox struct {
	FastStart  float64 // start of the fast (inner loop) axis
	FastLength float64 // signed extent along the fast axis
	SlowStart  float64 // start of the slow (outer loop) axis
	SlowLength float64 // signed extent along the slow axis
}

// NewBoundingBox returns a box from its fast and slow starts and lengths.
func NewBoundingBox(fastStart, fastLength, slowStart, slowLength float64) BoundingBox {
	return BoundingBox{
		FastStart:  fastStart,
		FastLength: fastLength,
		SlowStart:  slowStart,
		SlowLength: slowLength,
	}
}

// FastCentre returns the midpoint of the fast axis.
func (b BoundingBox) FastCentre() float64 { return b.FastStart + b.FastLength/2 }

// SlowCentre returns the midpoint of the slow axis.
func (b BoundingBox) SlowCentre() float64 { return b.SlowStart + b.SlowLength/2 }

// HalfDiagonal returns the radius of the circle circumscribing the box.
func (b BoundingBox) HalfDiagonal() float64 {
	return math.Hypot(b.FastLength/2, b.SlowLength/2)
}

// validate rejects non-finite coordinates.
func (b BoundingBox) validate(method string) error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"FastStart", b.FastStart},
		{"FastLength", b.FastLength},
		{"SlowStart", b.SlowStart},
		{"SlowLength", b.SlowLength},
	} {
		if !isFinite(f.v) {
			return modelErrorf(method, ErrInvalidParameter, "BoundingBox.%s=%v", f.name, f.v)
		}
	}
	return nil
}

// BoundingLine is a straight segment in the plane of two axes, given by its
// start, its length and its angle (radians, counter-clockwise from the
// first axis).
type BoundingLine struct {
	XStart float64
	YStart float64
	Length float64
	Angle  float64
}

// NewBoundingLineFromPoints returns the segment from (x0, y0) to (x1, y1).
func NewBoundingLineFromPoints(x0, y0, x1, y1 float64) BoundingLine {
	dx, dy := x1-x0, y1-y0
	return BoundingLine{
		XStart: x0,
		YStart: y0,
		Length: math.Hypot(dx, dy),
		Angle:  math.Atan2(dy, dx),
	}
}

// End returns the far end of the segment.
func (l BoundingLine) End() (x, y float64) {
	return l.XStart + l.Length*math.Cos(l.Angle), l.YStart + l.Length*math.Sin(l.Angle)
}

func (l BoundingLine) validate(method string) error {
	if !isFinite(l.XStart) || !isFinite(l.YStart) || !isFinite(l.Length) || !isFinite(l.Angle) {
		return modelErrorf(method, ErrInvalidParameter, "BoundingLine=%+v", l)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
