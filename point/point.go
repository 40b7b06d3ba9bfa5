// Package point defines Point, the immutable unit of output of every
// scanpath generator: an absolute scan index plus an ordered mapping from
// axis name to position.
//
// Axis order is declaration order (the order a model lists its axes, and
// for compound scans the outermost level first), never filtering order.
//
// Points are values. Every "modifying" method returns a new Point and
// leaves the receiver untouched, so a Point may be shared freely across
// goroutines once produced.
package point

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is one position of a scan path.
type Point struct {
	index      int
	names      []string
	values     []float64
	continuous bool
}

// New builds a Point from parallel name/value slices. The slices are copied.
// It panics if the lengths differ; generators construct points from their
// own validated axis lists, so a mismatch is a programmer error.
func New(index int, names []string, values []float64) Point {
	if len(names) != len(values) {
		panic(fmt.Sprintf("point: %d names for %d values", len(names), len(values)))
	}
	p := Point{
		index:  index,
		names:  make([]string, len(names)),
		values: make([]float64, len(values)),
	}
	copy(p.names, names)
	copy(p.values, values)

	return p
}

// New1D builds a single-axis Point.
func New1D(index int, name string, value float64) Point {
	return Point{index: index, names: []string{name}, values: []float64{value}}
}

// New2D builds a two-axis Point; the fast axis comes first.
func New2D(index int, fastName string, fast float64, slowName string, slow float64) Point {
	return Point{
		index:  index,
		names:  []string{fastName, slowName},
		values: []float64{fast, slow},
	}
}

// Index returns the absolute position of the point in its sequence.
func (p Point) Index() int { return p.index }

// Len returns the number of axes.
func (p Point) Len() int { return len(p.names) }

// Continuous reports whether the motion layer may move through this point
// without stopping (velocity-continuous motion hint).
func (p Point) Continuous() bool { return p.continuous }

// Names returns a copy of the axis names in declaration order.
func (p Point) Names() []string {
	out := make([]string, len(p.names))
	copy(out, p.names)
	return out
}

// Values returns a copy of the coordinates in declaration order.
func (p Point) Values() []float64 {
	out := make([]float64, len(p.values))
	copy(out, p.values)
	return out
}

// Name returns the i-th axis name.
func (p Point) Name(i int) string { return p.names[i] }

// Value returns the i-th coordinate.
func (p Point) Value(i int) float64 { return p.values[i] }

// Get returns the coordinate of the named axis.
func (p Point) Get(name string) (float64, bool) {
	for i, n := range p.names {
		if n == name {
			return p.values[i], true
		}
	}
	return 0, false
}

// Has reports whether the point carries the named axis.
func (p Point) Has(name string) bool {
	_, ok := p.Get(name)
	return ok
}

// Map returns the coordinates keyed by axis name.
func (p Point) Map() map[string]float64 {
	m := make(map[string]float64, len(p.names))
	for i, n := range p.names {
		m[n] = p.values[i]
	}
	return m
}

// WithIndex returns a copy carrying a new absolute index.
func (p Point) WithIndex(index int) Point {
	q := p.clone()
	q.index = index
	return q
}

// WithContinuous returns a copy with the continuous motion hint set to c.
func (p Point) WithContinuous(c bool) Point {
	q := p.clone()
	q.continuous = c
	return q
}

// With returns a copy in which the named axis holds value.
// Unknown axes are appended after the existing ones.
func (p Point) With(name string, value float64) Point {
	q := p.clone()
	for i, n := range q.names {
		if n == name {
			q.values[i] = value
			return q
		}
	}
	q.names = append(q.names, name)
	q.values = append(q.values, value)

	return q
}

// Merge concatenates outer and inner into one point: outer's axes first,
// then inner's. The index is zero and the continuous hint comes from inner
// (the innermost level decides how the motion layer moves).
// Axes are assumed disjoint; the compound generator enforces that.
func Merge(outer, inner Point) Point {
	q := Point{
		names:      make([]string, 0, len(outer.names)+len(inner.names)),
		values:     make([]float64, 0, len(outer.values)+len(inner.values)),
		continuous: inner.continuous,
	}
	q.names = append(append(q.names, outer.names...), inner.names...)
	q.values = append(append(q.values, outer.values...), inner.values...)

	return q
}

// Equal reports whether p and o have the same axes in the same order with
// exactly equal coordinates. Index and motion hint are not compared.
func (p Point) Equal(o Point) bool {
	if len(p.names) != len(o.names) {
		return false
	}
	for i := range p.names {
		if p.names[i] != o.names[i] || p.values[i] != o.values[i] {
			return false
		}
	}
	return true
}

// String renders the point as "#idx(name=value, ...)".
func (p Point) String() string {
	var b strings.Builder
	b.WriteByte('#')
	b.WriteString(strconv.Itoa(p.index))
	b.WriteByte('(')
	for i, n := range p.names {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(n)
		b.WriteByte('=')
		b.WriteString(strconv.FormatFloat(p.values[i], 'g', -1, 64))
	}
	b.WriteByte(')')

	return b.String()
}

func (p Point) clone() Point {
	q := Point{
		index:      p.index,
		names:      make([]string, len(p.names)),
		values:     make([]float64, len(p.values)),
		continuous: p.continuous,
	}
	copy(q.names, p.names)
	copy(q.values, p.values)

	return q
}
