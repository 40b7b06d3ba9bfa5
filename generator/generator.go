package generator

import (
	"fmt"

	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/point"
)

// Generator is a finite, repeatable sequence of points.
type Generator interface {
	// Size returns the number of points.
	Size() int
	// Shape returns the size of each dimension, outermost first. The
	// product of Shape is Size.
	Shape() []int
	// Rank returns len(Shape()).
	Rank() int
	// Axes returns the axis names every point carries, in point order.
	Axes() []string
	// At returns point i, or ErrIndexOutOfRange.
	At(i int) (point.Point, error)
	// Iterator returns a fresh iterator positioned at the first point.
	Iterator() *Iterator
	// Points materializes the whole sequence.
	Points() ([]point.Point, error)
	// Continuous reports the motion hint attached to the points.
	Continuous() bool
	// Alternating reports whether the sequence asks to be reversed on
	// every odd iteration of an enclosing scan.
	Alternating() bool
}

// base implements Generator for the single-model families. raw computes
// the unperturbed point i; base adds the model's offset and motion hint.
type base struct {
	kind        model.Kind
	axes        []string
	size        int
	shape       []int
	continuous  bool
	alternating bool
	offset      *mutator.RandomOffset
	raw         func(i int) point.Point
}

func newBase(kind model.Kind, m model.Model, size int, raw func(int) point.Point) (base, error) {
	c := m.Options()
	b := base{
		kind:        kind,
		axes:        m.Axes(),
		size:        size,
		shape:       []int{size},
		continuous:  c.Continuous,
		alternating: c.Alternating,
		raw:         raw,
	}
	if c.Offset != nil {
		ro, err := mutator.FromConfig(*c.Offset)
		if err != nil {
			return base{}, fmt.Errorf("%s: %w", kind, err)
		}
		b.offset = ro
	}
	return b, nil
}

// Kind returns the model kind the generator was built from.
func (b *base) Kind() model.Kind { return b.kind }

func (b *base) Size() int         { return b.size }
func (b *base) Shape() []int      { return append([]int(nil), b.shape...) }
func (b *base) Rank() int         { return len(b.shape) }
func (b *base) Axes() []string    { return append([]string(nil), b.axes...) }
func (b *base) Continuous() bool  { return b.continuous }
func (b *base) Alternating() bool { return b.alternating }

func (b *base) At(i int) (point.Point, error) {
	if i < 0 || i >= b.size {
		return point.Point{}, generatorErrorf(string(b.kind)+".At", ErrIndexOutOfRange, "index %d not in [0,%d)", i, b.size)
	}
	p := b.raw(i)
	if b.offset != nil {
		p = b.offset.Mutate(p, i)
	}
	if b.continuous {
		p = p.WithContinuous(true)
	}
	return p, nil
}

func (b *base) Iterator() *Iterator { return newIterator(b.size, b.At) }

func (b *base) Points() ([]point.Point, error) { return collect(b.size, b.At) }

// collect evaluates at for every index in [0, size).
func collect(size int, at func(int) (point.Point, error)) ([]point.Point, error) {
	out := make([]point.Point, size)
	for i := range out {
		p, err := at(i)
		if err != nil {
			return nil, err
		}
		out[i] = p
	}
	return out, nil
}
