package generator

import (
	"iter"

	"github.com/katalvlaran/scanpath/point"
)

// Iterator pulls points from a generator one at a time. It is a cursor over
// At and holds no other state, so any number of iterators can walk the same
// generator independently. An Iterator is not safe for concurrent use.
type Iterator struct {
	size int
	at   func(int) (point.Point, error)
	next int
}

func newIterator(size int, at func(int) (point.Point, error)) *Iterator {
	return &Iterator{size: size, at: at}
}

// NewIterator returns an iterator over g positioned at its first point.
func NewIterator(g Generator) *Iterator { return newIterator(g.Size(), g.At) }

// HasNext reports whether Next will return a point.
func (it *Iterator) HasNext() bool { return it.next < it.size }

// Next returns the next point, or ErrExhausted after the last one.
func (it *Iterator) Next() (point.Point, error) {
	if it.next >= it.size {
		return point.Point{}, generatorErrorf("Iterator.Next", ErrExhausted, "all %d points consumed", it.size)
	}
	p, err := it.at(it.next)
	if err != nil {
		return point.Point{}, err
	}
	it.next++
	return p, nil
}

// Index returns the index of the point Next will return.
func (it *Iterator) Index() int { return it.next }

// Seek positions the iterator so that Next returns point i. Seeking to
// Size() leaves the iterator exhausted.
func (it *Iterator) Seek(i int) error {
	if i < 0 || i > it.size {
		return generatorErrorf("Iterator.Seek", ErrIndexOutOfRange, "index %d not in [0,%d]", i, it.size)
	}
	it.next = i
	return nil
}

// All returns the points of g as a range-over-func sequence of
// (index, point). Iteration stops early at the first error, which a
// well-formed generator never returns for an in-range index.
func All(g Generator) iter.Seq2[int, point.Point] {
	return func(yield func(int, point.Point) bool) {
		for i := 0; i < g.Size(); i++ {
			p, err := g.At(i)
			if err != nil || !yield(i, p) {
				return
			}
		}
	}
}
