// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// compound.go — nested multi-dimensional scans with ROI filtering.
//
// Layout:
//   • Levels are given outermost first. Each level is one Generator.
//   • A dimension is a run of consecutive levels iterated as one unit.
//     Levels are merged into one dimension when a region of interest
//     joins axes of different levels (together with every level between
//     them); otherwise each level is its own dimension.
//   • A dimension with regions keeps the raw indices whose merged point
//     survives every region; this list is computed once, here, so Size is
//     exact without materializing the scan.
//   • Point i is the merge of one point per dimension (mixed radix over
//     the dimension sizes), then per-level and global mutators in order.
//   • Mutators touching the axes of a filtered dimension belong to that
//     dimension: they run on its raw index before the regions are tested,
//     so every emitted point lies inside every region. A global mutator
//     spanning a filtered dimension and other axes is rejected.
//   • Shape concatenates each unfiltered level's own Shape; a filtered
//     dimension is one flat entry.
//
// Alternation:
//   • A level alternates if its Level flag, its generator or one of its
//     mutators (mutator.Reverser) asks for it. A global Reverser marks the
//     levels driving its axes, or the innermost level when it names none.
//   • A dimension runs backwards when its outermost level alternates and
//     the flat index of the enclosing dimensions is odd. Inner levels of a
//     merged dimension reverse on the parity of the levels enclosing them
//     inside that dimension.
//
// Complexity: construction O(levels + Σ filtered raw sizes); At O(levels).

package generator

import (
	"fmt"
	"log/slog"

	"github.com/samber/lo"

	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/point"
	"github.com/katalvlaran/scanpath/region"
)

const methodNewCompound = "NewCompound"

// Level is one nesting level of a compound scan.
type Level struct {
	Generator Generator
	// Mutators may only refer to the axes of Generator.
	Mutators []mutator.Mutator
	// Alternating reverses the level on every odd enclosing iteration.
	Alternating bool
}

// State is the lifecycle of a Compound's cursor.
type State int

// Cursor states. A Compound returned by NewCompound starts Validated.
const (
	StateUnbuilt State = iota
	StateValidated
	StateIterating
	StateExhausted
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateUnbuilt:
		return "unbuilt"
	case StateValidated:
		return "validated"
	case StateIterating:
		return "iterating"
	case StateExhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

type dimension struct {
	gens        []Generator
	sizes       []int
	strides     []int  // strides[j] = Π sizes[j+1:]
	alternating []bool // per level
	reverse     bool   // whole dimension, on odd enclosing index
	axes        []string
	regions     []region.ScanRegion
	mutators    []mutator.Mutator // keyed on the raw index, before filtering
	kept        []int             // surviving raw indices; nil when unfiltered
	raw         int
	size        int
}

// point returns the merged, mutated point of raw index r in [0, d.raw).
func (d *dimension) point(r int) (point.Point, error) {
	p, err := d.rawPoint(r)
	if err != nil {
		return point.Point{}, err
	}
	return mutator.Apply(d.mutators, p, r), nil
}

// rawPoint merges the level points of raw index r in [0, d.raw).
func (d *dimension) rawPoint(r int) (point.Point, error) {
	var p point.Point
	for j, g := range d.gens {
		idx := (r / d.strides[j]) % d.sizes[j]
		if j > 0 && d.alternating[j] && (r/(d.strides[j]*d.sizes[j]))%2 == 1 {
			idx = d.sizes[j] - 1 - idx
		}
		q, err := g.At(idx)
		if err != nil {
			return point.Point{}, err
		}
		if j == 0 {
			p = q
		} else {
			p = point.Merge(p, q)
		}
	}
	return p, nil
}

// Compound is a nested scan over several generators. It implements
// Generator, so compounds nest.
type Compound struct {
	dims        []dimension
	strides     []int // strides[d] = Π dims[d+1:].size
	shape       []int
	axes        []string
	mutators    []mutator.Mutator // applied on the flat index
	size        int
	continuous  bool
	alternating bool

	state State
	next  int
}

// NewCompound validates the levels, regions and mutators and returns the
// compound scan, in state Validated.
func NewCompound(levels []Level, regions []region.ScanRegion, mutators []mutator.Mutator, opts ...CompoundOption) (*Compound, error) {
	cfg := newCompoundConfig(opts)
	if len(levels) == 0 {
		return nil, generatorErrorf(methodNewCompound, ErrNoLevels, "need at least one level")
	}

	c := &Compound{}
	levelOf := make(map[string]int)
	alternating := make([]bool, len(levels))

	for li, lv := range levels {
		if lv.Generator == nil {
			return nil, generatorErrorf(methodNewCompound, ErrNilGenerator, "level #%d", li)
		}
		axes := lv.Generator.Axes()
		for _, a := range axes {
			if prev, dup := levelOf[a]; dup {
				return nil, generatorErrorf(methodNewCompound, ErrDuplicateAxis, "%q driven by levels #%d and #%d", a, prev, li)
			}
			levelOf[a] = li
		}
		c.axes = append(c.axes, axes...)

		alternating[li] = lv.Alternating || lv.Generator.Alternating()
		for _, m := range lv.Mutators {
			if err := mutator.CheckAxes(m, axes); err != nil {
				return nil, fmt.Errorf("%s: level #%d: %w: %w", methodNewCompound, li, ErrUnknownAxis, err)
			}
			alternating[li] = alternating[li] || reverses(m)
		}
	}

	for _, m := range mutators {
		if err := mutator.CheckAxes(m, c.axes); err != nil {
			return nil, fmt.Errorf("%s: %w: %w", methodNewCompound, ErrUnknownAxis, err)
		}
		if reverses(m) {
			if len(m.Axes()) == 0 {
				alternating[len(levels)-1] = true
			}
			for _, a := range m.Axes() {
				alternating[levelOf[a]] = true
			}
		}
	}

	// merged[li] reports that level li shares a dimension with level li-1
	merged := make([]bool, len(levels))
	for ri, r := range regions {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("%s: region #%d: %w", methodNewCompound, ri, err)
		}
		lx, okX := levelOf[r.XAxis]
		ly, okY := levelOf[r.YAxis]
		if !okX || !okY {
			return nil, generatorErrorf(methodNewCompound, ErrUnknownAxis, "region #%d axes %v not all in %v", ri, r.Axes(), c.axes)
		}
		for li := min(lx, ly) + 1; li <= max(lx, ly); li++ {
			merged[li] = true
		}
	}

	dimOf := make([]int, len(levels))
	for li, lv := range levels {
		if li == 0 || !merged[li] {
			c.dims = append(c.dims, dimension{reverse: alternating[li]})
		}
		d := &c.dims[len(c.dims)-1]
		d.gens = append(d.gens, lv.Generator)
		d.axes = append(d.axes, lv.Generator.Axes()...)
		d.sizes = append(d.sizes, lv.Generator.Size())
		d.alternating = append(d.alternating, alternating[li])
		dimOf[li] = len(c.dims) - 1
	}
	for _, r := range regions {
		d := &c.dims[dimOf[levelOf[r.XAxis]]]
		d.regions = append(d.regions, r)
	}

	for li, lv := range levels {
		if d := &c.dims[dimOf[li]]; len(d.regions) > 0 {
			d.mutators = append(d.mutators, lv.Mutators...)
		} else {
			c.mutators = append(c.mutators, lv.Mutators...)
		}
	}
	for mi, m := range mutators {
		d, err := c.filteredDimOf(m)
		if err != nil {
			return nil, fmt.Errorf("%s: mutator #%d: %w", methodNewCompound, mi, err)
		}
		if d != nil {
			d.mutators = append(d.mutators, m)
		} else {
			c.mutators = append(c.mutators, m)
		}
	}

	for di := range c.dims {
		if err := c.dims[di].build(di, cfg); err != nil {
			return nil, err
		}
	}

	sizes := lo.Map(c.dims, func(d dimension, _ int) int { return d.size })
	size, ok := product(sizes, cfg.maxSize)
	if !ok {
		return nil, generatorErrorf(methodNewCompound, ErrTooLarge, "shape %v exceeds %d points", sizes, cfg.maxSize)
	}
	c.size = size
	c.strides = strides(sizes)
	for _, d := range c.dims {
		if len(d.regions) == 0 && len(d.gens) == 1 {
			c.shape = append(c.shape, d.gens[0].Shape()...)
		} else {
			c.shape = append(c.shape, d.size)
		}
	}
	all := append(lo.FlatMap(c.dims, func(d dimension, _ int) []mutator.Mutator { return d.mutators }), c.mutators...)
	c.continuous = levels[len(levels)-1].Generator.Continuous() || lo.ContainsBy(all, isContinuous)
	c.alternating = c.dims[0].reverse
	c.state = StateValidated

	cfg.logger.Debug("compound built",
		slog.Int("levels", len(levels)),
		slog.Any("shape", c.shape),
		slog.Int("size", c.size),
		slog.Any("axes", c.axes),
		slog.Int("regions", len(regions)),
		slog.Int("mutators", len(all)),
	)
	return c, nil
}

// build resolves the strides of d and, when regions apply, its kept indices.
func (d *dimension) build(di int, cfg compoundConfig) error {
	raw, ok := product(d.sizes, cfg.maxSize)
	if !ok {
		return generatorErrorf(methodNewCompound, ErrTooLarge, "dimension #%d: sizes %v exceed %d points", di, d.sizes, cfg.maxSize)
	}
	d.raw = raw
	d.strides = strides(d.sizes)
	d.size = raw
	if len(d.regions) == 0 {
		return nil
	}

	d.kept = make([]int, 0, raw)
	for r := 0; r < raw; r++ {
		p, err := d.point(r)
		if err != nil {
			return fmt.Errorf("%s: dimension #%d: %w", methodNewCompound, di, err)
		}
		if region.KeepsAll(d.regions, p) {
			d.kept = append(d.kept, r)
		}
	}
	d.size = len(d.kept)
	cfg.logger.Debug("region filter applied",
		slog.Int("dimension", di),
		slog.Int("raw", raw),
		slog.Int("kept", d.size),
	)
	return nil
}

// Size implements Generator; it counts points after ROI filtering.
func (c *Compound) Size() int { return c.size }

// Shape implements Generator, outermost first. Unfiltered levels contribute
// their own Shape; a region-filtered dimension contributes its kept count.
func (c *Compound) Shape() []int { return append([]int(nil), c.shape...) }

// Rank implements Generator.
func (c *Compound) Rank() int { return len(c.shape) }

// Axes implements Generator: every level's axes, outermost level first.
func (c *Compound) Axes() []string { return append([]string(nil), c.axes...) }

// Continuous reports the innermost level's motion hint, or true when a
// Continuous mutator is attached.
func (c *Compound) Continuous() bool { return c.continuous }

// Alternating reports whether the outermost dimension alternates.
func (c *Compound) Alternating() bool { return c.alternating }

// At implements Generator. It does not move the cursor.
func (c *Compound) At(i int) (point.Point, error) {
	if c.state == StateUnbuilt {
		return point.Point{}, generatorErrorf("Compound.At", ErrNotBuilt, "use NewCompound")
	}
	if i < 0 || i >= c.size {
		return point.Point{}, generatorErrorf("Compound.At", ErrIndexOutOfRange, "index %d not in [0,%d)", i, c.size)
	}

	var p point.Point
	for di := range c.dims {
		d := &c.dims[di]
		k := (i / c.strides[di]) % d.size
		if d.reverse && (i/(c.strides[di]*d.size))%2 == 1 {
			k = d.size - 1 - k
		}
		r := k
		if d.kept != nil {
			r = d.kept[k]
		}
		q, err := d.point(r)
		if err != nil {
			return point.Point{}, err
		}
		if di == 0 {
			p = q
		} else {
			p = point.Merge(p, q)
		}
	}
	p = mutator.Apply(c.mutators, p, i)
	return p.WithIndex(i), nil
}

// Iterator implements Generator. Iterators are independent of the cursor.
func (c *Compound) Iterator() *Iterator { return newIterator(c.size, c.At) }

// Points implements Generator.
func (c *Compound) Points() ([]point.Point, error) { return collect(c.size, c.At) }

// State returns the cursor state.
func (c *Compound) State() State { return c.state }

// HasNext reports whether Next will return a point.
func (c *Compound) HasNext() bool {
	return (c.state == StateValidated || c.state == StateIterating) && c.next < c.size
}

// Next advances the cursor and returns its point. After the last point the
// compound is Exhausted and every further call returns ErrExhausted.
func (c *Compound) Next() (point.Point, error) {
	switch c.state {
	case StateUnbuilt:
		return point.Point{}, generatorErrorf("Compound.Next", ErrNotBuilt, "use NewCompound")
	case StateExhausted:
		return point.Point{}, generatorErrorf("Compound.Next", ErrExhausted, "all %d points consumed", c.size)
	}
	if c.next >= c.size {
		c.state = StateExhausted
		return point.Point{}, generatorErrorf("Compound.Next", ErrExhausted, "all %d points consumed", c.size)
	}

	p, err := c.At(c.next)
	if err != nil {
		return point.Point{}, err
	}
	c.next++
	c.state = StateIterating
	if c.next == c.size {
		c.state = StateExhausted
	}
	return p, nil
}

// filteredDimOf returns the region-filtered dimension whose axes m touches,
// nil when it touches none.
func (c *Compound) filteredDimOf(m mutator.Mutator) (*dimension, error) {
	for di := range c.dims {
		d := &c.dims[di]
		if len(d.regions) == 0 || !lo.Some(d.axes, m.Axes()) {
			continue
		}
		if !lo.Every(d.axes, m.Axes()) {
			return nil, fmt.Errorf("%s on %v, filtered dimension #%d drives %v: %w", m.Name(), m.Axes(), di, d.axes, ErrSpansRegion)
		}
		return d, nil
	}
	return nil, nil
}

func reverses(m mutator.Mutator) bool {
	r, ok := m.(mutator.Reverser)
	return ok && r.Reverses()
}

func isContinuous(m mutator.Mutator) bool {
	_, ok := m.(mutator.Continuous)
	return ok
}

// product returns Π sizes, or false if it exceeds limit.
func product(sizes []int, limit int) (int, bool) {
	if lo.Contains(sizes, 0) {
		return 0, true
	}
	n := 1
	for _, s := range sizes {
		if n > limit/s {
			return 0, false
		}
		n *= s
	}
	return n, true
}

func strides(sizes []int) []int {
	out := make([]int, len(sizes))
	s := 1
	for j := len(sizes) - 1; j >= 0; j-- {
		out[j] = s
		s *= sizes[j]
	}
	return out
}
