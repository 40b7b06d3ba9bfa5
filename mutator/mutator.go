// Package mutator provides post-processing transforms applied to points
// after a generator has produced them.
//
// A Mutator is configuration plus a pure function of (point, index): it
// holds no iteration state, so applying it at index i gives the same result
// whether the scan is walked sequentially or accessed at random. None of
// the mutators here reorders points; reversal is requested through the
// Reverser interface and carried out by the compound generator, which owns
// the iteration order.
package mutator

import (
	"errors"
	"fmt"

	"github.com/samber/lo"

	"github.com/katalvlaran/scanpath/point"
)

// ErrUnknownAxis indicates a mutator refers to an axis the points it is
// applied to do not carry.
var ErrUnknownAxis = errors.New("mutator: unknown axis")

// ErrInvalidConfig indicates a mutator was configured with values outside
// their domain.
var ErrInvalidConfig = errors.New("mutator: invalid configuration")

// Mutator transforms one point of a scan.
type Mutator interface {
	// Name identifies the mutator kind in logs and errors.
	Name() string
	// Axes lists the axes the mutator reads or writes. An empty list means
	// the mutator is axis-agnostic.
	Axes() []string
	// Mutate returns the transformed point. index is the absolute position
	// of p in the scan and is the only source of variation between calls.
	Mutate(p point.Point, index int) point.Point
}

// Reverser is implemented by mutators that ask for a level of a compound
// scan to be traversed backwards on every odd enclosing iteration.
type Reverser interface {
	Mutator
	Reverses() bool
}

// CheckAxes returns ErrUnknownAxis if m refers to an axis outside axes.
func CheckAxes(m Mutator, axes []string) error {
	if missing := lo.Without(m.Axes(), axes...); len(missing) > 0 {
		return fmt.Errorf("%s: axis %q not in %v: %w", m.Name(), missing[0], axes, ErrUnknownAxis)
	}
	return nil
}

// Apply runs ms over p in order.
func Apply(ms []Mutator, p point.Point, index int) point.Point {
	for _, m := range ms {
		p = m.Mutate(p, index)
	}
	return p
}

// Continuous marks every point as velocity-continuous: the motion layer may
// fly through it instead of stopping to settle and acquire.
type Continuous struct{}

// NewContinuous returns the Continuous mutator.
func NewContinuous() Continuous { return Continuous{} }

// Name implements Mutator.
func (Continuous) Name() string { return "continuous" }

// Axes implements Mutator.
func (Continuous) Axes() []string { return nil }

// Mutate sets the continuous motion hint; coordinates are untouched.
func (Continuous) Mutate(p point.Point, _ int) point.Point {
	return p.WithContinuous(true)
}

// Alternating reverses the traversal of the axes it names on every other
// iteration of the enclosing scan. Attached to a single level with no
// axes, it applies to that whole level.
type Alternating struct {
	axes []string
}

// NewAlternating returns an Alternating mutator over axes.
func NewAlternating(axes ...string) Alternating {
	return Alternating{axes: append([]string(nil), axes...)}
}

// Name implements Mutator.
func (Alternating) Name() string { return "alternating" }

// Axes implements Mutator.
func (a Alternating) Axes() []string { return append([]string(nil), a.axes...) }

// Mutate returns p unchanged; the reversal itself is an ordering concern.
func (Alternating) Mutate(p point.Point, _ int) point.Point { return p }

// Reverses implements Reverser.
func (Alternating) Reverses() bool { return true }
