// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// model.go — the sealed Model interface and the settings every variant shares.
//
// Contract:
//   • Model is a closed set: only variants declared in this package satisfy it.
//   • Variants are plain values holding only their own parameters.
//   • Validate() is pure and idempotent: valid data never fails, invalid
//     data always fails, every time.
//   • Constructors (NewX) run Validate and return its error, so a model that
//     reaches a generator has already been checked once.

package model

// Kind tags a model variant. The generator registry resolves generators by
// exact Kind match.
type Kind string

// Model kinds, one per path family.
const (
	KindLine         Kind = "line"
	KindMultiLine    Kind = "multi-line"
	KindDiagonalLine Kind = "diagonal-line"
	KindGrid         Kind = "grid"
	KindSpiral       Kind = "spiral"
	KindLissajous    Kind = "lissajous"
	KindArray        Kind = "array"
	KindSinglePoint  Kind = "single-point"
)

// Kinds lists every built-in kind in a stable order.
func Kinds() []Kind {
	return []Kind{
		KindLine, KindMultiLine, KindDiagonalLine, KindGrid,
		KindSpiral, KindLissajous, KindArray, KindSinglePoint,
	}
}

// Model is a fully specified description of one path family instance.
type Model interface {
	// Kind returns the variant tag.
	Kind() Kind
	// Axes returns the axis names the model drives, fast axis first.
	Axes() []string
	// Options returns the settings shared by all variants.
	Options() Common
	// Validate checks every parameter and returns a descriptive error
	// wrapping one of the package sentinels.
	Validate() error

	sealed()
}

// Common holds the settings every variant carries.
type Common struct {
	// Name is a free-form label for the path.
	Name string
	// Continuous marks points as velocity-continuous for the motion layer.
	Continuous bool
	// Alternating reverses traversal on every other enclosing iteration,
	// and for grids also snakes every other row.
	Alternating bool
	// BoundsToFit places points half a step inside the region edges
	// instead of on them.
	BoundsToFit bool
	// Offset, when non-nil, perturbs the generated points with a seeded
	// random offset.
	Offset *RandomOffset
}

// Option customizes the Common settings of a model at construction.
type Option func(*Common)

// WithName sets the path label.
func WithName(name string) Option {
	return func(c *Common) { c.Name = name }
}

// WithContinuous sets the continuous motion hint.
func WithContinuous(continuous bool) Option {
	return func(c *Common) { c.Continuous = continuous }
}

// WithAlternating sets alternating (snake) traversal.
func WithAlternating(alternating bool) Option {
	return func(c *Common) { c.Alternating = alternating }
}

// WithBoundsToFit sets half-step inset placement.
func WithBoundsToFit(fit bool) Option {
	return func(c *Common) { c.BoundsToFit = fit }
}

// WithRandomOffset attaches a seeded random offset to the model.
// Panics on an empty axis list: an offset over no axes is meaningless.
func WithRandomOffset(seed int64, axes []string, maxOffsets map[string]float64) Option {
	if len(axes) == 0 {
		panic("model: WithRandomOffset(no axes)")
	}
	ro := NewRandomOffset(seed, axes, maxOffsets)
	return func(c *Common) { c.Offset = &ro }
}

// newCommon resolves options in order; later options override earlier ones.
func newCommon(opts []Option) Common {
	var c Common
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// validateCommon checks the shared settings against the model's axes.
func validateCommon(method string, c Common, axes []string) error {
	if c.Offset == nil {
		return nil
	}
	if err := c.Offset.Validate(); err != nil {
		return modelErrorf(method, err, "Offset")
	}
	for _, a := range c.Offset.Axes {
		if !containsAxis(axes, a) {
			return modelErrorf(method, ErrUnknownAxis, "Offset axis %q not in %v", a, axes)
		}
	}
	return nil
}
