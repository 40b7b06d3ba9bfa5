package model

// RandomOffset is the model-level configuration of a seeded random offset:
// every listed axis of every point is moved by an amount drawn uniformly
// from [-MaxOffsets[axis], +MaxOffsets[axis]].
//
// The configuration only describes the perturbation; the mutator package
// owns the pseudo-random stream that realizes it.
type RandomOffset struct {
	Seed       int64
	Axes       []string
	MaxOffsets map[string]float64
}

// NewRandomOffset copies its inputs into a RandomOffset.
func NewRandomOffset(seed int64, axes []string, maxOffsets map[string]float64) RandomOffset {
	ro := RandomOffset{
		Seed:       seed,
		Axes:       append([]string(nil), axes...),
		MaxOffsets: make(map[string]float64, len(maxOffsets)),
	}
	for k, v := range maxOffsets {
		ro.MaxOffsets[k] = v
	}
	return ro
}

// Validate requires at least one axis, no duplicates, and a finite,
// non-negative maximum offset for every listed axis.
func (r RandomOffset) Validate() error {
	if len(r.Axes) == 0 {
		return modelErrorf(methodRandomOffset, ErrMissingParameter, "Axes is empty")
	}
	if err := validateAxisNames(methodRandomOffset, r.Axes...); err != nil {
		return err
	}
	for _, a := range r.Axes {
		m, ok := r.MaxOffsets[a]
		if !ok {
			return modelErrorf(methodRandomOffset, ErrMissingParameter, "MaxOffsets[%q]", a)
		}
		if !isFinite(m) || m < 0 {
			return modelErrorf(methodRandomOffset, ErrInvalidParameter, "MaxOffsets[%q]=%v", a, m)
		}
	}
	return nil
}
