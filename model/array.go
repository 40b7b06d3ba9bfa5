package model

// Array visits an explicit list of positions on one axis, verbatim and in
// order. It is the identity path for irregular, hand-specified scans.
type Array struct {
	Axis      string
	Positions []float64

	Common
}

// NewArray returns an Array over a copy of positions.
func NewArray(axis string, positions []float64, opts ...Option) (Array, error) {
	a := Array{Axis: axis, Positions: append([]float64(nil), positions...), Common: newCommon(opts)}
	return a, a.Validate()
}

func (Array) Kind() Kind        { return KindArray }
func (a Array) Axes() []string  { return []string{a.Axis} }
func (a Array) Options() Common { return a.Common }
func (Array) sealed()           {}

// Validate implements Model.
func (a Array) Validate() error {
	if err := validateAxisNames(methodArray, a.Axis); err != nil {
		return err
	}
	if len(a.Positions) == 0 {
		return modelErrorf(methodArray, ErrMissingParameter, "Positions is empty")
	}
	if err := validateCount(methodArray, "len(Positions)", len(a.Positions)); err != nil {
		return err
	}
	for i, v := range a.Positions {
		if !isFinite(v) {
			return modelErrorf(methodArray, ErrInvalidParameter, "Positions[%d]=%v", i, v)
		}
	}
	return validateCommon(methodArray, a.Common, a.Axes())
}

// SinglePoint visits one fixed two-axis position.
type SinglePoint struct {
	XAxis string
	YAxis string
	X     float64
	Y     float64

	Common
}

// NewSinglePoint returns a SinglePoint at (x, y).
func NewSinglePoint(xAxis, yAxis string, x, y float64, opts ...Option) (SinglePoint, error) {
	s := SinglePoint{XAxis: xAxis, YAxis: yAxis, X: x, Y: y, Common: newCommon(opts)}
	return s, s.Validate()
}

func (SinglePoint) Kind() Kind        { return KindSinglePoint }
func (s SinglePoint) Axes() []string  { return []string{s.XAxis, s.YAxis} }
func (s SinglePoint) Options() Common { return s.Common }
func (SinglePoint) sealed()           {}

// Validate implements Model.
func (s SinglePoint) Validate() error {
	if err := validateAxisNames(methodSinglePoint, s.XAxis, s.YAxis); err != nil {
		return err
	}
	if err := validateFinite(methodSinglePoint, "X", s.X); err != nil {
		return err
	}
	if err := validateFinite(methodSinglePoint, "Y", s.Y); err != nil {
		return err
	}
	return validateCommon(methodSinglePoint, s.Common, s.Axes())
}
