// Package model validation helpers.
//
// Each helper returns a formatted error via modelErrorf when its
// precondition is violated, so every failure names the offending field.
package model

import (
	"math"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats/scalar"
)

// validateAxisNames rejects empty and repeated axis names.
//
// Complexity: O(n) time and space.
func validateAxisNames(method string, names ...string) error {
	for i, n := range names {
		if n == "" {
			return modelErrorf(method, ErrEmptyAxisName, "axis #%d", i)
		}
	}
	if dups := lo.FindDuplicates(names); len(dups) > 0 {
		return modelErrorf(method, ErrDuplicateAxis, "%q", dups[0])
	}
	return nil
}

// containsAxis reports whether name is one of axes.
func containsAxis(axes []string, name string) bool {
	return lo.Contains(axes, name)
}

// validateCount ensures a point count is non-negative and within MaxAxisPoints.
func validateCount(method, field string, n int) error {
	if n < 0 || n > MaxAxisPoints {
		return modelErrorf(method, ErrInvalidParameter, "%s=%d (must be in [0,%d])", field, n, MaxAxisPoints)
	}
	return nil
}

// validateFinite rejects NaN and ±Inf.
func validateFinite(method, field string, v float64) error {
	if !isFinite(v) {
		return modelErrorf(method, ErrInvalidParameter, "%s=%v", field, v)
	}
	return nil
}

// sameSpacing reports whether two step sizes agree within StepTolerance,
// absolutely or relative to their magnitude.
func sameSpacing(a, b float64) bool {
	return scalar.EqualWithinAbsOrRel(a, b, StepTolerance, StepTolerance)
}

// floorSteps returns ⌊length/step⌋ with StepTolerance slack, so lengths that
// are whole multiples of step up to rounding count every step.
// The caller guarantees step != 0 and matching signs.
func floorSteps(length, step float64) float64 {
	return math.Floor(length/step + StepTolerance)
}

// gcdFloat returns the greatest common divisor of |a| and |b| by the
// Euclidean algorithm with a tolerance relative to the larger magnitude.
// Returns 0 when the ratio does not close within the tolerance.
//
// Complexity: O(log(max/min)) iterations for commensurable inputs.
func gcdFloat(a, b float64) float64 {
	a, b = math.Abs(a), math.Abs(b)
	if a < b {
		a, b = b, a
	}
	tol := StepTolerance * a
	for i := 0; b > tol; i++ {
		if i > 64 {
			return 0
		}
		r := math.Mod(a, b)
		if b-r <= tol {
			r = 0
		}
		a, b = b, r
	}
	return a
}
