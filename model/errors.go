// SPDX-License-Identifier: MIT
// Package: scanpath/model
//
// errors.go — sentinel errors for the model package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers branch with errors.Is(err, ErrX); never match strings.
//   • Implementations attach the offending field and value with %w,
//     e.g. "Grid: FastStep=-0.3 for FastLength=5: model: step points away from the box".
//   • Validation never panics; option constructors may (see model.go).

package model

import (
	"errors"
	"fmt"
)

// ErrMissingParameter indicates a required parameter was not supplied
// (e.g. a Line with neither Points nor Step).
var ErrMissingParameter = errors.New("model: missing required parameter")

// ErrContradictoryParameters indicates two parameters that must agree do not
// (e.g. Points and Step both set but describing different spacings).
var ErrContradictoryParameters = errors.New("model: contradictory parameters")

// ErrInvalidParameter indicates a parameter outside its domain
// (negative count, non-positive scale, NaN/Inf, too many points).
var ErrInvalidParameter = errors.New("model: invalid parameter")

// ErrWrongDirection indicates a step whose sign points away from the
// region it is meant to cover; it would produce a non-physical point count.
var ErrWrongDirection = errors.New("model: step points away from the region")

// ErrEmptyAxisName indicates an axis name is the empty string.
var ErrEmptyAxisName = errors.New("model: axis name is empty")

// ErrDuplicateAxis indicates the same axis name is used twice in one model.
var ErrDuplicateAxis = errors.New("model: duplicate axis name")

// ErrUnknownAxis indicates a model-level mutator config refers to an axis
// the model does not drive.
var ErrUnknownAxis = errors.New("model: unknown axis")

// modelErrorf prefixes a formatted message with the variant name and wraps
// the given sentinel so errors.Is keeps working.
func modelErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
