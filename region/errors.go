// SPDX-License-Identifier: MIT
// Package: scanpath/region
//
// errors.go — sentinel errors for ROI shapes and scan regions.
//
// Error policy:
//   • Only sentinel variables are exposed; match with errors.Is.
//   • Constructors wrap them with the shape name and the offending value.

package region

import (
	"errors"
	"fmt"
)

// ErrInvalidShape indicates a shape parameter outside its domain
// (non-positive radius, degenerate polygon, NaN/Inf coordinate, nil func).
var ErrInvalidShape = errors.New("region: invalid shape")

// ErrEmptyAxisName indicates a scan region bound to an empty axis name.
var ErrEmptyAxisName = errors.New("region: axis name is empty")

// ErrDuplicateAxis indicates a scan region bound twice to the same axis.
var ErrDuplicateAxis = errors.New("region: duplicate axis name")

func shapeErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
