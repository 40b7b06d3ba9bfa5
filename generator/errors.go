// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// errors.go — sentinel errors for generators, the compound generator and
// the registry.
//
// Error policy:
//   • Only sentinel variables are exposed; callers match with errors.Is.
//   • Every returned error names the method and the offending value, and
//     wraps exactly one sentinel here (or a model/mutator/region sentinel
//     passed through unchanged).
//   • Configuration errors surface at construction, never at iteration.

package generator

import (
	"errors"
	"fmt"
)

// ErrNoGenerator indicates that no factory is registered for a model kind.
var ErrNoGenerator = errors.New("no generator available")

// ErrIndexOutOfRange indicates a point was requested outside [0, Size()).
var ErrIndexOutOfRange = errors.New("generator: index out of range")

// ErrExhausted indicates a point was requested after the last one.
var ErrExhausted = errors.New("generator: exhausted")

// ErrNotBuilt indicates a compound generator was used without NewCompound.
var ErrNotBuilt = errors.New("generator: compound not built")

// ErrNoLevels indicates a compound generator was given nothing to iterate.
var ErrNoLevels = errors.New("generator: no levels")

// ErrNilGenerator indicates a compound level without a generator.
var ErrNilGenerator = errors.New("generator: nil generator")

// ErrDuplicateAxis indicates two levels of a compound drive the same axis.
var ErrDuplicateAxis = errors.New("generator: duplicate axis")

// ErrUnknownAxis indicates a mutator or region refers to an axis that no
// level of the compound drives.
var ErrUnknownAxis = errors.New("generator: unknown axis")

// ErrSpansRegion indicates a global mutator moves axes of a region-filtered
// dimension together with axes outside it.
var ErrSpansRegion = errors.New("generator: mutator spans a filtered dimension")

// ErrTooLarge indicates the number of points exceeds the configured maximum.
var ErrTooLarge = errors.New("generator: size exceeds maximum")

// ErrAlreadyRegistered indicates a second factory for the same kind.
var ErrAlreadyRegistered = errors.New("generator: kind already registered")

// ErrRegistryFrozen indicates a registration after the registry was frozen.
var ErrRegistryFrozen = errors.New("generator: registry is frozen")

func generatorErrorf(method string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
