// SPDX-License-Identifier: MIT
// Package: scanpath/generator
//
// options.go — functional options for Compound and Service.
//
// Contract:
//   • Option constructors validate and panic on meaningless inputs;
//     constructors and generators themselves never panic.
//   • Unset options fall back to the named defaults below.

package generator

import (
	"log/slog"
	"math"

	"github.com/katalvlaran/scanpath"
)

// DefaultMaxSize bounds the number of points of a compound scan.
const DefaultMaxSize = math.MaxInt32

type compoundConfig struct {
	maxSize int
	logger  *slog.Logger
}

func newCompoundConfig(opts []CompoundOption) compoundConfig {
	c := compoundConfig{maxSize: DefaultMaxSize}
	for _, opt := range opts {
		opt(&c)
	}
	if c.logger == nil {
		c.logger = scanpath.Logger()
	}
	return c
}

// CompoundOption customizes NewCompound.
type CompoundOption func(*compoundConfig)

// WithMaxSize caps the number of points (after ROI filtering) and the
// number of raw combinations evaluated to filter a merged dimension.
// Panics if n <= 0.
func WithMaxSize(n int) CompoundOption {
	if n <= 0 {
		panic("generator: WithMaxSize(n <= 0)")
	}
	return func(c *compoundConfig) { c.maxSize = n }
}

// WithLogger sets the logger used while building the compound. Panics on
// nil; leave the option out to use scanpath.Logger().
func WithLogger(l *slog.Logger) CompoundOption {
	if l == nil {
		panic("generator: WithLogger(nil)")
	}
	return func(c *compoundConfig) { c.logger = l }
}

// ServiceOption customizes NewService.
type ServiceOption func(*Service)

// WithRegistry makes the service resolve models through r instead of
// Default(). Panics on nil.
func WithRegistry(r *Registry) ServiceOption {
	if r == nil {
		panic("generator: WithRegistry(nil)")
	}
	return func(s *Service) { s.registry = r }
}

// WithCompoundOptions sets options applied to every compound the service
// builds, before the per-call ones.
func WithCompoundOptions(opts ...CompoundOption) ServiceOption {
	return func(s *Service) { s.compoundOpts = append(s.compoundOpts, opts...) }
}
