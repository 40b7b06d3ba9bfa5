package generator

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/scanpath"
	"github.com/katalvlaran/scanpath/model"
	"github.com/katalvlaran/scanpath/mutator"
	"github.com/katalvlaran/scanpath/region"
)

// Entry is one level of a scan request: a model and the mutators scoped to
// its axes.
type Entry struct {
	Model    model.Model
	Mutators []mutator.Mutator
}

// Service resolves scan requests into generators.
type Service struct {
	registry     *Registry
	compoundOpts []CompoundOption
}

// NewService returns a service backed by Default() unless WithRegistry says
// otherwise.
func NewService(opts ...ServiceOption) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	if s.registry == nil {
		s.registry = Default()
	}
	return s
}

// Registry returns the registry the service resolves through.
func (s *Service) Registry() *Registry { return s.registry }

// CreateGenerator builds the generator of a single model.
func (s *Service) CreateGenerator(m model.Model) (Generator, error) {
	g, err := s.registry.Create(m)
	if err != nil {
		scanpath.Logger().Warn("generator rejected", slog.String("kind", kindOf(m)), slog.Any("err", err))
		return nil, fmt.Errorf("Service.CreateGenerator: %w", err)
	}
	scanpath.Logger().Debug("generator created", slog.String("kind", kindOf(m)), slog.Int("size", g.Size()))
	return g, nil
}

// CreateCompound resolves every entry, outermost first, and nests them
// into one compound scan filtered by regions and post-processed by
// mutators. Every model is validated before any point exists.
func (s *Service) CreateCompound(entries []Entry, regions []region.ScanRegion, mutators []mutator.Mutator, opts ...CompoundOption) (*Compound, error) {
	levels := make([]Level, 0, len(entries))
	for i, e := range entries {
		g, err := s.registry.Create(e.Model)
		if err != nil {
			scanpath.Logger().Warn("scan entry rejected", slog.Int("entry", i), slog.String("kind", kindOf(e.Model)), slog.Any("err", err))
			return nil, fmt.Errorf("Service.CreateCompound: entry #%d: %w", i, err)
		}
		levels = append(levels, Level{Generator: g, Mutators: e.Mutators})
	}

	all := append(append([]CompoundOption(nil), s.compoundOpts...), opts...)
	c, err := NewCompound(levels, regions, mutators, all...)
	if err != nil {
		scanpath.Logger().Warn("scan rejected", slog.Any("err", err))
		return nil, fmt.Errorf("Service.CreateCompound: %w", err)
	}
	return c, nil
}

func kindOf(m model.Model) string {
	if m == nil {
		return "<nil>"
	}
	return string(m.Kind())
}
