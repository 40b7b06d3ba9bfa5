package generator

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"

	"github.com/samber/lo"

	"github.com/katalvlaran/scanpath"
	"github.com/katalvlaran/scanpath/model"
)

// Factory builds the generator for one model.
type Factory func(m model.Model) (Generator, error)

// Registry maps model kinds to factories. It is safe for concurrent use;
// once frozen it only serves lookups.
type Registry struct {
	mu        sync.RWMutex
	factories map[model.Kind]Factory
	frozen    bool
}

// NewRegistry returns an empty, unfrozen registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[model.Kind]Factory)}
}

// Register binds kind to f. It fails with ErrAlreadyRegistered for a kind
// that already has a factory and with ErrRegistryFrozen after Freeze.
// Panics on a nil factory.
func (r *Registry) Register(kind model.Kind, f Factory) error {
	if f == nil {
		panic(fmt.Sprintf("generator: Register(%q, nil)", kind))
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen {
		return generatorErrorf("Registry.Register", ErrRegistryFrozen, "kind %q", kind)
	}
	if _, ok := r.factories[kind]; ok {
		return generatorErrorf("Registry.Register", ErrAlreadyRegistered, "kind %q", kind)
	}
	r.factories[kind] = f
	scanpath.Logger().Debug("generator registered", slog.String("kind", string(kind)))
	return nil
}

// Freeze rejects every later Register call.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Frozen reports whether Freeze was called.
func (r *Registry) Frozen() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.frozen
}

// Lookup returns the factory registered for kind.
func (r *Registry) Lookup(kind model.Kind) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[kind]
	return f, ok
}

// Kinds returns the registered kinds in lexical order.
func (r *Registry) Kinds() []model.Kind {
	r.mu.RLock()
	kinds := lo.Keys(r.factories)
	r.mu.RUnlock()
	slices.Sort(kinds)
	return kinds
}

// Create resolves m's kind and builds its generator. An unregistered kind
// fails with ErrNoGenerator.
func (r *Registry) Create(m model.Model) (Generator, error) {
	if m == nil {
		return nil, fmt.Errorf("%w for type <nil>", ErrNoGenerator)
	}
	f, ok := r.Lookup(m.Kind())
	if !ok {
		return nil, fmt.Errorf("%w for type %s", ErrNoGenerator, m.Kind())
	}
	return f(m)
}

// adapt turns a typed constructor into a Factory.
func adapt[M model.Model, G Generator](build func(M) (G, error)) Factory {
	return func(m model.Model) (Generator, error) {
		tm, ok := m.(M)
		if !ok {
			var want M
			return nil, fmt.Errorf("%w for type %s (got %T, want %T)", ErrNoGenerator, m.Kind(), m, want)
		}
		g, err := build(tm)
		if err != nil {
			return nil, err
		}
		return g, nil
	}
}

// RegisterBuiltins registers a factory for every model kind of the model
// package.
func RegisterBuiltins(r *Registry) error {
	builtins := []struct {
		kind model.Kind
		f    Factory
	}{
		{model.KindLine, adapt(NewLine)},
		{model.KindMultiLine, adapt(NewMultiLine)},
		{model.KindDiagonalLine, adapt(NewDiagonalLine)},
		{model.KindGrid, adapt(NewGrid)},
		{model.KindSpiral, adapt(NewSpiral)},
		{model.KindLissajous, adapt(NewLissajous)},
		{model.KindArray, adapt(NewArray)},
		{model.KindSinglePoint, adapt(NewSinglePoint)},
	}
	for _, b := range builtins {
		if err := r.Register(b.kind, b.f); err != nil {
			return err
		}
	}
	return nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry: every built-in family,
// registered on first use, then frozen.
func Default() *Registry {
	defaultOnce.Do(func() {
		r := NewRegistry()
		if err := RegisterBuiltins(r); err != nil {
			// a fresh registry cannot reject the builtins
			panic(err)
		}
		r.Freeze()
		defaultRegistry = r
	})
	return defaultRegistry
}
