package generator_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpath/generator"
	"github.com/katalvlaran/scanpath/model"
)

func TestDefaultRegistry(t *testing.T) {
	t.Parallel()

	r := generator.Default()
	require.Same(t, r, generator.Default())
	assert.True(t, r.Frozen())
	assert.ElementsMatch(t, model.Kinds(), r.Kinds())

	err := r.Register(model.KindLine, func(model.Model) (generator.Generator, error) { return nil, nil })
	assert.ErrorIs(t, err, generator.ErrRegistryFrozen)
}

func TestRegistry_Register(t *testing.T) {
	t.Parallel()

	r := generator.NewRegistry()
	assert.Empty(t, r.Kinds())
	require.NoError(t, generator.RegisterBuiltins(r))
	assert.False(t, r.Frozen())

	err := r.Register(model.KindSpiral, func(model.Model) (generator.Generator, error) { return nil, nil })
	assert.ErrorIs(t, err, generator.ErrAlreadyRegistered)
	assert.ErrorIs(t, generator.RegisterBuiltins(r), generator.ErrAlreadyRegistered)

	_, ok := r.Lookup(model.KindGrid)
	assert.True(t, ok)

	r.Freeze()
	err = r.Register("custom", func(model.Model) (generator.Generator, error) { return nil, nil })
	assert.ErrorIs(t, err, generator.ErrRegistryFrozen)

	assert.Panics(t, func() { _ = generator.NewRegistry().Register("custom", nil) })
}

func TestRegistry_Create(t *testing.T) {
	t.Parallel()

	r := generator.NewRegistry()
	require.NoError(t, r.Register(model.KindLine, func(m model.Model) (generator.Generator, error) {
		return generator.NewLine(m.(model.Line))
	}))

	g, err := r.Create(must(model.NewLine("x", 0, 1, 4)))
	require.NoError(t, err)
	assert.Equal(t, 4, g.Size())

	_, err = r.Create(must(model.NewSpiral("x", "y", goldenBox, 1)))
	require.ErrorIs(t, err, generator.ErrNoGenerator)
	assert.EqualError(t, err, "no generator available for type spiral")

	_, err = r.Create(nil)
	assert.ErrorIs(t, err, generator.ErrNoGenerator)
}

func TestRegistry_FactoryKindMismatch(t *testing.T) {
	t.Parallel()

	// a grid factory registered under the line kind must not be fed a line
	r := generator.NewRegistry()
	grids := generator.NewRegistry()
	require.NoError(t, generator.RegisterBuiltins(grids))
	gridFactory, ok := grids.Lookup(model.KindGrid)
	require.True(t, ok)
	require.NoError(t, r.Register(model.KindLine, gridFactory))

	_, err := r.Create(must(model.NewLine("x", 0, 1, 4)))
	assert.ErrorIs(t, err, generator.ErrNoGenerator)
}

func TestDefaultRegistry_ConcurrentCreate(t *testing.T) {
	t.Parallel()

	const workers = 16
	m := must(model.NewLissajous("x", "y", goldenBox))
	want := must(must(generator.Default().Create(m)).Points())

	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g, err := generator.Default().Create(m)
			if err != nil {
				errs <- err
				return
			}
			for i := 0; i < g.Size(); i += 50 {
				p, err := g.At(i)
				if err != nil {
					errs <- err
					return
				}
				if !p.Equal(want[i]) {
					errs <- assert.AnError
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
