package swappers

import (
	"fmt"
	"slices"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// BuilderFunc creates a Swapper from the run settings.
type BuilderFunc func(settings domain.SwapSettings) (driven.Swapper, error)

// Registry maps swapper names to their builders.
type Registry struct {
	builders map[string]BuilderFunc
}

// NewRegistry creates a new swapper registry.
func NewRegistry() *Registry {
	return &Registry{
		builders: make(map[string]BuilderFunc),
	}
}

// Register adds a swapper builder to the registry.
// Name should be unique and match the swapper's Name() return value.
func (r *Registry) Register(name string, builder BuilderFunc) {
	r.builders[name] = builder
}

// Build creates a swapper by name with the given settings.
func (r *Registry) Build(name string, settings domain.SwapSettings) (driven.Swapper, error) {
	builder, ok := r.builders[name]
	if !ok {
		return nil, fmt.Errorf("%w: unknown swapper: %s", domain.ErrInvalidInput, name)
	}
	return builder(settings)
}

// Has returns true if a swapper with the given name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.builders[name]
	return ok
}

// Names returns all registered swapper names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.builders))
	for name := range r.builders {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// BuildPipeline creates a pipeline of the swappers enabled in settings,
// in fixed execution order.
func (r *Registry) BuildPipeline(settings domain.SwapSettings) (*Pipeline, error) {
	p := NewPipeline()
	for _, name := range settings.EnabledSwappers() {
		s, err := r.Build(name, settings)
		if err != nil {
			return nil, err
		}
		p.Add(s)
	}
	return p, nil
}

// Verify interface compliance.
var _ driven.SwapPipelineFactory = (*Registry)(nil)

// NewPipeline implements driven.SwapPipelineFactory.
func (r *Registry) NewPipeline(settings domain.SwapSettings) (driven.SwapPipeline, error) {
	p, err := r.BuildPipeline(settings)
	if err != nil {
		return nil, err
	}
	return p, nil
}
