// Package construction swaps surface constructions and boundary conditions.
//
// Filtered surfaces of the actual model are paired with reference surfaces
// by nearest gross area. Each actual surface receives a copy of its
// reference surface's construction and the reference boundary condition
// verbatim. Insertion failures are always fatal here.
package construction

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/matching"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// DefaultAreaEpsilon is the default largest accepted area difference.
const DefaultAreaEpsilon = 0.5

// Swapper implements the construction swap.
type Swapper struct {
	surfaceTypes []string
	boundaries   []string
	epsilon      float64
	mode         domain.MatchMode
}

// Option configures the swapper.
type Option func(*Swapper)

// WithSurfaceTypes sets the surface types that take part in the swap.
func WithSurfaceTypes(types ...string) Option {
	return func(s *Swapper) {
		if len(types) > 0 {
			s.surfaceTypes = types
		}
	}
}

// WithBoundaryConditions sets the boundary conditions that take part in the swap.
func WithBoundaryConditions(bcs ...string) Option {
	return func(s *Swapper) {
		if len(bcs) > 0 {
			s.boundaries = bcs
		}
	}
}

// WithAreaEpsilon sets the area tolerance.
func WithAreaEpsilon(eps float64) Option {
	return func(s *Swapper) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// WithMatchMode selects strict or nearest matching.
func WithMatchMode(mode domain.MatchMode) Option {
	return func(s *Swapper) {
		if mode.IsValid() {
			s.mode = mode
		}
	}
}

// New creates a construction swapper with the given options.
func New(opts ...Option) *Swapper {
	defaults := domain.DefaultSwapSettings().Construction
	s := &Swapper{
		surfaceTypes: defaults.SurfaceTypes,
		boundaries:   defaults.BoundaryConditions,
		epsilon:      DefaultAreaEpsilon,
		mode:         domain.MatchModeStrict,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapConstruction
}

// Swap pairs the surfaces and applies every pair. All pairs are resolved
// before the first mutation.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}

	targets, sources, err := matching.SelectSurfaces(source, target, s.surfaceTypes, s.boundaries)
	if err != nil {
		return report, err
	}

	matcher := matching.SurfaceMatcher{Epsilon: s.epsilon, Mode: s.mode}
	pairs, err := matcher.Match(targets, sources)
	if err != nil {
		return report, err
	}

	for _, p := range pairs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if err := s.apply(source, target, p); err != nil {
			return report, err
		}
		report.Applied++
	}

	return report, nil
}

func (s *Swapper) apply(source, target driven.ModelDocument, p matching.Pair) error {
	refConstruction, err := transplant.RequireRef(p.Source, domain.FieldConstruction)
	if err != nil {
		return err
	}
	bc, err := transplant.RequireString(p.Source, domain.FieldBoundaryCondition)
	if err != nil {
		return err
	}

	old := ""
	if c, ok := p.Target.Ref(domain.FieldConstruction); ok {
		old = c.Name()
	}

	copied, err := transplant.Transplant(source, target, refConstruction)
	if err != nil {
		return err
	}
	if err := p.Target.SetRef(domain.FieldConstruction, copied); err != nil {
		return err
	}
	if err := p.Target.SetString(domain.FieldBoundaryCondition, bc); err != nil {
		return err
	}

	area, _ := p.Target.Number(domain.FieldGrossArea)
	logger.Info("%s Area: %.2f Old: %s New: %s", p.Target.Name(), area, old, copied.Name())
	return nil
}
