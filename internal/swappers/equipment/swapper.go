// Package equipment copies selected electric equipment between paired spaces.
package equipment

import (
	"context"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/matching"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// DefaultToken selects elevator equipment.
const DefaultToken = "elevator"

// Swapper implements the equipment swap.
type Swapper struct {
	token      string
	idempotent bool
	policy     domain.InsertionPolicy
}

// Option configures the swapper.
type Option func(*Swapper)

// WithToken sets the case-insensitive name token selecting equipment.
func WithToken(token string) Option {
	return func(s *Swapper) {
		if token != "" {
			s.token = strings.ToLower(token)
		}
	}
}

// WithIdempotent skips equipment already copied from the same source
// object into the paired space.
func WithIdempotent(on bool) Option {
	return func(s *Swapper) {
		s.idempotent = on
	}
}

// WithInsertionPolicy sets what happens when a copy is rejected.
func WithInsertionPolicy(p domain.InsertionPolicy) Option {
	return func(s *Swapper) {
		if p.IsValid() {
			s.policy = p
		}
	}
}

// New creates an equipment swapper.
func New(opts ...Option) *Swapper {
	s := &Swapper{
		token:      DefaultToken,
		idempotent: true,
		policy:     domain.InsertionFailFast,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapEquipment
}

// Swap copies matching equipment of every reference space into its paired
// actual space.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}

	pairs, err := matching.MatchSpaces(source, target)
	if err != nil {
		return report, err
	}

	for _, p := range pairs {
		for _, eq := range p.Source.Children(domain.TypeElectricEquip) {
			if err := ctx.Err(); err != nil {
				return report, err
			}
			if !strings.Contains(strings.ToLower(eq.Name()), s.token) {
				continue
			}
			if s.idempotent && present(target, p.Target, eq) {
				logger.Debug("%s already in space: %s", eq.Name(), p.Target.Name())
				report.Skipped = append(report.Skipped, eq.Name())
				continue
			}

			copied, err := transplant.Transplant(source, target, eq)
			if transplant.Skippable(s.policy, err) {
				logger.Warn("Skipping %s: %v", eq.Name(), err)
				report.Skipped = append(report.Skipped, eq.Name())
				continue
			}
			if err != nil {
				return report, err
			}
			if err := copied.SetParent(p.Target); err != nil {
				return report, err
			}
			logger.Info("Added %s to space: %s", copied.Name(), p.Target.Name())
			report.Applied++
		}
	}

	return report, nil
}

// present reports whether space already holds a copy of eq.
func present(target driven.ModelDocument, space, eq driven.ModelObject) bool {
	for _, x := range space.Children(domain.TypeElectricEquip) {
		if origin, ok := target.Origin(x); ok && origin == eq.Handle() {
			return true
		}
	}
	return false
}
