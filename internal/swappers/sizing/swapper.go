// Package sizing copies the global heating and cooling sizing factors.
package sizing

import (
	"context"
	"math"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// DefaultEpsilon is the tolerance under which two factors are equal.
const DefaultEpsilon = 1e-6

// factors are the sizing attributes copied by the swap.
var factors = []string{
	domain.FieldHeatingSizingFactor,
	domain.FieldCoolingSizingFactor,
}

// Swapper implements the sizing-parameter swap.
type Swapper struct {
	epsilon float64
}

// Option configures the swapper.
type Option func(*Swapper)

// WithEpsilon sets the equality tolerance.
func WithEpsilon(eps float64) Option {
	return func(s *Swapper) {
		if eps > 0 {
			s.epsilon = eps
		}
	}
}

// New creates a sizing swapper.
func New(opts ...Option) *Swapper {
	s := &Swapper{epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapSizing
}

// Swap copies each factor that differs by more than epsilon.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	ref, err := singleton(source, "reference model")
	if err != nil {
		return report, err
	}
	act, err := singleton(target, "actual model")
	if err != nil {
		return report, err
	}

	for _, field := range factors {
		want, err := transplant.RequireNumber(ref, field)
		if err != nil {
			return report, err
		}
		if have, ok := act.Number(field); ok && math.Abs(have-want) <= s.epsilon {
			report.Skipped = append(report.Skipped, field)
			continue
		}
		if err := act.SetNumber(field, want); err != nil {
			return report, err
		}
		logger.Info("%s: %g", field, want)
		report.Applied++
	}

	return report, nil
}

func singleton(doc driven.ModelDocument, which string) (driven.ModelObject, error) {
	objs := doc.Objects(domain.TypeSizingParams)
	if len(objs) == 0 {
		return nil, &domain.InitError{Object: which, Attribute: domain.TypeSizingParams}
	}
	return objs[0], nil
}
