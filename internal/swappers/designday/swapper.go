// Package designday replaces the actual model's design days with copies of
// the reference model's design days.
package designday

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// Swapper implements the design-day swap.
type Swapper struct {
	policy domain.InsertionPolicy
}

// Option configures the swapper.
type Option func(*Swapper)

// WithInsertionPolicy sets what happens when a design day is rejected.
func WithInsertionPolicy(p domain.InsertionPolicy) Option {
	return func(s *Swapper) {
		if p.IsValid() {
			s.policy = p
		}
	}
}

// New creates a design-day swapper.
func New(opts ...Option) *Swapper {
	s := &Swapper{policy: domain.InsertionFailFast}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapDesignDay
}

// Swap removes every target design day, then copies every source one.
func (s *Swapper) Swap(ctx context.Context, source, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}
	if err := ctx.Err(); err != nil {
		return report, err
	}

	for _, dd := range target.Objects(domain.TypeDesignDay) {
		logger.Debug("Removing design day: %s", dd.Name())
		if err := dd.Remove(); err != nil {
			return report, err
		}
	}

	for _, dd := range source.Objects(domain.TypeDesignDay) {
		copied, err := transplant.Transplant(source, target, dd)
		if transplant.Skippable(s.policy, err) {
			logger.Warn("Skipping design day %s: %v", dd.Name(), err)
			report.Skipped = append(report.Skipped, dd.Name())
			continue
		}
		if err != nil {
			return report, err
		}
		logger.Info("Added design day: %s", copied.Name())
		report.Applied++
	}

	return report, nil
}
