// Package swappers provides the swap pipeline and the registry of
// built-in swappers.
package swappers

import (
	"context"
	"fmt"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
)

// Verify interface compliance.
var _ driven.SwapPipeline = (*Pipeline)(nil)

// Pipeline chains multiple Swappers and runs them in order.
// It implements the SwapPipeline interface.
type Pipeline struct {
	swappers []driven.Swapper
}

// NewPipeline creates a new pipeline with the given swappers.
// Swappers are executed in the order provided.
func NewPipeline(swappers ...driven.Swapper) *Pipeline {
	return &Pipeline{
		swappers: swappers,
	}
}

// Run applies every swapper to target in order. The first error aborts the
// run; reports of the swappers that completed are still returned.
func (p *Pipeline) Run(ctx context.Context, source, target driven.ModelDocument) ([]domain.StepReport, error) {
	if source == nil || target == nil {
		return nil, fmt.Errorf("%w: source and target documents are required", domain.ErrInvalidInput)
	}

	reports := make([]domain.StepReport, 0, len(p.swappers))
	for _, s := range p.swappers {
		if err := ctx.Err(); err != nil {
			return reports, err
		}

		logger.Section(s.Name())
		report, err := s.Swap(ctx, source, target)
		if err != nil {
			return reports, fmt.Errorf("swapper %s: %w", s.Name(), err)
		}
		if report.Swapper == "" {
			report.Swapper = s.Name()
		}
		logger.Debug("%s: applied %d, skipped %d", s.Name(), report.Applied, len(report.Skipped))
		reports = append(reports, report)
	}

	return reports, nil
}

// Add appends a swapper to the pipeline.
func (p *Pipeline) Add(s driven.Swapper) {
	p.swappers = append(p.swappers, s)
}

// Len returns the number of swappers in the pipeline.
func (p *Pipeline) Len() int {
	return len(p.swappers)
}

// Names returns the swapper names in execution order.
func (p *Pipeline) Names() []string {
	names := make([]string, len(p.swappers))
	for i, s := range p.swappers {
		names[i] = s.Name()
	}
	return names
}
