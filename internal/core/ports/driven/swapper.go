package driven

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// Swapper copies one category of objects from a reference document into
// an actual document. Swappers are chained in a pipeline in a fixed order.
type Swapper interface {
	// Name returns the swapper name for logging and configuration.
	Name() string

	// Swap mutates target in place using source as the reference.
	// Source is never modified.
	Swap(ctx context.Context, source, target ModelDocument) (domain.StepReport, error)
}

// SwapPipeline chains multiple Swappers.
type SwapPipeline interface {
	// Run applies every swapper in order and returns one report per swapper.
	// The first failing swapper aborts the pipeline.
	Run(ctx context.Context, source, target ModelDocument) ([]domain.StepReport, error)
}

// SwapPipelineFactory builds the pipeline for one run's settings.
type SwapPipelineFactory interface {
	// NewPipeline returns the enabled swappers in execution order.
	NewPipeline(settings domain.SwapSettings) (SwapPipeline, error)
}
