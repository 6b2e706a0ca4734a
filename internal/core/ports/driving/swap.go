package driving

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// SwapService runs swaps between a reference and an actual model.
type SwapService interface {
	// Run validates the inputs, applies the enabled swappers and writes the
	// swapped model and workflow. Nothing is written when any step fails.
	Run(ctx context.Context, req domain.SwapRequest) (*domain.SwapResult, error)

	// Outputs returns the model and workflow paths a run would write.
	Outputs(req domain.SwapRequest) (modelOut, workflowOut string)
}
