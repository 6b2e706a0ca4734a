package driven

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// WorkflowStore loads and saves workflow descriptions.
type WorkflowStore interface {
	// Load reads the workflow stored at path.
	Load(ctx context.Context, path string) (*domain.Workflow, error)

	// Save writes the workflow to path.
	Save(ctx context.Context, wf *domain.Workflow, path string) error
}
