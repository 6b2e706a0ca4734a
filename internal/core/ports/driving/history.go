package driving

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// HistoryService exposes past swap runs.
type HistoryService interface {
	// Recent returns up to limit runs, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Get returns a single run.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)
}
