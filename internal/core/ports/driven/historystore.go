package driven

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// HistoryStore persists swap run records.
type HistoryStore interface {
	// Record stores a run and its step reports.
	Record(ctx context.Context, run *domain.RunRecord) error

	// Get retrieves one run by ID.
	// Returns domain.ErrNotFound if the run does not exist.
	Get(ctx context.Context, id string) (*domain.RunRecord, error)

	// Recent returns up to limit runs, most recent first.
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)

	// Prune removes all but the most recent keep runs.
	Prune(ctx context.Context, keep int) error
}
