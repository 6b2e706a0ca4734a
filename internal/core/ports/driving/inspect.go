package driving

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// InspectService describes objects of a model file.
type InspectService interface {
	// Describe finds the object with the given handle or name and walks its
	// parent chain. A non-empty query keeps only fields whose name contains
	// it, case-insensitively.
	Describe(ctx context.Context, path, ref, query string) (*domain.Inspection, error)
}
