// Package spacetype writes standards tags onto the actual model's space types.
package spacetype

import (
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/phrase"
)

// Verify interface compliance.
var _ driven.Swapper = (*Swapper)(nil)

// Swapper implements the space-type tagging swap.
type Swapper struct {
	catalog domain.StandardsCatalog
}

// New creates a space-type swapper over catalog.
// An empty catalog falls back to the default one.
func New(catalog domain.StandardsCatalog) *Swapper {
	if catalog.Len() == 0 {
		catalog = domain.DefaultStandardsCatalog()
	}
	return &Swapper{catalog: catalog}
}

// Name returns the swapper name.
func (s *Swapper) Name() string {
	return domain.SwapSpaceType
}

// Swap tags every space type of the actual model. Names found verbatim in
// the catalog use that entry; others use the closest phrase.
func (s *Swapper) Swap(ctx context.Context, _, target driven.ModelDocument) (domain.StepReport, error) {
	report := domain.StepReport{Swapper: s.Name()}

	for _, st := range target.Objects(domain.TypeSpaceType) {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		key, err := s.resolve(st.Name())
		if err != nil {
			return report, err
		}
		tag, _ := s.catalog.Lookup(key)

		for field, value := range map[string]string{
			domain.FieldStandardsTemplate:     tag.Template,
			domain.FieldStandardsBuildingType: tag.BuildingType,
			domain.FieldStandardsSpaceType:    tag.SpaceType,
		} {
			if err := st.SetString(field, value); err != nil {
				return report, err
			}
		}
		logger.Info("%s -> %s (%s, %s, %s)", st.Name(), key, tag.Template, tag.BuildingType, tag.SpaceType)
		report.Applied++
	}

	return report, nil
}

// resolve picks the catalog key for a space-type name.
func (s *Swapper) resolve(name string) (string, error) {
	if _, ok := s.catalog.Lookup(name); ok {
		return name, nil
	}
	return phrase.MatchPhrase(name, s.catalog.Keys())
}
