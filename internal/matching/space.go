package matching

import (
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// MatchSpaces pairs the spaces of both documents after sorting each side
// by name. Every actual space name must contain its reference space name.
func MatchSpaces(source, target driven.ModelDocument) ([]Pair, error) {
	sources := sortedByName(source.Objects(domain.TypeSpace))
	targets := sortedByName(target.Objects(domain.TypeSpace))

	if len(sources) != len(targets) {
		return nil, &domain.MismatchError{
			What:     "space count",
			Expected: strconv.Itoa(len(sources)),
			Actual:   strconv.Itoa(len(targets)),
		}
	}

	pairs := make([]Pair, len(sources))
	for i := range sources {
		if !strings.Contains(targets[i].Name(), sources[i].Name()) {
			return nil, &domain.MismatchError{
				What:     "space name",
				Expected: sources[i].Name(),
				Actual:   targets[i].Name(),
			}
		}
		pairs[i] = Pair{Source: sources[i], Target: targets[i]}
	}
	return pairs, nil
}

func sortedByName(objs []driven.ModelObject) []driven.ModelObject {
	out := slices.Clone(objs)
	slices.SortStableFunc(out, func(a, b driven.ModelObject) int {
		return strings.Compare(a.Name(), b.Name())
	})
	return out
}
