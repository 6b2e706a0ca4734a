package matching

import (
	"fmt"
	"math"
	"slices"
	"strconv"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/transplant"
)

// Pair is one matched (reference, actual) object pair.
type Pair struct {
	Source driven.ModelObject
	Target driven.ModelObject

	// Diff is the absolute area difference for surface pairs.
	Diff float64
}

// SelectSurfaces filters both documents' surfaces down to those whose
// surface type is in types and whose outside boundary condition is in
// boundaries. Both filtered sets must be equally sized and non-empty.
func SelectSurfaces(source, target driven.ModelDocument, types, boundaries []string) (targets, sources []driven.ModelObject, err error) {
	keep := func(s driven.ModelObject) bool {
		st, _ := s.String(domain.FieldSurfaceType)
		bc, _ := s.String(domain.FieldBoundaryCondition)
		return slices.Contains(types, st) && slices.Contains(boundaries, bc)
	}

	for _, s := range target.Objects(domain.TypeSurface) {
		if keep(s) {
			targets = append(targets, s)
		}
	}
	for _, s := range source.Objects(domain.TypeSurface) {
		if keep(s) {
			sources = append(sources, s)
		}
	}

	if len(targets) != len(sources) || len(targets) == 0 {
		return nil, nil, &domain.MismatchError{
			What:     "filtered surface count",
			Expected: strconv.Itoa(len(sources)),
			Actual:   strconv.Itoa(len(targets)),
		}
	}
	return targets, sources, nil
}

// NearestArea returns the index of the reference area closest to area and
// the absolute difference. Ties go to the lowest index.
func NearestArea(area float64, refs []float64) (int, float64, error) {
	if len(refs) == 0 {
		return -1, 0, fmt.Errorf("nearest area: %w", domain.ErrEmptyCandidates)
	}
	best, bestDiff := 0, math.Inf(1)
	for i, r := range refs {
		if d := math.Abs(area - r); d < bestDiff {
			best, bestDiff = i, d
		}
	}
	return best, bestDiff, nil
}

// MatchSurface returns the index of the reference area nearest to the
// candidate's gross area. A minimum difference above epsilon is a
// ThresholdError.
func MatchSurface(candidate driven.ModelObject, refs []float64, epsilon float64) (int, error) {
	area, err := transplant.RequireNumber(candidate, domain.FieldGrossArea)
	if err != nil {
		return -1, err
	}
	i, diff, err := NearestArea(area, refs)
	if err != nil {
		return -1, err
	}
	if diff > epsilon {
		return -1, &domain.ThresholdError{Object: candidate.Name(), MinDiff: diff, Epsilon: epsilon}
	}
	return i, nil
}

// SurfaceMatcher pairs actual surfaces with reference surfaces by area.
type SurfaceMatcher struct {
	Epsilon float64
	Mode    domain.MatchMode
}

// Match pairs every target, in order, with its nearest source surface.
// In strict mode a source surface claimed twice fails with
// domain.ErrDuplicateMatch.
func (m SurfaceMatcher) Match(targets, sources []driven.ModelObject) ([]Pair, error) {
	areas := make([]float64, len(sources))
	for i, s := range sources {
		a, err := transplant.RequireNumber(s, domain.FieldGrossArea)
		if err != nil {
			return nil, err
		}
		areas[i] = a
	}

	claimed := make(map[int]driven.ModelObject, len(targets))
	pairs := make([]Pair, 0, len(targets))
	for _, t := range targets {
		i, err := MatchSurface(t, areas, m.Epsilon)
		if err != nil {
			return nil, err
		}
		if prev, ok := claimed[i]; ok && m.Mode != domain.MatchModeNearest {
			return nil, fmt.Errorf("%w: %s and %s both match %s",
				domain.ErrDuplicateMatch, prev.Name(), t.Name(), sources[i].Name())
		}
		claimed[i] = t

		area, _ := t.Number(domain.FieldGrossArea)
		pairs = append(pairs, Pair{Source: sources[i], Target: t, Diff: math.Abs(area - areas[i])})
	}
	return pairs, nil
}
