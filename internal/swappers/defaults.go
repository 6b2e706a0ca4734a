package swappers

import (
	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/swappers/airloop"
	"github.com/custodia-labs/osmswap/internal/swappers/construction"
	"github.com/custodia-labs/osmswap/internal/swappers/designday"
	"github.com/custodia-labs/osmswap/internal/swappers/equipment"
	"github.com/custodia-labs/osmswap/internal/swappers/lighting"
	"github.com/custodia-labs/osmswap/internal/swappers/sizing"
	"github.com/custodia-labs/osmswap/internal/swappers/spacetype"
)

// RegisterDefaults registers all built-in swappers with the registry.
func RegisterDefaults(r *Registry) {
	r.Register(domain.SwapConstruction, buildConstruction)
	r.Register(domain.SwapSizing, buildSizing)
	r.Register(domain.SwapDesignDay, buildDesignDay)
	r.Register(domain.SwapAirLoop, buildAirLoop)
	r.Register(domain.SwapEquipment, buildEquipment)
	r.Register(domain.SwapLighting, buildLighting)
	r.Register(domain.SwapSpaceType, buildSpaceType)
}

// NewDefaultRegistry returns a registry holding every built-in swapper.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	RegisterDefaults(r)
	return r
}

func buildConstruction(s domain.SwapSettings) (driven.Swapper, error) {
	c := s.Construction
	return construction.New(
		construction.WithSurfaceTypes(c.SurfaceTypes...),
		construction.WithBoundaryConditions(c.BoundaryConditions...),
		construction.WithAreaEpsilon(c.AreaEpsilon),
		construction.WithMatchMode(c.Matching),
	), nil
}

func buildSizing(s domain.SwapSettings) (driven.Swapper, error) {
	return sizing.New(sizing.WithEpsilon(s.Sizing.Epsilon)), nil
}

func buildDesignDay(s domain.SwapSettings) (driven.Swapper, error) {
	return designday.New(designday.WithInsertionPolicy(s.Insertion)), nil
}

func buildAirLoop(domain.SwapSettings) (driven.Swapper, error) {
	return airloop.New(), nil
}

func buildEquipment(s domain.SwapSettings) (driven.Swapper, error) {
	return equipment.New(
		equipment.WithToken(s.Equipment.Token),
		equipment.WithIdempotent(s.Equipment.Idempotent),
		equipment.WithInsertionPolicy(s.Insertion),
	), nil
}

func buildLighting(s domain.SwapSettings) (driven.Swapper, error) {
	l := s.Lighting
	return lighting.New(
		lighting.WithSchedule(l.Schedule),
		lighting.WithSensorToken(l.SensorToken),
		lighting.WithNameToken(l.NameToken),
		lighting.WithInsertionPolicy(s.Insertion),
	), nil
}

func buildSpaceType(s domain.SwapSettings) (driven.Swapper, error) {
	return spacetype.New(s.Standards), nil
}
