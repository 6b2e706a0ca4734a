package domain

import "slices"

const unknownDescription = "Unknown"

// MatchMode defines how nearest-area surface matching treats reference
// surfaces claimed by more than one target surface.
type MatchMode string

// Available match modes.
const (
	// MatchModeStrict requires a one-to-one pairing and fails on reuse.
	MatchModeStrict MatchMode = "strict"

	// MatchModeNearest lets several targets share one reference surface.
	MatchModeNearest MatchMode = "nearest"
)

// IsValid returns true if the match mode is recognised.
func (m MatchMode) IsValid() bool {
	switch m {
	case MatchModeStrict, MatchModeNearest:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (m MatchMode) String() string {
	return string(m)
}

// Description returns a human-readable description of the mode.
func (m MatchMode) Description() string {
	switch m {
	case MatchModeStrict:
		return "Strict (one-to-one)"
	case MatchModeNearest:
		return "Nearest (many-to-one allowed)"
	default:
		return unknownDescription
	}
}

// InsertionPolicy decides what a bulk swapper does when the target
// document rejects a component.
type InsertionPolicy string

// Available insertion policies.
const (
	// InsertionFailFast aborts the run on the first rejected component.
	InsertionFailFast InsertionPolicy = "fail"

	// InsertionSkip logs the rejected component and continues.
	InsertionSkip InsertionPolicy = "skip"
)

// IsValid returns true if the policy is recognised.
func (p InsertionPolicy) IsValid() bool {
	switch p {
	case InsertionFailFast, InsertionSkip:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (p InsertionPolicy) String() string {
	return string(p)
}

// Description returns a human-readable description of the policy.
func (p InsertionPolicy) Description() string {
	switch p {
	case InsertionFailFast:
		return "Fail fast"
	case InsertionSkip:
		return "Skip and log"
	default:
		return unknownDescription
	}
}

// Swapper names in their fixed execution order.
const (
	SwapConstruction = "construction"
	SwapSizing       = "sizing"
	SwapDesignDay    = "designday"
	SwapAirLoop      = "airloop"
	SwapEquipment    = "equipment"
	SwapLighting     = "lighting"
	SwapSpaceType    = "spacetype"
)

// SwapOrder returns every swapper name in execution order.
func SwapOrder() []string {
	return []string{
		SwapConstruction,
		SwapSizing,
		SwapDesignDay,
		SwapAirLoop,
		SwapEquipment,
		SwapLighting,
		SwapSpaceType,
	}
}

// ConstructionSettings configures the surface matcher and construction swap.
type ConstructionSettings struct {
	// SurfaceTypes filters surfaces by their surface-type tag.
	SurfaceTypes []string

	// BoundaryConditions filters surfaces by their outside boundary condition.
	BoundaryConditions []string

	// AreaEpsilon is the largest accepted gross-area difference.
	AreaEpsilon float64

	// Matching selects strict or permissive nearest-area matching.
	Matching MatchMode
}

// SizingSettings configures the sizing-parameter swap.
type SizingSettings struct {
	// Epsilon below which two sizing factors are considered equal.
	Epsilon float64
}

// EquipmentSettings configures the electric-equipment swap.
type EquipmentSettings struct {
	// Token selects source equipment by case-insensitive name containment.
	Token string

	// Idempotent skips equipment already transplanted from the same source.
	Idempotent bool
}

// LightingSettings configures the lighting and EMS swap.
type LightingSettings struct {
	// Schedule names the target schedule assigned to transplanted lights.
	Schedule string

	// SensorToken selects EMS sensors and actuators by variable or component type.
	SensorToken string

	// NameToken selects EMS variables and program calling managers by name.
	NameToken string
}

// WorkflowSettings configures the optional workflow steps rewrite.
type WorkflowSettings struct {
	// MeasureDir is the measure directory run by the rewritten workflow.
	// Empty leaves measure_paths and steps untouched.
	MeasureDir string

	// Arguments are passed to the measure step.
	Arguments map[string]any
}

// SwapSettings holds every tunable of one swap run.
type SwapSettings struct {
	// Enabled maps swapper names to their on/off switch.
	Enabled map[string]bool

	Construction ConstructionSettings
	Sizing       SizingSettings
	Equipment    EquipmentSettings
	Lighting     LightingSettings
	Workflow     WorkflowSettings

	// Insertion applies to bulk swappers only; structural swaps always fail fast.
	Insertion InsertionPolicy

	// Standards is the catalog used by the space-type swap.
	Standards StandardsCatalog

	// HistoryEnabled records each run in the history store.
	HistoryEnabled bool
}

// DefaultSwapSettings returns sensible defaults for a medium-office swap.
func DefaultSwapSettings() SwapSettings {
	enabled := make(map[string]bool)
	for _, name := range SwapOrder() {
		enabled[name] = true
	}

	return SwapSettings{
		Enabled: enabled,
		Construction: ConstructionSettings{
			SurfaceTypes:       []string{"Floor"},
			BoundaryConditions: []string{"GroundFCfactorMethod", "Ground", "Outdoors"},
			AreaEpsilon:        0.5,
			Matching:           MatchModeStrict,
		},
		Sizing: SizingSettings{
			Epsilon: 1e-6,
		},
		Equipment: EquipmentSettings{
			Token:      "elevator",
			Idempotent: true,
		},
		Lighting: LightingSettings{
			Schedule:    "OfficeMedium BLDG_LIGHT_SCH_2013",
			SensorToken: "Lights",
			NameToken:   "Light",
		},
		Insertion:      InsertionFailFast,
		Standards:      DefaultStandardsCatalog(),
		HistoryEnabled: true,
	}
}

// IsEnabled reports whether the named swapper should run.
// Names missing from Enabled are treated as enabled.
func (s SwapSettings) IsEnabled(name string) bool {
	on, ok := s.Enabled[name]
	return !ok || on
}

// EnabledSwappers returns the enabled swapper names in execution order.
func (s SwapSettings) EnabledSwappers() []string {
	return slices.DeleteFunc(SwapOrder(), func(name string) bool {
		return !s.IsEnabled(name)
	})
}
