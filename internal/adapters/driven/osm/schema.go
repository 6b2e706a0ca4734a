package osm

import (
	"slices"
	"strconv"
	"strings"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

// layout describes the fields of one object type.
type layout struct {
	// fields names the fixed fields; index 0 is always the handle.
	fields []string

	// group names the fields of one repeated group that follows the fixed
	// fields (vertex coordinates, construction layers, program lines).
	group []string

	// parent names the field holding the parent reference.
	parent string

	// parentTypes lists the types accepted by SetParent.
	parentTypes []string

	// resource objects are pulled into a component when referenced.
	resource bool

	// child objects are pulled into a component when their parent is.
	child bool

	// indirectGroup marks a repeated group of references that a component
	// does not follow; the references are blanked instead.
	indirectGroup bool
}

const fieldHandle = "Handle"

// resourcePrefixes classifies types without an explicit layout.
var resourcePrefixes = []string{
	"OS:Construction",
	"OS:Material",
	"OS:WindowMaterial",
	"OS:Schedule",
	"OS:ScheduleTypeLimits",
	"OS:DefaultConstructionSet",
	"OS:DefaultSurfaceConstructions",
	"OS:DefaultSubSurfaceConstructions",
}

var schema = map[string]*layout{
	domain.TypeVersion: {
		fields: []string{fieldHandle, "Version Identifier"},
	},
	domain.TypeComponentData: {
		fields: []string{fieldHandle, domain.FieldName, "UUID", "Version UUID",
			"Creation Timestamp", "Version Timestamp"},
		group:         []string{"Name of Object"},
		indirectGroup: true,
	},
	domain.TypeSurface: {
		fields: []string{fieldHandle, domain.FieldName, domain.FieldSurfaceType,
			domain.FieldConstruction, "Space Name", domain.FieldBoundaryCondition,
			"Outside Boundary Condition Object", "Sun Exposure", "Wind Exposure",
			"View Factor to Ground", "Number of Vertices"},
		group:       []string{"Vertex X-coordinate", "Vertex Y-coordinate", "Vertex Z-coordinate"},
		parent:      "Space Name",
		parentTypes: []string{domain.TypeSpace},
	},
	domain.TypeSpace: {
		fields: []string{fieldHandle, domain.FieldName, domain.FieldSpaceType,
			"Default Construction Set Name", "Default Schedule Set Name",
			"Direction of Relative North", "X Origin", "Y Origin", "Z Origin",
			"Building Story Name", "Thermal Zone Name", "Part of Total Floor Area",
			"Design Specification Outdoor Air Object Name", "Building Unit Name"},
	},
	domain.TypeSpaceType: {
		fields: []string{fieldHandle, domain.FieldName, "Default Construction Set Name",
			"Default Schedule Set Name", "Group Rendering Name",
			"Design Specification Outdoor Air Object Name",
			domain.FieldStandardsTemplate, domain.FieldStandardsBuildingType,
			domain.FieldStandardsSpaceType},
	},
	domain.TypeConstruction: {
		fields:   []string{fieldHandle, domain.FieldName, "Surface Rendering Name"},
		group:    []string{"Layer"},
		resource: true,
	},
	"OS:StandardsInformation:Construction": {
		fields: []string{fieldHandle, "Construction Name", "Intended Surface Type",
			"Standards Construction Type", "Perturbable Layer", "Perturbable Layer Type",
			"Other Perturbable Layer Type"},
		parent:      "Construction Name",
		parentTypes: []string{domain.TypeConstruction},
		resource:    true,
		child:       true,
	},
	"OS:Material": {
		fields: []string{fieldHandle, domain.FieldName, "Roughness", "Thickness",
			"Conductivity", "Density", "Specific Heat", "Thermal Absorptance",
			"Solar Absorptance", "Visible Absorptance"},
		resource: true,
	},
	"OS:ScheduleTypeLimits": {
		fields: []string{fieldHandle, domain.FieldName, "Lower Limit Value",
			"Upper Limit Value", "Numeric Type", "Unit Type"},
		resource: true,
	},
	domain.TypeSchedule: {
		fields: []string{fieldHandle, domain.FieldName, "Schedule Type Limits Name",
			"Default Day Schedule Name", "Summer Design Day Schedule Name",
			"Winter Design Day Schedule Name"},
		resource: true,
	},
	"OS:Schedule:Rule": {
		fields: []string{fieldHandle, domain.FieldName, "Schedule Ruleset Name",
			"Rule Order", "Day Schedule Name", "Apply Sunday", "Apply Monday",
			"Apply Tuesday", "Apply Wednesday", "Apply Thursday", "Apply Friday",
			"Apply Saturday"},
		parent:      "Schedule Ruleset Name",
		parentTypes: []string{domain.TypeSchedule},
		resource:    true,
		child:       true,
	},
	"OS:Schedule:Day": {
		fields: []string{fieldHandle, domain.FieldName, "Schedule Type Limits Name",
			"Interpolate to Timestep"},
		group:    []string{"Hour", "Minute", "Value Until Time"},
		resource: true,
	},
	domain.TypeScheduleConst: {
		fields:   []string{fieldHandle, domain.FieldName, "Schedule Type Limits Name", "Value"},
		resource: true,
	},
	domain.TypeDesignDay: {
		fields: []string{fieldHandle, domain.FieldName, "Maximum Dry-Bulb Temperature",
			"Daily Dry-Bulb Temperature Range", "Humidity Indicating Conditions at Maximum Dry-Bulb",
			"Barometric Pressure", "Wind Speed", "Wind Direction", "Sky Clearness",
			"Rain Indicator", "Snow Indicator", "Day of Month", "Month", "Day Type",
			"Daylight Saving Time Indicator", "Humidity Indicating Type"},
	},
	domain.TypeSizingParams: {
		fields: []string{fieldHandle, domain.FieldHeatingSizingFactor,
			domain.FieldCoolingSizingFactor, "Timesteps in Averaging Window"},
	},
	domain.TypeElectricEquip: {
		fields: []string{fieldHandle, domain.FieldName, "Electric Equipment Definition Name",
			"Space or SpaceType Name", domain.FieldSchedule, "Multiplier", "End-Use Subcategory"},
		parent:      "Space or SpaceType Name",
		parentTypes: []string{domain.TypeSpace, domain.TypeSpaceType},
	},
	"OS:ElectricEquipment:Definition": {
		fields: []string{fieldHandle, domain.FieldName, "Design Level Calculation Method",
			"Design Level", "Watts per Space Floor Area", "Watts per Person",
			"Fraction Latent", "Fraction Radiant", "Fraction Lost"},
		resource: true,
	},
	domain.TypeLights: {
		fields: []string{fieldHandle, domain.FieldName, "Lights Definition Name",
			"Space or SpaceType Name", domain.FieldSchedule, "Fraction Replaceable",
			"Multiplier", "End-Use Subcategory"},
		parent:      "Space or SpaceType Name",
		parentTypes: []string{domain.TypeSpace, domain.TypeSpaceType},
	},
	"OS:Lights:Definition": {
		fields: []string{fieldHandle, domain.FieldName, "Design Level Calculation Method",
			"Lighting Level", "Watts per Space Floor Area", "Watts per Person",
			"Return Air Fraction", "Fraction Radiant", "Fraction Visible"},
		resource: true,
	},
	domain.TypeDaylighting: {
		fields: []string{fieldHandle, domain.FieldName, "Space Name", "Position X-Coordinate",
			"Position Y-Coordinate", "Position Z-Coordinate", "Psi Rotation Around X-Axis",
			"Theta Rotation Around Y-Axis", "Phi Rotation Around Z-Axis",
			"Illuminance Setpoint", "Lighting Control Type"},
		parent:      "Space Name",
		parentTypes: []string{domain.TypeSpace},
	},
	domain.TypeAirLoop: {
		fields: []string{fieldHandle, domain.FieldName, "Controller List Name",
			domain.FieldAvailabilitySchedule, "Availability Manager List Name",
			"Design Supply Air Flow Rate", "Design Return Air Flow Fraction of Supply Air Flow",
			"Branch List Name", "Connector List Name", "Supply Side Inlet Node Name",
			"Demand Side Outlet Node Name", "Demand Side Inlet Node A",
			"Supply Side Outlet Node A"},
	},
	domain.TypeOutdoorAirSys: {
		fields: []string{fieldHandle, domain.FieldName, domain.FieldOutdoorAirController,
			"Outdoor Air Equipment List Name", "Availability Manager List Name",
			"Mixed Air Node Name", "Outdoor Air Stream Node Name",
			"Relief Air Stream Node Name", "Return Air Stream Node Name"},
	},
	domain.TypeOutdoorAirCtrl: {
		fields: []string{fieldHandle, domain.FieldName, "Relief Air Outlet Node Name",
			"Return Air Node Name", "Mixed Air Node Name", "Actuator Node Name",
			"Minimum Outdoor Air Flow Rate", "Maximum Outdoor Air Flow Rate",
			domain.FieldEconomizerControlType, "Economizer Control Action Type"},
	},
	domain.TypeNode: {
		fields: []string{fieldHandle, domain.FieldName, "Inlet Port", "Outlet Port"},
	},
	domain.TypeConnection: {
		fields: []string{fieldHandle, domain.FieldName, "Source Object", "Outlet Port",
			"Target Object", "Inlet Port"},
	},
	domain.TypeEMSSensor: {
		fields: []string{fieldHandle, domain.FieldName,
			"Output Variable or Output Meter Index Key Name", domain.FieldEMSOutputVariable},
	},
	domain.TypeEMSActuator: {
		fields: []string{fieldHandle, domain.FieldName, "Actuated Component Name",
			domain.FieldEMSActuatedType, "Actuated Component Control Type"},
	},
	domain.TypeEMSGlobalVariable: {
		fields: []string{fieldHandle, domain.FieldName},
	},
	domain.TypeEMSInternalVariable: {
		fields: []string{fieldHandle, domain.FieldName, "Internal Data Index Key Name",
			"Internal Data Type"},
	},
	domain.TypeEMSProgram: {
		fields:   []string{fieldHandle, domain.FieldName},
		group:    []string{"Program Line"},
		resource: true,
	},
	domain.TypeEMSProgramCallingMgr: {
		fields:        []string{fieldHandle, domain.FieldName, "EnergyPlus Model Calling Point"},
		group:         []string{domain.GroupEMSPrograms},
		indirectGroup: true,
	},
}

// genericLayout describes types osmswap has no schema for.
var genericLayout = &layout{
	fields: []string{fieldHandle, domain.FieldName},
}

// layoutOf returns the layout for typ, falling back to the generic one.
func layoutOf(typ string) *layout {
	if l, ok := schema[typ]; ok {
		return l
	}
	return genericLayout
}

// isResource reports whether objects of typ travel with a component.
func isResource(typ string) bool {
	if l, ok := schema[typ]; ok {
		return l.resource
	}
	for _, prefix := range resourcePrefixes {
		if strings.HasPrefix(typ, prefix) {
			return true
		}
	}
	return false
}

// fieldIndex returns the position of a fixed field, or -1.
func (l *layout) fieldIndex(name string) int {
	return slices.Index(l.fields, name)
}

// groupIndex returns the offset of name inside the repeated group, or -1.
func (l *layout) groupIndex(name string) int {
	return slices.Index(l.group, name)
}

// fieldName names position i of an object with this layout.
// Repeated group fields are numbered from 1.
func (l *layout) fieldName(i int) string {
	if i < len(l.fields) {
		return l.fields[i]
	}
	if len(l.group) == 0 {
		return ""
	}
	off := i - len(l.fields)
	return l.group[off%len(l.group)] + " " + strconv.Itoa(off/len(l.group)+1)
}

// inGroup reports whether position i lies in the repeated group.
func (l *layout) inGroup(i int) bool {
	return len(l.group) > 0 && i >= len(l.fields)
}

// acceptsParent reports whether typ may parent objects of this layout.
func (l *layout) acceptsParent(typ string) bool {
	return l.parent != "" && slices.Contains(l.parentTypes, typ)
}
