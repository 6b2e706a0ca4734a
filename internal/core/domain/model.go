package domain

// Object types of the building-model format touched by the swappers.
const (
	TypeVersion        = "OS:Version"
	TypeComponentData  = "OS:ComponentData"
	TypeSurface        = "OS:Surface"
	TypeSpace          = "OS:Space"
	TypeSpaceType      = "OS:SpaceType"
	TypeConstruction   = "OS:Construction"
	TypeSchedule       = "OS:Schedule:Ruleset"
	TypeScheduleConst  = "OS:Schedule:Constant"
	TypeDesignDay      = "OS:SizingPeriod:DesignDay"
	TypeSizingParams   = "OS:Sizing:Parameters"
	TypeElectricEquip  = "OS:ElectricEquipment"
	TypeLights         = "OS:Lights"
	TypeDaylighting    = "OS:Daylighting:Control"
	TypeAirLoop        = "OS:AirLoopHVAC"
	TypeOutdoorAirSys  = "OS:AirLoopHVAC:OutdoorAirSystem"
	TypeOutdoorAirCtrl = "OS:Controller:OutdoorAir"
	TypeNode           = "OS:Node"
	TypeConnection     = "OS:Connection"

	TypeEMSSensor            = "OS:EnergyManagementSystem:Sensor"
	TypeEMSActuator          = "OS:EnergyManagementSystem:Actuator"
	TypeEMSGlobalVariable    = "OS:EnergyManagementSystem:GlobalVariable"
	TypeEMSInternalVariable  = "OS:EnergyManagementSystem:InternalVariable"
	TypeEMSProgram           = "OS:EnergyManagementSystem:Program"
	TypeEMSProgramCallingMgr = "OS:EnergyManagementSystem:ProgramCallingManager"
)

// Field names used by the swappers.
const (
	FieldName = "Name"

	// Surface.
	FieldSurfaceType       = "Surface Type"
	FieldConstruction      = "Construction Name"
	FieldBoundaryCondition = "Outside Boundary Condition"
	FieldGrossArea         = "Gross Area"

	// Space and space type.
	FieldSpaceType             = "Space Type Name"
	FieldStandardsTemplate     = "Standards Template"
	FieldStandardsBuildingType = "Standards Building Type"
	FieldStandardsSpaceType    = "Standards Space Type"

	// Loads.
	FieldSchedule = "Schedule Name"

	// Sizing parameters.
	FieldHeatingSizingFactor = "Heating Sizing Factor"
	FieldCoolingSizingFactor = "Cooling Sizing Factor"

	// Air loops.
	FieldAvailabilitySchedule  = "Availability Schedule"
	FieldOutdoorAirController  = "Controller Name"
	FieldEconomizerControlType = "Economizer Control Type"

	// EMS.
	FieldEMSOutputVariable = "Output Variable or Output Meter Name"
	FieldEMSActuatedType   = "Actuated Component Type"
	GroupEMSPrograms       = "Program Name"
)
