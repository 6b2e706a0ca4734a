package domain

// SwapRequest names the inputs of one swap run.
type SwapRequest struct {
	WorkflowPath  string
	ActualPath    string
	ReferencePath string

	// WeatherPath is optional; empty keeps the workflow's weather file.
	WeatherPath string

	Settings SwapSettings
}

// SwapResult describes the files written by a successful run.
type SwapResult struct {
	RunID       string
	ModelOut    string
	WorkflowOut string
	Steps       []StepReport
}

// FieldValue is one named field of a model object.
type FieldValue struct {
	Name  string
	Value string
}

// ObjectSummary is a read-only view of a model object.
type ObjectSummary struct {
	Handle string
	Type   string
	Name   string
	Fields []FieldValue
}

// Inspection is the result of inspecting one object: the object itself
// and its ancestors, nearest parent first.
type Inspection struct {
	Object    ObjectSummary
	Ancestors []ObjectSummary
}
