package domain

import (
	"encoding/json"
	"path/filepath"
)

// WorkflowStep is one measure invocation in a workflow description.
type WorkflowStep struct {
	MeasureDirName string
	Arguments      map[string]any

	// Extra keeps step keys the workflow format defines but osmswap does not edit.
	Extra map[string]json.RawMessage
}

// Workflow is the JSON sidecar telling a simulation run which model,
// weather file and measures to use.
type Workflow struct {
	SeedFile     string
	WeatherFile  string
	MeasurePaths []string
	Steps        []WorkflowStep

	// Extra keeps top-level keys osmswap does not edit, verbatim.
	Extra map[string]json.RawMessage
}

// Retarget points the workflow at a new seed model and, when weather is
// not empty, a new weather file.
func (w *Workflow) Retarget(seed, weather string) {
	w.SeedFile = seed
	if weather != "" {
		w.WeatherFile = weather
	}
}

// ReplaceSteps makes measureDir the only step of the workflow and adds its
// parent directory as the measure search path.
func (w *Workflow) ReplaceSteps(measureDir string, args map[string]any) {
	parent, name := filepath.Split(filepath.Clean(measureDir))
	w.MeasurePaths = []string{filepath.Clean(parent)}
	if args == nil {
		args = map[string]any{}
	}
	w.Steps = []WorkflowStep{{
		MeasureDirName: name,
		Arguments:      args,
	}}
}
