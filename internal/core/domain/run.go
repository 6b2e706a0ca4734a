package domain

import "time"

// StepReport summarises what one swapper did to the target document.
type StepReport struct {
	// Swapper is the swapper name.
	Swapper string

	// Applied counts objects transplanted or attributes written.
	Applied int

	// Skipped names objects left untouched (idempotent skips, skip-and-log
	// insertion failures, already-equal values).
	Skipped []string
}

// RunRecord is the outcome of one swap run.
type RunRecord struct {
	// ID is the unique identifier for the run.
	ID string

	StartedAt time.Time
	EndedAt   time.Time

	// Inputs.
	WorkflowPath  string
	ActualPath    string
	ReferencePath string
	WeatherPath   string

	// Outputs, empty when the run failed.
	ModelOut    string
	WorkflowOut string

	// Success indicates whether the run completed without error.
	Success bool

	// Error contains the error message if Success is false.
	Error string

	// Steps holds one report per swapper that ran.
	Steps []StepReport
}

// Duration returns how long the run took.
func (r RunRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// Applied returns the total number of applied changes across all steps.
func (r RunRecord) Applied() int {
	n := 0
	for _, s := range r.Steps {
		n += s.Applied
	}
	return n
}
