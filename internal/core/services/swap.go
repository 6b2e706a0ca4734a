package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/core/ports/driving"
	"github.com/custodia-labs/osmswap/internal/logger"
)

// Ensure SwapService implements the interface.
var _ driving.SwapService = (*SwapService)(nil)

// DefaultHistoryKeep is how many runs are kept after each recorded run.
const DefaultHistoryKeep = 200

// SwapService runs the swap pipeline over a reference and an actual model.
type SwapService struct {
	documents driven.DocumentStore
	workflows driven.WorkflowStore
	pipelines driven.SwapPipelineFactory
	history   driven.HistoryStore

	now         func() time.Time
	newID       func() string
	historyKeep int
}

// NewSwapService creates a new swap service.
// History is optional - if nil, runs are not recorded.
func NewSwapService(
	documents driven.DocumentStore,
	workflows driven.WorkflowStore,
	pipelines driven.SwapPipelineFactory,
	history driven.HistoryStore,
) *SwapService {
	return &SwapService{
		documents:   documents,
		workflows:   workflows,
		pipelines:   pipelines,
		history:     history,
		now:         time.Now,
		newID:       uuid.NewString,
		historyKeep: DefaultHistoryKeep,
	}
}

// SetHistoryKeep changes how many runs survive pruning.
func (s *SwapService) SetHistoryKeep(keep int) {
	s.historyKeep = keep
}

// inputs are the resolved paths of one run.
type inputs struct {
	workflow   string
	actual     string
	reference  string
	weather    string
	measureDir string
}

// Outputs returns the model and workflow paths a run would write.
func (s *SwapService) Outputs(req domain.SwapRequest) (modelOut, workflowOut string) {
	actual, workflow := req.ActualPath, req.WorkflowPath
	if p, err := realPath(actual, false); err == nil {
		actual = p
	}
	if p, err := realPath(workflow, false); err == nil {
		workflow = p
	}
	return swapPath(actual), swapPath(workflow)
}

// Run validates every input path, applies the enabled swappers to the
// actual model and writes the swapped model, then the rewritten workflow.
// Nothing is written when any step fails.
func (s *SwapService) Run(ctx context.Context, req domain.SwapRequest) (*domain.SwapResult, error) {
	if s.documents == nil || s.workflows == nil || s.pipelines == nil {
		return nil, fmt.Errorf("swap service: %w", domain.ErrNotImplemented)
	}

	record := &domain.RunRecord{
		ID:            s.newID(),
		StartedAt:     s.now(),
		WorkflowPath:  req.WorkflowPath,
		ActualPath:    req.ActualPath,
		ReferencePath: req.ReferencePath,
		WeatherPath:   req.WeatherPath,
	}

	result, err := s.run(ctx, req, record)

	record.EndedAt = s.now()
	if err != nil {
		record.Error = err.Error()
	} else {
		record.Success = true
		record.ModelOut = result.ModelOut
		record.WorkflowOut = result.WorkflowOut
	}
	if req.Settings.HistoryEnabled {
		s.recordRun(ctx, record)
	}

	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *SwapService) run(ctx context.Context, req domain.SwapRequest, record *domain.RunRecord) (*domain.SwapResult, error) {
	// 1. Resolve inputs before anything is loaded
	in, err := resolveInputs(req)
	if err != nil {
		return nil, err
	}
	record.WorkflowPath = in.workflow
	record.ActualPath = in.actual
	record.ReferencePath = in.reference
	record.WeatherPath = in.weather

	// 2. Load
	reference, err := s.documents.Load(ctx, in.reference)
	if err != nil {
		return nil, fmt.Errorf("load reference model: %w", err)
	}
	actual, err := s.documents.Load(ctx, in.actual)
	if err != nil {
		return nil, fmt.Errorf("load actual model: %w", err)
	}
	wf, err := s.workflows.Load(ctx, in.workflow)
	if err != nil {
		return nil, fmt.Errorf("load workflow: %w", err)
	}

	// 3. Swap
	pipeline, err := s.pipelines.NewPipeline(req.Settings)
	if err != nil {
		return nil, fmt.Errorf("build pipeline: %w", err)
	}
	steps, err := pipeline.Run(ctx, reference, actual)
	record.Steps = steps
	if err != nil {
		return nil, err
	}

	// 4. Rewrite the workflow
	modelOut, workflowOut := swapPath(in.actual), swapPath(in.workflow)
	wf.Retarget(modelOut, in.weather)
	if in.measureDir != "" {
		wf.ReplaceSteps(in.measureDir, req.Settings.Workflow.Arguments)
	}

	// 5. Save model first; the workflow points at it
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.documents.Save(ctx, actual, modelOut); err != nil {
		return nil, fmt.Errorf("save model: %w", err)
	}
	if err := s.workflows.Save(ctx, wf, workflowOut); err != nil {
		return nil, fmt.Errorf("save workflow: %w", err)
	}

	logger.Info("Wrote model %s", modelOut)
	logger.Info("Wrote workflow %s", workflowOut)

	return &domain.SwapResult{
		RunID:       record.ID,
		ModelOut:    modelOut,
		WorkflowOut: workflowOut,
		Steps:       steps,
	}, nil
}

func resolveInputs(req domain.SwapRequest) (inputs, error) {
	var in inputs
	var err error

	if in.workflow, err = realPath(req.WorkflowPath, false); err != nil {
		return in, fmt.Errorf("workflow: %w", err)
	}
	if in.actual, err = realPath(req.ActualPath, false); err != nil {
		return in, fmt.Errorf("actual model: %w", err)
	}
	if in.reference, err = realPath(req.ReferencePath, false); err != nil {
		return in, fmt.Errorf("reference model: %w", err)
	}
	if req.WeatherPath != "" {
		if in.weather, err = realPath(req.WeatherPath, false); err != nil {
			return in, fmt.Errorf("weather file: %w", err)
		}
	}
	if dir := req.Settings.Workflow.MeasureDir; dir != "" {
		if in.measureDir, err = realPath(dir, true); err != nil {
			return in, fmt.Errorf("measure directory: %w", err)
		}
	}
	if in.actual == in.reference {
		return in, fmt.Errorf("%w: actual and reference model are the same file", domain.ErrInvalidInput)
	}
	return in, nil
}

// recordRun stores the run and prunes old ones. Failures are logged only.
func (s *SwapService) recordRun(ctx context.Context, record *domain.RunRecord) {
	if s.history == nil {
		return
	}
	// Record even when the run itself was cancelled
	ctx = context.WithoutCancel(ctx)
	if err := s.history.Record(ctx, record); err != nil {
		logger.Warn("failed to record run %s: %v", record.ID, err)
		return
	}
	if s.historyKeep > 0 {
		if err := s.history.Prune(ctx, s.historyKeep); err != nil {
			logger.Warn("failed to prune history: %v", err)
		}
	}
}
