package workflow

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/custodia-labs/osmswap/internal/core/domain"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.WorkflowStore = (*Store)(nil)

// Workflow keys interpreted by osmswap.
const (
	keySeedFile       = "seed_file"
	keyWeatherFile    = "weather_file"
	keyMeasurePaths   = "measure_paths"
	keySteps          = "steps"
	keyMeasureDirName = "measure_dir_name"
	keyArguments      = "arguments"
)

const indent = "    "

// Store reads and writes workflow JSON files.
type Store struct{}

// NewStore creates a workflow store.
func NewStore() *Store {
	return &Store{}
}

// Load reads the workflow at path.
func (s *Store) Load(ctx context.Context, path string) (*domain.Workflow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", domain.ErrPathNotFound, path)
	}
	if err != nil {
		return nil, fmt.Errorf("read workflow: %w", err)
	}

	wf, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wf, nil
}

// Save writes wf to path with 4-space indentation.
func (s *Store) Save(ctx context.Context, wf *domain.Workflow, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if wf == nil {
		return fmt.Errorf("%w: nil workflow", domain.ErrInvalidInput)
	}

	data, err := Encode(wf)
	if err != nil {
		return fmt.Errorf("encode workflow: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write workflow: %w", err)
	}
	return nil
}

// Decode parses a workflow document.
func Decode(data []byte) (*domain.Workflow, error) {
	var top map[string]json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidInput, err)
	}
	if top == nil {
		return nil, fmt.Errorf("%w: workflow is not a JSON object", domain.ErrInvalidInput)
	}

	wf := &domain.Workflow{}
	if err := take(top, keySeedFile, &wf.SeedFile); err != nil {
		return nil, err
	}
	if err := take(top, keyWeatherFile, &wf.WeatherFile); err != nil {
		return nil, err
	}
	if err := take(top, keyMeasurePaths, &wf.MeasurePaths); err != nil {
		return nil, err
	}

	var steps []map[string]json.RawMessage
	if err := take(top, keySteps, &steps); err != nil {
		return nil, err
	}
	for i, raw := range steps {
		var step domain.WorkflowStep
		if err := take(raw, keyMeasureDirName, &step.MeasureDirName); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if err := take(raw, keyArguments, &step.Arguments); err != nil {
			return nil, fmt.Errorf("step %d: %w", i, err)
		}
		if len(raw) > 0 {
			step.Extra = raw
		}
		wf.Steps = append(wf.Steps, step)
	}

	if len(top) > 0 {
		wf.Extra = top
	}
	return wf, nil
}

// take decodes key into v and removes it from m. Absent and null keys
// leave v untouched.
func take(m map[string]json.RawMessage, key string, v any) error {
	raw, ok := m[key]
	if !ok {
		return nil
	}
	delete(m, key)
	if bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("%w: %s: %v", domain.ErrInvalidInput, key, err)
	}
	return nil
}

// Encode renders wf as indented JSON. Keys are written in sorted order.
func Encode(wf *domain.Workflow) ([]byte, error) {
	top := make(map[string]any, len(wf.Extra)+4)
	for k, v := range wf.Extra {
		top[k] = v
	}

	if wf.SeedFile != "" {
		top[keySeedFile] = wf.SeedFile
	}
	if wf.WeatherFile != "" {
		top[keyWeatherFile] = wf.WeatherFile
	}
	if wf.MeasurePaths != nil {
		top[keyMeasurePaths] = wf.MeasurePaths
	}
	if wf.Steps != nil {
		steps := make([]map[string]any, 0, len(wf.Steps))
		for _, st := range wf.Steps {
			m := make(map[string]any, len(st.Extra)+2)
			for k, v := range st.Extra {
				m[k] = v
			}
			m[keyMeasureDirName] = st.MeasureDirName
			args := st.Arguments
			if args == nil {
				args = map[string]any{}
			}
			m[keyArguments] = args
			steps = append(steps, m)
		}
		top[keySteps] = steps
	}

	data, err := json.MarshalIndent(top, "", indent)
	if err != nil {
		return nil, err
	}
	return append(data, '\n'), nil
}
