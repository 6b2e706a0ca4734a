package cli

import (
	"bytes"
	"context"

	"github.com/custodia-labs/osmswap/internal/core/domain"
)

type mockSwapService struct {
	lastReq domain.SwapRequest
	calls   int
	result  *domain.SwapResult
	err     error
}

func (m *mockSwapService) Run(_ context.Context, req domain.SwapRequest) (*domain.SwapResult, error) {
	m.calls++
	m.lastReq = req
	if m.err != nil {
		return nil, m.err
	}
	return m.result, nil
}

func (m *mockSwapService) Outputs(req domain.SwapRequest) (modelOut, workflowOut string) {
	return req.ActualPath + ".swap", req.WorkflowPath + ".swap"
}

type mockSettingsService struct {
	settings domain.SwapSettings
	getErr   error
	setErr   error
	set      map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{
		settings: domain.DefaultSwapSettings(),
		set:      make(map[string]string),
	}
}

func (m *mockSettingsService) Get() (domain.SwapSettings, error) {
	if m.getErr != nil {
		return domain.SwapSettings{}, m.getErr
	}
	s := m.settings
	s.Enabled = make(map[string]bool, len(m.settings.Enabled))
	for k, v := range m.settings.Enabled {
		s.Enabled[k] = v
	}
	return s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.set[key] = value
	return nil
}

func (m *mockSettingsService) GetDefaults() domain.SwapSettings {
	return domain.DefaultSwapSettings()
}

type mockHistoryService struct {
	runs  []domain.RunRecord
	limit int
	err   error
}

func (m *mockHistoryService) Recent(_ context.Context, limit int) ([]domain.RunRecord, error) {
	m.limit = limit
	return m.runs, m.err
}

func (m *mockHistoryService) Get(_ context.Context, id string) (*domain.RunRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	for i := range m.runs {
		if m.runs[i].ID == id {
			return &m.runs[i], nil
		}
	}
	return nil, domain.ErrNotFound
}

type mockInspectService struct {
	inspection *domain.Inspection
	path, ref  string
	query      string
	err        error
}

func (m *mockInspectService) Describe(_ context.Context, path, ref, query string) (*domain.Inspection, error) {
	m.path, m.ref, m.query = path, ref, query
	return m.inspection, m.err
}

// resetFlags clears package-level flag state left by a previous Execute.
func resetFlags() {
	for _, t := range swapToggles {
		*t = toggle{}
	}
	swapMatching = ""
	swapOnInsert = ""
	swapMeasureDir = ""
	inspectQuery = ""
	historyLimit = 0
	verbose = false
}

// execute runs the root command with args and returns its output.
func execute(args ...string) (string, error) {
	resetFlags()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	return buf.String(), err
}
