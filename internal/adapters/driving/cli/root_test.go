package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/osmswap/internal/logger"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "osmswap", rootCmd.Use)
}

func TestRootCmd_Subcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"swap", "watch", "inspect", "history", "settings", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_VerboseSetsLogger(t *testing.T) {
	level := logger.GetLevel()
	defer logger.SetLevel(level)
	logger.SetVerbose(false)

	_, err := execute("--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())
}

func TestExecute_WiresServices(t *testing.T) {
	origVersion := version
	origSwap, origHistory, origSettings, origInspect := swapService, historyService, settingsService, inspectService
	defer func() {
		version = origVersion
		swapService, historyService, settingsService, inspectService = origSwap, origHistory, origSettings, origInspect
		rootCmd.SetArgs(nil)
	}()

	resetFlags()
	rootCmd.SetArgs([]string{"version"})
	s := Services{
		Swap:     &mockSwapService{},
		History:  &mockHistoryService{},
		Settings: newMockSettingsService(),
		Inspect:  &mockInspectService{},
	}

	require.NoError(t, Execute("1.2.3", s))
	assert.Equal(t, "1.2.3", version)
	assert.Equal(t, s.Swap, swapService)
	assert.Equal(t, s.Inspect, inspectService)
}
