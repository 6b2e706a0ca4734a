// Package cli provides the osmswap command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/osmswap/internal/core/ports/driving"
	"github.com/custodia-labs/osmswap/internal/logger"
)

// version is set by Execute from build flags.
var version = "dev"

var verbose bool

// Services injected by the composition root.
var (
	swapService     driving.SwapService
	historyService  driving.HistoryService
	settingsService driving.SettingsService
	inspectService  driving.InspectService
)

// Services groups the driving ports the commands call.
type Services struct {
	Swap     driving.SwapService
	History  driving.HistoryService
	Settings driving.SettingsService
	Inspect  driving.InspectService
}

var rootCmd = &cobra.Command{
	Use:   "osmswap",
	Short: "Transplant reference building-model data into an actual model",
	Long: `osmswap copies constructions, sizing parameters, design days, air-loop
settings, equipment, lighting and space-type standards from a reference
building model into an actual model, then rewrites the workflow to run it.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetVerbose(true)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log every swap step")
}

// Execute wires the services and runs the root command.
func Execute(v string, s Services) error {
	if v != "" {
		version = v
	}
	swapService = s.Swap
	historyService = s.History
	settingsService = s.Settings
	inspectService = s.Inspect
	return rootCmd.Execute()
}
