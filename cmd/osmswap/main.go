// Package main is the osmswap entry point. It wires adapters to services
// and hands them to the CLI.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/osmswap/internal/adapters/driven/config/file"
	"github.com/custodia-labs/osmswap/internal/adapters/driven/osm"
	"github.com/custodia-labs/osmswap/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/osmswap/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/osmswap/internal/adapters/driven/workflow"
	"github.com/custodia-labs/osmswap/internal/adapters/driving/cli"
	"github.com/custodia-labs/osmswap/internal/core/ports/driven"
	"github.com/custodia-labs/osmswap/internal/core/services"
	"github.com/custodia-labs/osmswap/internal/logger"
	"github.com/custodia-labs/osmswap/internal/swappers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("failed to open config: %w", err)
	}

	var history driven.HistoryStore
	store, err := sqlite.NewStore("")
	if err != nil {
		logger.Warn("history database unavailable, runs kept in memory: %v", err)
		history = memory.NewHistoryStore()
	} else {
		defer store.Close()
		history = store.HistoryStore()
	}

	documents := osm.NewStore()
	settingsService := services.NewSettingsService(configStore)

	return cli.Execute(version, cli.Services{
		Swap: services.NewSwapService(
			documents,
			workflow.NewStore(),
			swappers.NewDefaultRegistry(),
			history,
		),
		History:  services.NewHistoryService(history),
		Settings: settingsService,
		Inspect:  services.NewInspectService(documents),
	})
}
