// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
//   - SwapService: path checks, load, swap pipeline, workflow rewrite, save
//   - HistoryService: recorded runs
//   - SettingsService: swap settings from the config store
//   - InspectService: object and parent-chain introspection
package services
