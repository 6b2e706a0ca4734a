package driving

import "github.com/custodia-labs/osmswap/internal/core/domain"

// SettingsService manages swap settings.
type SettingsService interface {
	// Get resolves the current settings, filling unset keys with defaults.
	Get() (domain.SwapSettings, error)

	// Set validates and persists a single configuration key.
	Set(key, value string) error

	// GetDefaults returns the built-in settings.
	GetDefaults() domain.SwapSettings
}
