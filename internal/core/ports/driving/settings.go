package driving

import "github.com/custodia-labs/phonet/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetOutputFormat updates the default output format.
	SetOutputFormat(format domain.OutputFormat) error

	// SetVoicelessDiacritic updates where the voiceless ring is drawn.
	SetVoicelessDiacritic(placement domain.DiacriticPlacement) error

	// SetStorageBackend updates where inventories are kept. An empty
	// dataDir keeps the default location.
	SetStorageBackend(backend domain.StorageBackend, dataDir string) error

	// SetMCPRateLimit updates the MCP HTTP rate limit.
	SetMCPRateLimit(rate float64, burst int) error

	// Validate checks that current settings are consistent.
	Validate() error

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
