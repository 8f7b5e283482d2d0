package services

import (
	"fmt"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyOutputFormat       = "output.format"
	keyVoicelessDiacritic = "render.voiceless_diacritic"
	keyStorageBackend     = "storage.backend"
	keyStorageDataDir     = "storage.data_dir"
	keyMCPRateLimit       = "mcp.rate_limit"
	keyMCPBurst           = "mcp.burst"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Output: domain.OutputSettings{
			Format: getEnum(s.configStore, keyOutputFormat, defaults.Output.Format),
		},
		Render: domain.RenderSettings{
			VoicelessDiacritic: getEnum(s.configStore, keyVoicelessDiacritic, defaults.Render.VoicelessDiacritic),
		},
		Storage: domain.StorageSettings{
			Backend: getEnum(s.configStore, keyStorageBackend, defaults.Storage.Backend),
			DataDir: s.configStore.GetString(keyStorageDataDir), // No default - empty means ~/.phonet/data
		},
		MCP: domain.MCPSettings{
			RateLimit: s.getFloat(keyMCPRateLimit, defaults.MCP.RateLimit),
			Burst:     s.getInt(keyMCPBurst, defaults.MCP.Burst),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(keyOutputFormat, settings.Output.Format.String()); err != nil {
		return fmt.Errorf("save output format: %w", err)
	}
	if err := s.configStore.Set(keyVoicelessDiacritic, settings.Render.VoicelessDiacritic.String()); err != nil {
		return fmt.Errorf("save voiceless diacritic: %w", err)
	}
	if err := s.configStore.Set(keyStorageBackend, settings.Storage.Backend.String()); err != nil {
		return fmt.Errorf("save storage backend: %w", err)
	}
	if settings.Storage.DataDir != "" {
		if err := s.configStore.Set(keyStorageDataDir, settings.Storage.DataDir); err != nil {
			return fmt.Errorf("save storage data_dir: %w", err)
		}
	}
	if err := s.configStore.Set(keyMCPRateLimit, settings.MCP.RateLimit); err != nil {
		return fmt.Errorf("save mcp rate_limit: %w", err)
	}
	if err := s.configStore.Set(keyMCPBurst, settings.MCP.Burst); err != nil {
		return fmt.Errorf("save mcp burst: %w", err)
	}

	return nil
}

// SetOutputFormat updates the default output format.
func (s *SettingsService) SetOutputFormat(format domain.OutputFormat) error {
	if !format.IsValid() {
		return fmt.Errorf("%w: output format %q", domain.ErrInvalidInput, format)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Output.Format = format

	return s.Save(settings)
}

// SetVoicelessDiacritic updates where the voiceless ring is drawn.
func (s *SettingsService) SetVoicelessDiacritic(placement domain.DiacriticPlacement) error {
	if !placement.IsValid() {
		return fmt.Errorf("%w: diacritic placement %q", domain.ErrInvalidInput, placement)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Render.VoicelessDiacritic = placement

	return s.Save(settings)
}

// SetStorageBackend updates where inventories are kept.
func (s *SettingsService) SetStorageBackend(backend domain.StorageBackend, dataDir string) error {
	if !backend.IsValid() {
		return fmt.Errorf("%w: storage backend %q", domain.ErrInvalidInput, backend)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.Storage.Backend = backend
	if dataDir != "" {
		settings.Storage.DataDir = dataDir
	}

	return s.Save(settings)
}

// SetMCPRateLimit updates the MCP HTTP rate limit. A zero rate disables
// limiting.
func (s *SettingsService) SetMCPRateLimit(rate float64, burst int) error {
	if rate < 0 {
		return fmt.Errorf("%w: rate limit must not be negative", domain.ErrInvalidInput)
	}
	if rate > 0 && burst < 1 {
		return fmt.Errorf("%w: burst must be at least 1", domain.ErrInvalidInput)
	}

	settings, err := s.Get()
	if err != nil {
		return err
	}
	settings.MCP.RateLimit = rate
	settings.MCP.Burst = burst

	return s.Save(settings)
}

// Validate checks that current settings are consistent.
func (s *SettingsService) Validate() error {
	settings, err := s.Get()
	if err != nil {
		return err
	}

	if !settings.Output.Format.IsValid() {
		return fmt.Errorf("invalid output format: %s", settings.Output.Format)
	}
	if !settings.Render.VoicelessDiacritic.IsValid() {
		return fmt.Errorf("invalid voiceless diacritic: %s", settings.Render.VoicelessDiacritic)
	}
	if !settings.Storage.Backend.IsValid() {
		return fmt.Errorf("invalid storage backend: %s", settings.Storage.Backend)
	}
	if settings.MCP.RateLimit < 0 {
		return fmt.Errorf("invalid mcp rate limit: %v", settings.MCP.RateLimit)
	}

	return nil
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getInt(key string, defaultVal int) int {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetInt(key)
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetFloat(key)
}

// getEnum reads a string-valued setting, falling back to defaultVal when
// the key is missing or holds an unknown value.
func getEnum[T interface {
	~string
	IsValid() bool
}](store driven.ConfigStore, key string, defaultVal T) T {
	val := store.GetString(key)
	if val == "" {
		return defaultVal
	}
	v := T(val)
	if !v.IsValid() {
		return defaultVal
	}
	return v
}
