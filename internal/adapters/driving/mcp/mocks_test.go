package mcp

import (
	"context"

	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/services"
)

// newTestPorts wires real services over in-memory stores.
func newTestPorts() *Ports {
	config := memory.NewConfigStore()
	transcription := services.NewTranscriptionService(config)
	features := services.NewFeatureService(transcription)
	return &Ports{
		Transcription: transcription,
		Features:      features,
		Inventory:     services.NewInventoryService(memory.NewInventoryStore(), features),
		Settings:      services.NewSettingsService(config),
	}
}

// mockInventoryService is a mock implementation of driving.InventoryService.
type mockInventoryService struct {
	inventories []domain.Inventory
	inventory   *domain.Inventory
	members     []domain.Realization
	err         error
}

func (m *mockInventoryService) Create(_ context.Context, _, _ string, _ []string) (*domain.Inventory, error) {
	return m.inventory, m.err
}

func (m *mockInventoryService) Get(_ context.Context, _ string) (*domain.Inventory, error) {
	return m.inventory, m.err
}

func (m *mockInventoryService) List(_ context.Context) ([]domain.Inventory, error) {
	return m.inventories, m.err
}

func (m *mockInventoryService) Remove(_ context.Context, _ string) error {
	return m.err
}

func (m *mockInventoryService) Generalize(_ context.Context, _ string) (*domain.NaturalClass, error) {
	return nil, m.err
}

func (m *mockInventoryService) Filter(_ context.Context, _ string, _ domain.Phonet) ([]domain.Realization, error) {
	return m.members, m.err
}

// mockSettingsService is a mock implementation of driving.SettingsService.
type mockSettingsService struct {
	settings *domain.AppSettings
	err      error
}

func (m *mockSettingsService) Get() (*domain.AppSettings, error) {
	return m.settings, m.err
}

func (m *mockSettingsService) Save(_ *domain.AppSettings) error { return m.err }

func (m *mockSettingsService) SetOutputFormat(_ domain.OutputFormat) error { return m.err }

func (m *mockSettingsService) SetVoicelessDiacritic(_ domain.DiacriticPlacement) error {
	return m.err
}

func (m *mockSettingsService) SetStorageBackend(_ domain.StorageBackend, _ string) error {
	return m.err
}

func (m *mockSettingsService) SetMCPRateLimit(_ float64, _ int) error { return m.err }

func (m *mockSettingsService) Validate() error { return m.err }

func (m *mockSettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}
