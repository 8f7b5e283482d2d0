package settings

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
)

// MockSettingsService is a mock implementation of driving.SettingsService.
type MockSettingsService struct {
	mock.Mock
}

func (m *MockSettingsService) Get() (*domain.AppSettings, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AppSettings), args.Error(1)
}

func (m *MockSettingsService) Save(settings *domain.AppSettings) error {
	args := m.Called(settings)
	return args.Error(0)
}

func (m *MockSettingsService) SetOutputFormat(format domain.OutputFormat) error {
	args := m.Called(format)
	return args.Error(0)
}

func (m *MockSettingsService) SetVoicelessDiacritic(placement domain.DiacriticPlacement) error {
	args := m.Called(placement)
	return args.Error(0)
}

func (m *MockSettingsService) SetStorageBackend(backend domain.StorageBackend, dataDir string) error {
	args := m.Called(backend, dataDir)
	return args.Error(0)
}

func (m *MockSettingsService) SetMCPRateLimit(rate float64, burst int) error {
	args := m.Called(rate, burst)
	return args.Error(0)
}

func (m *MockSettingsService) Validate() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockSettingsService) GetDefaults() domain.AppSettings {
	args := m.Called()
	return args.Get(0).(domain.AppSettings)
}

func testSettings() *domain.AppSettings {
	return &domain.AppSettings{
		Output:  domain.OutputSettings{Format: domain.OutputFormatText},
		Render:  domain.RenderSettings{VoicelessDiacritic: domain.DiacriticPlacementAuto},
		Storage: domain.StorageSettings{Backend: domain.StorageBackendSQLite, DataDir: "/tmp/phonet"},
		MCP:     domain.MCPSettings{RateLimit: 5, Burst: 10},
	}
}

// loadedView returns a view that has received testSettings.
func loadedView(service *MockSettingsService) *View {
	view := NewView(nil, service)
	view.SetDimensions(100, 30)
	view, _ = view.Update(messages.SettingsLoaded{Settings: testSettings()})
	return view
}

func TestNewView(t *testing.T) {
	s := styles.DefaultStyles()
	mockService := new(MockSettingsService)

	view := NewView(s, mockService)

	require.NotNil(t, view)
	assert.Equal(t, s, view.styles)
	assert.Equal(t, mockService, view.settingsService)
	assert.Equal(t, SectionOverview, view.Section())
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 0, view.focusedField)
}

func TestNewView_NilStyles(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	require.NotNil(t, view)
	assert.NotNil(t, view.styles)
}

func TestView_Init_LoadSettings_Success(t *testing.T) {
	mockService := new(MockSettingsService)
	settings := testSettings()
	mockService.On("Get").Return(settings, nil)

	view := NewView(nil, mockService)
	cmd := view.Init()
	require.NotNil(t, cmd)

	loaded, ok := cmd().(messages.SettingsLoaded)
	require.True(t, ok)
	assert.NoError(t, loaded.Err)
	assert.Equal(t, settings, loaded.Settings)
	mockService.AssertExpectations(t)
}

func TestView_Init_LoadSettings_Error(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Get").Return(nil, fmt.Errorf("config unreadable"))

	view := NewView(nil, mockService)
	loaded, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.EqualError(t, loaded.Err, "config unreadable")
	mockService.AssertExpectations(t)
}

func TestView_Init_NoService(t *testing.T) {
	view := NewView(nil, nil)

	loaded, ok := view.Init()().(messages.SettingsLoaded)

	require.True(t, ok)
	assert.ErrorIs(t, loaded.Err, ErrNoSettingsService)
}

func TestView_Update_SettingsLoaded_Error(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	view, _ = view.Update(messages.SettingsLoaded{Err: fmt.Errorf("load failed")})

	assert.Nil(t, view.Settings())
	assert.EqualError(t, view.Err(), "load failed")
	assert.Contains(t, view.View(), "Error: load failed")
}

func TestView_Update_SettingsSaved_Success(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Get").Return(testSettings(), nil)
	view := loadedView(mockService)
	view.section = SectionDiacritic
	view.selected = 1

	view, cmd := view.Update(messages.SettingsSaved{})

	require.NotNil(t, cmd)
	assert.Equal(t, SectionOverview, view.Section())
	assert.Equal(t, 0, view.selected)

	_, ok := cmd().(messages.SettingsLoaded)
	assert.True(t, ok, "reloads settings")
	mockService.AssertExpectations(t)
}

func TestView_Update_SettingsSaved_Error(t *testing.T) {
	view := loadedView(new(MockSettingsService))
	view.section = SectionOutputFormat
	expectedErr := fmt.Errorf("save failed")

	view, cmd := view.Update(messages.SettingsSaved{Err: expectedErr})

	assert.Nil(t, cmd)
	assert.Equal(t, expectedErr, view.Err())
	assert.Equal(t, SectionOutputFormat, view.Section(), "stays in the section")
}

func TestView_Update_ConfigReloaded(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Get").Return(testSettings(), nil)
	view := NewView(nil, mockService)

	_, cmd := view.Update(messages.ConfigReloaded{})

	require.NotNil(t, cmd)
	_, ok := cmd().(messages.SettingsLoaded)
	assert.True(t, ok)
	mockService.AssertExpectations(t)
}

func TestView_Update_KeyMsg_Escape(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewMenu}, cmd())

	view.section = SectionStorage
	view.selected = 1
	view, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.Equal(t, SectionOverview, view.Section())
	assert.Equal(t, 0, view.selected)
}

func TestView_Update_KeyMsg_Overview_Navigate(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	for range 5 {
		view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, overviewItems-1, view.selected, "stops at the last item")

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, overviewItems-2, view.selected)
}

func TestView_Update_KeyMsg_Overview_Enter(t *testing.T) {
	tests := []struct {
		name     string
		selected int
		section  Section
		current  int
	}{
		{"output format", 0, SectionOutputFormat, 0},
		{"diacritic", 1, SectionDiacritic, 1},
		{"storage", 2, SectionStorage, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			view := loadedView(new(MockSettingsService))
			view.selected = tt.selected

			view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})

			assert.Equal(t, tt.section, view.Section())
			assert.Equal(t, tt.current, view.selected, "starts on the saved value")
		})
	}
}

func TestView_Update_KeyMsg_OutputFormat_Enter(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("SetOutputFormat", domain.OutputFormatJSON).Return(nil)
	view := loadedView(mockService)
	view.section = SectionOutputFormat

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	mockService.AssertExpectations(t)
}

func TestView_Update_KeyMsg_Diacritic_Enter_Error(t *testing.T) {
	mockService := new(MockSettingsService)
	expectedErr := fmt.Errorf("failed to save")
	mockService.On("SetVoicelessDiacritic", domain.DiacriticPlacementBelow).Return(expectedErr)
	view := loadedView(mockService)
	view.section = SectionDiacritic

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.Equal(t, expectedErr, saved.Err)
	mockService.AssertExpectations(t)
}

func TestView_Update_KeyMsg_Storage_Memory(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("SetStorageBackend", domain.StorageBackendMemory, "").Return(nil)
	view := loadedView(mockService)
	view.selected = 2
	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyDown})
	view, cmd := view.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Nil(t, cmd, "memory has no data directory")
	assert.Equal(t, 0, view.focusedField)

	_, cmd = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	mockService.AssertExpectations(t)
}

func TestView_Update_KeyMsg_Storage_DataDir(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("SetStorageBackend", domain.StorageBackendSQLite, "/tmp/phonet/v2").Return(nil)
	view := loadedView(mockService)
	view.selected = 2
	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/tmp/phonet", view.dataDirInput.Value(), "prefilled from settings")

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, 1, view.focusedField)
	assert.Contains(t, view.View(), "[tab] back to list")

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/v2")})
	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.NoError(t, saved.Err)
	mockService.AssertExpectations(t)
}

func TestView_Update_KeyMsg_Storage_TabBack(t *testing.T) {
	view := loadedView(new(MockSettingsService))
	view.section = SectionStorage
	view.focusedField = 1

	view, _ = view.Update(tea.KeyMsg{Type: tea.KeyShiftTab})

	assert.Equal(t, 0, view.focusedField)
}

func TestView_Update_KeyMsg_NoService(t *testing.T) {
	view := NewView(nil, nil)
	view, _ = view.Update(messages.SettingsLoaded{Settings: testSettings()})
	view.section = SectionOutputFormat

	_, cmd := view.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	saved, ok := cmd().(messages.SettingsSaved)
	require.True(t, ok)
	assert.ErrorIs(t, saved.Err, ErrNoSettingsService)
}

func TestView_View_Loading(t *testing.T) {
	view := NewView(nil, new(MockSettingsService))

	assert.Contains(t, view.View(), "Loading settings...")
}

func TestView_View_Overview(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Validate").Return(nil)
	view := loadedView(mockService)

	output := view.View()

	assert.Contains(t, output, "Output Format: Text (human readable)")
	assert.Contains(t, output, "Voiceless Diacritic: Auto (ring above descenders)")
	assert.Contains(t, output, "SQLite (persistent) in /tmp/phonet")
	assert.Contains(t, output, "MCP rate limit: 5 requests/s (burst 10)")
	assert.Contains(t, output, "Configuration is valid")
	mockService.AssertExpectations(t)
}

func TestView_View_Overview_ValidationError(t *testing.T) {
	mockService := new(MockSettingsService)
	mockService.On("Validate").Return(fmt.Errorf("invalid output format: xml"))
	view := loadedView(mockService)

	assert.Contains(t, view.View(), "Warning: invalid output format: xml")
}

func TestView_View_Overview_RateLimitDisabled(t *testing.T) {
	view := NewView(nil, nil)
	settings := testSettings()
	settings.MCP.RateLimit = 0
	view, _ = view.Update(messages.SettingsLoaded{Settings: settings})

	assert.Contains(t, view.View(), "MCP rate limit: disabled")
}

func TestView_View_OptionSections(t *testing.T) {
	view := loadedView(new(MockSettingsService))

	view.section = SectionOutputFormat
	output := view.View()
	assert.Contains(t, output, "Select Output Format")
	assert.Contains(t, output, "JSON (machine readable)")

	view.section = SectionDiacritic
	output = view.View()
	assert.Contains(t, output, "Select Voiceless Diacritic Placement")
	assert.Contains(t, output, "(current)")

	view.section = SectionStorage
	output = view.View()
	assert.Contains(t, output, "Memory (discarded on exit)")
	assert.Contains(t, output, "Data directory:")
	assert.Contains(t, output, "apply on next start")
}

func TestView_Reset(t *testing.T) {
	view := loadedView(new(MockSettingsService))
	view.section = SectionStorage
	view.selected = 1
	view.focusedField = 1
	view.err = fmt.Errorf("boom")
	view.dataDirInput.SetValue("/x")

	view.Reset()

	assert.Equal(t, SectionOverview, view.Section())
	assert.Equal(t, 0, view.selected)
	assert.Equal(t, 0, view.focusedField)
	assert.NoError(t, view.Err())
	assert.Empty(t, view.dataDirInput.Value())
}

func TestIndexOf(t *testing.T) {
	assert.Equal(t, 1, indexOf(domain.AllStorageBackends(), domain.StorageBackendMemory))
	assert.Equal(t, 0, indexOf(domain.AllStorageBackends(), domain.StorageBackend("nfs")))
}
