package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestOutputFormat_IsValid tests valid and invalid output formats
func TestOutputFormat_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		format   OutputFormat
		expected bool
	}{
		{name: "text is valid", format: OutputFormatText, expected: true},
		{name: "json is valid", format: OutputFormatJSON, expected: true},
		{name: "empty string is invalid", format: OutputFormat(""), expected: false},
		{name: "yaml is invalid", format: OutputFormat("yaml"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.IsValid())
		})
	}
}

// TestOutputFormat_Description tests descriptions
func TestOutputFormat_Description(t *testing.T) {
	assert.Equal(t, "Text (human readable)", OutputFormatText.Description())
	assert.Equal(t, "JSON (machine readable)", OutputFormatJSON.Description())
	assert.Equal(t, "Unknown", OutputFormat("x").Description())
}

// TestDiacriticPlacement_IsValid tests valid and invalid placements
func TestDiacriticPlacement_IsValid(t *testing.T) {
	assert.True(t, DiacriticPlacementBelow.IsValid())
	assert.True(t, DiacriticPlacementAuto.IsValid())
	assert.False(t, DiacriticPlacement("above").IsValid())
	assert.False(t, DiacriticPlacement("").IsValid())
	assert.Equal(t, "auto", DiacriticPlacementAuto.String())
	assert.Equal(t, "Unknown", DiacriticPlacement("x").Description())
}

// TestStorageBackend tests backend validation and persistence
func TestStorageBackend(t *testing.T) {
	tests := []struct {
		backend    StorageBackend
		valid      bool
		persistent bool
	}{
		{StorageBackendSQLite, true, true},
		{StorageBackendMemory, true, false},
		{StorageBackend("postgres"), false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.backend.IsValid())
			assert.Equal(t, tt.persistent, tt.backend.IsPersistent())
		})
	}
}

// TestDefaultAppSettings tests default values
func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, OutputFormatText, s.Output.Format)
	assert.Equal(t, DiacriticPlacementBelow, s.Render.VoicelessDiacritic)
	assert.Equal(t, StorageBackendSQLite, s.Storage.Backend)
	assert.Empty(t, s.Storage.DataDir)
	assert.InDelta(t, 10.0, s.MCP.RateLimit, 0.0001)
	assert.Equal(t, 20, s.MCP.Burst)
}

// TestAllSettingsEnumerations tests that every listed value is valid
func TestAllSettingsEnumerations(t *testing.T) {
	for _, f := range AllOutputFormats() {
		assert.True(t, f.IsValid(), f)
	}
	for _, p := range AllDiacriticPlacements() {
		assert.True(t, p.IsValid(), p)
	}
	for _, b := range AllStorageBackends() {
		assert.True(t, b.IsValid(), b)
	}
}
