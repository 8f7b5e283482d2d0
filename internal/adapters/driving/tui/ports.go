// Package tui provides an interactive terminal user interface for phonet.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Transcription parses, renders and rewrites symbols.
	Transcription driving.TranscriptionService

	// Features generalizes and enumerates natural classes.
	Features driving.FeatureService

	// Inventory manages phoneme inventories.
	Inventory driving.InventoryService

	// Settings manages application settings. Optional.
	Settings driving.SettingsService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	transcription driving.TranscriptionService,
	features driving.FeatureService,
	inventory driving.InventoryService,
	settings driving.SettingsService,
) *Ports {
	return &Ports{
		Transcription: transcription,
		Features:      features,
		Inventory:     inventory,
		Settings:      settings,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Transcription == nil {
		return ErrMissingTranscriptionService
	}
	if p.Features == nil {
		return ErrMissingFeatureService
	}
	if p.Inventory == nil {
		return ErrMissingInventoryService
	}
	return nil
}
