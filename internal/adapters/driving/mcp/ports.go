package mcp

import (
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Transcription parses, renders and rewrites symbols.
	Transcription driving.TranscriptionService

	// Features generalizes and enumerates sounds.
	Features driving.FeatureService

	// Inventory serves the inventory resources. Optional.
	Inventory driving.InventoryService

	// Settings supplies the HTTP rate limit. Optional; defaults apply
	// without it.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p == nil || p.Transcription == nil {
		return ErrMissingTranscriptionService
	}
	if p.Features == nil {
		return ErrMissingFeatureService
	}
	return nil
}
