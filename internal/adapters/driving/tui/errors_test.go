package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors_AreDistinct(t *testing.T) {
	errors := []error{
		ErrMissingTranscriptionService,
		ErrMissingFeatureService,
		ErrMissingInventoryService,
		ErrInvalidPorts,
	}

	seen := make(map[string]bool)
	for _, err := range errors {
		msg := err.Error()
		assert.False(t, seen[msg], "duplicate error message: %s", msg)
		seen[msg] = true
	}
}

func TestErrMissingTranscriptionService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingTranscriptionService.Error(), "transcription service")
}

func TestErrMissingFeatureService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingFeatureService.Error(), "feature service")
}

func TestErrMissingInventoryService_Message(t *testing.T) {
	assert.Contains(t, ErrMissingInventoryService.Error(), "inventory service")
}

func TestErrInvalidPorts_Message(t *testing.T) {
	assert.Contains(t, ErrInvalidPorts.Error(), "invalid ports")
}
