package tui

import "errors"

// ErrMissingTranscriptionService is returned when the transcription service is not provided.
var ErrMissingTranscriptionService = errors.New("tui: transcription service is required")

// ErrMissingFeatureService is returned when the feature service is not provided.
var ErrMissingFeatureService = errors.New("tui: feature service is required")

// ErrMissingInventoryService is returned when the inventory service is not provided.
var ErrMissingInventoryService = errors.New("tui: inventory service is required")

// ErrInvalidPorts is returned when ports validation fails.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
