// Package mcp provides an MCP (Model Context Protocol) server adapter for
// phonet. It lets AI assistants read, rewrite and write IPA symbols and
// browse phoneme inventories.
package mcp

import "errors"

var (
	// ErrMissingTranscriptionService is returned when the transcription
	// service is not provided.
	ErrMissingTranscriptionService = errors.New("mcp: transcription service is required")

	// ErrMissingFeatureService is returned when the feature service is not
	// provided.
	ErrMissingFeatureService = errors.New("mcp: feature service is required")

	// ErrEmptySymbols is returned by tools that need at least one symbol.
	ErrEmptySymbols = errors.New("at least one symbol is required")
)
