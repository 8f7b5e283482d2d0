package driving

import "github.com/custodia-labs/phonet/internal/core/domain"

// TranscriptionService reads and writes single IPA sounds and applies
// rewrite rules to them.
type TranscriptionService interface {
	// Analyze parses text and describes the result. It never fails:
	// unreadable text is reported through Analysis.Recognized.
	Analyze(text string) domain.Analysis

	// Render writes a feature bundle as IPA, or the empty-set glyph.
	Render(p domain.Phonet) string

	// Transform applies rule to the sound written in text.
	// Returns domain.ErrInvalidRule for an unknown rule, and
	// domain.ErrUnrecognizedSymbol for unreadable text in strict mode.
	Transform(text string, rule domain.Rule, opts domain.TransformOptions) (*domain.Transformation, error)

	// VoicedTranscription returns the voiced counterpart of text.
	VoicedTranscription(text string) string

	// DevoicedTranscription returns the voiceless counterpart of text.
	DevoicedTranscription(text string) string

	// SpirantizedTranscription returns the fricative counterpart of text.
	SpirantizedTranscription(text string) string
}
