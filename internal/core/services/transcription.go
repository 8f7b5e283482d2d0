package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ipa"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
	"github.com/custodia-labs/phonet/internal/logger"
)

// Ensure TranscriptionService implements the interface.
var _ driving.TranscriptionService = (*TranscriptionService)(nil)

// TranscriptionService reads and writes IPA through the ipa package,
// honouring the render settings in the config store.
type TranscriptionService struct {
	configStore driven.ConfigStore
}

// NewTranscriptionService creates a new transcription service.
// configStore may be nil, in which case default render settings apply.
func NewTranscriptionService(configStore driven.ConfigStore) *TranscriptionService {
	return &TranscriptionService{
		configStore: configStore,
	}
}

// transcoder builds a transcoder from the current settings. It is read
// per call so a config reload takes effect without a restart.
func (s *TranscriptionService) transcoder() *ipa.Transcoder {
	placement := domain.DefaultAppSettings().Render.VoicelessDiacritic
	if s.configStore != nil {
		placement = getEnum(s.configStore, keyVoicelessDiacritic, placement)
	}
	return ipa.New(ipa.WithVoicelessAbove(placement == domain.DiacriticPlacementAuto))
}

// Analyze parses text and describes the result.
func (s *TranscriptionService) Analyze(text string) domain.Analysis {
	return s.analyze(s.transcoder(), text)
}

func (s *TranscriptionService) analyze(t *ipa.Transcoder, text string) domain.Analysis {
	text = strings.TrimSpace(text)
	logger.Runes("Input", text)

	p := t.Parse(text)
	recognized := !domain.IsUnrecognized(p)
	if recognized {
		logger.Debug("Parsed as %s", p)
	} else {
		logger.Debug("Not recognized")
	}

	return domain.Analysis{
		Input:       text,
		Phonet:      p,
		Recognized:  recognized,
		Description: p.String(),
		Canonical:   t.Render(p),
	}
}

// Render writes a feature bundle as IPA.
func (s *TranscriptionService) Render(p domain.Phonet) string {
	return s.transcoder().Render(p)
}

// Transform applies rule to the sound written in text.
func (s *TranscriptionService) Transform(
	text string,
	rule domain.Rule,
	opts domain.TransformOptions,
) (*domain.Transformation, error) {
	if !rule.IsValid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRule, rule)
	}

	logger.Section("Transform")
	logger.Debug("Rule: %s", rule.Description())

	t := s.transcoder()
	source := s.analyze(t, text)
	if !source.Recognized && opts.Strict {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnrecognizedSymbol, source.Input)
	}

	result := rule.Apply(source.Phonet)
	output := t.Render(result)
	logger.Debug("Result: %s", result)
	logger.Runes("Output", output)

	return &domain.Transformation{
		Rule:    rule,
		Source:  source,
		Result:  result,
		Output:  output,
		Changed: result != source.Phonet,
	}, nil
}

// VoicedTranscription returns the voiced counterpart of text.
func (s *TranscriptionService) VoicedTranscription(text string) string {
	return s.transcoder().Transcribe(strings.TrimSpace(text), domain.RuleVoice)
}

// DevoicedTranscription returns the voiceless counterpart of text.
func (s *TranscriptionService) DevoicedTranscription(text string) string {
	return s.transcoder().Transcribe(strings.TrimSpace(text), domain.RuleDevoice)
}

// SpirantizedTranscription returns the fricative counterpart of text.
func (s *TranscriptionService) SpirantizedTranscription(text string) string {
	return s.transcoder().Transcribe(strings.TrimSpace(text), domain.RuleSpirantize)
}
