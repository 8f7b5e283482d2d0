package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
	"github.com/custodia-labs/phonet/internal/logger"
)

// Ensure FeatureService implements the interface.
var _ driving.FeatureService = (*FeatureService)(nil)

// FeatureService generalizes sets of sounds and enumerates patterns.
type FeatureService struct {
	transcription driving.TranscriptionService
}

// NewFeatureService creates a new feature service that reads and writes
// symbols through transcription.
func NewFeatureService(transcription driving.TranscriptionService) *FeatureService {
	return &FeatureService{
		transcription: transcription,
	}
}

// Generalize finds the natural class shared by the given symbols.
func (s *FeatureService) Generalize(symbols []string) (*domain.NaturalClass, error) {
	logger.Section("Generalize")

	phonets, cleaned, err := s.parseAll(symbols)
	if err != nil {
		return nil, err
	}

	pattern, err := domain.GeneralizeAll(phonets...)
	if err != nil {
		return nil, err
	}
	logger.Debug("Pattern: %s", pattern)

	return &domain.NaturalClass{
		Symbols:     cleaned,
		Pattern:     pattern,
		Description: pattern.String(),
	}, nil
}

// Enumerate lists every concrete sound pattern stands for.
func (s *FeatureService) Enumerate(pattern domain.Phonet) []domain.Realization {
	phonets := domain.Enumerate(pattern)
	logger.Debug("%s enumerates to %d sounds", pattern, len(phonets))

	out := make([]domain.Realization, 0, len(phonets))
	for _, p := range phonets {
		out = append(out, domain.Realization{
			Phonet: p,
			Symbol: s.transcription.Render(p),
		})
	}
	return out
}

// EnumerateSymbols generalizes symbols and fills in the class members.
func (s *FeatureService) EnumerateSymbols(symbols []string) (*domain.NaturalClass, error) {
	class, err := s.Generalize(symbols)
	if err != nil {
		return nil, err
	}
	class.Members = s.Enumerate(class.Pattern)
	return class, nil
}

// parseAll reads every symbol, failing on the first one that is not
// recognized. Blank entries are skipped.
func (s *FeatureService) parseAll(symbols []string) ([]domain.Phonet, []string, error) {
	phonets := make([]domain.Phonet, 0, len(symbols))
	cleaned := make([]string, 0, len(symbols))
	for _, sym := range symbols {
		sym = strings.TrimSpace(sym)
		if sym == "" {
			continue
		}
		a := s.transcription.Analyze(sym)
		if !a.Recognized {
			return nil, nil, fmt.Errorf("%w: %q", domain.ErrUnrecognizedSymbol, sym)
		}
		phonets = append(phonets, a.Phonet)
		cleaned = append(cleaned, sym)
	}
	if len(phonets) == 0 {
		return nil, nil, fmt.Errorf("%w: no symbols given", domain.ErrInvalidInput)
	}
	return phonets, cleaned, nil
}
