package driving

import "github.com/custodia-labs/phonet/internal/core/domain"

// FeatureService works with partially specified sounds.
type FeatureService interface {
	// Generalize finds the natural class shared by the given symbols.
	// Members are not filled in.
	// Returns domain.ErrInvalidInput for an empty list and
	// domain.ErrUnrecognizedSymbol if any symbol cannot be read.
	Generalize(symbols []string) (*domain.NaturalClass, error)

	// Enumerate lists every concrete sound pattern stands for, each with
	// its rendering.
	Enumerate(pattern domain.Phonet) []domain.Realization

	// EnumerateSymbols generalizes symbols and fills in the members of the
	// resulting class.
	EnumerateSymbols(symbols []string) (*domain.NaturalClass, error)
}
