package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// featureFlags binds one flag per feature dimension to a command. Flags
// left empty are read as unmarked.
type featureFlags struct {
	kind       string
	vocalFolds string
	place      string
	manner     string
	airstream  string
	height     string
	backness   string
	rounding   string
}

func (f *featureFlags) bind(cmd *cobra.Command, defaults domain.Features) {
	flags := cmd.Flags()
	flags.StringVar(&f.kind, "kind", string(defaults.Kind), "sound kind (consonant|vowel)")
	flags.StringVar(&f.vocalFolds, "vocal-folds", "", "vocal fold state, e.g. voiced, voiceless_aspirated")
	flags.StringVar(&f.place, "place", "", "consonant place of articulation, e.g. alveolar")
	flags.StringVar(&f.manner, "manner", "", "consonant manner of articulation, e.g. fricative")
	flags.StringVar(&f.airstream, "airstream", defaults.Airstream, "consonant airstream (pulmonic_egressive|click|implosive)")
	flags.StringVar(&f.height, "height", "", "vowel height, e.g. close_mid")
	flags.StringVar(&f.backness, "backness", "", "vowel backness (front|central|back)")
	flags.StringVar(&f.rounding, "rounding", "", "vowel rounding (rounded|unrounded)")
}

// phonet builds the feature bundle described by the flags.
func (f *featureFlags) phonet() (domain.Phonet, error) {
	p, err := domain.Features{
		Kind:       domain.Kind(f.kind),
		VocalFolds: f.vocalFolds,
		Place:      f.place,
		Manner:     f.manner,
		Airstream:  f.airstream,
		Height:     f.height,
		Backness:   f.backness,
		Rounding:   f.rounding,
	}.Phonet()
	if err != nil {
		return nil, fmt.Errorf("reading feature flags: %w", err)
	}
	return p, nil
}

// anySet reports whether any feature flag was given on the command line.
func (f *featureFlags) anySet(cmd *cobra.Command) bool {
	for _, name := range []string{
		"kind", "vocal-folds", "place", "manner", "airstream", "height", "backness", "rounding",
	} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}
