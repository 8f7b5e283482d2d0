package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

var parseCmd = &cobra.Command{
	Use:   "parse [symbol...]",
	Short: "Describe IPA symbols as phonetic features",
	Long: `Read each IPA symbol and print the features it stands for.

A symbol is one base letter, optionally with one diacritic (n̥, tʰ, s̬, t̠),
or one of the fixed multi-letter symbols such as the affricate t͡ʃ.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParse,
}

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write phonetic features as an IPA symbol",
	Long: `Write the sound described by the feature flags as IPA.

Sounds without a symbol are written as ∅.

Examples:
  phonet render --vocal-folds voiceless --place alveolar --manner fricative
  phonet render --kind vowel --height close --backness back --rounding rounded --vocal-folds voiced`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

var voiceCmd = &cobra.Command{
	Use:   "voice [symbol...]",
	Short: "Make sounds voiced",
	Args:  cobra.MinimumNArgs(1),
	RunE:  ruleRunner(domain.RuleVoice),
}

var devoiceCmd = &cobra.Command{
	Use:   "devoice [symbol...]",
	Short: "Make sounds voiceless",
	Args:  cobra.MinimumNArgs(1),
	RunE:  ruleRunner(domain.RuleDevoice),
}

var spirantizeCmd = &cobra.Command{
	Use:   "spirantize [symbol...]",
	Short: "Turn plosives into fricatives",
	Long: `Turn each plosive into the fricative at the same place.

Alveolar plosives become dental fricatives (t → θ, d → ð).
Other sounds are left unchanged.`,
	Args: cobra.MinimumNArgs(1),
	RunE: ruleRunner(domain.RuleSpirantize),
}

var (
	strictInput bool
	renderFlags featureFlags
)

func init() {
	parseCmd.Flags().BoolVar(&strictInput, "strict", false, "fail on symbols that cannot be read")
	for _, cmd := range []*cobra.Command{voiceCmd, devoiceCmd, spirantizeCmd} {
		cmd.Flags().BoolVar(&strictInput, "strict", false, "fail on symbols that cannot be read")
	}
	renderFlags.bind(renderCmd, domain.Features{
		Kind:      domain.KindConsonant,
		Airstream: domain.PulmonicEgressive.String(),
	})

	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(voiceCmd)
	rootCmd.AddCommand(devoiceCmd)
	rootCmd.AddCommand(spirantizeCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	if transcriptionService == nil {
		return errors.New("transcription service not configured")
	}

	analyses := make([]domain.Analysis, 0, len(args))
	for _, arg := range args {
		a := transcriptionService.Analyze(arg)
		if strictInput && !a.Recognized {
			return fmt.Errorf("%w: %q", domain.ErrUnrecognizedSymbol, a.Input)
		}
		analyses = append(analyses, a)
	}

	if wantJSON() {
		if len(analyses) == 1 {
			return printJSON(cmd, analyses[0])
		}
		return printJSON(cmd, analyses)
	}

	for i, a := range analyses {
		if i > 0 {
			cmd.Println()
		}
		printAnalysis(cmd, a)
	}
	return nil
}

func runRender(cmd *cobra.Command, _ []string) error {
	if transcriptionService == nil {
		return errors.New("transcription service not configured")
	}

	p, err := renderFlags.phonet()
	if err != nil {
		return err
	}

	r := domain.Realization{Phonet: p, Symbol: transcriptionService.Render(p)}
	if wantJSON() {
		return printJSON(cmd, r)
	}

	cmd.Printf("%s  %s\n", r.Symbol, p)
	return nil
}

// ruleRunner returns a RunE that applies rule to every argument.
func ruleRunner(rule domain.Rule) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if transcriptionService == nil {
			return errors.New("transcription service not configured")
		}

		results := make([]*domain.Transformation, 0, len(args))
		for _, arg := range args {
			t, err := transcriptionService.Transform(arg, rule, domain.TransformOptions{Strict: strictInput})
			if err != nil {
				return fmt.Errorf("failed to %s: %w", rule, err)
			}
			results = append(results, t)
		}

		if wantJSON() {
			if len(results) == 1 {
				return printJSON(cmd, results[0])
			}
			return printJSON(cmd, results)
		}

		for _, t := range results {
			cmd.Printf("%s → %s\n", t.Source.Input, t.Output)
		}
		return nil
	}
}
