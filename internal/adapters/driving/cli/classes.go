package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

var generalizeCmd = &cobra.Command{
	Use:   "generalize [symbol...]",
	Short: "Find the natural class shared by symbols",
	Long: `Generalize the given symbols into the smallest feature pattern they all
share. Features the symbols disagree on become unmarked.

Example:
  phonet generalize p t k`,
	Args: cobra.MinimumNArgs(1),
	RunE: runGeneralize,
}

var enumerateCmd = &cobra.Command{
	Use:   "enumerate [symbol...]",
	Short: "List every sound a pattern stands for",
	Long: `List the concrete sounds of a natural class with their symbols.

Give symbols to enumerate the class they generalize to, or describe the
pattern with feature flags. Flags left out are unmarked.

Examples:
  phonet enumerate s z
  phonet enumerate --place alveolar --manner fricative --airstream pulmonic_egressive`,
	RunE: runEnumerate,
}

var enumerateFlags featureFlags

func init() {
	enumerateFlags.bind(enumerateCmd, domain.Features{Kind: domain.KindConsonant})

	rootCmd.AddCommand(generalizeCmd)
	rootCmd.AddCommand(enumerateCmd)
}

func runGeneralize(cmd *cobra.Command, args []string) error {
	if featureService == nil {
		return errors.New("feature service not configured")
	}

	class, err := featureService.Generalize(args)
	if err != nil {
		return fmt.Errorf("failed to generalize: %w", err)
	}

	if wantJSON() {
		return printJSON(cmd, class)
	}
	printClass(cmd, class)
	return nil
}

func runEnumerate(cmd *cobra.Command, args []string) error {
	if featureService == nil {
		return errors.New("feature service not configured")
	}

	switch {
	case len(args) > 0 && enumerateFlags.anySet(cmd):
		return errors.New("give either symbols or feature flags, not both")
	case len(args) > 0:
		class, err := featureService.EnumerateSymbols(args)
		if err != nil {
			return fmt.Errorf("failed to enumerate: %w", err)
		}
		if wantJSON() {
			return printJSON(cmd, class)
		}
		printClass(cmd, class)
		return nil
	case !enumerateFlags.anySet(cmd):
		return errors.New("give symbols or at least one feature flag")
	}

	pattern, err := enumerateFlags.phonet()
	if err != nil {
		return err
	}
	members := featureService.Enumerate(pattern)

	if wantJSON() {
		return printJSON(cmd, members)
	}
	cmd.Printf("Pattern: %s\n", pattern)
	cmd.Printf("\nMembers (%d):\n", len(members))
	printRealizations(cmd, members)
	return nil
}
