package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ipa"
)

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

// featureLines lists the marked features of p as "name: value" lines.
func featureLines(p domain.Phonet) []string {
	f := domain.FeaturesOf(p)
	fields := []struct {
		name  string
		value string
	}{
		{"kind", string(f.Kind)},
		{"vocal folds", f.VocalFolds},
		{"place", f.Place},
		{"manner", f.Manner},
		{"airstream", f.Airstream},
		{"height", f.Height},
		{"backness", f.Backness},
		{"rounding", f.Rounding},
	}

	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		if field.value == "" || field.value == "unmarked" {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-11s %s", field.name+":", strings.ReplaceAll(field.value, "_", " ")))
	}
	return lines
}

func printAnalysis(cmd *cobra.Command, a domain.Analysis) {
	if !a.Recognized {
		cmd.Printf("%s  not recognized\n", a.Input)
		return
	}
	cmd.Printf("%s  %s\n", a.Input, a.Description)
	if a.Canonical != a.Input {
		cmd.Printf("  written: %s\n", a.Canonical)
	}
	for _, line := range featureLines(a.Phonet) {
		cmd.Printf("  %s\n", line)
	}
}

func printRealizations(cmd *cobra.Command, members []domain.Realization) {
	width := 0
	for _, m := range members {
		width = max(width, ipa.Width(m.Symbol))
	}
	for _, m := range members {
		cmd.Printf("  %s  %s\n", ipa.Pad(m.Symbol, width), m.Phonet)
	}
}

func printClass(cmd *cobra.Command, class *domain.NaturalClass) {
	cmd.Printf("Symbols: %s\n", strings.Join(class.Symbols, " "))
	cmd.Printf("Class:   %s\n", class.Description)
	for _, line := range featureLines(class.Pattern) {
		cmd.Printf("  %s\n", line)
	}
	if len(class.Members) > 0 {
		cmd.Printf("\nMembers (%d):\n", len(class.Members))
		printRealizations(cmd, class.Members)
	}
}
