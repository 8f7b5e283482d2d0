// Package cli implements the phonet command line interface with cobra.
// Commands are thin: they parse arguments, call a driving port and print
// the result as text or JSON.
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
	"github.com/custodia-labs/phonet/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

// Services wired in by main.
var (
	transcriptionService driving.TranscriptionService
	featureService       driving.FeatureService
	inventoryService     driving.InventoryService
	settingsService      driving.SettingsService
)

// Global flags.
var (
	verbose    bool
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "phonet",
	Short: "Read, rewrite and write IPA phonetic symbols",
	Long: `phonet reads International Phonetic Alphabet symbols into phonetic
features, applies sound changes such as voicing and spirantization, and
writes the result back as IPA.

Run "phonet menu" for the classic interactive menu or "phonet tui" for the
full terminal interface.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print debug output to stderr")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print results as JSON")
}

// Execute runs the root command.
func Execute() error {
	// cmd.Print* writes to stderr unless an output is set.
	rootCmd.SetOut(os.Stdout)
	return rootCmd.Execute()
}

// SetVersion sets the version reported by "phonet version".
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

// SetTranscriptionService sets the service behind parse, render and the
// rewrite commands.
func SetTranscriptionService(s driving.TranscriptionService) {
	transcriptionService = s
}

// SetFeatureService sets the service behind generalize and enumerate.
func SetFeatureService(s driving.FeatureService) {
	featureService = s
}

// SetInventoryService sets the service behind the inventory commands.
func SetInventoryService(s driving.InventoryService) {
	inventoryService = s
}

// SetSettingsService sets the service behind the settings commands.
func SetSettingsService(s driving.SettingsService) {
	settingsService = s
}

// wantJSON reports whether results should be printed as JSON, either
// because --json was given or because it is the configured default.
func wantJSON() bool {
	if jsonOutput {
		return true
	}
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	if err != nil {
		logger.Warn("Reading output format: %v", err)
		return false
	}
	return settings.Output.Format == domain.OutputFormatJSON
}
