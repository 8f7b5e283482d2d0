package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure output, rendering, storage and MCP settings.

Use subcommands to configure specific settings or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure all settings step by step.`,
	RunE:  runSettingsWizard,
}

var settingsFormatCmd = &cobra.Command{
	Use:   "format [text|json]",
	Short: "Set the default output format",
	Long: `Set the output format used when --json is not given.

Available formats:
  text - Human readable output
  json - Indented JSON output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsFormat,
}

var settingsDiacriticsCmd = &cobra.Command{
	Use:   "diacritics [below|auto]",
	Short: "Set where the voiceless ring is drawn",
	Long: `Set where the voiceless diacritic is placed on rendered symbols.

Available placements:
  below - Always use the ring below (n̥, ŋ̥)
  auto  - Use the ring above on descenders (ŋ̊) and below elsewhere`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsDiacritics,
}

var settingsStorageCmd = &cobra.Command{
	Use:   "storage [sqlite|memory]",
	Short: "Set where inventories are kept",
	Long: `Set the storage backend for user inventories.

Available backends:
  sqlite - Persist inventories in ~/.phonet/data/phonet.db
  memory - Keep inventories for the lifetime of the process only

The change takes effect the next time phonet starts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsStorage,
}

var settingsDataDir string

func init() {
	settingsStorageCmd.Flags().StringVar(&settingsDataDir, "data-dir", "", "directory for the SQLite database")

	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	settingsCmd.AddCommand(settingsFormatCmd)
	settingsCmd.AddCommand(settingsDiacriticsCmd)
	settingsCmd.AddCommand(settingsStorageCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Output]")
	cmd.Printf("  Format: %s\n", settings.Output.Format.Description())
	cmd.Println()

	cmd.Println("[Render]")
	cmd.Printf("  Voiceless diacritic: %s\n", settings.Render.VoicelessDiacritic.Description())
	cmd.Println()

	cmd.Println("[Storage]")
	cmd.Printf("  Backend: %s\n", settings.Storage.Backend.Description())
	if settings.Storage.Backend.IsPersistent() {
		dataDir := settings.Storage.DataDir
		if dataDir == "" {
			dataDir = "(default)"
		}
		cmd.Printf("  Data dir: %s\n", dataDir)
	}
	cmd.Println()

	cmd.Println("[MCP]")
	if settings.MCP.RateLimit > 0 {
		cmd.Printf("  Rate limit: %g requests/s (burst %d)\n", settings.MCP.RateLimit, settings.MCP.Burst)
	} else {
		cmd.Println("  Rate limit: disabled")
	}
	cmd.Println()

	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
		cmd.Println("Run 'phonet settings wizard' to fix configuration issues.")
	} else {
		cmd.Println("Configuration is valid.")
	}

	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	cmd.Println("Phonet Settings Wizard")
	cmd.Println("======================")
	cmd.Println()

	reader := bufio.NewReader(cmd.InOrStdin())

	cmd.Println("Step 1: Select Output Format")
	cmd.Println("----------------------------")
	format := chooseOption(cmd, reader, domain.AllOutputFormats(), 1)
	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}
	cmd.Printf("Set output format to: %s\n\n", format.Description())

	cmd.Println("Step 2: Select Voiceless Diacritic Placement")
	cmd.Println("--------------------------------------------")
	placement := chooseOption(cmd, reader, domain.AllDiacriticPlacements(), 1)
	if err := settingsService.SetVoicelessDiacritic(placement); err != nil {
		return fmt.Errorf("failed to set voiceless diacritic: %w", err)
	}
	cmd.Printf("Set voiceless diacritic to: %s\n\n", placement.Description())

	cmd.Println("Step 3: Select Storage Backend")
	cmd.Println("------------------------------")
	backend := chooseOption(cmd, reader, domain.AllStorageBackends(), 1)
	dataDir := ""
	if backend.IsPersistent() {
		cmd.Print("Data directory (empty for default): ")
		dataDir = readLine(reader)
	}
	if err := settingsService.SetStorageBackend(backend, dataDir); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}
	cmd.Printf("Set storage backend to: %s\n\n", backend.Description())

	cmd.Println("Configuration Complete!")
	cmd.Println("=======================")
	if err := settingsService.Validate(); err != nil {
		cmd.Printf("Warning: %v\n", err)
	} else {
		cmd.Println("All settings are valid and saved.")
	}

	return nil
}

func runSettingsFormat(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	format, err := selectOption(cmd, args, "Select Output Format", domain.AllOutputFormats())
	if err != nil {
		return err
	}
	if err := settingsService.SetOutputFormat(format); err != nil {
		return fmt.Errorf("failed to set output format: %w", err)
	}

	cmd.Printf("Output format set to: %s\n", format.Description())
	return nil
}

func runSettingsDiacritics(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	placement, err := selectOption(cmd, args, "Select Voiceless Diacritic Placement", domain.AllDiacriticPlacements())
	if err != nil {
		return err
	}
	if err := settingsService.SetVoicelessDiacritic(placement); err != nil {
		return fmt.Errorf("failed to set voiceless diacritic: %w", err)
	}

	cmd.Printf("Voiceless diacritic set to: %s\n", placement.Description())
	return nil
}

func runSettingsStorage(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errors.New("settings service not configured")
	}

	backend, err := selectOption(cmd, args, "Select Storage Backend", domain.AllStorageBackends())
	if err != nil {
		return err
	}
	if err := settingsService.SetStorageBackend(backend, strings.TrimSpace(settingsDataDir)); err != nil {
		return fmt.Errorf("failed to set storage backend: %w", err)
	}

	cmd.Printf("Storage backend set to: %s\n", backend.Description())
	cmd.Println("Restart phonet for the change to take effect.")
	return nil
}

// option is a string-valued setting shown in a numbered menu.
type option interface {
	~string
	IsValid() bool
	Description() string
}

// selectOption takes the value from args when given, otherwise asks for it
// with a numbered menu.
func selectOption[T option](cmd *cobra.Command, args []string, title string, options []T) (T, error) {
	if len(args) > 0 {
		v := T(strings.ToLower(strings.TrimSpace(args[0])))
		if !v.IsValid() {
			return v, fmt.Errorf("%w: %q", domain.ErrInvalidInput, args[0])
		}
		return v, nil
	}

	cmd.Println(title)
	cmd.Println(strings.Repeat("-", len(title)))
	reader := bufio.NewReader(cmd.InOrStdin())
	for i, opt := range options {
		cmd.Printf("  %d. %s\n", i+1, opt.Description())
	}
	cmd.Print("\nEnter choice: ")
	idx := parseChoice(readLine(reader), len(options), 0)
	if idx == 0 {
		var zero T
		return zero, errors.New("invalid selection")
	}
	return options[idx-1], nil
}

// chooseOption asks for one of options, falling back to defaultIdx.
func chooseOption[T option](cmd *cobra.Command, reader *bufio.Reader, options []T, defaultIdx int) T {
	for i, opt := range options {
		cmd.Printf("  %d. %s\n", i+1, opt.Description())
	}
	cmd.Printf("\nEnter choice [%d]: ", defaultIdx)
	return options[parseChoice(readLine(reader), len(options), defaultIdx)-1]
}

//nolint:errcheck // CLI helper, error ignored for UX
func readLine(reader *bufio.Reader) string {
	input, _ := reader.ReadString('\n')
	return strings.TrimSpace(input)
}

// readLineEOF reads one trimmed line and reports whether input has ended.
func readLineEOF(reader *bufio.Reader) (string, bool) {
	input, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || input == "") {
		return "", false
	}
	return strings.TrimSpace(input), true
}

func parseChoice(input string, maxVal, defaultVal int) int {
	if input == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(input)
	if err != nil || val < 1 || val > maxVal {
		return defaultVal
	}
	return val
}
