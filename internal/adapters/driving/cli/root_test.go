package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonet/internal/core/services"
)

// testServices are real services over in-memory stores.
type testServices struct {
	config        *memory.ConfigStore
	transcription *services.TranscriptionService
	features      *services.FeatureService
	inventory     *services.InventoryService
	settings      *services.SettingsService
}

// setupTestServices wires fresh services into the command package and
// restores the previous ones, and every flag, when the test ends.
func setupTestServices(t *testing.T) *testServices {
	t.Helper()

	config := memory.NewConfigStore()
	transcription := services.NewTranscriptionService(config)
	features := services.NewFeatureService(transcription)
	s := &testServices{
		config:        config,
		transcription: transcription,
		features:      features,
		inventory:     services.NewInventoryService(memory.NewInventoryStore(), features),
		settings:      services.NewSettingsService(config),
	}

	oldTranscription, oldFeatures := transcriptionService, featureService
	oldInventory, oldSettings := inventoryService, settingsService
	SetTranscriptionService(s.transcription)
	SetFeatureService(s.features)
	SetInventoryService(s.inventory)
	SetSettingsService(s.settings)

	t.Cleanup(func() {
		transcriptionService, featureService = oldTranscription, oldFeatures
		inventoryService, settingsService = oldInventory, oldSettings
		resetFlags(rootCmd)
	})
	return s
}

// resetFlags puts every flag of cmd and its children back to its
// default. Cobra keeps flag values between Execute calls.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, child := range cmd.Commands() {
		resetFlags(child)
	}
}

// execute runs the root command with args and stdin, returning stdout.
// Flags set by the run, including --help, are reset when the test ends.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Cleanup(func() { resetFlags(rootCmd) })

	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
	}()

	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "phonet", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	names := make([]string, 0, len(rootCmd.Commands()))
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	for _, want := range []string{
		"parse", "render", "voice", "devoice", "spirantize", "generalize", "enumerate",
		"inventory", "chart", "menu", "settings", "tui", "mcp", "version",
	} {
		assert.Contains(t, names, want)
	}
}

func TestRootCmd_PersistentFlags(t *testing.T) {
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("verbose"))
	assert.NotNil(t, rootCmd.PersistentFlags().Lookup("json"))
}

func TestWantJSON(t *testing.T) {
	s := setupTestServices(t)

	assert.False(t, wantJSON())

	require.NoError(t, s.settings.SetOutputFormat("json"))
	assert.True(t, wantJSON(), "configured default")

	settingsService = nil
	assert.False(t, wantJSON(), "no settings service")

	jsonOutput = true
	assert.True(t, wantJSON(), "flag wins")
}

func TestResetFlags(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "parse", "--json", "--strict", "s")
	require.NoError(t, err)
	require.True(t, jsonOutput)

	resetFlags(rootCmd)

	assert.False(t, jsonOutput)
	assert.False(t, strictInput)
	assert.False(t, rootCmd.PersistentFlags().Changed("json"))
}

func TestExecute_ResetsHelpFlag(t *testing.T) {
	t.Run("help", func(t *testing.T) {
		output, err := execute(t, "", "version", "--help")
		require.NoError(t, err)
		assert.Contains(t, output, "Usage:")
	})

	output, err := execute(t, "", "version")

	require.NoError(t, err)
	assert.Contains(t, output, "phonet version")
	assert.NotContains(t, output, "Usage:")
}
