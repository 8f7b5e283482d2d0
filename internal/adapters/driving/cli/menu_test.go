package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

func TestMenuCmd_ViewInventory(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "1\n", "menu")

	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "Please read README.md file for instructions on how to use.\n"))
	assert.Contains(t, out, "1) view the English phoneme inventory")
	assert.Contains(t, out, "The user selected: 1\n\n")
	assert.Contains(t, out, strings.Join(domain.EnglishUS().Symbols, " "))
	assert.True(t, strings.HasSuffix(out, "\nProgram terminated normally.\n\n\n"))
}

func TestMenuCmd_Voice(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "2\ns\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter the phoneme you would like to voice:\n(PROMPT:) \nz\n")
}

func TestMenuCmd_Devoice(t *testing.T) {
	setupTestServices(t)

	// No trailing newline: the last line ends at EOF.
	out, err := execute(t, "3\nb", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "Enter the phoneme you would like to devoice:\n(PROMPT:) \np\n")
}

func TestMenuCmd_Unrecognized(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "2\nQ\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "(PROMPT:) \n∅\n")
}

func TestMenuCmd_UnhandledSelection(t *testing.T) {
	setupTestServices(t)

	out, err := execute(t, "9\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, "The user selected: 9")
	assert.Contains(t, out, "User selection not handled")
	assert.Contains(t, out, "Program terminated normally.")
}

func TestMenuCmd_EmptyInput(t *testing.T) {
	setupTestServices(t)

	_, err := execute(t, "", "menu")

	assert.EqualError(t, err, "no selection read from input")
}

func TestMenuCmd_InventoryWithoutService(t *testing.T) {
	setupTestServices(t)
	inventoryService = nil

	out, err := execute(t, "1\n", "menu")

	require.NoError(t, err)
	assert.Contains(t, out, strings.Join(domain.EnglishUS().Symbols, " "))
}

func TestMenuCmd_NoService(t *testing.T) {
	setupTestServices(t)
	transcriptionService = nil

	_, err := execute(t, "1\n", "menu")

	assert.EqualError(t, err, "transcription service not configured")
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, isTerminal(strings.NewReader("")))
}
