package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// Menu selections.
const (
	menuViewInventory = "1"
	menuVoice         = "2"
	menuDevoice       = "3"
)

const menuText = `What do you want to accomplish?

1) view the English phoneme inventory (as IPA graphemes).
2) make a phoneme voiced.
3) make a phoneme unvoiced.

Enter the number representing your selection below, after the prompt, and press enter/return.


`

const menuPrompt = "(PROMPT:) "

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Run the classic interactive line menu",
	Long: `Run the classic line menu: pick one action by number, answer its
prompt, and the program prints the result and exits.

Input may be piped:
  printf '2\ns\n' | phonet menu`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	rootCmd.AddCommand(menuCmd)
}

func runMenu(cmd *cobra.Command, _ []string) error {
	if transcriptionService == nil {
		return errors.New("transcription service not configured")
	}

	in := cmd.InOrStdin()
	reader := bufio.NewReader(in)

	cmd.Println("Please read README.md file for instructions on how to use.")
	cmd.Print(menuText + "\n")
	cmd.Println(menuPrompt)

	selection, ok := readLineEOF(reader)
	if !ok && !isTerminal(in) {
		return errors.New("no selection read from input")
	}
	cmd.Printf("The user selected: %s\n\n", selection)

	switch selection {
	case menuViewInventory:
		if err := printMenuInventory(cmd.Context(), cmd); err != nil {
			return err
		}
	case menuVoice:
		cmd.Println("Enter the phoneme you would like to voice:")
		cmd.Println(menuPrompt)
		phoneme, _ := readLineEOF(reader)
		cmd.Println(transcriptionService.VoicedTranscription(phoneme))
	case menuDevoice:
		cmd.Println("Enter the phoneme you would like to devoice:")
		cmd.Println(menuPrompt)
		phoneme, _ := readLineEOF(reader)
		cmd.Println(transcriptionService.DevoicedTranscription(phoneme))
	default:
		cmd.Println("User selection not handled")
	}

	cmd.Print("\nProgram terminated normally.\n\n\n")
	return nil
}

// printMenuInventory lists the built-in English inventory on one line.
func printMenuInventory(ctx context.Context, cmd *cobra.Command) error {
	var symbols []string
	if inventoryService != nil {
		inv, err := inventoryService.Get(ctx, domain.EnglishUSID)
		if err != nil {
			return err
		}
		symbols = inv.Symbols
	} else {
		symbols = domain.EnglishUS().Symbols
	}
	cmd.Println(strings.Join(symbols, " "))
	return nil
}

// isTerminal reports whether r is an interactive terminal. Ending a
// terminal session with ctrl+d counts as an empty selection.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
