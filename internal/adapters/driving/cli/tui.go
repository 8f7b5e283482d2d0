package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
	"github.com/custodia-labs/phonet/internal/logger"
)

// TUIConfig holds configuration for the TUI command.
type TUIConfig struct {
	TranscriptionService driving.TranscriptionService
	FeatureService       driving.FeatureService
	InventoryService     driving.InventoryService
	SettingsService      driving.SettingsService
}

// tuiConfig holds the current TUI configuration.
var tuiConfig *TUIConfig

// appRunner starts the TUI program. Tests replace it to avoid taking
// over the terminal.
var appRunner = func(app *tui.App) error {
	return app.Run()
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for phonet.

The TUI lets you type a symbol and rewrite it with a rule, browse
inventories and their natural classes, and look symbols up on the
consonant chart.

Controls:
  ↑/k, ↓/j  - Navigate
  Enter     - Select / Apply
  Tab       - Next rule
  Esc       - Back
  q         - Quit (from the menu)`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

// SetTUIConfig sets the configuration for the TUI command.
func SetTUIConfig(config *TUIConfig) {
	tuiConfig = config
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{}
	if tuiConfig != nil {
		ports = tui.NewPorts(
			tuiConfig.TranscriptionService,
			tuiConfig.FeatureService,
			tuiConfig.InventoryService,
			tuiConfig.SettingsService,
		)
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	if configWatcher != nil {
		go func() {
			err := configWatcher.Watch(ctx, func() {
				app.Send(messages.ConfigReloaded{})
			})
			if err != nil && ctx.Err() == nil {
				// A broken watcher only stops live reload.
				logger.Warn("config watcher stopped: %v", err)
			}
		}()
	}

	if err := appRunner(app); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
