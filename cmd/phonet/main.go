// Command phonet reads, rewrites and writes IPA phonetic symbols.
//
// Configuration lives in ~/.phonet/config.toml and user inventories in
// ~/.phonet/data/phonet.db unless the settings say otherwise.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/phonet/internal/adapters/driven/config/file"
	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/phonet/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/phonet/internal/adapters/driving/cli"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driven"
	"github.com/custodia-labs/phonet/internal/core/services"
	"github.com/custodia-labs/phonet/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configStore, err := file.NewConfigStore(os.Getenv("PHONET_CONFIG_DIR"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: reading settings: %v\n", err)
		return 1
	}

	inventoryStore, closeStore := openInventoryStore(settings.Storage)
	defer closeStore()

	transcriptionService := services.NewTranscriptionService(configStore)
	featureService := services.NewFeatureService(transcriptionService)
	inventoryService := services.NewInventoryService(inventoryStore, featureService)

	cli.SetVersion(version)
	cli.SetTranscriptionService(transcriptionService)
	cli.SetFeatureService(featureService)
	cli.SetInventoryService(inventoryService)
	cli.SetSettingsService(settingsService)
	cli.SetConfigWatcher(configStore)
	cli.SetTUIConfig(&cli.TUIConfig{
		TranscriptionService: transcriptionService,
		FeatureService:       featureService,
		InventoryService:     inventoryService,
		SettingsService:      settingsService,
	})

	// Cobra has already printed the error.
	if err := cli.Execute(); err != nil {
		return 1
	}
	return 0
}

// openInventoryStore opens the configured backend. A SQLite store that
// cannot be opened falls back to memory so read-only commands still work.
func openInventoryStore(cfg domain.StorageSettings) (driven.InventoryStore, func()) {
	if cfg.Backend == domain.StorageBackendMemory {
		return memory.NewInventoryStore(), func() {}
	}

	store, err := sqlite.NewStore(cfg.DataDir)
	if err != nil {
		// Flags are not parsed yet, so this cannot go through the logger.
		fmt.Fprintf(os.Stderr, "Warning: opening inventory database: %v; inventories will not be saved\n", err)
		return memory.NewInventoryStore(), func() {}
	}
	return store.InventoryStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("Closing inventory database: %v", err)
		}
	}
}
