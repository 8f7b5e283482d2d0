// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/phonet/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewTransform is the symbol entry and rewrite view.
	ViewTransform
	// ViewInventories lists phoneme inventories.
	ViewInventories
	// ViewInventoryDetail shows the sounds of one inventory.
	ViewInventoryDetail
	// ViewChart shows the pulmonic consonant chart.
	ViewChart
	// ViewHelp is the help/keybindings view.
	ViewHelp
	// ViewSettings is the settings configuration view.
	ViewSettings
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewTransform:
		return "transform"
	case ViewInventories:
		return "inventories"
	case ViewInventoryDetail:
		return "inventory_detail"
	case ViewChart:
		return "chart"
	case ViewHelp:
		return "help"
	case ViewSettings:
		return "settings"
	default:
		return "unknown"
	}
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}

// TransformCompleted carries the result of applying a rule.
type TransformCompleted struct {
	Transformation *domain.Transformation
	Err            error
}

// InventoriesLoaded carries the list of inventories from the service.
type InventoriesLoaded struct {
	Inventories []domain.Inventory
	Err         error
}

// InventorySelected signals an inventory was selected for the detail view.
type InventorySelected struct {
	Inventory domain.Inventory
}

// InventoryRemoved signals an inventory was removed.
type InventoryRemoved struct {
	ID  string
	Err error
}

// ClassLoaded carries the natural class covering an inventory.
type ClassLoaded struct {
	InventoryID string
	Class       *domain.NaturalClass
	Err         error
}

// SettingsLoaded carries the application settings.
type SettingsLoaded struct {
	Settings *domain.AppSettings
	Err      error
}

// SettingsSaved signals settings were saved.
type SettingsSaved struct {
	Err error
}

// ConfigReloaded signals the config file changed on disk and was reloaded.
type ConfigReloaded struct{}
