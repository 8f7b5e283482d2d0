package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/chart"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/inventories"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/inventory"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/settings"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/views/transform"
	"github.com/custodia-labs/phonet/internal/core/domain"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *styles.Styles

	menuView          *menu.View
	transformView     *transform.View
	inventoriesView   *inventories.View
	inventoryView     *inventory.View
	chartView         *chart.View
	settingsView      *settings.View
	selectedInventory *domain.Inventory

	// currentView tracks which view is active.
	currentView messages.ViewType

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool

	// program is set while Run is active so Send can reach it.
	mu      sync.Mutex
	program *tea.Program
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		menuView:        menu.NewView(s),
		transformView:   transform.NewView(s, km, ports.Transcription),
		inventoriesView: inventories.NewView(s, ports.Inventory),
		inventoryView:   inventory.NewView(s, km, ports.Transcription, ports.Inventory),
		chartView:       chart.NewView(s, ports.Transcription),
		settingsView:    settings.NewView(s, ports.Settings),
		currentView:     messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		tea.SetWindowTitle("phonet - IPA sound rewriting"),
	)
}

// Update implements tea.Model.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.currentView == messages.ViewHelp {
			if msg.Type == tea.KeyEsc {
				a.currentView = messages.ViewMenu
			}
			return a, nil
		}
		return a, a.forward(msg)

	case messages.ViewChanged:
		a.currentView = msg.View
		switch msg.View {
		case messages.ViewTransform:
			a.transformView.Reset()
			return a, a.transformView.Init()
		case messages.ViewInventories:
			a.inventoriesView.Reset()
			return a, a.inventoriesView.Init()
		case messages.ViewInventoryDetail:
			return a, a.inventoryView.Init()
		case messages.ViewChart:
			a.chartView.Reset()
			return a, a.chartView.Init()
		case messages.ViewSettings:
			a.settingsView.Reset()
			return a, a.settingsView.Init()
		case messages.ViewMenu, messages.ViewHelp:
			// No initialisation needed.
		}
		return a, nil

	case messages.InventorySelected:
		inv := msg.Inventory
		a.selectedInventory = &inv
		a.inventoryView.SetInventory(inv)
		a.currentView = messages.ViewInventoryDetail
		return a, a.inventoryView.Init()

	case messages.InventoryRemoved:
		if msg.Err != nil {
			a.err = msg.Err
			if a.currentView == messages.ViewInventoryDetail {
				return a, a.forward(messages.ErrorOccurred{Err: msg.Err})
			}
		} else if a.currentView == messages.ViewInventoryDetail {
			a.selectedInventory = nil
			a.currentView = messages.ViewInventories
		}
		a.inventoriesView, cmd = a.inventoriesView.Update(msg)
		return a, cmd

	case messages.ConfigReloaded:
		// Settings show the reloaded values; other views read settings
		// per request.
		a.settingsView, cmd = a.settingsView.Update(msg)
		return a, cmd

	case messages.ErrorOccurred:
		a.err = msg.Err
		return a, a.forward(msg)

	case messages.Quit:
		return a, tea.Quit
	}

	return a, a.forward(msg)
}

// forward passes msg to the active view.
func (a *App) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentView {
	case messages.ViewMenu:
		a.menuView, cmd = a.menuView.Update(msg)
	case messages.ViewTransform:
		a.transformView, cmd = a.transformView.Update(msg)
	case messages.ViewInventories:
		a.inventoriesView, cmd = a.inventoriesView.Update(msg)
	case messages.ViewInventoryDetail:
		a.inventoryView, cmd = a.inventoryView.Update(msg)
	case messages.ViewChart:
		a.chartView, cmd = a.chartView.Update(msg)
	case messages.ViewSettings:
		a.settingsView, cmd = a.settingsView.Update(msg)
	case messages.ViewHelp:
		// Help is static.
	}
	return cmd
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.currentView {
	case messages.ViewMenu:
		return a.menuView.View()
	case messages.ViewTransform:
		return a.transformView.View()
	case messages.ViewInventories:
		return a.inventoriesView.View()
	case messages.ViewInventoryDetail:
		return a.inventoryView.View()
	case messages.ViewChart:
		return a.chartView.View()
	case messages.ViewSettings:
		return a.settingsView.View()
	case messages.ViewHelp:
		return a.viewHelp()
	default:
		return a.menuView.View()
	}
}

// viewHelp renders the help view.
func (a *App) viewHelp() string {
	return a.styles.Title.Render("Help") + `

Navigation:
  esc         Back
  ctrl+c      Quit

Menu:
  j/k, ↑/↓    Navigate options
  1-9         Jump to option
  enter       Select option
  q           Quit

Transform:
  (type)      Enter an IPA symbol
  tab         Next rule (voice, devoice, spirantize)
  shift+tab   Previous rule
  enter       Apply rule

Inventories:
  enter       Show sounds
  g           Natural class of the inventory
  d           Delete (user inventories only)

Chart:
  (type)      Highlight a symbol

` + a.styles.Help.Render("[esc] back to menu")
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen(), tea.WithContext(a.ctx))

	a.mu.Lock()
	a.program = p
	a.mu.Unlock()

	defer func() {
		a.mu.Lock()
		a.program = nil
		a.mu.Unlock()
	}()

	_, err := p.Run()
	return err
}

// Send delivers msg to the running program. It is safe to call from
// other goroutines and does nothing when the app is not running.
func (a *App) Send(msg tea.Msg) {
	a.mu.Lock()
	p := a.program
	a.mu.Unlock()

	if p != nil {
		p.Send(msg)
	}
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// SelectedInventory returns the inventory shown in the detail view, or nil.
func (a *App) SelectedInventory() *domain.Inventory {
	return a.selectedInventory
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions on the app and every view.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.transformView.SetDimensions(width, height)
	a.inventoriesView.SetDimensions(width, height)
	a.inventoryView.SetDimensions(width, height)
	a.chartView.SetDimensions(width, height)
	a.settingsView.SetDimensions(width, height)
}
