// Package inventories provides the inventory list view for the TUI.
package inventories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// ErrNoInventoryService indicates that no inventory service was provided.
var ErrNoInventoryService = errors.New("inventory service not available")

// View lists built-in and stored inventories.
type View struct {
	styles           *styles.Styles
	inventoryService driving.InventoryService

	inventories []domain.Inventory
	selected    int
	width       int
	height      int
	ready       bool
	err         error
	loading     bool
}

// NewView creates a new inventories view.
func NewView(s *styles.Styles, inventoryService driving.InventoryService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{
		styles:           s,
		inventoryService: inventoryService,
		inventories:      []domain.Inventory{},
		width:            80,
	}
}

// Init initialises the view and loads inventories.
func (v *View) Init() tea.Cmd {
	v.loading = true
	return v.loadInventories()
}

// loadInventories returns a command that lists inventories.
func (v *View) loadInventories() tea.Cmd {
	return func() tea.Msg {
		if v.inventoryService == nil {
			return messages.InventoriesLoaded{Err: ErrNoInventoryService}
		}
		inventories, err := v.inventoryService.List(context.Background())
		return messages.InventoriesLoaded{Inventories: inventories, Err: err}
	}
}

// Update handles messages for the inventories view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.InventoriesLoaded:
		v.loading = false
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.inventories = msg.Inventories
		v.err = nil
		if v.selected >= len(v.inventories) {
			v.selected = max(len(v.inventories)-1, 0)
		}
		return v, nil

	case messages.InventoryRemoved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.loading = true
		return v, v.loadInventories()
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case "down", "j":
		if v.selected < len(v.inventories)-1 {
			v.selected++
		}
	case "enter":
		if inv := v.SelectedInventory(); inv != nil {
			selected := *inv
			return v, func() tea.Msg {
				return messages.InventorySelected{Inventory: selected}
			}
		}
	case "d", "delete":
		inv := v.SelectedInventory()
		if inv == nil {
			return v, nil
		}
		if inv.Builtin {
			v.err = fmt.Errorf("%s is built in and cannot be removed", inv.Name)
			return v, nil
		}
		return v, v.removeInventory(inv.ID)
	case "r":
		v.loading = true
		return v, v.loadInventories()
	}

	return v, nil
}

// removeInventory returns a command that removes an inventory.
func (v *View) removeInventory(id string) tea.Cmd {
	return func() tea.Msg {
		if v.inventoryService == nil {
			return messages.InventoryRemoved{ID: id, Err: ErrNoInventoryService}
		}
		err := v.inventoryService.Remove(context.Background(), id)
		return messages.InventoryRemoved{ID: id, Err: err}
	}
}

// View renders the inventories view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Inventories"))
	b.WriteString("\n\n")

	switch {
	case v.loading:
		b.WriteString(v.styles.Muted.Render("Loading inventories..."))
		b.WriteString("\n\n")
	case len(v.inventories) == 0 && v.err == nil:
		b.WriteString(v.styles.Muted.Render("No inventories."))
		b.WriteString("\n\n")
	default:
		for i := range v.inventories {
			b.WriteString(v.renderInventory(i, &v.inventories[i]))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderHelp())
	return b.String()
}

// renderInventory renders a single inventory line.
func (v *View) renderInventory(index int, inv *domain.Inventory) string {
	indicator := "  "
	if index == v.selected {
		indicator = "> "
	}

	tag := "[user]"
	if inv.Builtin {
		tag = "[builtin]"
	}
	count := fmt.Sprintf("%d sounds", len(inv.Symbols))

	name := inv.Name
	maxNameLen := max(v.width-len(tag)-len(count)-8, 10)
	if len(name) > maxNameLen {
		name = name[:maxNameLen-3] + "..."
	}

	if index == v.selected {
		return v.styles.Selected.Render(fmt.Sprintf("%s%-10s %s (%s)", indicator, tag, name, count))
	}
	return v.styles.Normal.Render(indicator) +
		v.styles.Subtitle.Render(fmt.Sprintf("%-10s ", tag)) +
		v.styles.Normal.Render(name) + " " +
		v.styles.Muted.Render("("+count+")")
}

func (v *View) renderHelp() string {
	return v.styles.Help.Render("[enter] sounds  [d] delete  [r] reload  [esc] back  [q] quit")
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
}

// Reset clears any error and keeps the loaded list.
func (v *View) Reset() {
	v.err = nil
}

// Inventories returns the loaded inventories.
func (v *View) Inventories() []domain.Inventory {
	return v.inventories
}

// SelectedIndex returns the selected inventory index.
func (v *View) SelectedIndex() int {
	return v.selected
}

// SelectedInventory returns the selected inventory, or nil if none.
func (v *View) SelectedInventory() *domain.Inventory {
	if v.selected < 0 || v.selected >= len(v.inventories) {
		return nil
	}
	return &v.inventories[v.selected]
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
