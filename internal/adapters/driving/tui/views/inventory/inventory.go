// Package inventory provides the inventory detail view for the TUI.
package inventory

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/list"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// ErrNoInventoryService indicates that no inventory service was provided.
var ErrNoInventoryService = errors.New("inventory service not available")

// View shows the sounds of one inventory and the class they form.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	sounds    *list.SoundList
	statusbar *status.Bar

	transcription    driving.TranscriptionService
	inventoryService driving.InventoryService

	inventory *domain.Inventory
	class     *domain.NaturalClass
	err       error

	width  int
	height int
	ready  bool
}

// NewView creates a new inventory detail view.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	transcription driving.TranscriptionService,
	inventoryService driving.InventoryService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.InventoryHelp())

	return &View{
		styles:           s,
		keymap:           km,
		sounds:           list.NewSoundList(s),
		statusbar:        bar,
		transcription:    transcription,
		inventoryService: inventoryService,
		width:            80,
		height:           24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetInventory sets the inventory to display and reads its symbols.
func (v *View) SetInventory(inv domain.Inventory) {
	v.inventory = &inv
	v.class = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")

	sounds := make([]domain.Realization, 0, len(inv.Symbols))
	for _, sym := range inv.Symbols {
		r := domain.Realization{Symbol: sym, Phonet: domain.Unrecognized}
		if v.transcription != nil {
			r.Phonet = v.transcription.Analyze(sym).Phonet
		}
		sounds = append(sounds, r)
	}
	v.sounds.SetTitle(inv.Name)
	v.sounds.SetSounds(sounds)
}

// Update handles messages for the inventory detail view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.ClassLoaded:
		if v.inventory == nil || msg.InventoryID != v.inventory.ID {
			return v, nil
		}
		if msg.Err != nil {
			v.err = msg.Err
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(msg.Err.Error())
			return v, nil
		}
		v.err = nil
		v.class = msg.Class
		v.statusbar.SetState(status.StateResult)
		v.statusbar.SetMessage(msg.Class.Description)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	return v, nil
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewInventories}
		}

	case keymap.Matches(msg.String(), v.keymap.Up):
		v.sounds.MoveUp()

	case keymap.Matches(msg.String(), v.keymap.Down):
		v.sounds.MoveDown()

	case keymap.Matches(msg.String(), v.keymap.Select):
		if sound := v.sounds.SelectedSound(); sound != nil {
			v.statusbar.SetState(status.StateResult)
			v.statusbar.SetMessage(fmt.Sprintf("%s  %s", sound.Symbol, sound.Phonet))
		}

	case keymap.Matches(msg.String(), v.keymap.Generalize):
		if v.inventory == nil {
			return v, nil
		}
		v.statusbar.SetState(status.StateWorking)
		return v, v.generalize(v.inventory.ID)

	case keymap.Matches(msg.String(), v.keymap.Remove):
		if v.inventory == nil {
			return v, nil
		}
		if v.inventory.Builtin {
			v.statusbar.SetState(status.StateError)
			v.statusbar.SetMessage(fmt.Sprintf("%s is built in and cannot be removed", v.inventory.Name))
			return v, nil
		}
		return v, v.remove(v.inventory.ID)
	}

	return v, nil
}

// generalize returns a command that finds the class covering the inventory.
func (v *View) generalize(id string) tea.Cmd {
	return func() tea.Msg {
		if v.inventoryService == nil {
			return messages.ClassLoaded{InventoryID: id, Err: ErrNoInventoryService}
		}
		class, err := v.inventoryService.Generalize(context.Background(), id)
		return messages.ClassLoaded{InventoryID: id, Class: class, Err: err}
	}
}

// remove returns a command that removes the inventory.
func (v *View) remove(id string) tea.Cmd {
	return func() tea.Msg {
		if v.inventoryService == nil {
			return messages.InventoryRemoved{ID: id, Err: ErrNoInventoryService}
		}
		err := v.inventoryService.Remove(context.Background(), id)
		return messages.InventoryRemoved{ID: id, Err: err}
	}
}

// View renders the inventory detail view.
func (v *View) View() string {
	if v.inventory == nil {
		return v.styles.Muted.Render("No inventory selected")
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render(v.inventory.Name))
	b.WriteString("\n")
	if v.inventory.Description != "" {
		b.WriteString(v.styles.Subtitle.Render(v.inventory.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(v.sounds.View())
	b.WriteString("\n\n")

	if v.class != nil {
		b.WriteString(v.styles.Label.Render("Natural class: "))
		b.WriteString(v.styles.Normal.Render(v.class.Description))
		b.WriteString("\n\n")
	}

	b.WriteString(v.statusbar.View())
	return b.String()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.sounds.SetDimensions(width, max(height-8, 5))
	v.statusbar.SetWidth(width)
}

// Reset clears the computed class and status.
func (v *View) Reset() {
	v.class = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Inventory returns the displayed inventory, or nil.
func (v *View) Inventory() *domain.Inventory {
	return v.inventory
}

// Class returns the last computed natural class, or nil.
func (v *View) Class() *domain.NaturalClass {
	return v.class
}

// Sounds returns the sounds shown for the inventory.
func (v *View) Sounds() []domain.Realization {
	return v.sounds.Sounds()
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
