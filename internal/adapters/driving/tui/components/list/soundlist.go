// Package list provides list display components for the TUI.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ipa"
)

// SoundList displays sounds with their descriptions in a navigable list.
type SoundList struct {
	title    string
	sounds   []domain.Realization
	selected int
	styles   *styles.Styles
	width    int
	height   int
}

// NewSoundList creates a new sound list component.
func NewSoundList(s *styles.Styles) *SoundList {
	if s == nil {
		s = styles.DefaultStyles()
	}

	return &SoundList{
		title:    "Sounds",
		sounds:   nil,
		selected: 0,
		styles:   s,
		width:    80,
		height:   10,
	}
}

// Init initialises the sound list.
func (r *SoundList) Init() tea.Cmd {
	return nil
}

// Update handles list navigation messages.
func (r *SoundList) Update(msg tea.Msg) (*SoundList, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "up", "k":
			r.MoveUp()
		case "down", "j":
			r.MoveDown()
		}
	}
	return r, nil
}

// View renders the sound list.
func (r *SoundList) View() string {
	if len(r.sounds) == 0 {
		return r.styles.Muted.Render("No sounds")
	}

	lines := make([]string, 0, len(r.sounds)+2)
	header := r.styles.Subtitle.Render(fmt.Sprintf("%s (%d)", r.title, len(r.sounds)))
	lines = append(lines, header, "")

	visibleCount := max(r.height-4, 1)
	start := 0
	if r.selected >= visibleCount {
		start = r.selected - visibleCount + 1
	}
	end := min(start+visibleCount, len(r.sounds))

	width := 0
	for i := range r.sounds {
		width = max(width, ipa.Width(r.sounds[i].Symbol))
	}
	for i := start; i < end; i++ {
		lines = append(lines, r.renderSound(i, width))
	}

	return strings.Join(lines, "\n")
}

// renderSound formats one sound as its padded symbol and description.
func (r *SoundList) renderSound(index, symbolWidth int) string {
	sound := r.sounds[index]

	description := sound.Phonet.String()
	maxLen := max(r.width-symbolWidth-8, 10)
	if len(description) > maxLen {
		description = description[:maxLen-3] + "..."
	}

	if index == r.selected {
		return r.styles.Selected.Render(fmt.Sprintf("> %s  %s", ipa.Pad(sound.Symbol, symbolWidth), description))
	}
	return "  " + r.styles.Symbol.Render(ipa.Pad(sound.Symbol, symbolWidth)) + "  " +
		r.styles.Muted.Render(description)
}

// SetTitle sets the list header.
func (r *SoundList) SetTitle(title string) {
	r.title = title
}

// SetSounds updates the list.
func (r *SoundList) SetSounds(sounds []domain.Realization) {
	r.sounds = sounds
	r.selected = 0
}

// Sounds returns the current sounds.
func (r *SoundList) Sounds() []domain.Realization {
	return r.sounds
}

// Selected returns the index of the selected sound.
func (r *SoundList) Selected() int {
	return r.selected
}

// SetSelected sets the selected index.
func (r *SoundList) SetSelected(index int) {
	if index >= 0 && index < len(r.sounds) {
		r.selected = index
	}
}

// SelectedSound returns the currently selected sound, or nil if none.
func (r *SoundList) SelectedSound() *domain.Realization {
	if len(r.sounds) == 0 || r.selected < 0 || r.selected >= len(r.sounds) {
		return nil
	}
	return &r.sounds[r.selected]
}

// MoveUp moves selection up.
func (r *SoundList) MoveUp() {
	if r.selected > 0 {
		r.selected--
	}
}

// MoveDown moves selection down.
func (r *SoundList) MoveDown() {
	if r.selected < len(r.sounds)-1 {
		r.selected++
	}
}

// SetDimensions sets the component dimensions.
func (r *SoundList) SetDimensions(width, height int) {
	r.width = width
	r.height = height
}

// Count returns the number of sounds.
func (r *SoundList) Count() int {
	return len(r.sounds)
}

// IsEmpty returns whether the list is empty.
func (r *SoundList) IsEmpty() bool {
	return len(r.sounds) == 0
}
