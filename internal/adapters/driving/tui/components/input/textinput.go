// Package input provides text input components for the TUI.
package input

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
)

// symbolCharLimit bounds input to a few grapheme clusters; one symbol
// never needs more than a base, a tie bar, a second base and a diacritic.
const symbolCharLimit = 16

// SymbolInput wraps a bubbles textinput for entering an IPA symbol.
type SymbolInput struct {
	textinput textinput.Model
	styles    *styles.Styles
	label     string
	width     int
}

// NewSymbolInput creates a new symbol input component.
func NewSymbolInput(s *styles.Styles) *SymbolInput {
	if s == nil {
		s = styles.DefaultStyles()
	}

	ti := textinput.New()
	ti.Placeholder = "Enter an IPA symbol, e.g. s, tʰ, n̥"
	ti.Focus()
	ti.CharLimit = symbolCharLimit
	ti.Width = 40

	return &SymbolInput{
		textinput: ti,
		styles:    s,
		label:     "Symbol: ",
		width:     40,
	}
}

// Init initialises the symbol input.
func (s *SymbolInput) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles input messages.
func (s *SymbolInput) Update(msg tea.Msg) (*SymbolInput, tea.Cmd) {
	var cmd tea.Cmd
	s.textinput, cmd = s.textinput.Update(msg)
	return s, cmd
}

// View renders the symbol input.
func (s *SymbolInput) View() string {
	label := s.styles.Title.Render(s.label)
	input := s.styles.InputField.Render(s.textinput.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, label, input)
}

// Value returns the current input value, trimmed.
func (s *SymbolInput) Value() string {
	return strings.TrimSpace(s.textinput.Value())
}

// SetValue sets the input value.
func (s *SymbolInput) SetValue(value string) {
	s.textinput.SetValue(value)
}

// SetLabel sets the text shown before the input.
func (s *SymbolInput) SetLabel(label string) {
	s.label = label
}

// Focus sets focus on the input.
func (s *SymbolInput) Focus() tea.Cmd {
	return s.textinput.Focus()
}

// Blur removes focus from the input.
func (s *SymbolInput) Blur() {
	s.textinput.Blur()
}

// Focused returns whether the input is focused.
func (s *SymbolInput) Focused() bool {
	return s.textinput.Focused()
}

// SetWidth sets the width of the input.
func (s *SymbolInput) SetWidth(width int) {
	s.width = width
	// Account for label and padding
	s.textinput.Width = max(width-lipgloss.Width(s.label)-4, 20)
}

// Width returns the current width.
func (s *SymbolInput) Width() int {
	return s.width
}

// Reset clears the input.
func (s *SymbolInput) Reset() {
	s.textinput.Reset()
}
