// Package chart provides the consonant chart view for the TUI.
package chart

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/chart"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// View draws the pulmonic consonant chart and highlights the symbol
// being typed.
type View struct {
	styles        *styles.Styles
	input         *input.SymbolInput
	transcription driving.TranscriptionService

	width  int
	height int
	ready  bool
}

// NewView creates a new chart view. transcription may be nil, in which
// case no description is shown.
func NewView(s *styles.Styles, transcription driving.TranscriptionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	in := input.NewSymbolInput(s)
	in.SetLabel("Find: ")

	return &View{
		styles:        s,
		input:         in,
		transcription: transcription,
		width:         80,
		height:        24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the chart view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// View renders the chart view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Consonants (pulmonic)"))
	b.WriteString("\n\n")
	b.WriteString(chart.Render(v.styles, v.Highlight()))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n")

	if symbol := v.Highlight(); symbol != "" && v.transcription != nil {
		a := v.transcription.Analyze(symbol)
		if a.Recognized {
			b.WriteString(v.styles.Normal.Render(a.Description))
		} else {
			b.WriteString(v.styles.Warning.Render("not recognized"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[type] find a symbol  [esc] back"))
	return b.String()
}

// Highlight returns the symbol currently marked on the chart.
func (v *View) Highlight() string {
	return v.input.Value()
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
}

// Reset clears the search.
func (v *View) Reset() {
	v.input.Reset()
}
