// Package transform provides the symbol rewrite view for the TUI.
package transform

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/chart"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/input"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// ErrNoTranscriptionService indicates that no transcription service was provided.
var ErrNoTranscriptionService = errors.New("transcription service is required")

// chartMinHeight is the terminal height needed to show the chart below
// the result.
const chartMinHeight = 34

// View lets the user enter a symbol, pick a rule and see the result.
type View struct {
	styles    *styles.Styles
	keymap    *keymap.KeyMap
	input     *input.SymbolInput
	statusbar *status.Bar

	transcription driving.TranscriptionService

	rules  []domain.Rule
	rule   int
	result *domain.Transformation
	err    error

	width  int
	height int
	ready  bool
}

// NewView creates a new transform view.
func NewView(s *styles.Styles, km *keymap.KeyMap, transcription driving.TranscriptionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	bar := status.NewBar(s, km)
	bar.SetHints(km.TransformHelp())

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSymbolInput(s),
		statusbar:     bar,
		transcription: transcription,
		rules:         domain.AllRules(),
		width:         80,
		height:        24,
	}
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return tea.Batch(v.input.Focus(), v.input.Init())
}

// Update handles messages for the transform view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.TransformCompleted:
		v.handleCompleted(msg)
		return v, nil

	case messages.ErrorOccurred:
		v.err = msg.Err
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case keymap.Matches(msg.String(), v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewMenu}
		}

	case keymap.Matches(msg.String(), v.keymap.NextRule):
		v.rule = (v.rule + 1) % len(v.rules)
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.PrevRule):
		v.rule = (v.rule + len(v.rules) - 1) % len(v.rules)
		return v, nil

	case keymap.Matches(msg.String(), v.keymap.Apply):
		symbol := v.input.Value()
		if symbol == "" {
			return v, nil
		}
		v.statusbar.SetState(status.StateWorking)
		return v, v.apply(symbol, v.rules[v.rule])
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// apply returns a command that runs rule on symbol.
func (v *View) apply(symbol string, rule domain.Rule) tea.Cmd {
	return func() tea.Msg {
		if v.transcription == nil {
			return messages.TransformCompleted{Err: ErrNoTranscriptionService}
		}
		t, err := v.transcription.Transform(symbol, rule, domain.TransformOptions{})
		return messages.TransformCompleted{Transformation: t, Err: err}
	}
}

func (v *View) handleCompleted(msg messages.TransformCompleted) {
	if msg.Err != nil {
		v.err = msg.Err
		v.result = nil
		v.statusbar.SetState(status.StateError)
		v.statusbar.SetMessage(msg.Err.Error())
		return
	}

	v.err = nil
	v.result = msg.Transformation
	v.statusbar.SetState(status.StateResult)
	switch {
	case !v.result.Source.Recognized:
		v.statusbar.SetMessage(fmt.Sprintf("%s not recognized", v.result.Source.Input))
	case v.result.Changed:
		v.statusbar.SetMessage(fmt.Sprintf("%s → %s", v.result.Source.Input, v.result.Output))
	default:
		v.statusbar.SetMessage(fmt.Sprintf("%s unchanged", v.result.Source.Input))
	}
}

// View renders the transform view.
func (v *View) View() string {
	if !v.ready {
		return "Initialising..."
	}

	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Transform a sound"))
	b.WriteString("\n\n")
	b.WriteString(v.input.View())
	b.WriteString("\n\n")
	b.WriteString(v.renderRules())
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}
	if v.result != nil {
		b.WriteString(v.renderResult())
		b.WriteString("\n\n")
		if v.height >= chartMinHeight {
			b.WriteString(chart.Render(v.styles, v.result.Output))
			b.WriteString("\n")
		}
	}

	b.WriteString(v.statusbar.View())
	return b.String()
}

func (v *View) renderRules() string {
	parts := make([]string, 0, len(v.rules))
	for i, r := range v.rules {
		label := " " + r.String() + " "
		if i == v.rule {
			parts = append(parts, v.styles.Selected.Render(label))
		} else {
			parts = append(parts, v.styles.Muted.Render(label))
		}
	}
	return v.styles.Label.Render("Rule: ") + strings.Join(parts, " ")
}

func (v *View) renderResult() string {
	t := v.result

	before := v.renderSound("Before", t.Source.Input, t.Source.Description, t.Source.Recognized)
	after := v.renderSound("After", t.Output, t.Result.String(), t.Source.Recognized)
	arrow := v.styles.Muted.Render("  →  ")

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	return lipgloss.JoinHorizontal(lipgloss.Center, before, arrow, after)
}

func (v *View) renderSound(title, symbol, description string, recognized bool) string {
	lines := []string{
		v.styles.Label.Render(title),
		v.styles.Symbol.Render(symbol),
	}
	if recognized {
		lines = append(lines, v.styles.Normal.Render(description))
	} else {
		lines = append(lines, v.styles.Warning.Render("not recognized"))
	}
	return v.styles.Border.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.input.SetWidth(width)
	v.statusbar.SetWidth(width)
}

// Reset clears the input and result.
func (v *View) Reset() {
	v.input.Reset()
	v.result = nil
	v.err = nil
	v.statusbar.SetState(status.StateReady)
	v.statusbar.SetMessage("")
}

// Rule returns the selected rule.
func (v *View) Rule() domain.Rule {
	return v.rules[v.rule]
}

// Result returns the last transformation, or nil.
func (v *View) Result() *domain.Transformation {
	return v.result
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
