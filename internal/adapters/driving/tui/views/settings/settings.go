// Package settings provides the settings configuration view for the TUI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ports/driving"
)

// ErrNoSettingsService indicates that no settings service was provided.
var ErrNoSettingsService = errors.New("settings service not available")

// Section tracks which settings section is active.
type Section int

const (
	SectionOverview Section = iota
	SectionOutputFormat
	SectionDiacritic
	SectionStorage
)

// Key constants for key handling.
const (
	keyDown  = "down"
	keyEnter = "enter"
	keyTab   = "tab"
)

// overviewItems is the number of editable settings on the overview.
const overviewItems = 3

// View is the settings configuration view.
type View struct {
	styles          *styles.Styles
	settingsService driving.SettingsService

	settings *domain.AppSettings
	err      error

	section      Section
	selected     int
	focusedField int // 1 when the data directory input has focus

	dataDirInput textinput.Model

	width  int
	height int
	ready  bool
}

// NewView creates a new settings view.
func NewView(s *styles.Styles, settingsService driving.SettingsService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}

	dataDirInput := textinput.New()
	dataDirInput.Placeholder = "~/.phonet/data"
	dataDirInput.CharLimit = 512

	return &View{
		styles:          s,
		settingsService: settingsService,
		section:         SectionOverview,
		dataDirInput:    dataDirInput,
	}
}

// Init initialises the view and loads settings.
func (v *View) Init() tea.Cmd {
	return v.loadSettings()
}

// loadSettings returns a command that loads current settings.
func (v *View) loadSettings() tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsLoaded{Err: ErrNoSettingsService}
		}
		settings, err := v.settingsService.Get()
		return messages.SettingsLoaded{Settings: settings, Err: err}
	}
}

// Update handles messages for the settings view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case messages.SettingsLoaded:
		if msg.Err != nil {
			v.err = msg.Err
		} else {
			v.settings = msg.Settings
			v.err = nil
		}
		return v, nil

	case messages.SettingsSaved:
		if msg.Err != nil {
			v.err = msg.Err
			return v, nil
		}
		v.err = nil
		v.backToOverview()
		return v, v.loadSettings()

	case messages.ConfigReloaded:
		return v, v.loadSettings()

	case tea.KeyMsg:
		return v.handleKeyMsg(msg)
	}

	return v, nil
}

// handleKeyMsg handles key presses based on current section.
func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	if msg.String() == "esc" {
		if v.section == SectionOverview {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewMenu}
			}
		}
		v.backToOverview()
		return v, nil
	}

	switch v.section {
	case SectionOverview:
		return v.handleOverviewKeys(msg)
	case SectionOutputFormat:
		return v.handleOptionKeys(msg, len(domain.AllOutputFormats()), v.setOutputFormat)
	case SectionDiacritic:
		return v.handleOptionKeys(msg, len(domain.AllDiacriticPlacements()), v.setVoicelessDiacritic)
	case SectionStorage:
		return v.handleStorageKeys(msg)
	}

	return v, nil
}

func (v *View) handleOverviewKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < overviewItems-1 {
			v.selected++
		}
	case keyEnter:
		switch v.selected {
		case 0:
			v.section = SectionOutputFormat
			v.selected = v.currentIndex(SectionOutputFormat)
		case 1:
			v.section = SectionDiacritic
			v.selected = v.currentIndex(SectionDiacritic)
		case 2:
			v.section = SectionStorage
			v.selected = v.currentIndex(SectionStorage)
			if v.settings != nil {
				v.dataDirInput.SetValue(v.settings.Storage.DataDir)
			}
		}
	}
	return v, nil
}

// handleOptionKeys moves through a list of count options and saves the
// selected one on enter.
func (v *View) handleOptionKeys(msg tea.KeyMsg, count int, save func(int) tea.Cmd) (*View, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if v.selected > 0 {
			v.selected--
		}
	case keyDown, "j":
		if v.selected < count-1 {
			v.selected++
		}
	case keyEnter:
		if v.selected >= 0 && v.selected < count {
			return v, save(v.selected)
		}
	}
	return v, nil
}

func (v *View) handleStorageKeys(msg tea.KeyMsg) (*View, tea.Cmd) {
	backends := domain.AllStorageBackends()

	if v.focusedField == 1 {
		switch msg.String() {
		case keyTab, "shift+tab":
			v.focusedField = 0
			v.dataDirInput.Blur()
			return v, nil
		case keyEnter:
			if v.selected >= 0 && v.selected < len(backends) {
				return v, v.setStorageBackend(v.selected)
			}
		default:
			var cmd tea.Cmd
			v.dataDirInput, cmd = v.dataDirInput.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if msg.String() == keyTab {
		if v.selected >= 0 && v.selected < len(backends) && backends[v.selected].IsPersistent() {
			v.focusedField = 1
			return v, v.dataDirInput.Focus()
		}
		return v, nil
	}
	return v.handleOptionKeys(msg, len(backends), v.setStorageBackend)
}

func (v *View) backToOverview() {
	v.section = SectionOverview
	v.selected = 0
	v.focusedField = 0
	v.dataDirInput.Blur()
}

// Commands to update settings.

func (v *View) setOutputFormat(index int) tea.Cmd {
	format := domain.AllOutputFormats()[index]
	return v.save(func(s driving.SettingsService) error {
		return s.SetOutputFormat(format)
	})
}

func (v *View) setVoicelessDiacritic(index int) tea.Cmd {
	placement := domain.AllDiacriticPlacements()[index]
	return v.save(func(s driving.SettingsService) error {
		return s.SetVoicelessDiacritic(placement)
	})
}

func (v *View) setStorageBackend(index int) tea.Cmd {
	backend := domain.AllStorageBackends()[index]
	dataDir := ""
	if backend.IsPersistent() {
		dataDir = strings.TrimSpace(v.dataDirInput.Value())
	}
	return v.save(func(s driving.SettingsService) error {
		return s.SetStorageBackend(backend, dataDir)
	})
}

func (v *View) save(apply func(driving.SettingsService) error) tea.Cmd {
	return func() tea.Msg {
		if v.settingsService == nil {
			return messages.SettingsSaved{Err: ErrNoSettingsService}
		}
		return messages.SettingsSaved{Err: apply(v.settingsService)}
	}
}

// currentIndex returns the position of the saved value in a section's
// option list.
func (v *View) currentIndex(section Section) int {
	if v.settings == nil {
		return 0
	}
	switch section {
	case SectionOutputFormat:
		return indexOf(domain.AllOutputFormats(), v.settings.Output.Format)
	case SectionDiacritic:
		return indexOf(domain.AllDiacriticPlacements(), v.settings.Render.VoicelessDiacritic)
	case SectionStorage:
		return indexOf(domain.AllStorageBackends(), v.settings.Storage.Backend)
	default:
		return 0
	}
}

func indexOf[T comparable](options []T, current T) int {
	for i, o := range options {
		if o == current {
			return i
		}
	}
	return 0
}

// option is a settings value that can describe itself.
type option interface {
	comparable
	Description() string
}

// View renders the settings view.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Settings"))
	b.WriteString("\n\n")

	if v.err != nil {
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %s", v.err.Error())))
		b.WriteString("\n\n")
	}

	if v.settings == nil {
		b.WriteString(v.styles.Muted.Render("Loading settings..."))
		return b.String()
	}

	switch v.section {
	case SectionOverview:
		b.WriteString(v.renderOverview())
	case SectionOutputFormat:
		b.WriteString(renderOptions(v, "Select Output Format", domain.AllOutputFormats(), v.settings.Output.Format))
	case SectionDiacritic:
		b.WriteString(renderOptions(v, "Select Voiceless Diacritic Placement",
			domain.AllDiacriticPlacements(), v.settings.Render.VoicelessDiacritic))
	case SectionStorage:
		b.WriteString(v.renderStorageSelect())
	}

	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return b.String()
}

func (v *View) renderOverview() string {
	var b strings.Builder

	storageValue := v.settings.Storage.Backend.Description()
	if v.settings.Storage.Backend.IsPersistent() && v.settings.Storage.DataDir != "" {
		storageValue = fmt.Sprintf("%s in %s", storageValue, v.settings.Storage.DataDir)
	}

	items := []struct {
		label string
		value string
	}{
		{label: "Output Format", value: v.settings.Output.Format.Description()},
		{label: "Voiceless Diacritic", value: v.settings.Render.VoicelessDiacritic.Description()},
		{label: "Storage", value: storageValue},
	}

	for i, item := range items {
		indicator := "  "
		if i == v.selected {
			indicator = "> "
		}
		line := fmt.Sprintf("%s%s: %s", indicator, item.label, item.value)
		if i == v.selected {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	mcp := "disabled"
	if v.settings.MCP.RateLimit > 0 {
		mcp = fmt.Sprintf("%g requests/s (burst %d)", v.settings.MCP.RateLimit, v.settings.MCP.Burst)
	}
	b.WriteString(v.styles.Muted.Render("  MCP rate limit: " + mcp))
	b.WriteString("\n\n")

	if v.settingsService != nil {
		if err := v.settingsService.Validate(); err != nil {
			b.WriteString(v.styles.Warning.Render(fmt.Sprintf("Warning: %s", err.Error())))
		} else {
			b.WriteString(v.styles.Success.Render("Configuration is valid"))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderOptions[T option](v *View, title string, options []T, current T) string {
	var b strings.Builder

	b.WriteString(v.styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	for i, o := range options {
		focused := i == v.selected && v.focusedField == 0
		indicator := "  "
		if focused {
			indicator = "> "
		}

		marker := ""
		if o == current {
			marker = v.styles.Success.Render(" (current)")
		}

		line := fmt.Sprintf("%s%s%s", indicator, o.Description(), marker)
		if focused {
			b.WriteString(v.styles.Selected.Render(line))
		} else {
			b.WriteString(v.styles.Normal.Render(line))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func (v *View) renderStorageSelect() string {
	var b strings.Builder

	backends := domain.AllStorageBackends()
	b.WriteString(renderOptions(v, "Select Storage Backend", backends, v.settings.Storage.Backend))

	if v.selected >= 0 && v.selected < len(backends) && backends[v.selected].IsPersistent() {
		b.WriteString("\n")
		b.WriteString(v.styles.Normal.Render("Data directory:"))
		b.WriteString("\n")
		b.WriteString(v.dataDirInput.View())
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render("Storage changes apply on next start."))
	b.WriteString("\n")

	return b.String()
}

func (v *View) renderHelp() string {
	switch v.section {
	case SectionOverview:
		return v.styles.Help.Render("[j/k] navigate  [enter] edit  [esc] back")
	case SectionOutputFormat, SectionDiacritic:
		return v.styles.Help.Render("[j/k] navigate  [enter] select  [esc] back")
	case SectionStorage:
		if v.focusedField == 1 {
			return v.styles.Help.Render("[tab] back to list  [enter] save  [esc] back")
		}
		return v.styles.Help.Render("[j/k] navigate  [tab] data directory  [enter] select  [esc] back")
	default:
		return ""
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.ready = true
	v.dataDirInput.Width = max(width-4, 20)
}

// Reset resets the view to initial state.
func (v *View) Reset() {
	v.backToOverview()
	v.err = nil
	v.dataDirInput.SetValue("")
}

// Section returns the active section.
func (v *View) Section() Section {
	return v.section
}

// Settings returns the loaded settings, or nil.
func (v *View) Settings() *domain.AppSettings {
	return v.settings
}

// Err returns the last error.
func (v *View) Err() error {
	return v.err
}
