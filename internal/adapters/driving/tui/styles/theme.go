// Package styles provides the palette and lipgloss styles for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the palette, named by role.
type Theme struct {
	Accent  lipgloss.Color // titles, labels, selection
	Symbol  lipgloss.Color // IPA symbols and highlighted chart cells
	Text    lipgloss.Color
	Dim     lipgloss.Color // help, hints, empty chart cells
	Surface lipgloss.Color // screen background
	Bar     lipgloss.Color // status bar background
	Edge    lipgloss.Color // borders
	Ok      lipgloss.Color
	Caution lipgloss.Color
	Fault   lipgloss.Color
}

// DefaultTheme returns the dark palette.
func DefaultTheme() *Theme {
	return &Theme{
		Accent:  "#0EA5A4",
		Symbol:  "#F59E0B",
		Text:    "#CDD6F4",
		Dim:     "#6C7086",
		Surface: "#1E1E2E",
		Bar:     "#181825",
		Edge:    "#45475A",
		Ok:      "#A6E3A1",
		Caution: "#F9E2AF",
		Fault:   "#F38BA8",
	}
}

// Styles holds the styles the views render with.
type Styles struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Help     lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Border     lipgloss.Style

	// Symbol is for an IPA symbol shown on its own, Highlight for the
	// chart cell matching the typed symbol, Label for feature names and
	// chart headers.
	Symbol    lipgloss.Style
	Highlight lipgloss.Style
	Label     lipgloss.Style
}

// NewStyles builds styles from theme, or from DefaultTheme when theme is nil.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	fg := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c)
	}
	bordered := lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(theme.Edge)

	return &Styles{
		Title:    fg(theme.Accent).Bold(true),
		Subtitle: fg(theme.Symbol).Bold(true),
		Normal:   fg(theme.Text),
		Muted:    fg(theme.Dim),
		Selected: fg(theme.Text).Background(theme.Accent).Bold(true),
		Help:     fg(theme.Dim),

		Error:   fg(theme.Fault),
		Success: fg(theme.Ok),
		Warning: fg(theme.Caution),

		InputField: bordered.Padding(0, 1),
		StatusBar:  fg(theme.Dim).Background(theme.Bar).Padding(0, 1),
		Border:     bordered,

		Symbol:    fg(theme.Symbol).Bold(true),
		Highlight: fg(theme.Surface).Background(theme.Symbol).Bold(true),
		Label:     fg(theme.Accent),
	}
}

// DefaultStyles returns styles for the default theme.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}
