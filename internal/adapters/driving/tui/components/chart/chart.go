// Package chart renders the IPA pulmonic consonant chart.
package chart

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/phonet/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/phonet/internal/core/domain"
	"github.com/custodia-labs/phonet/internal/core/ipa"
)

// placeLabels are the column headers, short enough to keep the chart
// within a normal terminal width.
var placeLabels = map[domain.Place]string{
	domain.Bilabial:     "Bilab",
	domain.LabioDental:  "Labdent",
	domain.Dental:       "Dental",
	domain.Alveolar:     "Alveol",
	domain.PostAlveolar: "Postalv",
	domain.Retroflex:    "Retro",
	domain.Palatal:      "Palat",
	domain.Velar:        "Velar",
	domain.Uvular:       "Uvular",
	domain.Pharyngeal:   "Phar",
	domain.Glottal:      "Glot",
}

// Render draws the chart. Cells equal to highlight are drawn with the
// highlight style; an empty highlight marks nothing.
func Render(s *styles.Styles, highlight string) string {
	if s == nil {
		s = styles.DefaultStyles()
	}

	places := ipa.PulmonicPlaces()
	rows := ipa.PulmonicChart()

	labelWidth := 0
	for _, row := range rows {
		labelWidth = max(labelWidth, len(mannerLabel(row.Manner)))
	}

	widths := make([]int, len(places))
	header := []string{ipa.Pad("", labelWidth)}
	for i, place := range places {
		widths[i] = max(len(placeLabels[place]), 3)
		header = append(header, s.Label.Render(ipa.Pad(placeLabels[place], widths[i])))
	}

	lines := []string{strings.Join(header, " ")}
	for _, row := range rows {
		cols := []string{s.Label.Render(ipa.Pad(mannerLabel(row.Manner), labelWidth))}
		for i := range places {
			voiceless, voiced := row.Cells[2*i], row.Cells[2*i+1]
			pair := cell(s, voiceless, highlight) + " " + cell(s, voiced, highlight)
			cols = append(cols, pair+strings.Repeat(" ", widths[i]-3))
		}
		lines = append(lines, strings.Join(cols, " "))
	}

	return s.Border.Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func cell(s *styles.Styles, symbol, highlight string) string {
	if symbol == "" {
		return " "
	}
	padded := ipa.Pad(symbol, 1)
	if highlight != "" && symbol == highlight {
		return s.Highlight.Render(padded)
	}
	return s.Symbol.Render(padded)
}

func mannerLabel(m domain.Manner) string {
	label := strings.ReplaceAll(m.String(), "_", " ")
	return strings.ToUpper(label[:1]) + label[1:]
}
