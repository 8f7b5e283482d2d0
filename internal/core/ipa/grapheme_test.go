package ipa

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// TestGraphemeClasses tests the symbol shape helpers
func TestGraphemeClasses(t *testing.T) {
	assert.True(t, IsExponential(Aspiration))
	assert.True(t, IsExponential('ʷ'))
	assert.False(t, IsExponential('h'))

	assert.True(t, IsDiacriticAbove(RingAbove))
	assert.False(t, IsDiacriticAbove(RingBelow))

	assert.True(t, IsDiacriticBelow(RingBelow))
	assert.True(t, IsDiacriticBelow(WedgeBelow))
	assert.True(t, IsDiacriticBelow(MinusBelow))
	assert.False(t, IsDiacriticBelow(RingAbove))

	assert.True(t, IsAscender('b'))
	assert.False(t, IsAscender('p'))
	assert.True(t, IsDescender('p'))
	assert.True(t, IsDescender('ŋ'))
	assert.False(t, IsDescender('n'))

	// Symbols such as ʃ both rise and descend.
	assert.True(t, IsAscender('ʃ'))
	assert.True(t, IsDescender('ʃ'))
}

// TestWidth tests display width with combining marks
func TestWidth(t *testing.T) {
	assert.Equal(t, 1, Width("s"))
	assert.Equal(t, 1, Width("n̥"))
	assert.Equal(t, 2, Width("tʰ"))
	assert.Equal(t, 0, Width(""))
}

// TestPad tests right-padding by display width
func TestPad(t *testing.T) {
	assert.Equal(t, "n̥  ", Pad("n̥", 3))
	assert.Equal(t, "abc", Pad("abc", 2))
}

// TestSplitGraphemes tests cluster splitting
func TestSplitGraphemes(t *testing.T) {
	assert.Equal(t, []string{"n̥"}, splitGraphemes("n̥"))
	assert.Equal(t, []string{"t", "ʰ"}, splitGraphemes("tʰ"))
	assert.Equal(t, []string{"t͡", "ʃ"}, splitGraphemes("t͡ʃ"))
	assert.Empty(t, splitGraphemes(""))
}

// TestPulmonicChart tests the exported chart
func TestPulmonicChart(t *testing.T) {
	chart := PulmonicChart()
	require.Len(t, chart, 8)

	assert.Equal(t, domain.Plosive, chart[0].Manner)
	assert.Equal(t, domain.LateralApproximant, chart[7].Manner)
	for _, row := range chart {
		assert.Len(t, row.Cells, 2*len(PulmonicPlaces()))
	}
	assert.Equal(t, "p", chart[0].Cells[0])
	assert.Equal(t, "", chart[0].Cells[2])
	assert.Equal(t, "ɦ", chart[4].Cells[21])

	places := PulmonicPlaces()
	assert.Equal(t, domain.Bilabial, places[0])
	assert.Equal(t, domain.Glottal, places[len(places)-1])
}

// TestSymbols tests the list of readable symbols
func TestSymbols(t *testing.T) {
	symbols := Symbols()

	assert.Contains(t, symbols, "p")
	assert.Contains(t, symbols, "k͡x")
	assert.Contains(t, symbols, "ɒ")
	assert.NotContains(t, symbols, "ɧ")
}
