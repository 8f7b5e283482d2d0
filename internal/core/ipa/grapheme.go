package ipa

import (
	"slices"

	"github.com/rivo/uniseg"
)

// Diacritics and modifiers the transcoder reads and writes.
const (
	RingBelow    = '\u0325' // voiceless
	RingAbove    = '\u030A' // voiceless, for bases with a descender
	WedgeBelow   = '\u032C' // voiced
	MinusBelow   = '\u0320' // retracted
	Aspiration   = '\u02B0' // ʰ
	TieBar       = '\u0361' // joins the halves of an affricate
	Undertie     = '\u035C'
	ScriptSmallG = '\u0261' // ɡ, read as g
)

// EmptySet is what rendering returns for a feature bundle that has no
// known written form.
const EmptySet = "∅"

var exponentials = []rune{'ʰ', 'ʷ', 'ʲ', 'ˠ', 'ˤ', 'ⁿ', 'ˡ'}

var ascenders = []rune{
	'b', 't', 'd', 'k', 'ʔ', 'f', 'θ', 'ð', 'ħ', 'ʕ', 'h', 'ɦ', 'ɬ', 'l', 'ʎ',
	'ʘ', 'ɓ', 'ǀ', 'ɗ', 'ǃ', 'ǂ', 'ɠ', 'ʄ', 'ǁ', 'ʛ', 'ɺ', 'ʢ', 'ʡ', 'ɤ', 'ʈ', 'ɖ',
	'ɸ', 'β', 'ʃ', 'ɮ', 'ɭ', 'ɧ',
}

var descenders = []rune{
	'p', 'ɟ', 'g', 'q', 'ɱ', 'ɽ', 'ʒ', 'ʂ', 'ʐ', 'ç', 'ʝ', 'ɣ', 'χ', 'ɻ', 'j',
	'ɰ', 'ɥ', 'y', 'ɳ', 'ɲ', 'ŋ', 'ʈ', 'ɖ', 'ɸ', 'β', 'ʃ', 'ɮ', 'ɭ', 'ɧ',
}

// IsExponential reports whether r is written raised after the previous
// symbol, like an exponent.
func IsExponential(r rune) bool {
	return slices.Contains(exponentials, r)
}

// IsDiacriticAbove reports whether r is a diacritic drawn above its base.
func IsDiacriticAbove(r rune) bool {
	return r == RingAbove
}

// IsDiacriticBelow reports whether r is a diacritic drawn below its base.
func IsDiacriticBelow(r rune) bool {
	switch r {
	case RingBelow, WedgeBelow, MinusBelow:
		return true
	default:
		return false
	}
}

// IsAscender reports whether the symbol r rises above the x-height.
func IsAscender(r rune) bool {
	return slices.Contains(ascenders, r)
}

// IsDescender reports whether the symbol r reaches below the baseline,
// where a diacritic below would collide with it.
func IsDescender(r rune) bool {
	return slices.Contains(descenders, r)
}

// Width returns the number of terminal columns text occupies. Combining
// diacritics take no columns of their own.
func Width(text string) int {
	return uniseg.StringWidth(text)
}

// Pad right-pads text with spaces to the given display width.
func Pad(text string, width int) string {
	n := width - Width(text)
	if n <= 0 {
		return text
	}
	buf := make([]byte, 0, len(text)+n)
	buf = append(buf, text...)
	for range n {
		buf = append(buf, ' ')
	}
	return string(buf)
}

// splitGraphemes returns the user-perceived characters of text.
func splitGraphemes(text string) []string {
	var clusters []string
	state := -1
	for text != "" {
		var cluster string
		cluster, text, _, state = uniseg.FirstGraphemeClusterInString(text, state)
		clusters = append(clusters, cluster)
	}
	return clusters
}
