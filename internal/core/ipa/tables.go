package ipa

import (
	"fmt"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// blank marks an empty cell of the pulmonic grid.
const blank = ' '

// pulmonicManners are the grid rows, top to bottom.
var pulmonicManners = [...]domain.Manner{
	domain.Plosive, domain.Nasal, domain.Trill, domain.TapOrFlap,
	domain.Fricative, domain.LateralFricative, domain.Approximant, domain.LateralApproximant,
}

// pulmonicPlaces are the grid column pairs, left to right. Each place owns
// two columns: voiceless first, voiced second.
var pulmonicPlaces = [...]domain.Place{
	domain.Bilabial, domain.LabioDental, domain.Dental, domain.Alveolar, domain.PostAlveolar, domain.Retroflex,
	domain.Palatal, domain.Velar, domain.Uvular, domain.Pharyngeal, domain.Glottal,
}

// pulmonicGrid is the consonant (pulmonic) chart of the 2015 IPA chart.
var pulmonicGrid = [len(pulmonicManners)][2 * len(pulmonicPlaces)]rune{
	{'p', 'b', ' ', ' ', ' ', ' ', 't', 'd', ' ', ' ', 'ʈ', 'ɖ', 'c', 'ɟ', 'k', 'g', 'q', 'ɢ', ' ', ' ', 'ʔ', ' '},
	{' ', 'm', ' ', 'ɱ', ' ', ' ', ' ', 'n', ' ', ' ', ' ', 'ɳ', ' ', 'ɲ', ' ', 'ŋ', ' ', 'ɴ', ' ', ' ', ' ', ' '},
	{' ', 'ʙ', ' ', ' ', ' ', ' ', ' ', 'r', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', 'ʀ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', 'ⱱ', ' ', ' ', ' ', 'ɾ', ' ', ' ', ' ', 'ɽ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{'ɸ', 'β', 'f', 'v', 'θ', 'ð', 's', 'z', 'ʃ', 'ʒ', 'ʂ', 'ʐ', 'ç', 'ʝ', 'x', 'ɣ', 'χ', 'ʁ', 'ħ', 'ʕ', 'h', 'ɦ'},
	{' ', ' ', ' ', ' ', ' ', ' ', 'ɬ', 'ɮ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', 'ʋ', ' ', ' ', ' ', 'ɹ', ' ', ' ', ' ', 'ɻ', ' ', 'j', ' ', 'ɰ', ' ', ' ', ' ', ' ', ' ', ' '},
	{' ', ' ', ' ', ' ', ' ', ' ', ' ', 'l', ' ', ' ', ' ', 'ɭ', ' ', 'ʎ', ' ', 'ʟ', ' ', ' ', ' ', ' ', ' ', ' '},
}

func pulmonic(vf domain.VocalFolds, pl domain.Place, m domain.Manner) domain.Consonant {
	return domain.Consonant{VocalFolds: vf, Place: pl, Manner: m, Airstream: domain.PulmonicEgressive}
}

func vowel(h domain.Height, b domain.Backness, r domain.Rounding) domain.Vowel {
	return domain.Vowel{Height: h, Backness: b, Rounding: r, VocalFolds: domain.Voiced}
}

// fixedSymbols maps every symbol outside the pulmonic grid to its features.
// The mapping is one-to-one in both directions. ɧ is left out: it is
// articulated at two places at once and has no single feature bundle.
var fixedSymbols = []struct {
	symbol string
	phonet domain.Phonet
}{
	// Affricates
	{"t͡ʃ", pulmonic(domain.Voiceless, domain.PostAlveolar, domain.Affricate)},
	{"d͡ʒ", pulmonic(domain.Voiced, domain.PostAlveolar, domain.Affricate)},
	{"p͡ɸ", pulmonic(domain.Voiceless, domain.Bilabial, domain.Affricate)},
	{"t͡s", pulmonic(domain.Voiceless, domain.Alveolar, domain.Affricate)},
	{"d͡z", pulmonic(domain.Voiced, domain.Alveolar, domain.Affricate)},
	{"k͡x", pulmonic(domain.Voiceless, domain.Velar, domain.Affricate)},
	{"q͡χ", pulmonic(domain.Voiceless, domain.Uvular, domain.Affricate)},

	// Other symbols
	{"w", pulmonic(domain.Voiced, domain.LabialVelar, domain.Approximant)},
	{"ʍ", pulmonic(domain.Voiceless, domain.LabialVelar, domain.Fricative)},
	{"ɥ", pulmonic(domain.Voiced, domain.LabialPalatal, domain.Approximant)},
	{"ʜ", pulmonic(domain.Voiceless, domain.Epiglottal, domain.Fricative)},
	{"ʢ", pulmonic(domain.Voiced, domain.Epiglottal, domain.Fricative)},
	{"ʡ", pulmonic(domain.Voiceless, domain.Epiglottal, domain.Plosive)},
	{"ɕ", pulmonic(domain.Voiceless, domain.AlveoloPalatal, domain.Fricative)},
	{"ʑ", pulmonic(domain.Voiced, domain.AlveoloPalatal, domain.Fricative)},
	{"ɺ", pulmonic(domain.Voiced, domain.Alveolar, domain.LateralFlap)},

	// Clicks
	{"ʘ", domain.Consonant{Place: domain.Bilabial, Airstream: domain.Click}},
	{"ǀ", domain.Consonant{Place: domain.Dental, Airstream: domain.Click}},
	{"ǃ", domain.Consonant{Place: domain.Alveolar, Airstream: domain.Click}},
	{"ǂ", domain.Consonant{Place: domain.PalatoAlveolar, Airstream: domain.Click}},
	{"ǁ", domain.Consonant{Place: domain.Alveolar, Manner: domain.Lateral, Airstream: domain.Click}},

	// Voiced implosives
	{"ɓ", domain.Consonant{VocalFolds: domain.Voiced, Place: domain.Bilabial, Airstream: domain.Implosive}},
	{"ɗ", domain.Consonant{VocalFolds: domain.Voiced, Place: domain.Dental, Airstream: domain.Implosive}},
	{"ʄ", domain.Consonant{VocalFolds: domain.Voiced, Place: domain.Palatal, Airstream: domain.Implosive}},
	{"ɠ", domain.Consonant{VocalFolds: domain.Voiced, Place: domain.Velar, Airstream: domain.Implosive}},
	{"ʛ", domain.Consonant{VocalFolds: domain.Voiced, Place: domain.Uvular, Airstream: domain.Implosive}},

	// Close vowels
	{"i", vowel(domain.Close, domain.Front, domain.Unrounded)},
	{"y", vowel(domain.Close, domain.Front, domain.Rounded)},
	{"ɨ", vowel(domain.Close, domain.Central, domain.Unrounded)},
	{"ʉ", vowel(domain.Close, domain.Central, domain.Rounded)},
	{"ɯ", vowel(domain.Close, domain.Back, domain.Unrounded)},
	{"u", vowel(domain.Close, domain.Back, domain.Rounded)},
	// Near-close vowels
	{"ɪ", vowel(domain.NearClose, domain.Front, domain.Unrounded)},
	{"ʏ", vowel(domain.NearClose, domain.Front, domain.Rounded)},
	{"ʊ", vowel(domain.NearClose, domain.Back, domain.Rounded)},
	// Close-mid vowels
	{"e", vowel(domain.CloseMid, domain.Front, domain.Unrounded)},
	{"ø", vowel(domain.CloseMid, domain.Front, domain.Rounded)},
	{"ɘ", vowel(domain.CloseMid, domain.Central, domain.Unrounded)},
	{"ɵ", vowel(domain.CloseMid, domain.Central, domain.Rounded)},
	{"ɤ", vowel(domain.CloseMid, domain.Back, domain.Unrounded)},
	{"o", vowel(domain.CloseMid, domain.Back, domain.Rounded)},
	// Mid vowels
	{"ə", vowel(domain.Mid, domain.Central, domain.UnmarkedRounding)},
	// Open-mid vowels
	{"ɛ", vowel(domain.OpenMid, domain.Front, domain.Unrounded)},
	{"œ", vowel(domain.OpenMid, domain.Front, domain.Rounded)},
	{"ɜ", vowel(domain.OpenMid, domain.Central, domain.Unrounded)},
	{"ɞ", vowel(domain.OpenMid, domain.Central, domain.Rounded)},
	{"ʌ", vowel(domain.OpenMid, domain.Back, domain.Unrounded)},
	{"ɔ", vowel(domain.OpenMid, domain.Back, domain.Rounded)},
	// Near-open vowels
	{"æ", vowel(domain.NearOpen, domain.Front, domain.Unrounded)},
	{"ɐ", vowel(domain.NearOpen, domain.Central, domain.UnmarkedRounding)},
	// Open vowels
	{"a", vowel(domain.Open, domain.Front, domain.Unrounded)},
	{"ɶ", vowel(domain.Open, domain.Front, domain.Rounded)},
	{"ɑ", vowel(domain.Open, domain.Back, domain.Unrounded)},
	{"ɒ", vowel(domain.Open, domain.Back, domain.Rounded)},
}

var (
	bySymbol = make(map[string]domain.Phonet, len(fixedSymbols))
	byPhonet = make(map[domain.Phonet]string, len(fixedSymbols))
)

func init() {
	if err := buildTables(); err != nil {
		panic(err)
	}
}

// buildTables indexes fixedSymbols and checks that no symbol or feature
// bundle is claimed twice, including by the pulmonic grid.
func buildTables() error {
	gridSymbols := make(map[rune]bool)
	for _, row := range pulmonicGrid {
		for _, cell := range row {
			if cell == blank {
				continue
			}
			if gridSymbols[cell] {
				return fmt.Errorf("ipa: grid symbol %q appears twice", cell)
			}
			gridSymbols[cell] = true
		}
	}

	for _, entry := range fixedSymbols {
		if _, dup := bySymbol[entry.symbol]; dup {
			return fmt.Errorf("ipa: symbol %q mapped twice", entry.symbol)
		}
		if other, dup := byPhonet[entry.phonet]; dup {
			return fmt.Errorf("ipa: %v mapped to both %q and %q", entry.phonet, other, entry.symbol)
		}
		if r := []rune(entry.symbol); len(r) == 1 && gridSymbols[r[0]] {
			return fmt.Errorf("ipa: symbol %q is also in the pulmonic grid", entry.symbol)
		}
		if s, ok := gridSymbol(entry.phonet); ok {
			return fmt.Errorf("ipa: %v mapped to %q and grid symbol %q", entry.phonet, entry.symbol, s)
		}
		bySymbol[entry.symbol] = entry.phonet
		byPhonet[entry.phonet] = entry.symbol
	}
	return nil
}

// gridSymbol looks up a plain voiced or voiceless pulmonic consonant.
func gridSymbol(p domain.Phonet) (string, bool) {
	c, ok := p.(domain.Consonant)
	if !ok || c.Airstream != domain.PulmonicEgressive {
		return "", false
	}
	var parity int
	switch c.VocalFolds {
	case domain.Voiceless:
		parity = 0
	case domain.Voiced:
		parity = 1
	default:
		return "", false
	}
	row := indexOf(pulmonicManners[:], c.Manner)
	col := indexOf(pulmonicPlaces[:], c.Place)
	if row < 0 || col < 0 {
		return "", false
	}
	cell := pulmonicGrid[row][2*col+parity]
	if cell == blank {
		return "", false
	}
	return string(cell), true
}

// gridPhonet reads a single grid symbol. Voicing comes from column parity
// and place from the column pair.
func gridPhonet(r rune) (domain.Phonet, bool) {
	if r == blank {
		return nil, false
	}
	for row, cells := range pulmonicGrid {
		for col, cell := range cells {
			if cell != r {
				continue
			}
			vf := domain.Voiceless
			if col%2 == 1 {
				vf = domain.Voiced
			}
			return pulmonic(vf, pulmonicPlaces[col/2], pulmonicManners[row]), true
		}
	}
	return nil, false
}

func indexOf[T comparable](s []T, v T) int {
	for i, x := range s {
		if x == v {
			return i
		}
	}
	return -1
}

// ChartRow is one manner row of the pulmonic chart. Cells hold one symbol
// per column, voiceless before voiced, with "" for an empty cell.
type ChartRow struct {
	Manner domain.Manner
	Cells  []string
}

// PulmonicChart returns the pulmonic consonant chart row by row.
func PulmonicChart() []ChartRow {
	rows := make([]ChartRow, len(pulmonicManners))
	for i, m := range pulmonicManners {
		cells := make([]string, len(pulmonicGrid[i]))
		for j, cell := range pulmonicGrid[i] {
			if cell != blank {
				cells[j] = string(cell)
			}
		}
		rows[i] = ChartRow{Manner: m, Cells: cells}
	}
	return rows
}

// PulmonicPlaces returns the chart's column places, left to right.
func PulmonicPlaces() []domain.Place {
	out := make([]domain.Place, len(pulmonicPlaces))
	copy(out, pulmonicPlaces[:])
	return out
}

// Symbols returns every symbol the transcoder reads without diacritics:
// the grid in chart order followed by the fixed symbols.
func Symbols() []string {
	out := make([]string, 0, 2*len(pulmonicPlaces)*len(pulmonicManners)+len(fixedSymbols))
	for _, row := range pulmonicGrid {
		for _, cell := range row {
			if cell != blank {
				out = append(out, string(cell))
			}
		}
	}
	for _, entry := range fixedSymbols {
		out = append(out, entry.symbol)
	}
	return out
}
