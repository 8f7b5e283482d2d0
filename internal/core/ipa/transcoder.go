package ipa

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/phonet/internal/core/domain"
)

// Transcoder converts between IPA text and feature bundles. The zero
// value is not usable; use New.
//
// A Transcoder holds no mutable state and is safe for concurrent use.
type Transcoder struct {
	voicelessAbove bool
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithVoicelessAbove writes the voiceless ring above bases that have a
// descender (ŋ̊ rather than ŋ̥) when a symbol has to be composed.
func WithVoicelessAbove(enabled bool) Option {
	return func(t *Transcoder) { t.voicelessAbove = enabled }
}

// New creates a Transcoder.
func New(opts ...Option) *Transcoder {
	t := &Transcoder{}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

var defaultTranscoder = New()

// Parse reads text with the default transcoder.
func Parse(text string) domain.Phonet {
	return defaultTranscoder.Parse(text)
}

// Render writes p with the default transcoder.
func Render(p domain.Phonet) string {
	return defaultTranscoder.Render(p)
}

var inputReplacer = strings.NewReplacer(
	string(Undertie), string(TieBar),
	string(ScriptSmallG), "g",
)

// Parse reads one sound: a symbol from the tables, optionally followed by
// a single diacritic. Text it cannot read yields domain.Unrecognized.
//
// Input is NFC normalized first. When that form is unreadable and its
// decomposition differs, the decomposition is tried, so a precomposed ḁ
// reads as a with a voiceless ring.
func (t *Transcoder) Parse(text string) domain.Phonet {
	text = inputReplacer.Replace(text)

	composed := norm.NFC.String(text)
	p := t.parse(composed)
	if !domain.IsUnrecognized(p) {
		return p
	}
	if decomposed := norm.NFD.String(text); decomposed != composed {
		return t.parse(decomposed)
	}
	return p
}

func (t *Transcoder) parse(text string) domain.Phonet {
	if p, ok := bySymbol[text]; ok {
		return p
	}

	var base, mark []rune
	switch clusters := splitGraphemes(text); len(clusters) {
	case 1:
		runes := []rune(clusters[0])
		base, mark = runes[:1], runes[1:]
	case 2:
		// Spacing modifiers such as ʰ form a cluster of their own.
		base, mark = []rune(clusters[0]), []rune(clusters[1])
	default:
		return domain.Unrecognized
	}
	if len(base) != 1 || len(mark) > 1 {
		return domain.Unrecognized
	}

	p, ok := parseBase(base[0])
	if !ok {
		return domain.Unrecognized
	}
	if len(mark) == 0 {
		return p
	}
	return applyDiacritic(p, mark[0])
}

func parseBase(r rune) (domain.Phonet, bool) {
	if p, ok := bySymbol[string(r)]; ok {
		return p, true
	}
	return gridPhonet(r)
}

func applyDiacritic(p domain.Phonet, mark rune) domain.Phonet {
	switch mark {
	case RingBelow, RingAbove:
		return p.WithVoicing(domain.Voiceless)
	case WedgeBelow:
		return p.WithVoicing(domain.Voiced)
	case Aspiration:
		c, ok := p.(domain.Consonant)
		if !ok {
			// Vowel aspiration has no feature; the vowel is kept as is.
			return p
		}
		switch c.VocalFolds {
		case domain.Voiced:
			c.VocalFolds = domain.VoicedAspirated
		case domain.Voiceless:
			c.VocalFolds = domain.VoicelessAspirated
		default:
			return domain.Unrecognized
		}
		return c
	case MinusBelow:
		c, ok := p.(domain.Consonant)
		if !ok {
			return domain.Unrecognized
		}
		c.Place = domain.Retract(c.Place)
		return c
	default:
		return domain.Unrecognized
	}
}

// Render writes p as IPA text, composing a diacritic onto a neighbouring
// symbol when p has no symbol of its own. It returns EmptySet when no
// written form is known. Render never fails and never recurses.
//
// A base with a diacritic followed by ʰ, such as "t̠ʰ" for an aspirated
// post-alveolar plosive, is write-only: Parse reads at most one diacritic
// and returns domain.Unrecognized for it.
func (t *Transcoder) Render(p domain.Phonet) string {
	if s, ok := direct(p); ok {
		return s
	}
	for _, c := range t.compositions(p) {
		if base, ok := direct(c.base); ok {
			return t.compose(base, c.mark)
		}
	}
	return EmptySet
}

// direct finds a symbol for p without composing diacritics, apart from
// the aspiration modifier on grid consonants.
func direct(p domain.Phonet) (string, bool) {
	if s, ok := byPhonet[p]; ok {
		return s, true
	}
	c, ok := p.(domain.Consonant)
	if !ok {
		return "", false
	}
	switch c.VocalFolds {
	case domain.VoicedAspirated:
		c.VocalFolds = domain.Voiced
	case domain.VoicelessAspirated:
		c.VocalFolds = domain.Voiceless
	default:
		return gridSymbol(c)
	}
	s, ok := gridSymbol(c)
	if !ok {
		return "", false
	}
	return s + string(Aspiration), true
}

// composition is a neighbouring feature bundle and the diacritic that
// turns its symbol into the requested one.
type composition struct {
	base domain.Phonet
	mark rune
}

// compositions lists the candidates for p in the order they are tried.
func (t *Transcoder) compositions(p domain.Phonet) []composition {
	var out []composition
	if c, ok := p.(domain.Consonant); ok && c.Place == domain.PostAlveolar {
		alveolar := c
		alveolar.Place = domain.Alveolar
		out = append(out, composition{base: alveolar, mark: MinusBelow})
	}
	switch p.Voicing() {
	case domain.Voiceless:
		out = append(out, composition{base: p.WithVoicing(domain.Voiced), mark: RingBelow})
	case domain.Voiced:
		out = append(out, composition{base: p.WithVoicing(domain.Voiceless), mark: WedgeBelow})
	}
	return out
}

// compose attaches mark to the base symbol, keeping an aspiration
// modifier last.
func (t *Transcoder) compose(base string, mark rune) string {
	if stem, ok := strings.CutSuffix(base, string(Aspiration)); ok {
		return stem + string(t.placeMark(stem, mark)) + string(Aspiration)
	}
	return base + string(t.placeMark(base, mark))
}

// placeMark moves the voiceless ring above a descender when configured.
func (t *Transcoder) placeMark(base string, mark rune) rune {
	if mark != RingBelow || !t.voicelessAbove {
		return mark
	}
	runes := []rune(base)
	if IsDescender(runes[len(runes)-1]) {
		return RingAbove
	}
	return mark
}

// Transcribe parses text, applies rule and renders the result. Text that
// does not parse renders as the rule applied to domain.Unrecognized, which
// is EmptySet.
func (t *Transcoder) Transcribe(text string, rule domain.Rule) string {
	return t.Render(rule.Apply(t.Parse(text)))
}

// VoicedTranscription returns the voiced counterpart of text.
func VoicedTranscription(text string) string {
	return defaultTranscoder.Transcribe(text, domain.RuleVoice)
}

// DevoicedTranscription returns the voiceless counterpart of text.
func DevoicedTranscription(text string) string {
	return defaultTranscoder.Transcribe(text, domain.RuleDevoice)
}

// SpirantizedTranscription returns the fricative counterpart of text.
func SpirantizedTranscription(text string) string {
	return defaultTranscoder.Transcribe(text, domain.RuleSpirantize)
}
