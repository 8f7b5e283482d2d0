package domain

import (
	"fmt"
	"strings"
)

// Kind identifies which variant a Phonet is.
type Kind string

// Phonet variants.
const (
	KindConsonant Kind = "consonant"
	KindVowel     Kind = "vowel"
)

// Phonet is the feature bundle of a single speech sound.
//
// It is a closed sum type: the only implementations are Consonant and
// Vowel, both comparable value types, so two Phonets are equal under ==
// exactly when they are the same variant with equal fields.
type Phonet interface {
	// Kind reports the variant.
	Kind() Kind

	// Voicing returns the vocal fold state, the one dimension shared by
	// both variants.
	Voicing() VocalFolds

	// WithVoicing returns a copy with the vocal fold state replaced.
	WithVoicing(v VocalFolds) Phonet

	// String returns a human readable description.
	String() string

	isPhonet()
}

// Consonant is a sound made with an obstruction in the vocal tract.
type Consonant struct {
	VocalFolds VocalFolds `json:"vocal_folds"`
	Place      Place      `json:"place"`
	Manner     Manner     `json:"manner"`
	Airstream  Airstream  `json:"airstream"`
}

// Vowel is a sound made without obstruction.
type Vowel struct {
	Height     Height     `json:"height"`
	Backness   Backness   `json:"backness"`
	Rounding   Rounding   `json:"rounding"`
	VocalFolds VocalFolds `json:"vocal_folds"`
}

// Unrecognized is what parsing returns for text it cannot read: a
// pulmonic consonant with nothing else known. It means "no information",
// not failure.
var Unrecognized Phonet = Consonant{Airstream: PulmonicEgressive}

// IsUnrecognized reports whether p is the parse sentinel.
func IsUnrecognized(p Phonet) bool {
	return p == Unrecognized
}

var (
	_ Phonet = Consonant{}
	_ Phonet = Vowel{}
)

func (Consonant) isPhonet() {}
func (Vowel) isPhonet()     {}

// Kind implements Phonet.
func (Consonant) Kind() Kind { return KindConsonant }

// Kind implements Phonet.
func (Vowel) Kind() Kind { return KindVowel }

// Voicing implements Phonet.
func (c Consonant) Voicing() VocalFolds { return c.VocalFolds }

// Voicing implements Phonet.
func (v Vowel) Voicing() VocalFolds { return v.VocalFolds }

// WithVoicing implements Phonet.
func (c Consonant) WithVoicing(v VocalFolds) Phonet {
	c.VocalFolds = v
	return c
}

// WithVoicing implements Phonet.
func (v Vowel) WithVoicing(vf VocalFolds) Phonet {
	v.VocalFolds = vf
	return v
}

// String describes the consonant in chart order, e.g.
// "voiceless alveolar fricative". Unmarked features are left out.
func (c Consonant) String() string {
	parts := make([]string, 0, 5)
	if c.VocalFolds.Marked() {
		parts = append(parts, words(c.VocalFolds.String()))
	}
	if c.Place.Marked() {
		parts = append(parts, words(c.Place.String()))
	}
	switch c.Airstream {
	case Click, Implosive:
		if c.Manner.Marked() {
			parts = append(parts, words(c.Manner.String()))
		}
		parts = append(parts, words(c.Airstream.String()))
	default:
		if c.Manner.Marked() {
			parts = append(parts, words(c.Manner.String()))
		} else {
			parts = append(parts, "consonant")
		}
	}
	return strings.Join(parts, " ")
}

// String describes the vowel, e.g. "close front unrounded vowel".
func (v Vowel) String() string {
	parts := make([]string, 0, 5)
	if v.VocalFolds == Voiceless {
		parts = append(parts, "voiceless")
	}
	if v.Height.Marked() {
		parts = append(parts, words(v.Height.String()))
	}
	if v.Backness.Marked() {
		parts = append(parts, words(v.Backness.String()))
	}
	if v.Rounding.Marked() {
		parts = append(parts, words(v.Rounding.String()))
	}
	parts = append(parts, "vowel")
	return strings.Join(parts, " ")
}

func words(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}

// Features is a flat, serialisable view of a Phonet. Fields that do not
// belong to the variant are left empty.
type Features struct {
	Kind       Kind   `json:"kind"`
	VocalFolds string `json:"vocal_folds"`
	Place      string `json:"place,omitempty"`
	Manner     string `json:"manner,omitempty"`
	Airstream  string `json:"airstream,omitempty"`
	Height     string `json:"height,omitempty"`
	Backness   string `json:"backness,omitempty"`
	Rounding   string `json:"rounding,omitempty"`
}

// FeaturesOf flattens p.
func FeaturesOf(p Phonet) Features {
	switch p := p.(type) {
	case Consonant:
		return Features{
			Kind:       KindConsonant,
			VocalFolds: p.VocalFolds.String(),
			Place:      p.Place.String(),
			Manner:     p.Manner.String(),
			Airstream:  p.Airstream.String(),
		}
	case Vowel:
		return Features{
			Kind:       KindVowel,
			VocalFolds: p.VocalFolds.String(),
			Height:     p.Height.String(),
			Backness:   p.Backness.String(),
			Rounding:   p.Rounding.String(),
		}
	default:
		return Features{}
	}
}

// Phonet rebuilds the Phonet the features describe. Empty feature names
// are read as Unmarked.
func (f Features) Phonet() (Phonet, error) {
	switch f.Kind {
	case KindConsonant:
		var c Consonant
		var err error
		if c.VocalFolds, err = ParseVocalFolds(f.VocalFolds); err != nil {
			return nil, err
		}
		if c.Place, err = ParsePlace(f.Place); err != nil {
			return nil, err
		}
		if c.Manner, err = ParseManner(f.Manner); err != nil {
			return nil, err
		}
		if c.Airstream, err = ParseAirstream(f.Airstream); err != nil {
			return nil, err
		}
		return c, nil
	case KindVowel:
		var v Vowel
		var err error
		if v.Height, err = ParseHeight(f.Height); err != nil {
			return nil, err
		}
		if v.Backness, err = ParseBackness(f.Backness); err != nil {
			return nil, err
		}
		if v.Rounding, err = ParseRounding(f.Rounding); err != nil {
			return nil, err
		}
		if v.VocalFolds, err = ParseVocalFolds(f.VocalFolds); err != nil {
			return nil, err
		}
		return v, nil
	default:
		return nil, fmt.Errorf("%w: unknown phonet kind %q", ErrInvalidInput, f.Kind)
	}
}
