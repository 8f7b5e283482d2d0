package domain

import (
	"fmt"
	"strings"
)

// unmarkedName is the text form shared by every Unmarked sentinel.
const unmarkedName = "unmarked"

// VocalFolds describes the state of the vocal folds during articulation.
// The zero value is UnmarkedVocalFolds.
type VocalFolds int

// Vocal fold states.
const (
	UnmarkedVocalFolds VocalFolds = iota
	Voiceless
	Voiced
	VoicedAspirated
	VoicelessAspirated
	CreakyVoiced
)

var vocalFoldsStates = []VocalFolds{
	Voiceless, Voiced, VoicedAspirated, VoicelessAspirated, CreakyVoiced,
}

var vocalFoldsNames = map[VocalFolds]string{
	UnmarkedVocalFolds: unmarkedName,
	Voiceless:          "voiceless",
	Voiced:             "voiced",
	VoicedAspirated:    "voiced_aspirated",
	VoicelessAspirated: "voiceless_aspirated",
	CreakyVoiced:       "creaky_voiced",
}

// Place is the place of articulation of a consonant.
// Marked members follow the column order of the IPA chart.
type Place int

// Places of articulation.
const (
	UnmarkedPlace Place = iota
	Bilabial
	LabioDental
	Dental
	Alveolar
	PostAlveolar
	Retroflex
	Palatal
	Velar
	Uvular
	Pharyngeal
	Glottal
	Epiglottal
	LabialVelar
	LabialPalatal
	AlveoloPalatal
	PalatoAlveolar
)

var placeStates = []Place{
	Bilabial, LabioDental, Dental, Alveolar, PostAlveolar, Retroflex,
	Palatal, Velar, Uvular, Pharyngeal, Glottal, Epiglottal,
	LabialVelar, LabialPalatal, AlveoloPalatal, PalatoAlveolar,
}

var placeNames = map[Place]string{
	UnmarkedPlace:  unmarkedName,
	Bilabial:       "bilabial",
	LabioDental:    "labio_dental",
	Dental:         "dental",
	Alveolar:       "alveolar",
	PostAlveolar:   "post_alveolar",
	Retroflex:      "retroflex",
	Palatal:        "palatal",
	Velar:          "velar",
	Uvular:         "uvular",
	Pharyngeal:     "pharyngeal",
	Glottal:        "glottal",
	Epiglottal:     "epiglottal",
	LabialVelar:    "labial_velar",
	LabialPalatal:  "labial_palatal",
	AlveoloPalatal: "alveolo_palatal",
	PalatoAlveolar: "palato_alveolar",
}

// Manner is the manner of articulation of a consonant.
type Manner int

// Manners of articulation.
const (
	UnmarkedManner Manner = iota
	Plosive
	Nasal
	Trill
	TapOrFlap
	Approximant
	Fricative
	Affricate
	LateralFricative
	LateralApproximant
	LateralFlap
	// Lateral is only used by the lateral click.
	Lateral
)

var mannerStates = []Manner{
	Plosive, Nasal, Trill, TapOrFlap, Approximant, Fricative, Affricate,
	LateralFricative, LateralApproximant, LateralFlap, Lateral,
}

var mannerNames = map[Manner]string{
	UnmarkedManner:     unmarkedName,
	Plosive:            "plosive",
	Nasal:              "nasal",
	Trill:              "trill",
	TapOrFlap:          "tap_or_flap",
	Approximant:        "approximant",
	Fricative:          "fricative",
	Affricate:          "affricate",
	LateralFricative:   "lateral_fricative",
	LateralApproximant: "lateral_approximant",
	LateralFlap:        "lateral_flap",
	Lateral:            "lateral",
}

// Airstream is the airstream mechanism of a consonant.
type Airstream int

// Airstream mechanisms.
const (
	UnmarkedAirstream Airstream = iota
	PulmonicEgressive
	Click
	Implosive
)

var airstreamStates = []Airstream{PulmonicEgressive, Click, Implosive}

var airstreamNames = map[Airstream]string{
	UnmarkedAirstream: unmarkedName,
	PulmonicEgressive: "pulmonic_egressive",
	Click:             "click",
	Implosive:         "implosive",
}

// Height is vowel height, ordered close to open.
type Height int

// Vowel heights.
const (
	UnmarkedHeight Height = iota
	Close
	NearClose
	CloseMid
	Mid
	OpenMid
	NearOpen
	Open
)

var heightStates = []Height{Close, NearClose, CloseMid, Mid, OpenMid, NearOpen, Open}

var heightNames = map[Height]string{
	UnmarkedHeight: unmarkedName,
	Close:          "close",
	NearClose:      "near_close",
	CloseMid:       "close_mid",
	Mid:            "mid",
	OpenMid:        "open_mid",
	NearOpen:       "near_open",
	Open:           "open",
}

// Backness is vowel backness, ordered front to back.
type Backness int

// Vowel backness values.
const (
	UnmarkedBackness Backness = iota
	Front
	Central
	Back
)

var backnessStates = []Backness{Front, Central, Back}

var backnessNames = map[Backness]string{
	UnmarkedBackness: unmarkedName,
	Front:            "front",
	Central:          "central",
	Back:             "back",
}

// Rounding is lip rounding of a vowel.
type Rounding int

// Rounding values.
const (
	UnmarkedRounding Rounding = iota
	Rounded
	Unrounded
)

var roundingStates = []Rounding{Rounded, Unrounded}

var roundingNames = map[Rounding]string{
	UnmarkedRounding: unmarkedName,
	Rounded:          "rounded",
	Unrounded:        "unrounded",
}

// AllVocalFolds returns the marked vocal fold states in enumeration order.
func AllVocalFolds() []VocalFolds { return clone(vocalFoldsStates) }

// AllPlaces returns the marked places in IPA chart order.
func AllPlaces() []Place { return clone(placeStates) }

// AllManners returns the marked manners in enumeration order.
func AllManners() []Manner { return clone(mannerStates) }

// AllAirstreams returns the marked airstream mechanisms.
func AllAirstreams() []Airstream { return clone(airstreamStates) }

// AllHeights returns the marked heights, close to open.
func AllHeights() []Height { return clone(heightStates) }

// AllBacknesses returns the marked backness values, front to back.
func AllBacknesses() []Backness { return clone(backnessStates) }

// AllRoundings returns the marked rounding values.
func AllRoundings() []Rounding { return clone(roundingStates) }

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

// String returns the snake_case name of the state.
func (v VocalFolds) String() string { return featureName(vocalFoldsNames, v) }

// String returns the snake_case name of the place.
func (p Place) String() string { return featureName(placeNames, p) }

// String returns the snake_case name of the manner.
func (m Manner) String() string { return featureName(mannerNames, m) }

// String returns the snake_case name of the airstream mechanism.
func (a Airstream) String() string { return featureName(airstreamNames, a) }

// String returns the snake_case name of the height.
func (h Height) String() string { return featureName(heightNames, h) }

// String returns the snake_case name of the backness.
func (b Backness) String() string { return featureName(backnessNames, b) }

// String returns the snake_case name of the rounding.
func (r Rounding) String() string { return featureName(roundingNames, r) }

// Marked reports whether v is a concrete state rather than the wildcard.
func (v VocalFolds) Marked() bool { return v != UnmarkedVocalFolds }

// Marked reports whether p is a concrete place rather than the wildcard.
func (p Place) Marked() bool { return p != UnmarkedPlace }

// Marked reports whether m is a concrete manner rather than the wildcard.
func (m Manner) Marked() bool { return m != UnmarkedManner }

// Marked reports whether a is a concrete mechanism rather than the wildcard.
func (a Airstream) Marked() bool { return a != UnmarkedAirstream }

// Marked reports whether h is a concrete height rather than the wildcard.
func (h Height) Marked() bool { return h != UnmarkedHeight }

// Marked reports whether b is a concrete backness rather than the wildcard.
func (b Backness) Marked() bool { return b != UnmarkedBackness }

// Marked reports whether r is a concrete rounding rather than the wildcard.
func (r Rounding) Marked() bool { return r != UnmarkedRounding }

// IsAspirated reports whether the state carries aspiration.
func (v VocalFolds) IsAspirated() bool {
	return v == VoicedAspirated || v == VoicelessAspirated
}

// ParseVocalFolds parses a vocal fold state name.
func ParseVocalFolds(s string) (VocalFolds, error) {
	return parseFeature("vocal folds", vocalFoldsNames, s)
}

// ParsePlace parses a place of articulation name.
func ParsePlace(s string) (Place, error) { return parseFeature("place", placeNames, s) }

// ParseManner parses a manner of articulation name.
func ParseManner(s string) (Manner, error) { return parseFeature("manner", mannerNames, s) }

// ParseAirstream parses an airstream mechanism name.
func ParseAirstream(s string) (Airstream, error) {
	return parseFeature("airstream", airstreamNames, s)
}

// ParseHeight parses a vowel height name.
func ParseHeight(s string) (Height, error) { return parseFeature("height", heightNames, s) }

// ParseBackness parses a vowel backness name.
func ParseBackness(s string) (Backness, error) {
	return parseFeature("backness", backnessNames, s)
}

// ParseRounding parses a vowel rounding name.
func ParseRounding(s string) (Rounding, error) {
	return parseFeature("rounding", roundingNames, s)
}

// MarshalText implements encoding.TextMarshaler.
func (v VocalFolds) MarshalText() ([]byte, error) { return []byte(v.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VocalFolds) UnmarshalText(b []byte) error { return unmarshalFeature(b, v, ParseVocalFolds) }

// MarshalText implements encoding.TextMarshaler.
func (p Place) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Place) UnmarshalText(b []byte) error { return unmarshalFeature(b, p, ParsePlace) }

// MarshalText implements encoding.TextMarshaler.
func (m Manner) MarshalText() ([]byte, error) { return []byte(m.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Manner) UnmarshalText(b []byte) error { return unmarshalFeature(b, m, ParseManner) }

// MarshalText implements encoding.TextMarshaler.
func (a Airstream) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Airstream) UnmarshalText(b []byte) error { return unmarshalFeature(b, a, ParseAirstream) }

// MarshalText implements encoding.TextMarshaler.
func (h Height) MarshalText() ([]byte, error) { return []byte(h.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Height) UnmarshalText(b []byte) error { return unmarshalFeature(b, h, ParseHeight) }

// MarshalText implements encoding.TextMarshaler.
func (b Backness) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Backness) UnmarshalText(text []byte) error {
	return unmarshalFeature(text, b, ParseBackness)
}

// MarshalText implements encoding.TextMarshaler.
func (r Rounding) MarshalText() ([]byte, error) { return []byte(r.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rounding) UnmarshalText(b []byte) error { return unmarshalFeature(b, r, ParseRounding) }

func featureName[T ~int](names map[T]string, v T) string {
	if name, ok := names[v]; ok {
		return name
	}
	return fmt.Sprintf("invalid(%d)", v)
}

// parseFeature accepts the snake_case name, case-insensitively, with
// hyphens or spaces in place of underscores. An empty string is Unmarked.
func parseFeature[T ~int](dimension string, names map[T]string, s string) (T, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)
	if key == "" {
		key = unmarkedName
	}
	for v, name := range names {
		if name == key {
			return v, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: unknown %s %q", ErrInvalidInput, dimension, s)
}

func unmarshalFeature[T any](b []byte, dst *T, parse func(string) (T, error)) error {
	v, err := parse(string(b))
	if err != nil {
		return err
	}
	*dst = v
	return nil
}
