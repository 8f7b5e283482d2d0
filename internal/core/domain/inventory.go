package domain

import (
	"encoding/json"
	"time"
)

// Inventory is a named set of IPA symbols, typically the phonemes of one
// language or dialect.
type Inventory struct {
	// ID uniquely identifies the inventory.
	ID string `json:"id"`

	// Name is the human-readable, unique name.
	Name string `json:"name"`

	// Description is optional free text.
	Description string `json:"description,omitempty"`

	// Symbols are the IPA symbols, in the order they were given.
	Symbols []string `json:"symbols"`

	// Builtin marks inventories shipped with the binary. They cannot be
	// modified or removed.
	Builtin bool `json:"builtin"`

	// CreatedAt is when the inventory was stored.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is when the inventory was last changed.
	UpdatedAt time.Time `json:"updated_at"`
}

// Realization pairs a concrete Phonet with its written form.
type Realization struct {
	Phonet Phonet
	Symbol string
}

// NaturalClass is the generalization of a set of sounds together with the
// concrete sounds it stands for.
type NaturalClass struct {
	// Symbols are the sounds the class was built from.
	Symbols []string

	// Pattern is the generalized Phonet.
	Pattern Phonet

	// Description is Pattern described in words.
	Description string

	// Members are the realizations Pattern enumerates to. Left empty
	// unless the caller asked for them.
	Members []Realization
}

// MarshalJSON writes the Phonet as its flat Features.
func (r Realization) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbol   string   `json:"symbol"`
		Features Features `json:"features"`
	}{r.Symbol, FeaturesOf(r.Phonet)})
}

// MarshalJSON writes the pattern as its flat Features.
func (c NaturalClass) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Symbols     []string      `json:"symbols"`
		Pattern     Features      `json:"pattern"`
		Description string        `json:"description"`
		Members     []Realization `json:"members,omitempty"`
	}{c.Symbols, FeaturesOf(c.Pattern), c.Description, c.Members})
}

// EnglishUSID is the ID of the built-in General American inventory.
const EnglishUSID = "english-us"

// EnglishUS returns the built-in General American English inventory.
func EnglishUS() Inventory {
	return Inventory{
		ID:          EnglishUSID,
		Name:        "English (US)",
		Description: "General American English consonants and vowels",
		Symbols: []string{
			// Consonants
			"p", "b", "t", "d", "k", "g",
			"t͡ʃ", "d͡ʒ",
			"f", "v", "θ", "ð", "s", "z", "ʃ", "ʒ", "h",
			"m", "n", "ŋ",
			"l", "ɹ", "j", "w",
			// Vowels
			"i", "ɪ", "e", "ɛ", "æ", "ɑ", "ɔ", "o", "ʊ", "u", "ʌ", "ə",
		},
		Builtin: true,
	}
}

// BuiltinInventories returns every inventory shipped with the binary.
func BuiltinInventories() []Inventory {
	return []Inventory{EnglishUS()}
}
