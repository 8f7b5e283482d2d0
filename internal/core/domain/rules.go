package domain

import (
	"fmt"
	"strings"
)

// Voice returns p with its vocal folds set to vibrate.
//
// Voiceless consonants become Voiced and VoicelessAspirated become
// VoicedAspirated; other consonant voicings are kept. Vowels always come
// back Voiced.
func Voice(p Phonet) Phonet {
	switch p := p.(type) {
	case Consonant:
		switch p.VocalFolds {
		case Voiceless:
			p.VocalFolds = Voiced
		case VoicelessAspirated:
			p.VocalFolds = VoicedAspirated
		}
		return p
	case Vowel:
		p.VocalFolds = Voiced
		return p
	default:
		return p
	}
}

// Devoice is the mirror of Voice.
func Devoice(p Phonet) Phonet {
	switch p := p.(type) {
	case Consonant:
		switch p.VocalFolds {
		case Voiced:
			p.VocalFolds = Voiceless
		case VoicedAspirated:
			p.VocalFolds = VoicelessAspirated
		}
		return p
	case Vowel:
		p.VocalFolds = Voiceless
		return p
	default:
		return p
	}
}

// Spirantize turns a plosive into the fricative at the same place. An
// alveolar plosive moves forward to dental, so t becomes θ rather than s.
// Anything that is not a plosive is returned unchanged.
func Spirantize(p Phonet) Phonet {
	c, ok := p.(Consonant)
	if !ok || c.Manner != Plosive {
		return p
	}
	c.Manner = Fricative
	if c.Place == Alveolar {
		c.Place = Dental
	}
	return c
}

// retractionOrder is the front-to-back run of places Retract walks along.
var retractionOrder = []Place{
	Bilabial, LabioDental, Dental, Alveolar, PostAlveolar, Retroflex,
	Palatal, Velar, Uvular, Pharyngeal, Glottal,
}

// Retract moves a place of articulation one step further back. Glottal,
// the places after it and Unmarked stay where they are.
func Retract(p Place) Place {
	for i, pl := range retractionOrder[:len(retractionOrder)-1] {
		if pl == p {
			return retractionOrder[i+1]
		}
	}
	return p
}

// Rule names a feature rewrite that can be applied to a Phonet.
type Rule string

// Available rules.
const (
	// RuleVoice sets the vocal folds vibrating.
	RuleVoice Rule = "voice"

	// RuleDevoice stops the vocal folds vibrating.
	RuleDevoice Rule = "devoice"

	// RuleSpirantize weakens plosives to fricatives.
	RuleSpirantize Rule = "spirantize"
)

// IsValid returns true if the rule is recognised.
func (r Rule) IsValid() bool {
	switch r {
	case RuleVoice, RuleDevoice, RuleSpirantize:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (r Rule) String() string {
	return string(r)
}

// Description returns a human-readable description of the rule.
func (r Rule) Description() string {
	switch r {
	case RuleVoice:
		return "Voice (make the sound voiced)"
	case RuleDevoice:
		return "Devoice (make the sound voiceless)"
	case RuleSpirantize:
		return "Spirantize (turn a plosive into a fricative)"
	default:
		return "Unknown"
	}
}

// Apply runs the rule on p. An invalid rule leaves p unchanged.
func (r Rule) Apply(p Phonet) Phonet {
	switch r {
	case RuleVoice:
		return Voice(p)
	case RuleDevoice:
		return Devoice(p)
	case RuleSpirantize:
		return Spirantize(p)
	default:
		return p
	}
}

// AllRules returns all available rules.
func AllRules() []Rule {
	return []Rule{RuleVoice, RuleDevoice, RuleSpirantize}
}

// ParseRule reads a rule name. Unknown names wrap ErrInvalidRule.
func ParseRule(s string) (Rule, error) {
	r := Rule(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidRule, s)
	}
	return r, nil
}
