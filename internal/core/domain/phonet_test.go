package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	voicelessAlveolarFricative = Consonant{VocalFolds: Voiceless, Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive}
	voicedAlveolarFricative    = Consonant{VocalFolds: Voiced, Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive}
	voicelessAlveolarPlosive   = Consonant{VocalFolds: Voiceless, Place: Alveolar, Manner: Plosive, Airstream: PulmonicEgressive}
	voicedBilabialPlosive      = Consonant{VocalFolds: Voiced, Place: Bilabial, Manner: Plosive, Airstream: PulmonicEgressive}
	closeFrontUnrounded        = Vowel{Height: Close, Backness: Front, Rounding: Unrounded, VocalFolds: Voiced}
	closeBackRounded           = Vowel{Height: Close, Backness: Back, Rounding: Rounded, VocalFolds: Voiced}
)

// TestPhonet_StructuralEquality tests == on interface values
func TestPhonet_StructuralEquality(t *testing.T) {
	var a Phonet = voicelessAlveolarFricative
	var b Phonet = Consonant{VocalFolds: Voiceless, Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive}

	assert.True(t, a == b)
	assert.False(t, a == Phonet(voicedAlveolarFricative))
	assert.False(t, Phonet(Consonant{}) == Phonet(Vowel{}))
}

// TestPhonet_Kind tests variant reporting
func TestPhonet_Kind(t *testing.T) {
	assert.Equal(t, KindConsonant, voicelessAlveolarFricative.Kind())
	assert.Equal(t, KindVowel, closeFrontUnrounded.Kind())
}

// TestPhonet_WithVoicing tests that voicing is replaced on a copy
func TestPhonet_WithVoicing(t *testing.T) {
	c := voicelessAlveolarFricative
	got := c.WithVoicing(Voiced)

	assert.Equal(t, Phonet(voicedAlveolarFricative), got)
	assert.Equal(t, Voiceless, c.VocalFolds)

	v := closeFrontUnrounded.WithVoicing(Voiceless)
	assert.Equal(t, Voiceless, v.Voicing())
	assert.Equal(t, KindVowel, v.Kind())
}

// TestUnrecognized tests the parse sentinel
func TestUnrecognized(t *testing.T) {
	assert.True(t, IsUnrecognized(Consonant{Airstream: PulmonicEgressive}))
	assert.False(t, IsUnrecognized(Consonant{}))
	assert.False(t, IsUnrecognized(voicelessAlveolarFricative))
	assert.False(t, IsUnrecognized(Vowel{}))
}

// TestPhonet_String tests human readable descriptions
func TestPhonet_String(t *testing.T) {
	tests := []struct {
		name     string
		phonet   Phonet
		expected string
	}{
		{"pulmonic consonant", voicelessAlveolarFricative, "voiceless alveolar fricative"},
		{"tap", Consonant{VocalFolds: Voiced, Place: Alveolar, Manner: TapOrFlap, Airstream: PulmonicEgressive}, "voiced alveolar tap or flap"},
		{"click", Consonant{Place: Bilabial, Airstream: Click}, "bilabial click"},
		{"lateral click", Consonant{Place: Alveolar, Manner: Lateral, Airstream: Click}, "alveolar lateral click"},
		{"implosive", Consonant{VocalFolds: Voiced, Place: Velar, Airstream: Implosive}, "voiced velar implosive"},
		{"unrecognized", Unrecognized, "consonant"},
		{"generalized consonant", Consonant{VocalFolds: Voiced, Manner: Plosive}, "voiced plosive"},
		{"vowel", closeFrontUnrounded, "close front unrounded vowel"},
		{"voiceless vowel", closeBackRounded.WithVoicing(Voiceless), "voiceless close back rounded vowel"},
		{"schwa", Vowel{Height: Mid, Backness: Central, VocalFolds: Voiced}, "mid central vowel"},
		{"unmarked vowel", Vowel{}, "vowel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.phonet.String())
		})
	}
}

// TestFeatures tests flattening and rebuilding phonets
func TestFeatures(t *testing.T) {
	t.Run("consonant round trip", func(t *testing.T) {
		f := FeaturesOf(voicedBilabialPlosive)
		assert.Equal(t, KindConsonant, f.Kind)
		assert.Equal(t, "bilabial", f.Place)
		assert.Empty(t, f.Height)

		p, err := f.Phonet()
		require.NoError(t, err)
		assert.Equal(t, Phonet(voicedBilabialPlosive), p)
	})

	t.Run("vowel round trip", func(t *testing.T) {
		f := FeaturesOf(closeBackRounded)
		assert.Equal(t, KindVowel, f.Kind)
		assert.Equal(t, "rounded", f.Rounding)
		assert.Empty(t, f.Manner)

		p, err := f.Phonet()
		require.NoError(t, err)
		assert.Equal(t, Phonet(closeBackRounded), p)
	})

	t.Run("empty names are unmarked", func(t *testing.T) {
		p, err := Features{Kind: KindConsonant, Manner: "plosive"}.Phonet()
		require.NoError(t, err)
		assert.Equal(t, Phonet(Consonant{Manner: Plosive}), p)
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := Features{Kind: "diphthong"}.Phonet()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("unknown feature", func(t *testing.T) {
		_, err := Features{Kind: KindVowel, Height: "tall"}.Phonet()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
