package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeneralize tests the field-wise meet
func TestGeneralize(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Phonet
		expected Phonet
	}{
		{
			name:     "identical consonants",
			a:        voicelessAlveolarFricative,
			b:        voicelessAlveolarFricative,
			expected: voicelessAlveolarFricative,
		},
		{
			name:     "voicing differs",
			a:        voicelessAlveolarFricative,
			b:        voicedAlveolarFricative,
			expected: Consonant{Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive},
		},
		{
			name:     "manner differs",
			a:        voicelessAlveolarFricative,
			b:        voicelessAlveolarPlosive,
			expected: Consonant{VocalFolds: Voiceless, Place: Alveolar, Airstream: PulmonicEgressive},
		},
		{
			name:     "vowels",
			a:        closeFrontUnrounded,
			b:        closeBackRounded,
			expected: Vowel{Height: Close, VocalFolds: Voiced},
		},
		{
			name:     "vowel and consonant share voicing",
			a:        closeFrontUnrounded,
			b:        voicedBilabialPlosive,
			expected: Vowel{VocalFolds: Voiced},
		},
		{
			name:     "consonant and vowel differ in voicing",
			a:        voicelessAlveolarPlosive,
			b:        closeFrontUnrounded,
			expected: Vowel{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Generalize(tt.a, tt.b))
			assert.Equal(t, tt.expected, Generalize(tt.b, tt.a), "commutative")
		})
	}
}

// TestGeneralize_Idempotent tests that a phonet generalizes to itself
func TestGeneralize_Idempotent(t *testing.T) {
	for _, p := range Enumerate(Vowel{Height: Close}) {
		assert.Equal(t, p, Generalize(p, p))
	}
}

// TestGeneralizeAll tests the fold over a list
func TestGeneralizeAll(t *testing.T) {
	t.Run("empty list", func(t *testing.T) {
		_, err := GeneralizeAll()
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("single phonet", func(t *testing.T) {
		got, err := GeneralizeAll(voicedBilabialPlosive)
		require.NoError(t, err)
		assert.Equal(t, Phonet(voicedBilabialPlosive), got)
	})

	t.Run("voiced plosives", func(t *testing.T) {
		got, err := GeneralizeAll(
			voicedBilabialPlosive,
			Consonant{VocalFolds: Voiced, Place: Alveolar, Manner: Plosive, Airstream: PulmonicEgressive},
			Consonant{VocalFolds: Voiced, Place: Velar, Manner: Plosive, Airstream: PulmonicEgressive},
		)
		require.NoError(t, err)
		assert.Equal(t, Phonet(Consonant{VocalFolds: Voiced, Manner: Plosive, Airstream: PulmonicEgressive}), got)
	})
}

// TestEnumerate_Totality tests the sizes of the full enumerations
func TestEnumerate_Totality(t *testing.T) {
	consonants := Enumerate(Consonant{})
	vowels := Enumerate(Vowel{})

	assert.Len(t, consonants, 2640)
	assert.Len(t, vowels, 210)

	seen := make(map[Phonet]bool, len(consonants))
	for _, p := range consonants {
		assert.False(t, seen[p], "duplicate %v", p)
		seen[p] = true
	}
}

// TestEnumerate_Order tests the nesting order of each variant
func TestEnumerate_Order(t *testing.T) {
	consonants := Enumerate(Consonant{})
	assert.Equal(t, Phonet(Consonant{VocalFolds: Voiceless, Place: Bilabial, Manner: Plosive, Airstream: PulmonicEgressive}), consonants[0])
	assert.Equal(t, Phonet(Consonant{VocalFolds: Voiceless, Place: Bilabial, Manner: Plosive, Airstream: Click}), consonants[1])
	assert.Equal(t, Phonet(Consonant{VocalFolds: Voiceless, Place: Bilabial, Manner: Nasal, Airstream: PulmonicEgressive}), consonants[3])
	assert.Equal(t, Phonet(Consonant{VocalFolds: Voiced, Place: Bilabial, Manner: Plosive, Airstream: PulmonicEgressive}), consonants[33])
	assert.Equal(t, Bilabial, consonants[164].(Consonant).Place)
	assert.Equal(t, LabioDental, consonants[165].(Consonant).Place)

	vowels := Enumerate(Vowel{})
	assert.Equal(t, Phonet(Vowel{Height: Close, Backness: Front, Rounding: Rounded, VocalFolds: Voiceless}), vowels[0])
	assert.Equal(t, Phonet(Vowel{Height: Close, Backness: Front, Rounding: Rounded, VocalFolds: Voiced}), vowels[1])
	assert.Equal(t, Phonet(Vowel{Height: Close, Backness: Front, Rounding: Unrounded, VocalFolds: Voiceless}), vowels[5])
	assert.Equal(t, Phonet(Vowel{Height: Open, Backness: Back, Rounding: Unrounded, VocalFolds: CreakyVoiced}), vowels[209])
}

// TestEnumerate_FullyMarked tests that a concrete phonet enumerates to itself
func TestEnumerate_FullyMarked(t *testing.T) {
	assert.Equal(t, []Phonet{voicelessAlveolarFricative}, Enumerate(voicelessAlveolarFricative))
	assert.Equal(t, []Phonet{closeBackRounded}, Enumerate(closeBackRounded))
}

// TestEnumerate_Partial tests expansion of a single wildcard
func TestEnumerate_Partial(t *testing.T) {
	got := Enumerate(Consonant{Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive})

	require.Len(t, got, 5)
	for i, vf := range AllVocalFolds() {
		assert.Equal(t, vf, got[i].Voicing())
	}
}

// TestGeneralizeEnumerate_Recovery tests that a generalization covers its inputs
func TestGeneralizeEnumerate_Recovery(t *testing.T) {
	pairs := [][2]Phonet{
		{voicelessAlveolarFricative, voicedBilabialPlosive},
		{voicelessAlveolarPlosive, voicedAlveolarFricative},
		{closeFrontUnrounded, closeBackRounded},
		{closeFrontUnrounded, Vowel{Height: Open, Backness: Back, Rounding: Rounded, VocalFolds: Voiceless}},
	}

	for _, pair := range pairs {
		g := Generalize(pair[0], pair[1])
		members := Enumerate(g)
		assert.Contains(t, members, pair[0])
		assert.Contains(t, members, pair[1])
		assert.True(t, Matches(g, pair[0]))
		assert.True(t, Matches(g, pair[1]))
	}
}

// TestMatches tests pattern membership
func TestMatches(t *testing.T) {
	voicedPlosive := Consonant{VocalFolds: Voiced, Manner: Plosive}

	assert.True(t, Matches(voicedPlosive, voicedBilabialPlosive))
	assert.False(t, Matches(voicedPlosive, voicelessAlveolarPlosive))
	assert.False(t, Matches(voicedPlosive, closeFrontUnrounded))
	assert.True(t, Matches(Vowel{}, closeBackRounded))
	assert.False(t, Matches(Vowel{}, voicedBilabialPlosive))

	t.Run("unmarked field in candidate", func(t *testing.T) {
		click := Consonant{Place: Bilabial, Airstream: Click}
		assert.True(t, Matches(Consonant{}, click))
		assert.True(t, Matches(Consonant{Airstream: Click}, click))
		assert.False(t, Matches(Consonant{Manner: Plosive}, click))

		schwa := Vowel{Height: Mid, Backness: Central, VocalFolds: Voiced}
		assert.True(t, Matches(Vowel{}, schwa))
		assert.True(t, Matches(Vowel{Height: Mid}, schwa))
		assert.False(t, Matches(Vowel{Rounding: Rounded}, schwa))
	})

	t.Run("agrees with enumerate", func(t *testing.T) {
		pattern := Vowel{Backness: Front, VocalFolds: Voiced}
		members := Enumerate(pattern)
		for _, v := range Enumerate(Vowel{}) {
			assert.Equal(t, Matches(pattern, v), containsPhonet(members, v), "%v", v)
		}
	})
}

func containsPhonet(ps []Phonet, p Phonet) bool {
	for _, q := range ps {
		if q == p {
			return true
		}
	}
	return false
}
