package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEnglishUS tests the built-in inventory
func TestEnglishUS(t *testing.T) {
	inv := EnglishUS()

	assert.Equal(t, EnglishUSID, inv.ID)
	assert.True(t, inv.Builtin)
	assert.Contains(t, inv.Symbols, "t͡ʃ")
	assert.Contains(t, inv.Symbols, "ə")

	seen := map[string]bool{}
	for _, s := range inv.Symbols {
		assert.False(t, seen[s], "duplicate symbol %q", s)
		seen[s] = true
	}
}

// TestEnglishUS_ReturnsCopy tests that callers get their own slice
func TestEnglishUS_ReturnsCopy(t *testing.T) {
	inv := EnglishUS()
	inv.Symbols[0] = "x"

	assert.Equal(t, "p", EnglishUS().Symbols[0])
}

// TestBuiltinInventories tests the built-in list
func TestBuiltinInventories(t *testing.T) {
	builtins := BuiltinInventories()

	require.Len(t, builtins, 1)
	assert.Equal(t, EnglishUSID, builtins[0].ID)
}

// TestNaturalClass_MarshalJSON tests the JSON shape of a natural class
func TestNaturalClass_MarshalJSON(t *testing.T) {
	class := NaturalClass{
		Symbols:     []string{"s", "z"},
		Pattern:     Consonant{Place: Alveolar, Manner: Fricative, Airstream: PulmonicEgressive},
		Description: "alveolar fricative",
		Members: []Realization{
			{Phonet: voicelessAlveolarFricative, Symbol: "s"},
		},
	}

	data, err := json.Marshal(class)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	pattern := decoded["pattern"].(map[string]any)
	assert.Equal(t, "consonant", pattern["kind"])
	assert.Equal(t, "unmarked", pattern["vocal_folds"])
	assert.Equal(t, "alveolar", pattern["place"])

	members := decoded["members"].([]any)
	require.Len(t, members, 1)
	member := members[0].(map[string]any)
	assert.Equal(t, "s", member["symbol"])
	assert.Equal(t, "voiceless", member["features"].(map[string]any)["vocal_folds"])
}
