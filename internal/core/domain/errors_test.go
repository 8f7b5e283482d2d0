package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestErrors_Existence tests that all error variables exist and are not nil
func TestErrors_Existence(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"ErrNotFound", ErrNotFound},
		{"ErrAlreadyExists", ErrAlreadyExists},
		{"ErrInvalidInput", ErrInvalidInput},
		{"ErrUnrecognizedSymbol", ErrUnrecognizedSymbol},
		{"ErrInvalidRule", ErrInvalidRule},
		{"ErrReadOnly", ErrReadOnly},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.NotEmpty(t, tt.err.Error())
		})
	}
}

// TestErrors_Distinct tests that no two sentinels match each other
func TestErrors_Distinct(t *testing.T) {
	all := []error{
		ErrNotFound, ErrAlreadyExists, ErrInvalidInput,
		ErrUnrecognizedSymbol, ErrInvalidRule, ErrReadOnly,
	}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
}

// TestErrors_Wrapped tests that wrapped errors still match
func TestErrors_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("generalizing %q: %w", "ʘ̃", ErrUnrecognizedSymbol)

	assert.True(t, errors.Is(wrapped, ErrUnrecognizedSymbol))
	assert.False(t, errors.Is(wrapped, ErrInvalidInput))
	assert.Contains(t, wrapped.Error(), "unrecognized symbol")
}
