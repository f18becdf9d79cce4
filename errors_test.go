package hexcodec

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  DecodeError
		want string
	}{
		{"invalid char", invalidChar('g', 1), "Invalid character 'g' at position 1"},
		{"invalid newline", invalidChar('\n', 5), "Invalid character '\n' at position 5"},
		{"invalid non-ascii", invalidChar('é', 3), "Invalid character 'é' at position 3"},
		{"odd length", ErrOddLength, "Odd number of digits"},
		{"invalid string length", ErrInvalidStringLength, "Invalid string length"},
		{"unknown kind", DecodeError{Kind: 42}, "hexcodec: unknown error kind 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestDecodeError_Is(t *testing.T) {
	wrapped := fmt.Errorf("loading key: %w", invalidChar('z', 7))

	assert.ErrorIs(t, wrapped, ErrInvalidHexCharacter)
	assert.NotErrorIs(t, wrapped, ErrOddLength)
	assert.ErrorIs(t, fmt.Errorf("ctx: %w", ErrOddLength), ErrOddLength)
	assert.NotErrorIs(t, ErrOddLength, ErrInvalidStringLength)
	assert.False(t, errors.Is(ErrOddLength, errors.New("Odd number of digits")))

	var de DecodeError
	assert.True(t, errors.As(wrapped, &de))
	assert.Equal(t, invalidChar('z', 7), de)
}

func TestErrorKind_String(t *testing.T) {
	assert.Equal(t, "InvalidHexCharacter", InvalidHexCharacter.String())
	assert.Equal(t, "OddLength", OddLength.String())
	assert.Equal(t, "InvalidStringLength", InvalidStringLength.String())
	assert.Equal(t, "ErrorKind(0)", ErrorKind(0).String())
}
