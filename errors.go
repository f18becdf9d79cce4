package hexcodec

import "fmt"

// ErrorKind identifies which of the decode failures a DecodeError describes.
type ErrorKind uint8

const (
	// InvalidHexCharacter means a character outside 0-9, a-f, A-F was found.
	InvalidHexCharacter ErrorKind = iota + 1

	// OddLength means the input has an odd number of characters, so the last
	// digit has no partner to form a byte with.
	OddLength

	// InvalidStringLength means the input length is not exactly twice the
	// capacity of the fixed-size container being decoded into.
	InvalidStringLength
)

// String returns the kind name.
func (k ErrorKind) String() string {
	switch k {
	case InvalidHexCharacter:
		return "InvalidHexCharacter"
	case OddLength:
		return "OddLength"
	case InvalidStringLength:
		return "InvalidStringLength"
	default:
		return fmt.Sprintf("ErrorKind(%d)", uint8(k))
	}
}

// DecodeError is returned by every decoding function in this package.
// Char and Index are only set for InvalidHexCharacter: Char is the offending
// character and Index its zero-based byte offset in the original input.
//
// DecodeError is comparable, so decoding the same input twice yields errors
// that are == to each other.
type DecodeError struct {
	Kind  ErrorKind
	Char  rune
	Index int
}

var (
	// ErrInvalidHexCharacter matches any InvalidHexCharacter error via errors.Is.
	ErrInvalidHexCharacter = DecodeError{Kind: InvalidHexCharacter}

	// ErrOddLength is the error for inputs with an odd number of digits.
	ErrOddLength = DecodeError{Kind: OddLength}

	// ErrInvalidStringLength is the error for fixed-size decodes whose input
	// does not hold exactly two digits per destination byte.
	ErrInvalidStringLength = DecodeError{Kind: InvalidStringLength}
)

func (e DecodeError) Error() string {
	switch e.Kind {
	case InvalidHexCharacter:
		return fmt.Sprintf("Invalid character '%c' at position %d", e.Char, e.Index)
	case OddLength:
		return "Odd number of digits"
	case InvalidStringLength:
		return "Invalid string length"
	default:
		return fmt.Sprintf("hexcodec: unknown error kind %d", uint8(e.Kind))
	}
}

// Is reports whether target is a DecodeError of the same kind, so
// errors.Is(err, ErrInvalidHexCharacter) holds whatever character was found.
func (e DecodeError) Is(target error) bool {
	t, ok := target.(DecodeError)
	return ok && t.Kind == e.Kind
}

func invalidChar(c rune, index int) DecodeError {
	return DecodeError{Kind: InvalidHexCharacter, Char: c, Index: index}
}
