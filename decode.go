package hexcodec

import (
	"errors"
	"strings"
	"unicode/utf8"
)

// Input is the set of types the decoders accept.
type Input interface {
	~string | ~[]byte
}

// invalidNibble marks bytes that are not hex digits in nibbleTable.
const invalidNibble = 0xff

// nibbleTable maps every byte to its 4-bit value, or invalidNibble.
// Built once at init and only read afterwards.
var nibbleTable = buildNibbleTable()

func buildNibbleTable() [256]byte {
	var t [256]byte
	for i := range t {
		t[i] = invalidNibble
	}
	for c := byte('0'); c <= '9'; c++ {
		t[c] = c - '0'
	}
	for c := byte('a'); c <= 'f'; c++ {
		t[c] = c - 'a' + 10
		t[c-'a'+'A'] = c - 'a' + 10
	}
	return t
}

// DecodedLen returns the number of bytes n hex digits decode to.
func DecodedLen(n int) int { return n / 2 }

// Decode converts a hex string into bytes. Both letter cases are accepted.
//
// An odd-length input fails with ErrOddLength before any character is looked
// at. Otherwise the first non-hex character, scanning left to right, fails
// with an InvalidHexCharacter error carrying that character and its offset.
// An empty input decodes to an empty, non-nil slice.
func Decode[T Input](src T) ([]byte, error) {
	if len(src)%2 != 0 {
		return nil, ErrOddLength
	}
	dst := make([]byte, DecodedLen(len(src)))
	if err := decodeInto(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// DecodeToSlice decodes src into dst, which acts as a fixed-size container:
// src must hold exactly 2*len(dst) digits or ErrInvalidStringLength is
// returned without inspecting the characters. dst is left untouched on error.
//
// For arrays, pass a slice of the whole array:
//
//	var key [16]byte
//	err := hexcodec.DecodeToSlice(key[:], s)
func DecodeToSlice[T Input](dst []byte, src T) error {
	if len(src) != 2*len(dst) {
		return ErrInvalidStringLength
	}
	if err := validate(src); err != nil {
		return err
	}
	return decodeInto(dst, src)
}

// DecodePrefixed is Decode with an optional leading "0x" or "0X".
// Error positions still count from the start of s, prefix included.
func DecodePrefixed(s string) ([]byte, error) {
	offset := 0
	if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
		offset = 2
	}

	b, err := Decode(s[offset:])
	if err != nil {
		var de DecodeError
		if errors.As(err, &de) && de.Kind == InvalidHexCharacter {
			de.Index += offset
			return nil, de
		}
		return nil, err
	}
	return b, nil
}

// MustDecode is like Decode but panics on error. Meant for constants and
// test fixtures.
func MustDecode(s string) []byte {
	b, err := Decode(s)
	if err != nil {
		panic(err)
	}
	return b
}

// Valid reports whether src decodes without error.
func Valid[T Input](src T) bool {
	return len(src)%2 == 0 && validate(src) == nil
}

// validate returns the error for the first non-hex character in src.
func validate[T Input](src T) error {
	for i := 0; i < len(src); i++ {
		if nibbleTable[src[i]] == invalidNibble {
			return invalidChar(charAt(src, i), i)
		}
	}
	return nil
}

// decodeInto packs src pairs into dst, high nibble first. len(src) must be
// 2*len(dst).
func decodeInto[T Input](dst []byte, src T) error {
	for i := range dst {
		hi := nibbleTable[src[2*i]]
		if hi == invalidNibble {
			return invalidChar(charAt(src, 2*i), 2*i)
		}
		lo := nibbleTable[src[2*i+1]]
		if lo == invalidNibble {
			return invalidChar(charAt(src, 2*i+1), 2*i+1)
		}
		dst[i] = hi<<4 | lo
	}
	return nil
}

// charAt returns the character starting at byte offset i of src. Bytes that
// do not start a valid UTF-8 sequence come back as utf8.RuneError.
func charAt[T Input](src T, i int) rune {
	if src[i] < utf8.RuneSelf {
		return rune(src[i])
	}
	var buf [utf8.UTFMax]byte
	n := 0
	for ; n < len(buf) && i+n < len(src); n++ {
		buf[n] = src[i+n]
	}
	r, _ := utf8.DecodeRune(buf[:n])
	return r
}
