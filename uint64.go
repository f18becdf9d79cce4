package hexcodec

import "encoding/binary"

// Uint64Digits is the number of hex digits in a fixed-width uint64.
const Uint64Digits = 16

// ParseUint64 reads a uint64 from exactly 16 big-endian hex digits.
// Shorter or longer input fails with ErrInvalidStringLength; there is no
// implicit zero padding.
func ParseUint64(s string) (uint64, error) {
	var buf [8]byte
	if err := DecodeToSlice(buf[:], s); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(buf[:]), nil
}

// FormatUint64 writes v as 16 zero-padded big-endian hex digits.
func FormatUint64(v uint64, upper bool) string {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)
	return EncodeCase(buf[:], upper)
}
