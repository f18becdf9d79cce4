package hexcodec

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Bytes32Length is the size of a Bytes32 in bytes.
const Bytes32Length = 32

// Bytes32 is a fixed 32-byte value (hashes, keys) whose text form is exactly
// 64 hex digits. Any other length is rejected with ErrInvalidStringLength.
type Bytes32 [Bytes32Length]byte

// ParseBytes32 parses exactly 64 hex digits of either case.
func ParseBytes32(s string) (Bytes32, error) {
	var out Bytes32
	if err := DecodeToSlice(out[:], s); err != nil {
		return Bytes32{}, err
	}
	return out, nil
}

// Bytes32FromBytes copies a 32-byte slice into a Bytes32.
func Bytes32FromBytes(b []byte) (Bytes32, error) {
	var out Bytes32
	if len(b) != Bytes32Length {
		return out, fmt.Errorf("must be %d bytes, got %d", Bytes32Length, len(b))
	}
	copy(out[:], b)
	return out, nil
}

// Bytes returns a copy of the value as a slice.
func (h Bytes32) Bytes() []byte {
	out := make([]byte, Bytes32Length)
	copy(out, h[:])
	return out
}

// String returns the 64-char lowercase hex encoding.
func (h Bytes32) String() string {
	return Encode(h[:])
}

// IsZero reports whether every byte is zero.
func (h Bytes32) IsZero() bool {
	return h == Bytes32{}
}

// CompareBytes32 compares two values byte-wise.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareBytes32(a, b Bytes32) int {
	return bytes.Compare(a[:], b[:])
}

// Equals checks equality byte-wise.
func (h Bytes32) Equals(other Bytes32) bool {
	return h == other
}

// MarshalText implements encoding.TextMarshaler.
func (h Bytes32) MarshalText() ([]byte, error) {
	return AppendEncode(make([]byte, 0, EncodedLen(Bytes32Length)), h[:], false), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *Bytes32) UnmarshalText(text []byte) error {
	return DecodeToSlice(h[:], text)
}

// MarshalJSON implements the json.Marshaler interface.
func (h Bytes32) MarshalJSON() ([]byte, error) {
	return json.Marshal(h.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (h *Bytes32) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "parse string")
	}
	return errors.Wrap(h.UnmarshalText([]byte(s)), "parse hex")
}

// Value implements the driver.Valuer interface for SQL database support.
func (h Bytes32) Value() (driver.Value, error) {
	return h.String(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// NULL scans to the zero value.
func (h *Bytes32) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*h = Bytes32{}
		return nil
	case string:
		return errors.Wrap(h.UnmarshalText([]byte(v)), "scan hex")
	case []byte:
		return errors.Wrap(h.UnmarshalText(v), "scan hex")
	default:
		return fmt.Errorf("cannot scan type %T into Bytes32", value)
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (h Bytes32) EncodeMsgpack(enc *msgpack.Encoder) error {
	return enc.EncodeString(h.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (h *Bytes32) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "decode msgpack string")
	}
	return errors.Wrap(h.UnmarshalText([]byte(s)), "parse hex")
}
