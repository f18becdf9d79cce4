package hexcodec

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/vmihailenco/msgpack/v5"
)

// Bytes is a byte slice that travels as lowercase hex text in JSON, msgpack,
// SQL and any encoding.TextMarshaler aware format.
type Bytes []byte

// String returns the lowercase hex encoding.
func (b Bytes) String() string {
	return Encode(b)
}

// Equals reports whether b and other hold the same bytes.
func (b Bytes) Equals(other Bytes) bool {
	return bytes.Equal(b, other)
}

// MarshalText implements encoding.TextMarshaler.
func (b Bytes) MarshalText() ([]byte, error) {
	return AppendEncode(nil, b, false), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
// b is only updated when text decodes cleanly.
func (b *Bytes) UnmarshalText(text []byte) error {
	val, err := Decode(text)
	if err != nil {
		return err
	}
	*b = val
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
// A nil Bytes encodes as null.
func (b Bytes) MarshalJSON() ([]byte, error) {
	if b == nil {
		return []byte("null"), nil
	}
	return json.Marshal(b.String())
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (b *Bytes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*b = nil
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return errors.Wrap(err, "parse string")
	}
	if err := b.UnmarshalText([]byte(s)); err != nil {
		return errors.Wrap(err, "parse hex")
	}
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// The bytes are stored as a hex TEXT value; nil is stored as NULL.
func (b Bytes) Value() (driver.Value, error) {
	if b == nil {
		return nil, nil
	}
	return b.String(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts hex text as string or []byte.
func (b *Bytes) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*b = nil
		return nil
	case string:
		return errors.Wrap(b.UnmarshalText([]byte(v)), "scan hex")
	case []byte:
		return errors.Wrap(b.UnmarshalText(v), "scan hex")
	default:
		return fmt.Errorf("cannot scan type %T into Bytes", value)
	}
}

// EncodeMsgpack implements msgpack.CustomEncoder.
func (b Bytes) EncodeMsgpack(enc *msgpack.Encoder) error {
	if b == nil {
		return enc.EncodeNil()
	}
	return enc.EncodeString(b.String())
}

// DecodeMsgpack implements msgpack.CustomDecoder.
func (b *Bytes) DecodeMsgpack(dec *msgpack.Decoder) error {
	s, err := dec.DecodeString()
	if err != nil {
		return errors.Wrap(err, "decode msgpack string")
	}
	return errors.Wrap(b.UnmarshalText([]byte(s)), "parse hex")
}
