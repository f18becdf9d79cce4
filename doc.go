// Package hexcodec converts between bytes and base-16 text.
//
// Decoding accepts both letter cases and fails with a DecodeError of exactly
// one kind: InvalidHexCharacter, OddLength, or InvalidStringLength for
// fixed-size destinations. Length is always checked before any character, and
// the first bad character found left to right is the one reported.
//
// Encoding is total and produces lowercase digits unless uppercase is asked
// for. Bytes, Bytes32 and the uint64 helpers carry the codec into JSON,
// msgpack and database/sql.
package hexcodec
