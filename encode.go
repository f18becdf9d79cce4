package hexcodec

import "github.com/templexxx/xhex"

const upperDigits = "0123456789ABCDEF"

// EncodedLen returns the length of the hex encoding of n bytes.
func EncodedLen(n int) int { return n * 2 }

// Encode returns the lowercase hex encoding of src.
func Encode(src []byte) string {
	return string(AppendEncode(nil, src, false))
}

// EncodeUpper returns the uppercase hex encoding of src.
func EncodeUpper(src []byte) string {
	return string(AppendEncode(nil, src, true))
}

// EncodeCase returns the hex encoding of src in the requested letter case.
func EncodeCase(src []byte, upper bool) string {
	return string(AppendEncode(nil, src, upper))
}

// AppendEncode appends the hex encoding of src to dst and returns the
// extended buffer.
func AppendEncode(dst, src []byte, upper bool) []byte {
	n := len(dst)
	dst = append(dst, make([]byte, EncodedLen(len(src)))...)
	encode(dst[n:], src, upper)
	return dst
}

// EncodeToSlice writes the hex encoding of src into dst, which must be
// exactly EncodedLen(len(src)) bytes long; otherwise ErrInvalidStringLength
// is returned and dst is not modified.
func EncodeToSlice(dst, src []byte, upper bool) error {
	if len(dst) != EncodedLen(len(src)) {
		return ErrInvalidStringLength
	}
	encode(dst, src, upper)
	return nil
}

// encode fills dst, most significant nibble first.
func encode(dst, src []byte, upper bool) {
	if len(src) == 0 {
		return
	}
	if !upper {
		xhex.Encode(dst, src)
		return
	}
	for i, v := range src {
		dst[i*2] = upperDigits[v>>4]
		dst[i*2+1] = upperDigits[v&0x0f]
	}
}
