package hexcodec_test

import (
	"errors"
	"fmt"

	"go.codycody31.dev/hexcodec/v1"
)

func ExampleDecode() {
	b, err := hexcodec.Decode("48656c6c6f")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%s\n", b)

	_, err = hexcodec.Decode("0g1h")
	fmt.Println(err)

	_, err = hexcodec.Decode("abc")
	fmt.Println(err)
	// Output:
	// Hello
	// Invalid character 'g' at position 1
	// Odd number of digits
}

func ExampleDecodeToSlice() {
	var key [4]byte

	err := hexcodec.DecodeToSlice(key[:], "0011223344")
	fmt.Println(err)

	err = hexcodec.DecodeToSlice(key[:], "deadBEEF")
	fmt.Println(key, err)
	// Output:
	// Invalid string length
	// [222 173 190 239] <nil>
}

func ExampleEncodeCase() {
	fmt.Println(hexcodec.EncodeCase([]byte("Hello"), false))
	fmt.Println(hexcodec.EncodeCase([]byte("Hello"), true))
	// Output:
	// 48656c6c6f
	// 48656C6C6F
}

func ExampleDecodeError() {
	_, err := hexcodec.DecodePrefixed("0x00ff0z")

	var de hexcodec.DecodeError
	if errors.As(err, &de) {
		switch de.Kind {
		case hexcodec.InvalidHexCharacter:
			fmt.Printf("bad digit %q at %d\n", de.Char, de.Index)
		case hexcodec.OddLength:
			fmt.Println("odd length")
		case hexcodec.InvalidStringLength:
			fmt.Println("wrong length")
		}
	}
	// Output:
	// bad digit 'z' at 7
}
