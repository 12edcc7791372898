// Package hex implements the conversion between bytes and their lowercase hexadecimal
// string representation, and the Hex capability for types that can be represented as hex.
package hex

import (
	"strconv"
	"strings"
)

const (
	// Prefix is the optional marker accepted in front of a hex string.
	Prefix = "0x"

	hexAlphabet = "0123456789abcdef"
)

// Byte is a constraint for the fixed-width values that are encoded as exactly two hex digits.
type Byte interface {
	~uint8 | ~int8
}

// ToHex encodes the given bytes into a lowercase hex string.
// Every element results in exactly two characters.
func ToHex[T Byte](bytes []T) string {
	var sb strings.Builder
	sb.Grow(len(bytes) * 2)
	for _, b := range bytes {
		v := uint8(b)
		sb.WriteByte(hexAlphabet[v>>4])
		sb.WriteByte(hexAlphabet[v&0x0f])
	}
	return sb.String()
}

// ToHexMultiple encodes each of the given byte slices into a hex string.
func ToHexMultiple(byteArrays [][]byte) []string {
	results := make([]string, len(byteArrays))
	for i, bytes := range byteArrays {
		results[i] = ToHex(bytes)
	}
	return results
}

// FromHex decodes a hex string into bytes.
// Leading and trailing whitespace and an optional "0x" prefix are ignored.
func FromHex(hexStr string) ([]byte, error) {
	hexTrim := strings.TrimSpace(hexStr)
	if len(hexTrim)%2 == 1 {
		return nil, NewError(KindLength, nil)
	}

	// indexing by byte position is only safe for single byte characters
	if !isASCII(hexStr) {
		return nil, NewError(KindHexConversion, nil)
	}

	hexTrim = strings.TrimPrefix(hexTrim, Prefix)

	result := make([]byte, len(hexTrim)/2)
	for i := range result {
		b, err := strconv.ParseUint(hexTrim[2*i:2*(i+1)], 16, 8)
		if err != nil {
			return nil, NewError(KindInvalidCharacter, err)
		}
		result[i] = byte(b)
	}

	return result, nil
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] > 0x7f {
			return false
		}
	}
	return true
}
