package hex

// Hex is implemented by types that can represent themselves as a hex string.
type Hex interface {
	// ToHex returns the hexadecimal string representation of the value.
	ToHex() string
}

// FromHexer is implemented by types that can be set from a hex string.
//
// Any failure (odd length, non hex characters, wrong size for the type, etc.)
// is returned as a *HexError.
type FromHexer interface {
	FromHex(hexStr string) error
}

// HexPtr is a type constraint that ensures that the pointer to V can be converted from and to hex.
type HexPtr[V any] interface {
	*V
	Hex
	FromHexer
}

// Parse creates a value of type V from the given hex string.
func Parse[V any, P HexPtr[V]](hexStr string) (V, error) {
	var value V
	if err := P(&value).FromHex(hexStr); err != nil {
		var empty V
		return empty, err
	}
	return value, nil
}

// ParseMultiple creates values of type V from the given hex strings.
// The first failure aborts the conversion.
func ParseMultiple[V any, P HexPtr[V]](hexStrings []string) ([]V, error) {
	results := make([]V, len(hexStrings))
	for i, hexStr := range hexStrings {
		value, err := Parse[V, P](hexStr)
		if err != nil {
			return nil, err
		}
		results[i] = value
	}
	return results, nil
}

// DecodeFixed decodes the hex string into dst.
// The decoded bytes must exactly fill dst, otherwise ErrHexConversion is returned.
func DecodeFixed(hexStr string, dst []byte) error {
	b, err := FromHex(hexStr)
	if err != nil {
		return err
	}

	if len(b) != len(dst) {
		return NewError(KindHexConversion, nil)
	}

	copy(dst, b)
	return nil
}
