package hex

import (
	"encoding/json"
	"math"

	"github.com/iotaledger/hive.go/serializer/v2"
)

// Serializer is a structured output sink that is able to emit a single string value.
// R is the result the sink returns on success.
type Serializer[R any] interface {
	SerializeString(s string) (R, error)
}

// SerializeToHex emits the hex string of the given value as a single string value.
func SerializeToHex[R any](value Hex, ser Serializer[R]) (R, error) {
	return ser.SerializeString(value.ToHex())
}

// JSONSerializer emits the string as a JSON string literal.
type JSONSerializer struct{}

// SerializeString implements the Serializer interface.
func (JSONSerializer) SerializeString(s string) ([]byte, error) {
	return json.Marshal(s)
}

// BinarySerializer appends the string with a length prefix to a binary serializer.
type BinarySerializer struct {
	Serializer  *serializer.Serializer
	LenType     serializer.SeriLengthPrefixType
	ErrProducer serializer.ErrProducer
	MaxLen      int
}

// NewBinarySerializer creates a BinarySerializer that writes to seri using a single byte length prefix.
func NewBinarySerializer(seri *serializer.Serializer, errProducer serializer.ErrProducer) *BinarySerializer {
	return &BinarySerializer{
		Serializer:  seri,
		LenType:     serializer.SeriLengthPrefixTypeAsByte,
		ErrProducer: errProducer,
		MaxLen:      math.MaxUint8,
	}
}

// SerializeString implements the Serializer interface.
// The returned serializer can be used to continue the chain, errors are reported by its Serialize method.
func (b *BinarySerializer) SerializeString(s string) (*serializer.Serializer, error) {
	errProducer := b.ErrProducer
	if errProducer == nil {
		errProducer = func(err error) error { return err }
	}
	return b.Serializer.WriteString(s, b.LenType, errProducer, b.MaxLen), nil
}

// MarshalText returns the hex string of the value as text.
// Types implementing Hex can use it for their encoding.TextMarshaler implementation.
func MarshalText(value Hex) ([]byte, error) {
	return []byte(value.ToHex()), nil
}
