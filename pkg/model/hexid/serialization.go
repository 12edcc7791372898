package hexid

import (
	"fmt"

	"github.com/iotaledger/hive.go/serializer/v2"

	"github.com/gohornet/hexutil/pkg/hex"
)

const (
	// maxHexLength is the max length of a hex string written with a single byte length prefix.
	maxHexLength = 255
)

func writeHex(seri *serializer.Serializer, value hex.Hex, name string) *serializer.Serializer {
	binarySerializer := hex.NewBinarySerializer(seri, func(err error) error {
		return fmt.Errorf("unable to serialize %s: %w", name, err)
	})

	// errors are kept in the serializer and returned by Serialize
	seri, _ = hex.SerializeToHex[*serializer.Serializer](value, binarySerializer)
	return seri
}

func readHex(deseri *serializer.Deserializer, value hex.FromHexer, name string) *serializer.Deserializer {
	var hexStr string
	return deseri.
		ReadString(&hexStr, serializer.SeriLengthPrefixTypeAsByte, func(err error) error {
			return fmt.Errorf("unable to deserialize %s: %w", name, err)
		}, maxHexLength).
		AbortIf(func(err error) error {
			if err := value.FromHex(hexStr); err != nil {
				return fmt.Errorf("unable to deserialize %s: %w", name, err)
			}
			return nil
		})
}
