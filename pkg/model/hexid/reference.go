package hexid

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/iotaledger/hive.go/serializer/v2"
)

const (
	// MaxParentsCount is the max amount of parents of a Reference, the count is serialized as a single byte.
	MaxParentsCount = 255
)

var (
	// ErrTooManyParents is returned if a Reference has more parents than MaxParentsCount.
	ErrTooManyParents = errors.New("too many parents")
	// ErrTrailingData is returned if the serialized Reference is followed by more data.
	ErrTrailingData = errors.New("data left over after deserialization")
)

// Reference links a block to the key that issued it.
type Reference struct {
	BlockID BlockID   `json:"blockId" toml:"blockId"`
	Issuer  PublicKey `json:"issuer" toml:"issuer"`
	Parents BlockIDs  `json:"parents" toml:"parents"`
}

// Serialize returns the binary representation of the Reference.
// All IDs are written as length prefixed hex strings.
func (r *Reference) Serialize() ([]byte, error) {
	if len(r.Parents) > MaxParentsCount {
		return nil, errors.Wrapf(ErrTooManyParents, "%d parents, max %d allowed", len(r.Parents), MaxParentsCount)
	}

	seri := serializer.NewSerializer()
	seri = writeHex(seri, r.BlockID, "reference block ID")
	seri = writeHex(seri, r.Issuer, "reference issuer")
	seri = seri.WriteNum(uint8(len(r.Parents)), func(err error) error {
		return fmt.Errorf("unable to serialize reference parents count: %w", err)
	})
	for _, parent := range r.Parents {
		seri = writeHex(seri, parent, "reference parent")
	}
	return seri.Serialize()
}

// Deserialize reads the binary representation of a Reference.
// The data must contain exactly one Reference.
func (r *Reference) Deserialize(data []byte) (int, error) {
	var parentsCount uint8

	deseri := serializer.NewDeserializer(data)
	deseri = readHex(deseri, &r.BlockID, "reference block ID")
	deseri = readHex(deseri, &r.Issuer, "reference issuer")
	deseri = deseri.ReadNum(&parentsCount, func(err error) error {
		return fmt.Errorf("unable to deserialize reference parents count: %w", err)
	})

	r.Parents = make(BlockIDs, parentsCount)
	for i := range r.Parents {
		deseri = readHex(deseri, &r.Parents[i], "reference parent")
	}

	n, err := deseri.Done()
	if err != nil {
		return n, err
	}

	if n != len(data) {
		return n, errors.Wrapf(ErrTrailingData, "%d of %d bytes consumed", n, len(data))
	}

	return n, nil
}
