package hexid

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/iotaledger/hive.go/serializer/v2"

	"github.com/gohornet/hexutil/pkg/hex"
)

const (
	// BlockIDLength is the length of a BlockID in bytes.
	BlockIDLength = 32
)

// BlockID is the ID of a Block.
type BlockID [BlockIDLength]byte

// BlockIDs is a slice of BlockID.
type BlockIDs []BlockID

// LexicalOrderedBlockIDs are BlockIDs ordered in lexical order.
type LexicalOrderedBlockIDs BlockIDs

func (l LexicalOrderedBlockIDs) Len() int {
	return len(l)
}

func (l LexicalOrderedBlockIDs) Less(i, j int) bool {
	return bytes.Compare(l[i][:], l[j][:]) < 0
}

func (l LexicalOrderedBlockIDs) Swap(i, j int) {
	l[i], l[j] = l[j], l[i]
}

// ToHex converts the BlockID to its hex representation.
func (b BlockID) ToHex() string {
	return hex.ToHex(b[:])
}

// FromHex sets the BlockID from its hex representation.
func (b *BlockID) FromHex(hexStr string) error {
	return hex.DecodeFixed(hexStr, b[:])
}

func (b BlockID) String() string {
	return b.ToHex()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (b BlockID) MarshalText() ([]byte, error) {
	return hex.MarshalText(b)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (b *BlockID) UnmarshalText(text []byte) error {
	return b.FromHex(string(text))
}

// Serialize returns the length prefixed hex representation of the BlockID.
func (b BlockID) Serialize() ([]byte, error) {
	return writeHex(serializer.NewSerializer(), b, "block ID").Serialize()
}

// Deserialize reads a length prefixed hex representation into the BlockID.
func (b *BlockID) Deserialize(data []byte) (int, error) {
	return readHex(serializer.NewDeserializer(data), b, "block ID").Done()
}

// ToMapKey converts the BlockID to a string that can be used as a map key.
func (b BlockID) ToMapKey() string {
	return string(b[:])
}

// IsNullBlockID returns the true if it is the genesis block ID.
func (b BlockID) IsNullBlockID() bool {
	return b == NullBlockID()
}

// NullBlockID returns the ID of the genesis block.
func NullBlockID() BlockID {
	return BlockID{}
}

// BlockIDFromHex creates a BlockID from a hex string representation.
func BlockIDFromHex(hexStr string) (BlockID, error) {
	return hex.Parse[BlockID](hexStr)
}

// BlockIDFromMapKey creates a BlockID from a map key representation.
func BlockIDFromMapKey(mapKey string) BlockID {
	if len(mapKey) != BlockIDLength {
		panic(fmt.Sprintf("unknown blockID length (%d)", len(mapKey)))
	}

	var blockID BlockID
	copy(blockID[:], mapKey)
	return blockID
}

// BlockIDFromSlice creates a BlockID from a byte slice.
func BlockIDFromSlice(b []byte) BlockID {
	if len(b) != BlockIDLength {
		panic(fmt.Sprintf("unknown blockID length (%d)", len(b)))
	}

	var blockID BlockID
	copy(blockID[:], b)
	return blockID
}

// ToHex converts the BlockIDs to their hex string representation.
func (b BlockIDs) ToHex() []string {
	return hex.ToHexMultiple(b.ToSliceOfSlices())
}

// ToSliceOfSlices converts the BlockIDs to a slice of byte slices.
func (b BlockIDs) ToSliceOfSlices() [][]byte {
	results := make([][]byte, len(b))
	for i := range b {
		results[i] = b[i][:]
	}
	return results
}

// RemoveDupsAndSortByLexicalOrder returns a new slice of BlockIDs sorted by lexical order and without duplicates.
func (b BlockIDs) RemoveDupsAndSortByLexicalOrder() BlockIDs {
	sorted := make(LexicalOrderedBlockIDs, len(b))
	copy(sorted, b)
	sort.Sort(sorted)

	var result BlockIDs
	for i, id := range sorted {
		// only add to the result, if it its different from its predecessor
		if i == 0 || id != sorted[i-1] {
			result = append(result, id)
		}
	}
	return result
}

// BlockIDsFromHex creates a slice of BlockIDs from a slice of hex string representations.
func BlockIDsFromHex(hexStrings []string) (BlockIDs, error) {
	return hex.ParseMultiple[BlockID](hexStrings)
}
