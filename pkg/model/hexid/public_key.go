package hexid

import (
	"crypto/ed25519"

	"golang.org/x/crypto/blake2b"

	"github.com/iotaledger/hive.go/serializer/v2"

	"github.com/gohornet/hexutil/pkg/hex"
)

const (
	// PublicKeyLength is the length of an ed25519 public key in bytes.
	PublicKeyLength = ed25519.PublicKeySize
	// AddressLength is the length of an ed25519 address in bytes.
	AddressLength = blake2b.Size256
)

// PublicKey is an ed25519 public key.
type PublicKey [PublicKeyLength]byte

// Address is the BLAKE2b-256 hash of an ed25519 public key.
type Address [AddressLength]byte

// PublicKeyFromEd25519 creates a PublicKey from an ed25519.PublicKey.
func PublicKeyFromEd25519(key ed25519.PublicKey) (PublicKey, error) {
	var pubKey PublicKey
	if len(key) != PublicKeyLength {
		return pubKey, hex.NewError(hex.KindHexConversion, nil)
	}
	copy(pubKey[:], key)
	return pubKey, nil
}

// PublicKeyFromHex creates a PublicKey from a hex string representation.
func PublicKeyFromHex(hexStr string) (PublicKey, error) {
	return hex.Parse[PublicKey](hexStr)
}

// Ed25519 returns the key as ed25519.PublicKey.
func (k PublicKey) Ed25519() ed25519.PublicKey {
	return append(ed25519.PublicKey{}, k[:]...)
}

// Address returns the ed25519 address of the key.
func (k PublicKey) Address() Address {
	return blake2b.Sum256(k[:])
}

// Verify reports whether sig is a valid signature of message by the key.
func (k PublicKey) Verify(message []byte, sig []byte) bool {
	return ed25519.Verify(k[:], message, sig)
}

// ToHex converts the PublicKey to its hex representation.
func (k PublicKey) ToHex() string {
	return hex.ToHex(k[:])
}

// FromHex sets the PublicKey from its hex representation.
func (k *PublicKey) FromHex(hexStr string) error {
	return hex.DecodeFixed(hexStr, k[:])
}

func (k PublicKey) String() string {
	return k.ToHex()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k PublicKey) MarshalText() ([]byte, error) {
	return hex.MarshalText(k)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *PublicKey) UnmarshalText(text []byte) error {
	return k.FromHex(string(text))
}

// Serialize returns the length prefixed hex representation of the PublicKey.
func (k PublicKey) Serialize() ([]byte, error) {
	return writeHex(serializer.NewSerializer(), k, "public key").Serialize()
}

// Deserialize reads a length prefixed hex representation into the PublicKey.
func (k *PublicKey) Deserialize(data []byte) (int, error) {
	return readHex(serializer.NewDeserializer(data), k, "public key").Done()
}

// AddressFromHex creates an Address from a hex string representation.
func AddressFromHex(hexStr string) (Address, error) {
	return hex.Parse[Address](hexStr)
}

// ToHex converts the Address to its hex representation.
func (a Address) ToHex() string {
	return hex.ToHex(a[:])
}

// FromHex sets the Address from its hex representation.
func (a *Address) FromHex(hexStr string) error {
	return hex.DecodeFixed(hexStr, a[:])
}

func (a Address) String() string {
	return a.ToHex()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (a Address) MarshalText() ([]byte, error) {
	return hex.MarshalText(a)
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (a *Address) UnmarshalText(text []byte) error {
	return a.FromHex(string(text))
}
