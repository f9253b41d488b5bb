// Package keys holds the key material and signing operations: parsing and
// generation of ed25519 keys, and detached message signatures.
package keys

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lumenwire/solforge/pkg/codec"
)

const (
	// PublicKeySize is the size of a raw public key.
	PublicKeySize = ed25519.PublicKeySize

	// SecretKeySize is the size of a raw secret key: a 32-byte seed
	// followed by the derived 32-byte public key.
	SecretKeySize = ed25519.PrivateKeySize

	// SignatureSize is the size of a detached signature.
	SignatureSize = ed25519.SignatureSize
)

var (
	// ErrInvalidKeyLength is the class for keys that decode to the wrong
	// number of bytes.
	ErrInvalidKeyLength = errors.New("invalid key length")

	// ErrNotOnCurve is the class for byte sequences of the right length
	// that aren't a valid ed25519 key.
	ErrNotOnCurve = errors.New("not a valid ed25519 key")
)

// Key is an ed25519 public key with its base58 form cached alongside the
// raw bytes.
type Key struct {
	bytesValue  []byte
	stringValue string
}

// NewKeyFromBytes wraps a raw 32-byte public key.
func NewKeyFromBytes(value []byte) (*Key, error) {
	if len(value) != PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(value), PublicKeySize)
	}

	bytesValue := make([]byte, PublicKeySize)
	copy(bytesValue, value)

	return &Key{
		bytesValue:  bytesValue,
		stringValue: codec.EncodeBase58(bytesValue),
	}, nil
}

// ParsePublicKey decodes a base58 public key, requiring exactly 32 bytes.
func ParsePublicKey(value string) (*Key, error) {
	bytesValue, err := codec.DecodeBase58(value)
	if err != nil {
		return nil, err
	}

	if len(bytesValue) != PublicKeySize {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(bytesValue), PublicKeySize)
	}

	return &Key{
		bytesValue:  bytesValue,
		stringValue: value,
	}, nil
}

// ToBytes returns the raw public key.
func (k *Key) ToBytes() ed25519.PublicKey {
	return k.bytesValue
}

// ToBase58 returns the canonical textual form.
func (k *Key) ToBase58() string {
	return k.stringValue
}
