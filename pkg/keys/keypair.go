package keys

import (
	"bytes"
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/lumenwire/solforge/pkg/codec"
)

// Keypair is a full ed25519 keypair. The secret form is the standard
// 64-byte layout: seed followed by the derived public key. A Keypair is
// expected to live only for the duration of the operation that parsed it.
type Keypair struct {
	private ed25519.PrivateKey
	public  *Key
}

// GenerateKeypair draws a new keypair from the process's cryptographically
// secure random source. Safe for concurrent use.
func GenerateKeypair() (*Keypair, error) {
	pub, priv, err := ed25519.GenerateKey(nil)
	if err != nil {
		return nil, errors.Wrap(err, "error generating keypair")
	}

	public, err := NewKeyFromBytes(pub)
	if err != nil {
		return nil, err
	}

	return &Keypair{
		private: priv,
		public:  public,
	}, nil
}

// ParseKeypair decodes a base58 secret key, requiring exactly 64 bytes and
// a public half that matches the key derived from the seed half.
func ParseKeypair(value string) (*Keypair, error) {
	raw, err := codec.DecodeBase58(value)
	if err != nil {
		return nil, err
	}

	if len(raw) != SecretKeySize {
		return nil, errors.Wrapf(ErrInvalidKeyLength, "got %d bytes, want %d", len(raw), SecretKeySize)
	}

	derived := ed25519.NewKeyFromSeed(raw[:ed25519.SeedSize])
	if !bytes.Equal(derived, raw) {
		return nil, errors.Wrap(ErrNotOnCurve, "public key doesn't match seed")
	}

	public, err := NewKeyFromBytes(raw[ed25519.SeedSize:])
	if err != nil {
		return nil, err
	}

	return &Keypair{
		private: derived,
		public:  public,
	}, nil
}

// PublicKey returns the public half.
func (kp *Keypair) PublicKey() *Key {
	return kp.public
}

// SecretKeyBase58 returns the base58 form of the full 64-byte secret key.
func (kp *Keypair) SecretKeyBase58() string {
	return codec.EncodeBase58(kp.private)
}
