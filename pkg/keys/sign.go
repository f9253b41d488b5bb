package keys

import (
	"crypto/ed25519"
)

// Sign produces the deterministic 64-byte ed25519 signature of message.
// No randomness is consumed.
func (kp *Keypair) Sign(message []byte) []byte {
	return ed25519.Sign(kp.private, message)
}

// Verify reports whether sig is a valid signature of message under pub.
// An invalid or wrong-length signature yields false, never an error.
func Verify(pub *Key, message, sig []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}

	return ed25519.Verify(pub.ToBytes(), message, sig)
}
