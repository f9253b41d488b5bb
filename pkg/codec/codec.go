// Package codec provides the textual encodings used at the service boundary:
// base58 for keys and addresses, base64 for signatures and instruction data.
package codec

import (
	"encoding/base64"

	"github.com/mr-tron/base58"
	"github.com/pkg/errors"
)

// ErrInvalidEncoding is the class for malformed base58 or base64 input.
// Decode failures wrap it, so callers can check with errors.Is.
var ErrInvalidEncoding = errors.New("invalid encoding")

// base64 decoding is strict: padding is required and non-canonical
// trailing bits are rejected.
var base64Encoding = base64.StdEncoding.Strict()

// EncodeBase58 encodes b using the Bitcoin base58 alphabet.
func EncodeBase58(b []byte) string {
	return base58.Encode(b)
}

// DecodeBase58 decodes s, rejecting any character outside the base58
// alphabet.
func DecodeBase58(s string) ([]byte, error) {
	raw, err := base58.Decode(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return raw, nil
}

// EncodeBase64 encodes b as standard padded base64.
func EncodeBase64(b []byte) string {
	return base64Encoding.EncodeToString(b)
}

// DecodeBase64 decodes s, rejecting invalid characters and malformed
// padding.
func DecodeBase64(s string) ([]byte, error) {
	raw, err := base64Encoding.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEncoding, err.Error())
	}
	return raw, nil
}
