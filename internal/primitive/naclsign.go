package primitive

import (
	"crypto/rand"
	"io"

	"golang.org/x/crypto/nacl/sign"

	"edbatch/internal/domain"
)

// NaClSign is the standard backend, built on golang.org/x/crypto/nacl/sign.
// Its byte contract is exactly the one this scheme must stay wire-compatible
// with: 32-byte public keys, 64-byte secret keys, and signed messages laid
// out as 64 signature bytes followed by the message.
type NaClSign struct{}

// Keypair generates a fresh keypair from rnd, defaulting to crypto/rand.
func (NaClSign) Keypair(rnd io.Reader) (*[domain.PublicKeyBytes]byte, *[domain.SecretKeyBytes]byte, error) {
	if rnd == nil {
		rnd = rand.Reader
	}
	return sign.GenerateKey(rnd)
}

// Sign returns the signed message for message under priv.
func (NaClSign) Sign(message []byte, priv *[domain.SecretKeyBytes]byte) []byte {
	return sign.Sign(nil, message, priv)
}

// Open authenticates signed under pub and extracts the message.
func (NaClSign) Open(signed []byte, pub *[domain.PublicKeyBytes]byte) ([]byte, bool) {
	return sign.Open(nil, signed, pub)
}

// Compile-time assertion that NaClSign implements domain.Primitive.
var _ domain.Primitive = NaClSign{}
