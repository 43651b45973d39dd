package domain

import (
	"fmt"

	"edbatch/internal/util/memzero"
)

// Byte sizes of the edwards25519-sha512-batch key material. They match the
// underlying primitive and the on-wire format of previously signed data, and
// must never change.
const (
	// PublicKeyBytes is the size of a public key in bytes.
	PublicKeyBytes = 32
	// SecretKeyBytes is the size of a secret key in bytes.
	SecretKeyBytes = 64
	// SignatureBytes is the size of the signature material inside a signed
	// message, in bytes.
	SignatureBytes = 64
)

// PublicKey is a signature verification key. It is not secret and carries no
// wiping obligation.
type PublicKey [PublicKeyBytes]byte

// Slice returns the key as a []byte.
func (p PublicKey) Slice() []byte { return p[:] }

// SecretKey is a signing key. It is always handled through a pointer so that
// exactly one backing array exists, and Wipe zeroes that array in place.
// Callers that are done with a key must call Wipe on every exit path,
// typically via defer.
type SecretKey [SecretKeyBytes]byte

// Slice returns the key as a []byte.
func (k *SecretKey) Slice() []byte { return k[:] }

// Wipe overwrites the key's backing storage with zeros.
func (k *SecretKey) Wipe() { memzero.Zero(k[:]) }

// SignedMessage is the blob produced by signing: signature material followed
// by the message bytes, laid out by the underlying primitive. It is carried
// opaquely and never parsed here.
type SignedMessage []byte

// Fingerprint is a short identifier for public keys presented to users.
type Fingerprint string

// String returns the string form of the fingerprint.
func (f Fingerprint) String() string { return string(f) }

// MustPublicKey builds a PublicKey from b. It panics unless len(b) is
// exactly PublicKeyBytes; any other length is a caller programming error.
func MustPublicKey(b []byte) PublicKey {
	if len(b) != PublicKeyBytes {
		panic(fmt.Errorf("public key: want %d bytes, got %d", PublicKeyBytes, len(b)))
	}
	var out PublicKey
	copy(out[:], b)
	return out
}

// MustSecretKey builds a SecretKey from b. It panics unless len(b) is
// exactly SecretKeyBytes. The caller keeps ownership of b and should wipe it.
func MustSecretKey(b []byte) *SecretKey {
	if len(b) != SecretKeyBytes {
		panic(fmt.Errorf("secret key: want %d bytes, got %d", SecretKeyBytes, len(b)))
	}
	out := new(SecretKey)
	copy(out[:], b)
	return out
}
