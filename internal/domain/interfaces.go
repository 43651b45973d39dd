package domain

import "io"

// Primitive is the trusted low-level signature primitive consumed by the
// scheme. It is treated as an opaque black box with a fixed byte contract:
// 32-byte public keys, 64-byte secret keys, and signed messages that are
// exactly SignatureBytes longer than the message they carry.
type Primitive interface {
	// Keypair generates a fresh keypair, reading randomness from rnd
	// (a nil rnd selects the primitive's default source).
	Keypair(rnd io.Reader) (pub *[PublicKeyBytes]byte, priv *[SecretKeyBytes]byte, err error)

	// Sign produces the signed message for message under priv.
	Sign(message []byte, priv *[SecretKeyBytes]byte) []byte

	// Open authenticates signed under pub and returns the embedded
	// message, or false if the blob does not verify.
	Open(signed []byte, pub *[PublicKeyBytes]byte) ([]byte, bool)
}

// Keystore persists a single local keypair, secret half encrypted under a
// passphrase.
type Keystore interface {
	Save(passphrase string, pub PublicKey, priv *SecretKey) error
	Load(passphrase string) (PublicKey, *SecretKey, error)
	LoadPublic() (PublicKey, error)
}

// KeyringService creates, uses, and inspects the stored local keypair.
type KeyringService interface {
	Generate(passphrase string) (PublicKey, Fingerprint, error)
	Sign(passphrase string, message []byte) (SignedMessage, error)
	Open(signed []byte) ([]byte, error)
	Fingerprint() (Fingerprint, error)
}
