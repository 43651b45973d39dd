// Package edbatch exposes the edwards25519-sha512-batch public-key signature
// scheme: keypair generation, signing, and verification-with-extraction.
//
// WARNING: this signature scheme is a deprecated prototype, superseded by
// Ed25519. It exists only so data signed under it long ago can still be
// verified (and, where a peer still requires it, produced) byte-for-byte.
// Do not use it for new designs.
//
// Call Init once at process start, before any operation on any goroutine:
//
//	edbatch.Init()
//
//	pk, sk, err := edbatch.GenerateKeypair()
//	if err != nil {
//	    return err
//	}
//	defer sk.Wipe()
//
//	signed, err := edbatch.Sign([]byte("hello"), sk)
//	if err != nil {
//	    return err
//	}
//	msg, err := edbatch.Open(signed, pk)
//
// A signed message is the 64 signature bytes followed by the message bytes,
// the primitive's own wire convention; Open rejects anything that does not
// verify with the single error ErrVerificationFailed, never saying why.
// After Init, all operations are safe for concurrent use: each is a pure
// function of its inputs. Secret keys are wiped in place by Wipe; callers
// own that obligation on every exit path.
package edbatch

import (
	"edbatch/internal/domain"
	"edbatch/internal/sign"
)

// Byte sizes of the key material and signature, fixed by the scheme.
const (
	PublicKeyBytes = domain.PublicKeyBytes
	SecretKeyBytes = domain.SecretKeyBytes
	SignatureBytes = domain.SignatureBytes
)

type (
	// PublicKey is a 32-byte verification key.
	PublicKey = domain.PublicKey
	// SecretKey is a 64-byte signing key; call Wipe when done with it.
	SecretKey = domain.SecretKey
	// SignedMessage is signature material followed by the message bytes.
	SignedMessage = domain.SignedMessage
	// Primitive is the low-level backend interface consumed by Scheme.
	Primitive = domain.Primitive
	// Scheme runs the operations over an injected Primitive.
	Scheme = sign.Scheme
)

var (
	// ErrNotInitialized reports an operation before Init (or a Scheme that
	// was not built with New).
	ErrNotInitialized = domain.ErrNotInitialized
	// ErrEntropy reports a key-generation randomness failure.
	ErrEntropy = domain.ErrEntropy
	// ErrSign reports a malformed primitive signing result.
	ErrSign = domain.ErrSign
	// ErrVerificationFailed is the single undifferentiated rejection
	// outcome of Open.
	ErrVerificationFailed = domain.ErrVerificationFailed
)

// Init installs the process-wide scheme backed by the standard primitive
// binding. The first call wins; later calls are no-ops. It must complete
// before any package-level operation on any goroutine.
func Init() { sign.Init() }

// New returns a Scheme over an alternate primitive backend. Most callers
// want Init and the package-level functions instead.
func New(p Primitive) *Scheme { return sign.New(p) }

// GenerateKeypair generates a fresh keypair. The secret key is exclusively
// owned by the caller, who must Wipe it when done.
func GenerateKeypair() (PublicKey, *SecretKey, error) {
	return sign.GenerateKeypair()
}

// Sign signs message with key and returns a signed message of length
// len(message)+SignatureBytes. Neither input is mutated.
func Sign(message []byte, key *SecretKey) (SignedMessage, error) {
	return sign.Sign(message, key)
}

// Open authenticates signed with key and returns the embedded message, of
// length len(signed)-SignatureBytes. Any rejection is ErrVerificationFailed.
func Open(signed []byte, key PublicKey) ([]byte, error) {
	return sign.Open(signed, key)
}

// MustPublicKey builds a PublicKey from exactly PublicKeyBytes bytes,
// panicking on any other length.
func MustPublicKey(b []byte) PublicKey { return domain.MustPublicKey(b) }

// MustSecretKey builds a SecretKey from exactly SecretKeyBytes bytes,
// panicking on any other length. The caller keeps ownership of b and should
// wipe it.
func MustSecretKey(b []byte) *SecretKey { return domain.MustSecretKey(b) }

// Fingerprint returns a short hex fingerprint of a public key.
func Fingerprint(pub PublicKey) string { return sign.Fingerprint(pub.Slice()) }
