package sign

import (
	"fmt"
	"io"

	"edbatch/internal/domain"
	"edbatch/internal/util/memzero"
)

// Scheme performs signature operations through an injected primitive. The
// zero value is unusable; construct with New. A Scheme holds no mutable
// state, so all methods are safe to call concurrently.
type Scheme struct {
	prim domain.Primitive
	rnd  io.Reader
}

// New returns a Scheme backed by prim, drawing randomness from the
// primitive's default source.
func New(prim domain.Primitive) *Scheme {
	return &Scheme{prim: prim}
}

// NewWithRand is New with an explicit randomness source for key generation.
func NewWithRand(prim domain.Primitive, rnd io.Reader) *Scheme {
	return &Scheme{prim: prim, rnd: rnd}
}

func (s *Scheme) ready() bool { return s != nil && s.prim != nil }

// GenerateKeypair generates a fresh keypair. The returned secret key is
// exclusively owned by the caller, who must Wipe it when done.
func (s *Scheme) GenerateKeypair() (domain.PublicKey, *domain.SecretKey, error) {
	if !s.ready() {
		return domain.PublicKey{}, nil, domain.ErrNotInitialized
	}
	pub, priv, err := s.prim.Keypair(s.rnd)
	if err != nil {
		return domain.PublicKey{}, nil, fmt.Errorf("%w: %v", domain.ErrEntropy, err)
	}
	return domain.PublicKey(*pub), (*domain.SecretKey)(priv), nil
}

// Sign signs message with key and returns the signed message, whose length
// is exactly len(message)+domain.SignatureBytes. Neither input is mutated.
// key must be a valid secret key.
func (s *Scheme) Sign(message []byte, key *domain.SecretKey) (domain.SignedMessage, error) {
	if !s.ready() {
		return nil, domain.ErrNotInitialized
	}
	sm := s.prim.Sign(message, (*[domain.SecretKeyBytes]byte)(key))
	if len(sm) != len(message)+domain.SignatureBytes {
		memzero.Zero(sm)
		return nil, domain.ErrSign
	}
	return domain.SignedMessage(sm), nil
}

// Open authenticates signed with key and returns the embedded message, of
// length len(signed)-domain.SignatureBytes. Every rejection, including
// inputs too short to carry a signature, is domain.ErrVerificationFailed;
// no further distinction is made.
func (s *Scheme) Open(signed []byte, key domain.PublicKey) ([]byte, error) {
	if !s.ready() {
		return nil, domain.ErrNotInitialized
	}
	if len(signed) < domain.SignatureBytes {
		return nil, domain.ErrVerificationFailed
	}
	pub := [domain.PublicKeyBytes]byte(key)
	m, ok := s.prim.Open(signed, &pub)
	if !ok {
		return nil, domain.ErrVerificationFailed
	}
	return m, nil
}
