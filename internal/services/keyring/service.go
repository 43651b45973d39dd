package keyring

import (
	"fmt"

	"edbatch/internal/domain"
	"edbatch/internal/sign"
)

const (
	// minPassphraseLength defines the minimum number of characters required
	// for a keystore passphrase.
	minPassphraseLength = 12
)

var (
	// ErrWeakPassphrase is returned when the passphrase fails the policy.
	ErrWeakPassphrase = fmt.Errorf(
		"passphrase is too weak (must be at least %d characters)",
		minPassphraseLength,
	)
)

// Service runs signature operations against the keypair in a backing store.
type Service struct {
	scheme *sign.Scheme
	store  domain.Keystore
}

// New returns a keyring service using scheme and backed by the given store.
func New(scheme *sign.Scheme, store domain.Keystore) *Service {
	return &Service{scheme: scheme, store: store}
}

// Generate creates a new keypair, saves it encrypted with the passphrase,
// and returns the public key plus its fingerprint. The secret key is wiped
// before returning, on success and error paths alike.
func (s *Service) Generate(passphrase string) (domain.PublicKey, domain.Fingerprint, error) {
	if len(passphrase) < minPassphraseLength {
		return domain.PublicKey{}, "", ErrWeakPassphrase
	}
	pub, priv, err := s.scheme.GenerateKeypair()
	if err != nil {
		return domain.PublicKey{}, "", err
	}
	defer priv.Wipe()

	if err := s.store.Save(passphrase, pub, priv); err != nil {
		return domain.PublicKey{}, "", err
	}
	return pub, domain.Fingerprint(sign.Fingerprint(pub.Slice())), nil
}

// Sign loads the secret key, signs message, and wipes the key again.
func (s *Service) Sign(passphrase string, message []byte) (domain.SignedMessage, error) {
	_, priv, err := s.store.Load(passphrase)
	if err != nil {
		return nil, err
	}
	defer priv.Wipe()

	return s.scheme.Sign(message, priv)
}

// Open verifies signed against the stored public key and returns the
// embedded message. No passphrase is needed.
func (s *Service) Open(signed []byte) ([]byte, error) {
	pub, err := s.store.LoadPublic()
	if err != nil {
		return nil, err
	}
	return s.scheme.Open(signed, pub)
}

// Fingerprint returns a short fingerprint of the stored public key.
func (s *Service) Fingerprint() (domain.Fingerprint, error) {
	pub, err := s.store.LoadPublic()
	if err != nil {
		return "", err
	}
	return domain.Fingerprint(sign.Fingerprint(pub.Slice())), nil
}

// Compile-time assertion that Service implements domain.KeyringService.
var _ domain.KeyringService = (*Service)(nil)
