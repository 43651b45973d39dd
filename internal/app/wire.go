package app

import (
	"edbatch/internal/domain"
	"edbatch/internal/primitive"
	"edbatch/internal/services/keyring"
	"edbatch/internal/sign"
	"edbatch/internal/store"
)

// Wire bundles the store, scheme, and keyring service for the CLI.
type Wire struct {
	Scheme *sign.Scheme
	Keys   domain.Keystore
	Ring   domain.KeyringService
}

// NewWire constructs the dependency graph from cfg.
func NewWire(cfg Config) (*Wire, error) {
	ks := store.NewFileKeystore(cfg.Home)
	scheme := sign.New(primitive.NaClSign{})
	ring := keyring.New(scheme, ks)

	return &Wire{
		Scheme: scheme,
		Keys:   ks,
		Ring:   ring,
	}, nil
}
