package sign

import (
	"sync/atomic"

	"edbatch/internal/domain"
	"edbatch/internal/primitive"
)

// defaultScheme backs the package-level operations. It is nil until Init.
var defaultScheme atomic.Pointer[Scheme]

// Init installs the process-wide default scheme, backed by the standard
// primitive binding. The first call wins; later calls are no-ops. It must
// complete before any package-level operation on any goroutine.
func Init() {
	defaultScheme.CompareAndSwap(nil, New(primitive.NaClSign{}))
}

// GenerateKeypair generates a keypair with the default scheme.
func GenerateKeypair() (domain.PublicKey, *domain.SecretKey, error) {
	return defaultScheme.Load().GenerateKeypair()
}

// Sign signs message with the default scheme.
func Sign(message []byte, key *domain.SecretKey) (domain.SignedMessage, error) {
	return defaultScheme.Load().Sign(message, key)
}

// Open verifies signed with the default scheme.
func Open(signed []byte, key domain.PublicKey) ([]byte, error) {
	return defaultScheme.Load().Open(signed, key)
}
