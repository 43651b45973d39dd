package domain

import "errors"

var (
	// ErrNotInitialized is returned when an operation runs before the
	// scheme has been initialized.
	ErrNotInitialized = errors.New("signature scheme not initialized")

	// ErrEntropy is returned when the primitive's randomness source fails
	// during key generation.
	ErrEntropy = errors.New("entropy source failed")

	// ErrSign is returned when the primitive produces a malformed signed
	// message. It is not expected to occur for well-formed inputs.
	ErrSign = errors.New("signing failed")

	// ErrVerificationFailed is the single rejection outcome of Open. It
	// deliberately does not distinguish malformed input, a wrong key, or a
	// tampered signature.
	ErrVerificationFailed = errors.New("verification failed")
)
