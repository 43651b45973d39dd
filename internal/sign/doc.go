// Package sign implements the edwards25519-sha512-batch signature surface:
// keypair generation, signing, and verification-with-extraction.
//
// WARNING: this scheme is a deprecated prototype, superseded by Ed25519. It
// is kept only so that previously signed data can still be produced and
// verified byte-for-byte; do not use it for new designs.
//
// Operations are available two ways. A Scheme value, built with New around a
// domain.Primitive, can only exist after construction and is safe for
// concurrent use. The package-level functions use a process-wide default
// installed by Init and return domain.ErrNotInitialized before that.
package sign
