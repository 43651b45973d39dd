// Package store provides file-based persistence for the local keypair.
//
// The secret key is sealed into a versioned JSON blob using a key derived
// from the caller's passphrase (scrypt) and ChaCha20-Poly1305; the public
// key is stored alongside in clear JSON. Writes go through a temp file and
// rename so a crash never leaves a partial keystore. All methods are
// concurrency-safe via internal locking.
package store
