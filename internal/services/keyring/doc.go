// Package keyring manages creation, storage and use of the local keypair.
//
// It enforces passphrase policy, runs the signature operations against the
// stored keys, and wipes secret material after every use.
package keyring
