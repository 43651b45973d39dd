// Package commands defines the edbatch CLI and wires dependencies for subcommands.
//
// Commands
//
//   - keygen       Generate a keypair and store it securely
//   - sign         Sign a message with the stored secret key
//   - open         Verify a signed blob and recover the message
//   - fingerprint  Print the stored public key's fingerprint
//
// # Implementation
//
// The root command builds the dependency graph (keystore, scheme, keyring
// service) before any subcommand runs, so handlers share one app context.
package commands
