// Package primitive binds the scheme to a concrete low-level signature
// implementation. The scheme only ever sees domain.Primitive, so alternate
// backends can be substituted in tests or builds.
package primitive
