// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (key material, signed blobs), the primitive and
// storage contracts (interfaces), and the shared error values only.
package domain
