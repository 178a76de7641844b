// Package contacts holds module-level metadata for the contacts assistant.
package contacts

// Version is the release version reported by `contacts version`.
const Version = "0.1.0"

// ModulePath is the Go module path.
const ModulePath = "github.com/mesh-intelligence/contacts"
