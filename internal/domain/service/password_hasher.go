// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for credential hashing and verification.
// Implementations must be deterministic: authentication matches email and
// hashed credential in a single store query, which only works when the same
// plaintext always yields the same stored form.
type PasswordHasher interface {
	// Hash transforms a plaintext password into its storable form.
	Hash(password string) (string, error)

	// Check compares a plaintext password with a stored credential.
	Check(password, hash string) bool
}
