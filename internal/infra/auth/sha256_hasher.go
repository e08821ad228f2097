// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"

	"accounts/internal/domain/service"
)

// sha256Hasher hashes passwords as unsalted SHA-256 hex digests, the format
// the existing account store already holds. It resists neither rainbow tables
// nor offline dictionary attack; prefer the scrypt scheme for new deployments
// (auth.hashScheme: scrypt).
type sha256Hasher struct{}

// NewSHA256Hasher is the constructor for sha256Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewSHA256Hasher() service.PasswordHasher {
	return &sha256Hasher{}
}

// Hash returns the hex-encoded SHA-256 digest of the password.
func (h *sha256Hasher) Hash(password string) (string, error) {
	sum := sha256.Sum256([]byte(password))

	return hex.EncodeToString(sum[:]), nil
}

// Check compares a plaintext password with a stored digest in constant time.
func (h *sha256Hasher) Check(password, hash string) bool {
	computed, err := h.Hash(password)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
