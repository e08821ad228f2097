// Package token provides the reset token value generator.
package token

import (
	"crypto/rand"
	"encoding/base64"

	"accounts/internal/domain/service"
	"accounts/internal/errors"
)

// tokenEntropyBytes is the raw entropy per token before encoding. 32 bytes
// keeps tokens unguessable even against an offline attacker.
const tokenEntropyBytes = 32

type generator struct{}

// NewGenerator is the constructor for the reset token generator.
func NewGenerator() service.ResetTokenGenerator {
	return &generator{}
}

// Generate returns a base64url-encoded token backed by crypto/rand.
func (g *generator) Generate() (string, error) {
	buf := make([]byte, tokenEntropyBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read random bytes for reset token")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
