package auth

import (
	"crypto/subtle"
	"encoding/hex"

	"accounts/internal/domain/service"
	"accounts/internal/errors"

	"golang.org/x/crypto/scrypt"
)

// scrypt cost parameters. N is the CPU/memory cost, r the block size, p the
// parallelism factor; 2^15/8/1 is the interactive-login recommendation.
const (
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
	scryptKeyLen  = 32
	minPepperSize = 16
)

// scryptHasher is the memory-hard credential scheme. The salt is a
// deployment-wide pepper from configuration rather than per-account, which
// keeps the hash deterministic: the single-query login path (email AND
// credential) depends on that.
type scryptHasher struct {
	pepper []byte
}

// NewScryptHasher is the constructor for scryptHasher. The pepper must carry
// at least 16 bytes; a short secret defeats the point of the scheme.
func NewScryptHasher(pepper string) (service.PasswordHasher, error) {
	if len(pepper) < minPepperSize {
		return nil, errors.Errorf("scrypt pepper too short: need at least %d bytes, got %d", minPepperSize, len(pepper))
	}

	return &scryptHasher{pepper: []byte(pepper)}, nil
}

// Hash derives a hex-encoded scrypt key from the password and the pepper.
func (h *scryptHasher) Hash(password string) (string, error) {
	key, err := scrypt.Key([]byte(password), h.pepper, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return "", errors.Wrap(err, "failed to derive scrypt key")
	}

	return hex.EncodeToString(key), nil
}

// Check compares a plaintext password with a stored scrypt key in constant time.
func (h *scryptHasher) Check(password, hash string) bool {
	computed, err := h.Hash(password)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}
