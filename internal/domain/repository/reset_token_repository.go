package repository

import (
	"context"
	"errors"

	"accounts/internal/domain/entity"
)

// ErrResetTokenNotFound is returned when a reset token is not found.
var ErrResetTokenNotFound = errors.New("reset token not found")

// ResetTokenRepository defines the operations for reset token persistence.
// Tokens are insert-once, flip-once records: they are never deleted, only
// marked used.
type ResetTokenRepository interface {
	// Create persists a freshly issued token.
	Create(ctx context.Context, token *entity.ResetToken) error

	// FindByToken retrieves a token record by its opaque value.
	FindByToken(ctx context.Context, token string) (*entity.ResetToken, error)

	// Redeem atomically flips used from false to true. It reports false when
	// the token was already used, so two concurrent confirmations cannot both
	// succeed.
	Redeem(ctx context.Context, token string) (bool, error)
}
