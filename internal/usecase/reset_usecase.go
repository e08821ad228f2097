package usecase

import (
	"context"
	"time"
)

// RequestResetInput identifies the account asking for a password reset.
type RequestResetInput struct {
	Email string
}

// RequestResetOutput carries the issued token. Returning the raw token to the
// caller mirrors the legacy API; the notifier seam is the out-of-band path.
type RequestResetOutput struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// ConfirmResetInput redeems a token against a new password.
type ConfirmResetInput struct {
	Token       string
	NewPassword string
}

// ResetUsecase defines the interface for the password-reset flow.
type ResetUsecase interface {
	RequestReset(ctx context.Context, input *RequestResetInput) (*RequestResetOutput, error)
	ConfirmReset(ctx context.Context, input *ConfirmResetInput) error
}
