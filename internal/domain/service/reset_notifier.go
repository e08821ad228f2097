package service

import (
	"context"
	"time"
)

// ResetNotifier delivers a freshly issued reset token to the account owner
// through an out-of-band channel (mail, push, ...). Delivery failures do not
// invalidate the token.
type ResetNotifier interface {
	Notify(ctx context.Context, email, token string, expiresAt time.Time) error
}
