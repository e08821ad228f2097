package entity

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenValidity is the fixed window during which a freshly issued reset
// token can be redeemed.
const ResetTokenValidity = time.Hour

// ResetToken is a single-use, time-limited secret proving the right to change
// a specific account's password. Tokens are never deleted; redeemed and
// expired rows stay behind for audit.
type ResetToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID // Owning account (back-reference, not ownership).
	Token     string    // Opaque random value, >=32 bytes of entropy before encoding.
	ExpiresAt time.Time // issued_at + ResetTokenValidity.
	Used      bool      // Flipped to true exactly once on successful confirmation.
	CreatedAt time.Time
}

// Redeemable reports whether the token can still be confirmed at the given
// instant: not used yet and not past its expiry.
func (t *ResetToken) Redeemable(now time.Time) bool {
	return !t.Used && !now.After(t.ExpiresAt)
}
