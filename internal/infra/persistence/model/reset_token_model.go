package model

import (
	"time"

	"github.com/google/uuid"
)

// ResetTokenModel mirrors the 'reset_tokens' table. Rows are never deleted;
// redeemed and expired tokens remain for audit.
type ResetTokenModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;index"`
	Token     string    `gorm:"type:text;uniqueIndex;not null"`
	ExpiresAt time.Time `gorm:"not null"`
	Used      bool      `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ResetTokenModel) TableName() string {
	return "reset_tokens"
}
